package week

import (
	"log/slog"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/weekboard/internal/cli"
	"github.com/thenoetrevino/weekboard/internal/cli/styles"
	"github.com/thenoetrevino/weekboard/internal/models"
	"github.com/thenoetrevino/weekboard/internal/schedule"
)

const (
	timeColumnWidth = 14
	dayColumnWidth  = 14
)

// WeekCmd returns the week command printing the schedule grid
func WeekCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "week",
		Short: "Print the weekly schedule grid",
		Long: `Print the schedule as a grid of days and time slots.

Examples:
  weekboard week
  weekboard week --type=course
`,
		RunE: runWeek,
	}

	cmd.Flags().String("type", "all", "Filter: all, course, event or dayoff")

	return cmd
}

func runWeek(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	typeFlag, _ := cmd.Flags().GetString("type")
	filter, err := schedule.ParseFilter(typeFlag)
	if err != nil {
		return cli.Report(formatter, cli.ExitValidation, "INVALID_FILTER", err, "")
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.Report(formatter, cli.ExitError, "INITIALIZATION_ERROR", err, "")
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	formatter.Printf("%s\n", RenderGrid(cliInstance.App.Schedule, filter))
	return nil
}

// RenderGrid lays out the week as rows of time slots and columns of days
func RenderGrid(store *schedule.Store, filter schedule.Filter) string {
	cell := lipgloss.NewStyle().Width(dayColumnWidth).MaxWidth(dayColumnWidth).PaddingRight(1)
	timeCell := lipgloss.NewStyle().Width(timeColumnWidth)

	header := []string{timeCell.Render("")}
	for day := range models.DaysInWeek {
		name := models.DayName(day)
		if models.IsWeekend(day) {
			header = append(header, cell.Render(styles.WarningStyle.Render(name)))
			continue
		}
		header = append(header, cell.Render(styles.TitleStyle.Render(name)))
	}

	rows := []string{lipgloss.JoinHorizontal(lipgloss.Top, header...)}
	for _, slot := range models.TimeSlots() {
		row := []string{timeCell.Render(styles.SubtitleStyle.Render(slot.Label))}
		for day := range models.DaysInWeek {
			var lines []string
			for _, e := range store.EventsAt(day, slot) {
				if !filter.Matches(e) {
					continue
				}
				lines = append(lines, styles.ColoredText(ansi.Truncate(e.Title, dayColumnWidth-1, "…"), styles.ColorFor(e)))
			}
			row = append(row, cell.Render(strings.Join(lines, "\n")))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
