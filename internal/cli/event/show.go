package event

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/weekboard/internal/cli"
	"github.com/thenoetrevino/weekboard/internal/cli/styles"
	"github.com/thenoetrevino/weekboard/internal/models"
	"github.com/thenoetrevino/weekboard/internal/types"
)

// ShowCmd returns the event show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show one event with its rendered description",
		Long: `Show an event by ID. The description is rendered as markdown.

Examples:
  weekboard event show --id=<event-id>
  weekboard event show --id=<event-id> --json
`,
		RunE: runShow,
	}

	cmd.Flags().String("id", "", "Event ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		slog.Error("Error marking flag as required", "flag", "id", "error", err)
	}

	// Agent-friendly flags
	cli.AddOutputFlags(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	id, _ := cmd.Flags().GetString("id")

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.Report(formatter, cli.ExitError, "INITIALIZATION_ERROR", err, "")
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	e, ok := cliInstance.App.Schedule.Event(types.EventID(id))
	if !ok {
		return cli.Report(formatter, cli.ExitNotFound, "EVENT_NOT_FOUND",
			fmt.Errorf("%w: %s", errEventNotFound, id), "List events with: weekboard event list")
	}

	if formatter.Quiet || formatter.JSON {
		return formatter.Success(cli.NewEventView(e))
	}

	// Human-readable card
	var b strings.Builder
	b.WriteString(styles.RenderEventChip(e) + "\n\n")
	b.WriteString(styles.LabelStyle.Render("Day: ") + styles.ValueStyle.Render(models.DayName(e.Day)) + "\n")
	b.WriteString(styles.LabelStyle.Render("Time: ") + styles.ValueStyle.Render(e.StartTime+" - "+e.EndTime) + "\n")
	b.WriteString(styles.LabelStyle.Render("ID: ") + styles.SubtitleStyle.Render(e.ID.String()))
	if e.Description != "" {
		b.WriteString("\n" + styles.SectionStyle.Render("Description") + "\n")
		b.WriteString(renderMarkdown(e.Description, styles.CardWidth-6))
	}

	formatter.Printf("%s\n", styles.RenderCard(b.String()))
	return nil
}

// renderMarkdown renders text with glamour, falling back to the raw text
func renderMarkdown(text string, width int) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return text
	}
	out, err := renderer.Render(text)
	if err != nil {
		return text
	}
	return strings.TrimSpace(out)
}
