package event

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/weekboard/internal/cli"
	"github.com/thenoetrevino/weekboard/internal/cli/styles"
	"github.com/thenoetrevino/weekboard/internal/models"
	"github.com/thenoetrevino/weekboard/internal/schedule"
)

// ListCmd returns the event list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List schedule events",
		Long: `List events, ordered by day and time slot.

Examples:
  # Whole week
  weekboard event list

  # Only courses on Tuesday
  weekboard event list --day=tue --type=course

  # One cell, JSON output for agents
  weekboard event list --day=0 --slot=08:40 --json

  # Quiet mode (one ID per line)
  weekboard event list --quiet
`,
		RunE: runList,
	}

	// Filters
	cmd.Flags().String("day", "", "Only events on this day (0-6 or mon..sun)")
	cmd.Flags().String("slot", "", "Only events in this time slot (requires --day)")
	cmd.Flags().String("type", "all", "Filter: all, course, event or dayoff")

	// Agent-friendly flags
	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	dayFlag, _ := cmd.Flags().GetString("day")
	slotFlag, _ := cmd.Flags().GetString("slot")
	typeFlag, _ := cmd.Flags().GetString("type")

	filter, err := schedule.ParseFilter(typeFlag)
	if err != nil {
		return cli.Report(formatter, cli.ExitValidation, "INVALID_FILTER", err, "")
	}

	day := -1
	if dayFlag != "" {
		if day, err = cli.ParseDay(dayFlag); err != nil {
			return cli.Report(formatter, cli.ExitValidation, "INVALID_DAY", err, "")
		}
	}

	var slot models.TimeSlot
	if slotFlag != "" {
		if day < 0 {
			return cli.Report(formatter, cli.ExitUsage, "MISSING_DAY",
				errMissingDay, "Add --day to pick a single cell")
		}
		if slot, err = cli.ParseSlot(slotFlag); err != nil {
			return cli.Report(formatter, cli.ExitValidation, "INVALID_SLOT", err, "List the time slots with: weekboard slots")
		}
	}

	// Initialize CLI
	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.Report(formatter, cli.ExitError, "INITIALIZATION_ERROR", err, "")
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	store := cliInstance.App.Schedule
	var found []models.Event
	switch {
	case slotFlag != "":
		found = store.EventsAt(day, slot)
	default:
		found = store.Events()
	}

	events := make([]models.Event, 0, len(found))
	for _, e := range found {
		if !filter.Matches(e) || (day >= 0 && e.Day != day) {
			continue
		}
		events = append(events, e)
	}
	sortByGrid(events)

	// Output based on mode
	if formatter.Quiet {
		for _, e := range events {
			fmt.Fprintln(cmd.OutOrStdout(), e.ID)
		}
		return nil
	}

	if formatter.JSON {
		views := make([]cli.EventView, len(events))
		for i, e := range events {
			views[i] = cli.NewEventView(e)
		}
		return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]any{
			"success": true,
			"filter":  string(filter),
			"events":  views,
		})
	}

	// Human-readable output
	if len(events) == 0 {
		formatter.Printf("No events found (%s)\n", filter.Label())
		return nil
	}

	formatter.Printf("Events (%s):\n", filter.Label())
	lastDay := -1
	for _, e := range events {
		if e.Day != lastDay {
			formatter.Printf("%s\n", styles.TitleStyle.Render(models.DayName(e.Day)))
			lastDay = e.Day
		}
		formatter.Printf("  %s-%s  %s %s\n", e.StartTime, e.EndTime,
			styles.RenderEventChip(e), styles.SubtitleStyle.Render("(ID: "+e.ID.String()+")"))
	}
	return nil
}

// sortByGrid orders events by day, then slot, keeping insertion order inside a cell
func sortByGrid(events []models.Event) {
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].Day != events[j].Day {
			return events[i].Day < events[j].Day
		}
		return models.SlotIndex(events[i].StartTime, events[i].EndTime) <
			models.SlotIndex(events[j].StartTime, events[j].EndTime)
	})
}
