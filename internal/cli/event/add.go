package event

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/weekboard/internal/cli"
	"github.com/thenoetrevino/weekboard/internal/models"
)

// AddCmd returns the event add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an event to the weekly schedule",
		Long: `Add an event pinned to one day and one time slot.

Examples:
  # Course on Monday, first slot (human-readable output)
  weekboard event add --day=mon --slot=0 --title="L3: Networks" --type=course

  # Slot by start time, JSON output for agents
  weekboard event add --day=4 --slot=18:35 --title="Concert" --json

  # Quiet mode for bash capture
  EVENT_ID=$(weekboard event add --day=sat --slot=08:40 --title="Holiday" --type=dayoff --quiet)
`,
		RunE: runAdd,
	}

	// Required flags
	cmd.Flags().String("day", "", "Day: 0-6 or mon..sun (required)")
	cmd.Flags().String("slot", "", "Time slot: index 0-9, start time or range (required)")
	cmd.Flags().String("title", "", "Event title (required)")
	for _, name := range []string{"day", "slot", "title"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			slog.Error("Error marking flag as required", "flag", name, "error", err)
		}
	}

	// Optional flags
	cmd.Flags().String("description", "", "Event description (markdown)")
	cmd.Flags().String("type", string(models.EventTypeEvent), "Event type: course, event or dayoff")

	// Agent-friendly flags
	cli.AddOutputFlags(cmd)

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	dayFlag, _ := cmd.Flags().GetString("day")
	slotFlag, _ := cmd.Flags().GetString("slot")
	title, _ := cmd.Flags().GetString("title")
	description, _ := cmd.Flags().GetString("description")
	typeFlag, _ := cmd.Flags().GetString("type")

	// Validate input before touching storage
	day, err := cli.ParseDay(dayFlag)
	if err != nil {
		return cli.Report(formatter, cli.ExitValidation, "INVALID_DAY", err, "")
	}
	slot, err := cli.ParseSlot(slotFlag)
	if err != nil {
		return cli.Report(formatter, cli.ExitValidation, "INVALID_SLOT", err, "List the time slots with: weekboard slots")
	}
	eventType, err := models.ParseEventType(typeFlag)
	if err != nil {
		return cli.Report(formatter, cli.ExitValidation, "INVALID_TYPE", err, "Use one of: course, event, dayoff")
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

	id, ok := cliInstance.App.Schedule.AddEvent(ctx, day, slot, title, description, eventType)
	if !ok {
		return cli.Report(formatter, cli.ExitValidation, "INVALID_EVENT",
			errors.New("event title must not be blank"), "")
	}
	if err := cliInstance.App.Schedule.PersistErr(); err != nil {
		return cli.Report(formatter, cli.ExitError, "STORAGE_ERROR", err, "")
	}

	added, _ := cliInstance.App.Schedule.Event(id)
	view := cli.NewEventView(added)

	if formatter.Quiet || formatter.JSON {
		return formatter.Success(view)
	}

	// Human-readable output
	formatter.Printf("✓ Event '%s' added successfully (ID: %s)\n", added.Title, id)
	formatter.Printf("  %s %s\n", models.DayName(day), slot.Label)
	if n := len(cliInstance.App.Schedule.EventsAt(day, slot)); n > 1 {
		formatter.Printf("  %s\n", fmt.Sprintf("Note: %d events now share this slot", n))
	}
	return nil
}
