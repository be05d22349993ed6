package event

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/weekboard/internal/cli"
	"github.com/thenoetrevino/weekboard/internal/models"
	"github.com/thenoetrevino/weekboard/internal/types"
)

// DeleteCmd returns the event delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete an event",
		Long: `Delete an event by ID (requires confirmation unless --force or --quiet).

Examples:
  # Delete with confirmation
  weekboard event delete --id=<event-id>

  # Skip confirmation
  weekboard event delete --id=<event-id> --force

  # Quiet mode (no confirmation)
  weekboard event delete --id=<event-id> --quiet
`,
		RunE: runDelete,
	}

	// Required flags
	cmd.Flags().String("id", "", "Event ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		slog.Error("Error marking flag as required", "flag", "id", "error", err)
	}

	// Optional flags
	cmd.Flags().Bool("force", false, "Skip confirmation")

	// Agent-friendly flags
	cli.AddOutputFlags(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	id, _ := cmd.Flags().GetString("id")
	force, _ := cmd.Flags().GetBool("force")

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.Report(formatter, cli.ExitError, "INITIALIZATION_ERROR", err, "")
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	// Get event details for confirmation
	e, ok := cliInstance.App.Schedule.Event(types.EventID(id))
	if !ok {
		return cli.Report(formatter, cli.ExitNotFound, "EVENT_NOT_FOUND",
			fmt.Errorf("%w: %s", errEventNotFound, id), "List events with: weekboard event list")
	}

	// Ask for confirmation unless force, quiet or JSON mode
	if !force && !formatter.Quiet && !formatter.JSON {
		fmt.Fprintf(cmd.OutOrStdout(), "Delete event '%s' on %s %s-%s? (y/N): ",
			e.Title, models.DayName(e.Day), e.StartTime, e.EndTime)
		response, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		response = strings.ToLower(strings.TrimSpace(response))
		if response != "y" && response != "yes" {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
			return nil
		}
	}

	if !cliInstance.App.Schedule.DeleteEvent(ctx, e.ID) {
		return cli.Report(formatter, cli.ExitNotFound, "EVENT_NOT_FOUND",
			fmt.Errorf("%w: %s", errEventNotFound, id), "")
	}
	if err := cliInstance.App.Schedule.PersistErr(); err != nil {
		return cli.Report(formatter, cli.ExitError, "STORAGE_ERROR", err, "")
	}

	// Output success
	if formatter.Quiet {
		return nil
	}

	if formatter.JSON {
		return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]any{
			"success":  true,
			"event_id": id,
		})
	}

	formatter.Printf("✓ Event '%s' deleted successfully\n", e.Title)
	return nil
}
