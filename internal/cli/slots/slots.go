package slots

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/weekboard/internal/cli"
	"github.com/thenoetrevino/weekboard/internal/cli/styles"
	"github.com/thenoetrevino/weekboard/internal/models"
)

// SlotsCmd returns the slots command listing the fixed daily time slots
func SlotsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "slots",
		Short: "List the daily time slots",
		Long: `List the fixed time slots events can be placed in.

Any of the index, start time or "start-end" range can be passed to --slot.

Examples:
  weekboard slots
  weekboard slots --json
`,
		RunE: runSlots,
	}

	// Agent-friendly flags
	cli.AddOutputFlags(cmd)

	return cmd
}

func runSlots(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)
	catalog := models.TimeSlots()

	if formatter.Quiet {
		for _, slot := range catalog {
			fmt.Fprintf(cmd.OutOrStdout(), "%s-%s\n", slot.StartTime, slot.EndTime)
		}
		return nil
	}

	if formatter.JSON {
		list := make([]map[string]any, len(catalog))
		for i, slot := range catalog {
			list[i] = map[string]any{
				"index":      i,
				"start_time": slot.StartTime,
				"end_time":   slot.EndTime,
				"label":      slot.Label,
			}
		}
		return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]any{
			"success": true,
			"slots":   list,
		})
	}

	formatter.Printf("%s\n", styles.TitleStyle.Render("Time slots"))
	for i, slot := range catalog {
		formatter.Printf("  %s %s\n", styles.LabelStyle.Render(fmt.Sprintf("%2d.", i)), styles.ValueStyle.Render(slot.Label))
	}
	return nil
}
