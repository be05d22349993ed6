package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/weekboard/internal/models"
)

// Validation errors for flag values
var (
	ErrUnknownDay  = errors.New("unknown day")
	ErrUnknownSlot = errors.New("unknown time slot")
)

var dayAliases = map[string]int{
	"mon": 0, "monday": 0,
	"tue": 1, "tuesday": 1,
	"wed": 2, "wednesday": 2,
	"thu": 3, "thursday": 3,
	"fri": 4, "friday": 4,
	"sat": 5, "saturday": 5,
	"sun": 6, "sunday": 6,
}

// ParseDay accepts 0..6 (Monday = 0) or a day name such as "mon" or "Friday"
func ParseDay(s string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if day, ok := dayAliases[s]; ok {
		return day, nil
	}
	if day, err := strconv.Atoi(s); err == nil && models.ValidDay(day) {
		return day, nil
	}
	return 0, fmt.Errorf("%w '%s' (must be 0-6 or mon..sun)", ErrUnknownDay, s)
}

// ParseSlot accepts a catalog index (0..9), a start time ("08:40") or a
// full range ("08:40-09:30")
func ParseSlot(s string) (models.TimeSlot, error) {
	s = strings.TrimSpace(s)

	if idx, err := strconv.Atoi(s); err == nil {
		if slot, ok := models.SlotAt(idx); ok {
			return slot, nil
		}
	}

	start, end, hasEnd := strings.Cut(s, "-")
	start, end = strings.TrimSpace(start), strings.TrimSpace(end)
	for _, slot := range models.TimeSlots() {
		if slot.StartTime != start {
			continue
		}
		if !hasEnd || slot.EndTime == end {
			return slot, nil
		}
	}
	return models.TimeSlot{}, fmt.Errorf("%w '%s' (run 'weekboard slots' to list them)", ErrUnknownSlot, s)
}

// NewFormatter builds a formatter from the --json/--quiet flags of cmd
func NewFormatter(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{
		JSON:   jsonOutput,
		Quiet:  quietMode,
		Out:    cmd.OutOrStdout(),
		ErrOut: cmd.ErrOrStderr(),
	}
}

// AddOutputFlags registers the agent-friendly output flags
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")
}

// Report writes an error through the formatter and returns it with an exit code
func Report(f *OutputFormatter, exitCode int, code string, err error, suggestion string) error {
	if fmtErr := f.ErrorWithSuggestion(code, err.Error(), suggestion); fmtErr != nil {
		slog.Error("Error formatting error message", "error", fmtErr)
	}
	return Fail(exitCode, err)
}
