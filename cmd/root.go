package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/weekboard/internal/cli"
	"github.com/thenoetrevino/weekboard/internal/cli/event"
	"github.com/thenoetrevino/weekboard/internal/cli/slots"
	"github.com/thenoetrevino/weekboard/internal/cli/week"
	"github.com/thenoetrevino/weekboard/internal/config"
	"github.com/thenoetrevino/weekboard/internal/launcher"
	"github.com/thenoetrevino/weekboard/internal/logging"
	"github.com/thenoetrevino/weekboard/internal/tui/state"
)

// logFile is opened by the persistent pre-run of scripted commands
var logFile io.Closer

var rootCmd = NewRootCmd()

// NewRootCmd builds the command tree. Without a subcommand the TUI opens on
// the board tab.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "weekboard",
		Short: "weekboard - a terminal kanban board and weekly schedule",
		Long: `weekboard keeps a kanban board and a 7-day schedule side by side in
the terminal. Run it without arguments to open the board, or use the
subcommands to script the schedule.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return launcher.Launch(state.BoardScreen)
		},
	}

	root.AddCommand(
		screenCmd("board", "Open the TUI on the board tab", state.BoardScreen),
		screenCmd("schedule", "Open the TUI on the schedule tab", state.ScheduleScreen),
	)

	scripted := []*cobra.Command{
		event.EventCmd(),
		slots.SlotsCmd(),
		week.WeekCmd(),
	}
	for _, c := range scripted {
		c.PersistentPreRunE = initLogging
		c.PersistentPostRunE = closeLogging
		root.AddCommand(c)
	}

	return root
}

func screenCmd(use, short string, screen state.Screen) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return launcher.Launch(screen)
		},
	}
}

// initLogging sends logs of scripted commands to the data dir log file so
// stdout stays machine readable
func initLogging(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		// Commands report config errors through their own formatter
		logging.Discard()
		return nil
	}
	closer, err := logging.Init(cfg.ResolvedDataDir(), cfg.SlogLevel())
	if err != nil {
		logging.Discard()
		return nil
	}
	logFile = closer
	return nil
}

func closeLogging(cmd *cobra.Command, args []string) error {
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

// Execute runs the root command and returns the process exit code
func Execute() int {
	err := rootCmd.Execute()
	if err == nil {
		return cli.ExitSuccess
	}

	var coded *cli.CodedError
	if !errors.As(err, &coded) {
		// Already reported errors carry a code; everything else is printed here
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return exitCodeFor(err)
}

// exitCodeFor maps command errors to exit codes. Flag and argument errors
// raised by cobra before a command runs are usage errors.
func exitCodeFor(err error) int {
	var coded *cli.CodedError
	if errors.As(err, &coded) {
		return coded.Code
	}
	msg := err.Error()
	for _, usage := range []string{"required flag", "unknown flag", "unknown command", "unknown shorthand flag", "accepts ", "invalid argument"} {
		if strings.Contains(msg, usage) {
			return cli.ExitUsage
		}
	}
	return cli.ExitError
}
