package event

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/weekboard/internal/app"
	"github.com/thenoetrevino/weekboard/internal/cli"
	"github.com/thenoetrevino/weekboard/internal/database"
	"github.com/thenoetrevino/weekboard/internal/models"
	"github.com/thenoetrevino/weekboard/internal/schedule"
	testcli "github.com/thenoetrevino/weekboard/internal/testutil/cli"
)

func mustSlot(t *testing.T, i int) models.TimeSlot {
	t.Helper()
	s, ok := models.SlotAt(i)
	require.True(t, ok)
	return s
}

func TestAddEvent_Integration(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		wantCode     int
		wantDay      int
		wantSlot     int
		wantType     models.EventType
		verifyOutput func(t *testing.T, output string)
	}{
		{
			name:     "course by day name and index",
			args:     []string{"--day", "mon", "--slot", "0", "--title", "L3: Networks", "--type", "course"},
			wantDay:  0,
			wantSlot: 0,
			wantType: models.EventTypeCourse,
			verifyOutput: func(t *testing.T, output string) {
				assert.Contains(t, output, "Event 'L3: Networks' added successfully")
				assert.Contains(t, output, "Mon 8:40 - 9:30")
			},
		},
		{
			name:     "event by start time defaults to type event",
			args:     []string{"--day", "4", "--slot", "18:35", "--title", "Concert", "--json"},
			wantDay:  4,
			wantSlot: 9,
			wantType: models.EventTypeEvent,
			verifyOutput: func(t *testing.T, output string) {
				result := testcli.ParseJSON(t, output)
				assert.Equal(t, true, result["success"])
				data := result["data"].(map[string]any)
				assert.Equal(t, "Concert", data["title"])
				assert.Equal(t, "event", data["color_class"])
				assert.Equal(t, "Fri", data["day_name"])
			},
		},
		{
			name:     "dayoff by range, quiet prints id",
			args:     []string{"--day", "sat", "--slot", "13:20-14:10", "--title", "Holiday", "--type", "dayoff", "--quiet"},
			wantDay:  5,
			wantSlot: 4,
			wantType: models.EventTypeDayOff,
			verifyOutput: func(t *testing.T, output string) {
				assert.Regexp(t, `^[0-9a-f-]{36}\n$`, output)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testApp, _ := testcli.SetupCLITest(t)

			output, err := testcli.ExecuteCLICommand(t, testApp, AddCmd(), tt.args)
			require.NoError(t, err)
			tt.verifyOutput(t, output)

			at := testApp.Schedule.EventsAt(tt.wantDay, mustSlot(t, tt.wantSlot))
			require.Len(t, at, 1)
			assert.Equal(t, tt.wantType, at[0].Type)
		})
	}
}

func TestAddEvent_Validation(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantErr  string
	}{
		{"bad day", []string{"--day", "funday", "--slot", "0", "--title", "x"}, cli.ExitValidation, "INVALID_DAY"},
		{"day out of range", []string{"--day", "7", "--slot", "0", "--title", "x"}, cli.ExitValidation, "INVALID_DAY"},
		{"bad slot", []string{"--day", "0", "--slot", "07:00", "--title", "x"}, cli.ExitValidation, "INVALID_SLOT"},
		{"slot index out of range", []string{"--day", "0", "--slot", "10", "--title", "x"}, cli.ExitValidation, "INVALID_SLOT"},
		{"bad type", []string{"--day", "0", "--slot", "0", "--title", "x", "--type", "meeting"}, cli.ExitValidation, "INVALID_TYPE"},
		{"blank title", []string{"--day", "0", "--slot", "0", "--title", "   "}, cli.ExitValidation, "INVALID_EVENT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testApp, slots := testcli.SetupCLITest(t)

			output, err := testcli.ExecuteCLICommand(t, testApp, AddCmd(), append(tt.args, "--json"))
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, cli.ExitCode(err))

			result := testcli.ParseJSON(t, output)
			assert.Equal(t, false, result["success"])
			assert.Equal(t, tt.wantErr, result["error"].(map[string]any)["code"])

			assert.Empty(t, testApp.Schedule.Events())
			_, found, _ := slots.Get(context.Background(), schedule.DefaultStorageKey)
			assert.False(t, found, "rejected input must not be persisted")
		})
	}
}

func TestAddEvent_MissingRequiredFlag(t *testing.T) {
	testApp, _ := testcli.SetupCLITest(t)

	_, err := testcli.ExecuteCLICommand(t, testApp, AddCmd(), []string{"--day", "0"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag")
}

func TestListEvents_Integration(t *testing.T) {
	ctx := context.Background()
	testApp, _ := testcli.SetupCLITest(t)
	store := testApp.Schedule

	store.AddEvent(ctx, 1, mustSlot(t, 2), "L1: Intro", "", models.EventTypeCourse)
	store.AddEvent(ctx, 0, mustSlot(t, 5), "Meetup", "", models.EventTypeEvent)
	store.AddEvent(ctx, 0, mustSlot(t, 1), "L2: Algebra", "", models.EventTypeCourse)
	store.AddEvent(ctx, 0, mustSlot(t, 1), "L2: Algebra", "", models.EventTypeCourse)

	t.Run("ordered by day then slot", func(t *testing.T) {
		output, err := testcli.ExecuteCLICommand(t, testApp, ListCmd(), []string{"--json"})
		require.NoError(t, err)

		events := testcli.ParseJSON(t, output)["events"].([]any)
		require.Len(t, events, 4)
		titles := make([]string, len(events))
		for i, e := range events {
			titles[i] = e.(map[string]any)["title"].(string)
		}
		assert.Equal(t, []string{"L2: Algebra", "L2: Algebra", "Meetup", "L1: Intro"}, titles)
	})

	t.Run("type filter", func(t *testing.T) {
		output, err := testcli.ExecuteCLICommand(t, testApp, ListCmd(), []string{"--type", "event", "--json"})
		require.NoError(t, err)
		assert.Len(t, testcli.ParseJSON(t, output)["events"].([]any), 1)
	})

	t.Run("single cell keeps duplicates", func(t *testing.T) {
		output, err := testcli.ExecuteCLICommand(t, testApp, ListCmd(), []string{"--day", "mon", "--slot", "09:40", "--json"})
		require.NoError(t, err)
		assert.Len(t, testcli.ParseJSON(t, output)["events"].([]any), 2)
	})

	t.Run("day filter, quiet", func(t *testing.T) {
		output, err := testcli.ExecuteCLICommand(t, testApp, ListCmd(), []string{"--day", "tue", "--quiet"})
		require.NoError(t, err)
		assert.Regexp(t, `^[0-9a-f-]{36}\n$`, output)
	})

	t.Run("slot without day is a usage error", func(t *testing.T) {
		_, err := testcli.ExecuteCLICommand(t, testApp, ListCmd(), []string{"--slot", "0", "--json"})
		require.Error(t, err)
		assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
	})

	t.Run("unknown filter", func(t *testing.T) {
		_, err := testcli.ExecuteCLICommand(t, testApp, ListCmd(), []string{"--type", "meeting", "--json"})
		require.Error(t, err)
		assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))
	})
}

func TestListEvents_Empty(t *testing.T) {
	testApp, _ := testcli.SetupCLITest(t)

	output, err := testcli.ExecuteCLICommand(t, testApp, ListCmd(), nil)
	require.NoError(t, err)
	assert.Contains(t, output, "No events found (All)")
}

func TestShowEvent_Integration(t *testing.T) {
	testApp, _ := testcli.SetupCLITest(t)
	id, ok := testApp.Schedule.AddEvent(context.Background(), 2, mustSlot(t, 3), "Party", "**bring** snacks", models.EventTypeEvent)
	require.True(t, ok)

	output, err := testcli.ExecuteCLICommand(t, testApp, ShowCmd(), []string{"--id", id.String(), "--json"})
	require.NoError(t, err)
	data := testcli.ParseJSON(t, output)["data"].(map[string]any)
	assert.Equal(t, "**bring** snacks", data["description"])

	output, err = testcli.ExecuteCLICommand(t, testApp, ShowCmd(), []string{"--id", id.String()})
	require.NoError(t, err)
	assert.Contains(t, output, "Party")
	assert.Contains(t, output, "snacks")

	_, err = testcli.ExecuteCLICommand(t, testApp, ShowCmd(), []string{"--id", "missing", "--json"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
}

func TestDeleteEvent_Integration(t *testing.T) {
	ctx := context.Background()

	t.Run("force deletes and persists", func(t *testing.T) {
		testApp, slots := testcli.SetupCLITest(t)
		id, _ := testApp.Schedule.AddEvent(ctx, 0, mustSlot(t, 0), "Math", "", models.EventTypeCourse)

		output, err := testcli.ExecuteCLICommand(t, testApp, DeleteCmd(), []string{"--id", id.String(), "--force"})
		require.NoError(t, err)
		assert.Contains(t, output, "Event 'Math' deleted successfully")
		assert.Empty(t, testApp.Schedule.Events())

		raw, _, _ := slots.Get(ctx, schedule.DefaultStorageKey)
		assert.JSONEq(t, `[]`, raw)
	})

	t.Run("declined confirmation keeps event", func(t *testing.T) {
		testApp, _ := testcli.SetupCLITest(t)
		id, _ := testApp.Schedule.AddEvent(ctx, 0, mustSlot(t, 0), "Math", "", models.EventTypeCourse)

		output, err := testcli.ExecuteCLICommandWithInput(t, testApp, DeleteCmd(), []string{"--id", id.String()}, "n\n")
		require.NoError(t, err)
		assert.Contains(t, output, "Cancelled")
		assert.Len(t, testApp.Schedule.Events(), 1)
	})

	t.Run("accepted confirmation deletes", func(t *testing.T) {
		testApp, _ := testcli.SetupCLITest(t)
		id, _ := testApp.Schedule.AddEvent(ctx, 0, mustSlot(t, 0), "Math", "", models.EventTypeCourse)

		_, err := testcli.ExecuteCLICommandWithInput(t, testApp, DeleteCmd(), []string{"--id", id.String()}, "yes\n")
		require.NoError(t, err)
		assert.Empty(t, testApp.Schedule.Events())
	})

	t.Run("unknown id", func(t *testing.T) {
		testApp, _ := testcli.SetupCLITest(t)

		output, err := testcli.ExecuteCLICommand(t, testApp, DeleteCmd(), []string{"--id", "nope", "--json"})
		require.Error(t, err)
		assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
		assert.Equal(t, "EVENT_NOT_FOUND", testcli.ParseJSON(t, output)["error"].(map[string]any)["code"])
	})
}

func TestEventCmd_Subcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range EventCmd().Commands() {
		names[c.Name()] = true
	}
	assert.Equal(t, map[string]bool{"add": true, "list": true, "show": true, "delete": true}, names)
}

// readOnlySlots rejects every write
type readOnlySlots struct {
	*database.MemorySlots
}

func (readOnlySlots) Set(context.Context, string, string) error {
	return errors.New("read-only storage")
}

func TestEventCmds_StorageFailure(t *testing.T) {
	ctx := context.Background()
	slots := readOnlySlots{database.NewMemorySlots()}
	testApp, err := app.New(ctx, app.WithSlotStore(slots))
	require.NoError(t, err)
	t.Cleanup(func() { _ = testApp.Close() })

	_, err = testcli.ExecuteCLICommand(t, testApp, AddCmd(), []string{"--day", "mon", "--slot", "0", "--title", "Math"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitError, cli.ExitCode(err))
	assert.ErrorIs(t, err, schedule.ErrPersist)

	events := testApp.Schedule.Events()
	require.Len(t, events, 1)
	_, err = testcli.ExecuteCLICommand(t, testApp, DeleteCmd(), []string{"--id", events[0].ID.String(), "--force"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitError, cli.ExitCode(err))
}
