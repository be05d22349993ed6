package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/weekboard/internal/database"
	"github.com/thenoetrevino/weekboard/internal/events"
	"github.com/thenoetrevino/weekboard/internal/models"
)

func TestNew(t *testing.T) {
	app, err := New(context.Background())
	require.NoError(t, err)
	defer func() { _ = app.Close() }()

	require.NotNil(t, app.Board)
	require.NotNil(t, app.Schedule)
	require.NotNil(t, app.Bus)

	cols := app.Board.Columns()
	require.Len(t, cols, 3)
	assert.Equal(t, "To Do", cols[0].Title)
	assert.Empty(t, app.Schedule.Events())
}

func TestNew_PersistsAcrossRestart(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	first, err := New(ctx, WithDataDir(dir))
	require.NoError(t, err)

	slot, _ := models.SlotAt(0)
	_, ok := first.Schedule.AddEvent(ctx, 0, slot, "Math", "", models.EventTypeCourse)
	require.True(t, ok)
	require.NoError(t, first.Close())

	second, err := New(ctx, WithDataDir(dir))
	require.NoError(t, err)
	defer func() { _ = second.Close() }()

	at := second.Schedule.EventsAt(0, slot)
	require.Len(t, at, 1)
	assert.Equal(t, "Math", at[0].Title)
}

func TestNew_BoardIsNotPersisted(t *testing.T) {
	ctx := context.Background()
	slots := database.NewMemorySlots()

	first, err := New(ctx, WithSlotStore(slots))
	require.NoError(t, err)
	first.Board.AddColumn("Backlog")

	second, err := New(ctx, WithSlotStore(slots))
	require.NoError(t, err)
	assert.Len(t, second.Board.Columns(), 3)
}

func TestNew_StorageKey(t *testing.T) {
	ctx := context.Background()
	slots := database.NewMemorySlots()

	app, err := New(ctx, WithSlotStore(slots), WithStorageKey("custom"))
	require.NoError(t, err)

	slot, _ := models.SlotAt(1)
	app.Schedule.AddEvent(ctx, 1, slot, "Concert", "", models.EventTypeEvent)

	_, found, err := slots.Get(ctx, "custom")
	require.NoError(t, err)
	assert.True(t, found)
}

type failingPublisher struct {
	sent []events.Event
}

func (f *failingPublisher) SendEvent(e events.Event) error {
	f.sent = append(f.sent, e)
	return errors.New("offline")
}

func TestNew_FansOutEvents(t *testing.T) {
	extra := &failingPublisher{}
	app, err := New(context.Background(), WithEventPublisher(extra), WithBoardSeed(nil))
	require.NoError(t, err)

	var onBus []events.Action
	app.Bus.Subscribe(func(e events.Event) { onBus = append(onBus, e.Action) })

	_, ok := app.Board.AddColumn("Backlog")
	require.True(t, ok)

	assert.Equal(t, []events.Action{events.ActionColumnAdded}, onBus)
	require.Len(t, extra.sent, 1)
	assert.Equal(t, events.EventBoardChanged, extra.sent[0].Type)
}

func TestClose(t *testing.T) {
	app, err := New(context.Background(), WithDataDir(t.TempDir()))
	require.NoError(t, err)

	assert.NoError(t, app.Close())
	assert.NoError(t, app.Close(), "second Close is a no-op")
}
