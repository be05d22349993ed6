package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/weekboard/internal/board"
	"github.com/thenoetrevino/weekboard/internal/types"
	"github.com/thenoetrevino/weekboard/internal/tui/state"
)

func cardIDs(m Model, column types.ColumnID) []types.CardID {
	col, _ := m.App.Board.Column(column)
	ids := make([]types.CardID, 0, len(col.Cards))
	for _, c := range col.Cards {
		ids = append(ids, c.ID)
	}
	return ids
}

func TestBoardNavigation(t *testing.T) {
	m := newTestModel(t, state.BoardScreen)

	m = press(t, m, "j", "j", "j", "j")
	assert.Equal(t, 2, m.UiState.SelectedCard(), "cursor stops at the last card")

	m = press(t, m, "l")
	assert.Equal(t, 1, m.UiState.SelectedColumn())
	assert.Equal(t, 0, m.UiState.SelectedCard(), "changing column resets the card cursor")

	m = press(t, m, "right", "right", "right")
	assert.Equal(t, 2, m.UiState.SelectedColumn())

	m = press(t, m, "h", "h", "h")
	assert.Equal(t, 0, m.UiState.SelectedColumn())
}

func TestDrag_LiftHoverRelease(t *testing.T) {
	m := newTestModel(t, state.BoardScreen)

	m = press(t, m, "j", "space")
	require.Equal(t, state.DraggingMode, m.UiState.Mode())
	cardID, source, ok := m.Drag.Lifted()
	require.True(t, ok)
	assert.Equal(t, types.CardID("2"), cardID)
	assert.Equal(t, types.ColumnID("todo"), source)

	m = press(t, m, "l")
	target, ok := m.Drag.Highlighted()
	require.True(t, ok)
	assert.Equal(t, types.ColumnID("doing"), target)
	assert.Equal(t, []types.CardID{"1", "2", "3"}, cardIDs(m, "todo"), "hovering never mutates the board")

	m = press(t, m, "space")
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.Equal(t, board.DragIdle, m.Drag.Phase())
	assert.Equal(t, []types.CardID{"1", "3"}, cardIDs(m, "todo"))
	assert.Equal(t, []types.CardID{"4", "5", "2"}, cardIDs(m, "doing"), "dropped card lands at the end")
	assert.Equal(t, 1, m.UiState.SelectedColumn())
	assert.Equal(t, 2, m.UiState.SelectedCard(), "cursor follows the dropped card")
}

func TestDrag_ReleaseOnOriginIsNoop(t *testing.T) {
	m := newTestModel(t, state.BoardScreen)

	m = press(t, m, "space", "l", "h", "space")

	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.Equal(t, []types.CardID{"1", "2", "3"}, cardIDs(m, "todo"))
	assert.Equal(t, []types.CardID{"4", "5"}, cardIDs(m, "doing"))
}

func TestDrag_CancelLeavesBoard(t *testing.T) {
	m := newTestModel(t, state.BoardScreen)

	m = press(t, m, "space", "l", "l", "esc")

	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.Equal(t, board.DragIdle, m.Drag.Phase())
	assert.Equal(t, []types.CardID{"6", "7"}, cardIDs(m, "done"))
	assert.Equal(t, []types.CardID{"1", "2", "3"}, cardIDs(m, "todo"))
}

func TestDrag_IgnoresOtherKeys(t *testing.T) {
	m := newTestModel(t, state.BoardScreen)

	m = press(t, m, "space", "d", "X", "tab")

	assert.Equal(t, state.DraggingMode, m.UiState.Mode(), "only drag keys apply while a card is lifted")
	assert.Equal(t, state.BoardScreen, m.UiState.Screen())
	assert.Len(t, m.App.Board.Columns(), 3)
}

func TestDeleteCard_Confirm(t *testing.T) {
	m := newTestModel(t, state.BoardScreen)

	m = press(t, m, "d")
	require.Equal(t, state.DeleteCardConfirmMode, m.UiState.Mode())
	assert.Contains(t, plain(m.renderConfirmBox()), "Delete card 'Design the interface'?")

	m = press(t, m, "n")
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.Len(t, cardIDs(m, "todo"), 3)

	m = press(t, m, "d", "y")
	assert.Equal(t, []types.CardID{"2", "3"}, cardIDs(m, "todo"))
}

func TestDeleteColumn_ConfirmCascades(t *testing.T) {
	m := newTestModel(t, state.BoardScreen)

	m = press(t, m, "l", "l", "X")
	require.Equal(t, state.DeleteColumnConfirmMode, m.UiState.Mode())
	assert.Contains(t, plain(m.renderConfirmBox()), "This will also delete 2 card(s).")

	m = press(t, m, "y")
	assert.Len(t, m.App.Board.Columns(), 2)
	assert.Equal(t, 1, m.UiState.SelectedColumn(), "cursor clamps to the new last column")
	_, _, found := m.App.Board.FindCard("6")
	assert.False(t, found)
}

func TestCreateColumn_SaveShortcut(t *testing.T) {
	m := newTestModel(t, state.BoardScreen)

	m = press(t, m, "C")
	require.Equal(t, state.AddColumnMode, m.UiState.Mode())
	require.NotNil(t, m.FormState.Form)

	m.FormState.ColumnTitle = "  Review  "
	m = press(t, m, "ctrl+s")

	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.Nil(t, m.FormState.Form)
	columns := m.App.Board.Columns()
	require.Len(t, columns, 4)
	assert.Equal(t, "Review", columns[3].Title)
	assert.Equal(t, 3, m.UiState.SelectedColumn())
}

func TestCreateColumn_BlankKeepsDialogOpen(t *testing.T) {
	m := newTestModel(t, state.BoardScreen)

	m = press(t, m, "C")
	m.FormState.ColumnTitle = "   "
	m = press(t, m, "ctrl+s")

	assert.Equal(t, state.AddColumnMode, m.UiState.Mode())
	assert.Len(t, m.App.Board.Columns(), 3)
	latest, ok := m.NotificationState.Latest()
	require.True(t, ok)
	assert.Equal(t, state.LevelWarning, latest.Level)

	m = press(t, m, "esc")
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
}

func TestRenameColumn(t *testing.T) {
	m := newTestModel(t, state.BoardScreen)

	m = press(t, m, "l", "R")
	require.Equal(t, state.EditColumnMode, m.UiState.Mode())
	assert.Equal(t, "Doing", m.FormState.ColumnTitle, "form starts with the current title")

	m.FormState.ColumnTitle = "In Progress"
	m = press(t, m, "ctrl+s")

	col, _ := m.App.Board.Column("doing")
	assert.Equal(t, "In Progress", col.Title)
}

func TestRenameColumn_BlankKeepsTitle(t *testing.T) {
	m := newTestModel(t, state.BoardScreen)

	m = press(t, m, "R")
	m.FormState.ColumnTitle = ""
	m = press(t, m, "ctrl+s")

	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	col, _ := m.App.Board.Column("todo")
	assert.Equal(t, "To Do", col.Title)
}

func TestAddCard(t *testing.T) {
	m := newTestModel(t, state.BoardScreen)

	m = press(t, m, "l", "l", "a")
	require.Equal(t, state.AddCardMode, m.UiState.Mode())

	m.FormState.CardContent = "Ship it"
	m = press(t, m, "ctrl+s")

	col, _ := m.App.Board.Column("done")
	require.Len(t, col.Cards, 3)
	assert.Equal(t, "Ship it", col.Cards[2].Content)
	assert.Equal(t, 2, m.UiState.SelectedCard())
}

func TestBoardMutationsReachSubscription(t *testing.T) {
	m := newTestModel(t, state.BoardScreen)
	drainEvents(m)

	m = press(t, m, "space", "l", "space")

	queued := drainEvents(m)
	require.Len(t, queued, 1)
	m = update(t, m, queued[0])

	latest, ok := m.NotificationState.Latest()
	require.True(t, ok)
	assert.Equal(t, "Card moved", latest.Message)
}
