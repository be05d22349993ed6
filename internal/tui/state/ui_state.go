package state

// Mode represents the current interaction mode of the TUI
type Mode int

const (
	NormalMode              Mode = iota // Default navigation mode
	DraggingMode                        // A card is lifted; left/right hover, release drops
	AddColumnMode                       // Creating a new column
	EditColumnMode                      // Renaming an existing column
	AddCardMode                         // Adding a card to the selected column
	DeleteColumnConfirmMode             // Confirming column deletion
	DeleteCardConfirmMode               // Confirming card deletion
	EventFormMode                       // Add-event modal keyed to a grid cell
	DeleteEventConfirmMode              // Confirming schedule event deletion
	EventDetailMode                     // Showing one event with its description
	HelpMode                            // Displaying help screen
)

// IsForm reports whether the mode is hosting a huh form
func (m Mode) IsForm() bool {
	switch m {
	case AddColumnMode, EditColumnMode, AddCardMode, EventFormMode:
		return true
	}
	return false
}

// IsConfirm reports whether the mode is a y/n delete confirmation
func (m Mode) IsConfirm() bool {
	switch m {
	case DeleteColumnConfirmMode, DeleteCardConfirmMode, DeleteEventConfirmMode:
		return true
	}
	return false
}

// Screen is one of the two top-level pages
type Screen int

const (
	BoardScreen Screen = iota
	ScheduleScreen
)

func (s Screen) String() string {
	if s == ScheduleScreen {
		return "Schedule"
	}
	return "Board"
}

// Next returns the other screen
func (s Screen) Next() Screen {
	if s == BoardScreen {
		return ScheduleScreen
	}
	return BoardScreen
}

// UIState tracks cursor positions, terminal size and the current mode.
// Cursors are indices; callers clamp them against the stores' current sizes.
type UIState struct {
	width  int
	height int
	mode   Mode
	screen Screen

	// Board cursor
	selectedColumn int
	selectedCard   int

	// Schedule cursor: day (0 = Mon), slot index and event index within the cell
	selectedDay   int
	selectedSlot  int
	selectedEvent int
}

// NewUIState creates a UIState in NormalMode on the given screen
func NewUIState(screen Screen) *UIState {
	return &UIState{
		mode:   NormalMode,
		screen: screen,
	}
}

func (s *UIState) Width() int {
	return s.width
}

func (s *UIState) SetWidth(width int) {
	s.width = width
}

func (s *UIState) Height() int {
	return s.height
}

func (s *UIState) SetHeight(height int) {
	s.height = height
}

// ContentHeight returns the height available between the tab bar and the status bar
func (s *UIState) ContentHeight() int {
	const tabBarHeight = 3    // tabs + gap line
	const statusBarHeight = 2 // status bar + gap line
	return max(s.height-tabBarHeight-statusBarHeight, 5)
}

func (s *UIState) Mode() Mode {
	return s.mode
}

func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

func (s *UIState) Screen() Screen {
	return s.screen
}

func (s *UIState) SetScreen(screen Screen) {
	s.screen = screen
}

// ============================================================================
// BOARD CURSOR
// ============================================================================

func (s *UIState) SelectedColumn() int {
	return s.selectedColumn
}

func (s *UIState) SetSelectedColumn(index int) {
	s.selectedColumn = index
}

func (s *UIState) SelectedCard() int {
	return s.selectedCard
}

func (s *UIState) SetSelectedCard(index int) {
	s.selectedCard = index
}

// ClampBoard keeps the board cursor inside a board of columnCount columns
// whose selected column holds cardCount(col) cards
func (s *UIState) ClampBoard(columnCount int, cardCount func(col int) int) {
	if columnCount == 0 {
		s.selectedColumn, s.selectedCard = 0, 0
		return
	}
	s.selectedColumn = clamp(s.selectedColumn, 0, columnCount-1)
	s.selectedCard = clamp(s.selectedCard, 0, max(cardCount(s.selectedColumn)-1, 0))
}

// ============================================================================
// SCHEDULE CURSOR
// ============================================================================

func (s *UIState) SelectedDay() int {
	return s.selectedDay
}

func (s *UIState) SelectedSlot() int {
	return s.selectedSlot
}

func (s *UIState) SelectedEvent() int {
	return s.selectedEvent
}

func (s *UIState) SetSelectedEvent(index int) {
	s.selectedEvent = index
}

// MoveCell moves the grid cursor by (dDay, dSlot) within days x slots,
// resetting the in-cell event index when the cell changes
func (s *UIState) MoveCell(dDay, dSlot, days, slots int) {
	day := clamp(s.selectedDay+dDay, 0, days-1)
	slot := clamp(s.selectedSlot+dSlot, 0, slots-1)
	if day != s.selectedDay || slot != s.selectedSlot {
		s.selectedEvent = 0
	}
	s.selectedDay, s.selectedSlot = day, slot
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
