package board

import "github.com/thenoetrevino/weekboard/internal/types"

// DragPhase is the state of the drag gesture
type DragPhase int

const (
	DragIdle           DragPhase = iota // Nothing lifted
	DragDragging                        // A card is lifted, no target highlighted
	DragHoveringTarget                  // A card is lifted and a column is highlighted
)

func (p DragPhase) String() string {
	switch p {
	case DragIdle:
		return "idle"
	case DragDragging:
		return "dragging"
	case DragHoveringTarget:
		return "hovering"
	}
	return "unknown"
}

// CardMover is the single store operation a drop needs
type CardMover interface {
	MoveCard(cardID types.CardID, sourceID, targetID types.ColumnID) bool
}

// Drag tracks one lift/hover/release gesture. Only one card may be lifted at
// a time; hovering only changes the highlight, and the board is touched
// exclusively on Release.
type Drag struct {
	mover    CardMover
	phase    DragPhase
	cardID   types.CardID
	sourceID types.ColumnID
	targetID types.ColumnID
}

// NewDrag creates an idle gesture tracker dropping onto mover
func NewDrag(mover CardMover) *Drag {
	return &Drag{mover: mover}
}

// Phase returns the current gesture state
func (d *Drag) Phase() DragPhase {
	return d.phase
}

// Lifted returns the card being dragged and its origin column
func (d *Drag) Lifted() (types.CardID, types.ColumnID, bool) {
	if d.phase == DragIdle {
		return "", "", false
	}
	return d.cardID, d.sourceID, true
}

// Highlighted returns the column currently hovered, if any
func (d *Drag) Highlighted() (types.ColumnID, bool) {
	if d.phase != DragHoveringTarget {
		return "", false
	}
	return d.targetID, true
}

// Lift starts a gesture. It fails when another card is already lifted.
func (d *Drag) Lift(cardID types.CardID, sourceID types.ColumnID) bool {
	if d.phase != DragIdle || cardID == "" || sourceID == "" {
		return false
	}
	d.phase = DragDragging
	d.cardID = cardID
	d.sourceID = sourceID
	d.targetID = ""
	return true
}

// Hover highlights a candidate target column
func (d *Drag) Hover(columnID types.ColumnID) bool {
	if d.phase == DragIdle || columnID == "" {
		return false
	}
	d.phase = DragHoveringTarget
	d.targetID = columnID
	return true
}

// Leave clears the highlight without ending the gesture
func (d *Drag) Leave() {
	if d.phase == DragHoveringTarget {
		d.phase = DragDragging
		d.targetID = ""
	}
}

// Release drops the lifted card onto the target column and ends the gesture.
// Dropping on the origin column is a cancellation. Reports whether the board
// changed.
func (d *Drag) Release(targetID types.ColumnID) bool {
	if d.phase == DragIdle {
		return false
	}
	cardID, sourceID := d.cardID, d.sourceID
	d.reset()

	if targetID == "" || targetID == sourceID {
		return false
	}
	return d.mover.MoveCard(cardID, sourceID, targetID)
}

// Cancel ends the gesture without touching the board, as when the card is
// released outside any column
func (d *Drag) Cancel() {
	d.reset()
}

func (d *Drag) reset() {
	d.phase = DragIdle
	d.cardID = ""
	d.sourceID = ""
	d.targetID = ""
}
