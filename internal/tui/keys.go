package tui

import (
	"charm.land/bubbles/v2/key"
	"github.com/thenoetrevino/weekboard/internal/config"
)

// keyMap holds the bindings built from the configured key mappings.
// Arrow keys always work alongside the configured navigation keys.
type keyMap struct {
	Left  key.Binding
	Right key.Binding
	Up    key.Binding
	Down  key.Binding

	AddCard    key.Binding
	DeleteCard key.Binding
	LiftCard   key.Binding
	CancelDrag key.Binding

	CreateColumn key.Binding
	RenameColumn key.Binding
	DeleteColumn key.Binding

	AddEvent    key.Binding
	DeleteEvent key.Binding
	NextInCell  key.Binding
	CycleFilter key.Binding
	ViewEvent   key.Binding

	SaveForm     key.Binding
	SwitchScreen key.Binding
	ShowHelp     key.Binding
	Quit         key.Binding
	ForceQuit    key.Binding
	Confirm      key.Binding
	Deny         key.Binding
}

func newKeyMap(km config.KeyMappings) keyMap {
	return keyMap{
		Left:  key.NewBinding(key.WithKeys(km.Left, "left"), key.WithHelp(km.Left+"/←", "left")),
		Right: key.NewBinding(key.WithKeys(km.Right, "right"), key.WithHelp(km.Right+"/→", "right")),
		Up:    key.NewBinding(key.WithKeys(km.Up, "up"), key.WithHelp(km.Up+"/↑", "up")),
		Down:  key.NewBinding(key.WithKeys(km.Down, "down"), key.WithHelp(km.Down+"/↓", "down")),

		AddCard:    key.NewBinding(key.WithKeys(km.AddCard), key.WithHelp(km.AddCard, "add card")),
		DeleteCard: key.NewBinding(key.WithKeys(km.DeleteCard), key.WithHelp(km.DeleteCard, "delete card")),
		LiftCard:   key.NewBinding(key.WithKeys(km.LiftCard), key.WithHelp(km.LiftCard, "lift / drop card")),
		CancelDrag: key.NewBinding(key.WithKeys(km.CancelDrag), key.WithHelp(km.CancelDrag, "cancel drag")),

		CreateColumn: key.NewBinding(key.WithKeys(km.CreateColumn), key.WithHelp(km.CreateColumn, "new column")),
		RenameColumn: key.NewBinding(key.WithKeys(km.RenameColumn), key.WithHelp(km.RenameColumn, "rename column")),
		DeleteColumn: key.NewBinding(key.WithKeys(km.DeleteColumn), key.WithHelp(km.DeleteColumn, "delete column")),

		AddEvent:    key.NewBinding(key.WithKeys(km.AddEvent), key.WithHelp(km.AddEvent, "add event")),
		DeleteEvent: key.NewBinding(key.WithKeys(km.DeleteEvent), key.WithHelp(km.DeleteEvent, "delete event")),
		NextInCell:  key.NewBinding(key.WithKeys(km.NextInCell), key.WithHelp(km.NextInCell, "next in cell")),
		CycleFilter: key.NewBinding(key.WithKeys(km.CycleFilter), key.WithHelp(km.CycleFilter, "cycle filter")),
		ViewEvent:   key.NewBinding(key.WithKeys(km.ViewEvent), key.WithHelp(km.ViewEvent, "view event")),

		SaveForm:     key.NewBinding(key.WithKeys(km.SaveForm), key.WithHelp(km.SaveForm, "save")),
		SwitchScreen: key.NewBinding(key.WithKeys(km.SwitchScreen), key.WithHelp(km.SwitchScreen, "board / schedule")),
		ShowHelp:     key.NewBinding(key.WithKeys(km.ShowHelp), key.WithHelp(km.ShowHelp, "help")),
		Quit:         key.NewBinding(key.WithKeys(km.Quit), key.WithHelp(km.Quit, "quit")),
		ForceQuit:    key.NewBinding(key.WithKeys("ctrl+c")),
		Confirm:      key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "confirm")),
		Deny:         key.NewBinding(key.WithKeys("n", "N", "esc"), key.WithHelp("n", "cancel")),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.SwitchScreen, k.ShowHelp, k.Quit}
}

// FullHelp implements help.KeyMap, one column per area
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down, k.SwitchScreen},
		{k.AddCard, k.DeleteCard, k.LiftCard, k.CancelDrag, k.CreateColumn, k.RenameColumn, k.DeleteColumn},
		{k.AddEvent, k.DeleteEvent, k.NextInCell, k.CycleFilter, k.ViewEvent, k.SaveForm},
		{k.ShowHelp, k.Quit},
	}
}
