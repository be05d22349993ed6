package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Cards
	AddCard    string `yaml:"add_card"`
	DeleteCard string `yaml:"delete_card"`
	LiftCard   string `yaml:"lift_card"` // pick up, then drop on the hovered column
	CancelDrag string `yaml:"cancel_drag"`

	// Columns
	CreateColumn string `yaml:"create_column"`
	RenameColumn string `yaml:"rename_column"`
	DeleteColumn string `yaml:"delete_column"`

	// Schedule
	AddEvent     string `yaml:"add_event"`
	DeleteEvent  string `yaml:"delete_event"`
	NextInCell   string `yaml:"next_in_cell"`
	CycleFilter  string `yaml:"cycle_filter"`
	ViewEvent    string `yaml:"view_event"`
	SaveForm     string `yaml:"save_form"`
	SwitchScreen string `yaml:"switch_screen"`

	// Navigation (columns on the board, days and slots on the schedule)
	Left  string `yaml:"left"`
	Right string `yaml:"right"`
	Up    string `yaml:"up"`
	Down  string `yaml:"down"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Cards
		AddCard:    "a",
		DeleteCard: "d",
		LiftCard:   "space",
		CancelDrag: "esc",

		// Columns
		CreateColumn: "C",
		RenameColumn: "R",
		DeleteColumn: "X",

		// Schedule
		AddEvent:     "a",
		DeleteEvent:  "d",
		NextInCell:   "n",
		CycleFilter:  "f",
		ViewEvent:    "enter",
		SaveForm:     "ctrl+s",
		SwitchScreen: "tab",

		// Navigation
		Left:  "h",
		Right: "l",
		Up:    "k",
		Down:  "j",

		// Other
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.AddCard == "" {
		k.AddCard = defaults.AddCard
	}
	if k.DeleteCard == "" {
		k.DeleteCard = defaults.DeleteCard
	}
	if k.LiftCard == "" {
		k.LiftCard = defaults.LiftCard
	}
	if k.CancelDrag == "" {
		k.CancelDrag = defaults.CancelDrag
	}
	if k.CreateColumn == "" {
		k.CreateColumn = defaults.CreateColumn
	}
	if k.RenameColumn == "" {
		k.RenameColumn = defaults.RenameColumn
	}
	if k.DeleteColumn == "" {
		k.DeleteColumn = defaults.DeleteColumn
	}
	if k.AddEvent == "" {
		k.AddEvent = defaults.AddEvent
	}
	if k.DeleteEvent == "" {
		k.DeleteEvent = defaults.DeleteEvent
	}
	if k.NextInCell == "" {
		k.NextInCell = defaults.NextInCell
	}
	if k.CycleFilter == "" {
		k.CycleFilter = defaults.CycleFilter
	}
	if k.ViewEvent == "" {
		k.ViewEvent = defaults.ViewEvent
	}
	if k.SaveForm == "" {
		k.SaveForm = defaults.SaveForm
	}
	if k.SwitchScreen == "" {
		k.SwitchScreen = defaults.SwitchScreen
	}
	if k.Left == "" {
		k.Left = defaults.Left
	}
	if k.Right == "" {
		k.Right = defaults.Right
	}
	if k.Up == "" {
		k.Up = defaults.Up
	}
	if k.Down == "" {
		k.Down = defaults.Down
	}
	if k.ShowHelp == "" {
		k.ShowHelp = defaults.ShowHelp
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
