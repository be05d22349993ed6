package colors

// Default returns the default color scheme (purple theme)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		// Primary
		Accent: "#874BFD",

		// Background
		Background:       "#1C1C1C",
		ColumnBackground: "#262626",

		// Semantic
		Create: "#5FD75F",
		Edit:   "#5F87D7",
		Delete: "#FF0000",

		// Board
		ColumnBorder:   "#5F87D7",
		CardBorder:     "#585858",
		CardBackground: "#262626",
		SelectedBorder: "#D75FD7",
		SelectedBg:     "#3A3A3A",
		DropTarget:     "#5FD75F",
		Lifted:         "#FFD700",

		// Schedule
		Courses: map[string]string{
			"C2":  "#5F87D7",
			"L1":  "#D75F5F",
			"L2":  "#D7875F",
			"L3":  "#D7AF5F",
			"L4":  "#AFD75F",
			"L5":  "#5FD787",
			"L6":  "#5FD7D7",
			"L7":  "#5FAFD7",
			"L8":  "#875FD7",
			"L9":  "#AF5FD7",
			"L10": "#D75FAF",
		},
		EventColor: "#FFAF00",
		DayOff:     "#808080",
		Weekend:    "#FF8787",
		GridBorder: "#444444",

		// Text
		Title:  "#D75FD7",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		// Notifications
		InfoFg:    "#00AFFF",
		InfoBg:    "#00005F",
		WarningFg: "#FFD700",
		WarningBg: "#875F00",
		ErrorFg:   "#FF0000",
		ErrorBg:   "#5F0000",

		// Status bar
		StatusBarBg:   "#874BFD", // Matches accent
		StatusBarText: "#D0D0D0", // Matches normal text
	}
}
