package colors

// Kanagawa wave palette
const (
	sumiInk1     = "#1F1F28"
	sumiInk2     = "#2A2A37"
	sumiInk3     = "#363646"
	sumiInk4     = "#54546D"
	sumiInk6     = "#727169"
	waveBlue1    = "#223249"
	waveAqua2    = "#7AA89F"
	oniViolet    = "#957FB8"
	crystalBlue  = "#7E9CD8"
	springGreen  = "#98BB6C"
	peachRed     = "#FF5D62"
	fujiGray     = "#727169"
	fujiWhite    = "#DCD7BA"
	dragonBlue   = "#658594"
	winterBlue   = "#252535"
	roninYellow  = "#FF9E3B"
	winterYellow = "#49443C"
	samuraiRed   = "#E82424"
	winterRed    = "#43242B"
	carpYellow   = "#E6C384"
	sakuraPink   = "#D27E99"
	surimiOrange = "#FFA066"
	waveRed      = "#E46876"
	lightBlue    = "#A3D4D5"
	springViolet = "#938AA9"
	springBlue   = "#7FB4CA"
	boatYellow   = "#C0A36E"
	autumnGreen  = "#76946A"
)

// Wave returns the Kanagawa Wave color scheme (dark theme with blue/purple accents)
func Wave() *ColorScheme {
	return &ColorScheme{
		Preset: "wave",

		// Primary accent color
		Accent: oniViolet,

		// Background colors
		Background:       sumiInk1,
		ColumnBackground: sumiInk2,

		// Semantic colors
		Create: springGreen,
		Edit:   crystalBlue,
		Delete: peachRed,

		// Board colors
		ColumnBorder:   sumiInk6,
		CardBorder:     sumiInk4,
		CardBackground: sumiInk3,
		SelectedBorder: waveAqua2,
		SelectedBg:     waveBlue1,
		DropTarget:     springGreen,
		Lifted:         carpYellow,

		// Schedule colors
		Courses: map[string]string{
			"C2":  crystalBlue,
			"L1":  waveRed,
			"L2":  surimiOrange,
			"L3":  carpYellow,
			"L4":  springGreen,
			"L5":  autumnGreen,
			"L6":  lightBlue,
			"L7":  springBlue,
			"L8":  springViolet,
			"L9":  oniViolet,
			"L10": sakuraPink,
		},
		EventColor: roninYellow,
		DayOff:     fujiGray,
		Weekend:    waveRed,
		GridBorder: sumiInk4,

		// Text colors
		Title:  crystalBlue,
		Subtle: fujiGray,
		Normal: fujiWhite,

		// Notification colors
		InfoFg:    dragonBlue,
		InfoBg:    winterBlue,
		WarningFg: roninYellow,
		WarningBg: winterYellow,
		ErrorFg:   samuraiRed,
		ErrorBg:   winterRed,

		// Status bar
		StatusBarBg:   boatYellow,
		StatusBarText: sumiInk1,
	}
}
