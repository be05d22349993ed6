package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome", "wave")
	Preset string `yaml:"preset"`

	// Primary accent color (used for selections, titles, highlights)
	Accent string `yaml:"accent"`

	// Background colors
	Background       string `yaml:"background"`
	ColumnBackground string `yaml:"column_background"`

	// Semantic colors
	Create string `yaml:"create"` // creation dialogs
	Edit   string `yaml:"edit"`   // rename dialogs
	Delete string `yaml:"delete"` // delete confirmations

	// Board colors
	ColumnBorder   string `yaml:"column_border"`
	CardBorder     string `yaml:"card_border"`
	CardBackground string `yaml:"card_background"`
	SelectedBorder string `yaml:"selected_border"`
	SelectedBg     string `yaml:"selected_bg"`
	DropTarget     string `yaml:"drop_target"` // column under a dragged card
	Lifted         string `yaml:"lifted"`      // the dragged card itself

	// Schedule colors, keyed by course code (C2, L1..L10)
	Courses    map[string]string `yaml:"courses"`
	EventColor string            `yaml:"event"`
	DayOff     string            `yaml:"dayoff"`
	Weekend    string            `yaml:"weekend"` // Sat/Sun header tint
	GridBorder string            `yaml:"grid_border"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Notification colors (foreground/background pairs)
	InfoFg    string `yaml:"info_fg"`
	InfoBg    string `yaml:"info_bg"`
	WarningFg string `yaml:"warning_fg"`
	WarningBg string `yaml:"warning_bg"`
	ErrorFg   string `yaml:"error_fg"`
	ErrorBg   string `yaml:"error_bg"`

	// Status bar
	StatusBarBg   string `yaml:"status_bar_bg"`
	StatusBarText string `yaml:"status_bar_text"`
}

// CourseCodes lists the known course codes in display order
var CourseCodes = []string{"C2", "L1", "L2", "L3", "L4", "L5", "L6", "L7", "L8", "L9", "L10"}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	case "wave":
		return Wave()
	default:
		return Default()
	}
}

// Presets lists the names accepted by GetPreset
func Presets() []string {
	return []string{"default", "monochrome", "wave"}
}

// CourseColor returns the color of a course code, falling back to C2
func (c *ColorScheme) CourseColor(code string) string {
	if color, ok := c.Courses[code]; ok && color != "" {
		return color
	}
	return c.Courses["C2"]
}

// stringFields pairs each plain color field for bulk fill/merge
func (c *ColorScheme) stringFields() []*string {
	return []*string{
		&c.Accent, &c.Background, &c.ColumnBackground,
		&c.Create, &c.Edit, &c.Delete,
		&c.ColumnBorder, &c.CardBorder, &c.CardBackground,
		&c.SelectedBorder, &c.SelectedBg, &c.DropTarget, &c.Lifted,
		&c.EventColor, &c.DayOff, &c.Weekend, &c.GridBorder,
		&c.Title, &c.Subtle, &c.Normal,
		&c.InfoFg, &c.InfoBg, &c.WarningFg, &c.WarningBg, &c.ErrorFg, &c.ErrorBg,
		&c.StatusBarBg, &c.StatusBarText,
	}
}

// ApplyDefaults fills in missing color values using the preset as base.
// Custom values already set win over the preset.
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)

	dst := c.stringFields()
	for i, src := range preset.stringFields() {
		if *dst[i] == "" {
			*dst[i] = *src
		}
	}

	if c.Courses == nil {
		c.Courses = make(map[string]string, len(CourseCodes))
	}
	for _, code := range CourseCodes {
		if c.Courses[code] == "" {
			c.Courses[code] = preset.Courses[code]
		}
	}
}

// MergeFrom overrides colors with every non-empty value of other
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	if other.Preset != "" {
		c.Preset = other.Preset
	}

	dst := c.stringFields()
	for i, src := range other.stringFields() {
		if *src != "" {
			*dst[i] = *src
		}
	}

	for code, color := range other.Courses {
		if color == "" {
			continue
		}
		if c.Courses == nil {
			c.Courses = make(map[string]string)
		}
		c.Courses[code] = color
	}
}
