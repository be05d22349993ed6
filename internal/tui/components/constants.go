package components

const (
	CardHeight           = 3  // CardHeight is the fixed height of a card: border + one line + border
	ColumnWidth          = 32 // total column width including border
	cardWidth            = 28
	cardContentMaxLength = 24 // Maximum display length for card content before truncation
	columnBorderOverhead = 2  // top border + bottom border
	headerLines          = 1  // column title and count
	indicatorLines       = 2  // "▲ more above" and "▼ more below" rows

	SlotLabelWidth = 15 // width of the time column on the schedule grid
	MinCellWidth   = 10
	MaxCellWidth   = 24

	ellipsis = "…" // marks text cut to fit its cell or card
)
