package huhforms

import "charm.land/huh/v2"

// CreateColumnForm creates a huh form for adding or renaming a column.
// The form contains a single input field for the column title and saves on
// completion. Blank titles are rejected by the field itself.
func CreateColumnForm(
	title *string,
	isEdit bool,
) *huh.Form {
	label := "New Column"
	if isEdit {
		label = "Rename Column"
	}

	fields := []huh.Field{
		huh.NewInput().
			Key("title").
			Title(label).
			Placeholder("Enter column title...").
			Validate(notBlank("column title")).
			Value(title),
	}

	return huh.NewForm(huh.NewGroup(fields...)).WithShowHelp(false)
}
