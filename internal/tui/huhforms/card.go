package huhforms

import "charm.land/huh/v2"

// CreateCardForm creates a huh form for adding a card to a column
func CreateCardForm(columnTitle string, content *string) *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Key("content").
			Title("New card in "+columnTitle).
			Placeholder("Enter card content...").
			Validate(notBlank("card content")).
			Value(content),
	)).WithShowHelp(false)
}
