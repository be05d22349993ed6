package huhforms

import (
	"charm.land/huh/v2"
	"github.com/thenoetrevino/weekboard/internal/models"
)

// CreateEventForm creates the add-event dialog for one grid cell.
// The cell itself is fixed by the caller and shown in the form title.
func CreateEventForm(
	cellLabel string,
	eventType *models.EventType,
	title *string,
	description *string,
	descriptionLines int,
) *huh.Form {
	options := make([]huh.Option[models.EventType], 0, len(models.EventTypes))
	for _, t := range models.EventTypes {
		options = append(options, huh.NewOption(t.Label(), t))
	}

	fields := []huh.Field{
		huh.NewSelect[models.EventType]().
			Key("type").
			Title("Add event · "+cellLabel).
			Options(options...).
			Value(eventType),

		huh.NewInput().
			Key("title").
			Title("Title").
			Placeholder("e.g. L3: Algebra").
			Validate(notBlank("title")).
			Value(title),

		huh.NewText().
			Key("description").
			Title("Description").
			Placeholder("Optional markdown notes...").
			CharLimit(2000).
			Lines(descriptionLines).
			Value(description),
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	return form.WithKeyMap(CreateKeyMapWithShiftEnter()).WithShowHelp(false)
}
