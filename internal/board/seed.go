package board

import "github.com/thenoetrevino/weekboard/internal/models"

// DefaultColumns returns the starter board shown on a fresh session
func DefaultColumns() []models.Column {
	return []models.Column{
		{
			ID:    "todo",
			Title: "To Do",
			Cards: []models.Card{
				{ID: "1", Content: "Design the interface"},
				{ID: "2", Content: "Write the backend API"},
				{ID: "3", Content: "Create the database schema"},
			},
		},
		{
			ID:    "doing",
			Title: "Doing",
			Cards: []models.Card{
				{ID: "4", Content: "Implement authentication"},
				{ID: "5", Content: "Setup CI/CD pipeline"},
			},
		},
		{
			ID:    "done",
			Title: "Done",
			Cards: []models.Card{
				{ID: "6", Content: "Project setup"},
				{ID: "7", Content: "Choose tech stack"},
			},
		},
	}
}
