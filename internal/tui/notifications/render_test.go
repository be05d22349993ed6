package notifications

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/weekboard/internal/tui/state"
)

func TestSeverityOf(t *testing.T) {
	assert.Equal(t, Info, severityOf(state.LevelInfo))
	assert.Equal(t, Warning, severityOf(state.LevelWarning))
	assert.Equal(t, Error, severityOf(state.LevelError))
}

func TestRenderInlineFromState(t *testing.T) {
	out := RenderInlineFromState(state.Notification{Level: state.LevelError, Message: "title is required"})
	assert.Contains(t, out, "title is required")
	assert.Contains(t, out, "✕")
}
