package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// Day Parsing Tests
// ============================================================================

func TestParseDay(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"0", 0},
		{"6", 6},
		{"mon", 0},
		{"Tuesday", 1},
		{" WED ", 2},
		{"sun", 6},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDay(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDay_Invalid(t *testing.T) {
	for _, in := range []string{"", "7", "-1", "someday"} {
		_, err := ParseDay(in)
		assert.ErrorIs(t, err, ErrUnknownDay, in)
	}
}

// ============================================================================
// Slot Parsing Tests
// ============================================================================

func TestParseSlot(t *testing.T) {
	tests := []struct {
		in        string
		wantStart string
	}{
		{"0", "08:40"},
		{"9", "18:35"},
		{"13:20", "13:20"},
		{"17:35-18:25", "17:35"},
		{" 10:40 - 11:30 ", "10:40"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSlot(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, got.StartTime)
		})
	}
}

func TestParseSlot_Invalid(t *testing.T) {
	for _, in := range []string{"10", "-1", "08:00", "08:40-10:00", "noon"} {
		_, err := ParseSlot(in)
		assert.ErrorIs(t, err, ErrUnknownSlot, in)
	}
}

// ============================================================================
// Exit Code Tests
// ============================================================================

func TestExitCode(t *testing.T) {
	base := errors.New("boom")

	assert.Equal(t, ExitSuccess, ExitCode(nil))
	assert.Equal(t, ExitError, ExitCode(base))
	assert.Equal(t, ExitNotFound, ExitCode(Fail(ExitNotFound, base)))
	assert.Equal(t, ExitValidation, ExitCode(fmt.Errorf("wrapped: %w", Fail(ExitValidation, base))))
	assert.ErrorIs(t, Fail(ExitUsage, base), base)
}
