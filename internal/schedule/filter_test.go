package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFilter(t *testing.T) {
	tests := []struct {
		in      string
		want    Filter
		wantErr bool
	}{
		{"", FilterAll, false},
		{"all", FilterAll, false},
		{"course", FilterCourse, false},
		{"event", FilterEvent, false},
		{"dayoff", FilterDayOff, false},
		{"meeting", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFilter(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		assert.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestFilter_NextCycles(t *testing.T) {
	f := FilterAll
	for range Filters {
		f = f.Next()
	}
	assert.Equal(t, FilterAll, f)
	assert.Equal(t, FilterCourse, FilterAll.Next())
	assert.Equal(t, "Course only", FilterCourse.Label())
}
