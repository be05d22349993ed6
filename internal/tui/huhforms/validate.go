package huhforms

import (
	"fmt"
	"strings"
)

// notBlank returns a huh validator rejecting empty or whitespace-only input
func notBlank(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}
