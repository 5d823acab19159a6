package util

import "strings"

// TrimToNil normalizes optional form fields: whitespace-only input is
// stored as NULL, anything else is stored trimmed.
func TrimToNil(s string) *string {
	t := strings.TrimSpace(s)
	if t == "" {
		return nil
	}
	return &t
}
