package validation

import (
	"strings"
	"unicode/utf8"
)

// ParseSectionName validates and trims a section name. Per-owner uniqueness
// is not checked here; the persistence layer enforces it through the
// case-insensitive unique index and reports it as a distinct conflict error.
func ParseSectionName(raw string) (string, FieldErrors) {
	errs := FieldErrors{}
	trimmed := strings.TrimSpace(raw)

	if trimmed == "" {
		errs.add(FieldName, "Section name is required")
		return "", errs
	}
	if utf8.RuneCountInString(trimmed) > 100 {
		errs.add(FieldName, "Section name must be 100 characters or fewer")
		return "", errs
	}
	return trimmed, nil
}
