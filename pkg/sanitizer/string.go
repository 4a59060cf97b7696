package sanitizer

import (
	"strings"
	"unicode"
)

const MaxTextLength = 200

func TrimAndNormalize(s string) string {
	s = strings.TrimSpace(s)

	if s == "" {
		return ""
	}

	var result strings.Builder
	var lastWasSpace bool

	for _, r := range s {
		if unicode.IsSpace(r) {
			if !lastWasSpace {
				result.WriteRune(' ')
				lastWasSpace = true
			}
		} else {
			result.WriteRune(r)
			lastWasSpace = false
		}
	}

	return result.String()
}

// NormalizeLocation prepares a search location. Case is kept because the
// filter compares case-insensitively anyway.
func NormalizeLocation(location string) string {
	s := TrimAndNormalize(location)
	if r := []rune(s); len(r) > MaxTextLength {
		s = strings.TrimSpace(string(r[:MaxTextLength]))
	}
	return s
}

func NormalizeKeyword(keyword string) string {
	return strings.ToLower(TrimAndNormalize(keyword))
}

func NormalizeID(id string) string {
	id = strings.TrimSpace(id)
	for _, r := range id {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return ""
		}
	}
	return id
}
