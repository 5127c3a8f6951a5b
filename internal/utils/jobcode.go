package utils

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// GenerateJobCode derives the immutable code assigned to a job at creation.
// Format: <category letter><3-digit ordinal>-<YYMMDD>, e.g. "I012-260829" for
// the owner's 12th job, category "Interior painting", created 2026-08-29.
// The ordinal is the count of the owner's jobs at creation time (1-based).
func GenerateJobCode(ordinal int, category string, created time.Time) string {
	return fmt.Sprintf("%c%03d-%s", CategoryLetter(category), ordinal, created.Format("060102"))
}

// CategoryLetter picks the code prefix from a job category. Falls back to 'X'
// when the category is empty or does not start with a letter.
func CategoryLetter(category string) rune {
	trimmed := strings.TrimSpace(category)
	if trimmed == "" {
		return 'X'
	}
	r := []rune(trimmed)[0]
	if !unicode.IsLetter(r) {
		return 'X'
	}
	return unicode.ToUpper(r)
}
