package utils

import (
	"testing"
	"time"
)

func TestGenerateJobCode(t *testing.T) {
	created := time.Date(2026, 8, 29, 10, 30, 0, 0, time.UTC)

	code := GenerateJobCode(12, "Interior painting", created)
	if code != "I012-260829" {
		t.Errorf("Expected I012-260829, got %s", code)
	}

	// Lowercase category letter is uppercased
	code = GenerateJobCode(1, "exterior", created)
	if code != "E001-260829" {
		t.Errorf("Expected E001-260829, got %s", code)
	}

	// Empty category falls back to X
	code = GenerateJobCode(3, "", created)
	if code != "X003-260829" {
		t.Errorf("Expected X003-260829, got %s", code)
	}
}

func TestCategoryLetter(t *testing.T) {
	testCases := []struct {
		category string
		want     rune
	}{
		{"Interior painting", 'I'},
		{"waterproofing", 'W'},
		{"  Texture  ", 'T'},
		{"", 'X'},
		{"   ", 'X'},
		{"3-coat system", 'X'},
	}

	for _, tc := range testCases {
		got := CategoryLetter(tc.category)
		if got != tc.want {
			t.Errorf("CategoryLetter(%q) = %c, want %c", tc.category, got, tc.want)
		}
	}
}
