package util

import "testing"

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		expected string
	}{
		{
			name:     "short string unchanged",
			input:    "hello",
			maxLen:   10,
			expected: "hello",
		},
		{
			name:     "exact length unchanged",
			input:    "hello",
			maxLen:   5,
			expected: "hello",
		},
		{
			name:     "long string truncated with ellipsis",
			input:    "hello world",
			maxLen:   8,
			expected: "hello w…",
		},
		{
			name:     "multibyte runes counted as one",
			input:    "éléphants énormes",
			maxLen:   9,
			expected: "éléphant…",
		},
		{
			name:     "max of one keeps one rune",
			input:    "hello",
			maxLen:   1,
			expected: "h",
		},
		{
			name:     "zero max yields empty",
			input:    "hello",
			maxLen:   0,
			expected: "",
		},
		{
			name:     "empty input",
			input:    "",
			maxLen:   4,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.input, tt.maxLen); got != tt.expected {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.expected)
			}
		})
	}
}
