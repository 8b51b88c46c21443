package queries

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsPattern(t *testing.T) {
	testCases := []struct {
		text     string
		expected string
	}{
		{"para", "%para%"},
		{"100%", `%100\%%`},
		{"b_12", `%b\_12%`},
		{`C:\x`, `%C:\\x%`},
		{"%_%", `%\%\_\%%`},
	}

	for _, tc := range testCases {
		t.Run(tc.text, func(t *testing.T) {
			assert.Equal(t, tc.expected, containsPattern(tc.text))
		})
	}
}
