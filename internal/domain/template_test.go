package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReplacePlaceholders(t *testing.T) {
	tests := []struct {
		name         string
		template     string
		replacements map[string]string
		expected     string
	}{
		{
			name:     "us address with empty organization",
			template: usTemplate + "\n%country",
			replacements: map[string]string{
				"%recipient":          "Jane Doe",
				"%organization":       "",
				"%addressLine1":       "123 Main St",
				"%addressLine2":       "",
				"%locality":           "Springfield",
				"%administrativeArea": "IL",
				"%postalCode":         "62701",
				"%country":            "UNITED STATES",
			},
			expected: "Jane Doe\n123 Main St\nSpringfield, IL 62701\nUNITED STATES",
		},
		{
			name:     "missing leading field leaves no stray comma",
			template: "%locality, %administrativeArea %postalCode",
			replacements: map[string]string{
				"%locality":           "",
				"%administrativeArea": "IL",
				"%postalCode":         "62701",
			},
			expected: "IL 62701",
		},
		{
			name:     "missing postal code after area",
			template: "%addressLine1\n%administrativeArea, %postalCode",
			replacements: map[string]string{
				"%addressLine1":       "1 Rue",
				"%administrativeArea": "",
				"%postalCode":         "",
			},
			expected: "1 Rue",
		},
		{
			name:     "values are trimmed",
			template: "%addressLine1\n%postalCode %locality",
			replacements: map[string]string{
				"%addressLine1": "  10 Downing St ",
				"%postalCode":   " SW1A 2AA",
				"%locality":     "London  ",
			},
			expected: "10 Downing St\nSW1A 2AA London",
		},
		{
			name:     "substituted values are not re-substituted",
			template: "%addressLine1\n%locality",
			replacements: map[string]string{
				"%addressLine1": "%locality street",
				"%locality":     "Paris",
			},
			expected: "%locality street\nParis",
		},
		{
			name:     "only one leading punctuation run is stripped",
			template: "%sortingCode,- ,%locality",
			replacements: map[string]string{
				"%sortingCode": "",
				"%locality":    "Lyon",
			},
			expected: ",Lyon",
		},
		{
			name:         "inner whitespace collapsed",
			template:     "%recipient\t\t%organization",
			replacements: map[string]string{"%recipient": "A", "%organization": "B"},
			expected:     "A B",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ReplacePlaceholders(tt.template, tt.replacements))
		})
	}
}

func TestCleanupLines(t *testing.T) {
	assert.Equal(t, "a\nb", CleanupLines("\n  a  \n\n,-, b\n   "))
	assert.Equal(t, "", CleanupLines("\n,\n-\n"))
}
