package shared_test

import (
	"nirvanica/shared"
	"testing"
)

func TestBuildCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		parts    []string
		expected string
	}{
		{
			name:     "single part",
			parts:    []string{"limiter"},
			expected: "limiter",
		},
		{
			name:     "multiple parts",
			parts:    []string{"limiter", "10.0.0.1", "curl"},
			expected: "limiter:10.0.0.1:curl",
		},
		{
			name:     "empty input",
			parts:    nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shared.BuildCacheKey(tt.parts...); got != tt.expected {
				t.Errorf("BuildCacheKey() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestPlural(t *testing.T) {
	if shared.Plural(1) != "" {
		t.Error("Plural(1) should be empty")
	}

	if shared.Plural(2) != "s" {
		t.Error("Plural(2) should be \"s\"")
	}

	if shared.Plural(0) != "s" {
		t.Error("Plural(0) should be \"s\"")
	}
}
