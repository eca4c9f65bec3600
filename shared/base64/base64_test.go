package base64_test

import (
	"praxis/shared/base64"
	"testing"
)

func TestGetContentType(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "png data url",
			input:    "data:image/png;base64,iVBORw0KGgoAAAANSUhEUg==",
			expected: "image/png",
		},
		{
			name:     "jpeg data url",
			input:    "data:image/jpeg;base64,/9j/4AAQSkZJRg==",
			expected: "image/jpeg",
		},
		{
			name:     "webp data url",
			input:    "data:image/webp;base64,UklGRh4AAABXRUJQVlA4",
			expected: "image/webp",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "missing base64 marker",
			input:    "data:image/png,iVBORw0KGgo=",
			expected: "",
		},
		{
			name:     "missing data prefix",
			input:    "image/png;base64,iVBORw0KGgo=",
			expected: "/png",
		},
		{
			name:     "bare prefix",
			input:    "data:;base64,",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := base64.GetContentType(tt.input)
			if result != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, result)
			}
		})
	}
}
