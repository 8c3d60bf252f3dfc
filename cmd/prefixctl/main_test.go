package main

import "testing"

func TestFormatStrings(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  string
	}{
		{"empty", nil, "[]"},
		{"one", []string{"a"}, `["a"]`},
		{"three", []string{"a", "b", "c"}, `["a", "b", "c"]`},
		{"truncated", []string{"a", "b", "c", "d", "e"}, `["a", "b", "c", ...]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatStrings(tt.input); got != tt.want {
				t.Errorf("formatStrings(%v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
