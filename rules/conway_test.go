package rules

import "testing"

func TestNextState(t *testing.T) {
	tests := []struct {
		name       string
		alive      bool
		neighbours int
		want       bool
	}{
		{"alive with none dies", true, 0, false},
		{"alive with one dies", true, 1, false},
		{"alive with two survives", true, 2, true},
		{"alive with three survives", true, 3, true},
		{"alive with four dies", true, 4, false},
		{"alive with eight dies", true, 8, false},
		{"dead with two stays dead", false, 2, false},
		{"dead with three is born", false, 3, true},
		{"dead with four stays dead", false, 4, false},
		{"dead with none stays dead", false, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextState(tt.alive, tt.neighbours); got != tt.want {
				t.Errorf("NextState(%v, %d) = %v, want %v", tt.alive, tt.neighbours, got, tt.want)
			}
		})
	}
}
