package progress

import "testing"

func TestPenalizedScore(t *testing.T) {
	tests := []struct {
		name  string
		raw   int
		total int
		want  int
	}{
		{"no wrong answers", 10, 10, 10},
		{"three wrong costs one", 7, 10, 6},
		{"partial triple not penalized", 5, 6, 5},
		{"two wrong no penalty", 8, 10, 8},
		{"six wrong costs two", 4, 10, 2},
		{"floors at zero", 1, 10, 0},
		{"all wrong", 0, 10, 0},
		{"zero questions", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PenalizedScore(tt.raw, tt.total)
			if got != tt.want {
				t.Errorf("PenalizedScore(%d, %d) = %d, want %d", tt.raw, tt.total, got, tt.want)
			}
		})
	}
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		name  string
		score int
		total int
		want  int
	}{
		{"perfect", 10, 10, 100},
		{"rounds to nearest", 5, 6, 83}, // 83.33 -> 83
		{"rounds half up", 1, 8, 13},
		{"six of ten", 6, 10, 60},
		{"zero score", 0, 10, 0},
		{"zero questions guarded", 5, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Percentage(tt.score, tt.total)
			if got != tt.want {
				t.Errorf("Percentage(%d, %d) = %d, want %d", tt.score, tt.total, got, tt.want)
			}
		})
	}
}
