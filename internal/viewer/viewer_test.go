package viewer

import "testing"

func TestNextSlices(t *testing.T) {
	tests := []struct {
		slices, dir, want int
	}{
		{100, 1, 125},
		{100, -1, 75},
		{4, -1, 3},
		{3, -1, 3},
		{3, 1, 4},
		{5, 1, 6},
	}
	for _, tt := range tests {
		if got := NextSlices(tt.slices, tt.dir); got != tt.want {
			t.Errorf("NextSlices(%d, %d) = %d, want %d", tt.slices, tt.dir, got, tt.want)
		}
	}
}
