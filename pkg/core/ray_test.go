package core

import "testing"

func TestRay_Position(t *testing.T) {
	ray := NewRay(Point(2, 3, 4), Vector(1, 0, 0))

	tests := []struct {
		t        float64
		expected Tuple
	}{
		{0, Point(2, 3, 4)},
		{1, Point(3, 3, 4)},
		{-1, Point(1, 3, 4)},
		{2.5, Point(4.5, 3, 4)},
	}

	for _, tt := range tests {
		if got := ray.Position(tt.t); !got.Equal(tt.expected) {
			t.Errorf("Position(%f): expected %v, got %v", tt.t, tt.expected, got)
		}
	}
}

func TestRay_Transform(t *testing.T) {
	ray := NewRay(Point(1, 2, 3), Vector(0, 1, 0))

	tests := []struct {
		name              string
		transform         Matrix
		expectedOrigin    Tuple
		expectedDirection Tuple
	}{
		{"translation", Translation(3, 4, 5), Point(4, 6, 8), Vector(0, 1, 0)},
		{"scaling", Scaling(2, 3, 4), Point(2, 6, 12), Vector(0, 3, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ray.Transform(tt.transform)
			if !got.Origin.Equal(tt.expectedOrigin) {
				t.Errorf("Expected origin %v, got %v", tt.expectedOrigin, got.Origin)
			}
			if !got.Direction.Equal(tt.expectedDirection) {
				t.Errorf("Expected direction %v, got %v", tt.expectedDirection, got.Direction)
			}
		})
	}

	if !ray.Origin.Equal(Point(1, 2, 3)) || !ray.Direction.Equal(Vector(0, 1, 0)) {
		t.Errorf("Transform mutated the original ray: %+v", ray)
	}
}
