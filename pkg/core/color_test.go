package core

import "testing"

func TestColor_Operations(t *testing.T) {
	c1 := NewColor(0.9, 0.6, 0.75)
	c2 := NewColor(0.7, 0.1, 0.25)

	tests := []struct {
		name     string
		got      Color
		expected Color
	}{
		{"add", c1.Add(c2), NewColor(1.6, 0.7, 1.0)},
		{"subtract", c1.Subtract(c2), NewColor(0.2, 0.5, 0.5)},
		{"multiply", NewColor(0.2, 0.3, 0.4).Multiply(2), NewColor(0.4, 0.6, 0.8)},
		{"hadamard", NewColor(1, 0.2, 0.4).Hadamard(NewColor(0.9, 1, 0.1)), NewColor(0.9, 0.2, 0.04)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.Equal(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, tt.got)
			}
		})
	}
}

func TestColor_TupleEncoding(t *testing.T) {
	c := NewColor(-0.5, 0.4, 1.7)
	tuple := c.Tuple()
	if !tuple.IsVector() {
		t.Errorf("Expected color encoding to have W = 0, got %v", tuple)
	}
	if back := ColorFromTuple(tuple); back != c {
		t.Errorf("Expected %v, got %v", c, back)
	}
}
