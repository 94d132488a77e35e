package math

import "testing"

func TestClamp(t *testing.T) {
	tests := []struct {
		name            string
		f, low, high, w float64
	}{
		{"in range", 0.5, 0, 1, 0.5},
		{"below", -2, 0, 1, 0},
		{"above", 7, 0, 1, 1},
		{"at low", 0, 0, 1, 0},
		{"at high", 1, 0, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.f, tt.low, tt.high); got != tt.w {
				t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.f, tt.low, tt.high, got, tt.w)
			}
		})
	}
}

func TestClampInt(t *testing.T) {
	if got := Clamp(300, 0, 255); got != 255 {
		t.Errorf("Clamp(300, 0, 255) = %d, want 255", got)
	}
}

func TestLerp(t *testing.T) {
	tests := []struct {
		name       string
		a, b, x, w float64
	}{
		{"start", 0, 10, 0, 0},
		{"end", 0, 10, 1, 10},
		{"middle", 0, 10, 0.5, 5},
		{"negative span", 10, -10, 0.25, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Lerp(tt.a, tt.b, tt.x); got != tt.w {
				t.Errorf("Lerp(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.x, got, tt.w)
			}
		})
	}
}

func TestVec2Ops(t *testing.T) {
	a := Vec2{X: 1, Y: 2}
	b := Vec2{X: 3, Y: -4}

	if got := a.Add(b); got != (Vec2{X: 4, Y: -2}) {
		t.Errorf("Add = %+v", got)
	}
	if got := a.Sub(b); got != (Vec2{X: -2, Y: 6}) {
		t.Errorf("Sub = %+v", got)
	}
	if got := a.Scale(2); got != (Vec2{X: 2, Y: 4}) {
		t.Errorf("Scale = %+v", got)
	}
}

func TestExtentsOverlaps(t *testing.T) {
	base := Extents2D{Min: Vec2{}, Max: Vec2{X: 10, Y: 10}}

	tests := []struct {
		name  string
		other Extents2D
		want  bool
	}{
		{"overlapping", Extents2D{Min: Vec2{X: 5, Y: 5}, Max: Vec2{X: 15, Y: 15}}, true},
		{"contained", Extents2D{Min: Vec2{X: 2, Y: 2}, Max: Vec2{X: 4, Y: 4}}, true},
		{"touching", Extents2D{Min: Vec2{X: 10, Y: 0}, Max: Vec2{X: 20, Y: 10}}, false},
		{"apart", Extents2D{Min: Vec2{X: 50, Y: 50}, Max: Vec2{X: 60, Y: 60}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Overlaps(tt.other); got != tt.want {
				t.Errorf("Overlaps = %t, want %t", got, tt.want)
			}
		})
	}

	if base.Width() != 10 || base.Height() != 10 {
		t.Errorf("unexpected size: %f x %f", base.Width(), base.Height())
	}
}
