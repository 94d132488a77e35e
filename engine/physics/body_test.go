package physics

import (
	"testing"

	"github.com/spaghettifunk/ombra/engine/math"
)

func TestBodyBounds(t *testing.T) {
	b := NewBody(math.Vec2{X: 10, Y: 20})
	b.SetBounds(64, 32)

	if w, h := b.Bounds(); w != 64 || h != 32 {
		t.Errorf("expected (64, 32), got (%d, %d)", w, h)
	}

	e := b.Extents()
	if e.Min.X != 10 || e.Min.Y != 20 || e.Max.X != 74 || e.Max.Y != 52 {
		t.Errorf("unexpected extents: %+v", e)
	}
}

func TestBodyIntersects(t *testing.T) {
	tests := []struct {
		name string
		pos  math.Vec2
		want bool
	}{
		{"overlapping", math.Vec2{X: 16, Y: 16}, true},
		{"touching edge", math.Vec2{X: 32, Y: 0}, false},
		{"apart", math.Vec2{X: 100, Y: 100}, false},
	}

	a := NewBody(math.Vec2{})
	a.SetBounds(32, 32)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := NewBody(tt.pos)
			o.SetBounds(32, 32)
			if got := a.Intersects(o); got != tt.want {
				t.Errorf("Intersects = %t, want %t", got, tt.want)
			}
		})
	}
}

func TestBodyIntegrate(t *testing.T) {
	b := NewBody(math.Vec2{})
	b.Velocity = math.Vec2{X: 10, Y: -20}

	b.Integrate(0.5)

	if b.Position.X != 5 || b.Position.Y != -10 {
		t.Errorf("unexpected position: %+v", b.Position)
	}
}

func TestStaticBodyNeverMoves(t *testing.T) {
	b := NewBody(math.Vec2{X: 1, Y: 2})
	b.Static = true
	b.Velocity = math.Vec2{X: 100, Y: 100}

	b.Integrate(1.0)

	if b.Position.X != 1 || b.Position.Y != 2 {
		t.Errorf("static body moved to %+v", b.Position)
	}
}
