package physics

import (
	"github.com/spaghettifunk/ombra/engine/math"
)

/**
 * @brief An axis-aligned collision body.
 *
 * The body's bounds normally track the owning sprite's bound texture: the
 * texture binding pushes new dimensions through SetBounds whenever a static
 * backend is committed (unless the caller opts out). Movement and collision
 * response are the caller's concern.
 */
type Body struct {
	Position math.Vec2
	Velocity math.Vec2
	Static   bool

	width  uint32
	height uint32
}

func NewBody(position math.Vec2) *Body {
	return &Body{Position: position}
}

// SetBounds resizes the body to the given pixel dimensions.
func (b *Body) SetBounds(width, height uint32) {
	b.width = width
	b.height = height
}

// Bounds returns the body's pixel dimensions.
func (b *Body) Bounds() (uint32, uint32) {
	return b.width, b.height
}

// Extents returns the world-space rectangle covered by the body.
func (b *Body) Extents() math.Extents2D {
	return math.Extents2D{
		Min: b.Position,
		Max: math.Vec2{
			X: b.Position.X + float32(b.width),
			Y: b.Position.Y + float32(b.height),
		},
	}
}

// Intersects reports whether the two bodies overlap.
func (b *Body) Intersects(o *Body) bool {
	return b.Extents().Overlaps(o.Extents())
}

// Integrate advances the body by its velocity over delta seconds. Static
// bodies never move.
func (b *Body) Integrate(delta float64) {
	if b.Static {
		return
	}
	b.Position = b.Position.Add(b.Velocity.Scale(float32(delta)))
}
