package math

// Vec2 represents a 2D vector
type Vec2 struct {
	X, Y float32
}

// Add returns the component-wise sum of the two vectors.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns the component-wise difference of the two vectors.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns the vector scaled by s.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

/**
 * @brief Represents the extents of a 2d object.
 */
type Extents2D struct {
	/** @brief The minimum extents of the object. */
	Min Vec2
	/** @brief The maximum extents of the object. */
	Max Vec2
}

// Width of the extents along the x axis.
func (e Extents2D) Width() float32 {
	return e.Max.X - e.Min.X
}

// Height of the extents along the y axis.
func (e Extents2D) Height() float32 {
	return e.Max.Y - e.Min.Y
}

// Overlaps reports whether the two extents intersect.
func (e Extents2D) Overlaps(o Extents2D) bool {
	return e.Min.X < o.Max.X && e.Max.X > o.Min.X &&
		e.Min.Y < o.Max.Y && e.Max.Y > o.Min.Y
}
