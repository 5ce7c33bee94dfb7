package graphics

// Rect is an axis-aligned rectangle with integer position and size.
// Width and Height are never negative. Rect is an immutable value type.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// RectFromSize constructs a Rect at the origin with the given size.
func RectFromSize(width, height int) Rect {
	return Rect{Width: width, Height: height}
}

// Contains reports whether the point (px, py) is inside the rectangle.
func (r Rect) Contains(px, py int) bool {
	return px >= r.X && py >= r.Y && px < r.X+r.Width && py < r.Y+r.Height
}

// Right returns the exclusive right edge.
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// IsEmpty reports whether the rectangle has zero area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Translate returns a new rect offset by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

// Intersect returns the intersection of two rectangles.
// Returns the zero Rect if they don't overlap.
func (r Rect) Intersect(other Rect) Rect {
	left := max(r.X, other.X)
	top := max(r.Y, other.Y)
	right := min(r.Right(), other.Right())
	bottom := min(r.Bottom(), other.Bottom())
	if left >= right || top >= bottom {
		return Rect{}
	}
	return Rect{X: left, Y: top, Width: right - left, Height: bottom - top}
}
