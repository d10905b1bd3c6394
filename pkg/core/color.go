package core

// Color is an RGB triple. Components are nominally in [0, 1] but may exceed
// that range before being clamped for output.
type Color struct {
	R, G, B float64
}

// Common colors
var (
	Black = Color{0, 0, 0}
	White = Color{1, 1, 1}
)

// NewColor creates a new Color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Add returns the sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Subtract returns the difference of two colors
func (c Color) Subtract(other Color) Color {
	return Color{c.R - other.R, c.G - other.G, c.B - other.B}
}

// Multiply scales the color by a scalar
func (c Color) Multiply(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar}
}

// Hadamard returns the component-wise product of two colors
func (c Color) Hadamard(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Equals compares two colors within Epsilon
func (c Color) Equals(other Color) bool {
	return FloatEquals(c.R, other.R) &&
		FloatEquals(c.G, other.G) &&
		FloatEquals(c.B, other.B)
}
