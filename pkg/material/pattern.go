package material

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Pattern is a procedural color function of a point in pattern space.
// Each pattern carries its own transform (pattern space -> object space)
// and the slot it occupies in the world's pattern table.
type Pattern interface {
	// At evaluates the pattern at a point already in pattern space
	At(point core.Tuple) core.Color
	Transform() core.Matrix
	SetTransform(t core.Matrix)
	Inverse() core.Matrix
	Index() int
	SetIndex(index int)
}

// PatternBase holds the state every pattern shares
type PatternBase struct {
	A, B      core.Color
	transform core.Matrix
	inverse   core.Matrix
	index     int
}

func newPatternBase(a, b core.Color) PatternBase {
	return PatternBase{
		A:         a,
		B:         b,
		transform: core.Identity(),
		inverse:   core.Identity(),
		index:     -1,
	}
}

// Transform returns the pattern transform
func (p *PatternBase) Transform() core.Matrix { return p.transform }

// Inverse returns the cached inverse of the pattern transform
func (p *PatternBase) Inverse() core.Matrix { return p.inverse }

// SetTransform replaces the transform. It panics if t is singular.
func (p *PatternBase) SetTransform(t core.Matrix) {
	p.transform = t
	p.inverse = t.MustInverse()
}

// Index returns the pattern's slot in the world table, -1 until added
func (p *PatternBase) Index() int { return p.index }

// SetIndex records the pattern's slot in the world table
func (p *PatternBase) SetIndex(index int) { p.index = index }

// localPoint maps an object-space point into p's pattern space
func localPoint(p Pattern, objectPoint core.Tuple) core.Tuple {
	return p.Inverse().MultiplyTuple(objectPoint)
}

func even(v float64) bool {
	return math.Mod(v, 2) == 0
}

func lerp(a, b core.Color, fraction float64) core.Color {
	return a.Add(b.Subtract(a).Multiply(fraction))
}

// Stripes alternates between A and B along x
type Stripes struct{ PatternBase }

// NewStripes creates a stripe pattern
func NewStripes(a, b core.Color) *Stripes {
	return &Stripes{newPatternBase(a, b)}
}

func (p *Stripes) At(point core.Tuple) core.Color {
	if even(math.Floor(point.X)) {
		return p.A
	}
	return p.B
}

// Gradient blends linearly from A to B across each unit of x
type Gradient struct{ PatternBase }

// NewGradient creates a gradient pattern
func NewGradient(a, b core.Color) *Gradient {
	return &Gradient{newPatternBase(a, b)}
}

func (p *Gradient) At(point core.Tuple) core.Color {
	return lerp(p.A, p.B, point.X-math.Floor(point.X))
}

// Ring alternates between A and B in concentric rings in the x-z plane
type Ring struct{ PatternBase }

// NewRing creates a ring pattern
func NewRing(a, b core.Color) *Ring {
	return &Ring{newPatternBase(a, b)}
}

func (p *Ring) At(point core.Tuple) core.Color {
	if even(math.Floor(math.Hypot(point.X, point.Z))) {
		return p.A
	}
	return p.B
}

// Checker alternates between A and B in unit cubes
type Checker struct{ PatternBase }

// NewChecker creates a 3D checker pattern
func NewChecker(a, b core.Color) *Checker {
	return &Checker{newPatternBase(a, b)}
}

func (p *Checker) At(point core.Tuple) core.Color {
	if even(math.Floor(point.X) + math.Floor(point.Y) + math.Floor(point.Z)) {
		return p.A
	}
	return p.B
}

// RadialGradient blends from A to B by the fractional distance from the y axis
type RadialGradient struct{ PatternBase }

// NewRadialGradient creates a radial gradient pattern
func NewRadialGradient(a, b core.Color) *RadialGradient {
	return &RadialGradient{newPatternBase(a, b)}
}

func (p *RadialGradient) At(point core.Tuple) core.Color {
	distance := math.Hypot(point.X, point.Z)
	return lerp(p.A, p.B, distance-math.Floor(distance))
}

// Solid is a single flat color
type Solid struct{ PatternBase }

// NewSolid creates a solid pattern
func NewSolid(c core.Color) *Solid {
	return &Solid{newPatternBase(c, c)}
}

func (p *Solid) At(core.Tuple) core.Color {
	return p.A
}

// Blend averages two nested patterns. Each nested pattern applies its own
// transform on top of the blend's.
type Blend struct {
	PatternBase
	First, Second Pattern
}

// NewBlend creates a blend of two patterns
func NewBlend(first, second Pattern) *Blend {
	return &Blend{
		PatternBase: newPatternBase(core.Black, core.Black),
		First:       first,
		Second:      second,
	}
}

func (p *Blend) At(point core.Tuple) core.Color {
	c1 := p.First.At(localPoint(p.First, point))
	c2 := p.Second.At(localPoint(p.Second, point))
	return c1.Add(c2).Multiply(0.5)
}

// ObjectSpace converts world points into the local frame of a shape
type ObjectSpace interface {
	WorldToObject(point core.Tuple) core.Tuple
}

// ObjectSpaceFunc adapts a function to ObjectSpace
type ObjectSpaceFunc func(point core.Tuple) core.Tuple

func (f ObjectSpaceFunc) WorldToObject(point core.Tuple) core.Tuple {
	return f(point)
}

// PatternAtShape evaluates a pattern at a world point on a shape: world to
// object space through the shape, then to pattern space through the pattern.
func PatternAtShape(p Pattern, object ObjectSpace, worldPoint core.Tuple) core.Color {
	objectPoint := object.WorldToObject(worldPoint)
	return p.At(localPoint(p, objectPoint))
}
