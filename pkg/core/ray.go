package core

// MaxBounces caps recursive reflection and refraction. A ray that has
// already bounced this many times contributes no further light.
const MaxBounces = 5

// Ray is a half-line with a bounce counter carried through recursion
type Ray struct {
	Origin    Tuple
	Direction Tuple
	Bounces   int
}

// NewRay creates a primary ray
func NewRay(origin, direction Tuple) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// Position returns the point at parameter t along the ray
func (r Ray) Position(t float64) Tuple {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// Transform applies m to both origin and direction, keeping the bounce count
func (r Ray) Transform(m Matrix) Ray {
	return Ray{
		Origin:    m.MultiplyTuple(r.Origin),
		Direction: m.MultiplyTuple(r.Direction),
		Bounces:   r.Bounces,
	}
}

// Bounce creates a secondary ray one level deeper than r
func (r Ray) Bounce(origin, direction Tuple) Ray {
	return Ray{Origin: origin, Direction: direction, Bounces: r.Bounces + 1}
}

// Exhausted reports whether the ray has used up its bounce budget
func (r Ray) Exhausted() bool {
	return r.Bounces >= MaxBounces
}
