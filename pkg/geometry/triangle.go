package geometry

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Triangle is a flat triangle with precomputed edges and normal
type Triangle struct {
	Base
	P1, P2, P3 core.Tuple
	E1, E2     core.Tuple
	Normal     core.Tuple
}

// NewTriangle creates a triangle from three points
func NewTriangle(p1, p2, p3 core.Tuple) *Triangle {
	e1 := p2.Subtract(p1)
	e2 := p3.Subtract(p1)
	return &Triangle{
		Base:   newBase(),
		P1:     p1,
		P2:     p2,
		P3:     p3,
		E1:     e1,
		E2:     e2,
		Normal: e2.Cross(e1).Normalize(),
	}
}

// LocalIntersect uses the Moller-Trumbore algorithm
func (tr *Triangle) LocalIntersect(r core.Ray, _ Lookup) Intersections {
	t, u, v, ok := intersectTriangle(r, tr.P1, tr.E1, tr.E2)
	if !ok {
		return Intersections{}
	}
	return Intersections{NewIntersectionUV(t, tr.index, u, v)}
}

// LocalNormalAt is the face normal everywhere
func (tr *Triangle) LocalNormalAt(core.Tuple, Intersection) core.Tuple {
	return tr.Normal
}

func intersectTriangle(r core.Ray, p1, e1, e2 core.Tuple) (t, u, v float64, ok bool) {
	dirCrossE2 := r.Direction.Cross(e2)
	det := e1.Dot(dirCrossE2)
	if math.Abs(det) < core.Epsilon {
		return 0, 0, 0, false
	}

	f := 1 / det
	p1ToOrigin := r.Origin.Subtract(p1)
	u = f * p1ToOrigin.Dot(dirCrossE2)
	if u < 0 || u > 1 {
		return 0, 0, 0, false
	}

	originCrossE1 := p1ToOrigin.Cross(e1)
	v = f * r.Direction.Dot(originCrossE1)
	if v < 0 || u+v > 1 {
		return 0, 0, 0, false
	}

	t = f * e2.Dot(originCrossE1)
	return t, u, v, true
}

// SmoothTriangle interpolates vertex normals across its face
type SmoothTriangle struct {
	Base
	P1, P2, P3 core.Tuple
	N1, N2, N3 core.Tuple
	E1, E2     core.Tuple
}

// NewSmoothTriangle creates a triangle with a normal per vertex
func NewSmoothTriangle(p1, p2, p3, n1, n2, n3 core.Tuple) *SmoothTriangle {
	return &SmoothTriangle{
		Base: newBase(),
		P1:   p1,
		P2:   p2,
		P3:   p3,
		N1:   n1,
		N2:   n2,
		N3:   n3,
		E1:   p2.Subtract(p1),
		E2:   p3.Subtract(p1),
	}
}

// LocalIntersect records the barycentric u and v on the hit
func (tr *SmoothTriangle) LocalIntersect(r core.Ray, _ Lookup) Intersections {
	t, u, v, ok := intersectTriangle(r, tr.P1, tr.E1, tr.E2)
	if !ok {
		return Intersections{}
	}
	return Intersections{NewIntersectionUV(t, tr.index, u, v)}
}

// LocalNormalAt blends the vertex normals by the hit's barycentric coordinates
func (tr *SmoothTriangle) LocalNormalAt(_ core.Tuple, hit Intersection) core.Tuple {
	return tr.N2.Multiply(hit.U).
		Add(tr.N3.Multiply(hit.V)).
		Add(tr.N1.Multiply(1 - hit.U - hit.V))
}
