package scene

import (
	"math"
	"testing"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/material"
)

// Helper function for approximate color equality with a caller-chosen tolerance
func approxColor(a, b core.Color, tolerance float64) bool {
	return math.Abs(a.R-b.R) < tolerance &&
		math.Abs(a.G-b.G) < tolerance &&
		math.Abs(a.B-b.B) < tolerance
}

func glassSphere() *geometry.Sphere {
	s := geometry.NewSphere()
	s.SetMaterial(material.GlassMaterial())
	return s
}

// worldWith builds a lightless world holding shapes as top-level objects
func worldWith(shapes ...geometry.Shape) *World {
	w := NewWorld()
	for _, s := range shapes {
		w.AddObject(s)
	}
	return w
}

func TestPrepareComputations_Outside(t *testing.T) {
	s := geometry.NewSphere()
	w := worldWith(s)
	r := core.NewRay(core.Point(0, 0, -5), core.Vector(0, 0, 1))
	i := geometry.NewIntersection(4, s.Index())

	c := PrepareComputations(i, r, w, geometry.Intersections{i})
	if c.T != 4 || c.Object != geometry.Shape(s) {
		t.Errorf("Unexpected hit %f on %v", c.T, c.Object)
	}
	if !c.Point.Equals(core.Point(0, 0, -1)) {
		t.Errorf("Expected point (0,0,-1), got %v", c.Point)
	}
	if !c.EyeV.Equals(core.Vector(0, 0, -1)) || !c.NormalV.Equals(core.Vector(0, 0, -1)) {
		t.Errorf("Unexpected eye %v / normal %v", c.EyeV, c.NormalV)
	}
	if c.Inside {
		t.Error("Hit from outside reported as inside")
	}
}

func TestPrepareComputations_Inside(t *testing.T) {
	s := geometry.NewSphere()
	w := worldWith(s)
	r := core.NewRay(core.Point(0, 0, 0), core.Vector(0, 0, 1))
	i := geometry.NewIntersection(1, s.Index())

	c := PrepareComputations(i, r, w, geometry.Intersections{i})
	if !c.Point.Equals(core.Point(0, 0, 1)) || !c.EyeV.Equals(core.Vector(0, 0, -1)) {
		t.Errorf("Unexpected point %v / eye %v", c.Point, c.EyeV)
	}
	if !c.Inside {
		t.Error("Hit from inside not reported")
	}
	if !c.NormalV.Equals(core.Vector(0, 0, -1)) {
		t.Errorf("Expected inverted normal (0,0,-1), got %v", c.NormalV)
	}
}

func TestPrepareComputations_OverAndUnderPoint(t *testing.T) {
	r := core.NewRay(core.Point(0, 0, -5), core.Vector(0, 0, 1))

	t.Run("over", func(t *testing.T) {
		s := geometry.NewSphere()
		s.SetTransform(core.Translation(0, 0, 1))
		w := worldWith(s)
		i := geometry.NewIntersection(5, s.Index())
		c := PrepareComputations(i, r, w, geometry.Intersections{i})
		if c.OverPoint.Z >= -core.Epsilon/2 || c.Point.Z <= c.OverPoint.Z {
			t.Errorf("Over point %v not above surface point %v", c.OverPoint, c.Point)
		}
	})

	t.Run("under", func(t *testing.T) {
		s := glassSphere()
		s.SetTransform(core.Translation(0, 0, 1))
		w := worldWith(s)
		i := geometry.NewIntersection(5, s.Index())
		c := PrepareComputations(i, r, w, geometry.Intersections{i})
		if c.UnderPoint.Z <= core.Epsilon/2 || c.Point.Z >= c.UnderPoint.Z {
			t.Errorf("Under point %v not below surface point %v", c.UnderPoint, c.Point)
		}
	})
}

func TestPrepareComputations_ReflectV(t *testing.T) {
	p := geometry.NewPlane()
	w := worldWith(p)
	k := math.Sqrt2 / 2
	r := core.NewRay(core.Point(0, 1, -1), core.Vector(0, -k, k))
	i := geometry.NewIntersection(math.Sqrt2, p.Index())

	c := PrepareComputations(i, r, w, geometry.Intersections{i})
	if !c.ReflectV.Equals(core.Vector(0, k, k)) {
		t.Errorf("Expected reflectv (0,%f,%f), got %v", k, k, c.ReflectV)
	}
}

func TestPrepareComputations_RefractiveIndices(t *testing.T) {
	a := glassSphere()
	a.SetTransform(core.Scaling(2, 2, 2))
	b := glassSphere()
	b.SetTransform(core.Translation(0, 0, -0.25))
	mb := b.Material()
	mb.RefractiveIndex = 2.0
	b.SetMaterial(mb)
	c := glassSphere()
	c.SetTransform(core.Translation(0, 0, 0.25))
	mc := c.Material()
	mc.RefractiveIndex = 2.5
	c.SetMaterial(mc)
	w := worldWith(a, b, c)

	r := core.NewRay(core.Point(0, 0, -4), core.Vector(0, 0, 1))
	xs := geometry.Intersections{
		geometry.NewIntersection(2, a.Index()),
		geometry.NewIntersection(2.75, b.Index()),
		geometry.NewIntersection(3.25, c.Index()),
		geometry.NewIntersection(4.75, b.Index()),
		geometry.NewIntersection(5.25, c.Index()),
		geometry.NewIntersection(6, a.Index()),
	}

	expected := []struct{ n1, n2 float64 }{
		{1.0, 1.5},
		{1.5, 2.0},
		{2.0, 2.5},
		{2.5, 2.5},
		{2.5, 1.5},
		{1.5, 1.0},
	}

	for i, e := range expected {
		comps := PrepareComputations(xs[i], r, w, xs)
		if comps.N1 != e.n1 || comps.N2 != e.n2 {
			t.Errorf("Hit %d: expected n1=%v n2=%v, got n1=%v n2=%v", i, e.n1, e.n2, comps.N1, comps.N2)
		}
	}
}

func TestSchlick(t *testing.T) {
	k := math.Sqrt2 / 2

	t.Run("total internal reflection", func(t *testing.T) {
		s := glassSphere()
		w := worldWith(s)
		r := core.NewRay(core.Point(0, 0, k), core.Vector(0, 1, 0))
		xs := geometry.Intersections{
			geometry.NewIntersection(-k, s.Index()),
			geometry.NewIntersection(k, s.Index()),
		}
		c := PrepareComputations(xs[1], r, w, xs)
		if got := Schlick(c); got != 1.0 {
			t.Errorf("Expected 1.0, got %f", got)
		}
	})

	t.Run("nested glass", func(t *testing.T) {
		outer := glassSphere()
		outer.SetTransform(core.Scaling(2, 2, 2))
		outerMaterial := outer.Material()
		outerMaterial.RefractiveIndex = material.Vacuum
		outer.SetMaterial(outerMaterial)
		inner := glassSphere()
		w := worldWith(outer, inner)
		r := core.NewRay(core.Point(0, 0, k), core.Vector(0, 1, 0))
		xs := w.Intersect(r)
		if len(xs) != 4 {
			t.Fatalf("Expected 4 hits, got %d", len(xs))
		}
		// leaving the inner glass for the vacuum-filled outer shell
		c := PrepareComputations(xs[2], r, w, xs)
		if c.N1 != 1.5 || c.N2 != 1.0 {
			t.Fatalf("Expected n1=1.5 n2=1.0, got %v %v", c.N1, c.N2)
		}
		if got := Schlick(c); got != 1.0 {
			t.Errorf("Expected 1.0, got %f", got)
		}
	})

	t.Run("perpendicular", func(t *testing.T) {
		s := glassSphere()
		w := worldWith(s)
		r := core.NewRay(core.Point(0, 0, 0), core.Vector(0, 1, 0))
		xs := geometry.Intersections{
			geometry.NewIntersection(-1, s.Index()),
			geometry.NewIntersection(1, s.Index()),
		}
		c := PrepareComputations(xs[1], r, w, xs)
		if got := Schlick(c); math.Abs(got-0.04) > 1e-5 {
			t.Errorf("Expected 0.04, got %f", got)
		}
	})

	t.Run("small angle, n2 > n1", func(t *testing.T) {
		s := glassSphere()
		w := worldWith(s)
		r := core.NewRay(core.Point(0, 0.99, -2), core.Vector(0, 0, 1))
		xs := geometry.Intersections{geometry.NewIntersection(1.8589, s.Index())}
		c := PrepareComputations(xs[0], r, w, xs)
		if got := Schlick(c); math.Abs(got-0.48873) > 1e-4 {
			t.Errorf("Expected 0.48873, got %f", got)
		}
	})
}
