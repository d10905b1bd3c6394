package scene

import (
	"errors"
	"testing"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/material"
)

func TestNewWorld(t *testing.T) {
	w := NewWorld()
	if w.Len() != 0 || w.PatternCount() != 0 {
		t.Errorf("Expected empty world, got %d objects and %d patterns", w.Len(), w.PatternCount())
	}
	if _, ok := w.Light(); ok {
		t.Error("Expected no light")
	}
	if err := w.Validate(); !errors.Is(err, ErrNoLight) {
		t.Errorf("Expected ErrNoLight, got %v", err)
	}
}

func TestDefaultWorld(t *testing.T) {
	w := DefaultWorld()
	light, ok := w.Light()
	if !ok || !light.Position.Equals(core.Point(-10, 10, -10)) || !light.Intensity.Equals(core.White) {
		t.Errorf("Unexpected light %+v", light)
	}
	if w.Len() != 2 {
		t.Fatalf("Expected 2 objects, got %d", w.Len())
	}

	m := w.Object(0).Material()
	if !m.Color.Equals(core.NewColor(0.8, 1.0, 0.6)) || m.Diffuse != 0.7 || m.Specular != 0.2 {
		t.Errorf("Unexpected outer material %+v", m)
	}
	if !w.Object(1).Transform().Equals(core.Scaling(0.5, 0.5, 0.5)) {
		t.Errorf("Unexpected inner transform\n%v", w.Object(1).Transform())
	}
	if err := w.Validate(); err != nil {
		t.Errorf("Default world should validate: %v", err)
	}
}

func TestWorld_Intersect(t *testing.T) {
	w := DefaultWorld()
	xs := w.Intersect(core.NewRay(core.Point(0, 0, -5), core.Vector(0, 0, 1)))
	expected := []float64{4, 4.5, 5.5, 6}
	if len(xs) != len(expected) {
		t.Fatalf("Expected %d intersections, got %d", len(expected), len(xs))
	}
	for i, x := range xs {
		if !core.FloatEquals(x.T, expected[i]) {
			t.Errorf("Intersection %d: expected t=%f, got %f", i, expected[i], x.T)
		}
	}
}

func TestWorld_IntersectSkipsNestedShapes(t *testing.T) {
	w := NewWorld()
	g := geometry.NewGroup()
	g.SetTransform(core.Translation(0, 0, 10))
	gi := w.AddObject(g)
	if _, err := w.AddChild(gi, geometry.NewSphere()); err != nil {
		t.Fatal(err)
	}

	// the child sits at z=10 through its group; it must not also be hit at the origin
	xs := w.Intersect(core.NewRay(core.Point(0, 0, -5), core.Vector(0, 0, 1)))
	if len(xs) != 2 || !core.FloatEquals(xs[0].T, 14) || !core.FloatEquals(xs[1].T, 16) {
		t.Errorf("Expected hits at 14 and 16, got %+v", xs)
	}
	if len(w.Roots()) != 1 {
		t.Errorf("Expected 1 root, got %d", len(w.Roots()))
	}
}

func TestWorld_Patterns(t *testing.T) {
	w := NewWorld()
	p0 := material.NewStripes(core.White, core.Black)
	p1 := material.NewChecker(core.White, core.Black)
	if i := w.AddPattern(p0); i != 0 || p0.Index() != 0 {
		t.Errorf("Expected index 0, got %d", i)
	}
	if i := w.AddPattern(p1); i != 1 || p1.Index() != 1 {
		t.Errorf("Expected index 1, got %d", i)
	}
	if p, ok := w.Pattern(1); !ok || p != material.Pattern(p1) {
		t.Error("Pattern(1) should return the checker")
	}
	for _, i := range []int{-1, 2, material.NoPattern} {
		if _, ok := w.Pattern(i); ok {
			t.Errorf("Pattern(%d) should not exist", i)
		}
	}
}

func TestWorld_Validate(t *testing.T) {
	t.Run("dangling pattern", func(t *testing.T) {
		w := DefaultWorld()
		s := geometry.NewSphere()
		m := material.DefaultMaterial()
		m.Pattern = 3
		s.SetMaterial(m)
		w.AddObject(s)
		if err := w.Validate(); !errors.Is(err, ErrDanglingPattern) {
			t.Errorf("Expected ErrDanglingPattern, got %v", err)
		}
	})

	t.Run("incomplete csg", func(t *testing.T) {
		w := DefaultWorld()
		c := geometry.NewCSG(geometry.CSGUnion)
		ci := w.AddObject(c)
		w.AddChild(ci, geometry.NewSphere())
		if err := w.Validate(); !errors.Is(err, ErrIncompleteCSG) {
			t.Errorf("Expected ErrIncompleteCSG, got %v", err)
		}
	})
}

func TestWorld_AddObjectTwicePanics(t *testing.T) {
	w := NewWorld()
	s := geometry.NewSphere()
	w.AddObject(s)
	defer func() {
		if recover() == nil {
			t.Error("Expected panic adding the same shape twice")
		}
	}()
	w.AddObject(s)
}
