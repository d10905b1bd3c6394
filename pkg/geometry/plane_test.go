package geometry

import (
	"testing"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

func TestPlane_Normal(t *testing.T) {
	p := NewPlane()
	for _, pt := range []core.Tuple{core.Point(0, 0, 0), core.Point(10, 0, -10), core.Point(-5, 0, 150)} {
		if n := p.LocalNormalAt(pt, Intersection{}); !n.Equals(core.Vector(0, 1, 0)) {
			t.Errorf("Expected (0,1,0) at %v, got %v", pt, n)
		}
	}
}

func TestPlane_Intersect(t *testing.T) {
	tests := []struct {
		name      string
		origin    core.Tuple
		direction core.Tuple
		expected  []float64
	}{
		{"parallel", core.Point(0, 10, 0), core.Vector(0, 0, 1), nil},
		{"coplanar", core.Point(0, 0, 0), core.Vector(0, 0, 1), nil},
		{"from above", core.Point(0, 1, 0), core.Vector(0, -1, 0), []float64{1}},
		{"from below", core.Point(0, -1, 0), core.Vector(0, 1, 0), []float64{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlane()
			xs := p.LocalIntersect(core.NewRay(tt.origin, tt.direction), nil)
			assertTs(t, xs, tt.expected...)
			for _, x := range xs {
				if x.Object != p.Index() {
					t.Errorf("Expected object %d, got %d", p.Index(), x.Object)
				}
			}
		})
	}
}
