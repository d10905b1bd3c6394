package scene

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/material"
)

// NewTriangleMeshScene creates a flat-shaded pyramid and a smooth-shaded
// icosahedron, each built as a group of triangles
func NewTriangleMeshScene(cameraOverrides ...CameraConfig) *Scene {
	camera := cameraConfig(CameraConfig{
		Width:  480,
		Height: 270,
		FOV:    math.Pi / 3,
		From:   core.Point(0, 2, -6),
		To:     core.Point(0, 1, 0),
		Up:     core.Vector(0, 1, 0),
	}, cameraOverrides)

	w := NewWorld()
	w.SetLight(material.NewPointLight(core.Point(-4, 8, -6), core.White))

	ground := material.DefaultMaterial()
	ground.Color = core.NewColor(0.7, 0.7, 0.7)
	ground.Specular = 0
	addFloor(w, ground)

	blue := material.DefaultMaterial()
	blue.Color = core.NewColor(0.2, 0.3, 0.8)
	addPyramidMesh(w, core.Scaling(1.5, 2, 1.5).
		Then(core.RotationY(math.Pi/4)).
		Then(core.Translation(-1.5, 0, 0)), blue)

	gold := material.DefaultMaterial()
	gold.Color = core.NewColor(0.8, 0.6, 0.2)
	gold.Reflective = 0.2
	gold.Shininess = 100
	addIcosahedronMesh(w, core.Scaling(0.8, 0.8, 0.8).
		Then(core.RotationY(math.Pi/3)).
		Then(core.Translation(1.5, 0.8, 0)), gold)

	return &Scene{World: w, Camera: camera}
}

// addPyramidMesh adds a square pyramid with its base on y=0 spanning
// [-0.5, 0.5] and its apex at y=1
func addPyramidMesh(w *World, transform core.Matrix, m material.Material) int {
	apex := core.Point(0, 1, 0)
	base := []core.Tuple{
		core.Point(-0.5, 0, -0.5),
		core.Point(0.5, 0, -0.5),
		core.Point(0.5, 0, 0.5),
		core.Point(-0.5, 0, 0.5),
	}

	mesh := geometry.NewGroup()
	mesh.SetTransform(transform)
	index := w.AddObject(mesh)

	for i := range base {
		side := geometry.NewTriangle(base[i], base[(i+1)%len(base)], apex)
		side.SetMaterial(m)
		mustAddChild(w, index, side)
	}
	for _, tri := range [][3]int{{0, 2, 1}, {0, 3, 2}} {
		bottom := geometry.NewTriangle(base[tri[0]], base[tri[1]], base[tri[2]])
		bottom.SetMaterial(m)
		mustAddChild(w, index, bottom)
	}
	return index
}

// addIcosahedronMesh adds a unit icosahedron whose vertex normals point
// away from its center, so it shades like a sphere
func addIcosahedronMesh(w *World, transform core.Matrix, m material.Material) int {
	phi := (1 + math.Sqrt(5)) / 2
	raw := [][3]float64{
		{-1, phi, 0}, {1, phi, 0}, {-1, -phi, 0}, {1, -phi, 0},
		{0, -1, phi}, {0, 1, phi}, {0, -1, -phi}, {0, 1, -phi},
		{phi, 0, -1}, {phi, 0, 1}, {-phi, 0, -1}, {-phi, 0, 1},
	}
	faces := [][3]int{
		{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
		{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
		{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
		{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
	}

	points := make([]core.Tuple, len(raw))
	normals := make([]core.Tuple, len(raw))
	for i, v := range raw {
		normals[i] = core.Vector(v[0], v[1], v[2]).Normalize()
		points[i] = core.Point(normals[i].X, normals[i].Y, normals[i].Z)
	}

	mesh := geometry.NewGroup()
	mesh.SetTransform(transform)
	index := w.AddObject(mesh)

	for _, f := range faces {
		tri := geometry.NewSmoothTriangle(
			points[f[0]], points[f[1]], points[f[2]],
			normals[f[0]], normals[f[1]], normals[f[2]],
		)
		tri.SetMaterial(m)
		mustAddChild(w, index, tri)
	}
	return index
}
