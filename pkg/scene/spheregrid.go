package scene

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/material"
)

// oklchToRGB maps an OKLCH color (lightness 0-1, chroma 0-0.4, hue in
// degrees) to a clamped linear RGB color via OKLAB and LMS
func oklchToRGB(lightness, chroma, hue float64) core.Color {
	sin, cos := math.Sincos(hue * math.Pi / 180)
	a, b := chroma*cos, chroma*sin

	l := cube(lightness + 0.3963377774*a + 0.2158037573*b)
	m := cube(lightness - 0.1055613458*a - 0.0638541728*b)
	s := cube(lightness - 0.0894841775*a - 1.2914855480*b)

	return core.NewColor(
		clamp01(4.0767416621*l-3.3077115913*m+0.2309699292*s),
		clamp01(-1.2684380046*l+2.6097574011*m-0.3413193965*s),
		clamp01(-0.0041960863*l-0.7034186147*m+1.7076147010*s),
	)
}

func cube(v float64) float64 { return v * v * v }

func clamp01(v float64) float64 { return math.Max(0, math.Min(1, v)) }

// NewSphereGridScene creates a square grid of spheres whose hue varies
// along x and whose saturation and reflectivity vary along z
func NewSphereGridScene(gridSize int, cameraOverrides ...CameraConfig) *Scene {
	camera := cameraConfig(CameraConfig{
		Width:  640,
		Height: 360,
		FOV:    math.Pi / 4,
		From:   core.Point(0, 7, -13),
		To:     core.Point(0, 0.5, 0),
		Up:     core.Vector(0, 1, 0),
	}, cameraOverrides)

	w := NewWorld()
	w.SetLight(material.NewPointLight(core.Point(-10, 15, -10), core.NewColor(1, 0.97, 0.92)))

	gray := material.DefaultMaterial()
	gray.Color = core.NewColor(0.5, 0.5, 0.5)
	gray.Specular = 0
	gray.Reflective = 0.1
	addFloor(w, gray)

	// Spread the grid over roughly 9x9 units whatever its size
	targetArea := 9.0
	spacing := targetArea / float64(gridSize-1)
	radius := math.Max(0.02, math.Min(0.35, spacing*0.35))

	// OKLCH parameters for color variation
	baseLightness := 0.65
	minChroma := 0.05
	maxChroma := 0.25

	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			x := float64(i)*spacing - targetArea/2
			z := float64(j)*spacing - targetArea/2

			hue := float64(i) / float64(gridSize-1) * 360
			chroma := minChroma + float64(j)/float64(gridSize-1)*(maxChroma-minChroma)
			lightness := baseLightness + 0.1*math.Sin(float64(i+j)*0.5)

			m := material.DefaultMaterial()
			m.Color = oklchToRGB(lightness, chroma, hue)
			m.Diffuse = 0.6
			m.Specular = 0.6
			m.Shininess = 150
			m.Reflective = 0.05 + 0.1*float64((i+j)%3)

			sphere := geometry.NewSphere()
			sphere.SetTransform(core.Scaling(radius, radius, radius).Then(core.Translation(x, radius, z)))
			sphere.SetMaterial(m)
			w.AddObject(sphere)
		}
	}

	return &Scene{World: w, Camera: camera}
}
