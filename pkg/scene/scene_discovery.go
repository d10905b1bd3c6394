package scene

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownScene is returned when a scene ID is not in the catalogue
var ErrUnknownScene = errors.New("scene: unknown scene")

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier
	Name        string `json:"name"`        // Display name
	Description string `json:"description"` // One-line description
	Group       string `json:"group"`       // Grouping category
}

type sceneEntry struct {
	info  SceneInfo
	build func(overrides ...CameraConfig) *Scene
}

// catalogue lists the built-in scenes in display order
var catalogue = []sceneEntry{
	{SceneInfo{ID: "default", Description: "Three spheres on a floor between two walls", Group: "Basics"}, NewDefaultScene},
	{SceneInfo{ID: "glass", Description: "Hollow glass sphere, mirror sphere and a checkered reflective floor", Group: "Basics"}, NewGlassScene},
	{SceneInfo{ID: "cornell-box", Description: "Cornell box with a mirror sphere and a glass sphere", Group: "Basics"}, NewCornellScene},
	{SceneInfo{ID: "patterns", Description: "Every procedural pattern on a plaid floor", Group: "Materials"}, NewPatternTestScene},
	{SceneInfo{ID: "sphere-grid", Description: "10x10 grid of rainbow-colored spheres", Group: "Materials"}, func(overrides ...CameraConfig) *Scene {
		return NewSphereGridScene(10, overrides...)
	}},
	{SceneInfo{ID: "cylinders", Description: "Capped, open and rotated cylinders", Group: "Shapes"}, NewCylinderTestScene},
	{SceneInfo{ID: "cones", Description: "Closed, open and glass double cones", Group: "Shapes"}, NewConeTestScene},
	{SceneInfo{ID: "hexagon", Description: "Nested groups of spheres and cylinders", Group: "Shapes"}, NewHexagonScene},
	{SceneInfo{ID: "triangle-mesh", Description: "Flat pyramid and smooth icosahedron meshes", Group: "Shapes"}, NewTriangleMeshScene},
	{SceneInfo{ID: "csg", Description: "Rounded die with a bite taken out", Group: "Shapes"}, NewCSGScene},
}

// ListScenes returns the built-in scenes in display order
func ListScenes() []SceneInfo {
	infos := make([]SceneInfo, len(catalogue))
	for i, entry := range catalogue {
		infos[i] = entry.info
		infos[i].Name = titleCase(entry.info.ID)
	}
	return infos
}

// New builds the scene with the given ID, applying any camera override
func New(id string, cameraOverrides ...CameraConfig) (*Scene, error) {
	for _, entry := range catalogue {
		if entry.info.ID == id {
			return entry.build(cameraOverrides...), nil
		}
	}
	return nil, fmt.Errorf("%q: %w", id, ErrUnknownScene)
}

// titleCase converts an ID-style string to title case
// e.g., "cornell-box" -> "Cornell Box"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}
	return strings.Join(words, " ")
}
