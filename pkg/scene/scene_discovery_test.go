package scene

import (
	"errors"
	"testing"
)

func TestTitleCase(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"cornell-box", "Cornell Box"},
		{"sphere_grid", "Sphere Grid"},
		{"my-custom-scene", "My Custom Scene"},
		{"simple", "Simple"},
		{"UPPER-case", "Upper Case"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			result := titleCase(tc.input)
			if result != tc.expected {
				t.Errorf("titleCase(%q) = %q, want %q", tc.input, result, tc.expected)
			}
		})
	}
}

func TestListScenes(t *testing.T) {
	scenes := ListScenes()
	if len(scenes) != len(catalogue) {
		t.Fatalf("Expected %d scenes, got %d", len(catalogue), len(scenes))
	}

	seen := make(map[string]bool)
	for _, info := range scenes {
		if info.ID == "" || info.Name == "" || info.Description == "" || info.Group == "" {
			t.Errorf("Incomplete scene info: %+v", info)
		}
		if seen[info.ID] {
			t.Errorf("Duplicate scene ID %q", info.ID)
		}
		seen[info.ID] = true
	}
	if scenes[0].ID != "default" || scenes[0].Name != "Default" {
		t.Errorf("Expected the default scene first, got %+v", scenes[0])
	}
}

func TestNew_UnknownScene(t *testing.T) {
	if _, err := New("no-such-scene"); !errors.Is(err, ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}
}

func TestNew_AllScenesAreValid(t *testing.T) {
	for _, info := range ListScenes() {
		t.Run(info.ID, func(t *testing.T) {
			s, err := New(info.ID)
			if err != nil {
				t.Fatalf("New(%q): %v", info.ID, err)
			}
			if err := s.World.Validate(); err != nil {
				t.Errorf("Scene does not validate: %v", err)
			}
			if s.Camera.Width <= 0 || s.Camera.Height <= 0 || s.Camera.FOV <= 0 {
				t.Errorf("Invalid camera %+v", s.Camera)
			}
			if s.PrimitiveCount() == 0 {
				t.Error("Scene has no primitives")
			}
		})
	}
}

func TestNew_CameraOverride(t *testing.T) {
	s, err := New("default", CameraConfig{Width: 64, Height: 32})
	if err != nil {
		t.Fatal(err)
	}
	if s.Camera.Width != 64 || s.Camera.Height != 32 {
		t.Errorf("Expected 64x32, got %dx%d", s.Camera.Width, s.Camera.Height)
	}
	defaults := NewDefaultScene().Camera
	if s.Camera.FOV != defaults.FOV || s.Camera.From != defaults.From {
		t.Error("Override should leave unset fields at their defaults")
	}
}

func TestPrimitiveCount(t *testing.T) {
	// six sides, each a sphere and a cylinder, inside seven groups
	s := NewHexagonScene()
	if got := s.PrimitiveCount(); got != 12 {
		t.Errorf("Expected 12 primitives, got %d", got)
	}
	if s.World.Len() != 19 {
		t.Errorf("Expected 19 shapes, got %d", s.World.Len())
	}
}
