package scenefile

import (
	"strings"
	"testing"
)

const minimalScene = `RaytracerScene(
	multithreading: false,
	aspect_ratio: 1.0,
	image_width: 20,
	image_height: 20,
	samples_per_pixel: 4,
	max_depth: 8,
	v_fov: 90.0,
	aperture: 0.0,
	focal_distance: 1.0,
	camera_pos: [0.0, 0.0, 0.0],
	camera_dir: [0.0, 0.0, -1.0],
	camera_up: [0.0, 1.0, 0.0],
	objects: [
		(objtype: "Sphere", vectors: [[0.0, 0.0, -2.0]], scalars: [0.5], material: ["Lambertian", "0.8", "0.2", "0.2"]),
		(objtype: "Triangle", vectors: [[-1.0, -1.0, -3.0], [1.0, -1.0, -3.0], [0.0, 1.0, -3.0]], scalars: [1.0], material: ["Mirror"]),
	],
	lights: [[0.0, 2.0, -1.0]],
)`

func TestParseMinimalScene(t *testing.T) {
	cfg, err := Parse(minimalScene)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Options.Width != 20 || cfg.Options.Height != 20 {
		t.Errorf("expected 20x20, got %dx%d", cfg.Options.Width, cfg.Options.Height)
	}
	if cfg.Options.SamplesPerPixel != 4 || cfg.Options.MaxDepth != 8 {
		t.Errorf("unexpected sample/depth counts: %+v", cfg.Options)
	}
	if cfg.Options.Multithreading {
		t.Errorf("expected multithreading: false to parse as false")
	}
	if len(cfg.Scene.Lights) != 1 {
		t.Fatalf("expected one light, got %d", len(cfg.Scene.Lights))
	}
}

func TestParseRejectsUnknownObjtype(t *testing.T) {
	text := strings.Replace(minimalScene, `objtype: "Sphere"`, `objtype: "Cube"`, 1)
	if _, err := Parse(text); err == nil {
		t.Errorf("expected an unknown objtype to be a fatal parse error")
	}
}

func TestParseRejectsUnknownMaterial(t *testing.T) {
	text := strings.Replace(minimalScene, `material: ["Mirror"]`, `material: ["Plastic"]`, 1)
	if _, err := Parse(text); err == nil {
		t.Errorf("expected an unknown material name to be a fatal parse error")
	}
}

const meshScene = `RaytracerScene(
	multithreading: false,
	aspect_ratio: 1.0,
	image_width: 20,
	image_height: 20,
	samples_per_pixel: 4,
	max_depth: 8,
	v_fov: 90.0,
	aperture: 0.0,
	focal_distance: 1.0,
	camera_pos: [0.0, 0.0, 0.0],
	camera_dir: [0.0, 0.0, -1.0],
	camera_up: [0.0, 1.0, 0.0],
	objects: [
		(objtype: "Mesh", vectors: [], scalars: [2.0, 1.0], strings: ["testdata/does-not-exist.glb"], material: ["Mirror"]),
	],
	lights: [[0.0, 2.0, -1.0]],
)`

func TestParseMeshObjectReachesLoadMesh(t *testing.T) {
	_, err := Parse(meshScene)
	if err == nil {
		t.Fatalf("expected loading a nonexistent mesh file to fail")
	}
	// The error must come from scene.LoadMesh actually being called (it
	// wraps the path into its error), not from "Mesh" being rejected as an
	// unknown objtype.
	if strings.Contains(err.Error(), "unknown objtype") {
		t.Fatalf("Mesh object was rejected as an unknown objtype instead of reaching scene.LoadMesh: %v", err)
	}
	if !strings.Contains(err.Error(), "does-not-exist.glb") {
		t.Errorf("expected the mesh file path to appear in the error, got %v", err)
	}
}

func TestParseRejectsNonPositiveRadius(t *testing.T) {
	text := strings.Replace(minimalScene, "scalars: [0.5]", "scalars: [-0.5]", 1)
	_, err := Parse(text)
	if err == nil {
		t.Fatalf("expected a non-positive radius to be rejected")
	}
	if _, ok := err.(*ConfigError); !ok {
		t.Errorf("expected a ConfigError, got %T: %v", err, err)
	}
}
