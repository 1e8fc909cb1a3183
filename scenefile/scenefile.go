// Package scenefile parses the RON-flavored scene description text into a
// ready-to-render scene.Scene and render.Options. The grammar is a
// single top-level `RaytracerScene(...)` record; see Parse.
package scenefile

import (
	"fmt"
	"strconv"

	"pathtracer/materials"
	pmath "pathtracer/math"
	"pathtracer/primitives"
	"pathtracer/render"
	"pathtracer/scene"
)

// ConfigError reports a scene that parsed successfully but describes an
// impossible or out-of-range configuration: a non-positive radius, a
// degenerate camera, and the like. Distinct from ParseError so callers
// can tell a syntax problem from a domain one.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string { return "scene config error: " + e.Msg }

// Config is everything Parse extracts from scene description text:
// a frozen Scene ready to query, and the Options a render.Render call
// needs. Workers, Seed and Progress are left at their zero values since
// the text format has no opinion on them.
type Config struct {
	Scene   *scene.Scene
	Options render.Options
}

// Parse parses a full scene description document and builds the Scene
// and Options it describes.
func Parse(text string) (*Config, error) {
	top, err := parseValue(text)
	if err != nil {
		return nil, err
	}
	if top.kind != valRecord || top.name != "RaytracerScene" {
		return nil, &ParseError{Msg: "expected top-level RaytracerScene(...) record"}
	}

	multithreading, err := fieldBool(top, "multithreading")
	if err != nil {
		return nil, err
	}
	aspectRatio, err := fieldFloat(top, "aspect_ratio")
	if err != nil {
		return nil, err
	}
	imageWidth, err := fieldInt(top, "image_width")
	if err != nil {
		return nil, err
	}
	imageHeight, err := fieldInt(top, "image_height")
	if err != nil {
		return nil, err
	}
	samplesPerPixel, err := fieldInt(top, "samples_per_pixel")
	if err != nil {
		return nil, err
	}
	maxDepth, err := fieldInt(top, "max_depth")
	if err != nil {
		return nil, err
	}
	vFov, err := fieldFloat(top, "v_fov")
	if err != nil {
		return nil, err
	}
	aperture, err := fieldFloat(top, "aperture")
	if err != nil {
		return nil, err
	}
	focalDistance, err := fieldFloat(top, "focal_distance")
	if err != nil {
		return nil, err
	}
	cameraPos, err := fieldVec3(top, "camera_pos")
	if err != nil {
		return nil, err
	}
	cameraDir, err := fieldVec3(top, "camera_dir")
	if err != nil {
		return nil, err
	}
	cameraUp, err := fieldVec3(top, "camera_up")
	if err != nil {
		return nil, err
	}

	if vFov <= 0 {
		return nil, &ConfigError{Msg: "v_fov must be > 0"}
	}
	if cameraPos == cameraDir {
		return nil, &ConfigError{Msg: "camera_pos and camera_dir must differ"}
	}
	camera := scene.NewCamera(cameraPos, cameraDir, cameraUp, float32(vFov), float32(aspectRatio), float32(aperture), float32(focalDistance))

	objectsVal, ok := top.fields["objects"]
	if !ok || objectsVal.kind != valArray {
		return nil, &ParseError{Msg: "missing objects array"}
	}
	var items []primitives.Primitive
	for _, objVal := range objectsVal.arr {
		prims, err := buildObject(objVal)
		if err != nil {
			return nil, err
		}
		items = append(items, prims...)
	}

	lightsVal, ok := top.fields["lights"]
	if !ok || lightsVal.kind != valArray {
		return nil, &ParseError{Msg: "missing lights array"}
	}
	lights := make([]pmath.Vec3, 0, len(lightsVal.arr))
	for _, lv := range lightsVal.arr {
		v, err := arrayToVec3(lv)
		if err != nil {
			return nil, err
		}
		lights = append(lights, v)
	}

	sc := scene.NewScene(camera, lights, items)

	return &Config{
		Scene: sc,
		Options: render.Options{
			Width:           imageWidth,
			Height:          imageHeight,
			SamplesPerPixel: samplesPerPixel,
			MaxDepth:        maxDepth,
			Multithreading:  multithreading,
		},
	}, nil
}

func buildObject(v value) ([]primitives.Primitive, error) {
	if v.kind != valRecord {
		return nil, &ParseError{Msg: "object must be a record"}
	}
	objtype, err := fieldString(v, "objtype")
	if err != nil {
		return nil, err
	}
	vectors, ok := v.fields["vectors"]
	if !ok || vectors.kind != valArray {
		return nil, &ParseError{Msg: "object missing vectors array"}
	}
	scalars, ok := v.fields["scalars"]
	if !ok || scalars.kind != valArray {
		return nil, &ParseError{Msg: "object missing scalars array"}
	}
	materialVal, ok := v.fields["material"]
	if !ok || materialVal.kind != valArray {
		return nil, &ParseError{Msg: "object missing material array"}
	}
	mat, err := buildMaterial(materialVal)
	if err != nil {
		return nil, err
	}

	switch objtype {
	case "Sphere":
		if len(vectors.arr) < 1 || len(scalars.arr) < 1 {
			return nil, &ParseError{Msg: "Sphere requires one vector and one scalar"}
		}
		center, err := arrayToVec3(vectors.arr[0])
		if err != nil {
			return nil, err
		}
		radius := scalars.arr[0].n
		if radius <= 0 {
			return nil, &ConfigError{Msg: "sphere radius must be > 0"}
		}
		return []primitives.Primitive{primitives.NewSphere(center, float32(radius), mat)}, nil
	case "Triangle":
		if len(vectors.arr) < 3 || len(scalars.arr) < 1 {
			return nil, &ParseError{Msg: "Triangle requires three vectors and one scalar"}
		}
		p0, err := arrayToVec3(vectors.arr[0])
		if err != nil {
			return nil, err
		}
		p1, err := arrayToVec3(vectors.arr[1])
		if err != nil {
			return nil, err
		}
		p2, err := arrayToVec3(vectors.arr[2])
		if err != nil {
			return nil, err
		}
		cull := scalars.arr[0].n != 0
		return []primitives.Primitive{primitives.NewTriangle(p0, p1, p2, mat, cull)}, nil
	case "Mesh":
		return buildMesh(v, scalars, mat)
	default:
		return nil, &ParseError{Msg: fmt.Sprintf("unknown objtype %q", objtype)}
	}
}

// buildMesh reads the glTF file path from the object's strings array and an
// optional uniform scale and cull flag from its scalars array (scale
// defaulting to 1, cull defaulting to false), then loads every triangle of
// the named mesh, all sharing material.
func buildMesh(v value, scalars value, mat materials.Material) ([]primitives.Primitive, error) {
	stringsVal, ok := v.fields["strings"]
	if !ok || stringsVal.kind != valArray || len(stringsVal.arr) < 1 {
		return nil, &ParseError{Msg: "Mesh requires a strings array with a file path"}
	}
	if stringsVal.arr[0].kind != valString {
		return nil, &ParseError{Msg: "Mesh file path must be a string"}
	}
	path := stringsVal.arr[0].s

	scale := float32(1.0)
	if len(scalars.arr) >= 1 {
		scale = float32(scalars.arr[0].n)
	}
	cull := false
	if len(scalars.arr) >= 2 {
		cull = scalars.arr[1].n != 0
	}

	tris, err := scene.LoadMesh(path, mat, scale, cull)
	if err != nil {
		return nil, fmt.Errorf("loading mesh object %q: %w", path, err)
	}
	return tris, nil
}

func buildMaterial(v value) (materials.Material, error) {
	if len(v.arr) == 0 {
		return materials.Material{}, &ParseError{Msg: "material array must not be empty"}
	}
	kind := v.arr[0].s
	args := v.arr[1:]
	floatArg := func(i int) (float32, error) {
		if i >= len(args) {
			return 0, &ParseError{Msg: fmt.Sprintf("material %s missing argument %d", kind, i)}
		}
		f, err := strconv.ParseFloat(args[i].s, 32)
		if err != nil {
			return 0, &ParseError{Msg: fmt.Sprintf("material %s argument %d is not a number", kind, i)}
		}
		return float32(f), nil
	}

	switch kind {
	case "Lambertian":
		r, err := floatArg(0)
		if err != nil {
			return materials.Material{}, err
		}
		g, err := floatArg(1)
		if err != nil {
			return materials.Material{}, err
		}
		b, err := floatArg(2)
		if err != nil {
			return materials.Material{}, err
		}
		return materials.NewLambertian(colorRGB(r, g, b)), nil
	case "Metal":
		r, err := floatArg(0)
		if err != nil {
			return materials.Material{}, err
		}
		g, err := floatArg(1)
		if err != nil {
			return materials.Material{}, err
		}
		b, err := floatArg(2)
		if err != nil {
			return materials.Material{}, err
		}
		fuzz, err := floatArg(3)
		if err != nil {
			return materials.Material{}, err
		}
		return materials.NewMetal(colorRGB(r, g, b), fuzz), nil
	case "Mirror":
		return materials.NewMirror(), nil
	case "Dielectric":
		ior, err := floatArg(0)
		if err != nil {
			return materials.Material{}, err
		}
		if ior <= 0 {
			return materials.Material{}, &ConfigError{Msg: "dielectric ior must be > 0"}
		}
		return materials.NewDielectric(ior), nil
	default:
		return materials.Material{}, &ParseError{Msg: fmt.Sprintf("unknown material %q", kind)}
	}
}
