package scenefile

import (
	"fmt"

	"pathtracer/core"
	pmath "pathtracer/math"
)

func field(v value, name string) (value, error) {
	f, ok := v.fields[name]
	if !ok {
		return value{}, &ParseError{Msg: fmt.Sprintf("missing required field %q", name)}
	}
	return f, nil
}

func fieldBool(v value, name string) (bool, error) {
	f, err := field(v, name)
	if err != nil {
		return false, err
	}
	if f.kind != valBool {
		return false, &ParseError{Msg: fmt.Sprintf("field %q must be a bool", name)}
	}
	return f.b, nil
}

func fieldFloat(v value, name string) (float64, error) {
	f, err := field(v, name)
	if err != nil {
		return 0, err
	}
	if f.kind != valNumber {
		return 0, &ParseError{Msg: fmt.Sprintf("field %q must be a number", name)}
	}
	return f.n, nil
}

func fieldInt(v value, name string) (int, error) {
	f, err := fieldFloat(v, name)
	if err != nil {
		return 0, err
	}
	return int(f), nil
}

func fieldString(v value, name string) (string, error) {
	f, err := field(v, name)
	if err != nil {
		return "", err
	}
	if f.kind != valString {
		return "", &ParseError{Msg: fmt.Sprintf("field %q must be a string", name)}
	}
	return f.s, nil
}

func fieldVec3(v value, name string) (pmath.Vec3, error) {
	f, err := field(v, name)
	if err != nil {
		return pmath.Vec3{}, err
	}
	return arrayToVec3(f)
}

func arrayToVec3(v value) (pmath.Vec3, error) {
	if v.kind != valArray || len(v.arr) != 3 {
		return pmath.Vec3{}, &ParseError{Msg: "expected a 3-element array"}
	}
	for _, e := range v.arr {
		if e.kind != valNumber {
			return pmath.Vec3{}, &ParseError{Msg: "vector elements must be numbers"}
		}
	}
	return pmath.Vec3{X: float32(v.arr[0].n), Y: float32(v.arr[1].n), Z: float32(v.arr[2].n)}, nil
}

func colorRGB(r, g, b float32) core.Color {
	return core.Color{R: r, G: g, B: b, A: 1}
}
