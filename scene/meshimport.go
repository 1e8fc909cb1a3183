package scene

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"pathtracer/materials"
	pmath "pathtracer/math"
	"pathtracer/primitives"
)

// LoadMesh opens a .glb or .gltf file and flattens every triangle of
// every primitive of every mesh in the document into a flat list of
// triangle primitives, scaled uniformly by scale and all sharing material.
// Node transforms, skins and animation are not read; geometry is taken
// in the coordinate space it was authored in.
func LoadMesh(path string, material materials.Material, scale float32, cull bool) ([]primitives.Primitive, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mesh import %q: %w", path, err)
	}

	var triangles []primitives.Primitive
	for mi, mesh := range doc.Meshes {
		for pi, prim := range mesh.Primitives {
			tris, err := loadPrimitive(doc, prim, material, scale, cull)
			if err != nil {
				return nil, fmt.Errorf("mesh import %q: mesh %d primitive %d: %w", path, mi, pi, err)
			}
			triangles = append(triangles, tris...)
		}
	}
	return triangles, nil
}

func loadPrimitive(doc *gltf.Document, prim *gltf.Primitive, material materials.Material, scale float32, cull bool) ([]primitives.Primitive, error) {
	posIdx, ok := prim.Attributes["POSITION"]
	if !ok {
		return nil, fmt.Errorf("no POSITION attribute")
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return nil, fmt.Errorf("positions: %w", err)
	}

	var indices []uint32
	if prim.Indices != nil {
		indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return nil, fmt.Errorf("indices: %w", err)
		}
	} else {
		indices = make([]uint32, len(positions))
		for i := range indices {
			indices[i] = uint32(i)
		}
	}

	verts := make([]pmath.Vec3, len(positions))
	for i, p := range positions {
		verts[i] = pmath.Vec3{X: p[0] * scale, Y: p[1] * scale, Z: p[2] * scale}
	}

	var triangles []primitives.Primitive
	for i := 0; i+2 < len(indices); i += 3 {
		p0 := verts[indices[i]]
		p1 := verts[indices[i+1]]
		p2 := verts[indices[i+2]]
		triangles = append(triangles, primitives.NewTriangle(p0, p1, p2, material, cull))
	}
	return triangles, nil
}
