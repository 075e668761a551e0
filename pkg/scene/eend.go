package scene

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/df07/go-interactive-raytracer/pkg/geometry"
	"github.com/df07/go-interactive-raytracer/pkg/loaders"
	"github.com/df07/go-interactive-raytracer/pkg/material"
)

//go:embed assets/eend.obj
var eendOBJ string

// Groups of the duck mesh
const (
	EendBody = "body"
	EendBeak = "beak"
)

var loadEendMesh = sync.OnceValues(func() (*loaders.Mesh, error) {
	return loaders.ParseWavefront(strings.NewReader(eendOBJ))
})

// NewEend builds the duck model: one list for the body and one for the beak, wrapped in a
// SpecialList so that it can be picked.
func NewEend(bodyMaterial, beakMaterial material.Material) (*geometry.SpecialList, error) {
	mesh, err := loadEendMesh()
	if err != nil {
		return nil, fmt.Errorf("failed to parse duck mesh: %w", err)
	}

	body := NewMeshList(mesh.Group(EendBody), bodyMaterial)
	beak := NewMeshList(mesh.Group(EendBeak), beakMaterial)
	return geometry.NewSpecialList(body, beak), nil
}

// NewMeshList converts mesh faces into a list of triangles sharing one material
func NewMeshList(faces []loaders.Face, mat material.Material) *geometry.List {
	list := &geometry.List{Objects: make([]geometry.Shape, 0, len(faces))}
	for _, face := range faces {
		list.Add(geometry.NewTriangle(face[0], face[1], face[2], mat))
	}
	return list
}
