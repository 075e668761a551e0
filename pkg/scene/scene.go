package scene

import (
	"errors"
	"fmt"

	"github.com/df07/go-interactive-raytracer/pkg/core"
	"github.com/df07/go-interactive-raytracer/pkg/geometry"
)

// ErrUnknownScene is returned for ids that are not in the catalog
var ErrUnknownScene = errors.New("unknown scene")

// Scene contains everything the renderer swaps in when a world is loaded
type Scene struct {
	ID         int
	Name       string
	Eye        core.Vec3 // Camera position
	LookAt     core.Vec3 // Camera target
	Up         core.Vec3 // Camera up vector
	Background core.Vec3 // Color returned for rays that escape the world
	World      geometry.Shape
}

// NewCamera creates a camera at the scene's pose
func (s *Scene) NewCamera() *geometry.Camera {
	return geometry.NewCamera(s.Eye, s.LookAt, s.Up)
}

// GetPrimitiveCount returns the number of primitive shapes in the world
func (s *Scene) GetPrimitiveCount() int {
	return countPrimitives(s.World)
}

// countPrimitives walks composites and transforms down to the primitives they wrap
func countPrimitives(shape geometry.Shape) int {
	switch obj := shape.(type) {
	case nil:
		return 0
	case *geometry.List:
		count := 0
		for _, child := range obj.Objects {
			count += countPrimitives(child)
		}
		return count
	case *geometry.SpecialList:
		return countPrimitives(&obj.List)
	case *geometry.Translate:
		return countPrimitives(obj.Object)
	case *geometry.Rotate:
		return countPrimitives(obj.Object)
	case *geometry.Quad:
		return 2
	default:
		return 1
	}
}

// Info describes a catalog entry
type Info struct {
	ID          int
	Name        string
	Description string
}

type entry struct {
	info  Info
	build func() (*Scene, error)
}

var catalog = []entry{
	{Info{0, "startup", "The metal duck from the world 2 viewpoint on black"}, newStartupScene},
	{Info{1, "metal-duck", "A fuzzy metal duck under a blue sky"}, newMetalDuckScene},
	{Info{2, "light-row", "A matte duck beside a row of light spheres on an unlit ground"}, newLightRowScene},
	{Info{3, "glow-grid", "A grid of glowing spheres hiding one duck, over a metal floor"}, newGlowGridScene},
}

// Catalog lists the available scenes in id order
func Catalog() []Info {
	infos := make([]Info, 0, len(catalog))
	for _, e := range catalog {
		infos = append(infos, e.info)
	}
	return infos
}

// New builds the scene with the given id
func New(id int) (*Scene, error) {
	for _, e := range catalog {
		if e.info.ID != id {
			continue
		}
		s, err := e.build()
		if err != nil {
			return nil, fmt.Errorf("failed to build scene %d: %w", id, err)
		}
		s.ID = e.info.ID
		s.Name = e.info.Name
		return s, nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownScene, id)
}
