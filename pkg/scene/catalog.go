package scene

import (
	"math/rand"

	"github.com/df07/go-interactive-raytracer/pkg/core"
	"github.com/df07/go-interactive-raytracer/pkg/geometry"
	"github.com/df07/go-interactive-raytracer/pkg/material"
)

// Every catalog scene uses +z as up. Ducks are turned with negative angles, clockwise seen from +z.
var zUp = core.NewVec3(0, 0, 1)

// newSceneSampler returns the generator for per-scene jitter, seeded so that scenes are reproducible
func newSceneSampler(id int64) core.Sampler {
	return core.NewRandomSampler(rand.New(rand.NewSource(id + 1)))
}

// metalDuck is the duck in fuzzy yellow and orange metal
func metalDuck() (geometry.Shape, error) {
	eend, err := NewEend(
		material.NewMetal(core.NewVec3(1.0, 1.0, 0.0), 0.8),
		material.NewMetal(core.NewVec3(1.0, 0.5, 0.0), 0.8),
	)
	if err != nil {
		return nil, err
	}
	return geometry.NewList(geometry.NewRotateZ(eend, -55)), nil
}

func newStartupScene() (*Scene, error) {
	world, err := metalDuck()
	if err != nil {
		return nil, err
	}
	return &Scene{
		Eye:        core.NewVec3(-4, -10, 1),
		LookAt:     core.NewVec3(-2, 0, 5),
		Up:         zUp,
		Background: core.NewVec3(0, 0, 0),
		World:      world,
	}, nil
}

func newMetalDuckScene() (*Scene, error) {
	world, err := metalDuck()
	if err != nil {
		return nil, err
	}
	return &Scene{
		Eye:        core.NewVec3(0, -2, -2),
		LookAt:     core.NewVec3(0, 0, -1),
		Up:         zUp,
		Background: core.NewVec3(0.4, 0.4, 1.0),
		World:      world,
	}, nil
}

func newLightRowScene() (*Scene, error) {
	world := geometry.NewList()

	ground := material.NewUnlit(core.NewVec3(0.5, 0.5, 0.5))
	world.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground))

	light := material.NewLight(core.NewVec3(4.0, 4.0, 4.0))
	for i := -10; i < 10; i++ {
		world.Add(geometry.NewSphere(core.NewVec3(-2, float64(i), 0), 1.0, light))
	}

	eend, err := NewEend(
		material.NewLambertian(core.NewVec3(0.0, 0.0, 0.0)),
		material.NewLambertian(core.NewVec3(0.9, 0.9, 0.9)),
	)
	if err != nil {
		return nil, err
	}
	world.Add(geometry.NewRotateZ(geometry.NewTranslate(eend, core.NewVec3(0, 0, 1)), -45))

	return &Scene{
		Eye:        core.NewVec3(-4, -10, 1),
		LookAt:     core.NewVec3(-2, 0, 5),
		Up:         zUp,
		Background: core.NewVec3(1, 1, 1),
		World:      world,
	}, nil
}

// glowGridDuckCell is the grid cell (in x-major order) that holds the duck instead of a sphere
const glowGridDuckCell = 101

func newGlowGridScene() (*Scene, error) {
	sampler := newSceneSampler(3)
	world := geometry.NewList()

	floor := material.NewMetal(core.NewVec3(0.4, 0.4, 0.4), 0.1)
	world.Add(geometry.NewSphere(core.NewVec3(0, 0, 1000.5), 1000, floor))

	orange := material.NewSpecial(core.NewVec3(1.0, 0.95, 0.1*sampler.Get1D()))

	cell := 0
	for x := -5.0; x <= 5.0; x += 0.9999 {
		for y := -5.0; y <= 5.0; y, cell = y+0.9999, cell+1 {
			yellow := material.NewSpecial(core.NewVec3(1.0, 1.0, 0.1*sampler.Get1D()))

			if cell == glowGridDuckCell {
				eend, err := NewEend(yellow, orange)
				if err != nil {
					return nil, err
				}
				offset := core.NewVec3(x*3.0-0.5, y*3.0+0.5, 0)
				world.Add(geometry.NewTranslate(geometry.NewRotateZ(eend, -220), offset))
				continue
			}

			center := core.NewVec3(x*3.0+0.1*sampler.Get1D(), y*3.0+0.1*sampler.Get1D(), 0)
			world.Add(geometry.NewSphere(center, 1.1, yellow))
		}
	}

	return &Scene{
		Eye:        core.NewVec3(0, 0.01, -17),
		LookAt:     core.NewVec3(0, 0, 0),
		Up:         zUp,
		Background: core.NewVec3(0.1, 0.08, 0.15),
		World:      world,
	}, nil
}
