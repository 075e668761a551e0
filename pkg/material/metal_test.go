package material

import (
	"math/rand"
	"testing"

	"github.com/df07/go-interactive-raytracer/pkg/core"
)

func TestNewMetal_FuzznessClamp(t *testing.T) {
	tests := []struct {
		name             string
		inputFuzzness    float64
		expectedFuzzness float64
	}{
		{"Valid fuzzness 0.0", 0.0, 0.0},
		{"Valid fuzzness 0.5", 0.5, 0.5},
		{"Valid fuzzness 1.0", 1.0, 1.0},
		{"Clamp above 1.0", 1.5, 1.0},
		{"Clamp below 0.0", -0.5, 0.0},
	}

	albedo := core.NewVec3(0.8, 0.8, 0.8)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metal := NewMetal(albedo, tt.inputFuzzness)
			if metal.Fuzzness != tt.expectedFuzzness {
				t.Errorf("Expected fuzzness %f, got %f", tt.expectedFuzzness, metal.Fuzzness)
			}
		})
	}
}

func TestMetal_PerfectMirror(t *testing.T) {
	albedo := core.NewVec3(0.9, 0.9, 0.9)
	metal := NewMetal(albedo, 0.0)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	rayIn := core.NewRay(core.NewVec3(0, 1, 1), core.NewVec3(0, -2, -3))
	hit := HitRecord{
		Point:  core.NewVec3(0, 0, 0),
		Normal: core.NewVec3(0, 0, 1),
	}

	scatter, didScatter := metal.Scatter(rayIn, hit, sampler)
	if !didScatter {
		t.Fatal("Metal should scatter")
	}

	expected := core.Reflect(rayIn.Direction.Normalize(), hit.Normal)
	if scatter.Scattered.Direction != expected {
		t.Errorf("Perfect reflection failed: expected %v, got %v", expected, scatter.Scattered.Direction)
	}
	if scatter.Attenuation != albedo {
		t.Errorf("Attenuation should equal albedo: expected %v, got %v", albedo, scatter.Attenuation)
	}
}

func TestMetal_FuzzyReflectionVaries(t *testing.T) {
	metal := NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.5)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	rayIn := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))
	hit := HitRecord{Normal: core.NewVec3(0, 0, 1)}

	first, _ := metal.Scatter(rayIn, hit, sampler)
	varied := false
	for i := 0; i < 10; i++ {
		next, _ := metal.Scatter(rayIn, hit, sampler)
		if next.Scattered.Direction != first.Scattered.Direction {
			varied = true
			break
		}
	}
	if !varied {
		t.Error("Fuzzy metal should produce varying reflection directions")
	}
}

func TestMetal_AbsorbedBelowSurface(t *testing.T) {
	metal := NewMetal(core.NewVec3(0.8, 0.8, 0.8), 1.0)

	// Grazing ray reflects to (1, 0, 0.01); fuzz of (0, 0, -1) pushes it under the surface
	sampler := fixedSampler{value3D: core.NewVec3(0.5, 0.5, 0.0001)}
	rayIn := core.NewRay(core.NewVec3(-1, 0, 0.01), core.NewVec3(1, 0, -0.01))
	hit := HitRecord{Normal: core.NewVec3(0, 0, 1)}

	scatter, didScatter := metal.Scatter(rayIn, hit, sampler)
	if didScatter {
		t.Errorf("Expected absorption, got scattered direction %v", scatter.Scattered.Direction)
	}
}
