package geometry

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/df07/go-interactive-raytracer/pkg/core"
)

func unitTriangle() *Triangle {
	return NewTriangle(
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 1, 0),
		testMaterial,
	)
}

// barycentricPoint returns w0*V0 + w1*V1 + w2*V2
func barycentricPoint(tri *Triangle, w0, w1, w2 float64) core.Vec3 {
	return tri.V0.Multiply(w0).Add(tri.V1.Multiply(w1)).Add(tri.V2.Multiply(w2))
}

func TestTriangle_Hit(t *testing.T) {
	tri := unitTriangle()
	ray := core.NewRay(core.NewVec3(0.25, 0.25, 1), core.NewVec3(0, 0, -1))

	hit, isHit := tri.Hit(ray, 0.001, math.Inf(1))
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if math.Abs(hit.T-1) > 1e-9 {
		t.Errorf("Expected t=1, got t=%f", hit.T)
	}
	if diff := cmp.Diff(core.NewVec3(0.25, 0.25, 0), hit.Point, approx); diff != "" {
		t.Errorf("Point mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(core.NewVec3(0, 0, 1), hit.Normal, approx); diff != "" {
		t.Errorf("Normal mismatch (-want +got):\n%s", diff)
	}
}

func TestTriangle_BarycentricConsistency(t *testing.T) {
	tri := unitTriangle()

	tests := []struct {
		name       string
		w0, w1, w2 float64
		expectHit  bool
	}{
		{"centroid", 1.0 / 3, 1.0 / 3, 1.0 / 3, true},
		{"near edge", 0.05, 0.5, 0.45, true},
		{"u+v over one", -0.2, 0.6, 0.6, false},
		{"u over one", -0.1, 1.1, 0, false},
		{"v negative", 0.6, 0.6, -0.2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := barycentricPoint(tri, tt.w0, tt.w1, tt.w2)
			origin := target.Add(core.NewVec3(0, 0, 2))
			ray := core.NewRay(origin, target.Subtract(origin))

			_, isHit := tri.Hit(ray, 0.001, math.Inf(1))
			if isHit != tt.expectHit {
				t.Errorf("Expected hit=%v at weights (%f, %f, %f), got %v",
					tt.expectHit, tt.w0, tt.w1, tt.w2, isHit)
			}
		})
	}
}

func TestTriangle_NormalNotFlipped(t *testing.T) {
	tri := unitTriangle()
	fromBelow := core.NewRay(core.NewVec3(0.25, 0.25, -1), core.NewVec3(0, 0, 1))

	hit, isHit := tri.Hit(fromBelow, 0.001, math.Inf(1))
	if !isHit {
		t.Fatal("Triangles are two-sided for intersection")
	}
	if diff := cmp.Diff(tri.Normal(), hit.Normal); diff != "" {
		t.Errorf("Normal should not face the ray (-want +got):\n%s", diff)
	}
}

func TestTriangle_NoHit(t *testing.T) {
	tests := []struct {
		name       string
		tri        *Triangle
		ray        core.Ray
		tMin, tMax float64
	}{
		{
			name: "parallel ray",
			tri:  unitTriangle(),
			ray:  core.NewRay(core.NewVec3(-1, 0.25, 0), core.NewVec3(1, 0, 0)),
			tMin: 0.001, tMax: math.Inf(1),
		},
		{
			name: "degenerate triangle",
			tri: NewTriangle(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 0), core.NewVec3(2, 2, 0),
				testMaterial),
			ray:  core.NewRay(core.NewVec3(1, 1, 1), core.NewVec3(0, 0, -1)),
			tMin: 0.001, tMax: math.Inf(1),
		},
		{
			name: "behind origin",
			tri:  unitTriangle(),
			ray:  core.NewRay(core.NewVec3(0.25, 0.25, 1), core.NewVec3(0, 0, 1)),
			tMin: 0.001, tMax: math.Inf(1),
		},
		{
			name: "beyond tMax",
			tri:  unitTriangle(),
			ray:  core.NewRay(core.NewVec3(0.25, 0.25, 1), core.NewVec3(0, 0, -1)),
			tMin: 0.001, tMax: 0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if hit, isHit := tt.tri.Hit(tt.ray, tt.tMin, tt.tMax); isHit {
				t.Errorf("Expected miss, got hit at t=%f", hit.T)
			}
		})
	}
}
