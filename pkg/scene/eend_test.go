package scene

import (
	"math"
	"testing"

	"github.com/df07/go-interactive-raytracer/pkg/core"
	"github.com/df07/go-interactive-raytracer/pkg/material"
)

func TestEendMesh_Groups(t *testing.T) {
	mesh, err := loadEendMesh()
	if err != nil {
		t.Fatalf("Failed to parse the embedded duck: %v", err)
	}

	if got := len(mesh.Group(EendBody)); got != 110 {
		t.Errorf("Expected 110 body triangles, got %d", got)
	}
	if got := len(mesh.Group(EendBeak)); got != 52 {
		t.Errorf("Expected 52 beak triangles, got %d", got)
	}
}

func TestNewEend_HitsAreSpecial(t *testing.T) {
	body := material.NewLambertian(core.NewVec3(1, 1, 0))
	beak := material.NewLambertian(core.NewVec3(1, 0.5, 0))
	eend, err := NewEend(body, beak)
	if err != nil {
		t.Fatal(err)
	}
	if eend.Len() != 2 {
		t.Fatalf("Expected body and beak lists, got %d members", eend.Len())
	}

	// Straight down through the middle of the body
	ray := core.NewRay(core.NewVec3(0.5, -0.3, 5), core.NewVec3(0, 0, -1))
	hit, ok := eend.Hit(ray, 0.001, math.Inf(1))
	if !ok {
		t.Fatal("Expected to hit the duck")
	}
	if !hit.SpecialObject {
		t.Error("Duck hits should be special")
	}
	if hit.Material != body && hit.Material != beak {
		t.Errorf("Unexpected material %T", hit.Material)
	}

	miss := core.NewRay(core.NewVec3(50, 50, 5), core.NewVec3(0, 0, -1))
	if _, ok := eend.Hit(miss, 0.001, math.Inf(1)); ok {
		t.Error("Expected miss far from the duck")
	}
}
