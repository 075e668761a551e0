package loaders

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/df07/go-interactive-raytracer/pkg/core"
)

const quadOBJ = `# a unit square split into two groups
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
v 0 0 1

f 1 2 3
o top
f 1/1 3/3 4/4
g side
f 1//1 2//2 -1//5
`

func TestParseWavefront_Groups(t *testing.T) {
	mesh, err := ParseWavefront(strings.NewReader(quadOBJ))
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}

	if len(mesh.Vertices) != 5 {
		t.Errorf("Expected 5 vertices, got %d", len(mesh.Vertices))
	}
	if diff := cmp.Diff([]string{DefaultGroup, "top", "side"}, mesh.Groups()); diff != "" {
		t.Errorf("Group order mismatch (-want +got):\n%s", diff)
	}
	if mesh.TriangleCount() != 3 {
		t.Errorf("Expected 3 triangles, got %d", mesh.TriangleCount())
	}

	want := map[string][]Face{
		DefaultGroup: {{core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(1, 1, 0)}},
		"top":        {{core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 0), core.NewVec3(0, 1, 0)}},
		"side":       {{core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 0, 1)}},
	}
	for name, faces := range want {
		if diff := cmp.Diff(faces, mesh.Group(name)); diff != "" {
			t.Errorf("Group %q mismatch (-want +got):\n%s", name, diff)
		}
	}

	if mesh.Group("missing") != nil {
		t.Error("Unknown groups should return nil")
	}
}

func TestParseWavefront_FanTriangulation(t *testing.T) {
	src := "v 0 0 0\nv 1 0 0\nv 1 1 0\nv 0 1 0\nv -1 1 0\nf 1 2 3 4 5\n"
	mesh, err := ParseWavefront(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}

	faces := mesh.Group(DefaultGroup)
	if len(faces) != 3 {
		t.Fatalf("Expected a pentagon to become 3 triangles, got %d", len(faces))
	}
	for i, face := range faces {
		if face[0] != core.NewVec3(0, 0, 0) {
			t.Errorf("Triangle %d should share the first vertex, got %v", i, face[0])
		}
	}
	if faces[2][2] != core.NewVec3(-1, 1, 0) {
		t.Errorf("Last triangle should end at the last vertex, got %v", faces[2][2])
	}
}

func TestParseWavefront_Errors(t *testing.T) {
	tests := []struct {
		name        string
		src         string
		errContains string
		invalidFace bool
	}{
		{"too few face vertices", "v 0 0 0\nv 1 0 0\nf 1 2\n", "line 3", true},
		{"index out of bounds", "v 0 0 0\nv 1 0 0\nv 1 1 0\nf 1 2 4\n", "out of bounds", true},
		{"zero index", "v 0 0 0\nv 1 0 0\nv 1 1 0\nf 0 1 2\n", "out of bounds", true},
		{"missing vertex index", "v 0 0 0\nv 1 0 0\nv 1 1 0\nf /1 2 3\n", "vertex index", true},
		{"bad coordinate", "v 0 zero 0\n", "line 1", false},
		{"short vertex", "v 0 0\n", "expected 3 arguments", false},
		{"unnamed group", "g\n", "expected a name", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseWavefront(strings.NewReader(tt.src))
			if err == nil {
				t.Fatal("Expected an error")
			}
			if !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("Expected error containing %q, got %v", tt.errContains, err)
			}
			if errors.Is(err, ErrInvalidFace) != tt.invalidFace {
				t.Errorf("errors.Is(err, ErrInvalidFace) = %v, want %v", !tt.invalidFace, tt.invalidFace)
			}
		})
	}
}

func TestParseWavefront_IgnoresUnknownStatements(t *testing.T) {
	src := "mtllib duck.mtl\nv 0 0 0\nvn 0 0 1\nvt 0 0\nv 1 0 0\nusemtl yellow\ns off\nv 0 1 0\nf 1 2 3\n"
	mesh, err := ParseWavefront(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}
	if mesh.TriangleCount() != 1 {
		t.Errorf("Expected 1 triangle, got %d", mesh.TriangleCount())
	}
}

func TestLoadWavefront(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quad.obj")
	if err := os.WriteFile(path, []byte(quadOBJ), 0o644); err != nil {
		t.Fatal(err)
	}

	mesh, err := LoadWavefront(path)
	if err != nil {
		t.Fatalf("Failed to load: %v", err)
	}
	if mesh.TriangleCount() != 3 {
		t.Errorf("Expected 3 triangles, got %d", mesh.TriangleCount())
	}

	if _, err := LoadWavefront(filepath.Join(t.TempDir(), "missing.obj")); err == nil {
		t.Error("Expected an error for a missing file")
	}
}
