package loaders

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/df07/go-interactive-raytracer/pkg/core"
)

// DefaultGroup holds faces that appear before any "o" or "g" statement
const DefaultGroup = "default"

// ErrInvalidFace is returned for face statements that cannot be resolved to vertices
var ErrInvalidFace = errors.New("invalid face")

// Face is a triangle given by its three vertex positions
type Face [3]core.Vec3

// Mesh contains the triangles of a Wavefront OBJ file, grouped by object/group name
type Mesh struct {
	Vertices []core.Vec3

	groups map[string][]Face
	order  []string
}

func newMesh() *Mesh {
	return &Mesh{groups: make(map[string][]Face)}
}

// Group returns the triangles of the named group, or nil if it does not exist
func (m *Mesh) Group(name string) []Face {
	return m.groups[name]
}

// Groups returns the group names in the order they were first seen
func (m *Mesh) Groups() []string {
	return append([]string(nil), m.order...)
}

// TriangleCount returns the number of triangles over all groups
func (m *Mesh) TriangleCount() int {
	count := 0
	for _, faces := range m.groups {
		count += len(faces)
	}
	return count
}

func (m *Mesh) addFace(group string, face Face) {
	if _, exists := m.groups[group]; !exists {
		m.order = append(m.order, group)
	}
	m.groups[group] = append(m.groups[group], face)
}

// LoadWavefront reads a Wavefront OBJ file from disk
func LoadWavefront(filename string) (*Mesh, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open OBJ file: %w", err)
	}
	defer file.Close()

	mesh, err := ParseWavefront(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return mesh, nil
}

// ParseWavefront parses vertex, face, object and group statements. Everything else is ignored.
// Polygons with more than three vertices are fan triangulated.
func ParseWavefront(r io.Reader) (*Mesh, error) {
	mesh := newMesh()
	group := DefaultGroup
	lineNum := 0

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNum++
		lineTokens := strings.Fields(scanner.Text())
		if len(lineTokens) == 0 || strings.HasPrefix(lineTokens[0], "#") {
			continue
		}

		switch lineTokens[0] {
		case "v":
			v, err := parseVec3(lineTokens)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNum, err)
			}
			mesh.Vertices = append(mesh.Vertices, v)
		case "o", "g":
			if len(lineTokens) < 2 {
				return nil, fmt.Errorf("line %d: unsupported syntax for '%s'; expected a name", lineNum, lineTokens[0])
			}
			group = lineTokens[1]
		case "f":
			faces, err := parseFace(lineTokens, mesh.Vertices)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNum, err)
			}
			for _, face := range faces {
				mesh.addFace(group, face)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading OBJ data: %w", err)
	}

	return mesh, nil
}

// parseFace resolves the vertex indices of a face and fans it into triangles
func parseFace(lineTokens []string, vertices []core.Vec3) ([]Face, error) {
	if len(lineTokens) < 4 {
		return nil, fmt.Errorf("%w: expected at least 3 vertices; got %d", ErrInvalidFace, len(lineTokens)-1)
	}

	corners := make([]core.Vec3, 0, len(lineTokens)-1)
	for arg, token := range lineTokens[1:] {
		// Only the position index matters: i, i/t, i/t/n and i//n
		indexToken, _, _ := strings.Cut(token, "/")
		if indexToken == "" {
			return nil, fmt.Errorf("%w: argument %d does not include a vertex index", ErrInvalidFace, arg)
		}

		offset, err := selectVertexIndex(indexToken, len(vertices))
		if err != nil {
			return nil, fmt.Errorf("%w: argument %d: %v", ErrInvalidFace, arg, err)
		}
		corners = append(corners, vertices[offset])
	}

	faces := make([]Face, 0, len(corners)-2)
	for i := 1; i+1 < len(corners); i++ {
		faces = append(faces, Face{corners[0], corners[i], corners[i+1]})
	}
	return faces, nil
}

// selectVertexIndex converts a 1-based or negative (relative) OBJ index into a slice offset
func selectVertexIndex(indexToken string, count int) (int, error) {
	index, err := strconv.Atoi(indexToken)
	if err != nil {
		return -1, err
	}

	var offset int
	if index < 0 {
		offset = count + index
	} else {
		offset = index - 1
	}
	if offset < 0 || offset >= count {
		return -1, fmt.Errorf("index %d out of bounds", index)
	}
	return offset, nil
}

func parseVec3(lineTokens []string) (core.Vec3, error) {
	if len(lineTokens) < 4 {
		return core.Vec3{}, fmt.Errorf("unsupported syntax for '%s'; expected 3 arguments; got %d", lineTokens[0], len(lineTokens)-1)
	}

	var coords [3]float64
	for i := range coords {
		value, err := strconv.ParseFloat(lineTokens[i+1], 64)
		if err != nil {
			return core.Vec3{}, err
		}
		coords[i] = value
	}
	return core.NewVec3(coords[0], coords[1], coords[2]), nil
}
