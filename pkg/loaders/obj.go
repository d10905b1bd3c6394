package loaders

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/material"
	"github.com/df07/go-recursive-raytracer/pkg/scene"
)

// ErrMalformedOBJ is returned when a recognised OBJ statement cannot be parsed
var ErrMalformedOBJ = errors.New("loaders: malformed obj")

// OBJFace is one triangle of a mesh. Indices are zero-based; a normal
// index of -1 means the face has no vertex normals.
type OBJFace struct {
	Vertices [3]int
	Normals  [3]int
}

// Smooth reports whether every corner of the face carries a normal
func (f OBJFace) Smooth() bool {
	return f.Normals[0] >= 0 && f.Normals[1] >= 0 && f.Normals[2] >= 0
}

// OBJGroup is a named set of faces introduced by a "g" statement
type OBJGroup struct {
	Name  string
	Faces []OBJFace
}

// OBJData contains the mesh data read from a Wavefront OBJ file
type OBJData struct {
	Vertices []core.Tuple // Positions, in file order
	Normals  []core.Tuple // Vertex normals, in file order
	Default  OBJGroup     // Faces that appear before any "g" statement
	Groups   []*OBJGroup  // Named groups, in order of first appearance
	Ignored  int          // Lines that were not understood

	// Material applied to every triangle by AddToWorld
	Material material.Material
}

// LoadOBJ opens and parses an OBJ file
func LoadOBJ(filename string) (*OBJData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open OBJ file: %w", err)
	}
	defer file.Close()

	data, err := ParseOBJ(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return data, nil
}

// ParseOBJ reads vertices, normals, faces and groups. Polygons with more
// than three vertices are split into a fan of triangles. Unknown statements
// are skipped and counted in Ignored.
func ParseOBJ(r io.Reader) (*OBJData, error) {
	data := &OBJData{Material: material.DefaultMaterial()}
	current := &data.Default
	named := make(map[string]*OBJGroup)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		var err error
		switch fields[0] {
		case "v":
			var p core.Tuple
			p, err = parseTriple(fields[1:])
			data.Vertices = append(data.Vertices, core.Point(p.X, p.Y, p.Z))
		case "vn":
			var n core.Tuple
			n, err = parseTriple(fields[1:])
			data.Normals = append(data.Normals, core.Vector(n.X, n.Y, n.Z))
		case "f":
			var faces []OBJFace
			faces, err = data.parseFace(fields[1:])
			current.Faces = append(current.Faces, faces...)
		case "g":
			if len(fields) < 2 {
				err = errors.New("group without a name")
				break
			}
			name := strings.Join(fields[1:], " ")
			group, ok := named[name]
			if !ok {
				group = &OBJGroup{Name: name}
				named[name] = group
				data.Groups = append(data.Groups, group)
			}
			current = group
		default:
			data.Ignored++
		}

		if err != nil {
			return nil, fmt.Errorf("line %d: %v: %w", lineNo, err, ErrMalformedOBJ)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read OBJ data: %w", err)
	}

	return data, nil
}

func parseTriple(fields []string) (core.Tuple, error) {
	if len(fields) < 3 {
		return core.Tuple{}, fmt.Errorf("expected 3 coordinates, got %d", len(fields))
	}
	var xyz [3]float64
	for i := range xyz {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return core.Tuple{}, fmt.Errorf("bad coordinate %q", fields[i])
		}
		xyz[i] = v
	}
	return core.Tuple{X: xyz[0], Y: xyz[1], Z: xyz[2]}, nil
}

// parseFace accepts "v", "v/vt", "v//vn" and "v/vt/vn" references
func (d *OBJData) parseFace(fields []string) ([]OBJFace, error) {
	if len(fields) < 3 {
		return nil, fmt.Errorf("face needs at least 3 vertices, got %d", len(fields))
	}

	vertices := make([]int, len(fields))
	normals := make([]int, len(fields))
	for i, field := range fields {
		parts := strings.Split(field, "/")

		v, err := resolveIndex(parts[0], len(d.Vertices))
		if err != nil {
			return nil, fmt.Errorf("vertex %q: %v", field, err)
		}
		vertices[i] = v

		normals[i] = -1
		if len(parts) == 3 && parts[2] != "" {
			n, err := resolveIndex(parts[2], len(d.Normals))
			if err != nil {
				return nil, fmt.Errorf("normal %q: %v", field, err)
			}
			normals[i] = n
		}
	}

	faces := make([]OBJFace, 0, len(fields)-2)
	for i := 1; i < len(fields)-1; i++ {
		faces = append(faces, OBJFace{
			Vertices: [3]int{vertices[0], vertices[i], vertices[i+1]},
			Normals:  [3]int{normals[0], normals[i], normals[i+1]},
		})
	}
	return faces, nil
}

// resolveIndex converts a one-based (or negative, relative) OBJ index
func resolveIndex(s string, count int) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("bad index %q", s)
	}
	if n < 0 {
		n = count + n + 1
	}
	if n < 1 || n > count {
		return 0, fmt.Errorf("index %s out of range (have %d)", s, count)
	}
	return n - 1, nil
}

// FaceCount returns the number of triangles across all groups
func (d *OBJData) FaceCount() int {
	n := len(d.Default.Faces)
	for _, g := range d.Groups {
		n += len(g.Faces)
	}
	return n
}

func (d *OBJData) triangle(f OBJFace) geometry.Shape {
	p1, p2, p3 := d.Vertices[f.Vertices[0]], d.Vertices[f.Vertices[1]], d.Vertices[f.Vertices[2]]
	if f.Smooth() {
		tri := geometry.NewSmoothTriangle(p1, p2, p3,
			d.Normals[f.Normals[0]], d.Normals[f.Normals[1]], d.Normals[f.Normals[2]])
		tri.SetMaterial(d.Material)
		return tri
	}
	tri := geometry.NewTriangle(p1, p2, p3)
	tri.SetMaterial(d.Material)
	return tri
}

// AddToWorld adds the mesh as one top-level group and returns its index.
// Ungrouped faces are direct children; each named group becomes a subgroup.
func (d *OBJData) AddToWorld(w *scene.World) (int, error) {
	root := w.AddObject(geometry.NewGroup())

	addFaces := func(parent int, faces []OBJFace) error {
		for _, f := range faces {
			if _, err := w.AddChild(parent, d.triangle(f)); err != nil {
				return err
			}
		}
		return nil
	}

	if err := addFaces(root, d.Default.Faces); err != nil {
		return 0, fmt.Errorf("failed to add faces: %w", err)
	}
	for _, g := range d.Groups {
		sub, err := w.AddChild(root, geometry.NewGroup())
		if err != nil {
			return 0, fmt.Errorf("failed to add group %q: %w", g.Name, err)
		}
		if err := addFaces(sub, g.Faces); err != nil {
			return 0, fmt.Errorf("failed to add group %q: %w", g.Name, err)
		}
	}

	return root, nil
}
