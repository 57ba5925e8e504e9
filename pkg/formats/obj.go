// Package formats provides parsers for level authoring and cache file formats.
package formats

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// OBJ format errors.
var (
	ErrNonTriangleFace = errors.New("OBJ face is not a triangle")
	ErrBadVertexIndex  = errors.New("OBJ face references an invalid vertex")
	ErrMalformedLine   = errors.New("malformed OBJ line")
)

// OBJObject is a single named object from a Wavefront OBJ file with its
// positions remapped to object-local indices.
type OBJObject struct {
	Name      string
	Positions [][3]float32
	Indices   []uint32
}

// OBJ holds the objects of a parsed Wavefront OBJ file.
type OBJ struct {
	Objects []OBJObject
}

// ParseOBJ parses a Wavefront OBJ subset: `o` (object), `v` (position) and
// `f` (face) statements. Faces must be triangles; texture and normal
// references in face entries are ignored. Vertices are shared across
// objects in the file but remapped so each object indexes only its own
// positions. Faces that appear before any `o` statement belong to an
// implicit object named "default".
func ParseOBJ(r io.Reader) (*OBJ, error) {
	obj := &OBJ{}

	var positions [][3]float32
	var current *OBJObject
	remap := make(map[int]uint32)

	ensureObject := func(name string) {
		obj.Objects = append(obj.Objects, OBJObject{Name: name})
		current = &obj.Objects[len(obj.Objects)-1]
		remap = make(map[int]uint32)
	}

	lineNo := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		ident, val := fields[0], fields[1:]
		switch ident {
		case "o", "g":
			name := "default"
			if len(val) > 0 {
				name = strings.Join(val, " ")
			}
			ensureObject(name)
		case "v":
			if len(val) < 3 {
				return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedLine, lineNo, line)
			}
			var p [3]float32
			for i := 0; i < 3; i++ {
				f, err := strconv.ParseFloat(val[i], 32)
				if err != nil {
					return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedLine, lineNo, err)
				}
				p[i] = float32(f)
			}
			positions = append(positions, p)
		case "f":
			if len(val) != 3 {
				return nil, fmt.Errorf("%w: line %d has %d vertices", ErrNonTriangleFace, lineNo, len(val))
			}
			if current == nil {
				ensureObject("default")
			}
			for _, entry := range val {
				// Face entries look like "i", "i/t", "i//n" or "i/t/n";
				// only the position index matters here.
				idxStr := strings.SplitN(entry, "/", 2)[0]
				idx, err := strconv.Atoi(idxStr)
				if err != nil {
					return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedLine, lineNo, err)
				}
				// OBJ indices are 1-based; negative ones count from the end.
				if idx < 0 {
					idx = len(positions) + idx
				} else {
					idx--
				}
				if idx < 0 || idx >= len(positions) {
					return nil, fmt.Errorf("%w: line %d: index %s", ErrBadVertexIndex, lineNo, idxStr)
				}

				local, seen := remap[idx]
				if !seen {
					local = uint32(len(current.Positions))
					current.Positions = append(current.Positions, positions[idx])
					remap[idx] = local
				}
				current.Indices = append(current.Indices, local)
			}
		default:
			// vn, vt, s, usemtl, mtllib and friends are irrelevant for
			// navigation geometry.
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading OBJ: %w", err)
	}

	return obj, nil
}

// ParseOBJFile parses an OBJ file from disk.
func ParseOBJFile(path string) (*OBJ, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening OBJ file: %w", err)
	}
	defer f.Close()
	return ParseOBJ(f)
}
