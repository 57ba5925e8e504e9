package formats

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
)

// NAV format errors.
var (
	ErrInvalidNavMagic       = errors.New("invalid NAV magic: expected 'FNAV'")
	ErrUnsupportedNavVersion = errors.New("unsupported NAV version")
	ErrTruncatedNavData      = errors.New("truncated NAV data")
)

// navMagic identifies a baked navmesh cache file.
const navMagic = "FNAV"

// NavVersion represents the NAV file version.
type NavVersion struct {
	Major uint8
	Minor uint8
}

// String returns the version as "Major.Minor".
func (v NavVersion) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// NavVertex is a planar navmesh vertex with its resolved polygon ring.
// Ring entries are polygon indices; -1 marks an obstacle gap.
type NavVertex struct {
	X, Y float32
	Ring []int32
}

// NavPolygon is one triangle of a cached navmesh.
type NavPolygon struct {
	Vertices [3]uint32
	OneWay   bool
}

// Nav represents a baked navmesh cache file.
type Nav struct {
	Version  NavVersion
	Vertices []NavVertex
	Polygons []NavPolygon
}

// ParseNav parses a NAV cache from raw bytes.
func ParseNav(data []byte) (*Nav, error) {
	if len(data) < 14 {
		return nil, ErrTruncatedNavData
	}

	if string(data[0:4]) != navMagic {
		return nil, ErrInvalidNavMagic
	}

	version := NavVersion{Major: data[4], Minor: data[5]}
	if version.Major != 1 {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedNavVersion, version)
	}

	r := bytes.NewReader(data[6:])

	var vertexCount, polygonCount uint32
	if err := binary.Read(r, binary.LittleEndian, &vertexCount); err != nil {
		return nil, fmt.Errorf("%w: reading vertex count", ErrTruncatedNavData)
	}
	if err := binary.Read(r, binary.LittleEndian, &polygonCount); err != nil {
		return nil, fmt.Errorf("%w: reading polygon count", ErrTruncatedNavData)
	}

	// Sanity bound: each vertex and polygon needs several bytes, so counts
	// beyond the remaining data are corrupt.
	if int(vertexCount) > r.Len() || int(polygonCount) > r.Len() {
		return nil, fmt.Errorf("invalid NAV counts: %d vertices, %d polygons", vertexCount, polygonCount)
	}

	nav := &Nav{
		Version:  version,
		Vertices: make([]NavVertex, vertexCount),
		Polygons: make([]NavPolygon, polygonCount),
	}

	for i := range nav.Vertices {
		v := &nav.Vertices[i]
		if err := binary.Read(r, binary.LittleEndian, &v.X); err != nil {
			return nil, fmt.Errorf("%w: vertex %d", ErrTruncatedNavData, i)
		}
		if err := binary.Read(r, binary.LittleEndian, &v.Y); err != nil {
			return nil, fmt.Errorf("%w: vertex %d", ErrTruncatedNavData, i)
		}
		var ringLen uint32
		if err := binary.Read(r, binary.LittleEndian, &ringLen); err != nil {
			return nil, fmt.Errorf("%w: vertex %d ring length", ErrTruncatedNavData, i)
		}
		if int(ringLen) > r.Len() {
			return nil, fmt.Errorf("%w: vertex %d ring of %d", ErrTruncatedNavData, i, ringLen)
		}
		v.Ring = make([]int32, ringLen)
		if err := binary.Read(r, binary.LittleEndian, v.Ring); err != nil {
			return nil, fmt.Errorf("%w: vertex %d ring", ErrTruncatedNavData, i)
		}
	}

	for i := range nav.Polygons {
		p := &nav.Polygons[i]
		if err := binary.Read(r, binary.LittleEndian, &p.Vertices); err != nil {
			return nil, fmt.Errorf("%w: polygon %d", ErrTruncatedNavData, i)
		}
		var oneWay uint8
		if err := binary.Read(r, binary.LittleEndian, &oneWay); err != nil {
			return nil, fmt.Errorf("%w: polygon %d flag", ErrTruncatedNavData, i)
		}
		p.OneWay = oneWay != 0
		for _, vi := range p.Vertices {
			if vi >= vertexCount {
				return nil, fmt.Errorf("invalid NAV polygon %d: vertex %d out of range", i, vi)
			}
		}
	}

	return nav, nil
}

// ParseNavFile parses a NAV cache file from disk.
func ParseNavFile(path string) (*Nav, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading NAV file: %w", err)
	}
	return ParseNav(data)
}

// Encode serializes the navmesh into the NAV cache format.
func (n *Nav) Encode() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(navMagic)
	buf.WriteByte(1) // major
	buf.WriteByte(0) // minor

	write := func(v interface{}) error {
		return binary.Write(&buf, binary.LittleEndian, v)
	}

	if err := write(uint32(len(n.Vertices))); err != nil {
		return nil, err
	}
	if err := write(uint32(len(n.Polygons))); err != nil {
		return nil, err
	}
	for i := range n.Vertices {
		v := &n.Vertices[i]
		if err := write(v.X); err != nil {
			return nil, err
		}
		if err := write(v.Y); err != nil {
			return nil, err
		}
		if err := write(uint32(len(v.Ring))); err != nil {
			return nil, err
		}
		if err := write(v.Ring); err != nil {
			return nil, err
		}
	}
	for i := range n.Polygons {
		p := &n.Polygons[i]
		if err := write(p.Vertices); err != nil {
			return nil, err
		}
		var oneWay uint8
		if p.OneWay {
			oneWay = 1
		}
		if err := write(oneWay); err != nil {
			return nil, err
		}
	}

	return buf.Bytes(), nil
}

// WriteNavFile writes the navmesh cache to disk.
func (n *Nav) WriteNavFile(path string) error {
	data, err := n.Encode()
	if err != nil {
		return fmt.Errorf("encoding NAV data: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
