// Package loaders implements the external-collaborator parsers that feed
// TriangleMesh construction: a minimal OBJ reader and an export helper for
// writing a rendered framebuffer out to disk.
package loaders

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/df07/rayforge/pkg/core"
)

// LoadOBJ parses the "v" (vertex) and "f" (triangular face) records of an
// OBJ file, returning positions and 0-based triangle indices in the shape
// NewTriangleMesh expects. Faces are assumed already triangulated; only
// the vertex position index of each face token is read. Any other line is
// ignored.
func LoadOBJ(path string) (positions []core.Vec3, indices []int32, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("loaders: opening %s: %w", path, err)
	}
	defer f.Close()

	return ParseOBJ(f)
}

// ParseOBJ reads OBJ records from r. Split out from LoadOBJ so callers can
// feed it embedded or in-memory scene data without touching the filesystem.
func ParseOBJ(r io.Reader) (positions []core.Vec3, indices []int32, err error) {
	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, nil, fmt.Errorf("loaders: line %d: malformed vertex record", lineNum)
			}
			v, err := parseVertex(fields[1:4])
			if err != nil {
				return nil, nil, fmt.Errorf("loaders: line %d: %w", lineNum, err)
			}
			positions = append(positions, v)

		case "f":
			if len(fields) < 4 {
				return nil, nil, fmt.Errorf("loaders: line %d: malformed face record", lineNum)
			}
			idx, err := parseFaceIndices(fields[1:4])
			if err != nil {
				return nil, nil, fmt.Errorf("loaders: line %d: %w", lineNum, err)
			}
			indices = append(indices, idx[0], idx[1], idx[2])
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("loaders: scanning obj: %w", err)
	}

	return positions, indices, nil
}

func parseVertex(fields []string) (core.Vec3, error) {
	var v [3]float32
	for i, f := range fields {
		parsed, err := strconv.ParseFloat(f, 32)
		if err != nil {
			return core.Vec3{}, fmt.Errorf("invalid vertex component %q: %w", f, err)
		}
		v[i] = float32(parsed)
	}
	return core.NewVec3(v[0], v[1], v[2]), nil
}

func parseFaceIndices(fields []string) ([3]int32, error) {
	var idx [3]int32
	for i, f := range fields {
		token := strings.SplitN(f, "/", 2)[0]
		parsed, err := strconv.Atoi(token)
		if err != nil {
			return idx, fmt.Errorf("invalid face index %q: %w", f, err)
		}
		idx[i] = int32(parsed - 1)
	}
	return idx, nil
}
