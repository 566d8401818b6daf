// Package tsplib reads TSPLIB-formatted instances (EUC_2D node coordinates)
// and converts them into the module's distance-matrix representation.
//
// Design:
//   - Parse consumes any io.Reader; Load is the thin file wrapper.
//   - Header keywords appear as "KEY : VALUE" lines; NODE_COORD_SECTION rows
//     are "<id> <x> <y>". COMMENT lines and EOF markers are skipped.
//   - Only EDGE_WEIGHT_TYPE EUC_2D is supported: pairwise Euclidean distance
//     rounded to the nearest integer, which is what the search engine's
//     integral cost model expects.
//
// Contracts:
//   - Strict sentinel errors; no panics on malformed input.
package tsplib

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"dualtour/matrix"
)

var (
	// ErrBadFormat is returned for structurally malformed input: unparsable
	// header values, bad coordinate rows, or no coordinates at all.
	ErrBadFormat = errors.New("tsplib: malformed instance")

	// ErrUnsupportedWeightType is returned for any EDGE_WEIGHT_TYPE other
	// than EUC_2D.
	ErrUnsupportedWeightType = errors.New("tsplib: unsupported edge weight type")

	// ErrDimensionMismatch is returned when the DIMENSION header disagrees
	// with the number of coordinate rows.
	ErrDimensionMismatch = errors.New("tsplib: dimension mismatch")
)

// Instance is a parsed TSPLIB problem.
type Instance struct {
	Name      string
	Dimension int
	Points    []matrix.Point
}

// Matrix builds the rounded Euclidean distance matrix for the instance.
//
// Complexity: O(n²).
func (ins *Instance) Matrix() (*matrix.Dense, error) {
	return matrix.NewEuclidean(ins.Points)
}

// Parse reads a TSPLIB instance from r.
func Parse(r io.Reader) (*Instance, error) {
	var (
		ins       Instance
		weightSet bool
		inCoords  bool
	)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "COMMENT") {
			continue
		}
		if line == "NODE_COORD_SECTION" {
			inCoords = true
			continue
		}
		if line == "EOF" {
			break
		}

		if inCoords {
			fields := strings.Fields(line)
			if len(fields) != 3 {
				// A non-coordinate line ends the section (trailing keywords).
				inCoords = false
			} else {
				x, errX := strconv.ParseFloat(fields[1], 64)
				y, errY := strconv.ParseFloat(fields[2], 64)
				if errX != nil || errY != nil {
					return nil, fmt.Errorf("%w: coordinate row %q", ErrBadFormat, line)
				}
				ins.Points = append(ins.Points, matrix.Point{X: x, Y: y})
				continue
			}
		}

		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue // unknown bare keyword
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		switch key {
		case "NAME":
			ins.Name = value
		case "DIMENSION":
			d, err := strconv.Atoi(value)
			if err != nil || d < 0 {
				return nil, fmt.Errorf("%w: DIMENSION %q", ErrBadFormat, value)
			}
			ins.Dimension = d
		case "EDGE_WEIGHT_TYPE":
			if value != "EUC_2D" {
				return nil, fmt.Errorf("%w: %s", ErrUnsupportedWeightType, value)
			}
			weightSet = true
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadFormat, err)
	}

	if !weightSet {
		return nil, fmt.Errorf("%w: missing EDGE_WEIGHT_TYPE", ErrBadFormat)
	}
	if len(ins.Points) == 0 {
		return nil, fmt.Errorf("%w: no coordinates", ErrBadFormat)
	}
	if ins.Dimension != 0 && ins.Dimension != len(ins.Points) {
		return nil, fmt.Errorf("%w: DIMENSION %d, %d coordinate rows",
			ErrDimensionMismatch, ins.Dimension, len(ins.Points))
	}
	ins.Dimension = len(ins.Points)
	return &ins, nil
}

// Load parses the TSPLIB instance file at path.
func Load(path string) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tsplib: %w", err)
	}
	defer f.Close()
	return Parse(f)
}
