package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/homology/geometry"
)

var errNoPoints = errors.New("no input: pass a points file, '-' for stdin, or --point flags")

// pointsFile is the mapping form of a points file:
//
//	radius: 0.5   # optional
//	points:
//	  - [0, 0]
//	  - [1, 0]
//
// A bare sequence of coordinate rows is accepted as well. JSON is a subset
// of YAML flow syntax, so both formats parse here.
type pointsFile struct {
	Radius *float64    `yaml:"radius"`
	Points [][]float64 `yaml:"points"`
}

// parsePoints decodes a points document.
func parsePoints(data []byte) (pointsFile, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return pointsFile{}, fmt.Errorf("parse points: %w", err)
	}
	if len(doc.Content) == 0 {
		return pointsFile{}, nil
	}

	var pf pointsFile
	root := doc.Content[0]
	switch root.Kind {
	case yaml.SequenceNode:
		if err := root.Decode(&pf.Points); err != nil {
			return pointsFile{}, fmt.Errorf("parse points: %w", err)
		}
	case yaml.MappingNode:
		if err := root.Decode(&pf); err != nil {
			return pointsFile{}, fmt.Errorf("parse points: %w", err)
		}
	default:
		return pointsFile{}, fmt.Errorf("parse points: line %d: want a sequence or a mapping", root.Line)
	}

	return pf, nil
}

// parsePointFlag parses "x,y[,z...]".
func parsePointFlag(s string) ([]float64, error) {
	fields := strings.Split(s, ",")
	row := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("--point %q: %w", s, err)
		}
		row[i] = v
	}

	return row, nil
}

// readInput gathers points from the optional file argument ("-" is stdin)
// followed by every --point flag. The file's radius, if any, is returned
// for use when --radius was not given.
func readInput(args []string, flags []string, stdin io.Reader) ([]geometry.Point, *float64, error) {
	var (
		pf   pointsFile
		rows [][]float64
	)
	if len(args) > 0 {
		var (
			data []byte
			err  error
		)
		if args[0] == "-" {
			data, err = io.ReadAll(stdin)
		} else {
			data, err = os.ReadFile(args[0])
		}
		if err != nil {
			return nil, nil, fmt.Errorf("read points: %w", err)
		}
		if pf, err = parsePoints(data); err != nil {
			return nil, nil, fmt.Errorf("%s: %w", args[0], err)
		}
		rows = append(rows, pf.Points...)
	}
	for _, s := range flags {
		row, err := parsePointFlag(s)
		if err != nil {
			return nil, nil, err
		}
		rows = append(rows, row)
	}
	if len(args) == 0 && len(flags) == 0 {
		return nil, nil, errNoPoints
	}

	return geometry.FromSlices(rows), pf.Radius, nil
}
