// SPDX-License-Identifier: MIT

// Package ingest loads individuals, kinship observations and interpretation
// probabilities from CSV tables. Every table starts with a header row, which
// is skipped.
//
//	bios:          id, sex (F|M), maternal marker, paternal marker, age
//	degrees:       id, id, degree
//	probabilities: id, id, sibling, parent, child
//
// Empty marker and age cells mean unknown. Loaded individuals are occupied and
// given. A female row with a paternal marker is kept as written and rejected
// by Load with pedigree.ErrFemalePaternalMarker.
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/kinship/observation"
	"github.com/katalvlaran/kinship/pedigree"
)

// ErrMalformedRow is returned for rows with missing or unparsable cells.
var ErrMalformedRow = errors.New("ingest: malformed row")

// ReadIndividuals parses a bios table.
func ReadIndividuals(r io.Reader) ([]*pedigree.Individual, error) {
	rows, err := readRows(r, 4)
	if err != nil {
		return nil, err
	}
	out := make([]*pedigree.Individual, 0, len(rows))
	for i, row := range rows {
		line := i + 2
		var female bool
		switch strings.ToUpper(strings.TrimSpace(row[1])) {
		case "F":
			female = true
		case "M":
			female = false
		default:
			return nil, fmt.Errorf("%w: line %d: sex %q", ErrMalformedRow, line, row[1])
		}
		n := &pedigree.Individual{
			ID:       strings.TrimSpace(row[0]),
			Female:   female,
			Maternal: strings.TrimSpace(row[2]),
			Paternal: strings.TrimSpace(row[3]),
			Occupied: true,
			Given:    true,
		}
		if len(row) > 4 && strings.TrimSpace(row[4]) != "" {
			if n.Age, err = strconv.Atoi(strings.TrimSpace(row[4])); err != nil {
				return nil, fmt.Errorf("%w: line %d: age %q", ErrMalformedRow, line, row[4])
			}
		}
		out = append(out, n)
	}

	return out, nil
}

// ReadObservations parses a degrees table.
func ReadObservations(r io.Reader) (observation.Set, error) {
	rows, err := readRows(r, 3)
	if err != nil {
		return nil, err
	}
	set := make(observation.Set)
	for i, row := range rows {
		d, err := strconv.Atoi(strings.TrimSpace(row[2]))
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: degree %q", ErrMalformedRow, i+2, row[2])
		}
		set.Add(strings.TrimSpace(row[0]), strings.TrimSpace(row[1]), d)
	}

	return set, nil
}

// ReadProbabilities parses a probabilities table.
func ReadProbabilities(r io.Reader) (observation.Probabilities, error) {
	rows, err := readRows(r, 5)
	if err != nil {
		return nil, err
	}
	probs := make(observation.Probabilities, len(rows))
	for i, row := range rows {
		var vals [3]float64
		for k := range vals {
			if vals[k], err = strconv.ParseFloat(strings.TrimSpace(row[2+k]), 64); err != nil {
				return nil, fmt.Errorf("%w: line %d: weight %q", ErrMalformedRow, i+2, row[2+k])
			}
		}
		w := observation.Weights{Sibling: vals[0], ParentOf: vals[1], ChildOf: vals[2]}
		if err = probs.Set(strings.TrimSpace(row[0]), strings.TrimSpace(row[1]), w); err != nil {
			return nil, fmt.Errorf("line %d: %w", i+2, err)
		}
	}

	return probs, nil
}

// Load reads the bios and degrees files, builds the initial graph and checks
// the observations against it.
func Load(biosPath, degreesPath string) (*pedigree.Graph, observation.Set, error) {
	individuals, err := readFile(biosPath, ReadIndividuals)
	if err != nil {
		return nil, nil, err
	}
	g, err := pedigree.New(individuals...)
	if err != nil {
		return nil, nil, fmt.Errorf("ingest: %s: %w", biosPath, err)
	}
	obs, err := readFile(degreesPath, ReadObservations)
	if err != nil {
		return nil, nil, err
	}
	if err = obs.Validate(g); err != nil {
		return nil, nil, fmt.Errorf("ingest: %s: %w", degreesPath, err)
	}

	return g, obs, nil
}

// LoadProbabilities reads a probabilities file.
func LoadProbabilities(path string) (observation.Probabilities, error) {
	return readFile(path, ReadProbabilities)
}

func readFile[T any](path string, read func(io.Reader) (T, error)) (T, error) {
	var zero T
	f, err := os.Open(path)
	if err != nil {
		return zero, fmt.Errorf("ingest: %w", err)
	}
	defer f.Close()
	v, err := read(f)
	if err != nil {
		return zero, fmt.Errorf("ingest: %s: %w", path, err)
	}

	return v, nil
}

// readRows reads every record after the header and checks the column count.
func readRows(r io.Reader, minCols int) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRow, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	rows = rows[1:]
	for i, row := range rows {
		if len(row) < minCols {
			return nil, fmt.Errorf("%w: line %d: want at least %d columns, got %d", ErrMalformedRow, i+2, minCols, len(row))
		}
	}

	return rows, nil
}
