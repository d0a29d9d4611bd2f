// SPDX-License-Identifier: MIT

// Package lpfile reads linear programs from YAML documents and writes solve
// reports back as YAML.
//
// A problem document:
//
//	name: production plan
//	a:
//	  - [1, 0]
//	  - [0, 2]
//	  - [3, 2]
//	b: [4, 12, 18]
//	c: [3, 5]
//
// encodes maximize cᵀx subject to Ax ≤ b, x ≥ 0. Unknown keys are rejected.
package lpfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlp/simplex"
)

// ErrEmptyProblem is returned for a document with no content.
var ErrEmptyProblem = errors.New("lpfile: empty problem")

// Problem is one LP instance as stored on disk.
type Problem struct {
	Name string      `yaml:"name,omitempty"`
	A    [][]float64 `yaml:"a"`
	B    []float64   `yaml:"b"`
	C    []float64   `yaml:"c"`
}

// Validate applies the solver's structural checks.
func (p Problem) Validate() error {
	if _, err := simplex.ValidateProblem(p.A, p.B, p.C); err != nil {
		return fmt.Errorf("lpfile: problem %q: %w", p.Name, err)
	}

	return nil
}

// Parse decodes and validates a single YAML problem document.
func Parse(data []byte) (Problem, error) {
	var p Problem
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return Problem{}, ErrEmptyProblem
		}
		return Problem{}, fmt.Errorf("lpfile: decode: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Problem{}, err
	}

	return p, nil
}

// Load reads and parses the problem file at path.
func Load(path string) (Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Problem{}, fmt.Errorf("lpfile: read %s: %w", path, err)
	}
	p, err := Parse(data)
	if err != nil {
		return Problem{}, fmt.Errorf("%s: %w", path, err)
	}

	return p, nil
}

// Encode writes p as a YAML document.
func Encode(w io.Writer, p Problem) error {
	return encode(w, p)
}

// Report is the YAML form of a solve result.
// X and Objective are present only for optimal solutions.
type Report struct {
	Name      string    `yaml:"name,omitempty"`
	Method    string    `yaml:"method"`
	Status    string    `yaml:"status"`
	X         []float64 `yaml:"x,omitempty"`
	Objective *float64  `yaml:"objective,omitempty"`
	Pivots    int       `yaml:"pivots"`
}

// NewReport describes sol, produced by method, for problem p.
func NewReport(p Problem, method string, sol simplex.Solution) Report {
	r := Report{
		Name:   p.Name,
		Method: method,
		Status: sol.Status.String(),
		Pivots: sol.Pivots,
	}
	if sol.Status == simplex.Optimal {
		obj := sol.Objective
		r.X = append([]float64(nil), sol.X...)
		r.Objective = &obj
	}

	return r
}

// EncodeReport writes r as a YAML document.
func EncodeReport(w io.Writer, r Report) error {
	return encode(w, r)
}

func encode(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("lpfile: encode: %w", err)
	}

	return enc.Close()
}
