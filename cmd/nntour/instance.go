package main

import (
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/nntour/matrix"
)

// Instance is the on-disk description of a problem.
type Instance struct {
	Name   string      `yaml:"name"`
	Start  *int        `yaml:"start,omitempty"`
	Matrix [][]float64 `yaml:"matrix"`
}

// ReadInstance decodes a YAML instance from in.
func ReadInstance(in io.Reader) (*Instance, error) {
	inst := new(Instance)
	if err := yaml.NewDecoder(in).Decode(inst); err != nil {
		return nil, errors.Wrap(err, "decoding instance")
	}
	return inst, nil
}

// Dense converts the instance table into a square matrix.
func (i *Instance) Dense() (*matrix.Dense, error) {
	m, err := matrix.NewDenseFromRows(i.Matrix)
	if err != nil {
		return nil, errors.WithMessagef(err, "instance %q", i.Name)
	}
	if m.Rows() != m.Cols() {
		return nil, errors.WithMessagef(matrix.ErrBadShape, "instance %q: %dx%d matrix is not square", i.Name, m.Rows(), m.Cols())
	}
	return m, nil
}

// Report is what the command prints for a solved instance.
type Report struct {
	Name   string  `yaml:"name,omitempty"`
	Start  int     `yaml:"start"`
	Closed bool    `yaml:"closed"`
	Tour   []int   `yaml:"tour,flow"`
	Cost   float64 `yaml:"cost"`
}
