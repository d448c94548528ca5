package main

import (
	"path/filepath"
)

// Input contains the input for the root command
type Input struct {
	workdir      string
	instancePath string
	start        int
	open         bool
	output       string
	verbose      bool
}

func (i *Input) resolve(path string) string {
	if path == "" || path == "-" || filepath.IsAbs(path) {
		return path
	}
	basedir, err := filepath.Abs(i.workdir)
	if err != nil {
		return path
	}
	return filepath.Join(basedir, path)
}

// InstancePath returns the path to the instance file, or "-" for stdin
func (i *Input) InstancePath() string {
	if i.instancePath == "" {
		return "-"
	}
	return i.resolve(i.instancePath)
}
