// Package config holds the data file location.
package config

import (
	"os"
	"path/filepath"
)

const (
	// AppName is the application name.
	AppName = "todo"

	// DataFile is the default task data filename.
	DataFile = "tasks.yaml"
)

// Config holds configuration paths.
type Config struct {
	// Dir is the directory holding the data file.
	Dir string

	// DataFile is the task data filename within Dir.
	DataFile string
}

// New creates a new Config with the default or specified data directory.
// If dir is empty, the process working directory is used.
func New(dir string) *Config {
	if dir == "" {
		dir = DefaultDir()
	}
	return &Config{Dir: dir, DataFile: DataFile}
}

// DefaultDir returns the process working directory.
func DefaultDir() string {
	wd, err := os.Getwd()
	if err != nil {
		// Relative paths still resolve against the working directory
		return "."
	}
	return wd
}

// DataPath returns the path to the task data file.
func (c *Config) DataPath() string {
	name := c.DataFile
	if name == "" {
		name = DataFile
	}
	return filepath.Join(c.Dir, name)
}
