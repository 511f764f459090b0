// Package config loads optional YAML defaults for the blockpack
// command line. Values from the file apply only where the caller did
// not pass an explicit flag.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File holds the settings a defaults file may provide. Zero values
// mean "not set".
type File struct {
	BlockSize int    `yaml:"block_size"`
	Threads   int    `yaml:"threads"`
	Codec     string `yaml:"codec"`
}

func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return &f, nil
}
