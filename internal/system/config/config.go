// Released under an MIT license. See LICENSE.

// Package config loads grass's optional configuration file.
//
// The file is YAML. Every key is optional:
//
//	force: true        # Write <lambda> when a non-character is output.
//	language: grass    # Default language: grass or hq9+.
//	prompt: "grass> "  # Interactive prompt.
//	history: ~/.grass_history
package config

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Languages.
const (
	Grass = "grass"
	HQ9   = "hq9+"
)

// T (config) holds grass's settings.
type T struct {
	Force    bool   `yaml:"force"`
	History  string `yaml:"history"`
	Language string `yaml:"language"`
	Prompt   string `yaml:"prompt"`
}

type config = T

// Default returns the settings used when there is no configuration file.
func Default() *config {
	return &config{
		History:  filepath.Join(home(), ".grass_history"),
		Language: Grass,
		Prompt:   "grass> ",
	}
}

// Load reads the configuration file named by $GRASS_CONFIG or, if that is
// not set, $HOME/.grass.yaml. A missing file is not an error.
func Load() (*config, error) {
	path := os.Getenv("GRASS_CONFIG")
	if path == "" {
		path = filepath.Join(home(), ".grass.yaml")
	}

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	} else if err != nil {
		return nil, err
	}

	defer f.Close()

	return Read(f)
}

// Read reads settings from r. Settings not present keep their default values.
func Read(r io.Reader) (*config, error) {
	c := Default()

	err := yaml.NewDecoder(r).Decode(c)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	c.History = expand(c.History)

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate returns an error if the settings in c are not usable.
func (c *config) Validate() error {
	switch c.Language {
	case Grass, HQ9:
		return nil
	}

	return errors.New("unknown language: " + c.Language)
}

func expand(path string) string {
	if path == "~" {
		return home()
	}

	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home(), path[2:])
	}

	return path
}

func home() string {
	return os.Getenv("HOME")
}
