package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Replacements describes which placeholders of which application and
// environment are resolved against the parameter store. It is loaded once at
// startup and passed by value to every step.
type Replacements struct {
	Application  string   `yaml:"application" toml:"application" validate:"required,excludesall=/"`
	Environment  string   `yaml:"environment" toml:"environment" validate:"required,excludesall=/"`
	Placeholders []string `yaml:"placeholders" toml:"placeholders" validate:"dive,required,excludesall=/"`
}

// LoadReplacements reads the descriptor at filePath. Files ending in .toml are
// decoded as TOML, everything else as YAML.
func LoadReplacements(filePath string) (Replacements, error) {
	var r Replacements

	content, err := os.ReadFile(filePath)
	if err != nil {
		return r, errors.Wrapf(err, "reading replacements file %s", filePath)
	}

	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".toml":
		if _, err := toml.NewDecoder(bytes.NewReader(content)).Decode(&r); err != nil {
			return r, errors.Wrapf(err, "decoding replacements from %s", filePath)
		}
	default:
		if err := yaml.Unmarshal(content, &r); err != nil {
			return r, errors.Wrapf(err, "decoding replacements from %s", filePath)
		}
	}

	if err := r.Validate(); err != nil {
		return r, errors.Wrapf(err, "invalid replacements in %s", filePath)
	}

	return r, nil
}

// Validate checks that every path component is present and contains no
// separator.
func (r Replacements) Validate() error {
	return validator.New().Struct(r)
}
