// Package config handles vocabulary file parsing and location resolution.
//
// A vocabulary file extends the built-in alias table with extra OS and
// architecture spellings and auxiliary suffixes observed in the wild. It
// never shrinks the built-ins: merging is additive only.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/archpick/archpick/internal/selector"
	"github.com/archpick/archpick/internal/types"
)

// DefaultFileName is the vocabulary file looked for in the working
// directory and under the user config directory.
const DefaultFileName = "archpick.toml"

// EnvVar names the environment variable overriding the file location.
const EnvVar = "ARCHPICK_CONFIG"

// File represents a parsed vocabulary file.
type File struct {
	Version     int      `yaml:"version" toml:"version" json:"version"`
	Aliases     Aliases  `yaml:"aliases,omitempty" toml:"aliases,omitempty" json:"aliases,omitempty"`
	AuxSuffixes []string `yaml:"aux_suffixes,omitempty" toml:"aux_suffixes,omitempty" json:"aux_suffixes,omitempty"`
}

// Aliases holds extra spellings keyed by canonical kind name.
type Aliases struct {
	OS   map[string][]string `yaml:"os,omitempty" toml:"os,omitempty" json:"os,omitempty"`
	Arch map[string][]string `yaml:"arch,omitempty" toml:"arch,omitempty" json:"arch,omitempty"`
}

// Vocabulary merges the file's extra spellings onto the built-in
// vocabulary. Validate must have passed; unparseable keys are skipped.
func (f *File) Vocabulary() selector.Vocabulary {
	extra := selector.Vocabulary{
		OS:          make(map[types.OS][]string),
		Arch:        make(map[types.Arch][]string),
		AuxSuffixes: f.AuxSuffixes,
	}

	for key, spellings := range f.Aliases.OS {
		os, err := types.ParseOS(key)
		if err != nil {
			continue
		}
		extra.OS[os] = append(extra.OS[os], spellings...)
	}
	for key, spellings := range f.Aliases.Arch {
		arch, err := types.ParseArch(key)
		if err != nil {
			continue
		}
		extra.Arch[arch] = append(extra.Arch[arch], spellings...)
	}

	return selector.DefaultVocabulary().Merge(extra)
}

// Find searches for a vocabulary file in the standard locations.
// Search order:
//  1. explicit path (from --config)
//  2. $ARCHPICK_CONFIG
//  3. ./archpick.toml
//  4. $XDG_CONFIG_HOME/archpick/archpick.toml (or ~/.config/...)
//
// Returns empty string with nil error when no file exists anywhere; the
// built-in vocabulary is used then.
func Find(explicitPath string) (string, error) {
	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err != nil {
			return "", fmt.Errorf("config file not found: %s", explicitPath)
		}
		return explicitPath, nil
	}

	if envPath := os.Getenv(EnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err != nil {
			return "", fmt.Errorf("config file from %s not found: %s", EnvVar, envPath)
		}
		return envPath, nil
	}

	if _, err := os.Stat(DefaultFileName); err == nil {
		return DefaultFileName, nil
	}

	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			configDir = filepath.Join(home, ".config")
		}
	}
	if configDir != "" {
		path := filepath.Join(configDir, "archpick", DefaultFileName)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", nil
}

// Load finds, parses, and validates a vocabulary file. A missing file is
// not an error: it returns (nil, nil) and callers fall back to the
// built-in vocabulary.
func Load(explicitPath string) (*File, error) {
	path, err := Find(explicitPath)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return nil, nil
	}

	f, err := Parse(path)
	if err != nil {
		return nil, err
	}
	if err := Validate(f); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}
