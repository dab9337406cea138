package cmd

import (
	"fmt"

	"github.com/archpick/archpick/internal/config"
	"github.com/archpick/archpick/internal/selector"
	"github.com/archpick/archpick/internal/types"
)

// loadVocabulary returns the effective vocabulary: the built-in table
// merged with the config file, when one is found.
func loadVocabulary(explicitPath string) (selector.Vocabulary, error) {
	f, err := config.Load(explicitPath)
	if err != nil {
		return selector.Vocabulary{}, err
	}
	if f == nil {
		return selector.DefaultVocabulary(), nil
	}
	return f.Vocabulary(), nil
}

// resolvePlatform builds the target platform from the --os/--arch flags,
// falling back to detection for whichever flag is unset.
func resolvePlatform(osFlag, archFlag string) (selector.Platform, error) {
	platform := selector.Detect()

	if osFlag != "" {
		os, err := types.ParseOS(osFlag)
		if err != nil {
			return selector.Platform{}, fmt.Errorf("--os: %w", err)
		}
		platform.OS = os
	}
	if archFlag != "" {
		arch, err := types.ParseArch(archFlag)
		if err != nil {
			return selector.Platform{}, fmt.Errorf("--arch: %w", err)
		}
		platform.Arch = arch
	}

	return platform, nil
}
