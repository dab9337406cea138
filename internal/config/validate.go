package config

import (
	"fmt"
	"strings"

	"github.com/archpick/archpick/internal/types"
)

// ValidationError represents a vocabulary file validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks the vocabulary file for valid kinds and spellings.
func Validate(f *File) error {
	var errs []string

	if f.Version != 0 && f.Version != 1 {
		errs = append(errs, ValidationError{
			Field:   "version",
			Message: fmt.Sprintf("unsupported version %d (expected 1)", f.Version),
		}.Error())
	}

	for key, spellings := range f.Aliases.OS {
		if _, err := types.ParseOS(key); err != nil {
			errs = append(errs, ValidationError{
				Field:   "aliases.os." + key,
				Message: err.Error(),
			}.Error())
		}
		for i, s := range spellings {
			if strings.TrimSpace(s) == "" {
				errs = append(errs, ValidationError{
					Field:   fmt.Sprintf("aliases.os.%s[%d]", key, i),
					Message: "spelling must not be empty",
				}.Error())
			}
		}
	}

	for key, spellings := range f.Aliases.Arch {
		if _, err := types.ParseArch(key); err != nil {
			errs = append(errs, ValidationError{
				Field:   "aliases.arch." + key,
				Message: err.Error(),
			}.Error())
		}
		for i, s := range spellings {
			if strings.TrimSpace(s) == "" {
				errs = append(errs, ValidationError{
					Field:   fmt.Sprintf("aliases.arch.%s[%d]", key, i),
					Message: "spelling must not be empty",
				}.Error())
			}
		}
	}

	for i, s := range f.AuxSuffixes {
		if !strings.HasPrefix(s, ".") {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("aux_suffixes[%d]", i),
				Message: fmt.Sprintf("suffix '%s' must begin with a dot", s),
			}.Error())
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
