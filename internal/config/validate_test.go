package config

import (
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		file    File
		wantErr string
	}{
		{
			name: "valid",
			file: File{
				Version: 1,
				Aliases: Aliases{
					OS:   map[string][]string{"linux": {"alpine"}},
					Arch: map[string][]string{"x64": {"intel64"}},
				},
				AuxSuffixes: []string{".sbom"},
			},
		},
		{
			name: "version unset is valid",
			file: File{},
		},
		{
			name:    "unsupported version",
			file:    File{Version: 2},
			wantErr: "unsupported version 2",
		},
		{
			name: "unknown os key",
			file: File{
				Aliases: Aliases{OS: map[string][]string{"solaris": {"sunos"}}},
			},
			wantErr: "aliases.os.solaris",
		},
		{
			name: "unknown arch key",
			file: File{
				Aliases: Aliases{Arch: map[string][]string{"mips": {"mips64"}}},
			},
			wantErr: "aliases.arch.mips",
		},
		{
			name: "empty spelling",
			file: File{
				Aliases: Aliases{OS: map[string][]string{"linux": {"  "}}},
			},
			wantErr: "spelling must not be empty",
		},
		{
			name:    "aux suffix without dot",
			file:    File{AuxSuffixes: []string{"sbom"}},
			wantErr: "must begin with a dot",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(&tt.file)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() = nil, want error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	f := File{
		Version:     3,
		Aliases:     Aliases{OS: map[string][]string{"solaris": {"sunos"}}},
		AuxSuffixes: []string{"sbom"},
	}

	err := Validate(&f)
	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	for _, want := range []string{"version", "aliases.os.solaris", "aux_suffixes[0]"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Validate() error missing %q: %v", want, err)
		}
	}
}
