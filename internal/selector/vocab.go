package selector

import (
	"sort"
	"strings"

	"github.com/archpick/archpick/internal/types"
)

// Vocabulary is the alias table mapping canonical OS and architecture kinds
// to the spellings that identify them inside asset names, plus the suffixes
// that mark an asset as auxiliary (debug symbols, checksums, signatures).
//
// The table is data, not code: callers extend it (via Merge) as new
// asset-naming conventions show up, without touching the matching logic.
// A spelling that begins with a dot matches only at the end of the name.
type Vocabulary struct {
	OS          map[types.OS][]string
	Arch        map[types.Arch][]string
	AuxSuffixes []string
}

// DefaultVocabulary returns the built-in alias table.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		OS: map[types.OS][]string{
			types.OSWindows: {"windows", "win32", "win64", ".exe", ".msi"},
			types.OSMacOS:   {"darwin", "macos", "osx"},
			types.OSLinux:   {"linux", "unix"},
			types.OSFreeBSD: {"freebsd", "netbsd", "openbsd"},
		},
		Arch: map[types.Arch][]string{
			types.ArchX64:   {"x64", "x86_64", "x86-64", "amd64"},
			types.ArchArm64: {"arm64", "aarch64", "armv8"},
			types.ArchArm32: {"armhf", "armv7l", "armv7", "arm"},
			types.ArchX86:   {"x86", "i386", "i686"},
		},
		AuxSuffixes: []string{
			".debug", ".dwarf", ".pdb",
			".sha256", ".sha512", ".sha1", ".sha", ".md5", ".checksum",
			".asc", ".sig",
			".txt", ".sbom",
		},
	}
}

// Merge returns a new Vocabulary with extra's spellings appended to v's.
// Built-in spellings are never removed and duplicates are dropped
// case-insensitively; neither receiver nor argument is modified.
func (v Vocabulary) Merge(extra Vocabulary) Vocabulary {
	merged := Vocabulary{
		OS:          make(map[types.OS][]string, len(v.OS)),
		Arch:        make(map[types.Arch][]string, len(v.Arch)),
		AuxSuffixes: appendUnique(nil, v.AuxSuffixes),
	}

	for os, spellings := range v.OS {
		merged.OS[os] = appendUnique(nil, spellings)
	}
	for arch, spellings := range v.Arch {
		merged.Arch[arch] = appendUnique(nil, spellings)
	}

	for os, spellings := range extra.OS {
		merged.OS[os] = appendUnique(merged.OS[os], spellings)
	}
	for arch, spellings := range extra.Arch {
		merged.Arch[arch] = appendUnique(merged.Arch[arch], spellings)
	}
	merged.AuxSuffixes = appendUnique(merged.AuxSuffixes, extra.AuxSuffixes)

	return merged
}

// appendUnique appends the lowercased spellings to dst, skipping ones
// already present.
func appendUnique(dst []string, spellings []string) []string {
	for _, s := range spellings {
		s = strings.ToLower(s)
		seen := false
		for _, existing := range dst {
			if existing == s {
				seen = true
				break
			}
		}
		if !seen {
			dst = append(dst, s)
		}
	}
	return dst
}

// tokenKind distinguishes OS spellings from architecture spellings in the
// compiled scan list.
type tokenKind int

const (
	kindOS tokenKind = iota
	kindArch
)

// spelling is one vocabulary entry prepared for scanning.
type spelling struct {
	text       string
	kind       tokenKind
	os         types.OS
	arch       types.Arch
	suffixOnly bool
}

// spellings flattens the vocabulary into a deterministic scan order:
// longest spelling first, so that overlapping aliases resolve to the more
// specific token (x86_64 wins over x86, arm64 masks arm).
func (v Vocabulary) spellings() []spelling {
	var out []spelling
	for _, os := range types.AllOSes() {
		for _, text := range v.OS[os] {
			out = append(out, spelling{
				text:       strings.ToLower(text),
				kind:       kindOS,
				os:         os,
				suffixOnly: strings.HasPrefix(text, "."),
			})
		}
	}
	for _, arch := range types.AllArches() {
		for _, text := range v.Arch[arch] {
			out = append(out, spelling{
				text:       strings.ToLower(text),
				kind:       kindArch,
				arch:       arch,
				suffixOnly: strings.HasPrefix(text, "."),
			})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if len(out[i].text) != len(out[j].text) {
			return len(out[i].text) > len(out[j].text)
		}
		return out[i].text < out[j].text
	})

	return out
}
