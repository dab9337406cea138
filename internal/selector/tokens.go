package selector

import (
	"strings"

	"github.com/archpick/archpick/internal/types"
)

// TokenSet holds the canonical tokens recognized inside one asset name.
type TokenSet struct {
	OS        []types.OS
	Arch      []types.Arch
	Auxiliary bool
}

// HasOS returns true if the set contains the given OS token.
func (ts TokenSet) HasOS(os types.OS) bool {
	for _, o := range ts.OS {
		if o == os {
			return true
		}
	}
	return false
}

// HasArch returns true if the set contains the given architecture token.
func (ts TokenSet) HasArch(arch types.Arch) bool {
	for _, a := range ts.Arch {
		if a == arch {
			return true
		}
	}
	return false
}

// Tokenize returns the TokenSet found in name under the given vocabulary.
//
// Matching is case-insensitive and substring-based, scanning spellings
// longest-first: an occurrence that overlaps one already claimed by a
// longer spelling is dropped, so "x86_64" never also counts as "x86" and
// "arm64" never counts as arm32's "arm". Spellings beginning with a dot
// match only at the end of the name. Unrecognized substrings contribute
// nothing; Tokenize never fails.
func Tokenize(name string, vocab Vocabulary) TokenSet {
	lowered := strings.ToLower(name)

	var ts TokenSet
	var claimed []span

	for _, sp := range vocab.spellings() {
		for _, occ := range occurrences(lowered, sp) {
			if overlapsAny(occ, claimed) {
				continue
			}
			claimed = append(claimed, occ)
			switch sp.kind {
			case kindOS:
				if !ts.HasOS(sp.os) {
					ts.OS = append(ts.OS, sp.os)
				}
			case kindArch:
				if !ts.HasArch(sp.arch) {
					ts.Arch = append(ts.Arch, sp.arch)
				}
			}
		}
	}

	for _, suffix := range vocab.AuxSuffixes {
		if strings.HasSuffix(lowered, strings.ToLower(suffix)) {
			ts.Auxiliary = true
			break
		}
	}

	return ts
}

// span marks a half-open byte range claimed by a matched spelling.
type span struct {
	start, end int
}

// occurrences returns every position at which the spelling matches the
// lowered name. Suffix-only spellings yield at most one occurrence, at the
// end of the name.
func occurrences(lowered string, sp spelling) []span {
	if sp.suffixOnly {
		if strings.HasSuffix(lowered, sp.text) {
			return []span{{start: len(lowered) - len(sp.text), end: len(lowered)}}
		}
		return nil
	}

	var spans []span
	for from := 0; ; {
		i := strings.Index(lowered[from:], sp.text)
		if i < 0 {
			break
		}
		start := from + i
		spans = append(spans, span{start: start, end: start + len(sp.text)})
		from = start + 1
	}
	return spans
}

func overlapsAny(occ span, claimed []span) bool {
	for _, c := range claimed {
		if occ.start < c.end && c.start < occ.end {
			return true
		}
	}
	return false
}
