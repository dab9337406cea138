package selector

import "sort"

// scoredCandidate pairs an asset name with the ranking signals derived from
// its TokenSet. It exists only during ranking.
type scoredCandidate struct {
	name      string
	auxiliary bool
}

// Rank returns the candidates matching the platform under the vocabulary,
// ordered best match first.
//
// A candidate matches only if its TokenSet contains both the platform's OS
// token and its architecture token; an OS-only match across architectures
// is worse than no match at all, so such candidates are excluded entirely.
// Among matches, primary artifacts order before auxiliary ones (the binary
// before its debug symbols), then shorter names, then lexicographic on the
// original name. The comparator is a total order, so the result is fully
// deterministic regardless of input order. The input slice is never
// modified; the returned slice references the same strings.
func Rank(platform Platform, vocab Vocabulary, candidates []string) []string {
	if !platform.IsKnown() {
		return nil
	}

	var matches []scoredCandidate
	for _, name := range candidates {
		ts := Tokenize(name, vocab)
		if !ts.HasOS(platform.OS) || !ts.HasArch(platform.Arch) {
			continue
		}
		matches = append(matches, scoredCandidate{name: name, auxiliary: ts.Auxiliary})
	}
	if len(matches) == 0 {
		return nil
	}

	sort.Slice(matches, func(i, j int) bool {
		return lessCandidate(matches[i], matches[j])
	})

	ranked := make([]string, 0, len(matches))
	for _, m := range matches {
		ranked = append(ranked, m.name)
	}
	return ranked
}

// lessCandidate is the explicit ranking comparator:
// primary before auxiliary, then shorter name, then lexicographic.
func lessCandidate(a, b scoredCandidate) bool {
	if a.auxiliary != b.auxiliary {
		return !a.auxiliary
	}
	if len(a.name) != len(b.name) {
		return len(a.name) < len(b.name)
	}
	return a.name < b.name
}
