package selector

// Selector selects matching assets for a target platform. The zero value
// is not meant for direct use; construct with NewSelector, which defaults
// to auto-detecting the platform and the built-in vocabulary.
type Selector struct {
	platform    Platform
	hasPlatform bool
	vocab       Vocabulary
}

// NewSelector creates a Selector that detects the running platform on each
// Select call and matches against the default vocabulary.
func NewSelector() *Selector {
	return &Selector{vocab: DefaultVocabulary()}
}

// WithPlatform sets an explicit target platform instead of auto-detection,
// for selecting assets on behalf of a different machine than the host.
func (s *Selector) WithPlatform(p Platform) *Selector {
	s.platform = p
	s.hasPlatform = true
	return s
}

// WithVocabulary replaces the alias vocabulary.
func (s *Selector) WithVocabulary(v Vocabulary) *Selector {
	s.vocab = v
	return s
}

// Select returns the subset of candidates matching the target platform,
// best match first. The platform is resolved once per call. An empty
// result means no compatible asset and is not an error; empty or
// unrecognizable input yields an empty result. Candidates are never
// modified or reordered in place.
func (s *Selector) Select(candidates []string) []string {
	platform := s.platform
	if !s.hasPlatform {
		platform = Detect()
	}
	return Rank(platform, s.vocab, candidates)
}

// Select picks the assets matching the current machine from candidates,
// best match first, using the default vocabulary. Callers take index 0 as
// the asset to download; an empty result means nothing compatible.
func Select(candidates []string) []string {
	return NewSelector().Select(candidates)
}
