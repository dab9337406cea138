package selector

import (
	"reflect"
	"sync"
	"testing"

	"github.com/archpick/archpick/internal/types"
)

func TestSelectorWithPlatform(t *testing.T) {
	s := NewSelector().WithPlatform(Platform{OS: types.OSMacOS, Arch: types.ArchArm64})

	got := s.Select(typstyleAssets)
	want := []string{"typstyle-darwin-arm64", "typstyle-darwin-arm64.dwarf"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Select() = %v, want %v", got, want)
	}
}

func TestSelectorIdempotent(t *testing.T) {
	s := NewSelector().WithPlatform(Platform{OS: types.OSLinux, Arch: types.ArchX64})

	first := s.Select(typstyleAssets)
	second := s.Select(typstyleAssets)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated Select differs: %v vs %v", first, second)
	}
}

func TestSelectorEmptyInput(t *testing.T) {
	s := NewSelector().WithPlatform(Platform{OS: types.OSLinux, Arch: types.ArchX64})

	if got := s.Select(nil); got != nil {
		t.Errorf("Select(nil) = %v, want nil", got)
	}
	if got := s.Select([]string{}); got != nil {
		t.Errorf("Select(empty) = %v, want nil", got)
	}
}

func TestSelectorNoMatchIsNotAnError(t *testing.T) {
	s := NewSelector().WithPlatform(Platform{OS: types.OSWindows, Arch: types.ArchX64})

	got := s.Select([]string{"app-linux-x64"})
	if len(got) != 0 {
		t.Errorf("Select() = %v, want empty", got)
	}
}

func TestSelectorUnknownPlatform(t *testing.T) {
	s := NewSelector().WithPlatform(Platform{OS: types.OSUnknown, Arch: types.ArchUnknown})

	if got := s.Select(typstyleAssets); len(got) != 0 {
		t.Errorf("Select() under unknown platform = %v, want empty", got)
	}
}

func TestSelectorWithVocabulary(t *testing.T) {
	vocab := DefaultVocabulary().Merge(Vocabulary{
		OS: map[types.OS][]string{types.OSLinux: {"alpine"}},
	})
	s := NewSelector().
		WithPlatform(Platform{OS: types.OSLinux, Arch: types.ArchX64}).
		WithVocabulary(vocab)

	got := s.Select([]string{"typstyle-alpine-x64", "typstyle-alpine-x64.debug"})
	want := []string{"typstyle-alpine-x64", "typstyle-alpine-x64.debug"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Select() = %v, want %v", got, want)
	}
}

func TestSelectAutoDetect(t *testing.T) {
	// Build a candidate list guaranteed to contain the host platform.
	p := Detect()
	if !p.IsKnown() {
		t.Skip("host platform not recognized")
	}

	candidates := []string{
		"app-" + p.OS.String() + "-" + p.Arch.String(),
		"app-nothing-recognizable",
	}

	got := Select(candidates)
	if len(got) != 1 || got[0] != candidates[0] {
		t.Errorf("Select() = %v, want [%s]", got, candidates[0])
	}
}

func TestSelectorConcurrentUse(t *testing.T) {
	s := NewSelector().WithPlatform(Platform{OS: types.OSLinux, Arch: types.ArchX64})
	want := s.Select(typstyleAssets)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				got := s.Select(typstyleAssets)
				if !reflect.DeepEqual(got, want) {
					t.Errorf("concurrent Select() = %v, want %v", got, want)
					return
				}
			}
		}()
	}
	wg.Wait()
}
