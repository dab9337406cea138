// Package types provides the closed OS and architecture kinds used by the
// asset selector.
//
// These are canonical tokens: every real-world spelling of an operating
// system or CPU architecture normalizes to exactly one of them (see
// internal/selector's vocabulary). The unknown members are legal values,
// not errors; an unknown platform simply matches no asset.
package types

import (
	"fmt"
	"strings"
)

// OS represents a canonical operating system kind.
type OS string

const (
	// OSWindows indicates Windows.
	OSWindows OS = "windows"
	// OSMacOS indicates macOS.
	OSMacOS OS = "macos"
	// OSLinux indicates Linux.
	OSLinux OS = "linux"
	// OSFreeBSD indicates FreeBSD and the other BSDs that share its assets.
	OSFreeBSD OS = "freebsd"
	// OSUnknown indicates an unrecognized operating system.
	OSUnknown OS = "unknown"
)

// AllOSes returns all known OS kinds, excluding OSUnknown.
func AllOSes() []OS {
	return []OS{OSWindows, OSMacOS, OSLinux, OSFreeBSD}
}

// Validate checks if the OS is a valid value.
func (o OS) Validate() error {
	switch o {
	case OSWindows, OSMacOS, OSLinux, OSFreeBSD, OSUnknown:
		return nil
	case "":
		return fmt.Errorf("os is required")
	default:
		return fmt.Errorf("invalid os '%s' (must be one of windows, macos, linux, freebsd, unknown)", o)
	}
}

// String returns the string representation of the OS.
func (o OS) String() string {
	return string(o)
}

// IsKnown returns true if the OS is a recognized kind.
func (o OS) IsKnown() bool {
	return o != OSUnknown && o != ""
}

// ParseOS parses a string into an OS kind. It accepts the canonical names
// plus the spellings users actually type on the command line (darwin, osx,
// win32). Unrecognized input is an error; use OSUnknown explicitly when an
// unknown platform is intended.
func ParseOS(s string) (OS, error) {
	switch strings.ToLower(s) {
	case "windows", "win32", "win64":
		return OSWindows, nil
	case "macos", "darwin", "osx":
		return OSMacOS, nil
	case "linux":
		return OSLinux, nil
	case "freebsd":
		return OSFreeBSD, nil
	case "unknown":
		return OSUnknown, nil
	case "":
		return "", fmt.Errorf("os is required")
	default:
		return "", fmt.Errorf("invalid os '%s' (must be one of windows, macos, linux, freebsd, unknown)", s)
	}
}

// Arch represents a canonical CPU architecture kind.
type Arch string

const (
	// ArchX64 indicates 64-bit x86 (amd64 / x86_64).
	ArchX64 Arch = "x64"
	// ArchArm64 indicates 64-bit ARM (aarch64).
	ArchArm64 Arch = "arm64"
	// ArchArm32 indicates 32-bit hard-float ARM (armhf / armv7).
	ArchArm32 Arch = "arm32"
	// ArchX86 indicates 32-bit x86 (i386 / i686).
	ArchX86 Arch = "x86"
	// ArchUnknown indicates an unrecognized architecture.
	ArchUnknown Arch = "unknown"
)

// AllArches returns all known architecture kinds, excluding ArchUnknown.
func AllArches() []Arch {
	return []Arch{ArchX64, ArchArm64, ArchArm32, ArchX86}
}

// Validate checks if the Arch is a valid value.
func (a Arch) Validate() error {
	switch a {
	case ArchX64, ArchArm64, ArchArm32, ArchX86, ArchUnknown:
		return nil
	case "":
		return fmt.Errorf("arch is required")
	default:
		return fmt.Errorf("invalid arch '%s' (must be one of x64, arm64, arm32, x86, unknown)", a)
	}
}

// String returns the string representation of the Arch.
func (a Arch) String() string {
	return string(a)
}

// IsKnown returns true if the Arch is a recognized kind.
func (a Arch) IsKnown() bool {
	return a != ArchUnknown && a != ""
}

// ParseArch parses a string into an Arch kind. It accepts the canonical
// names plus the common alternate spellings (amd64, x86_64, aarch64, armhf).
func ParseArch(s string) (Arch, error) {
	switch strings.ToLower(s) {
	case "x64", "amd64", "x86_64", "x86-64":
		return ArchX64, nil
	case "arm64", "aarch64":
		return ArchArm64, nil
	case "arm32", "arm", "armhf", "armv7":
		return ArchArm32, nil
	case "x86", "i386", "i686", "386":
		return ArchX86, nil
	case "unknown":
		return ArchUnknown, nil
	case "":
		return "", fmt.Errorf("arch is required")
	default:
		return "", fmt.Errorf("invalid arch '%s' (must be one of x64, arm64, arm32, x86, unknown)", s)
	}
}
