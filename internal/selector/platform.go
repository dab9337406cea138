// Package selector picks the release assets that match a target platform.
//
// The package is a pure library: it takes a flat list of asset names,
// normalizes the OS and architecture spellings found in each name onto
// canonical tokens, and returns the subset matching the target platform
// ordered best match first. It performs no I/O, holds no state between
// calls, and is safe for concurrent use.
package selector

import (
	"runtime"

	"github.com/archpick/archpick/internal/types"
)

// Platform describes a target operating system and architecture pair,
// either detected from the running environment or supplied explicitly.
type Platform struct {
	OS   types.OS
	Arch types.Arch
}

// Detect returns the Platform of the current execution environment.
// An OS or architecture outside the recognized kinds maps to unknown
// rather than failing; an unknown platform matches no asset.
func Detect() Platform {
	return Platform{
		OS:   detectOS(runtime.GOOS),
		Arch: detectArch(runtime.GOARCH),
	}
}

func detectOS(goos string) types.OS {
	switch goos {
	case "windows":
		return types.OSWindows
	case "darwin":
		return types.OSMacOS
	case "linux":
		return types.OSLinux
	case "freebsd", "netbsd", "openbsd":
		return types.OSFreeBSD
	default:
		return types.OSUnknown
	}
}

func detectArch(goarch string) types.Arch {
	switch goarch {
	case "amd64":
		return types.ArchX64
	case "arm64":
		return types.ArchArm64
	case "arm":
		return types.ArchArm32
	case "386":
		return types.ArchX86
	default:
		return types.ArchUnknown
	}
}

// IsKnown returns true if both the OS and architecture are recognized kinds.
func (p Platform) IsKnown() bool {
	return p.OS.IsKnown() && p.Arch.IsKnown()
}

// String returns the platform as "os/arch", e.g. "linux/x64".
func (p Platform) String() string {
	return p.OS.String() + "/" + p.Arch.String()
}
