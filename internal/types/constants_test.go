package types

import "testing"

func TestParseOS(t *testing.T) {
	tests := []struct {
		input   string
		want    OS
		wantErr bool
	}{
		{"windows", OSWindows, false},
		{"WIN32", OSWindows, false},
		{"win64", OSWindows, false},
		{"darwin", OSMacOS, false},
		{"macos", OSMacOS, false},
		{"osx", OSMacOS, false},
		{"Linux", OSLinux, false},
		{"freebsd", OSFreeBSD, false},
		{"unknown", OSUnknown, false},
		{"", "", true},
		{"plan9", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseOS(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseOS(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseOS(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseArch(t *testing.T) {
	tests := []struct {
		input   string
		want    Arch
		wantErr bool
	}{
		{"x64", ArchX64, false},
		{"amd64", ArchX64, false},
		{"X86_64", ArchX64, false},
		{"arm64", ArchArm64, false},
		{"aarch64", ArchArm64, false},
		{"armhf", ArchArm32, false},
		{"armv7", ArchArm32, false},
		{"i686", ArchX86, false},
		{"386", ArchX86, false},
		{"unknown", ArchUnknown, false},
		{"", "", true},
		{"riscv64", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseArch(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseArch(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseArch(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestOSValidate(t *testing.T) {
	for _, o := range AllOSes() {
		if err := o.Validate(); err != nil {
			t.Errorf("Validate(%s) = %v, want nil", o, err)
		}
		if !o.IsKnown() {
			t.Errorf("IsKnown(%s) = false, want true", o)
		}
	}

	if err := OSUnknown.Validate(); err != nil {
		t.Errorf("Validate(unknown) = %v, want nil", err)
	}
	if OSUnknown.IsKnown() {
		t.Error("IsKnown(unknown) = true, want false")
	}
	if err := OS("solaris").Validate(); err == nil {
		t.Error("Validate(solaris) = nil, want error")
	}
	if err := OS("").Validate(); err == nil {
		t.Error("Validate(empty) = nil, want error")
	}
}

func TestArchValidate(t *testing.T) {
	for _, a := range AllArches() {
		if err := a.Validate(); err != nil {
			t.Errorf("Validate(%s) = %v, want nil", a, err)
		}
		if !a.IsKnown() {
			t.Errorf("IsKnown(%s) = false, want true", a)
		}
	}

	if err := ArchUnknown.Validate(); err != nil {
		t.Errorf("Validate(unknown) = %v, want nil", err)
	}
	if ArchUnknown.IsKnown() {
		t.Error("IsKnown(unknown) = true, want false")
	}
	if err := Arch("mips64").Validate(); err == nil {
		t.Error("Validate(mips64) = nil, want error")
	}
}
