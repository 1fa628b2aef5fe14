package lintfmt

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDisplayPath(t *testing.T) {
	tmp := t.TempDir()
	base := filepath.Join(tmp, "base")
	if err := os.MkdirAll(base, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	inside := filepath.Join(base, "nested", "file.ts")
	outside := filepath.Join(tmp, "other", "file.ts")
	long := "/very/long/absolute/path/to/some/nested/directory/file.ts"

	tests := []struct {
		name string
		path string
		mode PathMode
		want string
	}{
		{"as-is", "src/a.ts", PathModeAsIs, "src/a.ts"},
		{"basename", inside, PathModeBasename, "file.ts"},
		{"relative inside", inside, PathModeRelative, "nested/file.ts"},
		{"relative outside climbs up", outside, PathModeRelative, "../other/file.ts"},
		{"absolute resolves against base", "src/a.ts", PathModeAbsolute, filepath.ToSlash(filepath.Join(base, "src", "a.ts"))},
		{"auto short", "a.ts", PathModeAuto, "a.ts"},
		{"auto long absolute", long, PathModeAuto, "file.ts"},
		{"empty", "", PathModeBasename, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DisplayPath(tt.path, tt.mode, base); got != tt.want {
				t.Errorf("DisplayPath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestDisplayPathRelativeDefaultsToWorkingDir(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	sibling := filepath.Join(filepath.Dir(wd), "sibling", "x.ts")
	if got := DisplayPath(sibling, PathModeRelative, ""); got != "../sibling/x.ts" {
		t.Errorf("DisplayPath(%q) = %q, want %q", sibling, got, "../sibling/x.ts")
	}
	if got := DisplayPath("a/b.ts", PathModeRelative, ""); got != "a/b.ts" {
		t.Errorf("relative input = %q, want unchanged", got)
	}
}

func TestParsePathMode(t *testing.T) {
	for in, want := range map[string]PathMode{
		"":         PathModeAsIs,
		"absolute": PathModeAbsolute,
		"Relative": PathModeRelative,
		"basename": PathModeBasename,
		"auto":     PathModeAuto,
	} {
		got, err := ParsePathMode(in)
		if err != nil || got != want {
			t.Errorf("ParsePathMode(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParsePathMode("short"); err == nil {
		t.Error("expected error")
	}
}
