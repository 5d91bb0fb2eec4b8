package compress

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strconv"
	"testing"
)

func TestNop(t *testing.T) {
	res, err := Nop{}.Compress(t.TempDir(), []string{"a.png"})
	if err != nil {
		t.Fatal(err)
	}
	if !res.Skipped || len(res.Removed) != 0 {
		t.Errorf("Nop result = %+v, want skipped", res)
	}
}

func TestDetect(t *testing.T) {
	dir := t.TempDir()

	if _, ok := Detect("").(Nop); !ok {
		t.Error("Detect(\"\") should return Nop")
	}
	if _, ok := Detect(filepath.Join(dir, "texconv.exe")).(Nop); !ok {
		t.Error("Detect(missing) should return Nop")
	}
	if _, ok := Detect(dir).(Nop); !ok {
		t.Error("Detect(directory) should return Nop")
	}

	tool := filepath.Join(dir, "texconv.exe")
	if err := os.WriteFile(tool, nil, 0o755); err != nil {
		t.Fatal(err)
	}
	tc, ok := Detect(tool).(Texconv)
	if !ok {
		t.Fatalf("Detect(existing) = %T, want Texconv", Detect(tool))
	}
	if tc.Path != tool {
		t.Errorf("Texconv.Path = %q, want %q", tc.Path, tool)
	}
}

func TestTexconvArgs(t *testing.T) {
	got := Texconv{}.Args("out", []string{"out/a.png", "out/b.png"})
	want := []string{"-f", "BC3_UNORM", "-y", "-o", "out", "out/a.png", "out/b.png"}
	if !slices.Equal(got, want) {
		t.Errorf("Args = %v, want %v", got, want)
	}

	got = Texconv{Format: "BC1_UNORM"}.Args("o", nil)
	if got[1] != "BC1_UNORM" {
		t.Errorf("Args format = %q, want BC1_UNORM", got[1])
	}
}

// fakeTool writes a shell script standing in for texconv.
func fakeTool(t *testing.T, exit int) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake tool is a shell script")
	}
	path := filepath.Join(t.TempDir(), "texconv")
	script := "#!/bin/sh\nexit " + strconv.Itoa(exit) + "\n"
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}
	return path
}

func writePNGs(t *testing.T, dir string, names ...string) []string {
	t.Helper()
	paths := make([]string, len(names))
	for i, n := range names {
		paths[i] = filepath.Join(dir, n)
		if err := os.WriteFile(paths[i], []byte("png"), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	return paths
}

func TestTexconvRemovesInputs(t *testing.T) {
	dir := t.TempDir()
	paths := writePNGs(t, dir, "a.png", "b.png")

	res, err := Texconv{Path: fakeTool(t, 0)}.Compress(dir, paths)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}
	if res.Skipped {
		t.Error("result should not be skipped")
	}
	if !slices.Equal(res.Removed, paths) {
		t.Errorf("Removed = %v, want %v", res.Removed, paths)
	}
	for _, p := range paths {
		if _, err := os.Stat(p); !errors.Is(err, os.ErrNotExist) {
			t.Errorf("%s should be removed", p)
		}
	}
}

func TestTexconvFailureKeepsInputs(t *testing.T) {
	dir := t.TempDir()
	paths := writePNGs(t, dir, "a.png")

	_, err := Texconv{Path: fakeTool(t, 3)}.Compress(dir, paths)
	if !errors.Is(err, ErrToolFailed) {
		t.Fatalf("error = %v, want ErrToolFailed", err)
	}
	if _, err := os.Stat(paths[0]); err != nil {
		t.Errorf("input should survive a failed run: %v", err)
	}
}

func TestTexconvNoInputs(t *testing.T) {
	res, err := Texconv{Path: "/nonexistent/texconv"}.Compress(t.TempDir(), nil)
	if err != nil || !res.Skipped {
		t.Errorf("Compress(nil) = %+v, %v; want skipped", res, err)
	}
}
