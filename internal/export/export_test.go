package export

import (
	"os"
	"path/filepath"
	"testing"

	form3 "github.com/soypat/sdf/form3/must3"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestPartWritesFilePair(t *testing.T) {
	// dir does not exist yet; Part must create it.
	dir := filepath.Join(t.TempDir(), "build")
	s := form3.Box(r3.Vec{X: 3, Y: 2, Z: 1}, 0)
	model, err := Part(dir, "test_block", s, 20)
	if err != nil {
		t.Fatal(err)
	}
	if len(model) == 0 {
		t.Error("no triangles returned")
	}
	for _, name := range []string{"test_block.stl", "test_block.3mf"} {
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", name)
		}
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Errorf("found %d files in output dir, want exactly 2", len(entries))
	}
}

func TestPartIdempotentDir(t *testing.T) {
	dir := t.TempDir()
	s := form3.Box(r3.Vec{X: 1, Y: 1, Z: 1}, 0)
	if _, err := Part(dir, "a", s, 10); err != nil {
		t.Fatal(err)
	}
	// Second export into the same directory must not fail.
	if _, err := Part(dir, "a", s, 10); err != nil {
		t.Fatal(err)
	}
}
