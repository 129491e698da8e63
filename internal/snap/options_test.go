package snap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestOptionsSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snap.json")

	opts := DefaultOptions()
	opts.LineSnapRadius = 75
	opts.MaxCornerLines = 6
	opts.SuperSample = 3

	if err := opts.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := LoadOptions(path)
	if err != nil {
		t.Fatalf("LoadOptions: %v", err)
	}
	if diff := cmp.Diff(opts, loaded); diff != "" {
		t.Errorf("roundtrip mismatch (-saved +loaded):\n%s", diff)
	}
}

func TestLoadOptionsMissingFile(t *testing.T) {
	opts, err := LoadOptions(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if diff := cmp.Diff(DefaultOptions(), opts); diff != "" {
		t.Errorf("missing file should fall back to defaults:\n%s", diff)
	}
}

func TestLoadOptionsPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.json")
	if err := os.WriteFile(path, []byte(`{"line_snap_radius": 80}`), 0644); err != nil {
		t.Fatal(err)
	}

	opts, err := LoadOptions(path)
	if err != nil {
		t.Fatalf("LoadOptions: %v", err)
	}
	if opts.LineSnapRadius != 80 {
		t.Errorf("LineSnapRadius = %v, want 80", opts.LineSnapRadius)
	}
	// Fields absent from the file keep their defaults.
	if opts.CornerSnapRadius != DefaultOptions().CornerSnapRadius {
		t.Errorf("CornerSnapRadius = %v, want default %v",
			opts.CornerSnapRadius, DefaultOptions().CornerSnapRadius)
	}
}
