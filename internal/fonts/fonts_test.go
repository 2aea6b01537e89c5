package fonts_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/iburimskiy/circle-playground/internal/fonts"
	"github.com/iburimskiy/circle-playground/internal/test"
)

func TestLoadMissing(t *testing.T) {
	_, err := fonts.Load(filepath.Join(t.TempDir(), "missing.ttf"))
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, errors.Is(err, fs.ErrNotExist), true)
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.ttf")
	if err := os.WriteFile(path, []byte("definitely not a font"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := fonts.Load(path)
	test.ExpectFailure(t, err)

	empty := filepath.Join(t.TempDir(), "empty.ttf")
	if err := os.WriteFile(empty, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	_, err = fonts.Load(empty)
	test.ExpectEquality(t, errors.Is(err, fonts.ErrEmptyFont), true)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "go.ttf")
	if err := os.WriteFile(path, fonts.Embedded().Data, 0o644); err != nil {
		t.Fatal(err)
	}
	src, err := fonts.Load(path)
	test.DemandEquality(t, err, nil)
	test.ExpectEquality(t, src.Path, path)
	test.ExpectEquality(t, len(src.Data), len(fonts.Embedded().Data))
}

func TestLoadDefault(t *testing.T) {
	// whatever is found on this machine must be usable
	src, err := fonts.Load("")
	test.DemandEquality(t, err, nil)
	test.ExpectSuccess(t, fonts.Validate(src.Data))
}

func TestEmbedded(t *testing.T) {
	src := fonts.Embedded()
	test.ExpectEquality(t, src.Path, "")
	test.ExpectSuccess(t, fonts.Validate(src.Data))
}
