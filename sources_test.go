package scrmerge_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/magictale/scrmerge"
)

func TestEcho(t *testing.T) {
	t.Parallel()
	want := "Hello, world."
	got, err := scrmerge.Echo(want).String()
	if err != nil {
		t.Fatal(err)
	}
	if want != got {
		t.Error(cmp.Diff(want, got))
	}
}

func TestListFilesListsOnlyFilesInNameOrder(t *testing.T) {
	t.Parallel()
	want := []string{
		filepath.Join("testdata", "screens", "B.SCR"),
		filepath.Join("testdata", "screens", "a.scr"),
		filepath.Join("testdata", "screens", "b.scr"),
		filepath.Join("testdata", "screens", "c.txt"),
	}
	got, err := scrmerge.ListFiles("testdata/screens").Slice()
	if err != nil {
		t.Fatal(err)
	}
	if !cmp.Equal(want, got) {
		t.Error(cmp.Diff(want, got))
	}
}

func TestListFilesOrderDoesNotDependOnCreationOrder(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	for _, name := range []string{"zz.scr", "mm.scr", "aa.scr"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	want := []string{
		filepath.Join(dir, "aa.scr"),
		filepath.Join(dir, "mm.scr"),
		filepath.Join(dir, "zz.scr"),
	}
	got, err := scrmerge.ListFiles(dir).Slice()
	if err != nil {
		t.Fatal(err)
	}
	if !cmp.Equal(want, got) {
		t.Error(cmp.Diff(want, got))
	}
}

func TestListFilesOfEmptyDirectoryIsEmpty(t *testing.T) {
	t.Parallel()
	got, err := scrmerge.ListFiles(t.TempDir()).String()
	if err != nil {
		t.Fatal(err)
	}
	if got != "" {
		t.Errorf("want empty listing, got %q", got)
	}
}

func TestListFilesErrorsOnNonexistentDirectory(t *testing.T) {
	t.Parallel()
	p := scrmerge.ListFiles("testdata/doesntexist")
	if p.Error() == nil {
		t.Error("want error listing nonexistent directory, got nil")
	}
}

func TestListFilesErrorsOnRegularFile(t *testing.T) {
	t.Parallel()
	p := scrmerge.ListFiles("testdata/hello.txt")
	if p.Error() == nil {
		t.Error("want error listing a regular file, got nil")
	}
}

func TestSliceProducesOneLinePerElement(t *testing.T) {
	t.Parallel()
	want := "1\n2\n3\n"
	got, err := scrmerge.Slice([]string{"1", "2", "3"}).String()
	if err != nil {
		t.Fatal(err)
	}
	if want != got {
		t.Error(cmp.Diff(want, got))
	}
}

func TestSliceOfNothingIsEmpty(t *testing.T) {
	t.Parallel()
	got, err := scrmerge.Slice(nil).String()
	if err != nil {
		t.Fatal(err)
	}
	if got != "" {
		t.Errorf("want empty pipe, got %q", got)
	}
}
