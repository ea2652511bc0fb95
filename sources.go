package scrmerge

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

var errNewlineInName = errors.New("file name contains a newline")

// Echo returns a pipe containing the supplied string.
func Echo(s string) *Pipe {
	return NewPipe().WithReader(strings.NewReader(s))
}

// ListFiles returns a pipe containing the files in the directory dir, one per
// line, sorted by name. Each line is the file's name joined to dir.
// Subdirectories are neither listed nor descended into. If dir cannot be read,
// the pipe's error status is set.
//
// A file name containing a newline cannot be carried as a single line, so it
// sets the pipe's error status instead of being split into two bogus paths.
func ListFiles(dir string) *Pipe {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return NewPipe().WithError(err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		path := filepath.Join(dir, e.Name())
		if strings.ContainsRune(e.Name(), '\n') {
			return NewPipe().WithError(&fs.PathError{Op: "list", Path: path, Err: errNewlineInName})
		}
		paths = append(paths, path)
	}
	return Slice(paths)
}

// Slice returns a pipe containing each element of the supplied slice of
// strings, one per line.
func Slice(s []string) *Pipe {
	if len(s) == 0 {
		return NewPipe()
	}
	return Echo(strings.Join(s, "\n") + "\n")
}
