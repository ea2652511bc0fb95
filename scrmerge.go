// Package scrmerge packs ZX Spectrum screen dumps into a single binary for the
// boot image: it concatenates every file in a directory whose name ends in
// ".scr" into one destination file, in name order.
//
// The work is done by a small pipeline of stages which can also be used on
// their own:
//
//	n, err := scrmerge.ListFiles("Screenshots").
//		MatchSuffix(".scr").
//		Concat().
//		WriteFile("screenshots.bin")
//
// If any stage results in an error, the pipe's Error method will return that
// error, and all later stages will be no-ops. Merge wraps this pipeline with
// up-front checks on the source and destination paths.
package scrmerge

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const (
	// DefaultSource is the screenshots folder, relative to the tools folder.
	DefaultSource = "../Screenshots"
	// DefaultDestination is where the boot image build expects the merged file.
	DefaultDestination = "../SDK/hdmi_out_demo/bootimage/screenshots.bin"
	// DefaultSuffix selects ZX Spectrum screen dumps.
	DefaultSuffix = ".scr"
)

var (
	// ErrConfiguration is returned, wrapped, when the source directory or the
	// destination's parent directory is missing or not a directory.
	ErrConfiguration = errors.New("configuration error")
	// ErrIO is returned, wrapped, when listing, reading or writing fails once
	// the paths have been checked.
	ErrIO = errors.New("I/O error")
)

// Config holds the settings for one Merge run.
type Config struct {
	// Source is the directory to scan. It is not descended into.
	Source string
	// Destination is the file to write. Its parent directory must exist.
	Destination string
	// Suffix is the file name ending to match. Empty means DefaultSuffix.
	Suffix string
	// Stdout receives one "Merging PATH" line per file. Nil discards them.
	Stdout io.Writer
}

// DefaultConfig returns the Config used when no flags are given.
func DefaultConfig() Config {
	return Config{
		Source:      DefaultSource,
		Destination: DefaultDestination,
		Suffix:      DefaultSuffix,
		Stdout:      os.Stdout,
	}
}

// Merge writes the concatenated contents of every file in cfg.Source whose name
// ends with cfg.Suffix to cfg.Destination, in name order, and returns the number
// of bytes written. The destination is always created or truncated once the
// paths have been checked, so an empty match set gives an empty file.
//
// A missing source directory or destination parent directory, or a destination
// that is itself one of the matched files, is reported as ErrConfiguration, and
// nothing is written. Any later failure is reported as ErrIO; whatever was
// written before it is left in the destination.
func Merge(cfg Config) (int64, error) {
	if cfg.Suffix == "" {
		cfg.Suffix = DefaultSuffix
	}
	if cfg.Stdout == nil {
		cfg.Stdout = io.Discard
	}
	if err := checkDir(cfg.Source); err != nil {
		return 0, fmt.Errorf("%w: source: %w", ErrConfiguration, err)
	}
	if err := checkDir(filepath.Dir(cfg.Destination)); err != nil {
		return 0, fmt.Errorf("%w: destination: %w", ErrConfiguration, err)
	}
	paths, err := ListFiles(cfg.Source).MatchSuffix(cfg.Suffix).Slice()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrIO, err)
	}
	// Reading the destination while writing it would never reach EOF.
	if err := checkNotListed(cfg.Destination, paths); err != nil {
		return 0, fmt.Errorf("%w: destination: %w", ErrConfiguration, err)
	}
	n, err := Slice(paths).WithStdout(cfg.Stdout).Concat().WriteFile(cfg.Destination)
	if err != nil {
		return n, fmt.Errorf("%w: %w", ErrIO, err)
	}
	return n, nil
}

func checkDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return &os.PathError{Op: "stat", Path: path, Err: errors.New("not a directory")}
	}
	return nil
}

func checkNotListed(dest string, paths []string) error {
	abs, err := filepath.Abs(dest)
	if err != nil {
		return err
	}
	for _, path := range paths {
		other, err := filepath.Abs(path)
		if err != nil {
			return err
		}
		if other == abs {
			return &os.PathError{Op: "merge", Path: dest, Err: errors.New("destination matches the source pattern")}
		}
	}
	return nil
}
