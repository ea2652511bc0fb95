// Command scrmerge merges all *.scr files in a folder into one composite binary
// for the boot image.
//
// Usage:
//
//	scrmerge [--source DIR] [--destination FILE]
//
// Flag values may refer to environment variables as $NAME or ${NAME}.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/magictale/scrmerge"
	"github.com/spf13/pflag"
	"mvdan.cc/sh/v3/shell"
)

var errUsage = errors.New("usage error")

func main() {
	os.Exit(Main())
}

// Main runs the command with os.Args and returns its exit status.
func Main() int {
	cfg, err := parseConfig(os.Args[1:], os.Stderr, os.Getenv)
	if errors.Is(err, pflag.ErrHelp) {
		return 0
	}
	if errors.Is(err, errUsage) {
		// Already reported, along with the usage text.
		return 2
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "scrmerge: %v\n", err)
		return 1
	}
	if _, err := scrmerge.Merge(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "scrmerge: %v\n", err)
		return 1
	}
	return 0
}

// parseConfig builds a Config from the command line. Usage and flag errors are
// written to stderr; env resolves variable references in flag values.
func parseConfig(args []string, stderr io.Writer, env func(string) string) (scrmerge.Config, error) {
	cfg := scrmerge.DefaultConfig()
	fs := pflag.NewFlagSet("scrmerge", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.Source, "source", scrmerge.DefaultSource, "Folder with *.scr files")
	fs.StringVar(&cfg.Destination, "destination", scrmerge.DefaultDestination, "Destination file")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: scrmerge [flags]")
		fmt.Fprintln(stderr, "\nMerges all *.scr files into one composite binary.")
		fmt.Fprintln(stderr, "\nFlags:")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return scrmerge.Config{}, err
		}
		fmt.Fprintf(stderr, "scrmerge: %v\n", err)
		fs.Usage()
		return scrmerge.Config{}, fmt.Errorf("%w: %w", errUsage, err)
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "scrmerge: unexpected argument %q\n", fs.Arg(0))
		fs.Usage()
		return scrmerge.Config{}, errUsage
	}
	var err error
	cfg.Source, err = expand(cfg.Source, env)
	if err != nil {
		return scrmerge.Config{}, fmt.Errorf("%w: --source: %w", scrmerge.ErrConfiguration, err)
	}
	cfg.Destination, err = expand(cfg.Destination, env)
	if err != nil {
		return scrmerge.Config{}, fmt.Errorf("%w: --destination: %w", scrmerge.ErrConfiguration, err)
	}
	return cfg, nil
}

// expand resolves $NAME and ${NAME} references in s. Strings without a '$' are
// returned verbatim, so ordinary paths never go through the shell parser.
func expand(s string, env func(string) string) (string, error) {
	if !strings.ContainsRune(s, '$') {
		return s, nil
	}
	return shell.Expand(s, env)
}
