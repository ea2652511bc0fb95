package scrmerge

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// EachLine calls process for each line of input, passing it the line and a
// *strings.Builder to write its output to. It returns a new pipe holding that
// output, which keeps the progress writer of p, so a later Concat still reports
// where WithStdout pointed. If process sets an error on p, or reading fails, p
// itself is returned carrying the error.
func (p *Pipe) EachLine(process func(string, *strings.Builder)) *Pipe {
	if p == nil || p.Error() != nil {
		return p
	}
	scanner := bufio.NewScanner(p.Reader)
	output := strings.Builder{}
	for scanner.Scan() {
		process(scanner.Text(), &output)
		if p.Error() != nil {
			return p
		}
	}
	err := scanner.Err()
	if err != nil {
		p.SetError(err)
		return p
	}
	return Echo(output.String()).WithStdout(p.stdout)
}

// MatchSuffix reads a list of paths from the pipe, one per line, and returns a
// new pipe containing only those whose final element ends with suffix. The
// comparison is exact and case-sensitive. If there is an error reading the
// pipe, the pipe's error status is also set.
func (p *Pipe) MatchSuffix(suffix string) *Pipe {
	return p.EachLine(func(line string, out *strings.Builder) {
		if strings.HasSuffix(filepath.Base(line), suffix) {
			out.WriteString(line)
			out.WriteRune('\n')
		}
	})
}

// Concat reads a list of file paths from the pipe, one per line, and returns a
// pipe which reads all those files in sequence. Each file is opened only when
// the previous one has been read to the end and closed, and a line "Merging
// PATH" is written to the pipe's stdout just before it is opened. If a file
// cannot be opened or read, reading the returned pipe fails with that error
// and none of the remaining files are opened.
func (p *Pipe) Concat() *Pipe {
	if p == nil || p.Error() != nil {
		return p
	}
	var paths []string
	scanner := bufio.NewScanner(p.Reader)
	for scanner.Scan() {
		paths = append(paths, scanner.Text())
	}
	err := scanner.Err()
	if err != nil {
		p.SetError(err)
		return p
	}
	return NewPipe().WithStdout(p.stdout).WithReader(&concatReader{
		paths:  paths,
		stdout: p.stdout,
	})
}

// concatReader streams a sequence of files, holding at most one of them open.
type concatReader struct {
	paths  []string
	stdout io.Writer
	cur    *os.File
}

func (c *concatReader) Read(b []byte) (int, error) {
	for {
		if c.cur == nil {
			if len(c.paths) == 0 {
				return 0, io.EOF
			}
			path := c.paths[0]
			c.paths = c.paths[1:]
			fmt.Fprintf(c.stdout, "Merging %s\n", path)
			f, err := os.Open(path)
			if err != nil {
				c.paths = nil
				return 0, err
			}
			c.cur = f
		}
		n, err := c.cur.Read(b)
		if err == io.EOF {
			err = c.cur.Close()
			c.cur = nil
			if err != nil {
				c.paths = nil
				return n, err
			}
			if n == 0 {
				continue
			}
			return n, nil
		}
		if err != nil {
			c.Close()
		}
		return n, err
	}
}

// Close releases the file currently being read, if any, and drops the rest.
func (c *concatReader) Close() error {
	c.paths = nil
	if c.cur == nil {
		return nil
	}
	err := c.cur.Close()
	c.cur = nil
	return err
}
