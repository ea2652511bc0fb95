package scrmerge

import (
	"io"
	"os"
	"strings"
)

// String returns the contents of the pipe as a string, or an error, and closes
// the pipe after reading. If there is an error reading, the pipe's error status
// is also set.
func (p *Pipe) String() (string, error) {
	if p == nil {
		return "", nil
	}
	if p.Error() != nil {
		return "", p.Error()
	}
	defer p.Close()
	res, err := io.ReadAll(p.Reader)
	if err != nil {
		p.SetError(err)
		return "", err
	}
	return string(res), nil
}

// Slice returns the contents of the pipe as a slice of strings, one element per
// line, or an error. An empty pipe produces an empty slice.
func (p *Pipe) Slice() ([]string, error) {
	if p == nil || p.Error() != nil {
		return nil, p.Error()
	}
	var result []string
	p.EachLine(func(line string, out *strings.Builder) {
		result = append(result, line)
	})
	return result, p.Error()
}

// WriteFile writes the contents of the pipe to the specified file, and closes
// the pipe after reading. The file is created if it does not exist, and
// truncated if it does, even when the pipe is empty. It returns the number of
// bytes successfully written, or an error. If there is an error reading or
// writing, the pipe's error status is also set. Bytes written before such an
// error remain in the file.
func (p *Pipe) WriteFile(fileName string) (int64, error) {
	if p == nil {
		return 0, nil
	}
	if p.Error() != nil {
		return 0, p.Error()
	}
	defer p.Close()
	out, err := os.OpenFile(fileName, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		p.SetError(err)
		return 0, err
	}
	wrote, err := io.Copy(out, p.Reader)
	if err != nil {
		out.Close()
		p.SetError(err)
		return wrote, err
	}
	err = out.Close()
	if err != nil {
		p.SetError(err)
		return wrote, err
	}
	return wrote, nil
}
