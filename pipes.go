package scrmerge

import (
	"io"
	"os"
)

// Pipe is one stage of a merge: a byte stream (read through a ReadAutoCloser),
// a sticky error status, and the writer that progress lines such as "Merging
// PATH" go to. Stages derived from a pipe inherit its progress writer.
type Pipe struct {
	Reader ReadAutoCloser
	err    error
	stdout io.Writer
}

// NewPipe returns a pointer to a new empty pipe.
func NewPipe() *Pipe {
	return &Pipe{
		Reader: ReadAutoCloser{},
		err:    nil,
		stdout: os.Stdout,
	}
}

// Close closes the pipe's associated reader. This is always safe to do, because
// pipes created from a non-closable source will have an `io.NopCloser` to call.
func (p *Pipe) Close() error {
	if p == nil {
		return nil
	}
	return p.Reader.Close()
}

// Error returns the last error returned by any pipe operation, or nil otherwise.
func (p *Pipe) Error() error {
	if p == nil {
		return nil
	}
	return p.err
}

// Read reads up to len(b) bytes from the data source into b. It returns the
// number of bytes read and any error encountered. At end of file, or on a nil
// pipe, Read returns 0, io.EOF.
func (p *Pipe) Read(b []byte) (int, error) {
	if p == nil {
		return 0, io.EOF
	}
	return p.Reader.Read(b)
}

// SetError sets the pipe's error status to the specified error. Setting a
// non-nil error also closes the pipe's reader, so a Concat stage that fails
// part-way releases the file it was reading straight away. Clearing the error
// with nil leaves the reader open.
func (p *Pipe) SetError(err error) {
	if p != nil {
		if err != nil {
			p.Close()
		}
		p.err = err
	}
}

// WithReader replaces the pipe's stream with r. If r is an io.Closer it is
// closed once it has been read to EOF, or when the pipe is closed or given an
// error, whichever comes first.
func (p *Pipe) WithReader(r io.Reader) *Pipe {
	if p == nil {
		return nil
	}
	p.Reader = NewReadAutoCloser(r)
	return p
}

// WithStdout takes an io.Writer, and associates the pipe's progress output with
// that writer, instead of the default os.Stdout. Filters that report what they
// are doing, such as Concat, write there.
func (p *Pipe) WithStdout(w io.Writer) *Pipe {
	if p == nil {
		return nil
	}
	p.stdout = w
	return p
}

// WithError sets the pipe's error status to the specified error and returns the
// modified pipe.
func (p *Pipe) WithError(err error) *Pipe {
	p.SetError(err)
	return p
}
