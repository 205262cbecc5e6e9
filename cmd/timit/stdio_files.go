package main

import (
	"fmt"
	"os"

	"github.com/SanjoDeundiak/timit/pkg/lib/stdio"
	"github.com/hashicorp/go-multierror"
)

// stdioFiles owns the files opened for the child's streams. They stay open
// until the observation is over.
type stdioFiles struct {
	files []*os.File
}

// Close closes every opened file and reports all failures.
func (s *stdioFiles) Close() error {
	var mErr *multierror.Error
	for _, f := range s.files {
		if err := f.Close(); err != nil {
			mErr = multierror.Append(mErr, err)
		}
	}
	s.files = nil
	return mErr.ErrorOrNil()
}

// openStdio builds the stdio config from the command line. For each stream an
// inherit flag takes precedence over a path; with neither the stream is null.
// The flags are mutually exclusive on the command line, so the precedence only
// matters to direct callers.
func openStdio(opts *rootOptions) (*stdioFiles, stdio.Config, error) {
	files := &stdioFiles{}

	stdin, err := files.choose(opts.stdinInherit, opts.stdin, os.Open)
	if err != nil {
		_ = files.Close()
		return nil, stdio.Config{}, err
	}
	stdout, err := files.choose(opts.stdoutInherit, opts.stdout, os.Create)
	if err != nil {
		_ = files.Close()
		return nil, stdio.Config{}, err
	}

	var stderr stdio.Stdio
	if !opts.stderrInherit && sameFile(stdout.File(), opts.stderr) {
		// one handle, so both streams append instead of overwriting each other
		stderr = stdout
	} else {
		stderr, err = files.choose(opts.stderrInherit, opts.stderr, os.Create)
		if err != nil {
			_ = files.Close()
			return nil, stdio.Config{}, err
		}
	}

	return files, stdio.Config{Stdin: stdin, Stdout: stdout, Stderr: stderr}, nil
}

func (s *stdioFiles) choose(inherit bool, path string, open func(string) (*os.File, error)) (stdio.Stdio, error) {
	switch {
	case inherit:
		return stdio.Inherit(), nil
	case path != "":
		f, err := open(path)
		if err != nil {
			return stdio.Null(), fmt.Errorf("failed to open %s: %w", path, err)
		}
		s.files = append(s.files, f)
		return stdio.Redirect(f), nil
	default:
		return stdio.Null(), nil
	}
}

// sameFile reports whether path names the file already opened as f, however
// the path is spelled.
func sameFile(f *os.File, path string) bool {
	if f == nil || path == "" {
		return false
	}
	opened, err := f.Stat()
	if err != nil {
		return false
	}
	other, err := os.Stat(path)
	if err != nil {
		return false
	}
	return os.SameFile(opened, other)
}
