package shell

import (
	"bufio"
	"io"
)

// LineReader yields input lines. *readline.Instance satisfies it; io.EOF
// or any other error ends the session.
type LineReader interface {
	Readline() (string, error)
}

type scanReader struct {
	sc *bufio.Scanner
}

// NewLineReader reads lines from a plain stream, for piped input.
func NewLineReader(r io.Reader) LineReader {
	return &scanReader{sc: bufio.NewScanner(r)}
}

func (s *scanReader) Readline() (string, error) {
	if s.sc.Scan() {
		return s.sc.Text(), nil
	}
	if err := s.sc.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}
