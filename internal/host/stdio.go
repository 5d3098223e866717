package host

import (
	"bufio"
	"fmt"
	"io"

	"github.com/cwbudde/classlisp/internal/herrors"
)

// Stdio is the production Host: line-buffered reads and writes against
// arbitrary streams, so the CLI can wire os.Stdin/os.Stdout/os.Stderr
// while still letting tests redirect to an in-memory pipe.
type Stdio struct {
	out    io.Writer
	errOut io.Writer
	in     *bufio.Reader
}

// NewStdio builds a Host that writes `print` output to out, reads
// `inputi`/`inputs` lines from in, and reports terminal errors to
// errOut.
func NewStdio(out, errOut io.Writer, in io.Reader) *Stdio {
	return &Stdio{out: out, errOut: errOut, in: bufio.NewReader(in)}
}

func (s *Stdio) Output(line string) {
	fmt.Fprintln(s.out, line)
}

func (s *Stdio) ReadLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
		line = line[:len(line)-1]
	}
	return line, nil
}

func (s *Stdio) ReportError(e herrors.Error) {
	fmt.Fprintln(s.errOut, e.Error())
}
