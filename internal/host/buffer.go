package host

import (
	"strings"

	"github.com/cwbudde/classlisp/internal/herrors"
)

// Buffer is an in-memory Host for tests: queued input lines, a
// captured output log, and every reported error, in order.
type Buffer struct {
	Lines  []string // remaining queued input lines, consumed front to back
	Out    []string // every line passed to Output, in order
	Errors []herrors.Error
}

// NewBuffer builds a Buffer pre-loaded with the given input lines.
func NewBuffer(lines ...string) *Buffer {
	return &Buffer{Lines: lines}
}

func (b *Buffer) Output(line string) {
	b.Out = append(b.Out, line)
}

func (b *Buffer) ReadLine() (string, error) {
	if len(b.Lines) == 0 {
		return "", nil
	}
	line := b.Lines[0]
	b.Lines = b.Lines[1:]
	return line, nil
}

func (b *Buffer) ReportError(e herrors.Error) {
	b.Errors = append(b.Errors, e)
}

// String joins all captured output lines with newlines, matching what
// a real terminal would have shown.
func (b *Buffer) String() string {
	return strings.Join(b.Out, "\n")
}
