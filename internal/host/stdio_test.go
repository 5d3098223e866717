package host

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cwbudde/classlisp/internal/herrors"
)

func TestStdioOutput(t *testing.T) {
	var out bytes.Buffer
	s := NewStdio(&out, &bytes.Buffer{}, strings.NewReader(""))
	s.Output("hi")
	if got := out.String(); got != "hi\n" {
		t.Errorf("Output wrote %q, want %q", got, "hi\n")
	}
}

func TestStdioReadLineStripsNewline(t *testing.T) {
	s := NewStdio(&bytes.Buffer{}, &bytes.Buffer{}, strings.NewReader("first\r\nsecond\n"))
	first, err := s.ReadLine()
	if err != nil || first != "first" {
		t.Fatalf("ReadLine() = (%q, %v), want (\"first\", nil)", first, err)
	}
	second, err := s.ReadLine()
	if err != nil || second != "second" {
		t.Fatalf("ReadLine() = (%q, %v), want (\"second\", nil)", second, err)
	}
}

func TestStdioReadLineEOF(t *testing.T) {
	s := NewStdio(&bytes.Buffer{}, &bytes.Buffer{}, strings.NewReader(""))
	got, err := s.ReadLine()
	if err != nil || got != "" {
		t.Errorf("ReadLine() on empty stream = (%q, %v), want (\"\", nil)", got, err)
	}
}

func TestStdioReportError(t *testing.T) {
	var errOut bytes.Buffer
	s := NewStdio(&bytes.Buffer{}, &errOut, strings.NewReader(""))
	s.ReportError(herrors.Error{Category: herrors.Name, Message: "undefined name \"x\"", Line: 3})
	want := "NAME error at line 3: undefined name \"x\"\n"
	if got := errOut.String(); got != want {
		t.Errorf("ReportError wrote %q, want %q", got, want)
	}
}
