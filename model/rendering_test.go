package model

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestTerminalRendererDisplay(t *testing.T) {
	var buf bytes.Buffer
	r := NewTerminalRenderer(&buf)
	g := mustParse(t, "...\nXXX\n...")

	if err := r.Display(g); err != nil {
		t.Fatalf("Display: %v", err)
	}
	if err := r.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	want := "...\nXXX\n...\n" + clearSequence
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestTerminalRendererWriteError(t *testing.T) {
	r := NewTerminalRenderer(failingWriter{})
	if err := r.Display(mustParse(t, "X")); err == nil {
		t.Errorf("Display should surface write errors")
	}
	if err := r.Clear(); err == nil {
		t.Errorf("Clear should surface write errors")
	}
}
