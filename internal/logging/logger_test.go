package logging

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestLogger_ConsoleFields(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(WithConsole(&buf), WithLevel(zerolog.DebugLevel))
	if err != nil {
		t.Fatal(err)
	}
	l.Warn("diagnostic", "kind", "no-focused-tab", "node", 42)
	out := buf.String()
	for _, want := range []string{"diagnostic", "kind=", "no-focused-tab", "node=", "42", "logger_test.go"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output %q", want, out)
		}
	}
}

func TestLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(WithConsole(&buf), WithLevel(zerolog.WarnLevel))
	if err != nil {
		t.Fatal(err)
	}
	l.Debug("hidden")
	l.Info("hidden too")
	if buf.Len() != 0 {
		t.Errorf("expected nothing below warn, got %q", buf.String())
	}
	l.Error("focus failed", errors.New("boom"))
	if !strings.Contains(buf.String(), "boom") {
		t.Errorf("expected error text, got %q", buf.String())
	}
}

func TestLogger_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "easyfocus.log")
	l, err := New(WithFile(path), WithLevel(zerolog.InfoLevel))
	if err != nil {
		t.Fatal(err)
	}
	l.Info("round started", "round", 1)
	if err := l.Close(); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "round started") {
		t.Errorf("expected log line in file, got %q", data)
	}
}

func TestLogFields_OddCount(t *testing.T) {
	var buf bytes.Buffer
	l, _ := New(WithConsole(&buf))
	l.Warn("odd", "key")
	if strings.Contains(buf.String(), "key=") {
		t.Errorf("dangling key should be dropped, got %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("")
	if err != nil || lvl != zerolog.WarnLevel {
		t.Errorf("expected warn default, got %v %v", lvl, err)
	}
	lvl, err = ParseLevel("debug")
	if err != nil || lvl != zerolog.DebugLevel {
		t.Errorf("expected debug, got %v %v", lvl, err)
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestNop(t *testing.T) {
	l := Nop()
	l.Warn("nothing")
	l.Error("nothing", errors.New("x"))
}
