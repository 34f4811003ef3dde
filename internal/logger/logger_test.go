package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriterLogger(&buf, WARN)
	l.EnableCaller(false)

	l.Info("hidden %d", 1)
	l.Warn("shown %d", 2)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message should be filtered, got %q", out)
	}
	if !strings.Contains(out, "[WARN] shown 2") {
		t.Errorf("expected warn line, got %q", out)
	}
}

func TestCallerIsRecorded(t *testing.T) {
	var buf bytes.Buffer
	SetGlobal(NewWriterLogger(&buf, DEBUG))
	defer SetGlobal(nil)

	Debug("where am I")

	if !strings.Contains(buf.String(), "[logger_test.go:") {
		t.Errorf("expected caller file in %q", buf.String())
	}
	if !IsDebugEnabled() {
		t.Error("debug should be enabled")
	}
}

func TestFatalCallsExit(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriterLogger(&buf, INFO)
	code := -1
	l.exit = func(c int) { code = c }

	l.Fatal("boom")

	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    LogLevel
		wantErr bool
	}{
		{"debug", DEBUG, false},
		{" WARN ", WARN, false},
		{"Error", ERROR, false},
		{"verbose", INFO, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) err = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFileLoggerCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "golha.log")
	l, err := NewFileLogger(path, INFO)
	if err != nil {
		t.Fatalf("NewFileLogger: %v", err)
	}
	l.Info("hello")
	if err := l.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Errorf("log file missing message: %q", data)
	}
}
