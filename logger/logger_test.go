package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New()
	l.SetOutput(&buf)
	l.SetLevel(WARN)

	l.Info("should be dropped")
	l.Warn("should be written")

	out := buf.String()
	if strings.Contains(out, "should be dropped") {
		t.Error("INFO entry written despite WARN level")
	}
	if !strings.Contains(out, "should be written") {
		t.Error("WARN entry missing")
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	l := New()
	l.SetOutput(&buf)
	l.SetJSONFormat(true)
	l.SetNodeName("minimal_client")

	l.Infof("result of %d + %d = %d", 41, 1, 42)

	var entry LogEntry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if entry.Level != "INFO" {
		t.Errorf("expected level INFO, got %q", entry.Level)
	}
	if entry.Message != "result of 41 + 1 = 42" {
		t.Errorf("unexpected message: %q", entry.Message)
	}
	if entry.NodeName != "minimal_client" {
		t.Errorf("expected node name tag, got %q", entry.NodeName)
	}
}

func TestWithFieldText(t *testing.T) {
	var buf bytes.Buffer
	l := New()
	l.SetOutput(&buf)

	l.WithField("request_id", "abc123").Info("sending request")

	if !strings.Contains(buf.String(), "request_id=abc123") {
		t.Errorf("field missing from text output: %q", buf.String())
	}
}

func TestWithFieldDoesNotMutateParent(t *testing.T) {
	var buf bytes.Buffer
	l := New()
	l.SetOutput(&buf)

	_ = l.WithField("request_id", "abc123")
	l.Info("no fields here")

	if strings.Contains(buf.String(), "request_id") {
		t.Errorf("parent logger picked up child field: %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]LogLevel{
		"debug": DEBUG,
		"INFO":  INFO,
		"warn":  WARN,
		"ERROR": ERROR,
		"fatal": FATAL,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		if err != nil {
			t.Errorf("ParseLevel(%q) error: %v", in, err)
		}
		if got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}

	if _, err := ParseLevel("noise"); err == nil {
		t.Error("expected error for unknown level")
	}
}
