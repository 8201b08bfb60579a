package logging

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithOutput("debug", "json", &buf)
	if l.GetLevel() != logrus.DebugLevel {
		t.Fatalf("level = %s", l.GetLevel())
	}

	l.WithField("application_id", 7).Info("approved")
	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not json: %q", buf.String())
	}
	if entry["msg"] != "approved" || entry["application_id"] != float64(7) {
		t.Fatalf("unexpected entry: %v", entry)
	}
}

func TestNew_TextAndFallbackLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithOutput("chatty", "TEXT", &buf)
	if l.GetLevel() != logrus.InfoLevel {
		t.Fatalf("want info fallback, got %s", l.GetLevel())
	}
	l.Debug("hidden")
	l.Info("shown")
	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "msg=shown") {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestDiscard(t *testing.T) {
	l := Discard()
	if l.Out != io.Discard {
		t.Fatalf("expected discard output")
	}
	l.Info("dropped")
}
