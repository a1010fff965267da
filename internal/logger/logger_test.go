package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, "foodadmin", "debug", "json")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	log.Debug("fetched drivers", "count", 3)

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("log line is not JSON: %v\n%s", err, buf.String())
	}
	for _, key := range []string{"timestamp", "message", "service", "host"} {
		if _, ok := line[key]; !ok {
			t.Errorf("log line missing %q: %v", key, line)
		}
	}
	if line["message"] != "fetched drivers" {
		t.Errorf("message = %v", line["message"])
	}
}

func TestLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, "foodadmin", "warn", "text")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	log.Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("info logged at warn level: %s", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	if lvl, err := ParseLevel("ERROR"); err != nil || lvl != slog.LevelError {
		t.Errorf("ParseLevel(ERROR) = %v, %v", lvl, err)
	}
	if _, err := ParseLevel("chatty"); err == nil {
		t.Error("expected error for unknown level")
	}
	if _, err := New(&bytes.Buffer{}, "x", "info", "xml"); err == nil {
		t.Error("expected error for unknown format")
	}
}
