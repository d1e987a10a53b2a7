package logging_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"ostforge/internal/logging"
)

func TestNewJSONHandlerEmitsStructuredLines(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("encode finished", logging.Args(
		logging.Int(logging.FieldTrack, 7),
		logging.String(logging.FieldTitle, "Chrono Ark Normal Theme"),
	)...)

	var payload map[string]any
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("log line is not JSON: %v (%q)", err, buf.String())
	}
	if payload["msg"] != "encode finished" {
		t.Fatalf("unexpected msg: %v", payload["msg"])
	}
	if payload[logging.FieldTrack] != float64(7) {
		t.Fatalf("unexpected track field: %v", payload[logging.FieldTrack])
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "yaml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "warn", Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("hidden")
	logger.Warn("visible")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line should be filtered: %q", out)
	}
	if !strings.Contains(out, "visible") {
		t.Fatalf("warn line missing: %q", out)
	}
}

func TestNewNopDiscards(t *testing.T) {
	logger := logging.NewNop()
	logger.Error("should not panic", logging.Args(logging.Error(nil))...)
}
