package diag

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func testReport(t *testing.T) *Report {
	t.Helper()
	rep, err := RunAll(context.Background(), Deps{})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	return rep
}

func TestEncodeJSONCompactSingleLine(t *testing.T) {
	b, err := EncodeJSON(testReport(t), false)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !bytes.HasSuffix(b, []byte("\n")) {
		t.Fatalf("missing trailing newline")
	}
	if bytes.Count(b, []byte("\n")) != 1 {
		t.Fatalf("compact output is not a single line")
	}
	var decoded map[string]any
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if decoded["contractVersion"] != "1" {
		t.Fatalf("contractVersion: %v", decoded["contractVersion"])
	}
}

func TestEncodeJSONPretty(t *testing.T) {
	b, err := EncodeJSON(testReport(t), true)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	s := string(b)
	if !strings.HasPrefix(s, "{\n  \"contractVersion\": \"1\",") {
		t.Fatalf("unexpected prefix: %q", s[:min(len(s), 40)])
	}
	if !strings.HasSuffix(s, "}\n") {
		t.Fatalf("unexpected suffix: %q", s[len(s)-4:])
	}
}

func TestEncodeYAMLCanonical(t *testing.T) {
	b, err := EncodeYAML(testReport(t))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	s := string(b)
	if !strings.HasSuffix(s, "\n") || strings.HasSuffix(s, "\n\n") {
		t.Fatalf("trailing newline not canonical: %q", s[len(s)-4:])
	}
	// Top-level keys must appear in sorted order.
	var topKeys []string
	for _, line := range strings.Split(s, "\n") {
		if line == "" || strings.HasPrefix(line, " ") || strings.HasPrefix(line, "-") {
			continue
		}
		topKeys = append(topKeys, strings.SplitN(line, ":", 2)[0])
	}
	want := []string{"build", "checks", "contractVersion", "greeting", "ok", "stream"}
	if len(topKeys) != len(want) {
		t.Fatalf("top-level keys: %v", topKeys)
	}
	for i, k := range want {
		if topKeys[i] != k {
			t.Fatalf("key %d: %q, want %q (all: %v)", i, topKeys[i], k, topKeys)
		}
	}
}

func TestWriteToFileCreatesParents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "report.json")
	if err := WriteTo(path, []byte("{}\n")); err != nil {
		t.Fatalf("write: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(b) != "{}\n" {
		t.Fatalf("content: %q", string(b))
	}
}
