package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestRenderVersionPrettyFull(t *testing.T) {
	info := versionInfo{
		Version:    "1.2.3",
		GitCommit:  "abc123",
		GitMessage: "tighten handle checks",
		BuildDate:  "2026-08-30T10:00:00Z",
	}
	opts := versionOptions{format: "pretty", showHash: true, showMessage: true, showDate: true}

	var buf bytes.Buffer
	renderVersionPretty(&buf, info, opts)
	out := buf.String()
	for _, want := range []string{
		"lumen 1.2.3",
		"commit: abc123",
		"message: tighten handle checks",
		"built:  2026-08-30T10:00:00Z",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("pretty output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderVersionPrettyOmitsUnrequested(t *testing.T) {
	info := versionInfo{Version: "1.2.3", GitMessage: "hidden"}
	var buf bytes.Buffer
	renderVersionPretty(&buf, info, versionOptions{format: "pretty"})
	if strings.Contains(buf.String(), "message:") {
		t.Fatalf("message shown without --message: %q", buf.String())
	}
}

func TestRenderVersionJSONIncludesMessage(t *testing.T) {
	info := versionInfo{Version: "1.2.3", GitMessage: "tighten handle checks"}
	opts := versionOptions{format: "json", showMessage: true}

	var buf bytes.Buffer
	if err := renderVersionJSON(&buf, info, opts); err != nil {
		t.Fatalf("renderVersionJSON: %v", err)
	}
	var payload map[string]any
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if payload["git_message"] != "tighten handle checks" {
		t.Fatalf("git_message = %v", payload["git_message"])
	}
	if _, ok := payload["git_commit"]; ok {
		t.Fatalf("git_commit must be omitted when not requested: %s", buf.Bytes())
	}
}
