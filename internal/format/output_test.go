package format

import (
	"bytes"
	"testing"
)

type plainValue struct {
	Name string `json:"name"`
}

func (p plainValue) Plain() string { return "name: " + p.Name }

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, plainValue{Name: "x"}, "json", false); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if got := buf.String(); got != "{\"name\":\"x\"}\n" {
		t.Fatalf("json output = %q", got)
	}
}

func TestWriteJSONPretty(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, plainValue{Name: "x"}, "", true); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if got := buf.String(); got != "{\n  \"name\": \"x\"\n}\n" {
		t.Fatalf("pretty output = %q", got)
	}
}

func TestWritePlainUsesPlainer(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, plainValue{Name: "x"}, "plain", false); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if got := buf.String(); got != "name: x\n" {
		t.Fatalf("plain output = %q", got)
	}
}

func TestWriteRejectsUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, plainValue{}, "yaml", false); err == nil {
		t.Fatal("expected an error for an unknown format")
	}
}
