package format

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	ghub "github.com/stahnma/gh-mcp/internal/github"
)

func TestWriteJSON_Indented(t *testing.T) {
	var buf bytes.Buffer
	data := map[string]int{"stars": 42}

	if err := WriteJSON(&buf, data, false); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if !strings.Contains(out, `"stars": 42`) {
		t.Errorf("expected indented JSON with stars, got:\n%s", out)
	}
	if !strings.HasSuffix(out, "}\n") {
		t.Errorf("expected trailing newline, got:\n%q", out)
	}
}

func TestWriteJSON_Compact(t *testing.T) {
	var buf bytes.Buffer
	data := map[string]int{"stars": 42}

	if err := WriteJSON(&buf, data, true); err != nil {
		t.Fatal(err)
	}

	if got := buf.String(); got != "{\"stars\":42}\n" {
		t.Errorf("got %q", got)
	}
}

func TestWriteJSON_Struct(t *testing.T) {
	var buf bytes.Buffer
	type item struct {
		Name string `json:"name"`
	}
	data := []item{{Name: "test"}}

	if err := WriteJSON(&buf, data, false); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if !strings.Contains(out, `"name": "test"`) {
		t.Errorf("expected struct JSON, got:\n%s", out)
	}
}

func TestMarshal_ErrorOutcome(t *testing.T) {
	out, err := Marshal(ghub.Outcome[any]{Err: errors.New("GitHub API rate limit exceeded. Try again later.")}, true)
	if err != nil {
		t.Fatal(err)
	}
	if out != `{"error":"GitHub API rate limit exceeded. Try again later."}` {
		t.Errorf("got %s", out)
	}
}

func TestMarshal_Unsupported(t *testing.T) {
	if _, err := Marshal(make(chan int), false); err == nil {
		t.Error("expected error for unsupported type")
	}
}
