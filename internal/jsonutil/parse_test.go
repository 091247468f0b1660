package jsonutil

import "testing"

func TestStripMarkdownFences_NoFences(t *testing.T) {
	in := `{"a": 1}`
	if got := StripMarkdownFences(in); got != in {
		t.Errorf("expected unchanged text, got %q", got)
	}
}

func TestStripMarkdownFences_JSONFence(t *testing.T) {
	in := "```json\n{\"a\": 1}\n```"
	if got := StripMarkdownFences(in); got != `{"a": 1}` {
		t.Errorf("expected fence stripped, got %q", got)
	}
}

func TestStripMarkdownFences_PlainFence(t *testing.T) {
	in := "```\n[1, 2, 3]\n```"
	if got := StripMarkdownFences(in); got != `[1, 2, 3]` {
		t.Errorf("expected fence stripped, got %q", got)
	}
}

func TestStripMarkdownFences_SingleLine(t *testing.T) {
	in := "```json {\"a\": 1} ```"
	if got := StripMarkdownFences(in); got != `{"a": 1}` {
		t.Errorf("expected fence stripped, got %q", got)
	}
}

func TestExtractJSON_ObjectInProse(t *testing.T) {
	in := `Here is the result: {"outfitSuggestion": "blazer"} hope that helps!`
	got, err := ExtractJSON(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != `{"outfitSuggestion": "blazer"}` {
		t.Errorf("got %q", got)
	}
}

func TestExtractJSON_ArrayFirst(t *testing.T) {
	in := `[{"id": "1"}, {"id": "2"}]`
	got, err := ExtractJSON(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != in {
		t.Errorf("got %q", got)
	}
}

func TestExtractJSON_NoJSON(t *testing.T) {
	if _, err := ExtractJSON("just some prose"); err == nil {
		t.Error("expected error for prose with no JSON")
	}
}

func TestParseJSON_Fenced(t *testing.T) {
	type rec struct {
		Title string `json:"title"`
	}
	got, err := ParseJSON[rec]("```json\n{\"title\": \"Smart Casual\"}\n```")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Title != "Smart Casual" {
		t.Errorf("got %+v", got)
	}
}

// Wrapping already-clean JSON in a fence and parsing must produce the same
// value as parsing the bare text.
func TestParseJSON_FenceIdempotence(t *testing.T) {
	type rec struct {
		ID    string `json:"id"`
		Title string `json:"title"`
	}
	bare := `{"id": "1", "title": "Monochrome Layers"}`

	direct, err := ParseJSON[rec](bare)
	if err != nil {
		t.Fatalf("bare parse failed: %v", err)
	}
	fenced, err := ParseJSON[rec]("```json\n" + bare + "\n```")
	if err != nil {
		t.Fatalf("fenced parse failed: %v", err)
	}
	if direct != fenced {
		t.Errorf("fenced result %+v != direct result %+v", fenced, direct)
	}
}

func TestParseJSON_Malformed(t *testing.T) {
	if _, err := ParseJSON[map[string]string](`{"a": `); err == nil {
		t.Error("expected error for truncated JSON")
	}
}

func TestParseJSON_Empty(t *testing.T) {
	if _, err := ParseJSON[map[string]string](""); err == nil {
		t.Error("expected error for empty input")
	}
}
