package pysrc

import "testing"

func TestExtractSubstring(t *testing.T) {
	got := ExtractSubstring("```python\nx=1\n```", "```python", "```")
	if got != "\nx=1\n" {
		t.Fatalf("got %q", got)
	}
}

func TestExtractSubstringFallback(t *testing.T) {
	// start marker absent
	if got := ExtractSubstring("x=1", "```python", "```"); got != "x=1" {
		t.Fatalf("got %q", got)
	}
	// end marker absent
	if got := ExtractSubstring("```python\nx=1", "```python", "```"); got != "```python\nx=1" {
		t.Fatalf("got %q", got)
	}
	// end marker only before start marker
	if got := ExtractSubstring("``` ```python x=1", "```python", "```"); got != "``` ```python x=1" {
		t.Fatalf("got %q", got)
	}
}

func TestExtractSubstringEmptyBody(t *testing.T) {
	if got := ExtractSubstring("``````", "```", "```"); got != "" {
		t.Fatalf("got %q", got)
	}
}
