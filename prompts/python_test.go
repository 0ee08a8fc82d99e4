package prompts

import (
	"strings"
	"testing"
)

func TestWriteFunction(t *testing.T) {
	prompt := WriteFunction("list all files in a directory")
	if !strings.Contains(prompt, "list all files in a directory") {
		t.Fatalf("got %q", prompt)
	}
	if !strings.Contains(prompt, "must be typed") {
		t.Fatalf("got %q", prompt)
	}
}

func TestWriteTest(t *testing.T) {
	prompt := WriteTest("list_files")
	if !strings.Contains(prompt, "test_list_files") {
		t.Fatalf("got %q", prompt)
	}
	if !strings.Contains(prompt, "pytest") {
		t.Fatalf("got %q", prompt)
	}
}

func TestCodeToTest(t *testing.T) {
	prompt := CodeToTest("testpackage", "main", "def foo():\n    pass")
	if !strings.Contains(prompt, "from testpackage import main") {
		t.Fatalf("got %q", prompt)
	}
	if !strings.Contains(prompt, "def foo()") {
		t.Fatalf("got %q", prompt)
	}
}
