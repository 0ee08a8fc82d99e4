package workspaces

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/aimaker/aimakerconfigs"
	"github.com/reusee/aimaker/configs"
	"github.com/reusee/aimaker/generators"
	"github.com/reusee/aimaker/logs"
	"github.com/reusee/aimaker/modes"
	"github.com/reusee/aimaker/pysrc"
	"github.com/reusee/aimaker/suites"
)

func testScope(t *testing.T, dir string) dscope.Scope {
	return dscope.New(
		modes.ForTest(t),
		new(Module),
	).Fork(
		dscope.Provide(configs.NewLoader(nil, "")),
		dscope.Provide(logs.FileSinkPath(filepath.Join(t.TempDir(), "test.log"))),
		dscope.Provide(aimakerconfigs.WorkspaceDir(filepath.Join(dir, "workspace"))),
		dscope.Provide(aimakerconfigs.BackupDir(filepath.Join(dir, "backup"))),
		dscope.Provide(aimakerconfigs.PackageName("testpackage")),
		dscope.Provide(aimakerconfigs.ModuleName("main")),
	)
}

func TestInitWorkspace(t *testing.T) {
	dir := t.TempDir()
	testScope(t, dir).Call(func(
		newPackage NewPackage,
	) {
		pkg, err := newPackage()
		if err != nil {
			t.Fatal(err)
		}

		for _, path := range []string{
			filepath.Join(pkg.WorkspaceDir, "testpackage", "__init__.py"),
			filepath.Join(pkg.WorkspaceDir, "tests", "__init__.py"),
		} {
			content, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			if len(content) != 0 {
				t.Fatalf("got %q", content)
			}
		}
	})
}

func TestInitWorkspaceBackup(t *testing.T) {
	dir := t.TempDir()
	testScope(t, dir).Call(func(
		newPackage NewPackage,
	) {
		if _, err := newPackage(); err != nil {
			t.Fatal(err)
		}
		leftover := filepath.Join(dir, "workspace", "leftover.txt")
		if err := os.WriteFile(leftover, []byte("old run"), 0644); err != nil {
			t.Fatal(err)
		}

		if _, err := newPackage(); err != nil {
			t.Fatal(err)
		}

		// the workspace must be fresh again
		if _, err := os.Stat(leftover); !os.IsNotExist(err) {
			t.Fatalf("got %v", err)
		}

		// everything must have moved under a timestamped backup
		stamps, err := os.ReadDir(filepath.Join(dir, "backup"))
		if err != nil {
			t.Fatal(err)
		}
		if len(stamps) != 1 {
			t.Fatalf("got %d backups", len(stamps))
		}
		content, err := os.ReadFile(filepath.Join(
			dir, "backup", stamps[0].Name(), "leftover.txt",
		))
		if err != nil {
			t.Fatal(err)
		}
		if string(content) != "old run" {
			t.Fatalf("got %q", content)
		}
	})
}

// replayGenerator replays canned responses, one per Complete call.
type replayGenerator struct {
	responses []string
	calls     int
}

var _ generators.Generator = new(replayGenerator)

func (g *replayGenerator) Args() generators.GeneratorArgs {
	return generators.GeneratorArgs{
		Model: "replay",
	}
}

func (g *replayGenerator) CountTokens(text string) (int, error) {
	return len(text), nil
}

func (g *replayGenerator) Complete(_ context.Context, _ []generators.Message) (string, error) {
	response := g.responses[g.calls]
	g.calls++
	return response, nil
}

func pythonDef(name string) string {
	return "```python\ndef " + name + "() -> None:\n    pass\n```"
}

func TestAddFunctionMultipleGoals(t *testing.T) {
	dir := t.TempDir()
	stub := &replayGenerator{
		responses: []string{
			pythonDef("first"),
			pythonDef("test_first"),
			pythonDef("second"),
			pythonDef("test_second"),
		},
	}
	testScope(t, dir).Fork(
		dscope.Provide(generators.GetDefaultGenerator(func() (generators.Generator, error) {
			return stub, nil
		})),
	).Call(func(
		newPackage NewPackage,
	) {
		pkg, err := newPackage()
		if err != nil {
			t.Fatal(err)
		}
		if err := pkg.AddFunction(t.Context(), "do the first thing"); err != nil {
			t.Fatal(err)
		}
		if err := pkg.AddFunction(t.Context(), "do the second thing"); err != nil {
			t.Fatal(err)
		}

		// both goals share the module's script
		if len(pkg.Scripts) != 1 {
			t.Fatalf("got %d scripts", len(pkg.Scripts))
		}
		if len(pkg.Scripts[0].Suites) != 2 {
			t.Fatalf("got %d suites", len(pkg.Scripts[0].Suites))
		}

		if err := pkg.WriteFiles(); err != nil {
			t.Fatal(err)
		}
		content, err := os.ReadFile(filepath.Join(
			pkg.WorkspaceDir, "testpackage", "main.py",
		))
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(string(content), "def first") ||
			!strings.Contains(string(content), "def second") {
			t.Fatalf("got %q", content)
		}
		tests, err := os.ReadFile(filepath.Join(
			pkg.WorkspaceDir, "tests", "test_main.py",
		))
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(string(tests), "def test_first") ||
			!strings.Contains(string(tests), "def test_second") {
			t.Fatalf("got %q", tests)
		}
	})
}

func newTestPackage(t *testing.T, dir string) *Package {
	var pkg *Package
	testScope(t, dir).Call(func(
		newPackage NewPackage,
	) {
		var err error
		pkg, err = newPackage()
		if err != nil {
			t.Fatal(err)
		}
	})
	return pkg
}

func suiteOf(functionName, functionContent, testContent string) *suites.Suite {
	return &suites.Suite{
		Function: &suites.Function{
			Name:    functionName,
			Content: functionContent,
		},
		Test: &suites.Function{
			Name:    "test_" + functionName,
			Content: testContent,
		},
	}
}

func TestWriteFiles(t *testing.T) {
	dir := t.TempDir()
	pkg := newTestPackage(t, dir)

	script := &suites.Script{
		ModuleName: "main",
	}
	script.Append(suiteOf("add",
		"def add(a: int, b: int) -> int:\n    return a + b\n",
		"def test_add() -> None:\n    assert 1 + 1 == 2\n",
	))
	script.Append(suiteOf("sub",
		"def sub(a: int, b: int) -> int:\n    return a - b",
		"def test_sub() -> None:\n    assert 2 - 1 == 1",
	))
	pkg.Scripts = append(pkg.Scripts, script)

	if err := pkg.WriteFiles(); err != nil {
		t.Fatal(err)
	}

	content, err := os.ReadFile(filepath.Join(
		pkg.WorkspaceDir, "testpackage", "main.py",
	))
	if err != nil {
		t.Fatal(err)
	}
	expected := "def add(a: int, b: int) -> int:\n    return a + b\n\ndef sub(a: int, b: int) -> int:\n    return a - b\n"
	if string(content) != expected {
		t.Fatalf("got %q", content)
	}

	tests, err := os.ReadFile(filepath.Join(
		pkg.WorkspaceDir, "tests", "test_main.py",
	))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(tests), "def test_add") ||
		!strings.Contains(string(tests), "def test_sub") {
		t.Fatalf("got %q", tests)
	}
	if !strings.Contains(string(tests), "== 2\n\ndef test_sub") {
		t.Fatalf("got %q", tests)
	}
}

func TestWriteFilesRejectsBrokenUnit(t *testing.T) {
	dir := t.TempDir()
	pkg := newTestPackage(t, dir)

	script := &suites.Script{
		ModuleName: "main",
	}
	script.Append(suiteOf("broken",
		"def broken(:\n",
		"def test_broken() -> None:\n    pass\n",
	))
	pkg.Scripts = append(pkg.Scripts, script)

	err := pkg.WriteFiles()
	if !errors.Is(err, pysrc.ErrSyntax) {
		t.Fatalf("got %v", err)
	}
	path := filepath.Join(pkg.WorkspaceDir, "testpackage", "main.py")
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("got %v", err)
	}
}

func fakePytest(t *testing.T, script string) {
	t.Helper()
	binDir := t.TempDir()
	path := filepath.Join(binDir, "pytest")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", binDir)
}

func TestExecuteTests(t *testing.T) {
	dir := t.TempDir()
	pkg := newTestPackage(t, dir)
	fakePytest(t, `echo "2 passed"; exit 0`)

	result, err := pkg.ExecuteTests(t.Context())
	if err != nil {
		t.Fatal(err)
	}
	if !result.Passed() {
		t.Fatalf("got %v", result)
	}
	if !strings.Contains(result.Stdout, "2 passed") {
		t.Fatalf("got %q", result.Stdout)
	}
}

func TestExecuteTestsFailing(t *testing.T) {
	dir := t.TempDir()
	pkg := newTestPackage(t, dir)
	fakePytest(t, `echo "1 failed"; echo "boom" >&2; exit 1`)

	result, err := pkg.ExecuteTests(t.Context())
	if err != nil {
		t.Fatal(err)
	}
	if result.Passed() {
		t.Fatalf("got %v", result)
	}
	if result.ExitCode != 1 {
		t.Fatalf("got %d", result.ExitCode)
	}
	if !strings.Contains(result.Stderr, "boom") {
		t.Fatalf("got %q", result.Stderr)
	}
}

func TestExecuteTestsSpawnError(t *testing.T) {
	dir := t.TempDir()
	pkg := newTestPackage(t, dir)
	t.Setenv("PATH", t.TempDir())

	result, err := pkg.ExecuteTests(t.Context())
	if err == nil {
		t.Fatal("expected error")
	}
	if result != nil {
		t.Fatalf("got %v", result)
	}
}
