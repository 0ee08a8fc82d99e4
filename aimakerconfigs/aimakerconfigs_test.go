package aimakerconfigs

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/reusee/aimaker/configs"
)

func writeConfig(t *testing.T, content string) configs.Loader {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "aimaker.cue")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return configs.NewLoader([]string{path}, schema)
}

func TestWorkspaceDefaults(t *testing.T) {
	var module Module
	loader := configs.NewLoader(nil, schema)
	if dir := module.WorkspaceDir(loader); dir != "workspace" {
		t.Fatalf("got %v", dir)
	}
	if dir := module.BackupDir(loader); dir != "backup" {
		t.Fatalf("got %v", dir)
	}
	if name := module.PackageName(loader); name != "testpackage" {
		t.Fatalf("got %v", name)
	}
	if name := module.ModuleName(loader); name != "main" {
		t.Fatalf("got %v", name)
	}
}

func TestWorkspaceFromConfig(t *testing.T) {
	var module Module
	loader := writeConfig(t, `
workspace_dir: "scratch"
backup_dir:    "old"
package_name:  "generated"
module_name:   "funcs"
`)
	if dir := module.WorkspaceDir(loader); dir != "scratch" {
		t.Fatalf("got %v", dir)
	}
	if dir := module.BackupDir(loader); dir != "old" {
		t.Fatalf("got %v", dir)
	}
	if name := module.PackageName(loader); name != "generated" {
		t.Fatalf("got %v", name)
	}
	if name := module.ModuleName(loader); name != "funcs" {
		t.Fatalf("got %v", name)
	}
}

func TestMaxTokens(t *testing.T) {
	var module Module

	loader := configs.NewLoader(nil, schema)
	if n := module.MaxTokens(loader); n != math.MaxInt {
		t.Fatalf("got %v", n)
	}

	loader = writeConfig(t, `max_context_tokens: 4096`)
	if n := module.MaxTokens(loader); n != 4096 {
		t.Fatalf("got %v", n)
	}

	*maxTokensFlag = 1024
	defer func() {
		*maxTokensFlag = 0
	}()
	if n := module.MaxTokens(loader); n != 1024 {
		t.Fatalf("got %v", n)
	}
}
