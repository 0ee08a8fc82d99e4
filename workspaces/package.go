package workspaces

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/reusee/dscope"
	"github.com/reusee/aimaker/aimakerconfigs"
	"github.com/reusee/aimaker/logs"
	"github.com/reusee/aimaker/suites"
)

// Package is a scratch Python package living under WorkspaceDir. Generated
// scripts accumulate in Scripts and are materialized by WriteFiles.
type Package struct {
	WorkspaceDir string
	BackupDir    string
	PackageName  string
	ModuleName   string
	Scripts      []*suites.Script

	AddSuite dscope.Inject[suites.AddFunction]
	Logger   dscope.Inject[logs.Logger]
}

type NewPackage func() (*Package, error)

func (Module) NewPackage(
	inject dscope.InjectStruct,
	workspaceDir aimakerconfigs.WorkspaceDir,
	backupDir aimakerconfigs.BackupDir,
	packageName aimakerconfigs.PackageName,
	moduleName aimakerconfigs.ModuleName,
) NewPackage {
	return func() (*Package, error) {
		pkg := &Package{
			WorkspaceDir: string(workspaceDir),
			BackupDir:    string(backupDir),
			PackageName:  string(packageName),
			ModuleName:   string(moduleName),
		}
		inject(pkg)
		if err := pkg.initWorkspace(); err != nil {
			return nil, err
		}
		return pkg, nil
	}
}

// initWorkspace prepares an empty workspace. Leftovers from a previous run
// are moved into a timestamped backup directory, never deleted.
func (p *Package) initWorkspace() error {

	if err := os.MkdirAll(p.WorkspaceDir, 0755); err != nil {
		return fmt.Errorf("init workspace: %w", err)
	}

	entries, err := os.ReadDir(p.WorkspaceDir)
	if err != nil {
		return fmt.Errorf("init workspace: %w", err)
	}
	if len(entries) > 0 {
		backupDir := filepath.Join(
			p.BackupDir,
			time.Now().Format("20060102-150405"),
		)
		if err := os.MkdirAll(p.BackupDir, 0755); err != nil {
			return fmt.Errorf("init workspace: %w", err)
		}
		// two runs in the same second must not merge their backups
		if err := os.Mkdir(backupDir, 0755); err != nil {
			return fmt.Errorf("init workspace: %w", err)
		}
		for _, entry := range entries {
			source := filepath.Join(p.WorkspaceDir, entry.Name())
			destination := filepath.Join(backupDir, entry.Name())
			if err := os.Rename(source, destination); err != nil {
				return fmt.Errorf("init workspace: %w", err)
			}
		}
		p.Logger().Info("workspace backed up",
			"dir", backupDir,
		)
	}

	for _, dir := range []string{
		filepath.Join(p.WorkspaceDir, p.PackageName),
		filepath.Join(p.WorkspaceDir, "tests"),
	} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("init workspace: %w", err)
		}
		initPath := filepath.Join(dir, "__init__.py")
		if err := os.WriteFile(initPath, nil, 0644); err != nil {
			return fmt.Errorf("init workspace: %w", err)
		}
	}

	return nil
}
