package workspaces

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/reusee/aimaker/pysrc"
	"github.com/reusee/aimaker/suites"
)

// WriteFiles materializes every script as a module file plus its test
// file. Units are re-validated before anything touches the disk, so a
// script with a broken unit leaves no files behind.
func (p *Package) WriteFiles() error {
	for _, script := range p.Scripts {
		if err := p.writeScript(script); err != nil {
			return err
		}
	}
	return nil
}

func (p *Package) writeScript(script *suites.Script) error {

	var functions, tests []string
	for _, suite := range script.Suites {
		if _, err := pysrc.SingleDefName(suite.Function.Content); err != nil {
			return fmt.Errorf("function %s: %w", suite.Function.Name, err)
		}
		if _, err := pysrc.SingleDefName(suite.Test.Content); err != nil {
			return fmt.Errorf("test %s: %w", suite.Test.Name, err)
		}
		functions = append(functions, suite.Function.Content)
		tests = append(tests, suite.Test.Content)
	}

	scriptPath := filepath.Join(
		p.WorkspaceDir, p.PackageName, script.ModuleName+".py",
	)
	if err := writeUnits(scriptPath, functions); err != nil {
		return err
	}

	testPath := filepath.Join(
		p.WorkspaceDir, "tests", "test_"+script.ModuleName+".py",
	)
	return writeUnits(testPath, tests)
}

// writeUnits joins units with a blank line so adjacent defs stay separate
// statements.
func writeUnits(path string, units []string) error {
	for i, unit := range units {
		units[i] = strings.TrimRight(unit, "\n")
	}
	content := strings.Join(units, "\n\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
