package workspaces

import (
	"context"

	"github.com/reusee/aimaker/suites"
)

// AddFunction generates one function suite for the goal and records it in
// the script for the configured module name. All goals of a run share that
// script, so each one adds to the module file instead of replacing it.
// Nothing is written to disk until WriteFiles.
func (p *Package) AddFunction(ctx context.Context, goal string) error {
	suite, err := p.AddSuite()(ctx, goal, p.PackageName, p.ModuleName)
	if err != nil {
		return err
	}
	p.script(p.ModuleName).Append(suite)
	return nil
}

func (p *Package) script(moduleName string) *suites.Script {
	for _, script := range p.Scripts {
		if script.ModuleName == moduleName {
			return script
		}
	}
	script := &suites.Script{
		ModuleName: moduleName,
	}
	p.Scripts = append(p.Scripts, script)
	return script
}
