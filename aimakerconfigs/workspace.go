package aimakerconfigs

import (
	"github.com/reusee/aimaker/cmds"
	"github.com/reusee/aimaker/configs"
	"github.com/reusee/aimaker/vars"
)

type WorkspaceDir string

var workspaceDirFlag = cmds.Var[string]("-workspace")

func (Module) WorkspaceDir(
	loader configs.Loader,
) WorkspaceDir {
	return vars.FirstNonZero(
		WorkspaceDir(*workspaceDirFlag),
		configs.First[WorkspaceDir](loader, "workspace_dir"),
		WorkspaceDir("workspace"),
	)
}

type BackupDir string

var backupDirFlag = cmds.Var[string]("-backup")

func (Module) BackupDir(
	loader configs.Loader,
) BackupDir {
	return vars.FirstNonZero(
		BackupDir(*backupDirFlag),
		configs.First[BackupDir](loader, "backup_dir"),
		BackupDir("backup"),
	)
}

type PackageName string

var packageNameFlag = cmds.Var[string]("-package")

func (Module) PackageName(
	loader configs.Loader,
) PackageName {
	return vars.FirstNonZero(
		PackageName(*packageNameFlag),
		configs.First[PackageName](loader, "package_name"),
		PackageName("testpackage"),
	)
}

type ModuleName string

func (Module) ModuleName(
	loader configs.Loader,
) ModuleName {
	return vars.FirstNonZero(
		configs.First[ModuleName](loader, "module_name"),
		ModuleName("main"),
	)
}
