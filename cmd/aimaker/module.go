package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/aimaker/workspaces"
)

type Module struct {
	dscope.Module
	Workspaces workspaces.Module
}
