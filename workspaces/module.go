package workspaces

import (
	"github.com/reusee/dscope"
	"github.com/reusee/aimaker/aimakerconfigs"
	"github.com/reusee/aimaker/logs"
	"github.com/reusee/aimaker/suites"
)

type Module struct {
	dscope.Module
	Configs aimakerconfigs.Module
	Logs    logs.Module
	Suites  suites.Module
}
