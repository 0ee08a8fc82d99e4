package suites

import (
	"github.com/reusee/dscope"
	"github.com/reusee/aimaker/aimakerconfigs"
	"github.com/reusee/aimaker/debugs"
	"github.com/reusee/aimaker/generators"
	"github.com/reusee/aimaker/logs"
)

type Module struct {
	dscope.Module
	Configs    aimakerconfigs.Module
	Generators generators.Module
	Logs       logs.Module
	Debugs     debugs.Module
}
