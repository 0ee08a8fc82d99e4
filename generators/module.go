package generators

import (
	"github.com/reusee/dscope"
	"github.com/reusee/aimaker/configs"
	"github.com/reusee/aimaker/logs"
	"github.com/reusee/aimaker/nets"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Nets    nets.Module
	Logs    logs.Module
}
