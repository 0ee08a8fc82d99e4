package nets

import (
	"github.com/reusee/dscope"
	"github.com/reusee/aimaker/configs"
	"github.com/reusee/aimaker/logs"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
}
