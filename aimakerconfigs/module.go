package aimakerconfigs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/aimaker/configs"
)

type Module struct {
	dscope.Module
	Configs configs.Module
}
