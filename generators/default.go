package generators

import (
	"github.com/reusee/aimaker/cmds"
	"github.com/reusee/aimaker/configs"
	"github.com/reusee/aimaker/logs"
	"github.com/reusee/aimaker/vars"
)

type GetDefaultGenerator func() (Generator, error)

func (Module) GetDefaultGenerator(
	name DefaultModelName,
	get GetGenerator,
) GetDefaultGenerator {
	return func() (Generator, error) {
		return get(string(name))
	}
}

var (
	defaultModelName = cmds.Var[string]("-model")
)

type DefaultModelName string

type FallbackModelName string

func (Module) FallbackModelName() FallbackModelName {
	return "gpt-4"
}

func (Module) DefaultModelName(
	loader configs.Loader,
	fallback FallbackModelName,
	logger logs.Logger,
) (ret DefaultModelName) {
	defer func() {
		logger.Info("default model", "name", ret)
	}()
	return vars.FirstNonZero(
		DefaultModelName(*defaultModelName),
		configs.First[DefaultModelName](loader, "default_model"),
		configs.First[DefaultModelName](loader, "model"),
		DefaultModelName(fallback),
	)
}
