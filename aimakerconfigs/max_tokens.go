package aimakerconfigs

import (
	"math"

	"github.com/reusee/aimaker/cmds"
	"github.com/reusee/aimaker/configs"
	"github.com/reusee/aimaker/vars"
)

type MaxTokens int

var maxTokensFlag = cmds.Var[int]("-max-tokens")

func (Module) MaxTokens(
	loader configs.Loader,
) MaxTokens {
	maxTokens := math.MaxInt

	// flag
	if *maxTokensFlag != 0 {
		maxTokens = min(maxTokens, *maxTokensFlag)
	}

	// config
	if n := vars.FirstNonZero(
		configs.First[int](loader, "max_context_tokens"),
		configs.First[int](loader, "max_tokens"),
	); n != 0 {
		maxTokens = min(maxTokens, n)
	}

	return MaxTokens(maxTokens)
}
