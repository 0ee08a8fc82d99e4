package generators

import (
	"context"
	"fmt"
	"strings"

	"github.com/reusee/aimaker/vars"
)

type Generator interface {
	Args() GeneratorArgs
	CountTokens(string) (int, error)
	Complete(ctx context.Context, messages []Message) (string, error)
}

type GetGenerator func(name string) (Generator, error)

func (Module) GetGenerator(
	newOpenAI NewOpenAI,
	newDeepseek NewDeepseek,
	newOpenRouter NewOpenRouter,
	getSpecs GetGeneratorSpecs,
) GetGenerator {
	return func(name string) (Generator, error) {

		// user-defined first
		specs, err := getSpecs()
		if err != nil {
			return nil, err
		}
		for _, spec := range specs {
			if spec.Name != name {
				continue
			}
			switch strings.ToLower(spec.Type) {
			case "openai", "open-ai", "open_ai":
				return newOpenAI(spec.GeneratorArgs, spec.APIKey), nil
			case "deepseek":
				return newDeepseek(spec.GeneratorArgs), nil
			case "open-router", "open_router", "openrouter":
				return newOpenRouter(spec.GeneratorArgs), nil
			case "ollama":
				spec.GeneratorArgs.BaseURL = "http://127.0.0.1:11434/v1"
				return newOpenAI(spec.GeneratorArgs, ""), nil
			default:
				return nil, fmt.Errorf("unknown generator type: %q", spec.Type)
			}
		}

		// ollama
		provider, modelName, ok := strings.Cut(name, ":")
		if ok && provider == "ollama" {
			return newOpenAI(GeneratorArgs{
				BaseURL: "http://127.0.0.1:11434/v1",
				Model:   modelName,
			}, ""), nil
		}

		// built-ins
		switch name {

		case "gpt-4":
			return newOpenAI(GeneratorArgs{
				BaseURL:       "https://api.openai.com/v1",
				Model:         "gpt-4",
				ContextTokens: 8 * K,
				Temperature:   vars.PtrTo(float32(0.5)),
			}, ""), nil

		case "gpt-4o":
			return newOpenAI(GeneratorArgs{
				BaseURL:           "https://api.openai.com/v1",
				Model:             "gpt-4o",
				ContextTokens:     128 * K,
				MaxGenerateTokens: vars.PtrTo(16 * K),
				Temperature:       vars.PtrTo(float32(0.5)),
			}, ""), nil

		}

		return nil, fmt.Errorf("invalid model: %s", name)
	}
}
