package suites

import (
	"context"
	"fmt"

	"github.com/reusee/aimaker/aimakerconfigs"
	"github.com/reusee/aimaker/cmds"
	"github.com/reusee/aimaker/debugs"
	"github.com/reusee/aimaker/generators"
	"github.com/reusee/aimaker/logs"
	"github.com/reusee/aimaker/prompts"
	"github.com/reusee/aimaker/pysrc"
)

var tapOnError = cmds.Switch("-tap")

// GenerateCode drives one completion call and extracts a single named
// function from the fenced python block in the response.
type GenerateCode func(ctx context.Context, messages []generators.Message) (*Function, error)

func (Module) GenerateCode(
	getGenerator generators.GetDefaultGenerator,
	maxTokens aimakerconfigs.MaxTokens,
	logger logs.Logger,
	tap debugs.Tap,
) GenerateCode {
	return func(ctx context.Context, messages []generators.Message) (*Function, error) {

		generator, err := getGenerator()
		if err != nil {
			return nil, err
		}

		// prompt budget
		budget := int(maxTokens)
		if n := generator.Args().ContextTokens; n > 0 {
			budget = min(budget, n)
		}
		var promptText string
		for _, message := range messages {
			promptText += message.Content
		}
		promptTokens, err := generator.CountTokens(promptText)
		if err != nil {
			return nil, err
		}
		if promptTokens > budget {
			return nil, fmt.Errorf("prompt too large: %d tokens, limit %d", promptTokens, budget)
		}

		response, err := generator.Complete(ctx, messages)
		if err != nil {
			return nil, err
		}

		script := pysrc.ExtractSubstring(response, "```python", "```")

		name, err := pysrc.SingleDefName(script)
		if err != nil {
			logger.ErrorContext(ctx, "extract function name",
				"error", err,
				"script", script,
			)
			if *tapOnError {
				tap(ctx, "generate code", map[string]any{
					"response": response,
					"script":   script,
					"error":    err,
				})
			}
			return nil, logs.WrapSpan(ctx, fmt.Errorf("generated code: %w", err))
		}

		logger.InfoContext(ctx, "generated python function",
			"name", name,
		)
		return &Function{
			Name:    name,
			Content: script,
		}, nil
	}
}

type GenerateFunction func(ctx context.Context, goal string) (*Function, error)

func (Module) GenerateFunction(
	generateCode GenerateCode,
) GenerateFunction {
	return func(ctx context.Context, goal string) (*Function, error) {
		return generateCode(ctx, []generators.Message{
			{
				Role:    generators.RoleSystem,
				Content: prompts.PythonProgrammer,
			},
			{
				Role:    generators.RoleUser,
				Content: prompts.WriteFunction(goal),
			},
		})
	}
}

type GenerateTest func(ctx context.Context, function *Function, packageName string, moduleName string) (*Function, error)

func (Module) GenerateTest(
	generateCode GenerateCode,
	logger logs.Logger,
) GenerateTest {
	return func(ctx context.Context, function *Function, packageName string, moduleName string) (*Function, error) {
		test, err := generateCode(ctx, []generators.Message{
			{
				Role:    generators.RoleSystem,
				Content: prompts.PythonProgrammer,
			},
			{
				Role:    generators.RoleUser,
				Content: prompts.CodeToTest(packageName, moduleName, function.Content),
			},
			{
				Role:    generators.RoleUser,
				Content: prompts.WriteTest(function.Name),
			},
		})
		if err != nil {
			return nil, err
		}
		if expected := "test_" + function.Name; test.Name != expected {
			// the model is asked for this name but not forced; accept and warn
			logger.WarnContext(ctx, "test name mismatch",
				"want", expected,
				"got", test.Name,
			)
		}
		return test, nil
	}
}

// AddFunction generates a function for the goal, then a test for that
// function, strictly in sequence. A failure in either step aborts the
// suite; no partial suite is produced.
type AddFunction func(ctx context.Context, goal string, packageName string, moduleName string) (*Suite, error)

func (Module) AddFunction(
	newSpan logs.NewSpan,
	generateFunction GenerateFunction,
	generateTest GenerateTest,
) AddFunction {
	return func(ctx context.Context, goal string, packageName string, moduleName string) (*Suite, error) {
		ctx, _ = newSpan(ctx, "")

		function, err := generateFunction(ctx, goal)
		if err != nil {
			return nil, err
		}
		test, err := generateTest(ctx, function, packageName, moduleName)
		if err != nil {
			return nil, err
		}
		return &Suite{
			Function: function,
			Test:     test,
		}, nil
	}
}
