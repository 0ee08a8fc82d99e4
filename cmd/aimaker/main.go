package main

import (
	"context"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/aimaker/cmds"
	"github.com/reusee/aimaker/logs"
	"github.com/reusee/aimaker/modes"
	"github.com/reusee/aimaker/procs"
	"github.com/reusee/aimaker/workspaces"
)

func main() {
	cmds.Execute(os.Args[1:])
	ctx := context.Background()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		logger logs.Logger,
		newPackage workspaces.NewPackage,
	) {

		pkg, err := newPackage()
		ce(err)

		goals := getGoals()
		logger.InfoContext(ctx, "goals",
			"count", len(goals),
		)

		var steps procs.Procs[context.Context]
		for _, goal := range goals {
			steps = append(steps, procs.Func[context.Context](
				func(ctx context.Context) (procs.Proc[context.Context], error) {
					return nil, pkg.AddFunction(ctx, goal)
				},
			))
		}

		var result *workspaces.TestResult
		steps = append(steps, procs.Func[context.Context](
			func(ctx context.Context) (procs.Proc[context.Context], error) {
				var err error
				result, err = pkg.ExecuteTests(ctx)
				return nil, err
			},
		))

		ce(procs.Exec(ctx, steps))

		if !result.Passed() {
			os.Stderr.WriteString(result.Stderr)
			os.Exit(result.ExitCode)
		}

	})

}
