package main

import (
	"io"
	"os"
	"strings"

	"github.com/reusee/aimaker/cmds"
	"golang.org/x/term"
)

var goalArgs = cmds.Collect[string]("-goal")

const defaultGoal = "list all files in a directory"

// getGoals merges -goal flags with goals piped on stdin, one per line.
func getGoals() []string {
	goals := *goalArgs
	for line := range strings.Lines(string(getStdinContent())) {
		line = strings.TrimSpace(line)
		if line != "" {
			goals = append(goals, line)
		}
	}
	if len(goals) == 0 {
		goals = []string{defaultGoal}
	}
	return goals
}

func getStdinContent() (ret []byte) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return nil
	}
	ret, err := io.ReadAll(os.Stdin)
	ce(err)
	return
}
