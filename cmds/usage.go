package cmds

import (
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	printCommands(p.commands, 0)
}

func printCommands(commands map[string]*Command, indent int) {
	// aliases point to the same *Command, print each once under its names
	printed := make(map[*Command][]string)
	for name, command := range commands {
		printed[command] = append(printed[command], name)
	}

	lines := make(map[string]*Command)
	for command, names := range printed {
		slices.Sort(names)
		lines[strings.Join(names, " | ")] = command
	}

	for _, head := range slices.Sorted(maps.Keys(lines)) {
		command := lines[head]
		fmt.Fprintf(os.Stderr, "%s%s", strings.Repeat("  ", indent), head)
		if command != nil && command.Description != "" {
			fmt.Fprintf(os.Stderr, "\t%s", command.Description)
		}
		fmt.Fprintln(os.Stderr)
		if command != nil && len(command.Subs) > 0 {
			printCommands(command.Subs, indent+1)
		}
	}
}
