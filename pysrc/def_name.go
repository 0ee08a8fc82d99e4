package pysrc

import (
	"context"
	"errors"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
)

// ErrNotExactlyOneDef reports that the source held zero or more than one
// function definition, counting nested defs.
var ErrNotExactlyOneDef = errors.New("not exactly one function definition")

// ErrSyntax reports that the source does not parse as Python.
var ErrSyntax = errors.New("python syntax error")

// SingleDefName parses code as Python source and returns the name of its
// sole def. Lambdas do not count; nested defs do.
func SingleDefName(code string) (string, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(python.GetLanguage())

	source := []byte(code)
	tree, err := parser.ParseCtx(context.Background(), nil, source)
	if err != nil {
		return "", fmt.Errorf("parse: %w", err)
	}
	defer tree.Close()

	var names []string
	var invalid bool
	var walk func(node *sitter.Node)
	walk = func(node *sitter.Node) {
		if invalid {
			return
		}
		if node.IsError() || node.IsMissing() {
			invalid = true
			return
		}
		if node.Type() == "function_definition" {
			if name := node.ChildByFieldName("name"); name != nil {
				names = append(names, name.Content(source))
			}
		}
		for i := 0; i < int(node.ChildCount()); i++ {
			walk(node.Child(i))
		}
	}
	walk(tree.RootNode())

	if invalid {
		return "", ErrSyntax
	}
	if len(names) != 1 {
		return "", fmt.Errorf("%w: found %d", ErrNotExactlyOneDef, len(names))
	}
	return names[0], nil
}
