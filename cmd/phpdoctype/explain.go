package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/chzyer/readline"
	"github.com/urfave/cli/v3"

	"github.com/wudi/phpdoctype"
	"github.com/wudi/phpdoctype/hierarchy"
	"github.com/wudi/phpdoctype/typeparse"
)

var explainCommand = &cli.Command{
	Name:  "explain",
	Usage: "interactively canonicalize type-expression strings",
	Action: func(ctx context.Context, cmd *cli.Command) error {
		return runExplainREPL()
	},
}

// runExplainREPL reads one type-expression string per line and prints
// its canonical form, proposed fix, and PHP-FIG status, exercising
// typeparse directly without needing a whole source file to feed the
// DeclarationWalker.
func runExplainREPL() error {
	rl, err := readline.New("phpdoctype> ")
	if err != nil {
		return err
	}
	defer rl.Close()

	scope := phpdoctype.NewRootScope()
	oracle := hierarchy.New(nil, nil)

	for {
		line, err := rl.Readline()
		if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
			return nil
		}
		if err != nil {
			return err
		}
		if line == "" {
			continue
		}
		explainLine(scope, oracle, line)
	}
}

func explainLine(scope *phpdoctype.Scope, oracle *hierarchy.Oracle, line string) {
	result := typeparse.ParseTypeAndName(scope, oracle, line, phpdoctype.WantType, false)
	if result.Failed() {
		fmt.Printf("parse failed at: %q\n", result.Rem)
		return
	}
	fmt.Printf("canonical: %s\n", *result.Type)
	if result.Fixed != nil {
		fmt.Printf("fixed:     %s\n", *result.Fixed)
	}
	fmt.Printf("phpfig:    %v\n", result.PHPFig)
}
