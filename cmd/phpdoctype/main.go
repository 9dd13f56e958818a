// Command phpdoctype checks whether a PHP codebase's PHPDoc type
// annotations agree with its native type declarations.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/wudi/phpdoctype/version"
)

func main() {
	app := &cli.Command{
		Name:  "phpdoctype",
		Usage: "checks PHPDoc type annotations against native PHP types",
		Commands: []*cli.Command{
			checkCommand,
			fixCommand,
			explainCommand,
			versionCommand,
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var versionCommand = &cli.Command{
	Name:  "version",
	Usage: "print the version and exit",
	Action: func(ctx context.Context, cmd *cli.Command) error {
		fmt.Println(version.Version())
		return nil
	},
}
