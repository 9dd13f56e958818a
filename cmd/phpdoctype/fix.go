package main

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/wudi/phpdoctype/walker"
)

var fixCommand = &cli.Command{
	Name:      "fix",
	Usage:     "apply every fixable finding's proposed style correction in place",
	ArgsUsage: "<path>...",
	Flags: []cli.Flag{
		&cli.BoolFlag{Name: "strict", Usage: "enable every check, not just the default subset"},
		&cli.StringFlag{Name: "config", Usage: "path to a YAML config file"},
		&cli.BoolFlag{Name: "dry-run", Usage: "print what would change without writing files"},
	},
	Action: fixAction,
}

func fixAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	lib, err := cfg.LoadHierarchy()
	if err != nil {
		return err
	}

	paths := cmd.Args().Slice()
	if len(paths) == 0 {
		paths = []string{"."}
	}

	dryRun := cmd.Bool("dry-run")
	var fixedCount int

	for _, root := range paths {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !strings.HasSuffix(path, ".php") {
				return nil
			}
			source, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			w := walker.New(cfg, lib)
			shim := w.Walk(string(source))
			fixes := shim.AllFixes()
			if len(fixes) == 0 {
				return nil
			}

			fixedCount++
			fixed := fixes.Apply(string(source))
			if dryRun {
				fmt.Printf("%s: %d fix(es) would be applied\n", path, len(fixes))
				return nil
			}
			fmt.Printf("%s: applied %d fix(es)\n", path, len(fixes))
			return os.WriteFile(path, []byte(fixed), 0o644)
		})
		if err != nil {
			return err
		}
	}

	fmt.Printf("%d file(s) touched\n", fixedCount)
	return nil
}
