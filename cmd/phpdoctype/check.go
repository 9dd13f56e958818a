package main

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v3"

	"github.com/wudi/phpdoctype/cache"
	"github.com/wudi/phpdoctype/config"
	"github.com/wudi/phpdoctype/hierarchy"
	"github.com/wudi/phpdoctype/report"
	"github.com/wudi/phpdoctype/walker"
)

var checkCommand = &cli.Command{
	Name:      "check",
	Usage:     "analyze PHP files for PHPDoc/native type disagreements",
	ArgsUsage: "<path>...",
	Flags: []cli.Flag{
		&cli.BoolFlag{Name: "strict", Usage: "enable every check, not just the default subset"},
		&cli.StringFlag{Name: "config", Usage: "path to a YAML config file (see config.Load)"},
		&cli.BoolFlag{Name: "debug", Usage: "propagate to Config.DebugMode: surface walker structural failures instead of swallowing them"},
		&cli.StringFlag{Name: "cache-dsn", Usage: "driver://dsn for a shared cache backend (mysql://, postgres://); default is in-process only"},
	},
	Action: checkAction,
}

func checkAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	store, err := resolveCache(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	lib, err := cfg.LoadHierarchy()
	if err != nil {
		return err
	}

	paths := cmd.Args().Slice()
	if len(paths) == 0 {
		paths = []string{"."}
	}

	start := time.Now()
	var fileCount int
	var byteCount int64
	var errorCount int
	colorize := isatty.IsTerminal(os.Stdout.Fd())

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
			fileCount++
			byteCount += int64(len(source))

			findings, err := analyzeFile(cfg, lib, store, path, source)
			if err != nil {
				return err
			}
			for _, f := range findings {
				printFinding(path, f, colorize)
				if f.Severity == report.SeverityError {
					errorCount++
				}
			}
			return nil
		})
		if err != nil {
			return err
		}
	}

	fmt.Printf("analyzed %d files (%s) in %s\n",
		fileCount, humanize.Bytes(uint64(byteCount)), time.Since(start).Round(time.Millisecond))

	if errorCount > 0 {
		os.Exit(1)
	}
	return nil
}

// analyzeFile checks the cache before walking source, keyed by its
// content hash, and records the walk's findings back into the cache.
func analyzeFile(cfg config.Config, lib hierarchy.Library, store cache.Cache, path string, source []byte) ([]report.Finding, error) {
	hash := contentHash(source)
	if cached, ok, err := store.Get(hash); err != nil {
		return nil, err
	} else if ok {
		return cached.Findings, nil
	}

	w := walker.New(cfg, lib)
	shim := w.Walk(string(source))
	findings := shim.Findings()

	if err := store.Put(hash, &cache.CachedResult{Findings: findings}); err != nil {
		return nil, err
	}
	return findings, nil
}

func contentHash(source []byte) string {
	sum := sha256.Sum256(source)
	return hex.EncodeToString(sum[:])
}

func printFinding(path string, f report.Finding, colorize bool) {
	severity := "warning"
	if f.Severity == report.SeverityError {
		severity = "error"
	}
	if colorize && f.Severity == report.SeverityError {
		fmt.Printf("%s:%d: \x1b[31m%s\x1b[0m [%s] %s\n", path, f.Position.Line, severity, f.Code, f.Message)
		return
	}
	fmt.Printf("%s:%d: %s [%s] %s\n", path, f.Position.Line, severity, f.Code, f.Message)
}

func resolveConfig(cmd *cli.Command) (config.Config, error) {
	if path := cmd.String("config"); path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			return cfg, err
		}
		if cmd.Bool("debug") {
			cfg.DebugMode = true
		}
		return cfg, nil
	}
	cfg := config.Default()
	if cmd.Bool("strict") {
		cfg = config.Strict()
	}
	cfg.DebugMode = cmd.Bool("debug")
	return cfg, nil
}

func resolveCache(cmd *cli.Command) (cache.Cache, error) {
	dsn := cmd.String("cache-dsn")
	if dsn == "" {
		return cache.NewMemCache(), nil
	}
	parts := strings.SplitN(dsn, "://", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("--cache-dsn must be driver://dsn, got %q", dsn)
	}
	return cache.NewDSNCache(parts[0], parts[1])
}
