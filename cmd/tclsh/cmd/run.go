//
// Copyright 2011-2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
	"github.com/stytri/picol/tcl"
	"golang.org/x/sync/errgroup"
)

var (
	configPath string
	varsFlag   []string
)

var runCmd = &cobra.Command{
	Use:     "run <pattern...>",
	GroupID: "eval",
	Short:   "Run one or more scripts, expanding glob patterns",
	Long: `run resolves each argument as a doublestar glob pattern, then
evaluates every matched file. Each file gets its own interpreter and
files run concurrently, so one script's variables never leak into
another's.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVar(&configPath, "config", "", "YAML file of startup variables shared by every run")
	runCmd.Flags().StringArrayVar(&varsFlag, "var", nil, "name=value, pre-bound in every interpreter (repeatable)")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadStartupConfig(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	extra, err := parseVarFlags(varsFlag)
	if err != nil {
		return err
	}
	for name, value := range extra {
		cfg.Variables[name] = value
	}

	files, err := expandPatterns(args)
	if err != nil {
		return err
	}

	var g errgroup.Group
	for _, file := range files {
		file := file
		g.Go(func() error {
			return runFile(file, cfg)
		})
	}
	return g.Wait()
}

// expandPatterns resolves every argument as a doublestar glob pattern
// against the current directory. A pattern matching nothing is logged
// and skipped rather than treated as an error.
func expandPatterns(patterns []string) ([]string, error) {
	var files []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			log.Printf("pattern %q matched no files", pattern)
			continue
		}
		files = append(files, matches...)
	}
	return files, nil
}

// runFile evaluates one script file in its own interpreter, seeded
// with cfg's startup variables, and prints its outcome.
func runFile(path string, cfg *startupConfig) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	interp := tcl.NewInterpreter(os.Stdout)
	for name, value := range cfg.Variables {
		interp.SetVariable(name, value)
	}

	code := tcl.Eval(interp, string(source))
	if !quiet {
		fmt.Printf("%s: ", path)
	}
	printResult(code, interp.Result())
	if code == tcl.ERR {
		return fmt.Errorf("%s: %s", path, interp.Result())
	}
	return nil
}
