//
// Copyright 2011-2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/stytri/picol/tcl"
)

var replCmd = &cobra.Command{
	Use:     "repl",
	GroupID: "eval",
	Short:   "Start a read-eval-print loop over standard input",
	Long: `repl reads one line at a time from standard input, evaluates
it against a single persistent interpreter, and prints '[<code>]
<result>' for every non-empty result. State (variables, procedures)
carries from line to line for the life of the process.`,
	RunE: runRepl,
}

func runRepl(cmd *cobra.Command, args []string) error {
	interp := tcl.NewInterpreter(os.Stdout)
	scanner := bufio.NewScanner(os.Stdin)
	for {
		if !quiet {
			fmt.Print("tcl> ")
		}
		if !scanner.Scan() {
			break
		}
		code := tcl.Eval(interp, scanner.Text())
		printResult(code, interp.Result())
	}
	return scanner.Err()
}
