//
// Copyright 2011-2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/stytri/picol/tcl"
)

var evalCmd = &cobra.Command{
	Use:     "eval <script>",
	GroupID: "eval",
	Short:   "Evaluate a single script given on the command line",
	Args:    cobra.MinimumNArgs(1),
	RunE:    runEval,
}

func runEval(cmd *cobra.Command, args []string) error {
	source := strings.Join(args, " ")
	interp := tcl.NewInterpreter(os.Stdout)
	code := tcl.Eval(interp, source)
	printResult(code, interp.Result())
	if code == tcl.ERR {
		os.Exit(1)
	}
	return nil
}
