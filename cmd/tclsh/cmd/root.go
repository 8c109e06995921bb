//
// Copyright 2011-2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

// quiet suppresses the '[<code>] ' prefix that normally precedes a
// non-empty result, leaving just the result text.
var quiet bool

var rootCmd = &cobra.Command{
	Use:   "tclsh",
	Short: "tclsh runs scripts in the embedded command language",
	Long: `tclsh is a host shell around the tcl package's interpreter: it
loads scripts from disk, evaluates one-liners given on the command
line, and offers a bare read-eval-print loop over standard input.`,
}

// Execute runs the root command, exiting with status 1 on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	log.SetFlags(0)
	log.SetPrefix("tclsh: ")

	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "print only the result, without the '[<code>]' prefix")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "eval",
		Title: "Evaluation:",
	})

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(replCmd)
}
