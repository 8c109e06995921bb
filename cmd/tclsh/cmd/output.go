//
// Copyright 2011-2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package cmd

import (
	"fmt"

	"github.com/stytri/picol/tcl"
)

// printResult prints an interpreter's final code and result per the
// host contract: '[<code>] <result>', or just the result under
// --quiet. Nothing is printed for an empty result.
func printResult(code tcl.Code, result string) {
	if result == "" {
		return
	}
	if quiet {
		fmt.Println(result)
		return
	}
	fmt.Printf("[%s] %s\n", code, result)
}
