//
// Copyright 2011-2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

// Command tclsh is a host shell around the tcl package's interpreter.
package main

import "github.com/stytri/picol/cmd/tclsh/cmd"

func main() {
	cmd.Execute()
}
