//
// Copyright 2011-2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package tcl

import "io"

// Interpreter holds all state for one instance of the language: the call
// frame stack, the command registry, and the result of the last
// evaluation. An Interpreter is not safe for concurrent use — run one per
// goroutine if you need several scripts evaluated at once.
type Interpreter struct {
	level    int                // recursion depth, informational only
	frames   []*frame           // call stack, frames[0] is the global frame
	commands map[string]command // registered commands
	result   string             // result of the last command
	out      io.Writer          // destination for 'puts'
}

// NewInterpreter creates an interpreter with one global frame and the
// core commands pre-registered.
func NewInterpreter(out io.Writer) *Interpreter {
	i := &Interpreter{
		frames:   make([]*frame, 0, 4),
		commands: make(map[string]command),
		out:      out,
	}
	i.pushFrame()
	i.registerCoreCommands()
	return i
}

// Write implements io.Writer so built-in commands (puts) can write
// through the interpreter itself (fmt.Fprintf(i, ...)), mirroring the
// common Tcl-core idiom of routing output through the interpreter
// rather than a global; this lets a host redirect output without the
// core package doing any file I/O of its own.
func (i *Interpreter) Write(p []byte) (int, error) {
	if i.out == nil {
		return len(p), nil
	}
	return i.out.Write(p)
}

// Result returns the result string produced by the most recent eval.
func (i *Interpreter) Result() string {
	return i.result
}

// registerCoreCommands registers the built-in commands described in the
// language specification.
func (i *Interpreter) registerCoreCommands() {
	for _, name := range []string{"+", "-", "*", "/", ">", ">=", "<", "<=", "==", "!="} {
		i.RegisterCommand(name, commandMath, name)
	}
	i.RegisterCommand("set", commandSet, nil)
	i.RegisterCommand("puts", commandPuts, nil)
	i.RegisterCommand("if", commandIf, nil)
	i.RegisterCommand("while", commandWhile, nil)
	i.RegisterCommand("break", commandBreak, nil)
	i.RegisterCommand("continue", commandContinue, nil)
	i.RegisterCommand("return", commandReturn, nil)
	i.RegisterCommand("proc", commandProc, nil)
}
