//
// Copyright 2011-2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package tcl

// Eval interprets source against interp, returning the resulting code.
// interp.Result() holds the last command's result string afterward,
// regardless of which code was returned.
//
// Eval is fully re-entrant: the only state it shares across recursive
// calls is interp itself (its frames, its commands, its result). Nested
// evaluations — command substitution, if/while bodies, procedure bodies
// — communicate solely through that shared Interpreter and the codes
// they return.
func Eval(interp *Interpreter, source string) Code {
	interp.level++
	defer func() { interp.level-- }()

	interp.result = ""
	p := NewParser(source)
	var argv []string

loop:
	for {
		prevKind := p.Kind
		p.Next()
		w := p.Value()

		switch p.Kind {
		case VAR:
			v, ok := interp.GetVariable(w)
			if !ok {
				interp.result = "No such variable '" + w + "'"
				return ERR
			}
			w = v
		case CMD:
			code := Eval(interp, w)
			if code != OK {
				return code
			}
			w = interp.result
		case ESC:
			w = unescape(w)
		case STR:
			// literal bytes, no substitution
		case SEP:
			continue loop
		case EOL:
			if len(argv) > 0 {
				result, code := interp.invoke(argv)
				interp.result = result
				argv = nil
				if code != OK {
					return code
				}
			}
			continue loop
		case EOF:
			break loop
		}

		if prevKind == SEP || prevKind == EOL {
			argv = append(argv, w)
		} else if len(argv) == 0 {
			// Only reachable on malformed streams where the first
			// non-separator token doesn't start a new word; the
			// outcome here is unspecified.
			argv = append(argv, w)
		} else {
			argv[len(argv)-1] += w
		}
	}
	return OK
}

// invoke resolves argv[0] in the registry and calls its handler.
func (i *Interpreter) invoke(argv []string) (string, Code) {
	name := argv[0]
	cmd, ok := i.getCommand(name)
	if !ok {
		return "No such command '" + name + "'", ERR
	}
	return cmd.handler(i, argv, cmd.data)
}
