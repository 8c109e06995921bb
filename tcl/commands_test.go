//
// Copyright 2011-2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package tcl

import "testing"

func TestCommandSet(t *testing.T) {
	interp := NewInterpreter(nil)
	code := Eval(interp, "set foo bar")
	if code != OK {
		t.Error("failed to invoke command set")
	}
	if interp.result != "bar" {
		t.Error("set failed to affect result of interpreter")
	}
	val, ok := interp.GetVariable("foo")
	if !ok {
		t.Error("failed to get variable foo")
	}
	if val != "bar" {
		t.Errorf("unexpected value '%s' for variable foo", val)
	}
}

func TestCommandSetArityError(t *testing.T) {
	interp := NewInterpreter(nil)
	code := Eval(interp, "set foo")
	if code != ERR {
		t.Error("expected error state")
	}
	if interp.result != "Wrong number of args for set" {
		t.Errorf("unexpected message %q", interp.result)
	}
}

func TestCommandMathOperators(t *testing.T) {
	cases := []struct {
		op   string
		a, b string
		want string
	}{
		{"+", "2", "3", "5"},
		{"-", "5", "3", "2"},
		{"*", "4", "3", "12"},
		{"/", "9", "3", "3"},
		{">", "3", "2", "1"},
		{">", "2", "3", "0"},
		{">=", "3", "3", "1"},
		{"<", "2", "3", "1"},
		{"<=", "3", "3", "1"},
		{"==", "3", "3", "1"},
		{"!=", "3", "4", "1"},
	}
	for _, c := range cases {
		interp := NewInterpreter(nil)
		code := Eval(interp, c.op+" "+c.a+" "+c.b)
		if code != OK {
			t.Errorf("%s %s %s: expected OK, got %s", c.op, c.a, c.b, code)
			continue
		}
		if interp.result != c.want {
			t.Errorf("%s %s %s: got %q, want %q", c.op, c.a, c.b, interp.result, c.want)
		}
	}
}

func TestCommandMathUnparseablePrefixIsZero(t *testing.T) {
	interp := NewInterpreter(nil)
	code := Eval(interp, "+ abc 3")
	if code != OK {
		t.Error("expected OK")
	}
	if interp.result != "3" {
		t.Errorf("expected '3', got %q", interp.result)
	}
}

func TestCommandMathArityError(t *testing.T) {
	interp := NewInterpreter(nil)
	code := Eval(interp, "+ 1")
	if code != ERR {
		t.Error("expected arity error")
	}
}

func TestCommandPuts(t *testing.T) {
	interp := NewInterpreter(nil)
	code := Eval(interp, "puts hello")
	if code != OK {
		t.Error("failed to invoke puts")
	}
	if interp.result != "hello" {
		t.Errorf("unexpected result %q", interp.result)
	}
}

func TestCommandBreakContinueArity(t *testing.T) {
	interp := NewInterpreter(nil)
	if code := Eval(interp, "break extra"); code != ERR {
		t.Error("expected arity error for break")
	}
	if code := Eval(interp, "continue extra"); code != ERR {
		t.Error("expected arity error for continue")
	}
}

func TestCommandReturnBare(t *testing.T) {
	interp := NewInterpreter(nil)
	code := Eval(interp, "proc f {} { return } ; f")
	if code != OK {
		t.Error("expected OK (RETURN converts to OK at proc boundary)")
	}
	if interp.result != "" {
		t.Errorf("expected empty result, got %q", interp.result)
	}
}

func TestCommandProcDuplicateName(t *testing.T) {
	interp := NewInterpreter(nil)
	code := Eval(interp, "proc f {} { return 1 } ; proc f {} { return 2 }")
	if code != ERR {
		t.Error("expected duplicate command error")
	}
	if interp.result != "Command 'f' already defined" {
		t.Errorf("unexpected message %q", interp.result)
	}
}

func TestSplitArgNames(t *testing.T) {
	got := splitArgNames("  a  b c ")
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: got %q, want %q", i, got[i], want[i])
		}
	}
}
