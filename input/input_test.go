//-----------------------------------------------------------------------------
// Copyright (c) 2022 The Clausemark Authors
//
// This file is part of Clausemark.
//
// Clausemark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package input_test provides some unit-tests for reading data.
package input_test

import (
	"testing"

	"clausemark.org/cm/input"
)

func TestNext(t *testing.T) {
	t.Parallel()
	inp := input.NewInput(nil)
	if inp.Ch != input.EOS {
		t.Errorf("No EOS found: %q", inp.Ch)
	}
	if inp.Pos != 0 {
		t.Errorf("Pos != 0: %d", inp.Pos)
	}

	inp = input.NewInput([]byte("äb"))
	if inp.Ch != 'ä' {
		t.Errorf("First ch != 'ä', got %q", inp.Ch)
	}
	if got := inp.Peek(); got != 'b' {
		t.Errorf("Peek != 'b', got %q", got)
	}
	inp.Next()
	if inp.Pos != 2 {
		t.Errorf("Pos != 2: %d", inp.Pos)
	}
}

func TestAccept(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		accept string
		src    string
		acc    bool
		exp    rune
	}{
		{"", "", false, input.EOS},
		{"AB", "abc", false, 'a'},
		{"AB", "ABC", true, 'C'},
		{"AB", "AB", true, input.EOS},
		{"AB", "A", false, 'A'},
	} {
		inp := input.NewInput([]byte(tc.src))
		acc := inp.Accept(tc.accept)
		if acc != tc.acc {
			t.Errorf("%q/%q: expected %v, but got %v", tc.accept, tc.src, tc.acc, acc)
		}
		if inp.Ch != tc.exp {
			t.Errorf("%q/%q: expected ch %q, but got %q", tc.accept, tc.src, tc.exp, inp.Ch)
		}
	}
}

func TestScanName(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		src  string
		name string
		rest rune
	}{
		{"", "", input.EOS},
		{"1a", "", '1'},
		{"variable ", "variable", ' '},
		{"whenTrue=", "whenTrue", '='},
		{"data-x.y:z/", "data-x.y:z", '/'},
	} {
		inp := input.NewInput([]byte(tc.src))
		if got := inp.ScanName(); got != tc.name {
			t.Errorf("%q: %q != %q", tc.src, got, tc.name)
		}
		if inp.Ch != tc.rest {
			t.Errorf("%q: rest %q != %q", tc.src, inp.Ch, tc.rest)
		}
	}
}

func TestScanQuoted(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		src string
		exp string
		ok  bool
		pos int
	}{
		{``, "", false, 0},
		{`abc`, "", false, 0},
		{`""`, "", true, 2},
		{`"a%20b" x`, "a%20b", true, 7},
		{`"open`, "", false, 0},
	} {
		inp := input.NewInput([]byte(tc.src))
		got, ok := inp.ScanQuoted()
		if got != tc.exp || ok != tc.ok {
			t.Errorf("%q: (%q, %v) != (%q, %v)", tc.src, got, ok, tc.exp, tc.ok)
		}
		if inp.Pos != tc.pos {
			t.Errorf("%q: pos %d != %d", tc.src, inp.Pos, tc.pos)
		}
	}
}

func TestSkipSpace(t *testing.T) {
	t.Parallel()
	inp := input.NewInput([]byte(" \t\n x"))
	if !inp.SkipSpace() {
		t.Error("no space skipped")
	}
	if inp.Ch != 'x' {
		t.Errorf("expected 'x', but got %q", inp.Ch)
	}
	if inp.SkipSpace() {
		t.Error("space skipped before 'x'")
	}
}
