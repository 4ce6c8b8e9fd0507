//-----------------------------------------------------------------------------
// Copyright (c) 2022 The Clausemark Authors
//
// This file is part of Clausemark.
//
// Clausemark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package input provides an abstraction for data to be read.
package input

import "unicode/utf8"

// Input is an abstract input source
type Input struct {
	// Read-only, will never change
	Src []byte // The source string

	// Read-only, will change
	Ch      rune // current character
	Pos     int  // character position in src
	readPos int  // reading position (position after current character)
}

// NewInput creates a new input source.
func NewInput(src []byte) *Input {
	inp := &Input{Src: src}
	inp.Next()
	return inp
}

// EOS = End of source
const EOS = rune(-1)

// Next reads the next rune into inp.Ch and returns it too.
func (inp *Input) Next() rune {
	if inp.readPos >= len(inp.Src) {
		inp.Pos = len(inp.Src)
		inp.Ch = EOS
		return EOS
	}
	inp.Pos = inp.readPos
	r, w := rune(inp.Src[inp.readPos]), 1
	if r >= utf8.RuneSelf {
		r, w = utf8.DecodeRune(inp.Src[inp.readPos:])
	}
	inp.readPos += w
	inp.Ch = r
	return r
}

// Peek returns the rune following the most recently read rune without
// advancing. If end-of-source was already found peek returns EOS.
func (inp *Input) Peek() rune {
	if pos := inp.readPos; pos < len(inp.Src) {
		r := rune(inp.Src[pos])
		if r >= utf8.RuneSelf {
			r, _ = utf8.DecodeRune(inp.Src[pos:])
		}
		return r
	}
	return EOS
}

// Accept checks if the given string is a prefix of the text to be parsed.
// If successful, advance position and current character.
// String must only contain bytes < 128.
// If not successful, everything remains as it is.
func (inp *Input) Accept(s string) bool {
	pos := inp.Pos
	remaining := len(inp.Src) - pos
	if s == "" || len(s) > remaining {
		return false
	}
	if readPos := pos + len(s); s == string(inp.Src[pos:readPos]) {
		inp.readPos = readPos
		inp.Next()
		return true
	}
	return false
}

// SetPos allows to reset the read position.
func (inp *Input) SetPos(pos int) {
	if inp.Pos != pos {
		inp.readPos = pos
		inp.Next()
	}
}

// SkipSpace reads while the current character is a white space, including
// line endings. It returns true if at least one character was skipped.
func (inp *Input) SkipSpace() bool {
	pos := inp.Pos
	for IsSpace(inp.Ch) || inp.Ch == '\n' || inp.Ch == '\r' {
		inp.Next()
	}
	return inp.Pos > pos
}

// ScanName reads a tag or attribute name: a letter, followed by letters,
// digits, '-', '_', '.' or ':'. It returns the empty string if there is no name.
func (inp *Input) ScanName() string {
	if !IsLetter(inp.Ch) {
		return ""
	}
	pos := inp.Pos
	for IsLetter(inp.Ch) || IsDigit(inp.Ch) || inp.Ch == '-' || inp.Ch == '_' || inp.Ch == '.' || inp.Ch == ':' {
		inp.Next()
	}
	return string(inp.Src[pos:inp.Pos])
}

// ScanQuoted reads a double quoted string and returns its content without
// the quotes. There is no escape character.
func (inp *Input) ScanQuoted() (string, bool) {
	if inp.Ch != '"' {
		return "", false
	}
	inp.Next()
	pos := inp.Pos
	for {
		switch inp.Ch {
		case EOS:
			inp.SetPos(pos - 1)
			return "", false
		case '"':
			result := string(inp.Src[pos:inp.Pos])
			inp.Next()
			return result, true
		}
		inp.Next()
	}
}
