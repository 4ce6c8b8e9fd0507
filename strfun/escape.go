//-----------------------------------------------------------------------------
// Copyright (c) 2020-present Detlef Stern
// Copyright (c) 2022 The Clausemark Authors
//
// This file is part of Clausemark.
//
// Clausemark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package strfun

import "io"

var (
	escQuot = []byte("&quot;") // longer than "&#34;", but often requested in standards
	escAmp  = []byte("&amp;")
	escLt   = []byte("&lt;")
	escGt   = []byte("&gt;")
	escNull = []byte("�")
)

// HTMLEscape writes the string to the given writer, where every rune that has
// a special meaning in HTML text is escaped.
func HTMLEscape(w io.Writer, s string) {
	escape(w, s, false)
}

// HTMLAttrEscape writes the string to the given writer, escaped to be used as
// a double quoted attribute value.
func HTMLAttrEscape(w io.Writer, s string) {
	escape(w, s, true)
}

func escape(w io.Writer, s string, attr bool) {
	var esc []byte
	last := 0
	for i, ch := range s {
		switch ch {
		case '\000':
			esc = escNull
		case '"':
			if !attr {
				continue
			}
			esc = escQuot
		case '&':
			esc = escAmp
		case '<':
			esc = escLt
		case '>':
			esc = escGt
		default:
			continue
		}
		io.WriteString(w, s[last:i])
		w.Write(esc)
		last = i + 1
	}
	io.WriteString(w, s[last:])
}
