//-----------------------------------------------------------------------------
// Copyright (c) 2022 The Clausemark Authors
//
// This file is part of Clausemark.
//
// Clausemark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package mdenc

import "strings"

// maxEntity is the length of the longest named character reference.
const maxEntity = 33

// writeEscaped writes text so that a CommonMark reader returns it unchanged.
func (v *visitor) writeEscaped(s string) {
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if v.lineStart {
			switch ch {
			case ' ':
				v.b.WriteString("&#32;")
				continue
			case '\t':
				v.b.WriteString("&#9;")
				continue
			case '#', '>', '-', '+', '=', '~':
				v.b.WriteStrings("\\", s[i:i+1])
				v.lineStart = false
				continue
			}
			v.lineStart = false
			if isDigit(ch) {
				j := i
				for j < len(s) && isDigit(s[j]) {
					j++
				}
				if j < len(s) && (s[j] == '.' || s[j] == ')') {
					v.b.WriteStrings(s[i:j], "\\", s[j:j+1])
					i = j
					continue
				}
			}
		}
		switch ch {
		case '\\', '*', '_', '`', '[', ']', '<':
			v.b.WriteStrings("\\", s[i:i+1])
		case '#':
			if v.inHeading {
				v.b.WriteString("\\#")
			} else {
				v.b.WriteByte(ch)
			}
		case '&':
			if isEntityLike(s[i:]) {
				v.b.WriteString("\\&")
			} else {
				v.b.WriteByte(ch)
			}
		case '\n':
			if v.inHeading {
				v.b.WriteByte(' ')
			} else {
				v.b.WriteByte(ch)
				v.lineStart = true
			}
		default:
			v.b.WriteByte(ch)
		}
	}
}

func isDigit(ch byte) bool { return '0' <= ch && ch <= '9' }

// isEntityLike reports whether s starts with something that a reader could
// take as a character reference.
func isEntityLike(s string) bool {
	end := strings.IndexByte(s, ';')
	if end < 2 || end > maxEntity {
		return false
	}
	return !strings.ContainsAny(s[1:end], " \t\n&")
}

// escapeRaw escapes backslashes and entity-like ampersands, as well as all
// characters in special.
func escapeRaw(s, special string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case ch == '\\' || strings.IndexByte(special, ch) >= 0:
			sb.WriteByte('\\')
		case ch == '&' && isEntityLike(s[i:]):
			sb.WriteByte('\\')
		}
		sb.WriteByte(ch)
	}
	return sb.String()
}

func escapeInfo(info string) string { return escapeRaw(info, "") }

func escapeTitle(title string) string { return escapeRaw(title, `"`) }

func escapeDestination(dest string) string {
	if dest == "" || strings.ContainsAny(dest, " \t\n<>()") {
		return "<" + escapeRaw(dest, "<>") + ">"
	}
	return escapeRaw(dest, "")
}
