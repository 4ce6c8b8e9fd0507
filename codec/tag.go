//-----------------------------------------------------------------------------
// Copyright (c) 2022 The Clausemark Authors
//
// This file is part of Clausemark.
//
// Clausemark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package codec

import (
	"net/url"
	"strings"

	"clausemark.org/cm/input"
)

// Tag is a scanned pseudo-tag. Attribute values are already decoded.
type Tag struct {
	Name  string
	Attrs []Attr
}

// Attr is a single attribute of a tag.
type Attr struct {
	Name  string
	Value string
}

// Get returns the value of the named attribute.
func (t *Tag) Get(name string) string {
	for _, a := range t.Attrs {
		if a.Name == name {
			return a.Value
		}
	}
	return ""
}

// String returns the tag in its info string form, with encoded values.
func (t *Tag) String() string {
	var sb strings.Builder
	sb.WriteString(t.Name)
	for _, a := range t.Attrs {
		sb.WriteByte(' ')
		sb.WriteString(a.Name)
		sb.WriteString(`="`)
		sb.WriteString(EscapeValue(a.Value))
		sb.WriteByte('"')
	}
	return sb.String()
}

// Inline returns the tag as self-closing inline HTML.
func (t *Tag) Inline() string { return "<" + t.String() + "/>" }

// EscapeValue percent-encodes every byte of s except ASCII letters, digits
// and "-_.~".
func EscapeValue(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// UnescapeValue decodes a percent-encoded value. A plus sign is not a space.
func UnescapeValue(s string) (string, bool) {
	result, err := url.PathUnescape(s)
	return result, err == nil
}

// ParseInline scans a complete self-closing inline pseudo-tag, like
// `<if name="x" value="" whenTrue="" whenFalse=""/>`. Surrounding white space
// is ignored.
func ParseInline(s string) (*Tag, bool) {
	inp := input.NewInput([]byte(strings.TrimSpace(s)))
	if !inp.Accept("<") {
		return nil, false
	}
	t, ok := scanTag(inp)
	if !ok || !inp.Accept("/>") || inp.Ch != input.EOS {
		return nil, false
	}
	return t, true
}

// ParseInfo scans a fenced code block info string, like
// `clause src="s" name="n"`.
func ParseInfo(s string) (*Tag, bool) {
	inp := input.NewInput([]byte(strings.TrimSpace(s)))
	t, ok := scanTag(inp)
	if !ok || inp.Ch != input.EOS {
		return nil, false
	}
	return t, true
}

// scanTag reads a tag name, followed by attributes. White space after the
// last attribute is skipped.
func scanTag(inp *input.Input) (*Tag, bool) {
	name := inp.ScanName()
	if name == "" {
		return nil, false
	}
	t := &Tag{Name: name}
	for {
		if !inp.SkipSpace() {
			return t, true
		}
		attrName := inp.ScanName()
		if attrName == "" {
			return t, true
		}
		if !inp.Accept("=") {
			return nil, false
		}
		raw, ok := inp.ScanQuoted()
		if !ok {
			return nil, false
		}
		value, ok := UnescapeValue(raw)
		if !ok {
			return nil, false
		}
		t.Attrs = append(t.Attrs, Attr{Name: attrName, Value: value})
	}
}
