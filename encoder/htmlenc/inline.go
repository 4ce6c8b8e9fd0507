//-----------------------------------------------------------------------------
// Copyright (c) 2022 The Clausemark Authors
//
// This file is part of Clausemark.
//
// Clausemark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package htmlenc

import (
	"clausemark.org/cm/ast"
	"clausemark.org/cm/encoder/textenc"
)

func (v *visitor) writeFormat(code string, ns []ast.Node) {
	v.b.WriteStrings("<", code, ">")
	ast.WalkNodes(v, ns)
	v.b.WriteStrings("</", code, ">")
}

func (v *visitor) visitLink(ln *ast.LinkNode) {
	ln, n := v.env.AdaptLink(ln)
	if n != nil {
		ast.Walk(v, n)
		return
	}
	if v.inInteractive {
		v.writeSpan(ln.Nodes)
		return
	}
	attrs := []attribute{{"href", ln.Destination}}
	if ln.Title != "" {
		attrs = append(attrs, attribute{"title", ln.Title})
	}
	if v.env != nil && v.env.NewWindow {
		attrs = append(attrs, attribute{"target", "_blank"}, attribute{"rel", "noopener noreferrer"})
	}
	v.b.WriteString("<a")
	v.writeAttributes(attrs)
	v.b.WriteByte('>')
	v.inInteractive = true
	ast.WalkNodes(v, ln.Nodes)
	v.inInteractive = false
	v.b.WriteString("</a>")
}

func (v *visitor) writeSpan(ns []ast.Node) {
	v.b.WriteString("<span>")
	ast.WalkNodes(v, ns)
	v.b.WriteString("</span>")
}

func (v *visitor) visitImage(in *ast.ImageNode) {
	v.b.WriteString("<img")
	v.writeAttributes([]attribute{{"src", in.Destination}})
	v.b.WriteString(" alt=\"")
	v.writeQuotedEscaped(textenc.String(in.Nodes))
	v.b.WriteByte('"')
	if in.Title != "" {
		v.writeAttributes([]attribute{{"title", in.Title}})
	}
	if v.env.IsXHTML() {
		v.b.WriteString(" />")
	} else {
		v.b.WriteByte('>')
	}
}
