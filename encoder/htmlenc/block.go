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
	"strconv"
	"strings"

	"clausemark.org/cm/ast"
	"clausemark.org/cm/encoder/textenc"
	"clausemark.org/cm/strfun"
)

var htmlSnippetsIgnore = []string{
	"<script",
	"</script",
	"<iframe",
	"</iframe",
}

func ignoreHTMLText(s string) bool {
	lower := strings.ToLower(s)
	for _, snippet := range htmlSnippetsIgnore {
		if strings.Contains(lower, snippet) {
			return true
		}
	}
	return false
}

func (v *visitor) visitHeading(hn *ast.HeadingNode) {
	level := strconv.Itoa(min(max(hn.Level, 1), 6))
	id := strfun.UniqueSlug(textenc.String(hn.Nodes), "h", v.headingIDs)
	v.b.WriteStrings("<h", level)
	v.writeAttributes([]attribute{{"id", id}})
	v.b.WriteByte('>')
	ast.WalkNodes(v, hn.Nodes)
	v.b.WriteStrings("</h", level, ">")
}

func (v *visitor) visitList(kind ast.ListKind, start int, tight bool, items []ast.Node, attrs []attribute) {
	code := "ul"
	if kind == ast.ListOrdered {
		code = "ol"
		if start != 1 {
			attrs = append(attrs, attribute{"start", strconv.Itoa(start)})
		}
	}
	v.b.WriteStrings("<", code)
	v.writeAttributes(attrs)
	v.b.WriteString(">\n")
	for _, item := range items {
		v.b.WriteString("<li>")
		in, ok := item.(*ast.ItemNode)
		if !ok {
			ast.Walk(v, item)
		} else if tight {
			v.writeTightItem(in.Nodes)
		} else {
			v.b.WriteByte('\n')
			v.acceptBlocks(in.Nodes)
		}
		v.b.WriteString("</li>\n")
	}
	v.b.WriteStrings("</", code, ">")
}

// writeTightItem writes the content of paragraphs without the paragraph
// element.
func (v *visitor) writeTightItem(ns []ast.Node) {
	for _, n := range ns {
		if pn, ok := n.(*ast.ParaNode); ok {
			ast.WalkNodes(v, pn.Nodes)
			continue
		}
		v.b.WriteByte('\n')
		ast.Walk(v, n)
		v.b.WriteByte('\n')
	}
}

func (v *visitor) visitListBlock(ln *ast.ListBlockNode) {
	v.visitList(ln.Kind, ln.Start, ln.Tight, ln.Nodes, []attribute{
		{"class", ClassListBlock},
		{AttrName, ln.Name},
	})
}

func (v *visitor) visitClause(cn *ast.ClauseNode) {
	v.b.WriteString("<div")
	v.writeAttributes([]attribute{
		{"class", ClassClause},
		{AttrName, cn.Name},
		{AttrSrc, cn.Src},
	})
	v.b.WriteString(">\n")
	v.acceptBlocks(cn.Nodes)
	v.b.WriteString("</div>")
}

func (v *visitor) visitCodeBlock(cn *ast.CodeBlockNode) {
	var attrs []attribute
	if info := strings.TrimSpace(cn.Info); info != "" {
		lang, _, _ := strings.Cut(info, " ")
		attrs = append(attrs, attribute{"class", "language-" + lang})
		if lang != cn.Info {
			attrs = append(attrs, attribute{AttrInfo, cn.Info})
		}
	}
	v.b.WriteString("<pre><code")
	v.writeAttributes(attrs)
	v.b.WriteByte('>')
	v.writeHTMLEscaped(cn.Text)
	v.b.WriteString("</code></pre>")
}
