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
	"io"
	"sort"

	"clausemark.org/cm/ast"
	"clausemark.org/cm/encoder"
	"clausemark.org/cm/strfun"
)

// visitor writes the abstract syntax tree to an io.Writer.
type visitor struct {
	env           *encoder.Environment
	b             encoder.EncWriter
	inInteractive bool // Rendered interactive HTML code
	headingIDs    strfun.Set
}

func newVisitor(he *htmlEncoder, w io.Writer) *visitor {
	return &visitor{
		env:        he.env,
		b:          encoder.NewEncWriter(w),
		headingIDs: strfun.NewSet(),
	}
}

func (v *visitor) Visit(node ast.Node) ast.WalkVisitor {
	switch n := node.(type) {
	case *ast.DocumentNode:
		v.acceptBlocks(n.Nodes)
	case *ast.ParaNode:
		v.b.WriteString("<p>")
		ast.WalkNodes(v, n.Nodes)
		v.b.WriteString("</p>")
	case *ast.HeadingNode:
		v.visitHeading(n)
	case *ast.ListNode:
		v.visitList(n.Kind, n.Start, n.Tight, n.Nodes, nil)
	case *ast.ListBlockNode:
		v.visitListBlock(n)
	case *ast.ItemNode:
		v.acceptBlocks(n.Nodes)
	case *ast.BlockQuoteNode:
		v.b.WriteString("<blockquote>\n")
		v.acceptBlocks(n.Nodes)
		v.b.WriteString("</blockquote>")
	case *ast.CodeBlockNode:
		v.visitCodeBlock(n)
	case *ast.HTMLBlockNode:
		if !ignoreHTMLText(n.Text) {
			v.b.WriteString(n.Text)
		}
	case *ast.ThematicBreakNode:
		if v.env.IsXHTML() {
			v.b.WriteString("<hr />")
		} else {
			v.b.WriteString("<hr>")
		}
	case *ast.ClauseNode:
		v.visitClause(n)
	case *ast.TextNode:
		v.writeHTMLEscaped(n.Text)
	case *ast.SoftbreakNode:
		v.b.WriteByte('\n')
	case *ast.LinebreakNode:
		if v.env.IsXHTML() {
			v.b.WriteString("<br />\n")
		} else {
			v.b.WriteString("<br>\n")
		}
	case *ast.CodeNode:
		v.b.WriteString("<code>")
		v.writeHTMLEscaped(n.Text)
		v.b.WriteString("</code>")
	case *ast.HTMLInlineNode:
		if !ignoreHTMLText(n.Text) {
			v.b.WriteString(n.Text)
		}
	case *ast.EmphNode:
		v.writeFormat("em", n.Nodes)
	case *ast.StrongNode:
		v.writeFormat("strong", n.Nodes)
	case *ast.LinkNode:
		v.visitLink(n)
	case *ast.ImageNode:
		v.visitImage(n)
	case *ast.VariableNode:
		v.writeVariable(n.Name, n.Value, n.ElementType, nil)
	case *ast.FormattedVariableNode:
		v.writeVariable(n.Name, n.Value, n.ElementType, []attribute{{AttrFormat, n.Format}})
	case *ast.EnumVariableNode:
		v.visitEnumVariable(n)
	case *ast.FormulaNode:
		v.visitFormula(n)
	case *ast.ConditionalNode:
		v.visitConditional(n)
	case *ast.OptionalNode:
		v.visitOptional(n)
	default:
		return v
	}
	return nil
}

func (v *visitor) acceptMeta(m ast.Meta) {
	keys := make([]string, 0, len(m))
	for k := range m {
		if k != MetaLang && !v.env.IgnoreMetaKey(k) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		v.writeMeta(k, m[k])
	}
}

func (v *visitor) writeMeta(key, value string) {
	v.b.WriteString("<meta name=\"")
	v.writeQuotedEscaped(key)
	v.b.WriteString("\" content=\"")
	v.writeQuotedEscaped(value)
	if v.env.IsXHTML() {
		v.b.WriteString("\" />\n")
	} else {
		v.b.WriteString("\">\n")
	}
}

// acceptBlocks writes a sequence of nodes, each block on its own line.
func (v *visitor) acceptBlocks(ns []ast.Node) {
	for _, n := range ns {
		ast.Walk(v, n)
		if _, ok := n.(ast.BlockNode); ok {
			v.b.WriteByte('\n')
		}
	}
}

// attribute is a HTML attribute. An empty value is written as a boolean
// attribute.
type attribute struct {
	key   string
	value string
}

func (v *visitor) writeAttributes(attrs []attribute) {
	for _, a := range attrs {
		v.b.WriteStrings(" ", a.key)
		if a.value != "" {
			v.b.WriteString("=\"")
			v.writeQuotedEscaped(a.value)
			v.b.WriteByte('"')
		}
	}
}

func (v *visitor) writeHTMLEscaped(s string) {
	strfun.HTMLEscape(&v.b, s)
}

func (v *visitor) writeQuotedEscaped(s string) {
	strfun.HTMLAttrEscape(&v.b, s)
}
