//-----------------------------------------------------------------------------
// Copyright (c) 2022 The Clausemark Authors
//
// This file is part of Clausemark.
//
// Clausemark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package textenc encodes the abstract syntax tree into its text.
package textenc

import (
	"io"
	"sort"
	"strings"

	"clausemark.org/cm/ast"
	"clausemark.org/cm/encoder"
)

func init() {
	encoder.Register(encoder.EncoderText, encoder.Info{
		Create: func(env *encoder.Environment) encoder.Encoder { return &textEncoder{env: env} },
	})
}

type textEncoder struct {
	env *encoder.Environment
}

// WriteDocument writes metadata and content. Each metadata pair is written
// on its own line, followed by an empty line.
func (te *textEncoder) WriteDocument(w io.Writer, dn *ast.DocumentNode) (int, error) {
	v := newVisitor(w)
	keys := make([]string, 0, len(dn.Meta))
	for k := range dn.Meta {
		if !te.env.IgnoreMetaKey(k) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		v.b.WriteStrings(k, ": ", dn.Meta[k], "\n")
	}
	if len(keys) > 0 && len(dn.Nodes) > 0 {
		v.b.WriteByte('\n')
	}
	v.acceptBlocks(dn.Nodes)
	return v.b.Flush()
}

// WriteNodes writes the text of the nodes to the writer.
func (*textEncoder) WriteNodes(w io.Writer, ns []ast.Node) (int, error) {
	v := newVisitor(w)
	v.acceptBlocks(ns)
	return v.b.Flush()
}

// String returns the text of the given nodes.
func String(ns []ast.Node) string {
	var sb strings.Builder
	_, _ = (&textEncoder{}).WriteNodes(&sb, ns)
	return sb.String()
}

// visitor writes the abstract syntax tree to an io.Writer.
type visitor struct {
	b encoder.EncWriter
}

func newVisitor(w io.Writer) *visitor {
	return &visitor{b: encoder.NewEncWriter(w)}
}

func (v *visitor) Visit(node ast.Node) ast.WalkVisitor {
	switch n := node.(type) {
	case *ast.DocumentNode:
		v.acceptBlocks(n.Nodes)
	case *ast.ClauseNode:
		v.acceptBlocks(n.Nodes)
	case *ast.BlockQuoteNode:
		v.acceptBlocks(n.Nodes)
	case *ast.ItemNode:
		v.acceptBlocks(n.Nodes)
	case *ast.ListNode:
		v.acceptItems(n.Nodes)
	case *ast.ListBlockNode:
		v.acceptItems(n.Nodes)
	case *ast.CodeBlockNode:
		v.b.WriteString(strings.TrimSuffix(n.Text, "\n"))
	case *ast.HTMLBlockNode, *ast.HTMLInlineNode, *ast.ThematicBreakNode:
	case *ast.TextNode:
		v.b.WriteString(n.Text)
	case *ast.CodeNode:
		v.b.WriteString(n.Text)
	case *ast.SoftbreakNode:
		v.b.WriteByte(' ')
	case *ast.LinebreakNode:
		v.b.WriteByte('\n')
	case *ast.VariableNode:
		v.b.WriteString(n.Value)
	case *ast.FormattedVariableNode:
		v.b.WriteString(n.Value)
	case *ast.EnumVariableNode:
		v.b.WriteString(n.Value)
	case *ast.FormulaNode:
		v.b.WriteString(n.Value)
	default:
		return v
	}
	return nil
}

func (v *visitor) acceptBlocks(bns []ast.Node) {
	first := true
	for _, bn := range bns {
		if _, ok := bn.(ast.BlockNode); !ok {
			ast.Walk(v, bn)
			continue
		}
		if isInvisible(bn) {
			continue
		}
		if !first {
			v.b.WriteString("\n\n")
		}
		first = false
		ast.Walk(v, bn)
	}
}

func (v *visitor) acceptItems(items []ast.Node) {
	for i, item := range items {
		v.writePosChar(i, '\n')
		ast.Walk(v, item)
	}
}

func isInvisible(n ast.Node) bool {
	switch n.(type) {
	case *ast.HTMLBlockNode, *ast.ThematicBreakNode:
		return true
	}
	return false
}

func (v *visitor) writePosChar(pos int, ch byte) {
	if pos > 0 {
		v.b.WriteByte(ch)
	}
}
