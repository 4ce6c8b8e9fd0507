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
	"strings"

	"clausemark.org/cm/ast"
	"clausemark.org/cm/parser/markdown"
	"clausemark.org/cm/schema"
	"clausemark.org/cm/transform"
)

// Decode replaces all plain shells of a document that match a signature by
// the semantic nodes they stand for. Fenced bodies are read with the given
// reader state, which may be nil.
func Decode(reg *schema.Registry, dn *ast.DocumentNode, st *markdown.State) (*ast.DocumentNode, error) {
	result := ast.Rewrite(decodeRules{st: st}, dn)
	if _, err := schema.Validate(reg, result); err != nil {
		return nil, err
	}
	return result, nil
}

type decodeRules struct {
	ast.Rebuild
	st *markdown.State
}

// parseBody reads the body of a fenced block. The final newline belongs to
// the fence, not to the content.
func (r decodeRules) parseBody(rw *ast.Rewriter, text string) []ast.Node {
	body := strings.TrimSuffix(text, "\n")
	if body == "" {
		return nil
	}
	return rw.Nodes(markdown.ParseNested([]byte(body), r.st))
}

// CodeBlock decodes clause and list pseudo-tags.
func (r decodeRules) CodeBlock(rw *ast.Rewriter, cn *ast.CodeBlockNode) []ast.Node {
	plain := []ast.Node{&ast.CodeBlockNode{Info: cn.Info, Text: cn.Text}}
	t, ok := ParseInfo(cn.Info)
	if !ok {
		return plain
	}
	sig, ok := Lookup(t, true)
	if !ok {
		return plain
	}
	nodes := r.parseBody(rw, cn.Text)
	switch sig.Shape {
	case ShapeClause:
		return []ast.Node{&ast.ClauseNode{Name: t.Get(AttrName), Src: t.Get(AttrSrc), Nodes: nodes}}
	case ShapeListBlock:
		lb := &ast.ListBlockNode{Name: t.Get(AttrName), Kind: ast.ListBullet}
		if len(nodes) == 0 {
			return []ast.Node{lb}
		}
		if len(nodes) == 1 {
			if ln, isList := nodes[0].(*ast.ListNode); isList {
				lb.Kind, lb.Start, lb.Tight, lb.Nodes = ln.Kind, ln.Start, ln.Tight, ln.Nodes
				return []ast.Node{lb}
			}
		}
	}
	return plain
}

// HTMLInline decodes inline pseudo-tags.
func (decodeRules) HTMLInline(_ *ast.Rewriter, hn *ast.HTMLInlineNode) []ast.Node {
	if n := decodeInline(hn.Text); n != nil {
		return []ast.Node{n}
	}
	return []ast.Node{&ast.HTMLInlineNode{Text: hn.Text}}
}

// HTMLBlock decodes a paragraph that a reader took as a HTML block, because
// its first line is an inline pseudo-tag.
func (r decodeRules) HTMLBlock(rw *ast.Rewriter, hn *ast.HTMLBlockNode) []ast.Node {
	plain := []ast.Node{&ast.HTMLBlockNode{Text: hn.Text}}
	first, rest, hasRest := strings.Cut(hn.Text, "\n")
	var lineEnd ast.Node = &ast.SoftbreakNode{}
	if trimmed := strings.TrimRight(first, " \t"); strings.HasSuffix(trimmed, "\\") {
		first, lineEnd = strings.TrimSuffix(trimmed, "\\"), &ast.LinebreakNode{}
	} else if len(first)-len(trimmed) >= 2 {
		lineEnd = &ast.LinebreakNode{}
	}
	n := decodeInline(first)
	if n == nil {
		return plain
	}
	if !hasRest {
		return []ast.Node{&ast.ParaNode{Nodes: []ast.Node{n}}}
	}
	nodes := rw.Nodes(markdown.ParseNested([]byte(rest), r.st))
	if len(nodes) == 1 {
		if pn, ok := nodes[0].(*ast.ParaNode); ok {
			return []ast.Node{&ast.ParaNode{Nodes: append([]ast.Node{n, lineEnd}, pn.Nodes...)}}
		}
	}
	return plain
}

func decodeInline(s string) ast.Node {
	t, ok := ParseInline(s)
	if !ok {
		return nil
	}
	sig, ok := Lookup(t, false)
	if !ok {
		return nil
	}
	name := t.Get(AttrName)
	switch sig.Shape {
	case ShapeVariable:
		value, elementType := takeValue(t.Get(AttrValue))
		return &ast.VariableNode{Name: name, Value: value, ElementType: elementType}
	case ShapeFormattedVariable:
		value, elementType := takeValue(t.Get(AttrValue))
		return &ast.FormattedVariableNode{Name: name, Value: value, ElementType: elementType, Format: t.Get(AttrFormat)}
	case ShapeEnumVariable:
		values, valid := ParseEnumValues(t.Get(AttrEnumValues))
		if !valid {
			return nil
		}
		value, elementType := takeValue(t.Get(AttrValue))
		return &ast.EnumVariableNode{Name: name, Value: value, ElementType: elementType, EnumValues: values}
	case ShapeFormula:
		return &ast.FormulaNode{Name: name, Value: t.Get(AttrValue)}
	case ShapeConditional:
		value, whenTrue := t.Get(AttrValue), t.Get(AttrWhenTrue)
		return &ast.ConditionalNode{
			Name:      name,
			IsTrue:    value == whenTrue,
			Nodes:     ast.CreateTextSlice(value),
			WhenTrue:  ast.CreateTextSlice(whenTrue),
			WhenFalse: ast.CreateTextSlice(t.Get(AttrWhenFalse)),
		}
	}
	return nil
}

// takeValue unwraps a quoted value. Quoting marks a String typed value.
func takeValue(s string) (string, string) {
	if transform.IsQuoted(s) {
		return transform.UnquoteValue(s), ast.ElementTypeString
	}
	return s, ""
}
