//-----------------------------------------------------------------------------
// Copyright (c) 2022 The Clausemark Authors
//
// This file is part of Clausemark.
//
// Clausemark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package html

import (
	"encoding/json"
	"strings"

	xhtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"clausemark.org/cm/ast"
	"clausemark.org/cm/encoder/htmlenc"
)

func inlines(parent *xhtml.Node) []ast.Node {
	var children []*xhtml.Node
	for c := parent.FirstChild; c != nil; c = c.NextSibling {
		children = append(children, c)
	}
	return ast.MergeText(inlineNodes(children))
}

// inlineNodes converts a sequence of sibling nodes. A line break element
// swallows the newline that follows it.
func inlineNodes(ns []*xhtml.Node) []ast.Node {
	var result []ast.Node
	afterBreak := false
	for _, n := range ns {
		switch n.Type {
		case xhtml.TextNode:
			s := n.Data
			if afterBreak {
				s = strings.TrimPrefix(s, "\n")
			}
			result = append(result, splitLines(s)...)
		case xhtml.ElementNode:
			result = append(result, inline(n)...)
		}
		afterBreak = n.Type == xhtml.ElementNode && n.DataAtom == atom.Br
	}
	return result
}

func splitLines(s string) []ast.Node {
	var result []ast.Node
	for i, line := range strings.Split(s, "\n") {
		if i > 0 {
			result = append(result, &ast.SoftbreakNode{})
		}
		if line != "" {
			result = append(result, &ast.TextNode{Text: line})
		}
	}
	return result
}

func inline(n *xhtml.Node) []ast.Node {
	switch n.DataAtom {
	case atom.Br:
		return []ast.Node{&ast.LinebreakNode{}}
	case atom.Em, atom.I:
		return []ast.Node{&ast.EmphNode{Nodes: inlines(n)}}
	case atom.Strong, atom.B:
		return []ast.Node{&ast.StrongNode{Nodes: inlines(n)}}
	case atom.Code:
		return []ast.Node{&ast.CodeNode{Text: textContent(n)}}
	case atom.A:
		if hasAttr(n, "href") {
			return []ast.Node{&ast.LinkNode{
				Destination: attrValue(n, "href"),
				Title:       attrValue(n, "title"),
				Nodes:       inlines(n),
			}}
		}
	case atom.Img:
		return []ast.Node{&ast.ImageNode{
			Destination: attrValue(n, "src"),
			Title:       attrValue(n, "title"),
			Nodes:       ast.CreateTextSlice(attrValue(n, "alt")),
		}}
	case atom.Span:
		if sn := semantic(n); sn != nil {
			return []ast.Node{sn}
		}
	}
	return []ast.Node{&ast.HTMLInlineNode{Text: render(n)}}
}

func semantic(n *xhtml.Node) ast.Node {
	name := attrValue(n, htmlenc.AttrName)
	switch {
	case selVariable.Match(n):
		value, elementType := textContent(n), attrValue(n, htmlenc.AttrElementType)
		if hasAttr(n, htmlenc.AttrFormat) {
			return &ast.FormattedVariableNode{
				Name: name, Value: value, ElementType: elementType, Format: attrValue(n, htmlenc.AttrFormat),
			}
		}
		if hasAttr(n, htmlenc.AttrEnumValues) {
			var values []string
			if err := json.Unmarshal([]byte(attrValue(n, htmlenc.AttrEnumValues)), &values); err != nil {
				return nil
			}
			return &ast.EnumVariableNode{Name: name, Value: value, ElementType: elementType, EnumValues: values}
		}
		return &ast.VariableNode{Name: name, Value: value, ElementType: elementType}
	case selFormula.Match(n):
		return &ast.FormulaNode{Name: name, Value: textContent(n), Code: attrValue(n, htmlenc.AttrCode)}
	case selCond.Match(n):
		return &ast.ConditionalNode{
			Name:      name,
			IsTrue:    attrValue(n, htmlenc.AttrIsTrue) == "true",
			Nodes:     inlines(n),
			WhenTrue:  ast.CreateTextSlice(attrValue(n, htmlenc.AttrWhenTrue)),
			WhenFalse: ast.CreateTextSlice(attrValue(n, htmlenc.AttrWhenFalse)),
		}
	case selOpt.Match(n):
		return &ast.OptionalNode{
			Name:     name,
			HasSome:  attrValue(n, htmlenc.AttrHasSome) == "true",
			Nodes:    inlines(n),
			WhenSome: ast.CreateTextSlice(attrValue(n, htmlenc.AttrWhenSome)),
			WhenNone: ast.CreateTextSlice(attrValue(n, htmlenc.AttrWhenNone)),
		}
	}
	return nil
}
