//-----------------------------------------------------------------------------
// Copyright (c) 2022 The Clausemark Authors
//
// This file is part of Clausemark.
//
// Clausemark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package slate

import (
	"slices"

	"clausemark.org/cm/ast"
)

// ToDocument converts an editor value into a document.
func ToDocument(v *Value) (*ast.DocumentNode, error) {
	if v == nil || v.Document == nil {
		return nil, invalid("missing document", nil)
	}
	ns, err := toBlocks(v.Document.Nodes)
	if err != nil {
		return nil, err
	}
	dn := &ast.DocumentNode{Nodes: ns}
	if len(v.Document.Data) > 0 {
		dn.Meta = make(ast.Meta, len(v.Document.Data))
		for k := range v.Document.Data {
			dn.Meta[k] = v.Document.str(k)
		}
	}
	return dn, nil
}

func toBlocks(ns []*Node) ([]ast.Node, error) {
	var result []ast.Node
	for _, n := range ns {
		bn, err := toBlock(n)
		if err != nil {
			return nil, err
		}
		result = append(result, bn)
	}
	return result, nil
}

func toBlock(n *Node) (ast.Node, error) {
	if n == nil || n.Object != ObjectBlock {
		return nil, invalid("block expected", n)
	}
	if level := slices.Index(headingTypes, n.Type); level >= 0 {
		ins, err := toInlines(n.Nodes)
		return &ast.HeadingNode{Level: level + 1, Nodes: ins}, err
	}
	switch n.Type {
	case TypeParagraph:
		ins, err := toInlines(n.Nodes)
		return &ast.ParaNode{Nodes: ins}, err
	case TypeBulletList, TypeOrderedList:
		items, err := toBlocks(n.Nodes)
		if n.Type == TypeBulletList {
			return &ast.ListNode{Kind: ast.ListBullet, Tight: n.boolean("tight"), Nodes: items}, err
		}
		return &ast.ListNode{Kind: ast.ListOrdered, Start: n.integer("start"), Tight: n.boolean("tight"), Nodes: items}, err
	case TypeListItem:
		bns, err := toBlocks(n.Nodes)
		return &ast.ItemNode{Nodes: bns}, err
	case TypeBlockQuote:
		bns, err := toBlocks(n.Nodes)
		return &ast.BlockQuoteNode{Nodes: bns}, err
	case TypeCodeBlock:
		return &ast.CodeBlockNode{Info: n.str("info"), Text: plainText(n.Nodes)}, nil
	case TypeHTMLBlock:
		return &ast.HTMLBlockNode{Text: n.str("content")}, nil
	case TypeThematicBreak:
		return &ast.ThematicBreakNode{}, nil
	case TypeClause:
		bns, err := toBlocks(n.Nodes)
		return &ast.ClauseNode{Name: n.str("name"), Src: n.str("src"), Nodes: bns}, err
	case TypeListBlock:
		kind, ok := ast.ParseListKind(n.str("type"))
		if !ok {
			return nil, invalid("unknown list type", n)
		}
		items, err := toBlocks(n.Nodes)
		return &ast.ListBlockNode{
			Name: n.str("name"), Kind: kind, Start: n.integer("start"), Tight: n.boolean("tight"), Nodes: items,
		}, err
	}
	return nil, invalid("unknown block type "+n.Type, n)
}

func plainText(ns []*Node) string {
	var result string
	for _, n := range ns {
		result += n.Text
	}
	return result
}

func toInlines(ns []*Node) ([]ast.Node, error) {
	var result []ast.Node
	for _, n := range ns {
		in, err := toInline(n)
		if err != nil {
			return nil, err
		}
		if in == nil {
			continue
		}
		result = append(result, applyMarks(in, n.Marks))
	}
	return ast.MergeText(mergeFormats(result)), nil
}

func toInline(n *Node) (ast.Node, error) {
	if n == nil {
		return nil, invalid("missing inline", nil)
	}
	switch n.Object {
	case ObjectText:
		if n.Text == "" {
			return nil, nil
		}
		return &ast.TextNode{Text: n.Text}, nil
	case ObjectInline:
	default:
		return nil, invalid("inline expected", n)
	}
	switch n.Type {
	case TypeSoftbreak:
		return &ast.SoftbreakNode{}, nil
	case TypeLinebreak:
		return &ast.LinebreakNode{}, nil
	case TypeHTMLInline:
		return &ast.HTMLInlineNode{Text: n.str("content")}, nil
	case TypeLink:
		ins, err := toInlines(n.Nodes)
		return &ast.LinkNode{Destination: n.str("href"), Title: n.str("title"), Nodes: ins}, err
	case TypeImage:
		return &ast.ImageNode{
			Destination: n.str("href"), Title: n.str("title"), Nodes: ast.CreateTextSlice(n.str("alt")),
		}, nil
	case TypeVariable:
		name, value, elementType := n.str("name"), n.str("value"), n.str("elementType")
		switch {
		case n.has("format"):
			return &ast.FormattedVariableNode{Name: name, Value: value, ElementType: elementType, Format: n.str("format")}, nil
		case n.has("enumValues"):
			return &ast.EnumVariableNode{Name: name, Value: value, ElementType: elementType, EnumValues: n.stringList("enumValues")}, nil
		}
		return &ast.VariableNode{Name: name, Value: value, ElementType: elementType}, nil
	case TypeFormula:
		return &ast.FormulaNode{Name: n.str("name"), Value: n.str("value"), Code: n.str("code")}, nil
	case TypeCond:
		ins, err := toInlines(n.Nodes)
		return &ast.ConditionalNode{
			Name:      n.str("name"),
			IsTrue:    n.boolean("isTrue"),
			Nodes:     ins,
			WhenTrue:  ast.CreateTextSlice(n.str("whenTrue")),
			WhenFalse: ast.CreateTextSlice(n.str("whenFalse")),
		}, err
	case TypeOptional:
		ins, err := toInlines(n.Nodes)
		return &ast.OptionalNode{
			Name:     n.str("name"),
			HasSome:  n.boolean("hasSome"),
			Nodes:    ins,
			WhenSome: ast.CreateTextSlice(n.str("whenSome")),
			WhenNone: ast.CreateTextSlice(n.str("whenNone")),
		}, err
	}
	return nil, invalid("unknown inline type "+n.Type, n)
}

// applyMarks wraps a node into the formatting of its marks. The first mark
// is the outermost one. A code mark turns text into a code span.
func applyMarks(n ast.Node, marks []Mark) ast.Node {
	for i := len(marks) - 1; i >= 0; i-- {
		switch marks[i].Type {
		case MarkCode:
			if tn, ok := n.(*ast.TextNode); ok {
				n = &ast.CodeNode{Text: tn.Text}
			}
		case MarkItalic:
			n = &ast.EmphNode{Nodes: []ast.Node{n}}
		case MarkBold:
			n = &ast.StrongNode{Nodes: []ast.Node{n}}
		}
	}
	return n
}

// mergeFormats joins adjacent formatting nodes of the same kind.
func mergeFormats(ns []ast.Node) []ast.Node {
	var result []ast.Node
	for _, n := range ns {
		if last := len(result) - 1; last >= 0 {
			switch cur := n.(type) {
			case *ast.EmphNode:
				if prev, ok := result[last].(*ast.EmphNode); ok {
					result[last] = &ast.EmphNode{Nodes: mergeFormats(append(slices.Clip(prev.Nodes), cur.Nodes...))}
					continue
				}
			case *ast.StrongNode:
				if prev, ok := result[last].(*ast.StrongNode); ok {
					result[last] = &ast.StrongNode{Nodes: mergeFormats(append(slices.Clip(prev.Nodes), cur.Nodes...))}
					continue
				}
			}
		}
		result = append(result, n)
	}
	for i, n := range result {
		switch n := n.(type) {
		case *ast.EmphNode:
			result[i] = &ast.EmphNode{Nodes: ast.MergeText(n.Nodes)}
		case *ast.StrongNode:
			result[i] = &ast.StrongNode{Nodes: ast.MergeText(n.Nodes)}
		}
	}
	return result
}
