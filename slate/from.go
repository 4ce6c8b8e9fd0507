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
	"clausemark.org/cm/ast"
	"clausemark.org/cm/encoder/textenc"
)

// FromDocument converts a document into an editor value. Metadata becomes the
// data of the document node.
func FromDocument(dn *ast.DocumentNode) *Value {
	doc := &Node{Object: ObjectDocument, Nodes: fromBlocks(dn.Nodes)}
	if len(dn.Meta) > 0 {
		doc.Data = make(map[string]any, len(dn.Meta))
		for k, v := range dn.Meta {
			doc.Data[k] = v
		}
	}
	return &Value{Object: ObjectValue, Document: doc}
}

func block(typ string, data map[string]any, nodes ...*Node) *Node {
	return &Node{Object: ObjectBlock, Type: typ, Data: data, Nodes: nodes}
}

func textLeaf(s string, marks []string) *Node {
	n := &Node{Object: ObjectText, Text: s}
	n.Marks = markList(marks)
	return n
}

func markList(marks []string) []Mark {
	if len(marks) == 0 {
		return nil
	}
	result := make([]Mark, len(marks))
	for i, m := range marks {
		result[i] = Mark{Object: ObjectMark, Type: m}
	}
	return result
}

func fromBlocks(ns []ast.Node) []*Node {
	result := make([]*Node, 0, len(ns))
	for _, n := range ns {
		result = append(result, fromBlock(n))
	}
	return result
}

func fromBlock(n ast.Node) *Node {
	switch n := n.(type) {
	case *ast.ParaNode:
		return block(TypeParagraph, nil, fromInlines(n.Nodes, nil)...)
	case *ast.HeadingNode:
		level := min(max(n.Level, 1), 6)
		return block(headingTypes[level-1], nil, fromInlines(n.Nodes, nil)...)
	case *ast.ListNode:
		typ, data := TypeBulletList, map[string]any{"tight": n.Tight}
		if n.Kind == ast.ListOrdered {
			typ, data["start"] = TypeOrderedList, n.Start
		}
		return block(typ, data, fromBlocks(n.Nodes)...)
	case *ast.ItemNode:
		return block(TypeListItem, nil, fromBlocks(n.Nodes)...)
	case *ast.BlockQuoteNode:
		return block(TypeBlockQuote, nil, fromBlocks(n.Nodes)...)
	case *ast.CodeBlockNode:
		return block(TypeCodeBlock, map[string]any{"info": n.Info}, textLeaf(n.Text, nil))
	case *ast.HTMLBlockNode:
		return block(TypeHTMLBlock, map[string]any{"content": n.Text})
	case *ast.ThematicBreakNode:
		return block(TypeThematicBreak, nil)
	case *ast.ClauseNode:
		return block(TypeClause, map[string]any{"name": n.Name, "src": n.Src}, fromBlocks(n.Nodes)...)
	case *ast.ListBlockNode:
		return block(TypeListBlock, map[string]any{
			"name": n.Name, "type": n.Kind.String(), "start": n.Start, "tight": n.Tight,
		}, fromBlocks(n.Nodes)...)
	}
	// Inline content at block level.
	return block(TypeParagraph, nil, fromInlines([]ast.Node{n}, nil)...)
}

// fromInlines converts inline nodes. The marks of the enclosing formatting
// are given to every leaf.
func fromInlines(ns []ast.Node, marks []string) []*Node {
	var result []*Node
	for _, n := range ns {
		result = append(result, fromInline(n, marks)...)
	}
	return result
}

func withMark(marks []string, mark string) []string {
	return append(marks[:len(marks):len(marks)], mark)
}

func inline(typ string, data map[string]any, marks []string, nodes ...*Node) *Node {
	return &Node{Object: ObjectInline, Type: typ, Data: data, Nodes: nodes, Marks: markList(marks)}
}

func fromInline(n ast.Node, marks []string) []*Node {
	switch n := n.(type) {
	case *ast.TextNode:
		if n.Text == "" {
			return nil
		}
		return []*Node{textLeaf(n.Text, marks)}
	case *ast.CodeNode:
		return []*Node{textLeaf(n.Text, withMark(marks, MarkCode))}
	case *ast.EmphNode:
		return fromInlines(n.Nodes, withMark(marks, MarkItalic))
	case *ast.StrongNode:
		return fromInlines(n.Nodes, withMark(marks, MarkBold))
	case *ast.SoftbreakNode:
		return []*Node{inline(TypeSoftbreak, nil, marks)}
	case *ast.LinebreakNode:
		return []*Node{inline(TypeLinebreak, nil, marks)}
	case *ast.HTMLInlineNode:
		return []*Node{inline(TypeHTMLInline, map[string]any{"content": n.Text}, marks)}
	case *ast.LinkNode:
		return []*Node{inline(TypeLink, map[string]any{"href": n.Destination, "title": n.Title}, nil,
			fromInlines(n.Nodes, marks)...)}
	case *ast.ImageNode:
		return []*Node{inline(TypeImage, map[string]any{
			"href": n.Destination, "title": n.Title, "alt": textenc.String(n.Nodes),
		}, marks)}
	case *ast.VariableNode:
		return []*Node{inline(TypeVariable, variableData(n.Name, n.Value, n.ElementType), marks)}
	case *ast.FormattedVariableNode:
		data := variableData(n.Name, n.Value, n.ElementType)
		data["format"] = n.Format
		return []*Node{inline(TypeVariable, data, marks)}
	case *ast.EnumVariableNode:
		data := variableData(n.Name, n.Value, n.ElementType)
		data["enumValues"] = append([]string(nil), n.EnumValues...)
		return []*Node{inline(TypeVariable, data, marks)}
	case *ast.FormulaNode:
		return []*Node{inline(TypeFormula, map[string]any{"name": n.Name, "value": n.Value, "code": n.Code}, marks)}
	case *ast.ConditionalNode:
		return []*Node{inline(TypeCond, map[string]any{
			"name":      n.Name,
			"isTrue":    n.IsTrue,
			"whenTrue":  textenc.String(n.WhenTrue),
			"whenFalse": textenc.String(n.WhenFalse),
		}, nil, fromInlines(n.Nodes, marks)...)}
	case *ast.OptionalNode:
		return []*Node{inline(TypeOptional, map[string]any{
			"name":     n.Name,
			"hasSome":  n.HasSome,
			"whenSome": textenc.String(n.WhenSome),
			"whenNone": textenc.String(n.WhenNone),
		}, nil, fromInlines(n.Nodes, marks)...)}
	}
	return nil
}

func variableData(name, value, elementType string) map[string]any {
	data := map[string]any{"name": name, "value": value}
	if elementType != "" {
		data["elementType"] = elementType
	}
	return data
}
