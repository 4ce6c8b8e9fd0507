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
	"encoding/json"

	"clausemark.org/cm/ast"
	"clausemark.org/cm/encoder/mdenc"
	"clausemark.org/cm/encoder/textenc"
	"clausemark.org/cm/schema"
	"clausemark.org/cm/transform"
)

// Encode replaces all semantic nodes of a valid document by their plain
// shells. Optional nodes have no shell; they are replaced by their active
// branch. The code of a formula is not carried.
func Encode(reg *schema.Registry, dn *ast.DocumentNode) (*ast.DocumentNode, error) {
	if _, err := schema.Validate(reg, dn); err != nil {
		return nil, err
	}
	result := ast.Rewrite(encodeRules{}, dn)
	if _, err := schema.Validate(reg, result); err != nil {
		return nil, err
	}
	return result, nil
}

type encodeRules struct{ ast.Rebuild }

// Clause becomes a fenced code block with the printed children as its body.
func (encodeRules) Clause(rw *ast.Rewriter, cn *ast.ClauseNode) []ast.Node {
	t := &Tag{Name: TagClause, Attrs: []Attr{{AttrSrc, cn.Src}, {AttrName, cn.Name}}}
	return []ast.Node{&ast.CodeBlockNode{Info: t.String(), Text: mdenc.String(rw.Nodes(cn.Nodes))}}
}

// ListBlock becomes a fenced code block with the printed list as its body.
func (encodeRules) ListBlock(rw *ast.Rewriter, ln *ast.ListBlockNode) []ast.Node {
	t := &Tag{Name: TagList, Attrs: []Attr{{AttrName, ln.Name}}}
	var body string
	if items := rw.Nodes(ln.Nodes); len(items) > 0 {
		body = mdenc.String([]ast.Node{&ast.ListNode{Kind: ln.Kind, Start: ln.Start, Tight: ln.Tight, Nodes: items}})
	}
	return []ast.Node{&ast.CodeBlockNode{Info: t.String(), Text: body}}
}

func inlineTag(name string, attrs ...Attr) []ast.Node {
	t := &Tag{Name: name, Attrs: attrs}
	return []ast.Node{&ast.HTMLInlineNode{Text: t.Inline()}}
}

func embedValue(elementType, value string) string {
	if elementType == ast.ElementTypeString {
		return transform.QuoteValue(value)
	}
	return value
}

// Variable becomes a variable pseudo-tag with two attributes.
func (encodeRules) Variable(_ *ast.Rewriter, vn *ast.VariableNode) []ast.Node {
	return inlineTag(TagVariable, Attr{AttrName, vn.Name}, Attr{AttrValue, embedValue(vn.ElementType, vn.Value)})
}

// FormattedVariable becomes a variable pseudo-tag with a format attribute.
func (encodeRules) FormattedVariable(_ *ast.Rewriter, vn *ast.FormattedVariableNode) []ast.Node {
	return inlineTag(TagVariable,
		Attr{AttrName, vn.Name}, Attr{AttrValue, embedValue(vn.ElementType, vn.Value)}, Attr{AttrFormat, vn.Format})
}

// EnumVariable becomes a variable pseudo-tag with the enumeration values as
// a JSON array.
func (encodeRules) EnumVariable(_ *ast.Rewriter, vn *ast.EnumVariableNode) []ast.Node {
	return inlineTag(TagVariable,
		Attr{AttrName, vn.Name},
		Attr{AttrValue, embedValue(vn.ElementType, vn.Value)},
		Attr{AttrEnumValues, FormatEnumValues(vn.EnumValues)})
}

// Formula becomes a formula pseudo-tag.
func (encodeRules) Formula(_ *ast.Rewriter, fn *ast.FormulaNode) []ast.Node {
	return inlineTag(TagFormula, Attr{AttrName, fn.Name}, Attr{AttrValue, fn.Value})
}

// Conditional becomes an if pseudo-tag. The value is the text of the
// rendered branch, the branches are stored as text.
func (encodeRules) Conditional(_ *ast.Rewriter, cn *ast.ConditionalNode) []ast.Node {
	return inlineTag(TagIf,
		Attr{AttrName, cn.Name},
		Attr{AttrValue, textenc.String(cn.Nodes)},
		Attr{AttrWhenTrue, textenc.String(cn.WhenTrue)},
		Attr{AttrWhenFalse, textenc.String(cn.WhenFalse)},
	)
}

// Optional is replaced by its rendered branch.
func (encodeRules) Optional(rw *ast.Rewriter, on *ast.OptionalNode) []ast.Node {
	return rw.Nodes(on.Nodes)
}

// FormatEnumValues returns the attribute text of enumeration values.
func FormatEnumValues(values []string) string {
	b, err := json.Marshal(values)
	if err != nil {
		return "[]"
	}
	return string(b)
}

// ParseEnumValues decodes the attribute text of enumeration values.
func ParseEnumValues(s string) ([]string, bool) {
	var values []string
	if err := json.Unmarshal([]byte(s), &values); err != nil || len(values) == 0 {
		return nil, false
	}
	return values, true
}
