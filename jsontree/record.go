//-----------------------------------------------------------------------------
// Copyright (c) 2022 The Clausemark Authors
//
// This file is part of Clausemark.
//
// Clausemark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package jsontree

import (
	"fmt"

	"clausemark.org/cm/ast"
)

// FromRecord builds a node from its wire shape. The record should have been
// checked against the JSON schema of the wire shape before.
func FromRecord(r Record) (ast.Node, error) {
	typ, _ := r["type"].(string)
	v, ok := ast.ParseVariant(typ)
	if !ok {
		return nil, wireError(fmt.Sprintf("unknown node type %q", typ))
	}
	rd := reader{r: r}
	var n ast.Node
	switch v {
	case ast.VariantDocument:
		dn := &ast.DocumentNode{Nodes: rd.nodes("nodes")}
		if meta, isMap := r["meta"].(map[string]any); isMap && len(meta) > 0 {
			dn.Meta = make(ast.Meta, len(meta))
			for k, val := range meta {
				dn.Meta[k], _ = val.(string)
			}
		}
		n = dn
	case ast.VariantParagraph:
		n = &ast.ParaNode{Nodes: rd.nodes("nodes")}
	case ast.VariantHeading:
		n = &ast.HeadingNode{Level: rd.integer("level"), Nodes: rd.nodes("nodes")}
	case ast.VariantList:
		n = &ast.ListNode{Kind: rd.kind(), Start: rd.integer("start"), Tight: rd.boolean("tight"), Nodes: rd.nodes("nodes")}
	case ast.VariantItem:
		n = &ast.ItemNode{Nodes: rd.nodes("nodes")}
	case ast.VariantBlockQuote:
		n = &ast.BlockQuoteNode{Nodes: rd.nodes("nodes")}
	case ast.VariantEmph:
		n = &ast.EmphNode{Nodes: rd.nodes("nodes")}
	case ast.VariantStrong:
		n = &ast.StrongNode{Nodes: rd.nodes("nodes")}
	case ast.VariantLink:
		n = &ast.LinkNode{Destination: rd.str("destination"), Title: rd.str("title"), Nodes: rd.nodes("nodes")}
	case ast.VariantImage:
		n = &ast.ImageNode{Destination: rd.str("destination"), Title: rd.str("title"), Nodes: rd.nodes("nodes")}
	case ast.VariantCodeBlock:
		n = &ast.CodeBlockNode{Info: rd.str("info"), Text: rd.str("text")}
	case ast.VariantCode:
		n = &ast.CodeNode{Text: rd.str("text")}
	case ast.VariantHTMLInline:
		n = &ast.HTMLInlineNode{Text: rd.str("text")}
	case ast.VariantHTMLBlock:
		n = &ast.HTMLBlockNode{Text: rd.str("text")}
	case ast.VariantThematicBreak:
		n = &ast.ThematicBreakNode{}
	case ast.VariantSoftbreak:
		n = &ast.SoftbreakNode{}
	case ast.VariantLinebreak:
		n = &ast.LinebreakNode{}
	case ast.VariantText:
		n = &ast.TextNode{Text: rd.str("text")}
	case ast.VariantClause:
		n = &ast.ClauseNode{Name: rd.str("name"), Src: rd.str("src"), Nodes: rd.nodes("nodes")}
	case ast.VariantVariable:
		n = &ast.VariableNode{Name: rd.str("name"), Value: rd.str("value"), ElementType: rd.str("elementType")}
	case ast.VariantFormattedVariable:
		n = &ast.FormattedVariableNode{
			Name: rd.str("name"), Value: rd.str("value"), ElementType: rd.str("elementType"), Format: rd.str("format"),
		}
	case ast.VariantEnumVariable:
		n = &ast.EnumVariableNode{
			Name: rd.str("name"), Value: rd.str("value"), ElementType: rd.str("elementType"), EnumValues: rd.strings("enumValues"),
		}
	case ast.VariantConditional:
		n = &ast.ConditionalNode{
			Name: rd.str("name"), IsTrue: rd.boolean("isTrue"),
			Nodes: rd.nodes("nodes"), WhenTrue: rd.nodes("whenTrue"), WhenFalse: rd.nodes("whenFalse"),
		}
	case ast.VariantOptional:
		n = &ast.OptionalNode{
			Name: rd.str("name"), HasSome: rd.boolean("hasSome"),
			Nodes: rd.nodes("nodes"), WhenSome: rd.nodes("whenSome"), WhenNone: rd.nodes("whenNone"),
		}
	case ast.VariantFormula:
		n = &ast.FormulaNode{Name: rd.str("name"), Value: rd.str("value"), Code: rd.str("code")}
	case ast.VariantListBlock:
		n = &ast.ListBlockNode{
			Name: rd.str("name"), Kind: rd.kind(), Start: rd.integer("start"), Tight: rd.boolean("tight"), Nodes: rd.nodes("nodes"),
		}
	}
	if rd.err != nil {
		return nil, rd.err
	}
	return n, nil
}

// reader reads attributes of a record. The first error is kept.
type reader struct {
	r   Record
	err error
}

func (rd *reader) str(key string) string {
	s, _ := rd.r[key].(string)
	return s
}

func (rd *reader) boolean(key string) bool {
	b, _ := rd.r[key].(bool)
	return b
}

func (rd *reader) integer(key string) int {
	switch v := rd.r[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return 0
}

func (rd *reader) kind() ast.ListKind {
	k, ok := ast.ParseListKind(rd.str("kind"))
	if !ok && rd.err == nil {
		rd.err = wireError(fmt.Sprintf("unknown list kind %q", rd.str("kind")))
	}
	return k
}

func (rd *reader) strings(key string) []string {
	switch v := rd.r[key].(type) {
	case []string:
		return append([]string(nil), v...)
	case []any:
		result := make([]string, 0, len(v))
		for _, elem := range v {
			s, _ := elem.(string)
			result = append(result, s)
		}
		return result
	}
	return nil
}

func (rd *reader) nodes(key string) []ast.Node {
	var list []any
	switch v := rd.r[key].(type) {
	case []any:
		list = v
	case []Record:
		for _, rec := range v {
			list = append(list, rec)
		}
	}
	if len(list) == 0 {
		return nil
	}
	result := make([]ast.Node, 0, len(list))
	for _, elem := range list {
		rec, ok := elem.(Record)
		if !ok {
			if rd.err == nil {
				rd.err = wireError(fmt.Sprintf("%s: node expected", key))
			}
			return nil
		}
		n, err := FromRecord(rec)
		if err != nil {
			if rd.err == nil {
				rd.err = err
			}
			return nil
		}
		result = append(result, n)
	}
	return result
}
