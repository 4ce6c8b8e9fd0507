//-----------------------------------------------------------------------------
// Copyright (c) 2022 The Clausemark Authors
//
// This file is part of Clausemark.
//
// Clausemark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package ast_test

import (
	"testing"

	"clausemark.org/cm/ast"
)

// allVariants returns a document that contains every variant at least once.
func allVariants() *ast.DocumentNode {
	return &ast.DocumentNode{
		Meta: ast.Meta{"title": "Sale"},
		Nodes: []ast.Node{
			&ast.HeadingNode{Level: 1, Nodes: ast.CreateTextSlice("Contract")},
			ast.CreateParaNode(
				&ast.TextNode{Text: "The buyer pays "},
				&ast.VariableNode{Name: "amount", Value: "100", ElementType: "Double"},
				&ast.SoftbreakNode{},
				&ast.FormattedVariableNode{Name: "due", Value: "1 May", Format: "D MMMM"},
				&ast.LinebreakNode{},
				&ast.EnumVariableNode{Name: "unit", Value: "EUR", EnumValues: []string{"EUR", "USD"}},
				&ast.ConditionalNode{
					Name:      "late",
					IsTrue:    true,
					Nodes:     ast.CreateTextSlice(" with penalty"),
					WhenTrue:  ast.CreateTextSlice(" with penalty"),
					WhenFalse: nil,
				},
				&ast.OptionalNode{
					Name:     "note",
					HasSome:  false,
					Nodes:    ast.CreateTextSlice("none"),
					WhenSome: ast.CreateTextSlice("some"),
					WhenNone: ast.CreateTextSlice("none"),
				},
				&ast.FormulaNode{Name: "total", Value: "200", Code: "amount * 2"},
				&ast.EmphNode{Nodes: ast.CreateTextSlice("em")},
				&ast.StrongNode{Nodes: ast.CreateTextSlice("strong")},
				&ast.LinkNode{Destination: "https://example.org", Title: "t", Nodes: ast.CreateTextSlice("link")},
				&ast.ImageNode{Destination: "logo.png", Nodes: ast.CreateTextSlice("logo")},
				&ast.CodeNode{Text: "x"},
				&ast.HTMLInlineNode{Text: "<b>"},
			),
			&ast.ClauseNode{Name: "c1", Src: "s1", Nodes: []ast.Node{ast.CreateParaNode(&ast.TextNode{Text: "Hello"})}},
			&ast.ListNode{Kind: ast.ListBullet, Tight: true, Nodes: []ast.Node{
				&ast.ItemNode{Nodes: []ast.Node{ast.CreateParaNode(&ast.TextNode{Text: "one"})}},
			}},
			&ast.ListBlockNode{Name: "items", Kind: ast.ListOrdered, Start: 1, Tight: true, Nodes: []ast.Node{
				&ast.ItemNode{Nodes: []ast.Node{ast.CreateParaNode(&ast.TextNode{Text: "two"})}},
			}},
			&ast.BlockQuoteNode{Nodes: []ast.Node{ast.CreateParaNode(&ast.TextNode{Text: "quote"})}},
			&ast.CodeBlockNode{Info: "go", Text: "x := 1\n"},
			&ast.HTMLBlockNode{Text: "<div></div>\n"},
			&ast.ThematicBreakNode{},
		},
	}
}

type countVisitor map[ast.Variant]int

func (cv countVisitor) Visit(node ast.Node) ast.WalkVisitor {
	if node != nil {
		cv[node.Variant()]++
	}
	return cv
}

func TestWalkVisitsAllVariants(t *testing.T) {
	t.Parallel()
	cv := countVisitor{}
	ast.Walk(cv, allVariants())
	for _, v := range ast.Variants() {
		if cv[v] == 0 {
			t.Errorf("variant %v not visited", v)
		}
	}
	if got := cv[ast.VariantText]; got != 12 {
		t.Errorf("expected 12 text nodes, but got %d", got)
	}
}

func TestParseVariant(t *testing.T) {
	t.Parallel()
	for _, v := range ast.Variants() {
		got, ok := ast.ParseVariant(v.String())
		if !ok || got != v {
			t.Errorf("%q: %v != %v", v.String(), got, v)
		}
	}
	if _, ok := ast.ParseVariant("Table"); ok {
		t.Error("unknown variant Table was accepted")
	}
}

func TestMergeText(t *testing.T) {
	t.Parallel()
	got := ast.MergeText([]ast.Node{
		&ast.TextNode{Text: "a"},
		&ast.TextNode{Text: ""},
		&ast.TextNode{Text: "b"},
		&ast.SoftbreakNode{},
		&ast.TextNode{Text: "c"},
	})
	if len(got) != 3 {
		t.Fatalf("expected 3 nodes, but got %d", len(got))
	}
	if tn, ok := got[0].(*ast.TextNode); !ok || tn.Text != "ab" {
		t.Errorf("first node should be text %q, but is %v", "ab", got[0])
	}
}

func BenchmarkWalk(b *testing.B) {
	root := allVariants()
	v := countVisitor{}
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		ast.Walk(v, root)
	}
}
