//-----------------------------------------------------------------------------
// Copyright (c) 2022 The Clausemark Authors
//
// This file is part of Clausemark.
//
// Clausemark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package html_test

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"clausemark.org/cm/ast"
	"clausemark.org/cm/encoder/htmlenc"
	"clausemark.org/cm/parser"
	"clausemark.org/cm/parser/html"
)

func text(s string) *ast.TextNode { return &ast.TextNode{Text: s} }

func para(ns ...ast.Node) *ast.ParaNode { return ast.CreateParaNode(ns...) }

func item(ns ...ast.Node) *ast.ItemNode { return &ast.ItemNode{Nodes: ns} }

func TestParse(t *testing.T) {
	t.Parallel()
	testcases := []struct {
		src string
		exp []ast.Node
	}{
		{"", nil},
		{"<p>a &amp; <em>b</em></p>", []ast.Node{para(text("a & "), &ast.EmphNode{Nodes: []ast.Node{text("b")}})}},
		{"loose text", []ast.Node{para(text("loose text"))}},
		{"<h3 id=\"x\">T</h3>", []ast.Node{&ast.HeadingNode{Level: 3, Nodes: []ast.Node{text("T")}}}},
		{"<p>a<br>\nb\nc</p>", []ast.Node{para(text("a"), &ast.LinebreakNode{}, text("b"), &ast.SoftbreakNode{}, text("c"))}},
		{"<ul>\n<li>a</li>\n<li><p>b</p></li>\n</ul>", []ast.Node{&ast.ListNode{Kind: ast.ListBullet, Nodes: []ast.Node{
			item(para(text("a"))), item(para(text("b")))}}}},
		{"<ol start=\"4\"><li>x</li></ol>", []ast.Node{&ast.ListNode{Kind: ast.ListOrdered, Start: 4, Tight: true, Nodes: []ast.Node{
			item(para(text("x")))}}}},
		{"<pre><code class=\"language-go\">x := 1\n</code></pre>", []ast.Node{&ast.CodeBlockNode{Info: "go", Text: "x := 1\n"}}},
		{"<pre><code>plain</code></pre>", []ast.Node{&ast.CodeBlockNode{Text: "plain"}}},
		{"<div class=\"other\">x</div>", []ast.Node{&ast.HTMLBlockNode{Text: "<div class=\"other\">x</div>"}}},
		{"<p><span class=\"note\">n</span></p>", []ast.Node{para(&ast.HTMLInlineNode{Text: "<span class=\"note\">n</span>"})}},
		{"<p><span class=\"variable\" data-name=\"v\" data-enum-values=\"broken\">x</span></p>",
			[]ast.Node{para(&ast.HTMLInlineNode{Text: "<span class=\"variable\" data-name=\"v\" data-enum-values=\"broken\">x</span>"})}},
		{"<p><a href=\"u\" title=\"t\">l</a><img src=\"i.png\" alt=\"alt\"></p>", []ast.Node{para(
			&ast.LinkNode{Destination: "u", Title: "t", Nodes: []ast.Node{text("l")}},
			&ast.ImageNode{Destination: "i.png", Nodes: []ast.Node{text("alt")}})}},
	}
	for _, tc := range testcases {
		doc, err := html.Parse([]byte(tc.src))
		if err != nil {
			t.Errorf("%q: %v", tc.src, err)
			continue
		}
		if diff := cmp.Diff(tc.exp, doc.Nodes, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("%q: (-want +got)\n%s", tc.src, diff)
		}
	}
}

func TestParseMeta(t *testing.T) {
	t.Parallel()
	src := `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><meta name="title" content="Lease"></head><body><hr></body></html>`
	doc, err := html.Parse([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	exp := &ast.DocumentNode{Meta: ast.Meta{"title": "Lease", "lang": "en"}, Nodes: []ast.Node{&ast.ThematicBreakNode{}}}
	if diff := cmp.Diff(exp, doc); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
}

// TestEncodedHTML checks that HTML written by the encoder reads back into
// the same tree.
func TestEncodedHTML(t *testing.T) {
	t.Parallel()
	doc := &ast.DocumentNode{
		Meta: ast.Meta{"title": "Lease"},
		Nodes: []ast.Node{
			&ast.HeadingNode{Level: 1, Nodes: []ast.Node{text("Lease")}},
			&ast.ClauseNode{Name: "payment", Src: "s1", Nodes: []ast.Node{
				para(text("Pay "), &ast.VariableNode{Name: "amount", Value: "100", ElementType: "Double"},
					text(" on "), &ast.FormattedVariableNode{Name: "due", Value: "1 May", Format: "D MMMM"},
					&ast.LinebreakNode{}, text("in "),
					&ast.EnumVariableNode{Name: "cur", Value: "EUR", EnumValues: []string{"EUR", "USD"}}, text(".")),
				para(&ast.ConditionalNode{Name: "late", IsTrue: true, Nodes: []ast.Node{text("Late fee")},
					WhenTrue: []ast.Node{text("Late fee")}, WhenFalse: []ast.Node{text("No fee")}},
					text(" "), &ast.OptionalNode{Name: "o", WhenSome: []ast.Node{text("x")}},
					&ast.FormulaNode{Name: "total", Value: "42", Code: "a+b"}),
			}},
			&ast.ListBlockNode{Name: "items", Kind: ast.ListOrdered, Start: 1, Tight: true, Nodes: []ast.Node{
				item(para(&ast.StrongNode{Nodes: []ast.Node{text("one")}})),
				item(para(text("two")), &ast.ListNode{Kind: ast.ListBullet, Tight: true, Nodes: []ast.Node{
					item(para(text("nested")))}}),
			}},
			&ast.BlockQuoteNode{Nodes: []ast.Node{para(text("quoted"), &ast.SoftbreakNode{}, text("more"))}},
			&ast.CodeBlockNode{Info: "clause src=\"a\" name=\"b\"", Text: "body\n"},
			&ast.ListNode{Kind: ast.ListBullet, Nodes: []ast.Node{item(para(text("a")), para(text("b")))}},
			&ast.ThematicBreakNode{},
			para(&ast.LinkNode{Destination: "http://x", Title: "t", Nodes: []ast.Node{text("x")}},
				&ast.CodeNode{Text: "a<b"}),
		},
	}
	var buf bytes.Buffer
	if _, err := htmlenc.Create(nil).WriteDocument(&buf, doc); err != nil {
		t.Fatal(err)
	}
	got, err := html.Parse(buf.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(doc, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("%s\n(-want +got)\n%s", buf.String(), diff)
	}
}

func TestRegistered(t *testing.T) {
	t.Parallel()
	if _, err := parser.Get("html"); err != nil {
		t.Error(err)
	}
}
