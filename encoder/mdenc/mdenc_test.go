//-----------------------------------------------------------------------------
// Copyright (c) 2022 The Clausemark Authors
//
// This file is part of Clausemark.
//
// Clausemark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package mdenc_test

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"clausemark.org/cm/ast"
	"clausemark.org/cm/encoder/mdenc"
	"clausemark.org/cm/parser/markdown"
)

func text(s string) *ast.TextNode { return &ast.TextNode{Text: s} }

func TestWriteDocument(t *testing.T) {
	t.Parallel()
	testcases := []struct {
		descr string
		doc   *ast.DocumentNode
		exp   string
	}{
		{"empty", ast.CreateDocument(), ""},
		{"paragraphs", ast.CreateDocument(
			ast.CreateParaNode(text("a")), ast.CreateParaNode(text("b"))), "a\n\nb\n"},
		{"heading", ast.CreateDocument(
			&ast.HeadingNode{Level: 2, Nodes: []ast.Node{text("Terms #1")}}), "## Terms \\#1\n"},
		{"formatting", ast.CreateDocument(ast.CreateParaNode(
			&ast.EmphNode{Nodes: []ast.Node{text("e")}}, text(" "),
			&ast.StrongNode{Nodes: []ast.Node{text("s")}}, text(" "),
			&ast.CodeNode{Text: "a`b"})), "*e* **s** ``a`b``\n"},
		{"escapes", ast.CreateDocument(ast.CreateParaNode(text("1. *x* & [y] &amp;"))),
			"1\\. \\*x\\* & \\[y\\] \\&amp;\n"},
		{"breaks", ast.CreateDocument(ast.CreateParaNode(
			text("a"), &ast.SoftbreakNode{}, text("# b"), &ast.LinebreakNode{}, text("c"))),
			"a\n\\# b\\\nc\n"},
		{"link", ast.CreateDocument(ast.CreateParaNode(
			&ast.LinkNode{Destination: "http://x/a b", Title: `say "hi"`, Nodes: []ast.Node{text("t")}})),
			"[t](<http://x/a b> \"say \\\"hi\\\"\")\n"},
		{"tight list", ast.CreateDocument(&ast.ListNode{Kind: ast.ListBullet, Tight: true, Nodes: []ast.Node{
			&ast.ItemNode{Nodes: []ast.Node{ast.CreateParaNode(text("a"))}},
			&ast.ItemNode{Nodes: []ast.Node{ast.CreateParaNode(text("b"))}},
		}}), "- a\n- b\n"},
		{"loose ordered list", ast.CreateDocument(&ast.ListNode{Kind: ast.ListOrdered, Start: 9, Nodes: []ast.Node{
			&ast.ItemNode{Nodes: []ast.Node{ast.CreateParaNode(text("a")), ast.CreateParaNode(text("c"))}},
			&ast.ItemNode{Nodes: []ast.Node{ast.CreateParaNode(text("b"))}},
		}}), "9. a\n\n   c\n\n10. b\n"},
		{"quote", ast.CreateDocument(&ast.BlockQuoteNode{Nodes: []ast.Node{
			ast.CreateParaNode(text("a")), ast.CreateParaNode(text("b"))}}), "> a\n>\n> b\n"},
		{"code block", ast.CreateDocument(&ast.CodeBlockNode{Info: "go", Text: "x := `a`\n```\n"}),
			"````go\nx := `a`\n```\n````\n"},
		{"thematic break", ast.CreateDocument(&ast.ThematicBreakNode{}), "***\n"},
		{"meta", &ast.DocumentNode{Meta: ast.Meta{"title": "Lease"}, Nodes: []ast.Node{ast.CreateParaNode(text("x"))}},
			"---\ntitle: Lease\n---\n\nx\n"},
	}
	for _, tc := range testcases {
		var buf bytes.Buffer
		if _, err := mdenc.Create().WriteDocument(&buf, tc.doc); err != nil {
			t.Errorf("%s: %v", tc.descr, err)
			continue
		}
		if got := buf.String(); got != tc.exp {
			t.Errorf("%s:\nExpected: %q\nGot:      %q", tc.descr, tc.exp, got)
		}
	}
}

func TestSemanticFallback(t *testing.T) {
	t.Parallel()
	ns := []ast.Node{
		&ast.VariableNode{Name: "n", Value: "100"}, text(" "),
		&ast.ConditionalNode{Name: "c", Nodes: []ast.Node{text("yes")}},
	}
	if got := mdenc.String(ns); got != "100 yes" {
		t.Errorf("%q != %q", got, "100 yes")
	}
}

// TestReparse checks that printed markdown reads back into the same tree.
func TestReparse(t *testing.T) {
	t.Parallel()
	sources := []string{
		"# Title\n\nSome *emph* and **strong** text.\n",
		"- a\n- b\n  - c\n\n***\n\n1. x\n2. y\n",
		"- a\n\n* b\n",
		"> quote\n> more\n\n```clause src=\"x\"\nbody\n```\n",
		"a\\\nb  \nc `code` <span>x</span>\n",
		"Text with \\* and \\_ and 1\\. and &lt;tag&gt;\n",
		"[link](http://example.com \"T\") ![img](a.png)\n",
		"<div>\nraw\n</div>\n",
		"---\ntitle: T\n---\nBody\n",
	}
	for _, src := range sources {
		doc1, err := markdown.Parse([]byte(src))
		if err != nil {
			t.Errorf("%q: %v", src, err)
			continue
		}
		var buf bytes.Buffer
		if _, err = mdenc.Create().WriteDocument(&buf, doc1); err != nil {
			t.Errorf("%q: %v", src, err)
			continue
		}
		doc2, err := markdown.Parse(buf.Bytes())
		if err != nil {
			t.Errorf("%q: reparse: %v", buf.String(), err)
			continue
		}
		if diff := cmp.Diff(doc1, doc2, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("%q printed as %q (-first +second)\n%s", src, buf.String(), diff)
		}
	}
}
