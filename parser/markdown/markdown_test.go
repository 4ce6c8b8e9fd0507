//-----------------------------------------------------------------------------
// Copyright (c) 2022 The Clausemark Authors
//
// This file is part of Clausemark.
//
// Clausemark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package markdown_test

import (
	"testing"

	goerrors "github.com/goliatone/go-errors"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"clausemark.org/cm/ast"
	"clausemark.org/cm/parser"
	"clausemark.org/cm/parser/markdown"
)

func text(s string) *ast.TextNode { return &ast.TextNode{Text: s} }

func TestParseBlocks(t *testing.T) {
	t.Parallel()
	testcases := []struct {
		src string
		exp []ast.Node
	}{
		{"", nil},
		{"abc", []ast.Node{ast.CreateParaNode(text("abc"))}},
		{"# Title\n", []ast.Node{&ast.HeadingNode{Level: 1, Nodes: []ast.Node{text("Title")}}}},
		{"Title\n---\n", []ast.Node{&ast.HeadingNode{Level: 2, Nodes: []ast.Node{text("Title")}}}},
		{"***\n", []ast.Node{&ast.ThematicBreakNode{}}},
		{"```clause x\nbody\n```\n", []ast.Node{&ast.CodeBlockNode{Info: "clause x", Text: "body\n"}}},
		{"    code\n", []ast.Node{&ast.CodeBlockNode{Text: "code\n"}}},
		{"> quoted\n", []ast.Node{&ast.BlockQuoteNode{Nodes: []ast.Node{ast.CreateParaNode(text("quoted"))}}}},
		{"<div>\nx\n</div>\n", []ast.Node{&ast.HTMLBlockNode{Text: "<div>\nx\n</div>"}}},
		{"- a\n- b\n", []ast.Node{&ast.ListNode{Kind: ast.ListBullet, Tight: true, Nodes: []ast.Node{
			&ast.ItemNode{Nodes: []ast.Node{ast.CreateParaNode(text("a"))}},
			&ast.ItemNode{Nodes: []ast.Node{ast.CreateParaNode(text("b"))}},
		}}}},
		{"3. a\n\n4. b\n", []ast.Node{&ast.ListNode{Kind: ast.ListOrdered, Start: 3, Nodes: []ast.Node{
			&ast.ItemNode{Nodes: []ast.Node{ast.CreateParaNode(text("a"))}},
			&ast.ItemNode{Nodes: []ast.Node{ast.CreateParaNode(text("b"))}},
		}}}},
	}
	for _, tc := range testcases {
		doc, err := markdown.Parse([]byte(tc.src))
		if err != nil {
			t.Errorf("%q: %v", tc.src, err)
			continue
		}
		if diff := cmp.Diff(tc.exp, doc.Nodes, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("%q: (-want +got)\n%s", tc.src, diff)
		}
	}
}

func TestParseInlines(t *testing.T) {
	t.Parallel()
	testcases := []struct {
		src string
		exp []ast.Node
	}{
		{"a *b* __c__", []ast.Node{text("a "), &ast.EmphNode{Nodes: []ast.Node{text("b")}}, text(" "),
			&ast.StrongNode{Nodes: []ast.Node{text("c")}}}},
		{"a\nb", []ast.Node{text("a"), &ast.SoftbreakNode{}, text("b")}},
		{"a\\\nb", []ast.Node{text("a"), &ast.LinebreakNode{}, text("b")}},
		{"`x`", []ast.Node{&ast.CodeNode{Text: "x"}}},
		{`\*a\* &amp; &copy;`, []ast.Node{text("*a* & ©")}},
		{"a & b", []ast.Node{text("a & b")}},
		{`[t](http://x "ti")`, []ast.Node{&ast.LinkNode{Destination: "http://x", Title: "ti", Nodes: []ast.Node{text("t")}}}},
		{`![alt](i.png)`, []ast.Node{&ast.ImageNode{Destination: "i.png", Nodes: []ast.Node{text("alt")}}}},
		{"<http://x>", []ast.Node{&ast.LinkNode{Destination: "http://x", Nodes: []ast.Node{text("http://x")}}}},
		{`a <variable name="n" value="v"/>`, []ast.Node{text("a "), &ast.HTMLInlineNode{Text: `<variable name="n" value="v"/>`}}},
	}
	for _, tc := range testcases {
		doc, err := markdown.Parse([]byte(tc.src))
		if err != nil {
			t.Errorf("%q: %v", tc.src, err)
			continue
		}
		if len(doc.Nodes) != 1 {
			t.Errorf("%q: expected one block, got %d", tc.src, len(doc.Nodes))
			continue
		}
		pn, ok := doc.Nodes[0].(*ast.ParaNode)
		if !ok {
			t.Errorf("%q: expected paragraph, got %T", tc.src, doc.Nodes[0])
			continue
		}
		if diff := cmp.Diff(tc.exp, pn.Nodes, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("%q: (-want +got)\n%s", tc.src, diff)
		}
	}
}

func TestFrontMatter(t *testing.T) {
	t.Parallel()
	src := "---\ntitle: Lease\nparties: [a, b]\nversion: 2\n---\nBody\n"
	doc, err := markdown.Parse([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	exp := ast.Meta{"title": "Lease", "parties": "[a, b]", "version": "2"}
	if diff := cmp.Diff(exp, doc.Meta); diff != "" {
		t.Errorf("meta (-want +got)\n%s", diff)
	}
	if diff := cmp.Diff([]ast.Node{ast.CreateParaNode(text("Body"))}, doc.Nodes); diff != "" {
		t.Errorf("body (-want +got)\n%s", diff)
	}

	_, err = markdown.Parse([]byte("---\ntitle: [\n---\nBody\n"))
	if err == nil {
		t.Fatal("broken front matter accepted")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryBadInput) {
		t.Errorf("unexpected error category: %v", err)
	}
}

func TestParseNestedSharesReferences(t *testing.T) {
	t.Parallel()
	_, st, err := markdown.ParseState([]byte("text\n\n[law]: http://law.example \"Law\"\n"))
	if err != nil {
		t.Fatal(err)
	}
	if got := st.References(); len(got) != 1 {
		t.Fatalf("expected one reference, got %q", got)
	}
	nodes := markdown.ParseNested([]byte("see [the law][law]"), st)
	exp := []ast.Node{ast.CreateParaNode(text("see "),
		&ast.LinkNode{Destination: "http://law.example", Title: "Law", Nodes: []ast.Node{text("the law")}})}
	if diff := cmp.Diff(exp, nodes); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}

	nodes = markdown.ParseNested([]byte("see [the law][law]"), nil)
	exp = []ast.Node{ast.CreateParaNode(text("see [the law][law]"))}
	if diff := cmp.Diff(exp, nodes); diff != "" {
		t.Errorf("without state (-want +got)\n%s", diff)
	}
}

func TestRegistered(t *testing.T) {
	t.Parallel()
	for _, name := range []string{"markdown", "md"} {
		if _, err := parser.Get(name); err != nil {
			t.Errorf("%q: %v", name, err)
		}
	}
}
