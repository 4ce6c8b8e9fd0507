//-----------------------------------------------------------------------------
// Copyright (c) 2022 The Clausemark Authors
//
// This file is part of Clausemark.
//
// Clausemark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package htmlenc_test

import (
	"bytes"
	"strings"
	"testing"

	"clausemark.org/cm/ast"
	"clausemark.org/cm/encoder"
	"clausemark.org/cm/encoder/htmlenc"
)

func text(s string) *ast.TextNode { return &ast.TextNode{Text: s} }

func TestWriteNodes(t *testing.T) {
	t.Parallel()
	testcases := []struct {
		descr string
		nodes []ast.Node
		exp   string
	}{
		{"paragraph", []ast.Node{ast.CreateParaNode(text("a < b"), &ast.LinebreakNode{}, text("c"))},
			"<p>a &lt; b<br>\nc</p>\n"},
		{"heading ids", []ast.Node{
			&ast.HeadingNode{Level: 1, Nodes: []ast.Node{text("Terms")}},
			&ast.HeadingNode{Level: 2, Nodes: []ast.Node{text("Terms")}},
		}, "<h1 id=\"terms\">Terms</h1>\n<h2 id=\"terms-1\">Terms</h2>\n"},
		{"tight list", []ast.Node{&ast.ListNode{Kind: ast.ListOrdered, Start: 2, Tight: true, Nodes: []ast.Node{
			&ast.ItemNode{Nodes: []ast.Node{ast.CreateParaNode(text("a"))}},
		}}}, "<ol start=\"2\">\n<li>a</li>\n</ol>\n"},
		{"code block", []ast.Node{&ast.CodeBlockNode{Info: "clause name=\"x\"", Text: "<b>\n"}},
			"<pre><code class=\"language-clause\" data-info=\"clause name=&quot;x&quot;\">&lt;b&gt;\n</code></pre>\n"},
		{"clause", []ast.Node{&ast.ClauseNode{Name: "c1", Src: "s1", Nodes: []ast.Node{ast.CreateParaNode(text("Hello"))}}},
			"<div class=\"clause\" data-name=\"c1\" data-src=\"s1\">\n<p>Hello</p>\n</div>\n"},
		{"variable", []ast.Node{ast.CreateParaNode(&ast.VariableNode{Name: "amount", Value: "100", ElementType: "String"})},
			"<p><span class=\"variable\" data-name=\"amount\" data-element-type=\"String\">100</span></p>\n"},
		{"enum", []ast.Node{ast.CreateParaNode(&ast.EnumVariableNode{Name: "e", Value: "a", EnumValues: []string{"a", "b"}})},
			"<p><span class=\"variable\" data-name=\"e\" data-enum-values=\"[&quot;a&quot;,&quot;b&quot;]\">a</span></p>\n"},
		{"conditional", []ast.Node{ast.CreateParaNode(&ast.ConditionalNode{Name: "late", IsTrue: true,
			Nodes: []ast.Node{text("late")}, WhenTrue: []ast.Node{text("late")}})},
			"<p><span class=\"conditional\" data-name=\"late\" data-is-true=\"true\" data-when-true=\"late\" data-when-false>late</span></p>\n"},
		{"nested link", []ast.Node{ast.CreateParaNode(&ast.LinkNode{Destination: "a", Nodes: []ast.Node{
			&ast.LinkNode{Destination: "b", Nodes: []ast.Node{text("x")}}}})},
			"<p><a href=\"a\"><span>x</span></a></p>\n"},
		{"script", []ast.Node{&ast.HTMLBlockNode{Text: "<script>alert(1)</script>"}}, "\n"},
	}
	for _, tc := range testcases {
		var buf bytes.Buffer
		if _, err := htmlenc.Create(nil).WriteNodes(&buf, tc.nodes); err != nil {
			t.Errorf("%s: %v", tc.descr, err)
			continue
		}
		if got := buf.String(); got != tc.exp {
			t.Errorf("%s:\nExpected: %q\nGot:      %q", tc.descr, tc.exp, got)
		}
	}
}

func TestWriteDocument(t *testing.T) {
	t.Parallel()
	doc := &ast.DocumentNode{
		Meta:  ast.Meta{"title": "Lease", "lang": "de", "secret": "x"},
		Nodes: []ast.Node{&ast.ThematicBreakNode{}},
	}
	enc, err := encoder.Create(encoder.EncoderHTML, &encoder.Environment{IgnoreMeta: map[string]bool{"secret": true}})
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if _, err = enc.WriteDocument(&buf, doc); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	for _, exp := range []string{
		"<html lang=\"de\">",
		"<meta name=\"title\" content=\"Lease\">",
		"<body>\n<hr>\n</body>",
	} {
		if !strings.Contains(got, exp) {
			t.Errorf("%q not found in %q", exp, got)
		}
	}
	if strings.Contains(got, "secret") {
		t.Errorf("ignored meta key written: %q", got)
	}
}
