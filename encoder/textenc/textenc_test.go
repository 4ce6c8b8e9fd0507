//-----------------------------------------------------------------------------
// Copyright (c) 2022 The Clausemark Authors
//
// This file is part of Clausemark.
//
// Clausemark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package textenc_test

import (
	"bytes"
	"testing"

	"clausemark.org/cm/ast"
	"clausemark.org/cm/encoder"
	_ "clausemark.org/cm/encoder/textenc"
)

func text(s string) *ast.TextNode { return &ast.TextNode{Text: s} }

func TestWriteDocument(t *testing.T) {
	t.Parallel()
	doc := &ast.DocumentNode{
		Meta: ast.Meta{"title": "Lease"},
		Nodes: []ast.Node{
			&ast.HeadingNode{Level: 1, Nodes: []ast.Node{text("Terms")}},
			&ast.ClauseNode{Name: "c", Nodes: []ast.Node{ast.CreateParaNode(
				text("Pay "), &ast.VariableNode{Name: "amount", Value: "100"}, &ast.SoftbreakNode{},
				&ast.EmphNode{Nodes: []ast.Node{text("now")}},
				&ast.ConditionalNode{Name: "c", Nodes: []ast.Node{text("!")}},
			)}},
			&ast.ThematicBreakNode{},
			&ast.ListNode{Kind: ast.ListBullet, Nodes: []ast.Node{
				&ast.ItemNode{Nodes: []ast.Node{ast.CreateParaNode(text("a"))}},
				&ast.ItemNode{Nodes: []ast.Node{ast.CreateParaNode(text("b"))}},
			}},
		},
	}
	enc, err := encoder.Create(encoder.EncoderText, nil)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if _, err = enc.WriteDocument(&buf, doc); err != nil {
		t.Fatal(err)
	}
	exp := "title: Lease\n\nTerms\n\nPay 100 now!\n\na\nb"
	if got := buf.String(); got != exp {
		t.Errorf("\nExpected: %q\nGot:      %q", exp, got)
	}
}
