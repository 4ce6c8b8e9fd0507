//-----------------------------------------------------------------------------
// Copyright (c) 2022 The Clausemark Authors
//
// This file is part of Clausemark.
//
// Clausemark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package schema_test

import (
	"encoding/json"
	"testing"

	goerrors "github.com/goliatone/go-errors"

	"clausemark.org/cm/ast"
	"clausemark.org/cm/schema"
)

func para(ns ...ast.Node) *ast.ParaNode { return ast.CreateParaNode(ns...) }

func TestValidateAccepts(t *testing.T) {
	t.Parallel()
	reg := schema.Default()
	doc := ast.CreateDocument(
		&ast.HeadingNode{Level: 2, Nodes: ast.CreateTextSlice("Terms")},
		&ast.ClauseNode{Name: "payment", Src: "ap://payment@0.1", Nodes: []ast.Node{
			para(
				&ast.VariableNode{Name: "amount", Value: "100"},
				&ast.ConditionalNode{Name: "late", WhenFalse: ast.CreateTextSlice("on time")},
			),
		}},
		&ast.ListBlockNode{Name: "items", Kind: ast.ListBullet, Nodes: []ast.Node{
			&ast.ItemNode{Nodes: []ast.Node{para(&ast.TextNode{Text: "x"})}},
		}},
	)
	got, err := schema.Validate(reg, doc)
	if err != nil {
		t.Fatalf("valid tree rejected: %v", err)
	}
	if got != doc {
		t.Error("Validate must return the given node")
	}
}

func TestValidateRejects(t *testing.T) {
	t.Parallel()
	reg := schema.Default()
	testcases := []struct {
		name string
		node ast.Node
		path string
	}{
		{"variable without name",
			ast.CreateDocument(para(&ast.TextNode{Text: "a"}, &ast.VariableNode{Value: "1"})),
			"/nodes/0/nodes/1"},
		{"heading level 7",
			ast.CreateDocument(&ast.HeadingNode{Level: 7}), "/nodes/0"},
		{"heading level 0",
			ast.CreateDocument(&ast.HeadingNode{}), "/nodes/0"},
		{"nested document",
			ast.CreateDocument(&ast.BlockQuoteNode{Nodes: []ast.Node{ast.CreateDocument()}}), "/nodes/0/nodes/0"},
		{"item outside list",
			ast.CreateDocument(&ast.ItemNode{}), "/nodes/0"},
		{"paragraph in paragraph",
			ast.CreateDocument(para(para())), "/nodes/0/nodes/0"},
		{"text in list",
			ast.CreateDocument(&ast.ListNode{Kind: ast.ListBullet, Nodes: []ast.Node{&ast.TextNode{Text: "x"}}}), "/nodes/0/nodes/0"},
		{"formatted variable without format",
			para(&ast.FormattedVariableNode{Name: "d", Value: "1"}), "/nodes/0"},
		{"enum variable without values",
			para(&ast.EnumVariableNode{Name: "e", Value: "a"}), "/nodes/0"},
		{"list block without kind",
			&ast.ListBlockNode{Name: "l"}, "/"},
		{"clause without name",
			&ast.ClauseNode{Src: "s"}, "/"},
		{"block in conditional branch",
			para(&ast.ConditionalNode{Name: "c", WhenTrue: []ast.Node{para()}}), "/nodes/0/whenTrue/0"},
		{"link without destination",
			para(&ast.LinkNode{}), "/nodes/0"},
	}
	for _, tc := range testcases {
		_, err := schema.Validate(reg, tc.node)
		if err == nil {
			t.Errorf("%s: no error", tc.name)
			continue
		}
		if !schema.IsSchemaError(err) || !goerrors.IsValidation(err) {
			t.Errorf("%s: not a schema error: %v", tc.name, err)
			continue
		}
		var e *goerrors.Error
		if goerrors.As(err, &e) {
			if got := e.Metadata["path"]; got != tc.path {
				t.Errorf("%s: path %q != %q", tc.name, got, tc.path)
			}
		}
	}
}

func TestGetVariant(t *testing.T) {
	t.Parallel()
	if got := schema.GetVariant(&ast.FormulaNode{}); got != ast.VariantFormula {
		t.Errorf("%v != %v", got, ast.VariantFormula)
	}
	if got := schema.GetVariant(nil); got != 0 {
		t.Errorf("nil node has variant %v", got)
	}
}

func TestRegistryCoversAllVariants(t *testing.T) {
	t.Parallel()
	reg := schema.Default()
	for _, v := range ast.Variants() {
		if _, ok := reg.Spec(v); !ok {
			t.Errorf("no schema for variant %v", v)
		}
	}
}

func TestValidateWire(t *testing.T) {
	t.Parallel()
	reg := schema.Default()
	testcases := []struct {
		src   string
		valid bool
	}{
		{`{"type":"Document","nodes":[{"type":"Paragraph","nodes":[{"type":"Text","text":"a"}]}]}`, true},
		{`{"type":"Document","nodes":[{"type":"Paragraph","nodes":[{"type":"Variable","name":"n","value":"v"}]}]}`, true},
		{`{"type":"Document","meta":{"title":"x"},"nodes":[]}`, true},
		{`{"type":"Document","nodes":[{"type":"Text","text":"a"}]}`, false},
		{`{"type":"Document","nodes":[{"type":"Paragraph","color":"red"}]}`, false},
		{`{"type":"Document","nodes":[{"type":"Heading","nodes":[]}]}`, false},
		{`{"type":"Document","nodes":[{"nodes":[]}]}`, false},
		{`{"type":"Paragraph"}`, false},
		{`{"type":"Document","nodes":[{"type":"List","kind":"dotted","nodes":[]}]}`, false},
	}
	for _, tc := range testcases {
		var v any
		if err := json.Unmarshal([]byte(tc.src), &v); err != nil {
			t.Fatalf("%q: %v", tc.src, err)
		}
		err := reg.ValidateWire(v)
		if tc.valid && err != nil {
			t.Errorf("%q: unexpected error %v", tc.src, err)
		}
		if !tc.valid {
			if err == nil {
				t.Errorf("%q: no error", tc.src)
			} else if !schema.IsSchemaError(err) {
				t.Errorf("%q: not a schema error: %v", tc.src, err)
			}
		}
	}
}
