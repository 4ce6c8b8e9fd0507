//-----------------------------------------------------------------------------
// Copyright (c) 2022 The Clausemark Authors
//
// This file is part of Clausemark.
//
// Clausemark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package formats_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"clausemark.org/cm/ast"
	"clausemark.org/cm/formats"
	"clausemark.org/cm/router"
	"clausemark.org/cm/slate"
)

func text(s string) *ast.TextNode { return &ast.TextNode{Text: s} }

func para(ns ...ast.Node) *ast.ParaNode { return ast.CreateParaNode(ns...) }

const leaseSource = "# Lease\n\n```clause src=\"s1\" name=\"c1\"\nHello <variable name=\"amount\" value=\"%22100%22\"/>\n```\n"

var leaseTree = ast.CreateDocument(
	&ast.HeadingNode{Level: 1, Nodes: []ast.Node{text("Lease")}},
	&ast.ClauseNode{Name: "c1", Src: "s1", Nodes: []ast.Node{
		para(text("Hello "), &ast.VariableNode{Name: "amount", Value: "100", ElementType: ast.ElementTypeString}),
	}},
)

func newRegistry(t *testing.T) *router.Registry {
	t.Helper()
	r, err := formats.New()
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestMarkdownToContractMark(t *testing.T) {
	t.Parallel()
	r := newRegistry(t)
	got, err := r.Transform(context.Background(), []byte(leaseSource), formats.Markdown, []string{formats.ContractMark}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(leaseTree, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}

	back, err := r.Transform(context.Background(), got, formats.ContractMark, []string{formats.Markdown}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(back.([]byte)); got != leaseSource {
		t.Errorf("%q != %q", got, leaseSource)
	}
}

func TestCompositionEqualsChaining(t *testing.T) {
	t.Parallel()
	r := newRegistry(t)
	ctx := context.Background()
	got, err := r.Transform(ctx, []byte(leaseSource), formats.Markdown, []string{formats.ContractMark, formats.HTML}, nil)
	if err != nil {
		t.Fatal(err)
	}
	edges, err := r.Resolve(formats.Markdown, []string{formats.HTML})
	if err != nil {
		t.Fatal(err)
	}
	var manual any = []byte(leaseSource)
	p := &router.Params{}
	for _, e := range edges {
		if manual, err = e.Fn(ctx, manual, p); err != nil {
			t.Fatalf("%v: %v", e, err)
		}
	}
	if !bytes.Equal(got.([]byte), manual.([]byte)) {
		t.Errorf("%q != %q", got, manual)
	}
	if html := string(got.([]byte)); !strings.Contains(html, `data-name="c1"`) {
		t.Errorf("clause missing in %q", html)
	}
}

func TestNoPath(t *testing.T) {
	t.Parallel()
	r := newRegistry(t)
	if err := r.Register(router.Format{Name: "docx", Kind: router.KindBinary}); err != nil {
		t.Fatal(err)
	}
	_, err := r.Transform(context.Background(), []byte(leaseSource), formats.Markdown, []string{formats.HTML, "docx"}, nil)
	if !router.IsNoPath(err) {
		t.Errorf("expected routing error, got %v", err)
	}
}

func TestSlate(t *testing.T) {
	t.Parallel()
	r := newRegistry(t)
	ctx := context.Background()
	val, err := r.Transform(ctx, leaseTree, formats.ContractMark, []string{formats.Slate}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := val.(*slate.Value); !ok {
		t.Fatalf("expected editor value, got %T", val)
	}
	data, err := formats.Write(val)
	if err != nil {
		t.Fatal(err)
	}
	in, err := formats.Read(r, formats.Slate, data)
	if err != nil {
		t.Fatal(err)
	}
	got, err := r.Transform(ctx, in, formats.Slate, []string{formats.ContractMark}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(leaseTree, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
}

func TestJSON(t *testing.T) {
	t.Parallel()
	r := newRegistry(t)
	data, err := formats.Write(leaseTree)
	if err != nil {
		t.Fatal(err)
	}
	in, err := formats.Read(r, formats.ContractMark, data)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(leaseTree, in, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
	out, err := r.Transform(context.Background(), leaseTree, formats.ContractMark, []string{formats.JSON}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(out.([]byte)); got != string(data) {
		t.Errorf("%q != %q", got, data)
	}
}

func TestEvaluated(t *testing.T) {
	t.Parallel()
	r := newRegistry(t)
	doc := ast.CreateDocument(para(
		&ast.VariableNode{Name: "rent", Value: "1000", ElementType: "Double"},
		&ast.VariableNode{Name: "months", Value: "12", ElementType: "Integer"},
		&ast.FormulaNode{Name: "total", Code: "rent * months"},
	))
	got, err := r.Transform(context.Background(), doc, formats.ContractMark, []string{formats.Evaluated}, nil)
	if err != nil {
		t.Fatal(err)
	}
	pn := got.(*ast.DocumentNode).Nodes[0].(*ast.ParaNode)
	if fn := pn.Nodes[2].(*ast.FormulaNode); fn.Value != "12000" {
		t.Errorf("%q != %q", fn.Value, "12000")
	}
}

func TestOutputOptions(t *testing.T) {
	t.Parallel()
	r := newRegistry(t)
	doc := ast.CreateDocument(para(text("a "), &ast.StrongNode{Nodes: []ast.Node{text("b")}}, text(" "),
		&ast.VariableNode{Name: "n", Value: `"x"`, ElementType: ast.ElementTypeString}))
	p := &router.Params{RemoveFormatting: true, Unquote: true}
	got, err := r.Transform(context.Background(), doc, formats.ContractMark, []string{formats.PlainText}, p)
	if err != nil {
		t.Fatal(err)
	}
	if s := strings.TrimSpace(string(got.([]byte))); s != "a b x" {
		t.Errorf("%q != %q", s, "a b x")
	}
}

func TestPlainText(t *testing.T) {
	t.Parallel()
	r := newRegistry(t)
	got, err := r.Transform(context.Background(), []byte("First *line*\nsecond\n\n\n# Third\r\n"),
		formats.PlainText, []string{formats.Markdown}, nil)
	if err != nil {
		t.Fatal(err)
	}
	exp := "First \\*line\\*\nsecond\n\n\\# Third\n"
	if s := string(got.([]byte)); s != exp {
		t.Errorf("%q != %q", s, exp)
	}
}

func TestWrongInput(t *testing.T) {
	t.Parallel()
	r := newRegistry(t)
	if _, err := r.Transform(context.Background(), 42, formats.Markdown, []string{formats.CommonMark}, nil); err == nil {
		t.Error("number accepted as markdown")
	}
}
