//-----------------------------------------------------------------------------
// Copyright (c) 2022 The Clausemark Authors
//
// This file is part of Clausemark.
//
// Clausemark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package router_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	goerrors "github.com/goliatone/go-errors"
	"github.com/google/go-cmp/cmp"

	"clausemark.org/cm/parser/markdown"
	"clausemark.org/cm/router"
)

func appendEdge(suffix string) router.EdgeFunc {
	return func(_ context.Context, in any, _ *router.Params) (any, error) {
		return in.(string) + suffix, nil
	}
}

func newRegistry(t *testing.T, formats []string, edges [][2]string) *router.Registry {
	t.Helper()
	r := router.New()
	for _, name := range formats {
		if err := r.Register(router.Format{Name: name, Kind: router.KindText}); err != nil {
			t.Fatal(err)
		}
	}
	for _, e := range edges {
		if err := r.AddEdge(e[0], e[1], appendEdge(">"+e[1])); err != nil {
			t.Fatal(err)
		}
	}
	return r
}

func edgeNames(edges []router.Edge) []string {
	result := make([]string, len(edges))
	for i, e := range edges {
		result[i] = e.String()
	}
	return result
}

func TestPath(t *testing.T) {
	t.Parallel()
	r := newRegistry(t, []string{"a", "b", "c", "d", "e"}, [][2]string{
		{"a", "b"}, {"a", "c"}, {"b", "d"}, {"c", "d"}, {"d", "e"}, {"e", "a"},
	})
	testcases := []struct {
		from, to string
		exp      []string
	}{
		{"a", "a", []string{}},
		{"a", "b", []string{"a->b"}},
		{"a", "d", []string{"a->b", "b->d"}},
		{"a", "e", []string{"a->b", "b->d", "d->e"}},
		{"c", "b", []string{"c->d", "d->e", "e->a", "a->b"}},
	}
	for _, tc := range testcases {
		edges, err := r.Path(tc.from, tc.to)
		if err != nil {
			t.Errorf("%s->%s: %v", tc.from, tc.to, err)
			continue
		}
		if diff := cmp.Diff(tc.exp, edgeNames(edges)); diff != "" {
			t.Errorf("%s->%s (-want +got)\n%s", tc.from, tc.to, diff)
		}
	}
}

func TestCompositionEqualsChaining(t *testing.T) {
	t.Parallel()
	r := newRegistry(t, []string{"markdown", "tree", "html"}, [][2]string{
		{"markdown", "tree"}, {"tree", "html"},
	})
	ctx := context.Background()
	got, err := r.Transform(ctx, "src", "markdown", []string{"tree", "html"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	var manual any = "src"
	for _, step := range [][2]string{{"markdown", "tree"}, {"tree", "html"}} {
		edges, err2 := r.Path(step[0], step[1])
		if err2 != nil || len(edges) != 1 {
			t.Fatalf("no direct edge %v: %v", step, err2)
		}
		if manual, err2 = edges[0].Fn(ctx, manual, nil); err2 != nil {
			t.Fatal(err2)
		}
	}
	if got != manual {
		t.Errorf("%q != %q", got, manual)
	}
	direct, err := r.Transform(ctx, "src", "markdown", []string{"html"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if direct != manual {
		t.Errorf("%q != %q", direct, manual)
	}
}

func TestNoPath(t *testing.T) {
	t.Parallel()
	r := newRegistry(t, []string{"markdown", "tree", "pdf"}, [][2]string{{"markdown", "tree"}})
	calls := 0
	if err := r.AddEdge("markdown", "markdown", func(_ context.Context, in any, _ *router.Params) (any, error) {
		calls++
		return in, nil
	}); err != nil {
		t.Fatal(err)
	}
	_, err := r.Transform(context.Background(), "src", "markdown", []string{"tree", "pdf"}, nil)
	if !router.IsNoPath(err) {
		t.Fatalf("expected routing error, got %v", err)
	}
	if !goerrors.IsCategory(err, goerrors.CategoryRouting) {
		t.Errorf("unexpected category: %v", err)
	}
	if msg := err.Error(); !strings.Contains(msg, `"tree"`) || !strings.Contains(msg, `"pdf"`) {
		t.Errorf("error does not name both formats: %q", msg)
	}
	var e *goerrors.Error
	if goerrors.As(err, &e) {
		if diff := cmp.Diff(map[string]any{"from": "tree", "to": "pdf"}, e.Metadata); diff != "" {
			t.Errorf("metadata (-want +got)\n%s", diff)
		}
	}
	if calls != 0 {
		t.Errorf("edges ran before the route was complete: %d", calls)
	}
}

func TestUnknownFormat(t *testing.T) {
	t.Parallel()
	r := newRegistry(t, []string{"a"}, nil)
	if _, err := r.Lookup("z"); !router.IsUnknownFormat(err) {
		t.Errorf("lookup: %v", err)
	}
	if err := r.AddEdge("a", "z", appendEdge("")); !router.IsUnknownFormat(err) {
		t.Errorf("add edge: %v", err)
	}
	if _, err := r.Transform(context.Background(), "", "z", []string{"a"}, nil); !router.IsUnknownFormat(err) {
		t.Errorf("transform: %v", err)
	}
	if err := r.Register(router.Format{Name: "a"}); err == nil {
		t.Error("duplicate format registered")
	}
}

func TestEdgeErrorUnchanged(t *testing.T) {
	t.Parallel()
	r := newRegistry(t, []string{"a", "b", "c"}, [][2]string{{"b", "c"}})
	errEdge := errors.New("adapter failed")
	if err := r.AddEdge("a", "b", func(context.Context, any, *router.Params) (any, error) {
		return nil, errEdge
	}); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Transform(context.Background(), "", "a", []string{"c"}, nil); err != errEdge {
		t.Errorf("%v != %v", err, errEdge)
	}
}

func TestFormats(t *testing.T) {
	t.Parallel()
	r := newRegistry(t, []string{"z", "a", "m"}, nil)
	var got []string
	for _, f := range r.Formats() {
		got = append(got, f.Name)
	}
	if diff := cmp.Diff([]string{"z", "a", "m"}, got); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
}

func TestParamsReuse(t *testing.T) {
	t.Parallel()
	r := newRegistry(t, []string{"md", "tree", "out"}, nil)
	readEdge := func(_ context.Context, in any, p *router.Params) (any, error) {
		p.Reader = &markdown.State{}
		return in, nil
	}
	writeEdge := func(_ context.Context, _ any, p *router.Params) (any, error) {
		if p.Reader != nil {
			return "reader", nil
		}
		return "none", nil
	}
	if err := r.AddEdge("md", "tree", readEdge); err != nil {
		t.Fatal(err)
	}
	if err := r.AddEdge("tree", "out", writeEdge); err != nil {
		t.Fatal(err)
	}

	params := &router.Params{Lang: "en"}
	testcases := []struct {
		from string
		exp  string
	}{
		{"md", "reader"},
		{"tree", "none"},
	}
	for _, tc := range testcases {
		got, err := r.Transform(context.Background(), "x", tc.from, []string{"out"}, params)
		if err != nil {
			t.Errorf("%s: %v", tc.from, err)
			continue
		}
		if got != tc.exp {
			t.Errorf("%s: %q != %q", tc.from, got, tc.exp)
		}
	}
	if params.Reader != nil {
		t.Error("reader state stored in caller params")
	}
}
