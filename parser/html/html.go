//-----------------------------------------------------------------------------
// Copyright (c) 2022 The Clausemark Authors
//
// This file is part of Clausemark.
//
// Clausemark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package html provides a parser for HTML fragments and documents, as they
// are written by the HTML encoder.
//
// Semantic nodes are recognized by their class and data attributes. Elements
// that have no counterpart in the tree are kept as raw HTML.
package html

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/andybalholm/cascadia"
	goerrors "github.com/goliatone/go-errors"
	xhtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"clausemark.org/cm/ast"
	"clausemark.org/cm/encoder/htmlenc"
	"clausemark.org/cm/parser"
)

func init() {
	parser.Register(&parser.Info{
		Name:         "html",
		AltNames:     []string{"htm"},
		IsTextFormat: true,
		Parse:        Parse,
	})
}

var (
	selBody     = cascadia.MustCompile("body")
	selRoot     = cascadia.MustCompile("html[lang]")
	selMeta     = cascadia.MustCompile("head > meta[name][content]")
	selClause   = cascadia.MustCompile("div.clause[data-name]")
	selList     = cascadia.MustCompile("ul.list-block[data-name], ol.list-block[data-name]")
	selVariable = cascadia.MustCompile("span.variable[data-name]")
	selFormula  = cascadia.MustCompile("span.formula[data-name]")
	selCond     = cascadia.MustCompile("span.conditional[data-name]")
	selOpt      = cascadia.MustCompile("span.optional[data-name]")
)

// Parse reads HTML text. The lang attribute of the root element and all
// named meta elements of the head become document metadata.
func Parse(src []byte) (*ast.DocumentNode, error) {
	root, err := xhtml.Parse(bytes.NewReader(src))
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryBadInput, "parse HTML")
	}
	doc := &ast.DocumentNode{}
	for _, meta := range cascadia.QueryAll(root, selMeta) {
		if doc.Meta == nil {
			doc.Meta = ast.Meta{}
		}
		doc.Meta[attrValue(meta, "name")] = attrValue(meta, "content")
	}
	if n := cascadia.Query(root, selRoot); n != nil {
		if doc.Meta == nil {
			doc.Meta = ast.Meta{}
		}
		doc.Meta[htmlenc.MetaLang] = attrValue(n, "lang")
	}
	if body := cascadia.Query(root, selBody); body != nil {
		doc.Nodes = blocks(body)
	}
	return doc, nil
}

func attrValue(n *xhtml.Node, key string) string {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasAttr(n *xhtml.Node, key string) bool {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return true
		}
	}
	return false
}

var blockAtoms = map[atom.Atom]bool{
	atom.Address: true, atom.Article: true, atom.Aside: true, atom.Blockquote: true,
	atom.Details: true, atom.Dl: true, atom.Div: true, atom.Fieldset: true,
	atom.Figure: true, atom.Footer: true, atom.Form: true, atom.H1: true,
	atom.H2: true, atom.H3: true, atom.H4: true, atom.H5: true, atom.H6: true,
	atom.Header: true, atom.Hr: true, atom.Main: true, atom.Nav: true,
	atom.Ol: true, atom.P: true, atom.Pre: true, atom.Section: true,
	atom.Table: true, atom.Ul: true,
}

func isBlock(n *xhtml.Node) bool {
	return n.Type == xhtml.ElementNode && blockAtoms[n.DataAtom]
}

// blocks converts the children of an element into block nodes. Runs of
// inline content become paragraphs, unless they are white space only.
func blocks(parent *xhtml.Node) []ast.Node {
	var result []ast.Node
	var run []*xhtml.Node
	flush := func() {
		if para := inlineRun(run); para != nil {
			result = append(result, para)
		}
		run = nil
	}
	for c := parent.FirstChild; c != nil; c = c.NextSibling {
		switch {
		case c.Type == xhtml.CommentNode:
		case isBlock(c):
			flush()
			result = append(result, block(c)...)
		default:
			run = append(run, c)
		}
	}
	flush()
	return result
}

func inlineRun(run []*xhtml.Node) ast.Node {
	ins := inlineNodes(run)
	if len(ins) > 0 {
		if tn, ok := ins[0].(*ast.TextNode); ok {
			ins[0] = &ast.TextNode{Text: strings.TrimLeft(tn.Text, " \t\n")}
		}
		last := len(ins) - 1
		if tn, ok := ins[last].(*ast.TextNode); ok {
			ins[last] = &ast.TextNode{Text: strings.TrimRight(tn.Text, " \t\n")}
		}
	}
	ins = trimBreaks(ast.MergeText(ins))
	if len(ins) == 0 {
		return nil
	}
	return &ast.ParaNode{Nodes: ins}
}

func trimBreaks(ns []ast.Node) []ast.Node {
	for len(ns) > 0 {
		if _, ok := ns[0].(*ast.SoftbreakNode); !ok {
			break
		}
		ns = ns[1:]
	}
	for len(ns) > 0 {
		if _, ok := ns[len(ns)-1].(*ast.SoftbreakNode); !ok {
			break
		}
		ns = ns[:len(ns)-1]
	}
	return ns
}

func block(n *xhtml.Node) []ast.Node {
	switch n.DataAtom {
	case atom.P:
		return []ast.Node{&ast.ParaNode{Nodes: inlines(n)}}
	case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		level := int(n.Data[1] - '0')
		return []ast.Node{&ast.HeadingNode{Level: level, Nodes: inlines(n)}}
	case atom.Ul, atom.Ol:
		return []ast.Node{list(n)}
	case atom.Blockquote:
		return []ast.Node{&ast.BlockQuoteNode{Nodes: blocks(n)}}
	case atom.Pre:
		if cb := codeBlock(n); cb != nil {
			return []ast.Node{cb}
		}
	case atom.Hr:
		return []ast.Node{&ast.ThematicBreakNode{}}
	case atom.Div:
		if selClause.Match(n) {
			return []ast.Node{&ast.ClauseNode{
				Name:  attrValue(n, htmlenc.AttrName),
				Src:   attrValue(n, htmlenc.AttrSrc),
				Nodes: blocks(n),
			}}
		}
	}
	return []ast.Node{&ast.HTMLBlockNode{Text: render(n)}}
}

func list(n *xhtml.Node) ast.Node {
	kind, start := ast.ListBullet, 0
	if n.DataAtom == atom.Ol {
		kind, start = ast.ListOrdered, 1
		if s, err := strconv.Atoi(attrValue(n, "start")); err == nil {
			start = s
		}
	}
	tight := true
	var items []ast.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != xhtml.ElementNode || c.DataAtom != atom.Li {
			continue
		}
		if hasParagraph(c) {
			tight = false
		}
		items = append(items, &ast.ItemNode{Nodes: blocks(c)})
	}
	if len(items) == 0 {
		tight = false
	}
	if selList.Match(n) {
		return &ast.ListBlockNode{Name: attrValue(n, htmlenc.AttrName), Kind: kind, Start: start, Tight: tight, Nodes: items}
	}
	return &ast.ListNode{Kind: kind, Start: start, Tight: tight, Nodes: items}
}

func hasParagraph(li *xhtml.Node) bool {
	for c := li.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xhtml.ElementNode && c.DataAtom == atom.P {
			return true
		}
	}
	return false
}

func codeBlock(pre *xhtml.Node) *ast.CodeBlockNode {
	code := pre.FirstChild
	if code == nil || code.NextSibling != nil || code.Type != xhtml.ElementNode || code.DataAtom != atom.Code {
		return nil
	}
	info := attrValue(code, htmlenc.AttrInfo)
	if info == "" {
		for _, class := range strings.Fields(attrValue(code, "class")) {
			if lang, ok := strings.CutPrefix(class, "language-"); ok {
				info = lang
				break
			}
		}
	}
	return &ast.CodeBlockNode{Info: info, Text: textContent(code)}
}

func render(n *xhtml.Node) string {
	var buf bytes.Buffer
	if err := xhtml.Render(&buf, n); err != nil {
		return ""
	}
	return buf.String()
}

func textContent(n *xhtml.Node) string {
	var sb strings.Builder
	var collect func(*xhtml.Node)
	collect = func(n *xhtml.Node) {
		if n.Type == xhtml.TextNode {
			sb.WriteString(n.Data)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n)
	return sb.String()
}
