//-----------------------------------------------------------------------------
// Copyright (c) 2022 The Clausemark Authors
//
// This file is part of Clausemark.
//
// Clausemark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package markdown provides a parser for CommonMark text.
package markdown

import (
	"fmt"
	"strings"

	gm "github.com/yuin/goldmark"
	gmAst "github.com/yuin/goldmark/ast"
	gmParser "github.com/yuin/goldmark/parser"
	gmText "github.com/yuin/goldmark/text"
	"golang.org/x/net/html"

	"clausemark.org/cm/ast"
	"clausemark.org/cm/parser"
)

func init() {
	parser.Register(&parser.Info{
		Name:         "markdown",
		AltNames:     []string{"md"},
		IsTextFormat: true,
		Parse:        Parse,
	})
}

var engine = gm.New()

// State is the reader state that a nested parse shares with the enclosing
// document: the link reference definitions collected so far.
type State struct {
	refs []gmParser.Reference
}

// References returns the labels of all known link reference definitions.
func (st *State) References() []string {
	if st == nil {
		return nil
	}
	result := make([]string, 0, len(st.refs))
	for _, ref := range st.refs {
		result = append(result, string(ref.Label()))
	}
	return result
}

func (st *State) context() gmParser.Context {
	ctx := gmParser.NewContext()
	if st != nil {
		for _, ref := range st.refs {
			ctx.AddReference(ref)
		}
	}
	return ctx
}

func (st *State) collect(ctx gmParser.Context) *State {
	result := &State{}
	if st != nil {
		result.refs = append(result.refs, st.refs...)
	}
	result.refs = append(result.refs, ctx.References()...)
	return result
}

// Parse reads a complete document: optional YAML front matter, followed by
// CommonMark text.
func Parse(src []byte) (*ast.DocumentNode, error) {
	doc, _, err := ParseState(src)
	return doc, err
}

// ParseState reads a complete document and additionally returns the reader
// state, to be handed to nested parses of embedded markdown.
func ParseState(src []byte) (*ast.DocumentNode, *State, error) {
	meta, body, err := parseFrontMatter(src)
	if err != nil {
		return nil, nil, err
	}
	nodes, st := parseBlocks(body, nil)
	return &ast.DocumentNode{Meta: meta, Nodes: nodes}, st, nil
}

// ParseNested reads embedded markdown. Front matter is not recognized. Link
// references known to the state resolve inside the text.
func ParseNested(src []byte, st *State) []ast.Node {
	nodes, _ := parseBlocks(src, st)
	return nodes
}

func parseBlocks(src []byte, st *State) ([]ast.Node, *State) {
	ctx := st.context()
	node := engine.Parser().Parse(gmText.NewReader(src), gmParser.WithContext(ctx))
	p := &mdP{source: src}
	return p.acceptBlockSlice(node), st.collect(ctx)
}

type mdP struct {
	source []byte
}

func (p *mdP) acceptBlockSlice(docNode gmAst.Node) []ast.Node {
	if docNode.Type() != gmAst.TypeDocument {
		panic(fmt.Sprintf("Expected document, but got node type %v", docNode.Type()))
	}
	return p.acceptBlockChildren(docNode)
}

func (p *mdP) acceptBlockChildren(node gmAst.Node) []ast.Node {
	var result []ast.Node
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		if block := p.acceptBlock(child); block != nil {
			result = append(result, block)
		}
	}
	return result
}

func (p *mdP) acceptBlock(node gmAst.Node) ast.Node {
	if node.Type() != gmAst.TypeBlock {
		panic(fmt.Sprintf("Expected block node, but got node type %v", node.Type()))
	}
	switch n := node.(type) {
	case *gmAst.Paragraph:
		return p.acceptParagraph(n)
	case *gmAst.TextBlock:
		return p.acceptParagraph(n)
	case *gmAst.Heading:
		return &ast.HeadingNode{Level: n.Level, Nodes: p.acceptInlines(n)}
	case *gmAst.ThematicBreak:
		return &ast.ThematicBreakNode{}
	case *gmAst.CodeBlock:
		return &ast.CodeBlockNode{Text: p.acceptRawText(n)}
	case *gmAst.FencedCodeBlock:
		return p.acceptFencedCodeBlock(n)
	case *gmAst.Blockquote:
		return &ast.BlockQuoteNode{Nodes: p.acceptBlockChildren(n)}
	case *gmAst.List:
		return p.acceptList(n)
	case *gmAst.HTMLBlock:
		return p.acceptHTMLBlock(n)
	}
	panic(fmt.Sprintf("Unhandled block node of kind %v", node.Kind()))
}

func (p *mdP) acceptParagraph(node gmAst.Node) ast.Node {
	if ins := p.acceptInlines(node); len(ins) > 0 {
		return &ast.ParaNode{Nodes: ins}
	}
	return nil
}

func (p *mdP) acceptFencedCodeBlock(node *gmAst.FencedCodeBlock) *ast.CodeBlockNode {
	var info string
	if node.Info != nil {
		info = cleanText(string(node.Info.Segment.Value(p.source)), true)
	}
	return &ast.CodeBlockNode{Info: info, Text: p.acceptRawText(node)}
}

// acceptRawText returns the lines of a block, each ending with a newline.
func (p *mdP) acceptRawText(node gmAst.Node) string {
	lines := node.Lines()
	var sb strings.Builder
	for i := range lines.Len() {
		seg := lines.At(i)
		line := seg.Value(p.source)
		sb.Write(trimEOL(line))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func trimEOL(line []byte) []byte {
	if l := len(line); l > 0 {
		if l > 1 && line[l-2] == '\r' && line[l-1] == '\n' {
			return line[0 : l-2]
		}
		if line[l-1] == '\n' || line[l-1] == '\r' {
			return line[0 : l-1]
		}
	}
	return line
}

func (p *mdP) acceptList(node *gmAst.List) *ast.ListNode {
	result := &ast.ListNode{Kind: ast.ListBullet, Tight: node.IsTight}
	if node.IsOrdered() {
		result.Kind = ast.ListOrdered
		result.Start = node.Start
	}
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		item, ok := child.(*gmAst.ListItem)
		if !ok {
			panic(fmt.Sprintf("Expected list item node, but got %v", child.Kind()))
		}
		result.Nodes = append(result.Nodes, &ast.ItemNode{Nodes: p.acceptBlockChildren(item)})
	}
	return result
}

// acceptHTMLBlock returns the raw lines, including the closure line. The
// final newline is not part of the text.
func (p *mdP) acceptHTMLBlock(node *gmAst.HTMLBlock) *ast.HTMLBlockNode {
	lines := p.acceptRawText(node)
	if node.HasClosure() {
		closure := trimEOL(node.ClosureLine.Value(p.source))
		lines += string(closure)
	}
	return &ast.HTMLBlockNode{Text: strings.TrimSuffix(lines, "\n")}
}

func (p *mdP) acceptInlines(node gmAst.Node) []ast.Node {
	var result []ast.Node
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		result = append(result, p.acceptInline(child)...)
	}
	return ast.MergeText(result)
}

func (p *mdP) acceptInline(node gmAst.Node) []ast.Node {
	if node.Type() != gmAst.TypeInline {
		panic(fmt.Sprintf("Expected inline node, but got %v", node.Type()))
	}
	switch n := node.(type) {
	case *gmAst.Text:
		return p.acceptText(n)
	case *gmAst.String:
		return []ast.Node{&ast.TextNode{Text: string(n.Value)}}
	case *gmAst.CodeSpan:
		return []ast.Node{&ast.CodeNode{Text: p.acceptCodeSpan(n)}}
	case *gmAst.Emphasis:
		if n.Level == 2 {
			return []ast.Node{&ast.StrongNode{Nodes: p.acceptInlines(n)}}
		}
		return []ast.Node{&ast.EmphNode{Nodes: p.acceptInlines(n)}}
	case *gmAst.Link:
		return []ast.Node{&ast.LinkNode{
			Destination: cleanText(string(n.Destination), true),
			Title:       cleanText(string(n.Title), true),
			Nodes:       p.acceptInlines(n),
		}}
	case *gmAst.Image:
		return []ast.Node{&ast.ImageNode{
			Destination: cleanText(string(n.Destination), true),
			Title:       cleanText(string(n.Title), true),
			Nodes:       p.acceptInlines(n),
		}}
	case *gmAst.AutoLink:
		return p.acceptAutoLink(n)
	case *gmAst.RawHTML:
		return p.acceptRawHTML(n)
	}
	panic(fmt.Sprintf("Unhandled inline node %v", node.Kind()))
}

func (p *mdP) acceptText(node *gmAst.Text) []ast.Node {
	text := string(node.Segment.Value(p.source))
	if !node.IsRaw() {
		text = cleanText(text, true)
	}
	switch {
	case node.HardLineBreak():
		text = strings.TrimRight(text, " \t")
		if strings.HasSuffix(text, "\\") && !strings.HasSuffix(text, "\\\\") {
			text = text[:len(text)-1]
		}
		return []ast.Node{&ast.TextNode{Text: text}, &ast.LinebreakNode{}}
	case node.SoftLineBreak():
		return []ast.Node{&ast.TextNode{Text: strings.TrimRight(text, " \t")}, &ast.SoftbreakNode{}}
	}
	return []ast.Node{&ast.TextNode{Text: text}}
}

var ignoreAfterBS = map[byte]bool{
	'!': true, '"': true, '#': true, '$': true, '%': true, '&': true,
	'\'': true, '(': true, ')': true, '*': true, '+': true, ',': true,
	'-': true, '.': true, '/': true, ':': true, ';': true, '<': true,
	'=': true, '>': true, '?': true, '@': true, '[': true, '\\': true,
	']': true, '^': true, '_': true, '`': true, '{': true, '|': true,
	'}': true, '~': true,
}

// maxEntity is the length of the longest named character reference.
const maxEntity = 33

// cleanText removes backslashes from text and expands entities.
func cleanText(text string, cleanBS bool) string {
	lastPos := 0
	var sb strings.Builder
	for pos, ch := range text {
		if pos < lastPos {
			continue
		}
		if ch == '&' {
			if s, l := scanEntity(text[pos:]); l > 0 {
				sb.WriteString(text[lastPos:pos])
				sb.WriteString(s)
				lastPos = pos + l
			}
			continue
		}
		if cleanBS && ch == '\\' && pos < len(text)-1 && ignoreAfterBS[text[pos+1]] {
			sb.WriteString(text[lastPos:pos])
			sb.WriteByte(text[pos+1])
			lastPos = pos + 2
		}
	}
	if lastPos == 0 {
		return text
	}
	if lastPos < len(text) {
		sb.WriteString(text[lastPos:])
	}
	return sb.String()
}

// scanEntity decodes a character reference at the start of s. It returns the
// decoded text and the number of bytes consumed, or zero if there is none.
func scanEntity(s string) (string, int) {
	end := strings.IndexByte(s, ';')
	if end < 2 || end > maxEntity {
		return "", 0
	}
	ref := s[:end+1]
	if strings.ContainsAny(ref[1:end], " \t\n&") {
		return "", 0
	}
	if decoded := html.UnescapeString(ref); decoded != ref {
		return decoded, len(ref)
	}
	return "", 0
}

func (p *mdP) acceptCodeSpan(node *gmAst.CodeSpan) string {
	var sb strings.Builder
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		switch c := child.(type) {
		case *gmAst.Text:
			sb.Write(c.Segment.Value(p.source))
		case *gmAst.String:
			sb.Write(c.Value)
		}
	}
	return cleanCodeSpan(sb.String())
}

func cleanCodeSpan(text string) string {
	if text == "" {
		return ""
	}
	lastPos := 0
	var sb strings.Builder
	for pos, ch := range text {
		if ch == '\n' {
			sb.WriteString(text[lastPos:pos])
			if pos < len(text)-1 {
				sb.WriteByte(' ')
			}
			lastPos = pos + 1
		}
	}
	if lastPos == 0 {
		return text
	}
	sb.WriteString(text[lastPos:])
	return sb.String()
}

func (p *mdP) acceptAutoLink(node *gmAst.AutoLink) []ast.Node {
	u := string(node.URL(p.source))
	if node.AutoLinkType == gmAst.AutoLinkEmail && !strings.HasPrefix(strings.ToLower(u), "mailto:") {
		u = "mailto:" + u
	}
	return []ast.Node{&ast.LinkNode{
		Destination: u,
		Nodes:       ast.CreateTextSlice(string(node.Label(p.source))),
	}}
}

func (p *mdP) acceptRawHTML(node *gmAst.RawHTML) []ast.Node {
	segs := node.Segments
	var sb strings.Builder
	for i := range segs.Len() {
		seg := segs.At(i)
		sb.Write(seg.Value(p.source))
	}
	return []ast.Node{&ast.HTMLInlineNode{Text: sb.String()}}
}
