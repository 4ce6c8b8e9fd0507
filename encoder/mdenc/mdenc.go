//-----------------------------------------------------------------------------
// Copyright (c) 2022 The Clausemark Authors
//
// This file is part of Clausemark.
//
// Clausemark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package mdenc encodes the abstract syntax tree back into CommonMark.
package mdenc

import (
	"bytes"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"

	"clausemark.org/cm/ast"
	"clausemark.org/cm/encoder"
)

func init() {
	encoder.Register(encoder.EncoderMarkdown, encoder.Info{
		Create:  func(*encoder.Environment) encoder.Encoder { return Create() },
		Default: true,
	})
}

// Create an encoder.
func Create() *Encoder { return &myME }

// Encoder writes CommonMark text. Semantic nodes are written as the text
// they render to; use the embedding codec before encoding to keep them.
type Encoder struct{}

var myME Encoder

// WriteDocument writes the front matter and the blocks of a document.
func (*Encoder) WriteDocument(w io.Writer, dn *ast.DocumentNode) (int, error) {
	v := newVisitor(w)
	if err := v.writeMeta(dn.Meta); err != nil {
		return 0, err
	}
	if len(dn.Nodes) > 0 {
		v.visitBlocks(dn.Nodes, false)
		v.b.WriteByte('\n')
	}
	return v.b.Flush()
}

// WriteNodes writes a sequence of nodes. A sequence that contains a block is
// written as blocks, otherwise as inline text.
func (*Encoder) WriteNodes(w io.Writer, ns []ast.Node) (int, error) {
	v := newVisitor(w)
	if hasBlock(ns) {
		v.visitBlocks(ns, false)
		if len(ns) > 0 {
			v.b.WriteByte('\n')
		}
	} else {
		v.lineStart = true
		ast.WalkNodes(v, ns)
	}
	return v.b.Flush()
}

// String returns the CommonMark text of the given blocks.
func String(ns []ast.Node) string {
	var buf bytes.Buffer
	_, _ = Create().WriteNodes(&buf, ns)
	return buf.String()
}

func hasBlock(ns []ast.Node) bool {
	for _, n := range ns {
		if _, ok := n.(ast.BlockNode); ok {
			return true
		}
	}
	return false
}

// visitor writes the abstract syntax tree to an EncWriter.
type visitor struct {
	b         encoder.EncWriter
	lineStart bool // next text starts a line
	inHeading bool
	altDelim  bool // use the alternative list delimiter
}

func newVisitor(w io.Writer) *visitor {
	return &visitor{b: encoder.NewEncWriter(w)}
}

func (v *visitor) writeMeta(m ast.Meta) error {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	ms := make(yaml.MapSlice, 0, len(keys))
	for _, k := range keys {
		ms = append(ms, yaml.MapItem{Key: k, Value: m[k]})
	}
	data, err := yaml.Marshal(ms)
	if err != nil {
		return err
	}
	v.b.WriteString("---\n")
	v.b.Write(data)
	v.b.WriteString("---\n\n")
	return nil
}

func (v *visitor) Visit(node ast.Node) ast.WalkVisitor {
	switch n := node.(type) {
	case *ast.DocumentNode:
		v.visitBlocks(n.Nodes, false)
	case *ast.ParaNode:
		v.lineStart = true
		ast.WalkNodes(v, n.Nodes)
	case *ast.HeadingNode:
		v.visitHeading(n)
	case *ast.ListNode:
		v.visitList(n.Kind, n.Start, n.Tight, n.Nodes)
	case *ast.ListBlockNode:
		v.visitList(n.Kind, n.Start, n.Tight, n.Nodes)
	case *ast.ItemNode:
		v.visitBlocks(n.Nodes, false)
	case *ast.BlockQuoteNode:
		v.visitBlockQuote(n)
	case *ast.CodeBlockNode:
		v.visitCodeBlock(n)
	case *ast.HTMLBlockNode:
		v.b.WriteString(n.Text)
	case *ast.ThematicBreakNode:
		v.b.WriteString("***")
	case *ast.ClauseNode:
		v.visitBlocks(n.Nodes, false)
	case *ast.TextNode:
		v.writeEscaped(n.Text)
	case *ast.SoftbreakNode:
		v.visitBreak("\n")
	case *ast.LinebreakNode:
		v.visitBreak("\\\n")
	case *ast.CodeNode:
		v.writeCode(n.Text)
	case *ast.HTMLInlineNode:
		v.b.WriteString(n.Text)
		v.lineStart = false
	case *ast.EmphNode:
		v.writeFormat("*", n.Nodes)
	case *ast.StrongNode:
		v.writeFormat("**", n.Nodes)
	case *ast.LinkNode:
		v.writeLink("", n.Destination, n.Title, n.Nodes)
	case *ast.ImageNode:
		v.writeLink("!", n.Destination, n.Title, n.Nodes)
	case *ast.VariableNode:
		v.writeEscaped(n.Value)
	case *ast.FormattedVariableNode:
		v.writeEscaped(n.Value)
	case *ast.EnumVariableNode:
		v.writeEscaped(n.Value)
	case *ast.FormulaNode:
		v.writeEscaped(n.Value)
	case *ast.ConditionalNode:
		ast.WalkNodes(v, n.Nodes)
	case *ast.OptionalNode:
		ast.WalkNodes(v, n.Nodes)
	default:
		return v
	}
	return nil
}

// visitBlocks writes blocks, separated by an empty line. In tight mode only
// consecutive paragraphs are separated by an empty line.
func (v *visitor) visitBlocks(ns []ast.Node, tight bool) {
	var prev ast.Node
	for _, bn := range ns {
		if prev != nil {
			_, prevPara := prev.(*ast.ParaNode)
			_, curPara := bn.(*ast.ParaNode)
			if tight && !(prevPara && curPara) {
				v.b.WriteByte('\n')
			} else {
				v.b.WriteString("\n\n")
			}
			if sameListType(prev, bn) {
				v.altDelim = !v.altDelim
			} else {
				v.altDelim = false
			}
		}
		ast.Walk(v, bn)
		prev = bn
	}
}

// sameListType reports whether two lists would be merged into one list, if
// they were written with the same delimiter.
func sameListType(n1, n2 ast.Node) bool {
	k1, ok1 := listKind(n1)
	k2, ok2 := listKind(n2)
	return ok1 && ok2 && k1 == k2
}

func listKind(n ast.Node) (ast.ListKind, bool) {
	switch ln := n.(type) {
	case *ast.ListNode:
		return ln.Kind, true
	case *ast.ListBlockNode:
		return ln.Kind, true
	}
	return 0, false
}

func (v *visitor) visitHeading(hn *ast.HeadingNode) {
	const headingSigns = "###### "
	level := min(max(hn.Level, 1), 6)
	if len(hn.Nodes) == 0 {
		v.b.WriteString(headingSigns[len(headingSigns)-level-1 : len(headingSigns)-1])
		return
	}
	v.b.WriteString(headingSigns[len(headingSigns)-level-1:])
	v.inHeading, v.lineStart = true, false
	ast.WalkNodes(v, hn.Nodes)
	v.inHeading = false
}

func (v *visitor) visitList(kind ast.ListKind, start int, tight bool, items []ast.Node) {
	for i, item := range items {
		if i > 0 {
			if tight {
				v.b.WriteByte('\n')
			} else {
				v.b.WriteString("\n\n")
			}
		}
		var marker string
		if kind == ast.ListOrdered {
			delim := "."
			if v.altDelim {
				delim = ")"
			}
			marker = strconv.Itoa(start+i) + delim
		} else {
			marker = "-"
			if v.altDelim {
				marker = "*"
			}
		}
		var nodes []ast.Node
		if in, ok := item.(*ast.ItemNode); ok {
			nodes = in.Nodes
		} else {
			nodes = []ast.Node{item}
		}
		v.writeContainer(nodes, tight, marker+" ", strings.Repeat(" ", len(marker)+1))
	}
}

func (v *visitor) visitBlockQuote(bn *ast.BlockQuoteNode) {
	v.writeContainer(bn.Nodes, false, "> ", "> ")
}

// writeContainer writes blocks with a prefix for the first line and another
// prefix for all following lines. Empty lines get a trimmed prefix.
func (v *visitor) writeContainer(ns []ast.Node, tight bool, first, rest string) {
	var buf bytes.Buffer
	sub := newVisitor(&buf)
	sub.visitBlocks(ns, tight)
	if _, err := sub.b.Flush(); err != nil {
		return
	}
	content := buf.String()
	if content == "" {
		v.b.WriteString(strings.TrimRight(first, " "))
		return
	}
	for i, line := range strings.Split(content, "\n") {
		prefix := rest
		if i == 0 {
			prefix = first
		} else {
			v.b.WriteByte('\n')
		}
		if line == "" {
			v.b.WriteString(strings.TrimRight(prefix, " "))
		} else {
			v.b.WriteStrings(prefix, line)
		}
	}
}

func (v *visitor) visitCodeBlock(cn *ast.CodeBlockNode) {
	fenceChar := "`"
	if strings.Contains(cn.Info, "`") {
		fenceChar = "~"
	}
	fence := strings.Repeat(fenceChar, max(3, longestRun(cn.Text, fenceChar[0])+1))
	v.b.WriteStrings(fence, escapeInfo(cn.Info), "\n", cn.Text)
	if cn.Text != "" && !strings.HasSuffix(cn.Text, "\n") {
		v.b.WriteByte('\n')
	}
	v.b.WriteString(fence)
}

func (v *visitor) visitBreak(lexeme string) {
	if v.inHeading {
		v.b.WriteByte(' ')
		return
	}
	v.b.WriteString(lexeme)
	v.lineStart = true
}

func (v *visitor) writeFormat(delim string, ns []ast.Node) {
	v.b.WriteString(delim)
	v.lineStart = false
	ast.WalkNodes(v, ns)
	v.b.WriteString(delim)
}

func (v *visitor) writeLink(prefix, dest, title string, ns []ast.Node) {
	v.b.WriteStrings(prefix, "[")
	v.lineStart = false
	ast.WalkNodes(v, ns)
	v.b.WriteStrings("](", escapeDestination(dest))
	if title != "" {
		v.b.WriteStrings(` "`, escapeTitle(title), `"`)
	}
	v.b.WriteByte(')')
}

func (v *visitor) writeCode(s string) {
	if s == "" {
		v.b.WriteString("` `")
		v.lineStart = false
		return
	}
	ticks := strings.Repeat("`", longestRun(s, '`')+1)
	pad := s[0] == '`' || s[len(s)-1] == '`' ||
		(s[0] == ' ' && s[len(s)-1] == ' ' && strings.Trim(s, " ") != "")
	v.b.WriteString(ticks)
	if pad {
		v.b.WriteByte(' ')
	}
	v.b.WriteString(s)
	if pad {
		v.b.WriteByte(' ')
	}
	v.b.WriteString(ticks)
	v.lineStart = false
}

func longestRun(s string, ch byte) int {
	result, cur := 0, 0
	for i := range len(s) {
		if s[i] == ch {
			cur++
			result = max(result, cur)
		} else {
			cur = 0
		}
	}
	return result
}
