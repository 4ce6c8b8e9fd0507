//-----------------------------------------------------------------------------
// Copyright (c) 2022 The Clausemark Authors
//
// This file is part of Clausemark.
//
// Clausemark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package ast

// Rebuild is the pass-through rule table: every node is copied and its
// children are rewritten with the rewriter's rules. Concrete rule tables
// embed Rebuild and override the variants they care about.
type Rebuild struct{}

// Document copies the document and rewrites its blocks.
func (Rebuild) Document(rw *Rewriter, dn *DocumentNode) []Node {
	return []Node{&DocumentNode{Meta: dn.Meta.Clone(), Nodes: rw.Nodes(dn.Nodes)}}
}

// Paragraph copies the paragraph and rewrites its inlines.
func (Rebuild) Paragraph(rw *Rewriter, pn *ParaNode) []Node {
	return []Node{&ParaNode{Nodes: rw.Nodes(pn.Nodes)}}
}

// Heading copies the heading and rewrites its text.
func (Rebuild) Heading(rw *Rewriter, hn *HeadingNode) []Node {
	return []Node{&HeadingNode{Level: hn.Level, Nodes: rw.Nodes(hn.Nodes)}}
}

// List copies the list and rewrites its items.
func (Rebuild) List(rw *Rewriter, ln *ListNode) []Node {
	return []Node{&ListNode{Kind: ln.Kind, Start: ln.Start, Tight: ln.Tight, Nodes: rw.Nodes(ln.Nodes)}}
}

// Item copies the item and rewrites its blocks.
func (Rebuild) Item(rw *Rewriter, in *ItemNode) []Node {
	return []Node{&ItemNode{Nodes: rw.Nodes(in.Nodes)}}
}

// BlockQuote copies the quote and rewrites its blocks.
func (Rebuild) BlockQuote(rw *Rewriter, bn *BlockQuoteNode) []Node {
	return []Node{&BlockQuoteNode{Nodes: rw.Nodes(bn.Nodes)}}
}

// CodeBlock copies the code block.
func (Rebuild) CodeBlock(_ *Rewriter, cn *CodeBlockNode) []Node {
	return []Node{&CodeBlockNode{Info: cn.Info, Text: cn.Text}}
}

// HTMLBlock copies the HTML block.
func (Rebuild) HTMLBlock(_ *Rewriter, hn *HTMLBlockNode) []Node {
	return []Node{&HTMLBlockNode{Text: hn.Text}}
}

// ThematicBreak copies the break.
func (Rebuild) ThematicBreak(*Rewriter, *ThematicBreakNode) []Node {
	return []Node{&ThematicBreakNode{}}
}

// Clause copies the clause and rewrites its blocks.
func (Rebuild) Clause(rw *Rewriter, cn *ClauseNode) []Node {
	return []Node{&ClauseNode{Name: cn.Name, Src: cn.Src, Nodes: rw.Nodes(cn.Nodes)}}
}

// ListBlock copies the list block and rewrites its items.
func (Rebuild) ListBlock(rw *Rewriter, ln *ListBlockNode) []Node {
	return []Node{&ListBlockNode{
		Name:  ln.Name,
		Kind:  ln.Kind,
		Start: ln.Start,
		Tight: ln.Tight,
		Nodes: rw.Nodes(ln.Nodes),
	}}
}

// Text copies the text.
func (Rebuild) Text(_ *Rewriter, tn *TextNode) []Node { return []Node{&TextNode{Text: tn.Text}} }

// Softbreak copies the soft break.
func (Rebuild) Softbreak(*Rewriter, *SoftbreakNode) []Node { return []Node{&SoftbreakNode{}} }

// Linebreak copies the hard break.
func (Rebuild) Linebreak(*Rewriter, *LinebreakNode) []Node { return []Node{&LinebreakNode{}} }

// Code copies the code span.
func (Rebuild) Code(_ *Rewriter, cn *CodeNode) []Node { return []Node{&CodeNode{Text: cn.Text}} }

// HTMLInline copies the inline HTML.
func (Rebuild) HTMLInline(_ *Rewriter, hn *HTMLInlineNode) []Node {
	return []Node{&HTMLInlineNode{Text: hn.Text}}
}

// Emph copies the emphasis and rewrites its content.
func (Rebuild) Emph(rw *Rewriter, en *EmphNode) []Node {
	return []Node{&EmphNode{Nodes: rw.Nodes(en.Nodes)}}
}

// Strong copies the strong emphasis and rewrites its content.
func (Rebuild) Strong(rw *Rewriter, sn *StrongNode) []Node {
	return []Node{&StrongNode{Nodes: rw.Nodes(sn.Nodes)}}
}

// Link copies the link and rewrites its text.
func (Rebuild) Link(rw *Rewriter, ln *LinkNode) []Node {
	return []Node{&LinkNode{Destination: ln.Destination, Title: ln.Title, Nodes: rw.Nodes(ln.Nodes)}}
}

// Image copies the image and rewrites its alternative text.
func (Rebuild) Image(rw *Rewriter, in *ImageNode) []Node {
	return []Node{&ImageNode{Destination: in.Destination, Title: in.Title, Nodes: rw.Nodes(in.Nodes)}}
}

// Variable copies the variable.
func (Rebuild) Variable(_ *Rewriter, vn *VariableNode) []Node {
	result := *vn
	return []Node{&result}
}

// FormattedVariable copies the formatted variable.
func (Rebuild) FormattedVariable(_ *Rewriter, vn *FormattedVariableNode) []Node {
	result := *vn
	return []Node{&result}
}

// EnumVariable copies the enum variable, including its values.
func (Rebuild) EnumVariable(_ *Rewriter, vn *EnumVariableNode) []Node {
	result := *vn
	result.EnumValues = append([]string(nil), vn.EnumValues...)
	return []Node{&result}
}

// Conditional copies the conditional and rewrites all three node sequences.
func (Rebuild) Conditional(rw *Rewriter, cn *ConditionalNode) []Node {
	return []Node{&ConditionalNode{
		Name:      cn.Name,
		IsTrue:    cn.IsTrue,
		Nodes:     rw.Nodes(cn.Nodes),
		WhenTrue:  rw.Nodes(cn.WhenTrue),
		WhenFalse: rw.Nodes(cn.WhenFalse),
	}}
}

// Optional copies the optional and rewrites all three node sequences.
func (Rebuild) Optional(rw *Rewriter, on *OptionalNode) []Node {
	return []Node{&OptionalNode{
		Name:     on.Name,
		HasSome:  on.HasSome,
		Nodes:    rw.Nodes(on.Nodes),
		WhenSome: rw.Nodes(on.WhenSome),
		WhenNone: rw.Nodes(on.WhenNone),
	}}
}

// Formula copies the formula.
func (Rebuild) Formula(_ *Rewriter, fn *FormulaNode) []Node {
	result := *fn
	return []Node{&result}
}

// Clone returns a deep copy of the document.
func Clone(dn *DocumentNode) *DocumentNode { return Rewrite(Rebuild{}, dn) }
