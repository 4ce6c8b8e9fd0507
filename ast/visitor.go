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

// Rules is a rule table of the rewriting engine, one rule per variant.
//
// A rule returns the nodes that replace the given node: none drops it, one
// replaces it, many flatten it into the parent sequence. A rule decides on
// its own whether and how the children are processed, by calling back into
// the Rewriter. A rule must not modify the node it receives.
type Rules interface {
	// Block nodes
	Document(rw *Rewriter, dn *DocumentNode) []Node
	Paragraph(rw *Rewriter, pn *ParaNode) []Node
	Heading(rw *Rewriter, hn *HeadingNode) []Node
	List(rw *Rewriter, ln *ListNode) []Node
	Item(rw *Rewriter, in *ItemNode) []Node
	BlockQuote(rw *Rewriter, bn *BlockQuoteNode) []Node
	CodeBlock(rw *Rewriter, cn *CodeBlockNode) []Node
	HTMLBlock(rw *Rewriter, hn *HTMLBlockNode) []Node
	ThematicBreak(rw *Rewriter, tn *ThematicBreakNode) []Node
	Clause(rw *Rewriter, cn *ClauseNode) []Node
	ListBlock(rw *Rewriter, ln *ListBlockNode) []Node

	// Inline nodes
	Text(rw *Rewriter, tn *TextNode) []Node
	Softbreak(rw *Rewriter, sn *SoftbreakNode) []Node
	Linebreak(rw *Rewriter, ln *LinebreakNode) []Node
	Code(rw *Rewriter, cn *CodeNode) []Node
	HTMLInline(rw *Rewriter, hn *HTMLInlineNode) []Node
	Emph(rw *Rewriter, en *EmphNode) []Node
	Strong(rw *Rewriter, sn *StrongNode) []Node
	Link(rw *Rewriter, ln *LinkNode) []Node
	Image(rw *Rewriter, in *ImageNode) []Node
	Variable(rw *Rewriter, vn *VariableNode) []Node
	FormattedVariable(rw *Rewriter, vn *FormattedVariableNode) []Node
	EnumVariable(rw *Rewriter, vn *EnumVariableNode) []Node
	Conditional(rw *Rewriter, cn *ConditionalNode) []Node
	Optional(rw *Rewriter, on *OptionalNode) []Node
	Formula(rw *Rewriter, fn *FormulaNode) []Node
}

// Rewriter walks a tree top-down and applies a rule table.
type Rewriter struct {
	rules Rules
}

// NewRewriter creates a rewriter for the given rule table.
func NewRewriter(rules Rules) *Rewriter { return &Rewriter{rules: rules} }

// Rules returns the rule table of the rewriter.
func (rw *Rewriter) Rules() Rules { return rw.rules }

// With returns a rewriter that applies another rule table. Rules use it to
// process children with derived parameters.
func (rw *Rewriter) With(rules Rules) *Rewriter { return &Rewriter{rules: rules} }

// Nodes rewrites a sequence of nodes, keeping document order. The result is
// nil if no node remains.
func (rw *Rewriter) Nodes(ns []Node) []Node {
	var result []Node
	for _, n := range ns {
		result = append(result, rw.Node(n)...)
	}
	return result
}

// Node dispatches a node to its rule.
func (rw *Rewriter) Node(n Node) []Node {
	r := rw.rules
	switch n := n.(type) {
	case *DocumentNode:
		return r.Document(rw, n)
	case *ParaNode:
		return r.Paragraph(rw, n)
	case *HeadingNode:
		return r.Heading(rw, n)
	case *ListNode:
		return r.List(rw, n)
	case *ItemNode:
		return r.Item(rw, n)
	case *BlockQuoteNode:
		return r.BlockQuote(rw, n)
	case *CodeBlockNode:
		return r.CodeBlock(rw, n)
	case *HTMLBlockNode:
		return r.HTMLBlock(rw, n)
	case *ThematicBreakNode:
		return r.ThematicBreak(rw, n)
	case *ClauseNode:
		return r.Clause(rw, n)
	case *ListBlockNode:
		return r.ListBlock(rw, n)
	case *TextNode:
		return r.Text(rw, n)
	case *SoftbreakNode:
		return r.Softbreak(rw, n)
	case *LinebreakNode:
		return r.Linebreak(rw, n)
	case *CodeNode:
		return r.Code(rw, n)
	case *HTMLInlineNode:
		return r.HTMLInline(rw, n)
	case *EmphNode:
		return r.Emph(rw, n)
	case *StrongNode:
		return r.Strong(rw, n)
	case *LinkNode:
		return r.Link(rw, n)
	case *ImageNode:
		return r.Image(rw, n)
	case *VariableNode:
		return r.Variable(rw, n)
	case *FormattedVariableNode:
		return r.FormattedVariable(rw, n)
	case *EnumVariableNode:
		return r.EnumVariable(rw, n)
	case *ConditionalNode:
		return r.Conditional(rw, n)
	case *OptionalNode:
		return r.Optional(rw, n)
	case *FormulaNode:
		return r.Formula(rw, n)
	case nil:
		return nil
	}
	// Every variant of this package is handled above.
	return []Node{n}
}

// Rewrite applies the rule table to a document and returns the new document.
// If the rules replace the root, the replacement nodes become the blocks of
// a new document with the same metadata.
func Rewrite(rules Rules, dn *DocumentNode) *DocumentNode {
	result := NewRewriter(rules).Node(dn)
	if len(result) == 1 {
		if doc, ok := result[0].(*DocumentNode); ok {
			return doc
		}
	}
	return &DocumentNode{Meta: dn.Meta.Clone(), Nodes: result}
}
