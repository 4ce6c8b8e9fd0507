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

// Definition of Block nodes.

// ParaNode contains just a sequence of inline elements.
// Another name is "paragraph".
type ParaNode struct {
	Nodes []Node
}

func (*ParaNode) blockNode() {}

// Variant returns VariantParagraph.
func (*ParaNode) Variant() Variant { return VariantParagraph }

// WalkChildren walks down the inline elements.
func (pn *ParaNode) WalkChildren(v WalkVisitor) { WalkNodes(v, pn.Nodes) }

//--------------------------------------------------------------------------

// HeadingNode stores the heading text and level.
type HeadingNode struct {
	Level int
	Nodes []Node
}

func (*HeadingNode) blockNode() {}

// Variant returns VariantHeading.
func (*HeadingNode) Variant() Variant { return VariantHeading }

// WalkChildren walks the heading text.
func (hn *HeadingNode) WalkChildren(v WalkVisitor) { WalkNodes(v, hn.Nodes) }

//--------------------------------------------------------------------------

// ListNode is a list of items.
type ListNode struct {
	Kind  ListKind
	Start int // first number of an ordered list
	Tight bool
	Nodes []Node // only *ItemNode
}

func (*ListNode) blockNode() {}

// Variant returns VariantList.
func (*ListNode) Variant() Variant { return VariantList }

// WalkChildren walks down the items.
func (ln *ListNode) WalkChildren(v WalkVisitor) { WalkNodes(v, ln.Nodes) }

// ItemNode is a list item, a sequence of blocks.
type ItemNode struct {
	Nodes []Node
}

func (*ItemNode) blockNode() {}

// Variant returns VariantItem.
func (*ItemNode) Variant() Variant { return VariantItem }

// WalkChildren walks down the blocks of the item.
func (in *ItemNode) WalkChildren(v WalkVisitor) { WalkNodes(v, in.Nodes) }

//--------------------------------------------------------------------------

// BlockQuoteNode is a quoted sequence of blocks.
type BlockQuoteNode struct {
	Nodes []Node
}

func (*BlockQuoteNode) blockNode() {}

// Variant returns VariantBlockQuote.
func (*BlockQuoteNode) Variant() Variant { return VariantBlockQuote }

// WalkChildren walks down the quoted blocks.
func (bn *BlockQuoteNode) WalkChildren(v WalkVisitor) { WalkNodes(v, bn.Nodes) }

//--------------------------------------------------------------------------

// CodeBlockNode contains lines of uninterpreted text.
// Text ends with a newline, if it is not empty.
type CodeBlockNode struct {
	Info string
	Text string
}

func (*CodeBlockNode) blockNode() {}

// Variant returns VariantCodeBlock.
func (*CodeBlockNode) Variant() Variant { return VariantCodeBlock }

// WalkChildren does nothing.
func (*CodeBlockNode) WalkChildren(WalkVisitor) { /* No children*/ }

// HTMLBlockNode contains raw HTML of block level.
type HTMLBlockNode struct {
	Text string
}

func (*HTMLBlockNode) blockNode() {}

// Variant returns VariantHTMLBlock.
func (*HTMLBlockNode) Variant() Variant { return VariantHTMLBlock }

// WalkChildren does nothing.
func (*HTMLBlockNode) WalkChildren(WalkVisitor) { /* No children*/ }

// ThematicBreakNode specifies a horizontal rule.
type ThematicBreakNode struct{}

func (*ThematicBreakNode) blockNode() {}

// Variant returns VariantThematicBreak.
func (*ThematicBreakNode) Variant() Variant { return VariantThematicBreak }

// WalkChildren does nothing.
func (*ThematicBreakNode) WalkChildren(WalkVisitor) { /* No children*/ }

//--------------------------------------------------------------------------

// ClauseNode is a named contract clause, a sequence of blocks that came from
// a template source.
type ClauseNode struct {
	Name  string
	Src   string
	Nodes []Node
}

func (*ClauseNode) blockNode() {}

// Variant returns VariantClause.
func (*ClauseNode) Variant() Variant { return VariantClause }

// WalkChildren walks down the blocks of the clause.
func (cn *ClauseNode) WalkChildren(v WalkVisitor) { WalkNodes(v, cn.Nodes) }

// ListBlockNode is a list whose items are driven by a variable.
type ListBlockNode struct {
	Name  string
	Kind  ListKind
	Start int
	Tight bool
	Nodes []Node // only *ItemNode
}

func (*ListBlockNode) blockNode() {}

// Variant returns VariantListBlock.
func (*ListBlockNode) Variant() Variant { return VariantListBlock }

// WalkChildren walks down the items.
func (ln *ListBlockNode) WalkChildren(v WalkVisitor) { WalkNodes(v, ln.Nodes) }
