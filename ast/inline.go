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

// Definitions of inline nodes.

// TextNode just contains some text.
type TextNode struct {
	Text string
}

func (*TextNode) inlineNode() {}

// Variant returns VariantText.
func (*TextNode) Variant() Variant { return VariantText }

// WalkChildren does nothing.
func (*TextNode) WalkChildren(WalkVisitor) { /* No children*/ }

// SoftbreakNode is a line end that may be rendered as a space.
type SoftbreakNode struct{}

func (*SoftbreakNode) inlineNode() {}

// Variant returns VariantSoftbreak.
func (*SoftbreakNode) Variant() Variant { return VariantSoftbreak }

// WalkChildren does nothing.
func (*SoftbreakNode) WalkChildren(WalkVisitor) { /* No children*/ }

// LinebreakNode is a hard line break.
type LinebreakNode struct{}

func (*LinebreakNode) inlineNode() {}

// Variant returns VariantLinebreak.
func (*LinebreakNode) Variant() Variant { return VariantLinebreak }

// WalkChildren does nothing.
func (*LinebreakNode) WalkChildren(WalkVisitor) { /* No children*/ }

// CodeNode is inline program code.
type CodeNode struct {
	Text string
}

func (*CodeNode) inlineNode() {}

// Variant returns VariantCode.
func (*CodeNode) Variant() Variant { return VariantCode }

// WalkChildren does nothing.
func (*CodeNode) WalkChildren(WalkVisitor) { /* No children*/ }

// HTMLInlineNode is raw inline HTML, or a pseudo-tag that was not recognized.
type HTMLInlineNode struct {
	Text string
}

func (*HTMLInlineNode) inlineNode() {}

// Variant returns VariantHTMLInline.
func (*HTMLInlineNode) Variant() Variant { return VariantHTMLInline }

// WalkChildren does nothing.
func (*HTMLInlineNode) WalkChildren(WalkVisitor) { /* No children*/ }

//--------------------------------------------------------------------------

// EmphNode emphasizes its inline content.
type EmphNode struct {
	Nodes []Node
}

func (*EmphNode) inlineNode() {}

// Variant returns VariantEmph.
func (*EmphNode) Variant() Variant { return VariantEmph }

// WalkChildren walks down the emphasized text.
func (en *EmphNode) WalkChildren(v WalkVisitor) { WalkNodes(v, en.Nodes) }

// StrongNode strongly emphasizes its inline content.
type StrongNode struct {
	Nodes []Node
}

func (*StrongNode) inlineNode() {}

// Variant returns VariantStrong.
func (*StrongNode) Variant() Variant { return VariantStrong }

// WalkChildren walks down the strong text.
func (sn *StrongNode) WalkChildren(v WalkVisitor) { WalkNodes(v, sn.Nodes) }

// LinkNode contains the specified link.
type LinkNode struct {
	Destination string
	Title       string
	Nodes       []Node // The text associated with the link.
}

func (*LinkNode) inlineNode() {}

// Variant returns VariantLink.
func (*LinkNode) Variant() Variant { return VariantLink }

// WalkChildren walks to the link text.
func (ln *LinkNode) WalkChildren(v WalkVisitor) { WalkNodes(v, ln.Nodes) }

// ImageNode refers to an image, Nodes hold the alternative text.
type ImageNode struct {
	Destination string
	Title       string
	Nodes       []Node
}

func (*ImageNode) inlineNode() {}

// Variant returns VariantImage.
func (*ImageNode) Variant() Variant { return VariantImage }

// WalkChildren walks to the alternative text.
func (in *ImageNode) WalkChildren(v WalkVisitor) { WalkNodes(v, in.Nodes) }
