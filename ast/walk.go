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

// WalkVisitor is a visitor for walking the AST.
type WalkVisitor interface {
	Visit(node Node) WalkVisitor
}

// Walk traverses the AST.
func Walk(v WalkVisitor, node Node) {
	if v = v.Visit(node); v == nil {
		return
	}
	node.WalkChildren(v)
	v.Visit(nil)
}

// WalkNodes traverses a node slice.
func WalkNodes(v WalkVisitor, ns []Node) {
	for _, n := range ns {
		Walk(v, n)
	}
}

// Children returns the ordered child sequence of a node, nil for leaf variants.
// For Conditional and Optional it is the rendered branch.
func Children(n Node) []Node {
	switch n := n.(type) {
	case *DocumentNode:
		return n.Nodes
	case *ParaNode:
		return n.Nodes
	case *HeadingNode:
		return n.Nodes
	case *ListNode:
		return n.Nodes
	case *ItemNode:
		return n.Nodes
	case *BlockQuoteNode:
		return n.Nodes
	case *EmphNode:
		return n.Nodes
	case *StrongNode:
		return n.Nodes
	case *LinkNode:
		return n.Nodes
	case *ImageNode:
		return n.Nodes
	case *ClauseNode:
		return n.Nodes
	case *ListBlockNode:
		return n.Nodes
	case *ConditionalNode:
		return n.Nodes
	case *OptionalNode:
		return n.Nodes
	}
	return nil
}
