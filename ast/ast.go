//-----------------------------------------------------------------------------
// Copyright (c) 2022 The Clausemark Authors
//
// This file is part of Clausemark.
//
// Clausemark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package ast provides the abstract syntax tree for contract documents.
//
// A tree is either plain (only structural markdown variants) or semantic (the
// plain variants plus clauses, variables, conditionals, optionals, formulas
// and list blocks).
package ast

// Node is the interface, all nodes must implement.
type Node interface {
	Variant() Variant
	WalkChildren(v WalkVisitor)
}

// BlockNode is the interface that all block nodes must implement.
type BlockNode interface {
	Node
	blockNode()
}

// InlineNode is the interface that all inline nodes must implement.
type InlineNode interface {
	Node
	inlineNode()
}

// Meta stores the front matter of a document.
type Meta map[string]string

// Clone returns an independent copy of the metadata.
func (m Meta) Clone() Meta {
	if m == nil {
		return nil
	}
	result := make(Meta, len(m))
	for k, v := range m {
		result[k] = v
	}
	return result
}

// DocumentNode is the root node of the abstract syntax tree.
type DocumentNode struct {
	Meta  Meta
	Nodes []Node
}

// Variant returns VariantDocument.
func (*DocumentNode) Variant() Variant { return VariantDocument }

// WalkChildren walks down the blocks of the document.
func (dn *DocumentNode) WalkChildren(v WalkVisitor) { WalkNodes(v, dn.Nodes) }

// ListKind distinguishes bullet from ordered lists.
type ListKind uint8

// Constants for ListKind
const (
	_           ListKind = iota
	ListBullet           // Unordered list
	ListOrdered          // Numbered list
)

func (lk ListKind) String() string {
	switch lk {
	case ListBullet:
		return "bullet"
	case ListOrdered:
		return "ordered"
	}
	return ""
}

// ParseListKind returns the list kind for its name.
func ParseListKind(s string) (ListKind, bool) {
	switch s {
	case "bullet":
		return ListBullet, true
	case "ordered":
		return ListOrdered, true
	}
	return 0, false
}

// ElementTypeString marks a variable whose value is a string literal.
const ElementTypeString = "String"
