//-----------------------------------------------------------------------------
// Copyright (c) 2022 The Clausemark Authors
//
// This file is part of Clausemark.
//
// Clausemark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package transform provides rule tables that rewrite semantic trees into
// other tree shapes.
package transform

import "clausemark.org/cm/ast"

// FlattenClauses replaces every clause by its blocks.
type FlattenClauses struct{ ast.Rebuild }

// Clause is replaced by its rewritten blocks.
func (FlattenClauses) Clause(rw *ast.Rewriter, cn *ast.ClauseNode) []ast.Node {
	return rw.Nodes(cn.Nodes)
}

// FlattenListBlocks turns every list block into an ordinary list.
type FlattenListBlocks struct{ ast.Rebuild }

// ListBlock becomes a list with the same items.
func (FlattenListBlocks) ListBlock(rw *ast.Rewriter, ln *ast.ListBlockNode) []ast.Node {
	return flattenListBlock(rw, ln)
}

func flattenListBlock(rw *ast.Rewriter, ln *ast.ListBlockNode) []ast.Node {
	return []ast.Node{&ast.ListNode{Kind: ln.Kind, Start: ln.Start, Tight: ln.Tight, Nodes: rw.Nodes(ln.Nodes)}}
}

// SelectBranches replaces conditionals and optionals by their active branch.
type SelectBranches struct{ ast.Rebuild }

// Conditional is replaced by the branch selected by IsTrue.
func (SelectBranches) Conditional(rw *ast.Rewriter, cn *ast.ConditionalNode) []ast.Node {
	return rw.Nodes(cn.Active())
}

// Optional is replaced by the branch selected by HasSome.
func (SelectBranches) Optional(rw *ast.Rewriter, on *ast.OptionalNode) []ast.Node {
	return rw.Nodes(on.Active())
}

// StripVariables replaces variables and formulas by text nodes that carry
// their value. Adjacent text nodes are not merged, so that every value stays
// a node of its own.
type StripVariables struct{ ast.Rebuild }

// Variable becomes its value.
func (StripVariables) Variable(_ *ast.Rewriter, vn *ast.VariableNode) []ast.Node {
	return ast.CreateTextSlice(vn.Value)
}

// FormattedVariable becomes its value.
func (StripVariables) FormattedVariable(_ *ast.Rewriter, vn *ast.FormattedVariableNode) []ast.Node {
	return ast.CreateTextSlice(vn.Value)
}

// EnumVariable becomes its value.
func (StripVariables) EnumVariable(_ *ast.Rewriter, vn *ast.EnumVariableNode) []ast.Node {
	return ast.CreateTextSlice(vn.Value)
}

// Formula becomes its value.
func (StripVariables) Formula(_ *ast.Rewriter, fn *ast.FormulaNode) []ast.Node {
	return ast.CreateTextSlice(fn.Value)
}

// Lower rewrites a semantic tree into a plain tree: clauses and list blocks
// are flattened, branches are selected and variables are stripped.
type Lower struct{ ast.Rebuild }

// Clause is flattened.
func (Lower) Clause(rw *ast.Rewriter, cn *ast.ClauseNode) []ast.Node {
	return FlattenClauses{}.Clause(rw, cn)
}

// ListBlock becomes a list.
func (Lower) ListBlock(rw *ast.Rewriter, ln *ast.ListBlockNode) []ast.Node {
	return flattenListBlock(rw, ln)
}

// Conditional is replaced by its active branch.
func (Lower) Conditional(rw *ast.Rewriter, cn *ast.ConditionalNode) []ast.Node {
	return SelectBranches{}.Conditional(rw, cn)
}

// Optional is replaced by its active branch.
func (Lower) Optional(rw *ast.Rewriter, on *ast.OptionalNode) []ast.Node {
	return SelectBranches{}.Optional(rw, on)
}

// Variable becomes its value.
func (Lower) Variable(rw *ast.Rewriter, vn *ast.VariableNode) []ast.Node {
	return StripVariables{}.Variable(rw, vn)
}

// FormattedVariable becomes its value.
func (Lower) FormattedVariable(rw *ast.Rewriter, vn *ast.FormattedVariableNode) []ast.Node {
	return StripVariables{}.FormattedVariable(rw, vn)
}

// EnumVariable becomes its value.
func (Lower) EnumVariable(rw *ast.Rewriter, vn *ast.EnumVariableNode) []ast.Node {
	return StripVariables{}.EnumVariable(rw, vn)
}

// Formula becomes its value.
func (Lower) Formula(rw *ast.Rewriter, fn *ast.FormulaNode) []ast.Node {
	return StripVariables{}.Formula(rw, fn)
}
