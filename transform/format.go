//-----------------------------------------------------------------------------
// Copyright (c) 2022 The Clausemark Authors
//
// This file is part of Clausemark.
//
// Clausemark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package transform

import "clausemark.org/cm/ast"

// RemoveFormatting drops all emphasis and strong emphasis, but keeps their
// content.
type RemoveFormatting struct{ ast.Rebuild }

// Emph is replaced by its content.
func (RemoveFormatting) Emph(rw *ast.Rewriter, en *ast.EmphNode) []ast.Node {
	return rw.Nodes(en.Nodes)
}

// Strong is replaced by its content.
func (RemoveFormatting) Strong(rw *ast.Rewriter, sn *ast.StrongNode) []ast.Node {
	return rw.Nodes(sn.Nodes)
}

// Clause starts a new pass over its blocks.
func (RemoveFormatting) Clause(rw *ast.Rewriter, cn *ast.ClauseNode) []ast.Node {
	inner := rw.With(RemoveFormatting{})
	return []ast.Node{&ast.ClauseNode{Name: cn.Name, Src: cn.Src, Nodes: inner.Nodes(cn.Nodes)}}
}

// Untype collapses formatted and enumerated variables into plain variables.
type Untype struct{ ast.Rebuild }

// FormattedVariable loses its format.
func (Untype) FormattedVariable(_ *ast.Rewriter, vn *ast.FormattedVariableNode) []ast.Node {
	return []ast.Node{&ast.VariableNode{Name: vn.Name, Value: vn.Value, ElementType: vn.ElementType}}
}

// EnumVariable loses its enumeration values.
func (Untype) EnumVariable(_ *ast.Rewriter, vn *ast.EnumVariableNode) []ast.Node {
	return []ast.Node{&ast.VariableNode{Name: vn.Name, Value: vn.Value, ElementType: vn.ElementType}}
}
