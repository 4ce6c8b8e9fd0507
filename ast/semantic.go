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

// Definitions of inline nodes that carry contract semantics.

// VariableNode is a variable bound to a value.
type VariableNode struct {
	Name        string
	Value       string
	ElementType string
}

func (*VariableNode) inlineNode() {}

// Variant returns VariantVariable.
func (*VariableNode) Variant() Variant { return VariantVariable }

// WalkChildren does nothing.
func (*VariableNode) WalkChildren(WalkVisitor) { /* No children*/ }

// FormattedVariableNode is a variable that is rendered with a format pattern.
type FormattedVariableNode struct {
	Name        string
	Value       string
	ElementType string
	Format      string
}

func (*FormattedVariableNode) inlineNode() {}

// Variant returns VariantFormattedVariable.
func (*FormattedVariableNode) Variant() Variant { return VariantFormattedVariable }

// WalkChildren does nothing.
func (*FormattedVariableNode) WalkChildren(WalkVisitor) { /* No children*/ }

// EnumVariableNode is a variable whose value is one of EnumValues.
type EnumVariableNode struct {
	Name        string
	Value       string
	ElementType string
	EnumValues  []string
}

func (*EnumVariableNode) inlineNode() {}

// Variant returns VariantEnumVariable.
func (*EnumVariableNode) Variant() Variant { return VariantEnumVariable }

// WalkChildren does nothing.
func (*EnumVariableNode) WalkChildren(WalkVisitor) { /* No children*/ }

// ConditionalNode renders WhenTrue or WhenFalse, depending on IsTrue.
// Nodes is the currently rendered branch.
type ConditionalNode struct {
	Name      string
	IsTrue    bool
	Nodes     []Node
	WhenTrue  []Node
	WhenFalse []Node
}

func (*ConditionalNode) inlineNode() {}

// Variant returns VariantConditional.
func (*ConditionalNode) Variant() Variant { return VariantConditional }

// WalkChildren walks the rendered branch only.
func (cn *ConditionalNode) WalkChildren(v WalkVisitor) { WalkNodes(v, cn.Nodes) }

// Active returns the branch selected by IsTrue.
func (cn *ConditionalNode) Active() []Node {
	if cn.IsTrue {
		return cn.WhenTrue
	}
	return cn.WhenFalse
}

// OptionalNode renders WhenSome or WhenNone, depending on HasSome.
// Nodes is the currently rendered branch.
type OptionalNode struct {
	Name     string
	HasSome  bool
	Nodes    []Node
	WhenSome []Node
	WhenNone []Node
}

func (*OptionalNode) inlineNode() {}

// Variant returns VariantOptional.
func (*OptionalNode) Variant() Variant { return VariantOptional }

// WalkChildren walks the rendered branch only.
func (on *OptionalNode) WalkChildren(v WalkVisitor) { WalkNodes(v, on.Nodes) }

// Active returns the branch selected by HasSome.
func (on *OptionalNode) Active() []Node {
	if on.HasSome {
		return on.WhenSome
	}
	return on.WhenNone
}

// FormulaNode is a computed value. Code is the expression, Value its last result.
type FormulaNode struct {
	Name  string
	Value string
	Code  string
}

func (*FormulaNode) inlineNode() {}

// Variant returns VariantFormula.
func (*FormulaNode) Variant() Variant { return VariantFormula }

// WalkChildren does nothing.
func (*FormulaNode) WalkChildren(WalkVisitor) { /* No children*/ }
