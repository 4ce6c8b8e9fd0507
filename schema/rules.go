//-----------------------------------------------------------------------------
// Copyright (c) 2022 The Clausemark Authors
//
// This file is part of Clausemark.
//
// Clausemark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package schema

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"clausemark.org/cm/ast"
)

// ruleFunc checks the attributes of one node of a known variant.
type ruleFunc func(ast.Node) error

var listKindRule = validation.In(ast.ListBullet, ast.ListOrdered).Error("must be bullet or ordered")

var variantRules = map[ast.Variant]ruleFunc{
	ast.VariantHeading: func(n ast.Node) error {
		hn := n.(*ast.HeadingNode)
		return validation.ValidateStruct(hn,
			validation.Field(&hn.Level, validation.Required, validation.Min(1), validation.Max(6)),
		)
	},
	ast.VariantList: func(n ast.Node) error {
		ln := n.(*ast.ListNode)
		return validation.ValidateStruct(ln,
			validation.Field(&ln.Kind, validation.Required, listKindRule),
			validation.Field(&ln.Start, validation.Min(0)),
		)
	},
	ast.VariantLink: func(n ast.Node) error {
		ln := n.(*ast.LinkNode)
		return validation.ValidateStruct(ln, validation.Field(&ln.Destination, validation.Required))
	},
	ast.VariantImage: func(n ast.Node) error {
		in := n.(*ast.ImageNode)
		return validation.ValidateStruct(in,
			validation.Field(&in.Destination, validation.Required),
		)
	},
	ast.VariantClause: func(n ast.Node) error {
		cn := n.(*ast.ClauseNode)
		return validation.ValidateStruct(cn, validation.Field(&cn.Name, validation.Required))
	},
	ast.VariantVariable: func(n ast.Node) error {
		vn := n.(*ast.VariableNode)
		return validation.ValidateStruct(vn, validation.Field(&vn.Name, validation.Required))
	},
	ast.VariantFormattedVariable: func(n ast.Node) error {
		vn := n.(*ast.FormattedVariableNode)
		return validation.ValidateStruct(vn,
			validation.Field(&vn.Name, validation.Required),
			validation.Field(&vn.Format, validation.Required),
		)
	},
	ast.VariantEnumVariable: func(n ast.Node) error {
		vn := n.(*ast.EnumVariableNode)
		return validation.ValidateStruct(vn,
			validation.Field(&vn.Name, validation.Required),
			validation.Field(&vn.EnumValues, validation.Required),
		)
	},
	ast.VariantConditional: func(n ast.Node) error {
		cn := n.(*ast.ConditionalNode)
		return validation.ValidateStruct(cn, validation.Field(&cn.Name, validation.Required))
	},
	ast.VariantOptional: func(n ast.Node) error {
		on := n.(*ast.OptionalNode)
		return validation.ValidateStruct(on, validation.Field(&on.Name, validation.Required))
	},
	ast.VariantFormula: func(n ast.Node) error {
		fn := n.(*ast.FormulaNode)
		return validation.ValidateStruct(fn, validation.Field(&fn.Name, validation.Required))
	},
	ast.VariantListBlock: func(n ast.Node) error {
		ln := n.(*ast.ListBlockNode)
		return validation.ValidateStruct(ln,
			validation.Field(&ln.Name, validation.Required),
			validation.Field(&ln.Kind, validation.Required, listKindRule),
			validation.Field(&ln.Start, validation.Min(0)),
		)
	},
}
