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

import (
	"strings"

	"clausemark.org/cm/ast"
)

// QuoteValue wraps a value in double quotes. Interior quotes are not escaped,
// so a value that contains a quote character does not survive UnquoteValue
// unchanged. It must not be applied twice.
func QuoteValue(s string) string { return `"` + s + `"` }

// UnquoteValue removes one leading and one trailing double quote, if both are
// present.
func UnquoteValue(s string) string {
	if IsQuoted(s) {
		return s[1 : len(s)-1]
	}
	return s
}

// IsQuoted reports whether the value is wrapped in double quotes.
func IsQuoted(s string) bool {
	return len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`)
}

// Quote wraps the values of all String typed variables in double quotes.
type Quote struct{ ast.Rebuild }

// Variable quotes String typed values.
func (Quote) Variable(_ *ast.Rewriter, vn *ast.VariableNode) []ast.Node {
	return []ast.Node{&ast.VariableNode{Name: vn.Name, Value: quoteTyped(vn.ElementType, vn.Value), ElementType: vn.ElementType}}
}

// FormattedVariable quotes String typed values.
func (Quote) FormattedVariable(_ *ast.Rewriter, vn *ast.FormattedVariableNode) []ast.Node {
	return []ast.Node{&ast.FormattedVariableNode{
		Name: vn.Name, Value: quoteTyped(vn.ElementType, vn.Value), ElementType: vn.ElementType, Format: vn.Format,
	}}
}

// EnumVariable quotes String typed values.
func (Quote) EnumVariable(_ *ast.Rewriter, vn *ast.EnumVariableNode) []ast.Node {
	return []ast.Node{&ast.EnumVariableNode{
		Name: vn.Name, Value: quoteTyped(vn.ElementType, vn.Value), ElementType: vn.ElementType,
		EnumValues: append([]string(nil), vn.EnumValues...),
	}}
}

func quoteTyped(elementType, value string) string {
	if elementType == ast.ElementTypeString {
		return QuoteValue(value)
	}
	return value
}

// Unquote strips the quotes that wrap String typed variable values. Text
// nodes are left alone, unless InText is set: then every text that is wrapped
// in quotes as a whole is unquoted too. This is used after variables were
// converted to text.
type Unquote struct {
	ast.Rebuild
	InText bool
}

// Text unquotes the text, if requested.
func (u Unquote) Text(_ *ast.Rewriter, tn *ast.TextNode) []ast.Node {
	if u.InText {
		return []ast.Node{&ast.TextNode{Text: UnquoteValue(tn.Text)}}
	}
	return []ast.Node{&ast.TextNode{Text: tn.Text}}
}

// Variable unquotes String typed values.
func (Unquote) Variable(_ *ast.Rewriter, vn *ast.VariableNode) []ast.Node {
	return []ast.Node{&ast.VariableNode{Name: vn.Name, Value: unquoteTyped(vn.ElementType, vn.Value), ElementType: vn.ElementType}}
}

// FormattedVariable unquotes String typed values.
func (Unquote) FormattedVariable(_ *ast.Rewriter, vn *ast.FormattedVariableNode) []ast.Node {
	return []ast.Node{&ast.FormattedVariableNode{
		Name: vn.Name, Value: unquoteTyped(vn.ElementType, vn.Value), ElementType: vn.ElementType, Format: vn.Format,
	}}
}

// EnumVariable unquotes String typed values.
func (Unquote) EnumVariable(_ *ast.Rewriter, vn *ast.EnumVariableNode) []ast.Node {
	return []ast.Node{&ast.EnumVariableNode{
		Name: vn.Name, Value: unquoteTyped(vn.ElementType, vn.Value), ElementType: vn.ElementType,
		EnumValues: append([]string(nil), vn.EnumValues...),
	}}
}

func unquoteTyped(elementType, value string) string {
	if elementType == ast.ElementTypeString {
		return UnquoteValue(value)
	}
	return value
}
