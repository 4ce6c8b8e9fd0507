//-----------------------------------------------------------------------------
// Copyright (c) 2022 The Clausemark Authors
//
// This file is part of Clausemark.
//
// Clausemark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package htmlenc

import (
	"encoding/json"
	"strconv"

	"clausemark.org/cm/ast"
	"clausemark.org/cm/encoder/textenc"
)

// writeSemanticSpan writes the text of a semantic inline node inside a span
// that carries its attributes.
func (v *visitor) writeSemanticSpan(class string, attrs []attribute, text string, ns []ast.Node) {
	v.b.WriteString("<span")
	v.writeAttributes(append([]attribute{{"class", class}}, attrs...))
	v.b.WriteByte('>')
	if ns == nil {
		v.writeHTMLEscaped(text)
	} else {
		ast.WalkNodes(v, ns)
	}
	v.b.WriteString("</span>")
}

func (v *visitor) writeVariable(name, value, elementType string, extra []attribute) {
	attrs := []attribute{{AttrName, name}}
	if elementType != "" {
		attrs = append(attrs, attribute{AttrElementType, elementType})
	}
	v.writeSemanticSpan(ClassVariable, append(attrs, extra...), value, nil)
}

func (v *visitor) visitEnumVariable(en *ast.EnumVariableNode) {
	values, err := json.Marshal(en.EnumValues)
	if err != nil {
		values = []byte("[]")
	}
	v.writeVariable(en.Name, en.Value, en.ElementType, []attribute{{AttrEnumValues, string(values)}})
}

func (v *visitor) visitFormula(fn *ast.FormulaNode) {
	attrs := []attribute{{AttrName, fn.Name}}
	if fn.Code != "" {
		attrs = append(attrs, attribute{AttrCode, fn.Code})
	}
	v.writeSemanticSpan(ClassFormula, attrs, fn.Value, nil)
}

func (v *visitor) visitConditional(cn *ast.ConditionalNode) {
	v.writeSemanticSpan(ClassConditional, []attribute{
		{AttrName, cn.Name},
		{AttrIsTrue, strconv.FormatBool(cn.IsTrue)},
		{AttrWhenTrue, textenc.String(cn.WhenTrue)},
		{AttrWhenFalse, textenc.String(cn.WhenFalse)},
	}, "", nonNil(cn.Nodes))
}

func (v *visitor) visitOptional(on *ast.OptionalNode) {
	v.writeSemanticSpan(ClassOptional, []attribute{
		{AttrName, on.Name},
		{AttrHasSome, strconv.FormatBool(on.HasSome)},
		{AttrWhenSome, textenc.String(on.WhenSome)},
		{AttrWhenNone, textenc.String(on.WhenNone)},
	}, "", nonNil(on.Nodes))
}

func nonNil(ns []ast.Node) []ast.Node {
	if ns == nil {
		return []ast.Node{}
	}
	return ns
}
