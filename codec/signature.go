//-----------------------------------------------------------------------------
// Copyright (c) 2022 The Clausemark Authors
//
// This file is part of Clausemark.
//
// Clausemark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package codec embeds semantic nodes into plain markdown trees and recovers
// them.
//
// Block nodes become fenced code blocks whose info string is a pseudo-tag,
// e.g. `clause src="…" name="…"`. Inline nodes become self-closing inline
// HTML, e.g. `<variable name="…" value="…"/>`. Attribute values are
// percent-encoded. A pseudo-tag is only recognized if its name and its
// attribute names, in order, match a signature. Everything else is left as
// it is.
package codec

import "slices"

// Shape is the semantic node family a pseudo-tag stands for.
type Shape uint8

// Constants for Shape.
const (
	_ Shape = iota
	ShapeClause
	ShapeListBlock
	ShapeVariable
	ShapeFormattedVariable
	ShapeEnumVariable
	ShapeConditional
	ShapeFormula
)

// Names of pseudo-tags and their attributes.
const (
	TagClause   = "clause"
	TagList     = "list"
	TagVariable = "variable"
	TagIf       = "if"
	TagFormula  = "formula"

	AttrSrc        = "src"
	AttrName       = "name"
	AttrValue      = "value"
	AttrFormat     = "format"
	AttrEnumValues = "enumValues"
	AttrWhenTrue   = "whenTrue"
	AttrWhenFalse  = "whenFalse"
)

// Signature is the exact shape of a pseudo-tag: its name and the names of
// its attributes, in order.
type Signature struct {
	Shape Shape
	Tag   string
	Attrs []string
	Block bool // fenced code block info string instead of inline HTML
}

var signatures = []Signature{
	{ShapeClause, TagClause, []string{AttrSrc, AttrName}, true},
	{ShapeListBlock, TagList, []string{AttrName}, true},
	{ShapeVariable, TagVariable, []string{AttrName, AttrValue}, false},
	{ShapeFormattedVariable, TagVariable, []string{AttrName, AttrValue, AttrFormat}, false},
	{ShapeEnumVariable, TagVariable, []string{AttrName, AttrValue, AttrEnumValues}, false},
	{ShapeConditional, TagIf, []string{AttrName, AttrValue, AttrWhenTrue, AttrWhenFalse}, false},
	{ShapeFormula, TagFormula, []string{AttrName, AttrValue}, false},
}

// Signatures returns all known signatures.
func Signatures() []Signature { return slices.Clone(signatures) }

// Lookup returns the signature that matches the tag exactly.
func Lookup(t *Tag, block bool) (Signature, bool) {
	for _, sig := range signatures {
		if sig.Block != block || sig.Tag != t.Name || len(sig.Attrs) != len(t.Attrs) {
			continue
		}
		if matchAttrs(sig.Attrs, t.Attrs) {
			return sig, true
		}
	}
	return Signature{}, false
}

func matchAttrs(names []string, attrs []Attr) bool {
	for i, name := range names {
		if attrs[i].Name != name {
			return false
		}
	}
	return true
}

func signatureOf(shape Shape) Signature {
	for _, sig := range signatures {
		if sig.Shape == shape {
			return sig
		}
	}
	panic("no signature for shape")
}
