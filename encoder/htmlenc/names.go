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

// Names that mark semantic nodes in the generated HTML.
const (
	ClassClause      = "clause"
	ClassListBlock   = "list-block"
	ClassVariable    = "variable"
	ClassFormula     = "formula"
	ClassConditional = "conditional"
	ClassOptional    = "optional"

	AttrName        = "data-name"
	AttrSrc         = "data-src"
	AttrElementType = "data-element-type"
	AttrFormat      = "data-format"
	AttrEnumValues  = "data-enum-values"
	AttrCode        = "data-code"
	AttrIsTrue      = "data-is-true"
	AttrWhenTrue    = "data-when-true"
	AttrWhenFalse   = "data-when-false"
	AttrHasSome     = "data-has-some"
	AttrWhenSome    = "data-when-some"
	AttrWhenNone    = "data-when-none"
	AttrInfo        = "data-info"

	// MetaLang is the metadata key of the document language.
	MetaLang = "lang"
)
