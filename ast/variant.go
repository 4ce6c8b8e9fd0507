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

// Variant is the tag of a node, one of a closed set.
type Variant uint8

// Constants for Variant.
const (
	_ Variant = iota
	VariantDocument
	VariantParagraph
	VariantText
	VariantHeading
	VariantList
	VariantItem
	VariantBlockQuote
	VariantEmph
	VariantStrong
	VariantLink
	VariantImage
	VariantCodeBlock
	VariantCode
	VariantHTMLInline
	VariantHTMLBlock
	VariantThematicBreak
	VariantSoftbreak
	VariantLinebreak
	VariantClause
	VariantVariable
	VariantFormattedVariable
	VariantEnumVariable
	VariantConditional
	VariantOptional
	VariantFormula
	VariantListBlock
	variantLast
)

var variantNames = [...]string{
	VariantDocument:          "Document",
	VariantParagraph:         "Paragraph",
	VariantText:              "Text",
	VariantHeading:           "Heading",
	VariantList:              "List",
	VariantItem:              "Item",
	VariantBlockQuote:        "BlockQuote",
	VariantEmph:              "Emph",
	VariantStrong:            "Strong",
	VariantLink:              "Link",
	VariantImage:             "Image",
	VariantCodeBlock:         "CodeBlock",
	VariantCode:              "Code",
	VariantHTMLInline:        "HtmlInline",
	VariantHTMLBlock:         "HtmlBlock",
	VariantThematicBreak:     "ThematicBreak",
	VariantSoftbreak:         "Softbreak",
	VariantLinebreak:         "Linebreak",
	VariantClause:            "Clause",
	VariantVariable:          "Variable",
	VariantFormattedVariable: "FormattedVariable",
	VariantEnumVariable:      "EnumVariable",
	VariantConditional:       "Conditional",
	VariantOptional:          "Optional",
	VariantFormula:           "Formula",
	VariantListBlock:         "ListBlock",
}

func (v Variant) String() string {
	if v > 0 && v < variantLast {
		return variantNames[v]
	}
	return ""
}

// IsSemantic reports whether the variant only exists in a semantic tree.
func (v Variant) IsSemantic() bool { return v >= VariantClause && v < variantLast }

// Variants returns all variants in declaration order.
func Variants() []Variant {
	result := make([]Variant, 0, variantLast-1)
	for v := VariantDocument; v < variantLast; v++ {
		result = append(result, v)
	}
	return result
}

// ParseVariant returns the variant with the given name.
func ParseVariant(s string) (Variant, bool) {
	for v := VariantDocument; v < variantLast; v++ {
		if variantNames[v] == s {
			return v, true
		}
	}
	return 0, false
}
