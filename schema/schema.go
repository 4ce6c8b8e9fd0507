//-----------------------------------------------------------------------------
// Copyright (c) 2022 The Clausemark Authors
//
// This file is part of Clausemark.
//
// Clausemark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package schema defines the variant schema of the tree model.
//
// The registry is built once and never changed afterwards. It is passed
// explicitly to every function that validates, encodes or decodes a tree.
package schema

import (
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"clausemark.org/cm/ast"
)

// Level specifies where a node may occur in a tree.
type Level uint8

// Constants for Level.
const (
	LevelNone   Level = iota // leaf variant, no children
	LevelRoot                // only as tree root
	LevelBlock               // block sequence
	LevelInline              // inline sequence
	LevelItem                // list items only
)

func (l Level) String() string {
	switch l {
	case LevelRoot:
		return "root"
	case LevelBlock:
		return "block"
	case LevelInline:
		return "inline"
	case LevelItem:
		return "item"
	}
	return "none"
}

// Kind is the value kind of a wire attribute.
type Kind uint8

// Constants for Kind.
const (
	KindString  Kind = iota // JSON string
	KindInt                 // JSON integer
	KindBool                // JSON boolean
	KindStrings             // JSON array of strings
	KindMeta                // JSON object with string values
	KindNodes               // JSON array of nodes
)

// Attr describes one attribute of the wire shape of a variant.
type Attr struct {
	Name     string
	Kind     Kind
	Required bool
	Enum     []string // allowed values of a string attribute
}

// Spec is the schema of one variant.
type Spec struct {
	Variant  ast.Variant
	Level    Level  // where the variant may occur
	Children Level  // what its child sequences may contain
	Attrs    []Attr // wire attributes, without the discriminator
	rules    ruleFunc
}

// Registry maps every variant to its schema.
type Registry struct {
	specs    map[ast.Variant]*Spec
	order    []*Spec
	wireJSON []byte
	wire     *jsonschema.Schema
}

// New builds a registry with the schemas of all variants.
func New() (*Registry, error) {
	reg := &Registry{specs: make(map[ast.Variant]*Spec, len(specTable))}
	for i := range specTable {
		spec := specTable[i]
		spec.rules = variantRules[spec.Variant]
		reg.specs[spec.Variant] = &spec
		reg.order = append(reg.order, &spec)
	}
	if err := reg.compileWire(); err != nil {
		return nil, err
	}
	return reg, nil
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Default returns the registry that is shared by all conversion calls.
func Default() *Registry {
	defaultOnce.Do(func() {
		reg, err := New()
		if err != nil {
			panic(err)
		}
		defaultReg = reg
	})
	return defaultReg
}

// Spec returns the schema of the given variant.
func (reg *Registry) Spec(v ast.Variant) (*Spec, bool) {
	spec, ok := reg.specs[v]
	return spec, ok
}

// Specs returns all schemas, in variant order.
func (reg *Registry) Specs() []*Spec { return reg.order }

// GetVariant returns the variant tag of a node.
func GetVariant(n ast.Node) ast.Variant {
	if n == nil {
		return 0
	}
	return n.Variant()
}

func nodes(name string) Attr   { return Attr{Name: name, Kind: KindNodes} }
func str(name string) Attr     { return Attr{Name: name, Kind: KindString} }
func reqStr(name string) Attr  { return Attr{Name: name, Kind: KindString, Required: true} }
func boolean(name string) Attr { return Attr{Name: name, Kind: KindBool} }

var kindAttr = Attr{Name: "kind", Kind: KindString, Required: true, Enum: []string{"bullet", "ordered"}}

var specTable = []Spec{
	{Variant: ast.VariantDocument, Level: LevelRoot, Children: LevelBlock,
		Attrs: []Attr{{Name: "meta", Kind: KindMeta}, nodes("nodes")}},
	{Variant: ast.VariantParagraph, Level: LevelBlock, Children: LevelInline, Attrs: []Attr{nodes("nodes")}},
	{Variant: ast.VariantText, Level: LevelInline, Attrs: []Attr{reqStr("text")}},
	{Variant: ast.VariantHeading, Level: LevelBlock, Children: LevelInline,
		Attrs: []Attr{{Name: "level", Kind: KindInt, Required: true}, nodes("nodes")}},
	{Variant: ast.VariantList, Level: LevelBlock, Children: LevelItem,
		Attrs: []Attr{kindAttr, {Name: "start", Kind: KindInt}, boolean("tight"), nodes("nodes")}},
	{Variant: ast.VariantItem, Level: LevelItem, Children: LevelBlock, Attrs: []Attr{nodes("nodes")}},
	{Variant: ast.VariantBlockQuote, Level: LevelBlock, Children: LevelBlock, Attrs: []Attr{nodes("nodes")}},
	{Variant: ast.VariantEmph, Level: LevelInline, Children: LevelInline, Attrs: []Attr{nodes("nodes")}},
	{Variant: ast.VariantStrong, Level: LevelInline, Children: LevelInline, Attrs: []Attr{nodes("nodes")}},
	{Variant: ast.VariantLink, Level: LevelInline, Children: LevelInline,
		Attrs: []Attr{reqStr("destination"), str("title"), nodes("nodes")}},
	{Variant: ast.VariantImage, Level: LevelInline, Children: LevelInline,
		Attrs: []Attr{reqStr("destination"), str("title"), nodes("nodes")}},
	{Variant: ast.VariantCodeBlock, Level: LevelBlock, Attrs: []Attr{str("info"), reqStr("text")}},
	{Variant: ast.VariantCode, Level: LevelInline, Attrs: []Attr{reqStr("text")}},
	{Variant: ast.VariantHTMLInline, Level: LevelInline, Attrs: []Attr{reqStr("text")}},
	{Variant: ast.VariantHTMLBlock, Level: LevelBlock, Attrs: []Attr{reqStr("text")}},
	{Variant: ast.VariantThematicBreak, Level: LevelBlock},
	{Variant: ast.VariantSoftbreak, Level: LevelInline},
	{Variant: ast.VariantLinebreak, Level: LevelInline},
	{Variant: ast.VariantClause, Level: LevelBlock, Children: LevelBlock,
		Attrs: []Attr{reqStr("name"), str("src"), nodes("nodes")}},
	{Variant: ast.VariantVariable, Level: LevelInline,
		Attrs: []Attr{reqStr("name"), reqStr("value"), str("elementType")}},
	{Variant: ast.VariantFormattedVariable, Level: LevelInline,
		Attrs: []Attr{reqStr("name"), reqStr("value"), str("elementType"), reqStr("format")}},
	{Variant: ast.VariantEnumVariable, Level: LevelInline,
		Attrs: []Attr{reqStr("name"), reqStr("value"), str("elementType"), {Name: "enumValues", Kind: KindStrings, Required: true}}},
	{Variant: ast.VariantConditional, Level: LevelInline, Children: LevelInline,
		Attrs: []Attr{reqStr("name"), boolean("isTrue"), nodes("nodes"), nodes("whenTrue"), nodes("whenFalse")}},
	{Variant: ast.VariantOptional, Level: LevelInline, Children: LevelInline,
		Attrs: []Attr{reqStr("name"), boolean("hasSome"), nodes("nodes"), nodes("whenSome"), nodes("whenNone")}},
	{Variant: ast.VariantFormula, Level: LevelInline,
		Attrs: []Attr{reqStr("name"), reqStr("value"), str("code")}},
	{Variant: ast.VariantListBlock, Level: LevelBlock, Children: LevelItem,
		Attrs: []Attr{reqStr("name"), kindAttr, {Name: "start", Kind: KindInt}, boolean("tight"), nodes("nodes")}},
}
