//-----------------------------------------------------------------------------
// Copyright (c) 2022 The Clausemark Authors
//
// This file is part of Clausemark.
//
// Clausemark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package formats registers the formats of Clausemark and the edges between
// them.
//
// Text formats are passed between edges as []byte, the tree formats as
// *ast.DocumentNode and the editor format as *slate.Value.
package formats

import (
	"clausemark.org/cm/ast"
	"clausemark.org/cm/jsontree"
	"clausemark.org/cm/router"
	"clausemark.org/cm/schema"
	"clausemark.org/cm/slate"
)

// Names of the registered formats.
const (
	Markdown     = "markdown"
	CommonMark   = "commonmark"
	ContractMark = "contractmark"
	Unquoted     = "contractmark_unquoted"
	Untyped      = "contractmark_untyped"
	Unformatted  = "contractmark_unformatted"
	Evaluated    = "contractmark_evaluated"
	HTML         = "html"
	Slate        = "slate"
	PlainText    = "plaintext"
	JSON         = "json"
)

var formatList = []router.Format{
	{Name: Markdown, Description: "CommonMark text, contract semantics embedded as pseudo-tags", Kind: router.KindText},
	{Name: CommonMark, Description: "plain markdown tree", Kind: router.KindStructured},
	{Name: ContractMark, Description: "markdown tree with contract semantics", Kind: router.KindStructured},
	{Name: Unquoted, Description: "contract tree, String values without quotes", Kind: router.KindStructured},
	{Name: Untyped, Description: "contract tree, formatted and enum variables as plain variables", Kind: router.KindStructured},
	{Name: Unformatted, Description: "contract tree without emphasis", Kind: router.KindStructured},
	{Name: Evaluated, Description: "contract tree, formula values computed", Kind: router.KindStructured},
	{Name: HTML, Description: "HTML5 document", Kind: router.KindText},
	{Name: Slate, Description: "rich-text editor value", Kind: router.KindStructured},
	{Name: PlainText, Description: "text without markup", Kind: router.KindText},
	{Name: JSON, Description: "contract tree as JSON records", Kind: router.KindText},
}

type edgeDef struct {
	from, to string
	fn       router.EdgeFunc
}

var edgeList = []edgeDef{
	{Markdown, CommonMark, readMarkdown},
	{CommonMark, Markdown, writeMarkdown},
	{CommonMark, ContractMark, decode},
	{ContractMark, CommonMark, encode},
	{ContractMark, HTML, writeHTML},
	{ContractMark, Slate, toSlate},
	{ContractMark, PlainText, writeText},
	{ContractMark, JSON, writeJSON},
	{ContractMark, Unquoted, unquote},
	{ContractMark, Untyped, untype},
	{ContractMark, Unformatted, removeFormatting},
	{ContractMark, Evaluated, evaluate},
	{Unquoted, ContractMark, identity},
	{Untyped, ContractMark, identity},
	{Unformatted, ContractMark, identity},
	{Evaluated, ContractMark, identity},
	{HTML, ContractMark, readHTML},
	{Slate, ContractMark, fromSlate},
	{JSON, ContractMark, readJSON},
	{PlainText, Markdown, plainToMarkdown},
}

// Register adds all formats and edges to the registry.
func Register(r *router.Registry) error {
	for _, f := range formatList {
		if err := r.Register(f); err != nil {
			return err
		}
	}
	for _, e := range edgeList {
		if err := r.AddEdge(e.from, e.to, e.fn); err != nil {
			return err
		}
	}
	return nil
}

// New returns a registry holding all formats.
func New() (*router.Registry, error) {
	r := router.New()
	if err := Register(r); err != nil {
		return nil, err
	}
	return r, nil
}

// Read turns serialized data into the value an edge of the named format
// expects. Tree formats are read from their JSON records.
func Read(r *router.Registry, name string, data []byte) (any, error) {
	f, err := r.Lookup(name)
	if err != nil {
		return nil, err
	}
	switch {
	case f.Kind != router.KindStructured:
		return data, nil
	case name == Slate:
		return slate.Unmarshal(data)
	}
	return jsontree.Unmarshal(schema.Default(), data)
}

// Write serializes the value of a format.
func Write(val any) ([]byte, error) {
	switch v := val.(type) {
	case []byte:
		return v, nil
	case *slate.Value:
		data, err := slate.Marshal(v)
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case *ast.DocumentNode:
		data, err := jsontree.MarshalIndent(v)
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	}
	return nil, unexpected(val, "serializable value")
}
