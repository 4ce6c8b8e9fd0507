//-----------------------------------------------------------------------------
// Copyright (c) 2022 The Clausemark Authors
//
// This file is part of Clausemark.
//
// Clausemark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package jsontree

import (
	"io"

	"clausemark.org/cm/ast"
	"clausemark.org/cm/encoder"
	"clausemark.org/cm/parser"
	"clausemark.org/cm/schema"
)

func init() {
	parser.Register(&parser.Info{
		Name:         encoder.EncoderJSON,
		IsTextFormat: false,
		Parse: func(src []byte) (*ast.DocumentNode, error) {
			return Unmarshal(schema.Default(), src)
		},
	})
	encoder.Register(encoder.EncoderJSON, encoder.Info{
		Create: func(*encoder.Environment) encoder.Encoder { return jsonEncoder{} },
	})
}

type jsonEncoder struct{}

// WriteDocument writes the indented wire shape of the document.
func (jsonEncoder) WriteDocument(w io.Writer, dn *ast.DocumentNode) (int, error) {
	data, err := MarshalIndent(dn)
	if err != nil {
		return 0, err
	}
	return w.Write(append(data, '\n'))
}

// WriteNodes writes a document record with the given nodes.
func (je jsonEncoder) WriteNodes(w io.Writer, ns []ast.Node) (int, error) {
	return je.WriteDocument(w, &ast.DocumentNode{Nodes: ns})
}
