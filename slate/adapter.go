//-----------------------------------------------------------------------------
// Copyright (c) 2022 The Clausemark Authors
//
// This file is part of Clausemark.
//
// Clausemark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package slate

import (
	"io"

	"clausemark.org/cm/ast"
	"clausemark.org/cm/encoder"
	"clausemark.org/cm/parser"
)

func init() {
	parser.Register(&parser.Info{
		Name:         encoder.EncoderSlate,
		IsTextFormat: false,
		Parse: func(src []byte) (*ast.DocumentNode, error) {
			v, err := Unmarshal(src)
			if err != nil {
				return nil, err
			}
			return ToDocument(v)
		},
	})
	encoder.Register(encoder.EncoderSlate, encoder.Info{
		Create: func(*encoder.Environment) encoder.Encoder { return slateEncoder{} },
	})
}

type slateEncoder struct{}

// WriteDocument writes the JSON text of the editor value.
func (slateEncoder) WriteDocument(w io.Writer, dn *ast.DocumentNode) (int, error) {
	data, err := Marshal(FromDocument(dn))
	if err != nil {
		return 0, err
	}
	return w.Write(data)
}

// WriteNodes writes the JSON text of an editor value with the given blocks.
func (se slateEncoder) WriteNodes(w io.Writer, ns []ast.Node) (int, error) {
	return se.WriteDocument(w, &ast.DocumentNode{Nodes: ns})
}
