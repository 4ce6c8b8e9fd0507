//-----------------------------------------------------------------------------
// Copyright (c) 2022 The Clausemark Authors
//
// This file is part of Clausemark.
//
// Clausemark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package htmlenc encodes the abstract syntax tree into HTML5.
package htmlenc

import (
	"io"

	"clausemark.org/cm/ast"
	"clausemark.org/cm/encoder"
)

func init() {
	encoder.Register(encoder.EncoderHTML, encoder.Info{
		Create: func(env *encoder.Environment) encoder.Encoder { return &htmlEncoder{env: env} },
	})
}

// Create an encoder.
func Create(env *encoder.Environment) encoder.Encoder { return &htmlEncoder{env: env} }

type htmlEncoder struct {
	env *encoder.Environment
}

// WriteDocument encodes a full document as HTML5. Metadata becomes meta
// elements of the head.
func (he *htmlEncoder) WriteDocument(w io.Writer, dn *ast.DocumentNode) (int, error) {
	v := newVisitor(he, w)
	lang := v.env.GetLang()
	if l, ok := dn.Meta[MetaLang]; ok && l != "" {
		lang = l
	}
	v.b.WriteString("<!DOCTYPE html>\n")
	if lang == "" {
		v.b.WriteString("<html>\n<head>\n")
	} else {
		v.b.WriteString("<html lang=\"")
		v.writeQuotedEscaped(lang)
		v.b.WriteString("\">\n<head>\n")
	}
	if v.env.IsXHTML() {
		v.b.WriteString("<meta charset=\"utf-8\" />\n")
	} else {
		v.b.WriteString("<meta charset=\"utf-8\">\n")
	}
	v.acceptMeta(dn.Meta)
	v.b.WriteString("</head>\n<body>\n")
	v.acceptBlocks(dn.Nodes)
	v.b.WriteString("</body>\n</html>\n")
	return v.b.Flush()
}

// WriteNodes encodes a sequence of nodes as an HTML fragment.
func (he *htmlEncoder) WriteNodes(w io.Writer, ns []ast.Node) (int, error) {
	v := newVisitor(he, w)
	v.acceptBlocks(ns)
	return v.b.Flush()
}
