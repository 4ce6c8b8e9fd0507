//-----------------------------------------------------------------------------
// Copyright (c) 2022 The Clausemark Authors
//
// This file is part of Clausemark.
//
// Clausemark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package encoder provides a generic interface to encode the abstract syntax
// tree into some text form.
package encoder

import (
	"fmt"
	"io"
	"sort"

	goerrors "github.com/goliatone/go-errors"

	"clausemark.org/cm/ast"
)

// Encoder is an interface that allows to encode a document or a part of it.
type Encoder interface {
	WriteDocument(io.Writer, *ast.DocumentNode) (int, error)
	WriteNodes(io.Writer, []ast.Node) (int, error)
}

// Names of the encoders of this module.
const (
	EncoderMarkdown = "markdown"
	EncoderHTML     = "html"
	EncoderText     = "text"
	EncoderSlate    = "slate"
	EncoderJSON     = "json"
)

// Create builds a new encoder with the given environment.
func Create(enc string, env *Environment) (Encoder, error) {
	if info, ok := registry[enc]; ok {
		return info.Create(env), nil
	}
	return nil, goerrors.New(fmt.Sprintf("no encoder %q", enc), goerrors.CategoryNotFound).
		WithTextCode("UNKNOWN_ENCODER")
}

// Info stores some data about an encoder.
type Info struct {
	Create  func(*Environment) Encoder
	Default bool
}

var registry = map[string]Info{}
var defEncoding string

// Register the encoder for later retrieval.
func Register(enc string, info Info) {
	if _, ok := registry[enc]; ok {
		panic(fmt.Sprintf("Encoder %q already registered", enc))
	}
	if info.Default {
		if defEncoding != "" && defEncoding != enc {
			panic(fmt.Sprintf("Default encoder already set: %q, new encoding: %q", defEncoding, enc))
		}
		defEncoding = enc
	}
	registry[enc] = info
}

// GetEncodings returns all registered encodings, ordered by name.
func GetEncodings() []string {
	result := make([]string, 0, len(registry))
	for enc := range registry {
		result = append(result, enc)
	}
	sort.Strings(result)
	return result
}

// GetDefaultEncoding returns the encoding that should be used as default.
func GetDefaultEncoding() string {
	if defEncoding != "" {
		return defEncoding
	}
	if _, ok := registry[EncoderMarkdown]; ok {
		return EncoderMarkdown
	}
	panic("No default encoding given")
}
