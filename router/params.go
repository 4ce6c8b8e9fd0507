//-----------------------------------------------------------------------------
// Copyright (c) 2022 The Clausemark Authors
//
// This file is part of Clausemark.
//
// Clausemark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package router

import (
	"clausemark.org/cm/logger"
	"clausemark.org/cm/parser/markdown"
	"clausemark.org/cm/schema"
)

// Params are handed to every edge of a single conversion.
type Params struct {
	Lang             string         // document language, used by HTML output
	RemoveFormatting bool           // drop emphasis before writing a format
	Unquote          bool           // strip the quotes of String typed values
	Env              map[string]any // values that override variables when evaluating formulas
	Logger           *logger.Logger
	Schema           *schema.Registry

	// Reader is the state of the last markdown read of this conversion.
	// Edges that decode embedded content resolve link references with it.
	Reader *markdown.State
}

// Registry returns the schema registry to validate with.
func (p *Params) Registry() *schema.Registry {
	if p == nil || p.Schema == nil {
		return schema.Default()
	}
	return p.Schema
}
