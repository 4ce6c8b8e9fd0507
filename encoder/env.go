//-----------------------------------------------------------------------------
// Copyright (c) 2022 The Clausemark Authors
//
// This file is part of Clausemark.
//
// Clausemark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package encoder

import "clausemark.org/cm/ast"

// Environment specifies all data and functions that affects encoding.
type Environment struct {
	// Important for HTML encoder
	Lang       string // default language
	Xhtml      bool   // use XHTML syntax instead of HTML syntax
	NewWindow  bool   // open link in new window
	IgnoreMeta map[string]bool

	// LinkAdapter may replace a link before it is encoded.
	LinkAdapter func(*ast.LinkNode) ast.Node
}

// GetLang returns the default language, or the empty string.
func (env *Environment) GetLang() string {
	if env == nil {
		return ""
	}
	return env.Lang
}

// IsXHTML returns true, if XHTML syntax should be written.
func (env *Environment) IsXHTML() bool { return env != nil && env.Xhtml }

// IgnoreMetaKey returns true, if the meta key must not be encoded.
func (env *Environment) IgnoreMetaKey(key string) bool {
	return env != nil && env.IgnoreMeta[key]
}

// AdaptLink helps to call the link adapter.
func (env *Environment) AdaptLink(ln *ast.LinkNode) (*ast.LinkNode, ast.Node) {
	if env == nil || env.LinkAdapter == nil {
		return ln, nil
	}
	n := env.LinkAdapter(ln)
	if n == nil {
		return ln, nil
	}
	if ln2, ok := n.(*ast.LinkNode); ok {
		return ln2, nil
	}
	return nil, n
}
