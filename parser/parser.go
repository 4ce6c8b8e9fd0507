//-----------------------------------------------------------------------------
// Copyright (c) 2022 The Clausemark Authors
//
// This file is part of Clausemark.
//
// Clausemark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package parser provides a generic interface to a range of different parsers.
package parser

import (
	"fmt"
	"sort"

	goerrors "github.com/goliatone/go-errors"

	"clausemark.org/cm/ast"
)

// Info describes a single parser.
type Info struct {
	Name         string
	AltNames     []string
	IsTextFormat bool
	Parse        func(src []byte) (*ast.DocumentNode, error)
}

var registry = map[string]*Info{}

// Register the parser (info) for later retrieval.
func Register(pi *Info) {
	if _, ok := registry[pi.Name]; ok {
		panic(fmt.Sprintf("Parser %q already registered", pi.Name))
	}
	registry[pi.Name] = pi
	for _, alt := range pi.AltNames {
		if _, ok := registry[alt]; ok {
			panic(fmt.Sprintf("Parser %q already registered", alt))
		}
		registry[alt] = pi
	}
}

// GetSyntaxes returns a sorted list of syntaxes implemented by all registered parsers.
func GetSyntaxes() []string {
	result := make([]string, 0, len(registry))
	for syntax := range registry {
		result = append(result, syntax)
	}
	sort.Strings(result)
	return result
}

// Get the parser (info) by name.
func Get(name string) (*Info, error) {
	if pi := registry[name]; pi != nil {
		return pi, nil
	}
	return nil, goerrors.New(fmt.Sprintf("no parser for syntax %q", name), goerrors.CategoryNotFound).
		WithTextCode("UNKNOWN_SYNTAX")
}

// Parse parses some input with the named parser.
func Parse(src []byte, syntax string) (*ast.DocumentNode, error) {
	pi, err := Get(syntax)
	if err != nil {
		return nil, err
	}
	return pi.Parse(src)
}
