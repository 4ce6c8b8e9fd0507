//-----------------------------------------------------------------------------
// Copyright (c) 2022 The Clausemark Authors
//
// This file is part of Clausemark.
//
// Clausemark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package schema

import (
	"fmt"

	goerrors "github.com/goliatone/go-errors"

	"clausemark.org/cm/ast"
)

// Text codes of schema errors.
const (
	TextCodeInvalid = "SCHEMA_INVALID" // tree does not match the variant schema
	TextCodeWire    = "WIRE_INVALID"   // wire record does not match the JSON schema
)

func pathOrRoot(path string) string {
	if path == "" {
		return "/"
	}
	return path
}

func newAttrError(path string, v ast.Variant, err error) error {
	return goerrors.FromOzzoValidation(err, fmt.Sprintf("invalid %v node at %s", v, pathOrRoot(path))).
		WithTextCode(TextCodeInvalid).
		WithMetadata(map[string]any{"path": pathOrRoot(path), "variant": v.String()})
}

func newPlacementError(path string, v ast.Variant, msg string) error {
	return goerrors.NewValidation(
		fmt.Sprintf("invalid tree at %s", pathOrRoot(path)),
		goerrors.FieldError{Field: "nodes", Message: msg},
	).
		WithTextCode(TextCodeInvalid).
		WithMetadata(map[string]any{"path": pathOrRoot(path), "variant": v.String()})
}

// IsSchemaError returns true if the error reports an invalid tree or an
// invalid wire record.
func IsSchemaError(err error) bool {
	var e *goerrors.Error
	if !goerrors.As(err, &e) || e.Category != goerrors.CategoryValidation {
		return false
	}
	return e.TextCode == TextCodeInvalid || e.TextCode == TextCodeWire
}
