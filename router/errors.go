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
	"fmt"

	goerrors "github.com/goliatone/go-errors"
)

// Text codes of router errors.
const (
	TextCodeNoPath        = "NO_PATH"
	TextCodeUnknownFormat = "UNKNOWN_FORMAT"
	TextCodeInvalidFormat = "INVALID_FORMAT"
)

func noPath(from, to string) error {
	return goerrors.New(fmt.Sprintf("no path from %q to %q", from, to), goerrors.CategoryRouting).
		WithTextCode(TextCodeNoPath).
		WithMetadata(map[string]any{"from": from, "to": to})
}

func unknownFormat(name string) error {
	return goerrors.New(fmt.Sprintf("unknown format %q", name), goerrors.CategoryNotFound).
		WithTextCode(TextCodeUnknownFormat).
		WithMetadata(map[string]any{"format": name})
}

// IsNoPath reports whether the error tells about a missing route.
func IsNoPath(err error) bool { return hasTextCode(err, TextCodeNoPath) }

// IsUnknownFormat reports whether the error names an unregistered format.
func IsUnknownFormat(err error) bool { return hasTextCode(err, TextCodeUnknownFormat) }

func hasTextCode(err error, code string) bool {
	var e *goerrors.Error
	return goerrors.As(err, &e) && e.TextCode == code
}
