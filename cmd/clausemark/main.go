//-----------------------------------------------------------------------------
// Copyright (c) 2022 The Clausemark Authors
//
// This file is part of Clausemark.
//
// Clausemark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package main is the starting point for the clausemark command.
package main

import (
	"clausemark.org/cm/cmd"
)

// Version variable. Will be filled by build process.
var version string = ""

func main() {
	cmd.Main("clausemark", version)
}
