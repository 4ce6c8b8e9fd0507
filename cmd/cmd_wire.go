//-----------------------------------------------------------------------------
// Copyright (c) 2022 The Clausemark Authors
//
// This file is part of Clausemark.
//
// Clausemark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package cmd

import (
	"context"
	"flag"
	"os"

	jsonpatch "github.com/evanphx/json-patch"
	goerrors "github.com/goliatone/go-errors"

	"clausemark.org/cm/jsontree"
	"clausemark.org/cm/schema"
)

// ---------- Subcommand: validate -------------------------------------------

func cmdValidate(_ context.Context, fs *flag.FlagSet, env *Env) (int, error) {
	reg := schema.Default()
	if fs.Lookup("schema").Value.String() == "true" {
		_, err := env.Out.Write(append(reg.WireSchema(), '\n'))
		return exitOK, err
	}
	data, err := getInput(env, fs.Args())
	if err != nil {
		return exitUsage, err
	}
	if _, err = jsontree.Unmarshal(reg, data); err != nil {
		return exitFailure, err
	}
	printOK(env, "valid")
	return exitOK, nil
}

// ---------- Subcommand: patch ----------------------------------------------

func cmdPatch(_ context.Context, fs *flag.FlagSet, env *Env) (int, error) {
	patchFile := fs.Lookup("p").Value.String()
	if patchFile == "" {
		return exitUsage, goerrors.New("missing patch file, use -p", goerrors.CategoryCommand)
	}
	patchData, err := os.ReadFile(patchFile)
	if err != nil {
		return exitUsage, err
	}
	patch, err := jsonpatch.DecodePatch(patchData)
	if err != nil {
		return exitUsage, goerrors.Wrap(err, goerrors.CategoryBadInput, "decode patch")
	}
	data, err := getInput(env, fs.Args())
	if err != nil {
		return exitUsage, err
	}
	patched, err := patch.Apply(data)
	if err != nil {
		return exitFailure, goerrors.Wrap(err, goerrors.CategoryBadInput, "apply patch")
	}
	dn, err := jsontree.Unmarshal(schema.Default(), patched)
	if err != nil {
		return exitFailure, err
	}
	out, err := jsontree.MarshalIndent(dn)
	if err != nil {
		return exitFailure, err
	}
	if _, err = env.Out.Write(append(out, '\n')); err != nil {
		return exitFailure, err
	}
	return exitOK, nil
}
