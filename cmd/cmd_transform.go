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
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"

	"clausemark.org/cm/formats"
)

// ---------- Subcommand: transform ------------------------------------------

func cmdTransform(ctx context.Context, fs *flag.FlagSet, env *Env) (int, error) {
	data, err := getInput(env, fs.Args())
	if err != nil {
		return exitUsage, err
	}
	out, err := convert(ctx, env, data, env.Config.From, env.Config.Path())
	if err != nil {
		return exitFailure, err
	}
	if _, err = env.Out.Write(out); err != nil {
		return exitFailure, err
	}
	return exitOK, nil
}

func getInput(env *Env, args []string) ([]byte, error) {
	if len(args) < 1 {
		return io.ReadAll(env.In)
	}
	return os.ReadFile(args[0])
}

func convert(ctx context.Context, env *Env, data []byte, from string, path []string) ([]byte, error) {
	src, err := formats.Read(env.Registry, from, data)
	if err != nil {
		return nil, err
	}
	val, err := env.Registry.Transform(ctx, src, from, path, env.params())
	if err != nil {
		return nil, err
	}
	return formats.Write(val)
}

// ---------- Subcommand: roundtrip ------------------------------------------

func cmdRoundtrip(ctx context.Context, fs *flag.FlagSet, env *Env) (int, error) {
	data, err := getInput(env, fs.Args())
	if err != nil {
		return exitUsage, err
	}
	from := env.Config.From
	out, err := convert(ctx, env, data, from, []string{formats.ContractMark, from})
	if err != nil {
		return exitFailure, err
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(string(data), string(out), false))
	if isEqual(diffs) {
		fmt.Fprintln(env.Out, "no differences")
		return exitOK, nil
	}
	if env.Color {
		fmt.Fprintln(env.Out, dmp.DiffPrettyText(diffs))
	} else {
		fmt.Fprintln(env.Out, plainDiff(diffs))
	}
	env.Log.Info().Int("changes", len(diffs)).Str("format", from).Msg("Round trip changed the document")
	return exitFailure, nil
}

func isEqual(diffs []diffmatchpatch.Diff) bool {
	for _, d := range diffs {
		if d.Type != diffmatchpatch.DiffEqual {
			return false
		}
	}
	return true
}

// plainDiff marks deleted text with [-...-] and inserted text with {+...+}.
func plainDiff(diffs []diffmatchpatch.Diff) string {
	var sb strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			sb.WriteString("{+" + d.Text + "+}")
		case diffmatchpatch.DiffDelete:
			sb.WriteString("[-" + d.Text + "-]")
		default:
			sb.WriteString(d.Text)
		}
	}
	return sb.String()
}

func printOK(env *Env, msg string) {
	color.New(color.FgGreen).Fprintln(env.Out, msg)
}
