//-----------------------------------------------------------------------------
// Copyright (c) 2022 The Clausemark Authors
//
// This file is part of Clausemark.
//
// Clausemark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package cmd provides the commands of the clausemark program.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"

	"github.com/fatih/color"
	"golang.org/x/term"

	"clausemark.org/cm/config"
	"clausemark.org/cm/formats"
	"clausemark.org/cm/logger"
	"clausemark.org/cm/router"
	"clausemark.org/cm/schema"
	"clausemark.org/cm/strfun"
)

// Exit codes of the program.
const (
	exitOK      = 0
	exitFailure = 1 // conversion failed
	exitUsage   = 2 // command line or configuration is wrong
)

var (
	progName = "clausemark"
	version  = "dev"
)

func init() {
	RegisterCommand(Command{
		Name:  "help",
		Usage: "list all commands",
		Func:  cmdHelp,
	})
	RegisterCommand(Command{
		Name:  "version",
		Usage: "show the program version",
		Func: func(_ context.Context, _ *flag.FlagSet, env *Env) (int, error) {
			fmt.Fprintf(env.Out, "%v %v (%v/%v/%v)\n", progName, version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
			return exitOK, nil
		},
	})
	RegisterCommand(Command{
		Name:  "formats",
		Usage: "list all formats and their edges",
		Func:  cmdFormats,
	})
	RegisterCommand(Command{
		Name:   "transform",
		Usage:  "convert [file] from one format along a path of formats",
		Func:   cmdTransform,
		Config: true,
		Flags:  flgConvert,
	})
	RegisterCommand(Command{
		Name:   "roundtrip",
		Usage:  "convert [file] to contractmark and back, show the difference",
		Func:   cmdRoundtrip,
		Config: true,
		Flags:  flgConvert,
	})
	RegisterCommand(Command{
		Name:  "validate",
		Usage: "check the JSON records of a tree in [file]",
		Func:  cmdValidate,
		Flags: func(fs *flag.FlagSet) {
			fs.Bool("schema", false, "print the JSON schema of the records")
		},
	})
	RegisterCommand(Command{
		Name:  "patch",
		Usage: "apply a JSON patch to the records of a tree in [file]",
		Func:  cmdPatch,
		Flags: func(fs *flag.FlagSet) {
			fs.String("p", "", "file with the JSON patch (RFC 6902)")
		},
	})
	RegisterCommand(Command{
		Name:   "watch",
		Usage:  "convert file whenever it changes",
		Func:   cmdWatch,
		Config: true,
		Flags: func(fs *flag.FlagSet) {
			flgConvert(fs)
			fs.String("o", "", "output file, default is standard output")
		},
	})
}

func flgConvert(fs *flag.FlagSet) {
	fs.String("c", config.DefaultFile, "configuration file")
	fs.String(config.KeyFrom, "", "source format")
	fs.String(config.KeyTo, "", "comma separated list of target formats")
	fs.String(config.KeyLang, "", "document language")
	fs.Bool(config.KeyUnquote, false, "remove quotes of String values")
	fs.Bool(config.KeyRemoveFormatting, false, "remove emphasis")
	fs.String(config.KeyLogLevel, "", "log level")
}

// getConfig reads the configuration file, then applies all flags given.
func getConfig(fs *flag.FlagSet) (*config.Config, error) {
	configFile := config.DefaultFile
	if configFlag := fs.Lookup("c"); configFlag != nil {
		configFile = configFlag.Value.String()
	}
	cfg, err := config.ReadFile(configFile)
	if err != nil {
		return nil, err
	}
	fs.Visit(func(flg *flag.Flag) {
		if err != nil || flg.Name == "c" || flg.Name == "o" {
			return
		}
		err = cfg.Set(flg.Name, flg.Value.String())
	})
	return cfg, err
}

func cmdHelp(_ context.Context, _ *flag.FlagSet, env *Env) (int, error) {
	fmt.Fprintf(env.Out, "Usage: %v <command> [flags]\n\nAvailable commands:\n", progName)
	names := List()
	maxLen := 0
	for _, name := range names {
		maxLen = max(maxLen, len(name))
	}
	for _, name := range names {
		cmd, _ := Get(name)
		fmt.Fprintf(env.Out, "  %v  %v\n", strfun.JustifyLeft(name, maxLen, ' '), cmd.Usage)
	}
	return exitOK, nil
}

func cmdFormats(_ context.Context, _ *flag.FlagSet, env *Env) (int, error) {
	fs := env.Registry.Formats()
	maxLen := 0
	for _, f := range fs {
		maxLen = max(maxLen, len(f.Name))
	}
	name := color.New(color.Bold)
	for _, f := range fs {
		name.Fprint(env.Out, strfun.JustifyLeft(f.Name, maxLen, ' '))
		fmt.Fprintf(env.Out, "  %-15v  %v\n", f.Kind, f.Description)
		for _, e := range env.Registry.Edges(f.Name) {
			fmt.Fprintf(env.Out, "  -> %v\n", e.To)
		}
	}
	return exitOK, nil
}

// Execute runs the command given in args and returns the exit code.
func Execute(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer, args []string) int {
	name := "help"
	if len(args) > 0 {
		name, args = args[0], args[1:]
	}
	command, ok := Get(name)
	if !ok {
		fmt.Fprintf(stderr, "Unknown command %q\n", name)
		return exitUsage
	}
	fs := command.newFlagSet(stderr)
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(stderr, "%s: unable to parse flags: %v %v\n", name, args, err)
		return exitUsage
	}
	reg, err := formats.New()
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", name, err)
		return exitFailure
	}
	env := &Env{
		Config:   config.Default(),
		Registry: reg,
		In:       stdin,
		Out:      stdout,
		Err:      stderr,
		Color:    !color.NoColor && isTerminal(stdout),
	}
	if command.Config {
		if env.Config, err = getConfig(fs); err == nil {
			err = env.Config.Validate(formatNames(reg))
		}
		if err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", name, err)
			return exitUsage
		}
	}
	env.Log = logger.New(logger.NewLogWriterAdapter(stderr).Colored(isTerminal(stderr)), "").
		SetLevel(env.Config.Level())

	exitCode, err := command.Func(ctx, fs, env)
	if err != nil {
		env.Log.Error().Str("command", name).Err(err).Msg("Failed")
	}
	return exitCode
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func formatNames(reg *router.Registry) []string {
	fs := reg.Formats()
	result := make([]string, len(fs))
	for i, f := range fs {
		result[i] = f.Name
	}
	return result
}

func (env *Env) params() *router.Params {
	cfg := env.Config
	return &router.Params{
		Lang:             cfg.Lang,
		RemoveFormatting: cfg.RemoveFormatting,
		Unquote:          cfg.Unquote,
		Env:              cfg.Env,
		Logger:           env.Log,
		Schema:           schema.Default(),
	}
}

// Main is the real entrypoint of the clausemark program.
func Main(name, buildVersion string) {
	progName = name
	if buildVersion != "" {
		version = buildVersion
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	exitCode := Execute(ctx, os.Stdin, os.Stdout, os.Stderr, os.Args[1:])
	stop()
	if exitCode != exitOK {
		os.Exit(exitCode)
	}
}
