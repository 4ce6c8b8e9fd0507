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
	"io"
	"sort"

	"clausemark.org/cm/config"
	"clausemark.org/cm/logger"
	"clausemark.org/cm/router"
)

// Command stores information about commands / sub-commands.
type Command struct {
	Name   string              // command name as it appears on the command line
	Usage  string              // one line description, shown by help
	Func   CommandFunc         // function that executes a command
	Config bool                // if true, the configuration is read and validated
	Flags  func(*flag.FlagSet) // function to set up flag.FlagSet
}

// CommandFunc is the function that executes the command.
// It accepts the parsed command line parameters.
// It returns the exit code and an error.
type CommandFunc func(context.Context, *flag.FlagSet, *Env) (int, error)

// Env is the environment a command runs in.
type Env struct {
	Config   *config.Config
	Registry *router.Registry
	Log      *logger.Logger
	In       io.Reader
	Out      io.Writer
	Err      io.Writer
	Color    bool // output may contain terminal colors
}

var commands = make(map[string]Command)

// RegisterCommand registers the given command.
func RegisterCommand(cmd Command) {
	if cmd.Name == "" || cmd.Func == nil {
		panic("Required command values missing")
	}
	if _, ok := commands[cmd.Name]; ok {
		panic("Command already registered: " + cmd.Name)
	}
	commands[cmd.Name] = cmd
}

// Get returns the command identified by the given name and a bool to signal success.
func Get(name string) (Command, bool) {
	cmd, ok := commands[name]
	return cmd, ok
}

// List returns a sorted list of all registered command names.
func List() []string {
	result := make([]string, 0, len(commands))
	for name := range commands {
		result = append(result, name)
	}
	sort.Strings(result)
	return result
}

func (c *Command) newFlagSet(w io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(c.Name, flag.ContinueOnError)
	fs.SetOutput(w)
	if c.Flags != nil {
		c.Flags(fs)
	}
	return fs
}
