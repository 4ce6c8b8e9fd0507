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
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	goerrors "github.com/goliatone/go-errors"

	"clausemark.org/cm/logger"
)

// ---------- Subcommand: watch ----------------------------------------------

func cmdWatch(ctx context.Context, fs *flag.FlagSet, env *Env) (int, error) {
	if fs.NArg() != 1 {
		return exitUsage, goerrors.New("watch needs exactly one file", goerrors.CategoryCommand)
	}
	w, err := newWatcher(env.Log, fs.Arg(0))
	if err != nil {
		return exitFailure, err
	}
	outFile := fs.Lookup("o").Value.String()
	go w.eventLoop(ctx)
	for range w.changed {
		if err = convertFile(ctx, env, w.path, outFile); err != nil {
			env.Log.Error().Str("file", w.path).Err(err).Msg("Conversion failed")
			continue
		}
		env.Log.Info().Str("file", w.path).Msg("Converted")
	}
	return exitOK, nil
}

func convertFile(ctx context.Context, env *Env, path, outFile string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	out, err := convert(ctx, env, data, env.Config.From, env.Config.Path())
	if err != nil {
		return err
	}
	if outFile == "" {
		_, err = env.Out.Write(out)
		return err
	}
	return os.WriteFile(outFile, out, 0o644)
}

// watcher reports changes of a single file. The directory of the file is
// watched, because editors often replace a file instead of writing it.
type watcher struct {
	log     *logger.Logger
	base    *fsnotify.Watcher
	path    string
	changed chan struct{}
}

func newWatcher(log *logger.Logger, path string) (*watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	if _, err = os.Stat(absPath); err != nil {
		return nil, err
	}
	base, err := fsnotify.NewWatcher()
	if err != nil {
		log.Debug().Err(err).Str("path", absPath).Msg("Unable to create watcher")
		return nil, err
	}
	if err = base.Add(filepath.Dir(absPath)); err != nil {
		base.Close()
		return nil, err
	}
	w := &watcher{
		log:     log,
		base:    base,
		path:    absPath,
		changed: make(chan struct{}, 1),
	}
	w.changed <- struct{}{}
	return w, nil
}

func (w *watcher) eventLoop(ctx context.Context) {
	defer close(w.changed)
	defer w.base.Close()
	for {
		select {
		case <-ctx.Done():
			w.log.Trace().Msg("done with watching")
			return
		case err, ok := <-w.base.Errors:
			if !ok {
				return
			}
			w.log.Warn().Err(err).Str("path", w.path).Msg("Watch error")
		case ev, ok := <-w.base.Events:
			if !ok {
				return
			}
			w.log.Trace().Str("name", ev.Name).Str("op", ev.Op.String()).Msg("file event")
			if ev.Name != w.path || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			select {
			case w.changed <- struct{}{}:
			default:
			}
		}
	}
}
