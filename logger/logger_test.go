//-----------------------------------------------------------------------------
// Copyright (c) 2022 The Clausemark Authors
//
// This file is part of Clausemark.
//
// Clausemark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package logger_test

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"clausemark.org/cm/logger"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()
	testcases := []struct {
		text string
		exp  logger.Level
	}{
		{"tra", logger.TraceLevel},
		{"deb", logger.DebugLevel},
		{"info", logger.InfoLevel},
		{"warn", logger.WarnLevel},
		{"err", logger.ErrorLevel},
		{"fata", logger.FatalLevel},
		{"pan", logger.PanicLevel},
		{"manda", logger.MandatoryLevel},
		{"dis", logger.NeverLevel},
		{"d", logger.Level(0)},
	}
	for i, tc := range testcases {
		got := logger.ParseLevel(tc.text)
		if got != tc.exp {
			t.Errorf("%d: ParseLevel(%q) == %q, but got %q", i, tc.text, tc.exp, got)
		}
	}
}

func TestWriteMessage(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	log := logger.New(logger.NewLogWriterAdapter(&buf), "ROUTE").SetLevel(logger.DebugLevel)
	log.Trace().Msg("hidden")
	log.Debug().Str("from", "markdown").Int("hops", 2).Bool("ok", true).Msg("path")
	got := buf.String()
	if strings.Contains(got, "hidden") {
		t.Errorf("trace message written at debug level: %q", got)
	}
	exp := "DEBUG ROUTE  path, from=markdown, hops=2, ok=true\n"
	if !strings.HasSuffix(got, exp) {
		t.Errorf("%q does not end with %q", got, exp)
	}
}

func TestChild(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	log := logger.New(logger.NewLogWriterAdapter(&buf), "")
	child := log.Clone().Str("run", "r1").Child()
	child.Debug().Msg("not yet")
	if buf.Len() != 0 {
		t.Errorf("debug message written at info level: %q", buf.String())
	}
	log.SetLevel(logger.DebugLevel)
	child.Debug().Msg("edge")
	if got, exp := buf.String(), "edge, run=r1\n"; !strings.HasSuffix(got, exp) {
		t.Errorf("%q does not end with %q", got, exp)
	}
}

func TestNilLogger(t *testing.T) {
	t.Parallel()
	var log *logger.Logger
	if lv := log.Level(); lv != logger.NeverLevel {
		t.Errorf("%q != %q", lv, logger.NeverLevel)
	}
	log.Info().Str("key", "val").Msg("ignored")
}

func BenchmarkDisabled(b *testing.B) {
	log := logger.New(&stderrLogWriter{}, "").SetLevel(logger.NeverLevel)
	for n := 0; n < b.N; n++ {
		log.Info().Str("key", "val").Msg("Benchmark")
	}
}

type stderrLogWriter struct{}

func (*stderrLogWriter) WriteMessage(level logger.Level, ts time.Time, prefix, msg string, details []byte) error {
	fmt.Fprintf(os.Stderr, "%v %v %v %v %v\n", level.Format(), ts, prefix, msg, string(details))
	return nil
}

type testLogWriter struct{}

func (*testLogWriter) WriteMessage(logger.Level, time.Time, string, string, []byte) error {
	return nil
}

func BenchmarkStrMessage(b *testing.B) {
	log := logger.New(&testLogWriter{}, "")
	for n := 0; n < b.N; n++ {
		log.Info().Str("key", "val").Msg("Benchmark")
	}
}

func BenchmarkCloneStrMessage(b *testing.B) {
	log := logger.New(&testLogWriter{}, "").Clone().Str("sss", "ttt").Child()
	for n := 0; n < b.N; n++ {
		log.Info().Msg("123456789")
	}
}
