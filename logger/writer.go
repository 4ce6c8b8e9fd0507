//-----------------------------------------------------------------------------
// Copyright (c) 2022 The Clausemark Authors
//
// This file is part of Clausemark.
//
// Clausemark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package logger

import (
	"io"
	"sync"
	"time"

	"github.com/fatih/color"
)

// LogWriterAdapter writes log messages line by line to an io.Writer.
type LogWriterAdapter struct {
	w       io.Writer
	mx      sync.Mutex // protects buf and serializes w.Write
	buf     []byte
	colored bool
}

// NewLogWriterAdapter creates a new LogWriter from an io.Writer.
func NewLogWriterAdapter(w io.Writer) *LogWriterAdapter {
	return &LogWriterAdapter{
		w:   w,
		buf: make([]byte, 0, 500),
	}
}

// Colored makes the adapter highlight the level of each message.
func (lwa *LogWriterAdapter) Colored(on bool) *LogWriterAdapter {
	lwa.colored = on
	return lwa
}

var levelColor = map[Level]*color.Color{
	TraceLevel:     color.New(color.FgHiBlack),
	DebugLevel:     color.New(color.FgCyan),
	WarnLevel:      color.New(color.FgYellow),
	ErrorLevel:     color.New(color.FgRed),
	FatalLevel:     color.New(color.FgRed, color.Bold),
	PanicLevel:     color.New(color.FgMagenta, color.Bold),
	MandatoryLevel: color.New(color.Bold),
}

var eol = []byte{'\n'}

// WriteMessage writes the given message to the io.Writer.
func (lwa *LogWriterAdapter) WriteMessage(level Level, ts time.Time, prefix, msg string, details []byte) error {
	year, month, day := ts.Date()
	hour, minute, second := ts.Clock()

	lwa.mx.Lock()
	defer lwa.mx.Unlock()
	buf := lwa.buf[:0]
	itoa(&buf, year, 4)
	buf = append(buf, '-')
	itoa(&buf, int(month), 2)
	buf = append(buf, '-')
	itoa(&buf, day, 2)
	buf = append(buf, ' ')
	itoa(&buf, hour, 2)
	buf = append(buf, ':')
	itoa(&buf, minute, 2)
	buf = append(buf, ':')
	itoa(&buf, second, 2)
	buf = append(buf, ' ')
	if c, ok := levelColor[level]; ok && lwa.colored {
		buf = append(buf, c.Sprint(level.Format())...)
	} else {
		buf = append(buf, level.Format()...)
	}
	buf = append(buf, ' ')
	if prefix != "" {
		buf = append(buf, prefix...)
		buf = append(buf, ' ')
	}
	buf = append(buf, msg...)
	buf = append(buf, details...)
	buf = append(buf, eol...)
	lwa.buf = buf
	_, err := lwa.w.Write(buf)
	return err
}

func itoa(buf *[]byte, i, wid int) {
	var b [20]byte
	for bp := wid - 1; bp >= 0; bp-- {
		q := i / 10
		b[bp] = byte('0' + i - q*10)
		i = q
	}
	*buf = append(*buf, b[:wid]...)
}
