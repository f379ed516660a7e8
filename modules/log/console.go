// Copyright 2019 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package log

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// ConsoleLogger writes events to a single writer, usually os.Stdout
type ConsoleLogger struct {
	mu  sync.Mutex
	out io.Writer

	Level  Level
	Flags  int
	Prefix string
}

// NewConsoleLogger creates a logger writing to out at the given level
func NewConsoleLogger(out io.Writer, level Level, flags int) *ConsoleLogger {
	switch flags {
	case 0:
		flags = LstdFlags
	case -1:
		flags = 0
	}
	return &ConsoleLogger{out: out, Level: level, Flags: flags}
}

// SetOutput changes the destination of the logger
func (l *ConsoleLogger) SetOutput(out io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.out = out
}

// SetLevel changes the level of the logger
func (l *ConsoleLogger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Level = level
}

// GetLevel returns the logging level for this logger
func (l *ConsoleLogger) GetLevel() Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.Level
}

// LevelEnabled checks whether a message at the given level would be written
func (l *ConsoleLogger) LevelEnabled(level Level) bool {
	return level >= l.GetLevel()
}

// Log formats the message and writes it if the level is enabled
func (l *ConsoleLogger) Log(skip int, level Level, format string, v ...any) {
	if !l.LevelEnabled(level) {
		return
	}
	msg := format
	if len(v) > 0 {
		msg = fmt.Sprintf(format, v...)
	}
	_ = l.LogEvent(&Event{level: level, msg: msg, time: time.Now()})
}

// LogEvent writes an already built event
func (l *ConsoleLogger) LogEvent(event *Event) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if event.level < l.Level {
		return nil
	}
	var buf []byte
	l.createMsg(&buf, event)
	_, err := l.out.Write(buf)
	return err
}

func (l *ConsoleLogger) Trace(format string, v ...any) { l.Log(1, TRACE, format, v...) }
func (l *ConsoleLogger) Debug(format string, v ...any) { l.Log(1, DEBUG, format, v...) }
func (l *ConsoleLogger) Info(format string, v ...any)  { l.Log(1, INFO, format, v...) }
func (l *ConsoleLogger) Warn(format string, v ...any)  { l.Log(1, WARN, format, v...) }
func (l *ConsoleLogger) Error(format string, v ...any) { l.Log(1, ERROR, format, v...) }

// Copy of cheap integer to fixed-width decimal to ascii from logger.
func itoa(buf *[]byte, i, wid int) {
	var b [20]byte
	bp := len(b) - 1
	for i >= 10 || wid > 1 {
		wid--
		q := i / 10
		b[bp] = byte('0' + i - q*10)
		bp--
		i = q
	}
	// i < 10
	b[bp] = byte('0' + i)
	*buf = append(*buf, b[bp:]...)
}

func (l *ConsoleLogger) createMsg(buf *[]byte, event *Event) {
	*buf = append(*buf, l.Prefix...)
	t := event.time
	if l.Flags&(Ldate|Ltime|Lmicroseconds) != 0 {
		if l.Flags&LUTC != 0 {
			t = t.UTC()
		}
		if l.Flags&Ldate != 0 {
			year, month, day := t.Date()
			itoa(buf, year, 4)
			*buf = append(*buf, '/')
			itoa(buf, int(month), 2)
			*buf = append(*buf, '/')
			itoa(buf, day, 2)
			*buf = append(*buf, ' ')
		}
		if l.Flags&(Ltime|Lmicroseconds) != 0 {
			hour, minute, sec := t.Clock()
			itoa(buf, hour, 2)
			*buf = append(*buf, ':')
			itoa(buf, minute, 2)
			*buf = append(*buf, ':')
			itoa(buf, sec, 2)
			if l.Flags&Lmicroseconds != 0 {
				*buf = append(*buf, '.')
				itoa(buf, t.Nanosecond()/1e3, 6)
			}
			*buf = append(*buf, ' ')
		}
	}
	if l.Flags&(Llevel|Llevelinitial) != 0 {
		level := strings.ToUpper(event.level.String())
		*buf = append(*buf, '[')
		if l.Flags&Llevelinitial != 0 {
			*buf = append(*buf, level[0])
		} else {
			*buf = append(*buf, level...)
		}
		*buf = append(*buf, "] "...)
	}
	// Now we need to prevent log spoofing:
	msg := strings.TrimSuffix(event.msg, "\n")
	lines := bytes.Split([]byte(msg), []byte("\n"))
	*buf = append(*buf, lines[0]...)
	for _, line := range lines[1:] {
		*buf = append(*buf, "\n\t"...)
		*buf = append(*buf, line...)
	}
	*buf = append(*buf, '\n')
}
