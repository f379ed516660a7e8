// Copyright 2023 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

// Package log provides logging capabilities for the publisher.
// Concepts:
//
// * ConsoleLogger: provides logging functions and writes log events to its destination
//
// * Event: a single formatted message with its level and time
//
// Call graph:
// -> log.Info()
// -> ConsoleLogger.Log()
// -> ConsoleLogger.LogEvent(), the event is formatted and written synchronously
package log

import (
	"io"
	"os"
)

var defaultLogger = NewConsoleLogger(os.Stdout, INFO, LstdFlags)

// SetLevel changes the level of the default logger
func SetLevel(level Level) {
	defaultLogger.SetLevel(level)
}

// GetLevel returns the level of the default logger
func GetLevel() Level {
	return defaultLogger.GetLevel()
}

// SetOutput changes the destination of the default logger
func SetOutput(out io.Writer) {
	defaultLogger.SetOutput(out)
}

// Trace records trace log
func Trace(format string, v ...any) {
	defaultLogger.Log(1, TRACE, format, v...)
}

// Debug records debug log
func Debug(format string, v ...any) {
	defaultLogger.Log(1, DEBUG, format, v...)
}

// Info records info log
func Info(format string, v ...any) {
	defaultLogger.Log(1, INFO, format, v...)
}

// Warn records warning log
func Warn(format string, v ...any) {
	defaultLogger.Log(1, WARN, format, v...)
}

// Error records error log
func Error(format string, v ...any) {
	defaultLogger.Log(1, ERROR, format, v...)
}

