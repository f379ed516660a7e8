// Copyright 2019 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package log

import "strings"

// These flags define which text to prefix to each log entry generated
// by the Logger. Bits are or'ed together to control what's printed.
// There is no control over the order they appear (the order listed
// here) or the format they present (as described in the comments).
// The standard is:
// 2009/01/23 01:23:23 [I] message
const (
	Ldate         = 1 << iota // the date in the local time zone: 2009/01/23
	Ltime                     // the time in the local time zone: 01:23:23
	Lmicroseconds             // microsecond resolution: 01:23:23.123123.  assumes Ltime.
	LUTC                      // if Ldate or Ltime is set, use UTC rather than the local time zone
	Llevelinitial             // Initial character of the provided level in brackets eg. [I] for info
	Llevel                    // Provided level in brackets [INFO]

	// LstdFlags is the initial value for the standard logger
	LstdFlags = Ldate | Ltime | Llevelinitial
)

var flagFromString = map[string]int{
	"none":         0,
	"date":         Ldate,
	"time":         Ltime,
	"microseconds": Lmicroseconds,
	"utc":          LUTC,
	"levelinitial": Llevelinitial,
	"level":        Llevel,
	"stdflags":     LstdFlags,
}

// FlagsFromString takes a comma separated list of flags and returns
// the flags for this string
func FlagsFromString(from string) int {
	flags := 0
	for _, flag := range strings.Split(strings.ToLower(from), ",") {
		f, ok := flagFromString[strings.TrimSpace(flag)]
		if ok {
			flags |= f
		}
	}
	if flags == 0 {
		return -1
	}
	return flags
}
