// log/stack.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package log

import (
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strconv"
	"strings"
	"sync"
)

type StackFrame struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Function string `json:"function"`
}

// maxStackFrames bounds how far up the stack Callstack goes.
const maxStackFrames = 16

// modulePrefix is what's trimmed from function names in callstacks: the
// main module's path from the build info, or, if that's not available
// (as in some test binaries), the module path derived from this
// package's own import path.
var modulePrefix = sync.OnceValue(func() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Path != "" {
		return bi.Main.Path + "/"
	}
	return packageModule()
})

// packageModule returns the import path of the module containing this
// package, with a trailing slash, based on the symbol name of a function
// in it; the package is at the module root.
func packageModule() string {
	pc, _, _, ok := runtime.Caller(0)
	if !ok {
		return ""
	}
	// e.g. "github.com/mmp/qfi/log.packageModule"
	name := runtime.FuncForPC(pc).Name()
	return name[:strings.LastIndex(name, "/")+1]
}

// trimFunction shortens a fully-qualified function name from the stack
// to something that's readable in the log.
func trimFunction(fn string) string {
	fn = strings.TrimPrefix(fn, modulePrefix())
	return strings.TrimPrefix(fn, "main.")
}

// Callstack returns the callers of the function that is doing the
// logging, reusing fr's storage if it's large enough. It stops at main.
func Callstack(fr []StackFrame) []StackFrame {
	var callers [maxStackFrames]uintptr
	n := runtime.Callers(3, callers[:]) // skip up to function that is doing logging
	frames := runtime.CallersFrames(callers[:n])

	fr = fr[:0]
	if n == 0 {
		return fr
	}
	for {
		frame, more := frames.Next()
		fr = append(fr, StackFrame{
			File:     filepath.Base(frame.File),
			Line:     frame.Line,
			Function: trimFunction(frame.Function),
		})

		// Don't keep going up into go runtime stack frames.
		if !more || frame.Function == "main.main" {
			break
		}
	}
	return fr
}

func (f StackFrame) String() string {
	return f.File + ":" + strconv.Itoa(f.Line) + ":" + f.Function
}
