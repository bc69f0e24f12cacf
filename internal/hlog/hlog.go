// Package hlog holds the two package-level loggers shared by the compiler
// pipeline and the virtual machine. Neither the retrieved teacher codebase
// nor any other repo in the corpus reaches for a structured-logging
// library, so Hawk stays on the standard library's log package too.
package hlog

import (
	"io"
	"log"
	"os"
)

// Compiler logs pipeline-stage diagnostics that are not user-facing
// diag.Diagnostic values (e.g. "halting after parse: N error(s)").
var Compiler = log.New(os.Stderr, "hawk: ", 0)

// VM logs fatal execution failures before the process exits.
var VM = log.New(os.Stderr, "hawk-vm: ", 0)

// SetVerbose switches both loggers to include file:line prefixes, mirroring
// the teacher's own -debug flag toggling extra diagnostic output.
func SetVerbose(v bool) {
	flags := 0
	if v {
		flags = log.Lshortfile
	}
	Compiler.SetFlags(flags)
	VM.SetFlags(flags)
}

// Discard silences both loggers; used by tests that don't want stray
// stderr output attributed to a failing case.
func Discard() {
	Compiler.SetOutput(io.Discard)
	VM.SetOutput(io.Discard)
}
