// Package core holds process-wide crash handling shared by every goroutine
package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"
)

var (
	crashMu      sync.Mutex
	crashCleanup []func()
	crashOut     io.Writer = os.Stderr
	crashExit              = os.Exit
)

// OnCrash registers fn to run before the crash report is printed, typically restoring the terminal
func OnCrash(fn func()) {
	crashMu.Lock()
	defer crashMu.Unlock()
	crashCleanup = append(crashCleanup, fn)
}

// HandleCrash runs cleanups in reverse registration order, prints r with the stack and exits
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	cleanups := crashCleanup
	crashCleanup = nil
	crashMu.Unlock()

	for i := len(cleanups) - 1; i >= 0; i-- {
		runCleanup(cleanups[i])
	}

	fmt.Fprintf(crashOut, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(crashOut, "Stack Trace:\r\n%s\r\n", debug.Stack())
	crashExit(1)
}

// runCleanup isolates a panicking cleanup so the report still prints
func runCleanup(fn func()) {
	defer func() { _ = recover() }()
	fn()
}

// Go runs fn in a new goroutine with panic recovery
// Use instead of the go keyword so a crash restores the terminal
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
