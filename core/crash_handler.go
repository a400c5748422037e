package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync/atomic"
)

// Finalizer restores the terminal; satisfied by tcell.Screen
type Finalizer interface {
	Fini()
}

var crashScreen atomic.Pointer[Finalizer]

// RegisterScreen sets the screen restored by HandleCrash, nil clears it
func RegisterScreen(s Finalizer) {
	if s == nil {
		crashScreen.Store(nil)
		return
	}
	crashScreen.Store(&s)
}

// HandleCrash is the unified panic handler that restores the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	// Restore terminal to sane state before writing anything
	if p := crashScreen.Load(); p != nil {
		(*p).Fini()
	}

	fmt.Fprintf(os.Stderr, "\n\x1b[31mCRASH DETECTED: %v\x1b[0m\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
	os.Stderr.Sync()

	os.Exit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
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
