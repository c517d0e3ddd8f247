package config

import (
	"fmt"
	"io"
	"os"
)

// Exitf reports a fatal command error on stderr and exits with code 1.
func Exitf(format string, args ...any) {
	writeExitMessage(os.Stderr, format, args...)
	os.Exit(1)
}

func writeExitMessage(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "navshell: "+format+"\n", args...)
}
