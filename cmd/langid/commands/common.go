package commands

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// commandLogger adapts to types.Logger, writing progress messages to
// stderr and honoring --quiet.
type commandLogger struct {
	quiet bool
}

func (l *commandLogger) Printf(format string, v ...interface{}) {
	if !l.quiet {
		fmt.Fprintf(os.Stderr, format+"\n", v...)
	}
}

func (l *commandLogger) Println(v ...interface{}) {
	if !l.quiet {
		fmt.Fprintln(os.Stderr, v...)
	}
}

// stderrIsTerminal reports whether progress output goes to a live terminal.
func stderrIsTerminal() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}
