package session

import (
	"fmt"
	"io"
)

// Terminal is the console capability the dialogue needs beyond plain text.
type Terminal interface {
	Clear()
}

// ANSITerminal clears the screen with ANSI escape sequences.
type ANSITerminal struct {
	Out io.Writer
}

// Clear moves the cursor home and erases the screen.
func (t ANSITerminal) Clear() {
	fmt.Fprint(t.Out, "\033[H\033[2J")
}

// NopTerminal ignores screen control. Used when output is piped.
type NopTerminal struct{}

func (NopTerminal) Clear() {}
