package greeting

import (
	"io"
	"os"
)

// Package greeting holds the program's entire functional surface: a single
// formatted write of the classic greeting.

// Message is the greeting text without the trailing newline.
const Message = "hello world"

// Fprint writes the greeting and a single trailing newline to w in one Write
// call. The writer's error, if any, is returned unchanged.
func Fprint(w io.Writer) error {
	if _, err := io.WriteString(w, Message+"\n"); err != nil {
		return err
	}
	return nil
}

// Print writes the greeting to standard output.
func Print() error {
	return Fprint(os.Stdout)
}
