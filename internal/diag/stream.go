package diag

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"
)

const streamCheck = "stream"

// stream records whether stdout is a terminal. The fact is informational;
// the check itself always passes.
func streamRunner(_ context.Context, rep *Report, _ Deps) CheckResult {
	fd := os.Stdout.Fd()
	tty := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	rep.Stream = &StreamSection{StdoutTerminal: tty}
	if tty {
		return resultOK(streamCheck, "stdout is a terminal")
	}
	return resultOK(streamCheck, "stdout is not a terminal")
}

func init() {
	Register(streamCheck, streamRunner)
}
