package diag

import (
	"context"

	"github.com/flarebyte/hello-world-cli/internal/greeting"
)

const singleWriteCheck = "single-write"

// single-write verifies one invocation performs exactly one Write call
// carrying the full payload.
func singleWriteRunner(_ context.Context, _ *Report, _ Deps) CheckResult {
	var w countingWriter
	if err := greeting.Fprint(&w); err != nil {
		return failf(singleWriteCheck, "entry point failed: %v", err)
	}
	if w.writes != 1 {
		return failf(singleWriteCheck, "%d write calls, want 1", w.writes)
	}
	if w.buf.String() != greeting.Message+"\n" {
		return failf(singleWriteCheck, "payload %q", w.buf.String())
	}
	return resultOK(singleWriteCheck, "1 write, 12 bytes")
}

func init() {
	Register(singleWriteCheck, singleWriteRunner)
}
