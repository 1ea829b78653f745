package diag

import (
	"context"
	"errors"

	"github.com/flarebyte/hello-world-cli/internal/greeting"
)

const writeFailureCheck = "write-failure"

type brokenWriter struct {
	partial bool
	cause   error
}

func (w *brokenWriter) Write(p []byte) (int, error) {
	if w.partial {
		return len(p) / 2, w.cause
	}
	return 0, w.cause
}

// write-failure verifies a failing sink's error propagates unchanged, whether
// the sink rejects the write outright or fails mid-write.
func writeFailureRunner(_ context.Context, _ *Report, _ Deps) CheckResult {
	cause := errors.New("sink closed")
	if err := greeting.Fprint(&brokenWriter{cause: cause}); !errors.Is(err, cause) {
		return failf(writeFailureCheck, "error not propagated: %v", err)
	}
	if err := greeting.Fprint(&brokenWriter{partial: true, cause: cause}); !errors.Is(err, cause) {
		return failf(writeFailureCheck, "partial-write error not propagated: %v", err)
	}
	return resultOK(writeFailureCheck, "sink errors propagated")
}

func init() {
	Register(writeFailureCheck, writeFailureRunner)
}
