package diag

import (
	"context"
	"strings"

	"github.com/flarebyte/hello-world-cli/internal/greeting"
)

const concurrentIsolationCheck = "concurrent-isolation"

type captureResult struct {
	out string
	err error
}

// concurrent-isolation verifies parallel invocations with private sinks all
// observe the exact greeting. Runs on the worker pool so any worker count
// exercises the same property.
func concurrentIsolationRunner(_ context.Context, _ *Report, deps Deps) CheckResult {
	const captures = 5
	workers := getWorkers(deps.Workers)
	results := runIndexedParallel(captures, workers, func(int) captureResult {
		out, err := captureGreeting()
		return captureResult{out: string(out), err: err}
	})
	for i, r := range results {
		if r.err != nil {
			return failf(concurrentIsolationCheck, "capture %d failed: %v", i, r.err)
		}
		if strings.TrimSpace(r.out) != greeting.Message {
			return failf(concurrentIsolationCheck, "capture %d: %q", i, r.out)
		}
	}
	return resultOK(concurrentIsolationCheck, "5 identical captures")
}

func init() {
	Register(concurrentIsolationCheck, concurrentIsolationRunner)
}
