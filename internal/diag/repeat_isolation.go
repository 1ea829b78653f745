package diag

import "context"

const repeatIsolationCheck = "repeat-isolation"

// repeat-isolation verifies three sequential invocations into fresh sinks
// yield three identical outputs.
func repeatIsolationRunner(_ context.Context, _ *Report, _ Deps) CheckResult {
	const runs = 3
	first := ""
	for i := 0; i < runs; i++ {
		out, err := captureGreeting()
		if err != nil {
			return failf(repeatIsolationCheck, "run %d failed: %v", i, err)
		}
		if i == 0 {
			first = string(out)
			continue
		}
		if string(out) != first {
			return failf(repeatIsolationCheck, "run %d diverged: %q vs %q", i, string(out), first)
		}
	}
	return resultOK(repeatIsolationCheck, "3 identical captures")
}

func init() {
	Register(repeatIsolationCheck, repeatIsolationRunner)
}
