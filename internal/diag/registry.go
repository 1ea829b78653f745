package diag

import "context"

// Deps carries the knobs a check may need. Keep minimal.
type Deps struct {
	// Workers sizes the pool used by the isolation checks; <=0 means default.
	Workers int
}

// Runner executes a single check, filling its report section as a side effect.
type Runner func(ctx context.Context, rep *Report, deps Deps) CheckResult

var registry = map[string]Runner{}

// Register adds a check runner.
func Register(name string, r Runner) {
	registry[name] = r
}

// Run executes a registered check by name.
func Run(ctx context.Context, name string, rep *Report, deps Deps) (CheckResult, error) {
	r, ok := registry[name]
	if !ok {
		return CheckResult{}, ErrUnknown{name: name}
	}
	return r(ctx, rep, deps), nil
}

// Sequence returns the full check sequence in report order.
func Sequence() []string {
	return []string{
		"greeting-text",
		"single-write",
		"repeat-isolation",
		"concurrent-isolation",
		"write-failure",
		"stream",
		"binary-provenance",
		"build-info",
	}
}

// ErrUnknown is returned when a check is not found.
type ErrUnknown struct{ name string }

func (e ErrUnknown) Error() string { return "unknown check: " + e.name }
