package diag

import "context"

// RunAll executes the full check sequence and returns the assembled report.
func RunAll(ctx context.Context, deps Deps) (*Report, error) {
	return runChecks(ctx, Sequence(), deps)
}

// RunOne executes a single named check inside a fresh report.
func RunOne(ctx context.Context, name string, deps Deps) (*Report, error) {
	return runChecks(ctx, []string{name}, deps)
}

func runChecks(ctx context.Context, names []string, deps Deps) (*Report, error) {
	rep := newReport()
	for _, name := range names {
		res, err := Run(ctx, name, rep, deps)
		if err != nil {
			return nil, err
		}
		rep.append(res)
	}
	return rep, nil
}
