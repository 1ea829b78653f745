package diag

import (
	"context"

	"github.com/flarebyte/hello-world-cli/internal/buildinfo"
)

const buildInfoCheck = "build-info"

// build-info records the version metadata baked into the binary.
func buildInfoRunner(_ context.Context, rep *Report, _ Deps) CheckResult {
	b := rep.build()
	b.Version = buildinfo.Summary()
	b.Commit = buildinfo.Commit
	return resultOK(buildInfoCheck, b.Version)
}

func init() {
	Register(buildInfoCheck, buildInfoRunner)
}
