package diagnose

import "github.com/flarebyte/hello-world-cli/internal/diag"

const (
	exitCodeSuccess   = 0
	exitCodeExecErr   = 1
	exitCodeCheckFail = 2
)

type diagnoseExitError struct {
	code int
	msg  string
}

func (e diagnoseExitError) Error() string { return e.msg }
func (e diagnoseExitError) ExitCode() int { return e.code }

// evaluateDiagnoseExit maps the report outcome to the process exit contract:
// the report is always emitted first, then failures surface as exit 2.
func evaluateDiagnoseExit(rep *diag.Report) error {
	if rep.OK {
		return nil
	}
	return diagnoseExitError{code: exitCodeCheckFail, msg: "check failures"}
}
