package contract

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// Schema is the CUE contract every diagnose report must satisfy.
const Schema = `
#Check: {
	name:    string & !=""
	ok:      bool
	detail?: string
	error?:  string
}

contractVersion: "1"
ok:              bool
checks: [...#Check]

greeting?: {
	text:    "hello world"
	bytes:   12
	newline: true
}

stream?: {
	stdoutTerminal: bool
}

build?: {
	version: string & !=""
	commit?: string
	digest?: string
}
`

// Validate checks the JSON-encoded report against the schema and returns the
// first violation. JSON is valid CUE, so the report compiles directly.
func Validate(data []byte) error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(Schema)
	if err := schema.Err(); err != nil {
		return fmt.Errorf("report contract violation: %v", err)
	}
	report := ctx.CompileBytes(data)
	if err := report.Err(); err != nil {
		return fmt.Errorf("report contract violation: %v", err)
	}

	unified := schema.Unify(report)
	if err := unified.Validate(cue.Final(), cue.Concrete(true)); err != nil {
		return fmt.Errorf("report contract violation: %v", err)
	}
	return nil
}
