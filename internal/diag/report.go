package diag

// CheckResult records one check's outcome.
type CheckResult struct {
	Name   string `json:"name"`
	OK     bool   `json:"ok"`
	Detail string `json:"detail,omitempty"`
	Error  string `json:"error,omitempty"`
}

// GreetingSection describes the captured greeting output.
type GreetingSection struct {
	Text    string `json:"text"`
	Bytes   int    `json:"bytes"`
	Newline bool   `json:"newline"`
}

// StreamSection describes the process output streams.
type StreamSection struct {
	StdoutTerminal bool `json:"stdoutTerminal"`
}

// BuildSection describes the running binary.
type BuildSection struct {
	Version string `json:"version"`
	Commit  string `json:"commit,omitempty"`
	Digest  string `json:"digest,omitempty"`
}

// Report is the diagnose output contract. Field order is stable to keep the
// JSON deterministic; sections stay nil until their check runs.
type Report struct {
	ContractVersion string           `json:"contractVersion"`
	OK              bool             `json:"ok"`
	Checks          []CheckResult    `json:"checks"`
	Greeting        *GreetingSection `json:"greeting,omitempty"`
	Stream          *StreamSection   `json:"stream,omitempty"`
	Build           *BuildSection    `json:"build,omitempty"`
}

func newReport() *Report {
	return &Report{ContractVersion: "1", OK: true, Checks: []CheckResult{}}
}

func (r *Report) append(res CheckResult) {
	r.Checks = append(r.Checks, res)
	r.OK = r.OK && res.OK
}

func (r *Report) build() *BuildSection {
	if r.Build == nil {
		r.Build = &BuildSection{}
	}
	return r.Build
}

func resultOK(name, detail string) CheckResult {
	return CheckResult{Name: name, OK: true, Detail: detail}
}

func resultFail(name, msg string) CheckResult {
	return CheckResult{Name: name, OK: false, Error: msg}
}
