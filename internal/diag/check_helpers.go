package diag

import (
	"bytes"
	"fmt"

	"github.com/flarebyte/hello-world-cli/internal/greeting"
)

// captureGreeting runs the entry point against a private sink.
func captureGreeting() ([]byte, error) {
	var buf bytes.Buffer
	if err := greeting.Fprint(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// countingWriter records Write calls for the single-write check.
type countingWriter struct {
	writes int
	buf    bytes.Buffer
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.writes++
	return w.buf.Write(p)
}

func failf(name, format string, args ...any) CheckResult {
	return resultFail(name, fmt.Sprintf(format, args...))
}
