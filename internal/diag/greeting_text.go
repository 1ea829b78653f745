package diag

import (
	"context"
	"strings"

	"github.com/flarebyte/hello-world-cli/internal/greeting"
)

const greetingTextCheck = "greeting-text"

// greeting-text verifies the captured output byte for byte and fills the
// greeting section of the report.
func greetingTextRunner(_ context.Context, rep *Report, _ Deps) CheckResult {
	out, err := captureGreeting()
	if err != nil {
		return failf(greetingTextCheck, "entry point failed: %v", err)
	}
	if string(out) != greeting.Message+"\n" {
		return failf(greetingTextCheck, "unexpected output: %q", string(out))
	}

	text := strings.TrimSpace(string(out))
	switch {
	case len(text) != 11:
		return failf(greetingTextCheck, "trimmed length %d, want 11", len(text))
	case text != strings.ToLower(text):
		return failf(greetingTextCheck, "output not lowercase: %q", text)
	case strings.Count(text, " ") != 1:
		return failf(greetingTextCheck, "expected one space: %q", text)
	case strings.TrimLeft(string(out), " \t") != string(out):
		return failf(greetingTextCheck, "leading whitespace: %q", string(out))
	}
	for _, r := range text {
		if !strings.ContainsRune("helo wrd", r) {
			return failf(greetingTextCheck, "unexpected character %q", r)
		}
	}

	rep.Greeting = &GreetingSection{
		Text:    text,
		Bytes:   len(out),
		Newline: strings.HasSuffix(string(out), "\n"),
	}
	return resultOK(greetingTextCheck, "11 chars, single trailing newline")
}

func init() {
	Register(greetingTextCheck, greetingTextRunner)
}
