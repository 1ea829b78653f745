package diag

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// EncodeJSON renders the report as JSON: one compact line by default, or
// two-space indented with a trailing newline when pretty is set.
func EncodeJSON(rep *Report, pretty bool) ([]byte, error) {
	if pretty {
		b, err := json.Marshal(rep)
		if err != nil {
			return nil, err
		}
		var out bytes.Buffer
		if err := json.Indent(&out, b, "", "  "); err != nil {
			return nil, err
		}
		out.WriteByte('\n')
		return out.Bytes(), nil
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(rep); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteTo writes data to path; "-" or empty means stdout. Parent directories
// are created as needed.
func WriteTo(path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("diagnose output: %v", err)
		}
	}
	return os.WriteFile(path, data, 0o644)
}
