// Package actions implements the small part of the GitHub Actions runner
// protocol the CLI needs: failure annotations and step outputs.
package actions

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Enabled reports whether the process runs inside a GitHub Actions job.
func Enabled() bool {
	return os.Getenv("GITHUB_ACTIONS") == "true"
}

// SetFailed writes an ::error:: workflow command so the runner marks the step
// as failed with msg as the reason. The caller still has to exit non-zero.
func SetFailed(w io.Writer, msg string) {
	fmt.Fprintf(w, "::error::%s\n", escapeData(msg))
}

// SetOutputs appends key=value lines to the file named by GITHUB_OUTPUT.
// It is a no-op outside of Actions or when values is empty.
func SetOutputs(values map[string]string) error {
	path := strings.TrimSpace(os.Getenv("GITHUB_OUTPUT"))
	if path == "" || len(values) == 0 {
		return nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return errors.Wrap(err, "opening GITHUB_OUTPUT")
	}
	defer func() { _ = f.Close() }()

	keys := make([]string, 0, len(values))
	for k := range values {
		if strings.TrimSpace(k) == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if _, err := fmt.Fprintf(f, "%s=%s\n", key, escapeData(values[key])); err != nil {
			return errors.Wrapf(err, "writing output %s", key)
		}
	}
	return nil
}

// escapeData applies the runner's escaping for command data.
func escapeData(s string) string {
	s = strings.ReplaceAll(s, "%", "%25")
	s = strings.ReplaceAll(s, "\r", "%0D")
	s = strings.ReplaceAll(s, "\n", "%0A")
	return s
}
