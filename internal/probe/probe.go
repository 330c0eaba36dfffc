// Package probe answers "is a process with this exact name alive?" using
// pgrep. Matching is exact and case-sensitive: the name is anchored and
// regex metacharacters are escaped, so "Lark Helper (Iron)" never matches
// "Lark Helper (Iron) Renderer".
package probe

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"regexp"
)

type Pgrep struct{}

func New() *Pgrep {
	return &Pgrep{}
}

// CheckPgrep verifies that pgrep is available on PATH.
func (p *Pgrep) CheckPgrep() error {
	if _, err := exec.LookPath("pgrep"); err != nil {
		return fmt.Errorf("pgrep not found on PATH")
	}
	return nil
}

// IsRunning reports whether any process matches name exactly. A name with
// no match is (false, nil); only a failure to run pgrep itself is an error.
func (p *Pgrep) IsRunning(name string) (bool, error) {
	out, err := exec.Command("pgrep", exactPattern(name)).Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
			// pgrep exits 1 when no process matched
			return false, nil
		}
		return false, fmt.Errorf("pgrep %q: %w", name, err)
	}
	return len(bytes.TrimSpace(out)) > 0, nil
}

// exactPattern anchors the name so pgrep cannot match substrings.
func exactPattern(name string) string {
	return "^" + regexp.QuoteMeta(name) + "$"
}
