package testutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/specialistvlad/stepliteral/internal/hcl_adapter"
	"github.com/specialistvlad/stepliteral/internal/stepobject"
	"github.com/stretchr/testify/require"
)

// StepTestCase defines a single scenario for testing the parsing of a `step` block.
type StepTestCase struct {
	Name string
	// HCL should contain only the content *inside* the `step "test" { ... }` block.
	// It can be written as a readable, indented multi-line string.
	HCL string
	// Files are extra files written next to the step file, such as a configfile.
	Files map[string]string
	// ExpectErr should be true if a parsing error is expected.
	ExpectErr bool
	// ErrContains is a substring that must appear in the error message if ExpectErr is true.
	ErrContains string
	// Validate performs assertions on the parsed step object.
	// It is only called if ExpectErr is false.
	Validate func(t *testing.T, s *stepobject.Step)
}

// unindent removes common leading whitespace from a multi-line string,
// allowing for readable, indented HCL snippets in Go tests.
func unindent(s string) string {
	lines := strings.Split(s, "\n")
	if strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	if len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return ""
	}

	minIndent := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		indent := len(line) - len(strings.TrimLeft(line, " \t"))
		if minIndent == -1 || indent < minIndent {
			minIndent = indent
		}
	}
	if minIndent <= 0 {
		return strings.Join(lines, "\n")
	}

	for i, line := range lines {
		if len(line) >= minIndent {
			lines[i] = line[minIndent:]
		} else {
			lines[i] = strings.TrimSpace(line)
		}
	}
	return strings.Join(lines, "\n")
}

// RunStepParsingTests provides a reusable harness for testing the parsing of HCL `step` blocks.
// It iterates through a table of test cases, handling boilerplate and common assertions.
func RunStepParsingTests(t *testing.T, cases []StepTestCase) {
	t.Helper()

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			dir := t.TempDir()
			fullHCL := fmt.Sprintf("step \"test\" {\n%s\n}\n", unindent(tc.HCL))
			require.NoError(t, os.WriteFile(filepath.Join(dir, "main.hcl"), []byte(fullHCL), 0644))
			for name, content := range tc.Files {
				require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
			}

			model, _, err := hcl_adapter.NewLoader().Load(context.Background(), dir)

			if tc.ExpectErr {
				require.Error(t, err, "Expected a parsing error, but got none")
				if tc.ErrContains != "" {
					require.Contains(t, err.Error(), tc.ErrContains, "Error message did not contain the expected text")
				}
				return
			}

			require.NoError(t, err, "Expected successful parsing, but got an error")
			require.Len(t, model.Steps, 1, "Expected exactly one step to be parsed")

			if tc.Validate != nil {
				tc.Validate(t, model.Steps[0].Object)
			}
		})
	}
}
