package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertStepRendered checks the log output within a HarnessResult to confirm
// that a specific step was rendered.
func AssertStepRendered(t *testing.T, result *HarnessResult, rule string) {
	t.Helper()

	expectedLogSubstring := fmt.Sprintf("rule=%s", rule)

	require.True(t,
		strings.Contains(result.LogOutput, "Rendering step.") && strings.Contains(result.LogOutput, expectedLogSubstring),
		"expected log output for step '%s' was not found in logs", rule,
	)
}
