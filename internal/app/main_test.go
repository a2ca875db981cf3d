package app

import (
	"testing"

	"go.uber.org/goleak"
)

// Rendering fans out over an errgroup; every worker must be gone once Run
// returns.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
