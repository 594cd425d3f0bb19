// internal/integration/cancel_integration_test.go
package integration

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"

	"jcdist/internal/app"
)

// A canceled context still lets the single estimate finish and flush,
// but the process must report 130 so shells see the interrupt.
func TestCtrlC_Exit130(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	code := app.RunContext(ctx, []string{"-a", seqA, "-b", seqB}, io.Discard, io.Discard)
	assert.Equal(t, 130, code)
}
