package pipeline_test

import (
	"testing"

	"go.uber.org/goleak"
)

// TestMain ensures no worker goroutine from Run's READ/PARSE/COLLECT/INDEX
// stages survives past the test that started it.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		goleak.IgnoreTopFunction("internal/poll.runtime_pollWait"),
		goleak.IgnoreTopFunction("sync.runtime_Semacquire"),
	)
}
