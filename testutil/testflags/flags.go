package testflags

import (
	"os"
	"testing"
)

// LongTest skips t unless long-running tests are enabled.
func LongTest(t *testing.T) {
	_, ok := os.LookupEnv("UINTVAR_ENABLE_LONG_TESTS")
	if !ok {
		t.SkipNow()
	}
	t.Parallel()
}
