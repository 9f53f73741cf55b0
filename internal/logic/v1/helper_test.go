package v1_test

import (
	"testing"
	"time"

	"github.com/liveem/livem-core/internal/core"
)

// newCore builds a core over a fresh in-memory database. Each call
// replaces the previous provider, so tests in this package must not
// run in parallel.
func newCore() *core.Core {
	var cfg core.CoreConfig
	cfg.Sqlite.DSN = ":memory:"
	return core.MustSetupCore(cfg)
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(time.Second * 3)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond * 10)
	}
	t.Fatal("condition not met in time")
}
