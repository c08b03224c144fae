package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveRepoOp(t *testing.T) {
	before := testutil.ToFloat64(RepoOps.WithLabelValues("GetStudent", "not_found"))
	ObserveRepoOp("GetStudent", "not_found", 3*time.Millisecond)
	after := testutil.ToFloat64(RepoOps.WithLabelValues("GetStudent", "not_found"))
	if after-before != 1 {
		t.Fatalf("counter moved by %v", after-before)
	}
}
