package pcdriver

import (
	"github.com/causalkit/pcalg/citest"
	"github.com/causalkit/pcalg/internal/metrics"
)

// instrumentedContract wraps a citest.Contract, counting invocations by kind
// against a metrics.Recorder. Used internally so skeleton never has to know
// metrics exist.
type instrumentedContract struct {
	inner    citest.Contract
	recorder *metrics.Recorder
}

func (c instrumentedContract) Indep(x, y int, level float64) (bool, error) {
	c.recorder.CITestsTotal.WithLabelValues("indep").Inc()

	return c.inner.Indep(x, y, level)
}

func (c instrumentedContract) CondIndep(x, y int, z []int, level float64) (bool, error) {
	c.recorder.CITestsTotal.WithLabelValues("cond_indep").Inc()

	return c.inner.CondIndep(x, y, z, level)
}
