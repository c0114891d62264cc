package pcdriver

import (
	"strconv"

	"github.com/causalkit/pcalg/citest"
	"github.com/causalkit/pcalg/collider"
	"github.com/causalkit/pcalg/graphrepr"
	"github.com/causalkit/pcalg/meek"
	"github.com/causalkit/pcalg/sepset"
	"github.com/causalkit/pcalg/skeleton"
)

// Result packages the output of a PC run: the CPDAG and the separating sets
// discovered while building it.
type Result struct {
	CPDAG   *graphrepr.Matrix
	SepSets *sepset.Store
}

// Run sequences the adjacency search, collider orientation, and Meek
// closure over n variables and the given CI contract at the given
// significance level, returning the completed result. Any CI-predicate
// failure propagates upward unchanged; the partial state at that point is
// discarded.
func Run(n int, test citest.Contract, level float64, opts ...Option) (Result, error) {
	o := resolveOptions(opts...)

	contract := test
	if o.recorder != nil {
		contract = instrumentedContract{inner: test, recorder: o.recorder}
	}

	skeletonOpts := []skeleton.Option{skeleton.WithLogger(o.logger)}
	if o.maxDepth > 0 {
		skeletonOpts = append(skeletonOpts, skeleton.WithMaxDepth(o.maxDepth))
	}
	if o.recorder != nil {
		skeletonOpts = append(skeletonOpts, skeleton.WithDepthObserver(func(depth, removed int) {
			o.recorder.EdgesRemoved.WithLabelValues(strconv.Itoa(depth)).Observe(float64(removed))
		}))
	}

	var pdag *graphrepr.Matrix
	var sep *sepset.Store

	runPhase := func(phase string, fn func() error) error {
		if o.recorder != nil {
			return o.recorder.ObservePhase(phase, fn)
		}
		return fn()
	}

	if err := runPhase("skeleton", func() error {
		var err error
		pdag, sep, err = skeleton.Run(n, contract, level, skeletonOpts...)
		return err
	}); err != nil {
		return Result{}, pcdriverErrorf("Run", err)
	}

	if err := runPhase("collider", func() error {
		return collider.Orient(pdag, sep)
	}); err != nil {
		return Result{}, pcdriverErrorf("Run", err)
	}

	meekOpts := []meek.Option{meek.WithLogger(o.logger)}
	if o.enableR4 {
		meekOpts = append(meekOpts, meek.WithR4())
	}
	if err := runPhase("meek", func() error {
		return meek.Close(pdag, meekOpts...)
	}); err != nil {
		return Result{}, pcdriverErrorf("Run", err)
	}

	return Result{CPDAG: pdag, SepSets: sep}, nil
}
