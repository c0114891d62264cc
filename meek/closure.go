package meek

import "github.com/causalkit/pcalg/graphrepr"

// Close mutates pdag in place, repeatedly applying R1, R2, R3 (and R4 if
// WithR4 is set) in that order until a full pass leaves the matrix unchanged
// (a fixed point). Termination is guaranteed: every rule strictly removes
// undirected edges and never adds any.
func Close(pdag *graphrepr.Matrix, opts ...Option) error {
	o := resolveOptions(opts...)

	for {
		before := pdag.Clone()

		if err := applyR1(pdag, o.logger); err != nil {
			return meekErrorf("Close", err)
		}
		if err := applyR2(pdag, o.logger); err != nil {
			return meekErrorf("Close", err)
		}
		if err := applyR3(pdag, o.logger); err != nil {
			return meekErrorf("Close", err)
		}
		if o.enableR4 {
			if err := applyR4(pdag, o.logger); err != nil {
				return meekErrorf("Close", err)
			}
		}

		if pdag.Equal(before) {
			return nil
		}
	}
}
