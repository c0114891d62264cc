package collider

import (
	"github.com/causalkit/pcalg/graphrepr"
	"github.com/causalkit/pcalg/sepset"
)

// Orient mutates skeleton in place, turning it into a PDAG: for every
// unshielded triple (a,b,c), if no recorded separator of (a,c) contains b,
// both edges are oriented into b. Because unshielded_triples can yield both
// (a,b,c) and (c,b,a), the same two writes happen regardless of which
// ordering is visited first - OrientInto is idempotent on an
// already-oriented edge.
func Orient(skeleton *graphrepr.Matrix, sep *sepset.Store) error {
	for _, tri := range skeleton.UnshieldedTriples() {
		inSepSet, err := sep.ContainsVertex(tri.A, tri.C, tri.B)
		if err != nil {
			return colliderErrorf("Orient", err)
		}
		if inSepSet {
			continue
		}

		if err := skeleton.OrientInto(tri.B, tri.A); err != nil {
			return colliderErrorf("Orient", err)
		}
		if err := skeleton.OrientInto(tri.B, tri.C); err != nil {
			return colliderErrorf("Orient", err)
		}
	}

	return nil
}
