package meek

import (
	"github.com/causalkit/pcalg/graphrepr"
	"github.com/go-logr/logr"
)

// safeOrientInto orients the undirected edge b-other into other->b (removing
// M[b][other]), unless doing so would create a bidirected edge, in which
// case it logs and skips the write.
func safeOrientInto(pdag *graphrepr.Matrix, log logr.Logger, rule string, b, other int) error {
	conflict, err := pdag.WouldCreateBidirected(other, b)
	if err != nil {
		return err
	}
	if conflict {
		log.Info("skipped bidirected-conflict orientation", "rule", rule, "into", b, "from", other)
		return nil
	}

	log.V(1).Info("orienting edge", "rule", rule, "from", other, "into", b)

	return pdag.OrientInto(b, other)
}

func toSet(elems []int) map[int]struct{} {
	s := make(map[int]struct{}, len(elems))
	for _, e := range elems {
		s[e] = struct{}{}
	}

	return s
}

func contains(set map[int]struct{}, v int) bool {
	_, ok := set[v]

	return ok
}

// applyR1 orients b-c into b->c whenever a->b exists and a,c are
// nonadjacent: orient away from the collider at b.
func applyR1(pdag *graphrepr.Matrix, log logr.Logger) error {
	for _, pair := range pdag.UndirectedNonAdjacentPairs() {
		a, c := pair.I, pair.J
		childrenA, err := pdag.Children(a)
		if err != nil {
			return err
		}
		neighboursC, err := pdag.UndirectedNeighbours(c)
		if err != nil {
			return err
		}
		neighbourSet := toSet(neighboursC)
		for _, b := range childrenA {
			if !contains(neighbourSet, b) {
				continue
			}
			if err := safeOrientInto(pdag, log, "R1", c, b); err != nil {
				return err
			}
		}
	}

	return nil
}

// applyR2 orients a-b into a->b whenever a chain a->c->b exists: leaving it
// undirected would let R1 later force a cycle through the chain.
func applyR2(pdag *graphrepr.Matrix, log logr.Logger) error {
	for _, pair := range pdag.UndirectedAdjacentPairs() {
		a, b := pair.I, pair.J
		childrenA, err := pdag.Children(a)
		if err != nil {
			return err
		}
		parentsB, err := pdag.Parents(b)
		if err != nil {
			return err
		}
		parentSet := toSet(parentsB)
		hasChain := false
		for _, c := range childrenA {
			if contains(parentSet, c) {
				hasChain = true
				break
			}
		}
		if hasChain {
			if err := safeOrientInto(pdag, log, "R2", b, a); err != nil {
				return err
			}
		}
	}

	return nil
}

// applyR3 orients a-b into a->b whenever two distinct nonadjacent undirected
// neighbours c,d of a (both != b) are both parents of b.
func applyR3(pdag *graphrepr.Matrix, log logr.Logger) error {
	for _, pair := range pdag.UndirectedAdjacentPairs() {
		a, b := pair.I, pair.J
		neighboursA, err := pdag.UndirectedNeighbours(a)
		if err != nil {
			return err
		}
		candidates := excludingValue(neighboursA, b)
		if len(candidates) < 2 {
			continue
		}
		parentsB, err := pdag.Parents(b)
		if err != nil {
			return err
		}
		parentSet := toSet(parentsB)

		found := false
		for i := 0; i < len(candidates) && !found; i++ {
			for j := i + 1; j < len(candidates) && !found; j++ {
				c, d := candidates[i], candidates[j]
				adjacent, err := pdag.IsAdjacent(c, d)
				if err != nil {
					return err
				}
				if adjacent {
					continue
				}
				if contains(parentSet, c) && contains(parentSet, d) {
					found = true
				}
			}
		}
		if found {
			if err := safeOrientInto(pdag, log, "R3", b, a); err != nil {
				return err
			}
		}
	}

	return nil
}

// applyR4 orients a-b into a->b whenever a—d->b and d has a parent c that is
// an undirected neighbour of a and nonadjacent to b. Optional; never
// required for PC correctness.
func applyR4(pdag *graphrepr.Matrix, log logr.Logger) error {
	for _, pair := range pdag.UndirectedAdjacentPairs() {
		a, b := pair.I, pair.J
		neighboursA, err := pdag.UndirectedNeighbours(a)
		if err != nil {
			return err
		}
		neighbourSet := toSet(neighboursA)
		parentsB, err := pdag.Parents(b)
		if err != nil {
			return err
		}

		found := false
		for _, d := range parentsB {
			if found {
				break
			}
			if !contains(neighbourSet, d) {
				continue
			}
			parentsD, err := pdag.Parents(d)
			if err != nil {
				return err
			}
			for _, c := range parentsD {
				if !contains(neighbourSet, c) {
					continue
				}
				adjacent, err := pdag.IsAdjacent(c, b)
				if err != nil {
					return err
				}
				if !adjacent {
					found = true
					break
				}
			}
		}
		if found {
			if err := safeOrientInto(pdag, log, "R4", b, a); err != nil {
				return err
			}
		}
	}

	return nil
}

func excludingValue(elems []int, value int) []int {
	out := make([]int, 0, len(elems))
	for _, e := range elems {
		if e != value {
			out = append(out, e)
		}
	}

	return out
}
