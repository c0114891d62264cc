package skeleton

// subsetsOfSize enumerates every size-k subset of the sorted slice elems, in
// ascending lexicographic order of index choice. elems is assumed already
// sorted ascending; each returned subset preserves that order.
func subsetsOfSize(elems []int, k int) [][]int {
	n := len(elems)
	if k < 0 || k > n {
		return nil
	}
	if k == 0 {
		return [][]int{{}}
	}

	var out [][]int
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}

	for {
		subset := make([]int, k)
		for i, j := range idx {
			subset[i] = elems[j]
		}
		out = append(out, subset)

		// advance idx to the next combination, odometer-style from the right
		pos := k - 1
		for pos >= 0 && idx[pos] == n-k+pos {
			pos--
		}
		if pos < 0 {
			break
		}
		idx[pos]++
		for i := pos + 1; i < k; i++ {
			idx[i] = idx[i-1] + 1
		}
	}

	return out
}
