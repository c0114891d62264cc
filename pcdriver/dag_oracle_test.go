package pcdriver_test

// dagOracle answers CI queries by computing true d-separation against a
// known DAG (given as child -> parents), rather than a hand-enumerated
// lookup table. Grounded on the standard moralized-ancestral-graph
// characterization of d-separation (Lauritzen et al., 1990); used here
// because original_source/PyPCAlg's oracle format is a flat per-query table
// that is impractical to hand-enumerate exhaustively for 5-vertex DAGs with
// many possible conditioning subsets - see DESIGN.md.
type dagOracle struct {
	n       int
	parents map[int][]int
}

func (d dagOracle) Indep(x, y int, level float64) (bool, error) {
	return d.CondIndep(x, y, nil, level)
}

func (d dagOracle) CondIndep(x, y int, z []int, level float64) (bool, error) {
	return d.dSeparated(x, y, z), nil
}

func (d dagOracle) dSeparated(x, y int, z []int) bool {
	inZ := make(map[int]bool, len(z))
	for _, v := range z {
		inZ[v] = true
	}

	ancestral := d.ancestralSet(x, y, z)
	moral := d.moralize(ancestral)

	// BFS from x, avoiding Z, restricted to the moral graph; if y is
	// reached, x and y are NOT separated (dependent).
	visited := map[int]bool{x: true}
	queue := []int{x}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == y {
			return false
		}
		for _, next := range moral[cur] {
			if visited[next] || inZ[next] {
				continue
			}
			visited[next] = true
			queue = append(queue, next)
		}
	}

	return !visited[y]
}

// ancestralSet returns every ancestor (inclusive) of x, y, and z.
func (d dagOracle) ancestralSet(x, y int, z []int) map[int]bool {
	set := map[int]bool{x: true, y: true}
	for _, v := range z {
		set[v] = true
	}

	queue := []int{x, y}
	queue = append(queue, z...)
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, p := range d.parents[cur] {
			if !set[p] {
				set[p] = true
				queue = append(queue, p)
			}
		}
	}

	return set
}

// moralize builds the undirected moral graph restricted to members: directed
// edges become undirected, and co-parents of any member get married.
func (d dagOracle) moralize(members map[int]bool) map[int][]int {
	adj := make(map[int][]int)
	add := func(a, b int) {
		adj[a] = append(adj[a], b)
		adj[b] = append(adj[b], a)
	}

	for child := range members {
		ps := d.parents[child]
		for _, p := range ps {
			if members[p] {
				add(child, p)
			}
		}
		for i := 0; i < len(ps); i++ {
			for j := i + 1; j < len(ps); j++ {
				if members[ps[i]] && members[ps[j]] {
					add(ps[i], ps[j])
				}
			}
		}
	}

	return adj
}
