package graph

// CycleBasis returns a minimal set of independent simple cycles whose
// symmetric differences generate every cycle of the graph (Paton's
// spanning-tree algorithm). Each cycle is an ordered vertex id sequence
// without a repeated closing vertex. Cycle order is not semantically
// significant but is stable for a given graph: components are explored
// from their smallest vertex and neighbors in ascending order.
func (g *Graph) CycleBasis() [][]int {
	var cycles [][]int

	remaining := make(map[int]bool, len(g.adj))
	for id := range g.adj {
		remaining[id] = true
	}

	for _, root := range g.Nodes() {
		if !remaining[root] {
			continue
		}
		// Grow a spanning tree of this component, emitting one
		// fundamental cycle per non-tree edge encountered.
		pred := map[int]int{root: root}
		used := map[int]map[int]bool{root: {}}
		stack := []int{root}
		for len(stack) > 0 {
			z := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			zused := used[z]
			for _, nbr := range g.adj[z] {
				if _, seen := used[nbr]; !seen {
					pred[nbr] = z
					used[nbr] = map[int]bool{z: true}
					stack = append(stack, nbr)
				} else if !zused[nbr] {
					// Non-tree edge: walk tree ancestors of z until
					// one that already saw nbr, closing the cycle.
					pn := used[nbr]
					cycle := []int{nbr, z}
					p := pred[z]
					for !pn[p] {
						cycle = append(cycle, p)
						p = pred[p]
					}
					cycle = append(cycle, p)
					cycles = append(cycles, cycle)
					used[nbr][z] = true
				}
			}
		}
		for id := range pred {
			delete(remaining, id)
		}
	}

	return cycles
}
