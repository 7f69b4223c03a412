// Package graph builds the undirected topology of a part schema and
// answers the structural questions the estimator needs: the cycle basis
// (each independent closed profile) and shortest paths between vertices.
package graph

import (
	"sort"

	"github.com/beamcost/beamcost/internal/model"
)

// Graph is an undirected simple graph over vertex ids. It is built once
// from a schema and read-only afterwards. Neighbor lists are kept sorted
// so traversals are deterministic for a given input.
type Graph struct {
	adj map[int][]int
}

// FromSchema builds the graph of a schema: one node per vertex, one edge
// per schema edge regardless of its type. Parallel edges collapse into
// one and self-loops are ignored; topologically an arc and a segment are
// both just a connection between two nodes.
func FromSchema(s *model.Schema) *Graph {
	g := &Graph{adj: make(map[int][]int, len(s.Vertices))}
	for id := range s.Vertices {
		g.adj[id] = nil
	}
	for _, e := range s.Edges {
		g.addEdge(e.Vertices[0], e.Vertices[1])
	}
	for id := range g.adj {
		sort.Ints(g.adj[id])
	}
	return g
}

func (g *Graph) addEdge(u, v int) {
	if u == v {
		return
	}
	if _, ok := g.adj[u]; !ok {
		g.adj[u] = nil
	}
	if _, ok := g.adj[v]; !ok {
		g.adj[v] = nil
	}
	if !contains(g.adj[u], v) {
		g.adj[u] = append(g.adj[u], v)
		g.adj[v] = append(g.adj[v], u)
	}
}

func contains(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

// Nodes returns all vertex ids in ascending order.
func (g *Graph) Nodes() []int {
	ids := make([]int, 0, len(g.adj))
	for id := range g.adj {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Neighbors returns the sorted neighbor list of a vertex.
func (g *Graph) Neighbors(id int) []int {
	return g.adj[id]
}

// HasNode reports whether the vertex exists in the graph.
func (g *Graph) HasNode(id int) bool {
	_, ok := g.adj[id]
	return ok
}

// ShortestPath returns a minimum-hop path between two vertices as a
// vertex id sequence including both endpoints, or nil when the vertices
// are not connected. Ties are broken by ascending neighbor order, so the
// result is stable for a given graph.
func (g *Graph) ShortestPath(from, to int) []int {
	if !g.HasNode(from) || !g.HasNode(to) {
		return nil
	}
	if from == to {
		return []int{from}
	}
	prev := map[int]int{from: from}
	queue := []int{from}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range g.adj[u] {
			if _, seen := prev[v]; seen {
				continue
			}
			prev[v] = u
			if v == to {
				return assemblePath(prev, from, to)
			}
			queue = append(queue, v)
		}
	}
	return nil
}

func assemblePath(prev map[int]int, from, to int) []int {
	var rev []int
	for v := to; v != from; v = prev[v] {
		rev = append(rev, v)
	}
	rev = append(rev, from)
	path := make([]int, len(rev))
	for i, v := range rev {
		path[len(rev)-1-i] = v
	}
	return path
}
