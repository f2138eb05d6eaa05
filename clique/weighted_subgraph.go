package clique

import (
	"sort"

	"github.com/gopherclique/kpclique/internal/bitset"
)

// weightedVertex is a candidate vertex inside one depth's induced subgraph,
// carrying a recomputable obstruction weight.
type weightedVertex struct {
	index  int
	part   int
	adj    *bitset.Set
	weight int
}

// weightedGraph is one depth's induced-subgraph state for the weighted
// strategy: which vertices remain active, how large each part currently is,
// and the ordered candidate list.
type weightedGraph struct {
	activeVertices *bitset.Set
	partSizes      []int
	vertices       []weightedVertex
}

func newWeightedGraph(n int, parts []int, k int, fill bool) weightedGraph {
	g := weightedGraph{
		activeVertices: bitset.New(n, fill),
		partSizes:      make([]int, k),
	}
	for i := 0; i < k; i++ {
		g.partSizes[i] = parts[i+1] - parts[i]
	}
	return g
}

func (g *weightedGraph) isValid() bool {
	for _, sz := range g.partSizes {
		if sz == 0 {
			return false
		}
	}
	return true
}

// popLastVertex removes the current last candidate from the graph: it is no
// longer a choice, whether because it was just selected (by the caller) or
// because setWeight determined it can no longer extend to a k-clique.
func (g *weightedGraph) popLastVertex() {
	v := g.vertices[len(g.vertices)-1]
	g.partSizes[v.part]--
	g.activeVertices.Unset(v.index)
	g.vertices = g.vertices[:len(g.vertices)-1]
}

// lastVertex returns the last candidate that is still a valid choice,
// popping any trailing zero-weight vertices first. Returns nil if none
// remain.
func (g *weightedGraph) lastVertex() *weightedVertex {
	if len(g.vertices) == 0 {
		return nil
	}
	v := &g.vertices[len(g.vertices)-1]
	for v.weight == 0 {
		g.popLastVertex()
		if len(g.vertices) == 0 {
			return nil
		}
		v = &g.vertices[len(g.vertices)-1]
	}
	return v
}

// sortWeighted orders candidates by descending weight, so the vertex with
// the lowest weight (highest obstruction, most worth trying first) ends up
// last and is popped first by lastVertex/select.
func sortWeighted(vertices []weightedVertex) {
	sort.Slice(vertices, func(i, j int) bool {
		return vertices[i].weight > vertices[j].weight
	})
}

// setWeight recomputes v's weight against active, the induced subgraph it
// currently belongs to. It returns true exactly when v is newly discovered
// to be dead (its weight drops to 0 for the first time), which signals the
// caller that another propagation pass may uncover further knowledge.
func setWeight(v *weightedVertex, active *bitset.Set, currentDepth, precDepth, k int, parts []int) bool {
	if !active.Has(v.index) {
		v.weight = 0
		return false
	}
	if currentDepth > precDepth {
		v.weight = 1
		return false
	}
	counter := 0
	for i := 0; i < k; i++ {
		tmp := v.adj.IntersectionCount(active, parts[i], parts[i+1])
		counter += tmp
		if tmp == 0 {
			v.weight = 0
			active.Unset(v.index)
			return true
		}
	}
	v.weight = counter
	return false
}

// setWeights recomputes the weight of every candidate in g and reports
// whether any vertex was newly found dead.
func (e *Engine) setWeights(g *weightedGraph) bool {
	newKnowledge := false
	for i := range g.vertices {
		if setWeight(&g.vertices[i], g.activeVertices, e.currentDepth, e.precDepth, e.k, e.parts) {
			newKnowledge = true
		}
	}
	return newKnowledge
}

// selectVertex selects the current depth's last (valid) candidate and sets
// up the next depth's induced subgraph as everything still reachable from
// it. Returns false when there is no candidate left to select.
func (e *Engine) selectVertex() bool {
	cur := &e.graphs[e.currentDepth]
	next := &e.graphs[e.currentDepth+1]

	if e.assertions {
		e.assertState(cur)
	}

	v := cur.lastVertex()
	if v == nil {
		return false
	}

	copy(next.partSizes, cur.partSizes)
	e.kClique[v.part] = v.index
	next.activeVertices.IntersectionAssign(v.adj, cur.activeVertices)
	part := v.part

	// v is removed from cur (no longer a choice there) before cur's
	// candidates are copied, so next's candidate list does not contain it
	// either (it is already selected there, not a choice).
	cur.popLastVertex()
	next.vertices = append(next.vertices[:0], cur.vertices...)

	if cur.partSizes[part] == 1 {
		e.setWeights(cur)
		sortWeighted(cur.vertices)
	}
	if cur.partSizes[part] == 0 {
		cur.vertices = cur.vertices[:0]
	}

	e.currentDepth++

	e.setWeights(next)
	if e.currentDepth < e.precDepth {
		if e.setWeights(next) {
			e.setWeights(next)
		}
	}

	sortWeighted(next.vertices)
	return true
}
