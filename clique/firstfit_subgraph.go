package clique

import "github.com/gopherclique/kpclique/internal/bitset"

// firstFitGraph is one depth's induced-subgraph state for the first-fit
// strategy. Unlike weightedGraph it keeps no per-vertex candidate list or
// weight: it only needs to know, per part, how many active vertices remain,
// and which part to branch on next.
type firstFitGraph struct {
	activeVertices *bitset.Set
	partSizes      []int

	// selectedPart is the part select will branch on next. -1 means "not
	// yet determined"; -2 means "this subgraph cannot extend to a
	// k-clique" (some part is empty).
	selectedPart int
}

func newFirstFitGraph(n int, parts []int, k int, fill bool) firstFitGraph {
	g := firstFitGraph{
		activeVertices: bitset.New(n, fill),
		partSizes:      make([]int, k),
		selectedPart:   -1,
	}
	for i := 0; i < k; i++ {
		g.partSizes[i] = parts[i+1] - parts[i]
	}
	return g
}

func (g *firstFitGraph) isValid() bool {
	return g.selectedPart >= 0
}

func (g *firstFitGraph) first(part int, parts []int) int {
	v := g.activeVertices.First(parts[part])
	if v < parts[part+1] {
		return v
	}
	return -1
}

func (g *firstFitGraph) popVertex(part, vertex int) {
	g.activeVertices.Unset(vertex)
	g.partSizes[part]--
}

// setPartSizes recounts every part whose size is not already known to be 1,
// choosing selectedPart to be a part with a unique remaining vertex if one
// exists, otherwise the smallest part scanned so far. It returns false as
// soon as some part is found empty (the subgraph is dead); the scan returns
// early the moment a uniquely-determined part is found, leaving any
// later parts unscanned until the next call.
func (g *firstFitGraph) setPartSizes(e *FindCliqueEngine) bool {
	minSoFar := e.nVertices
	g.selectedPart = -1
	for i := 0; i < e.k; i++ {
		if g.partSizes[i] != 1 {
			j := g.activeVertices.Count(e.parts[i], e.parts[i+1])
			g.partSizes[i] = j
			switch {
			case j == 0:
				g.selectedPart = -2
				return false
			case j == 1:
				g.selectedPart = i
				return true
			case j < minSoFar:
				minSoFar = j
				g.selectedPart = i
			}
		}
	}
	return true
}

// selectVertex picks the first active vertex of g.selectedPart, selects it,
// and derives the next depth's induced subgraph from it. Returns false if
// there is no vertex left to select.
func (e *FindCliqueEngine) selectVertex() bool {
	cur := &e.graphs[e.currentDepth]
	next := &e.graphs[e.currentDepth+1]

	if e.assertions {
		e.assertState(cur)
	}

	if cur.partSizes[cur.selectedPart] == 0 {
		return false
	}

	copy(next.partSizes, cur.partSizes)
	next.partSizes[cur.selectedPart] = 1

	v := cur.first(cur.selectedPart, e.parts)
	if v == -1 {
		return false
	}
	next.activeVertices.IntersectionAssign(e.templates[v].adj, cur.activeVertices)

	cur.popVertex(cur.selectedPart, v)
	e.kClique[cur.selectedPart] = v

	e.currentDepth++

	return next.setPartSizes(e)
}
