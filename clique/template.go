package clique

import "github.com/gopherclique/kpclique/internal/bitset"

// vertexTemplate is the immutable per-vertex descriptor built once from the
// caller's incidence data: its adjacency bitset (with the vertex's own bit
// set, by convention, so that selecting it leaves exactly one active vertex
// in its own part), its part, and its original index.
type vertexTemplate struct {
	adj   *bitset.Set
	part  int
	index int
}

// buildVertexTemplates converts a dense incidence matrix into one
// vertexTemplate per vertex. parts has length k+1 with parts[0]=0 and
// parts[k]=n.
func buildVertexTemplates(incidences [][]bool, n int, parts []int, k int) []vertexTemplate {
	out := make([]vertexTemplate, n)
	currentPart := 0
	for i := 0; i < n; i++ {
		for currentPart < k-1 && i >= parts[currentPart+1] {
			currentPart++
		}
		adj := bitset.FromBools(incidences[i])
		adj.Set(i)
		out[i] = vertexTemplate{adj: adj, part: currentPart, index: i}
	}
	return out
}
