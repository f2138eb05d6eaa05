package clique

import "context"

// FindCliqueEngine enumerates k-cliques using the first-fit strategy: at
// each depth it branches on the currently smallest candidate part and picks
// its first remaining vertex, with no per-vertex weight bookkeeping. It
// tends to do less work per node than Engine but prune less aggressively.
//
// The zero value is not ready for use; call Init, or construct with
// NewFindClique.
type FindCliqueEngine struct {
	initialized   bool
	k             int
	nVertices     int
	parts         []int
	precDepth     int
	assertions    bool
	currentDepth  int
	templates     []vertexTemplate
	graphs        []firstFitGraph
	kClique       []int
	nTrivialParts int
}

// NewFindClique builds and initializes a FindCliqueEngine in one call. See
// NewKPartiteKClique for the shape of incidences and firstPerPart.
func NewFindClique(incidences [][]bool, firstPerPart []int, opts ...Option) (*FindCliqueEngine, error) {
	e := &FindCliqueEngine{}
	if err := e.Init(incidences, firstPerPart, opts...); err != nil {
		return nil, err
	}
	return e, nil
}

// Init prepares e for enumeration. It returns ErrAlreadyInitialized if
// called more than once on the same FindCliqueEngine.
func (e *FindCliqueEngine) Init(incidences [][]bool, firstPerPart []int, opts ...Option) error {
	if e.initialized {
		return ErrAlreadyInitialized
	}

	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	k := len(firstPerPart)
	if k <= 0 {
		return ErrNonPositiveK
	}
	n := len(incidences)
	parts := make([]int, k+1)
	copy(parts, firstPerPart)
	parts[k] = n
	for i := 0; i < k; i++ {
		if parts[i+1]-parts[i] == 0 {
			return ErrEmptyPart
		}
	}

	// Unlike Engine, this strategy never wraps a vertexTemplate in a
	// weighted candidate record, so it never exercises the k-partiteness
	// check that wrapping performs; a non-k-partite input is simply not
	// detected here.
	templates := buildVertexTemplates(incidences, n, parts, k)

	e.k = k
	e.nVertices = n
	e.parts = parts
	e.precDepth = cfg.precDepth
	e.assertions = cfg.assertions
	e.templates = templates
	e.kClique = make([]int, k)
	e.graphs = make([]firstFitGraph, k)
	for i := range e.graphs {
		e.graphs[i] = newFirstFitGraph(n, parts, k, i == 0)
	}
	e.currentDepth = 0

	root := &e.graphs[0]
	e.nTrivialParts = 0
	for i := 0; i < k; i++ {
		if parts[i+1]-parts[i] == 1 {
			root.activeVertices.IntersectionAssign(templates[parts[i]].adj, root.activeVertices)
			e.nTrivialParts++
			e.kClique[i] = parts[i]

			// The lone vertex of a size-1 part was selected unconditionally
			// above; it may already have been ruled out by an earlier
			// trivial part it isn't connected to.
			if !root.activeVertices.Has(parts[i]) {
				root.selectedPart = -2
				e.nTrivialParts = k
				e.initialized = true
				return nil
			}
		}
	}

	if !root.setPartSizes(e) {
		e.nTrivialParts = k
		root.selectedPart = -2
	}

	e.initialized = true
	return nil
}

func (e *FindCliqueEngine) backtrack() bool {
	for e.currentDepth >= 1 {
		e.currentDepth--
		if e.graphs[e.currentDepth].isValid() {
			return true
		}
	}
	return false
}

// Next advances to the next k-clique. See Engine.Next for the return-value
// contract.
func (e *FindCliqueEngine) Next(ctx context.Context) (bool, error) {
	if !e.initialized {
		return false, ErrNotInitialized
	}

	// If every part was trivial (size 1), there is exactly one candidate
	// k-clique, fixed entirely during Init; emit it once.
	if e.nTrivialParts == e.k {
		root := &e.graphs[0]
		if root.selectedPart == -2 {
			return false, nil
		}
		root.selectedPart = -2
		return true, nil
	}

	for {
		bound := e.k - 1 - e.nTrivialParts
		cur := &e.graphs[e.currentDepth]

		failed := cur.selectedPart == -2
		if !failed && e.currentDepth < bound {
			if err := checkCancelled(ctx); err != nil {
				return false, err
			}
			if !e.selectVertex() {
				failed = true
			}
		}

		if failed {
			if !e.backtrack() {
				return false, nil
			}
			if err := checkCancelled(ctx); err != nil {
				return false, err
			}
			continue
		}

		if e.currentDepth == bound {
			g := &e.graphs[e.currentDepth]
			sp := g.selectedPart
			if g.partSizes[sp] != 0 {
				v := g.first(sp, e.parts)
				if v != -1 {
					e.kClique[sp] = v
					g.popVertex(sp, v)
					return true, nil
				}
			}
			if !e.backtrack() {
				return false, nil
			}
		}
	}
}

// Clique returns the most recently found k-clique as one vertex index per
// part, in part order. Its contents are only meaningful after a call to
// Next returned true.
func (e *FindCliqueEngine) Clique() []int {
	out := make([]int, len(e.kClique))
	copy(out, e.kClique)
	return out
}
