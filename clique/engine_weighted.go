package clique

import "context"

// Engine enumerates k-cliques using the weighted-obstruction strategy: at
// each depth it recomputes an obstruction weight for every remaining
// candidate and descends into the vertex least likely to still permit a
// k-clique, to prune the remaining search as early as possible.
//
// The zero value is not ready for use; call Init, or construct with
// NewKPartiteKClique.
type Engine struct {
	initialized  bool
	k            int
	nVertices    int
	parts        []int
	precDepth    int
	assertions   bool
	currentDepth int
	templates    []vertexTemplate
	graphs       []weightedGraph
	kClique      []int
}

// NewKPartiteKClique builds and initializes an Engine in one call.
// incidences[i][j] must be true iff i and j are adjacent (the diagonal is
// ignored; the engine sets it internally). firstPerPart[p] is the index of
// the first vertex of part p; parts are contiguous ranges over [0, n) and
// their union with firstPerPart implicitly ending at n must be non-empty.
func NewKPartiteKClique(incidences [][]bool, firstPerPart []int, opts ...Option) (*Engine, error) {
	e := &Engine{}
	if err := e.Init(incidences, firstPerPart, opts...); err != nil {
		return nil, err
	}
	return e, nil
}

// Init prepares e for enumeration. It returns ErrAlreadyInitialized if
// called more than once on the same Engine.
func (e *Engine) Init(incidences [][]bool, firstPerPart []int, opts ...Option) error {
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

	templates := buildVertexTemplates(incidences, n, parts, k)

	e.k = k
	e.nVertices = n
	e.parts = parts
	e.precDepth = cfg.precDepth
	e.assertions = cfg.assertions
	e.templates = templates
	e.kClique = make([]int, k)
	e.graphs = make([]weightedGraph, k)
	for i := range e.graphs {
		e.graphs[i] = newWeightedGraph(n, parts, k, i == 0)
	}

	root := &e.graphs[0]
	root.vertices = make([]weightedVertex, 0, n)
	for i := range templates {
		t := &templates[i]
		if t.adj.Count(parts[t.part], parts[t.part+1]) != 1 {
			return ErrNotKPartite
		}
		root.vertices = append(root.vertices, weightedVertex{index: t.index, part: t.part, adj: t.adj, weight: -1})
	}

	e.currentDepth = 0
	if e.setWeights(root) {
		e.setWeights(root)
	}
	sortWeighted(root.vertices)

	e.initialized = true
	return nil
}

func (e *Engine) backtrack() bool {
	for e.currentDepth >= 1 {
		e.currentDepth--
		if e.graphs[e.currentDepth].isValid() {
			return true
		}
	}
	return false
}

// Next advances to the next k-clique. It returns (true, nil) with a clique
// available via Clique, (false, nil) once the search space is exhausted,
// or (false, ErrCancelled) if the ambient interrupt flag or ctx fired at a
// checkpoint.
func (e *Engine) Next(ctx context.Context) (bool, error) {
	if !e.initialized {
		return false, ErrNotInitialized
	}

	for {
		if e.currentDepth < e.k-1 {
			if err := checkCancelled(ctx); err != nil {
				return false, err
			}
			if !e.selectVertex() {
				if !e.backtrack() {
					return false, nil
				}
			}
		} else {
			g := &e.graphs[e.currentDepth]
			v := g.lastVertex()
			if v == nil {
				if !e.backtrack() {
					return false, nil
				}
			} else {
				e.kClique[v.part] = v.index
				g.popLastVertex()
				return true, nil
			}
		}
	}
}

// Clique returns the most recently found k-clique as one vertex index per
// part, in part order. Its contents are only meaningful after a call to
// Next returned true.
func (e *Engine) Clique() []int {
	out := make([]int, len(e.kClique))
	copy(out, e.kClique)
	return out
}
