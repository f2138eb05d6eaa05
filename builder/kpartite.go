package builder

// RandomKPartite builds a dense, deterministic k-partite incidence matrix
// for testing: one part per entry of partSizes, with every cross-part pair
// of vertices connected independently with probability density (clamped to
// [0, 1]). Same-part pairs are never connected, keeping the result
// k-partite by construction. The diagonal is left false; callers handing
// this to the clique package do not need to set it themselves, as the
// engines set each vertex adjacent to itself internally.
//
// Determinism: a given (partSizes, density, seed) triple always produces
// the same matrix.
func RandomKPartite(partSizes []int, density float64, seed int64) (incidences [][]bool, firstPerPart []int) {
	k := len(partSizes)
	firstPerPart = make([]int, k)
	n := 0
	for i, sz := range partSizes {
		firstPerPart[i] = n
		n += sz
	}

	partOf := make([]int, n)
	idx := 0
	for p, sz := range partSizes {
		for j := 0; j < sz; j++ {
			partOf[idx] = p
			idx++
		}
	}

	p := density
	if p < 0 {
		p = 0
	} else if p > 1 {
		p = 1
	}

	rng := rngFromSeed(seed)
	incidences = make([][]bool, n)
	for i := range incidences {
		incidences[i] = make([]bool, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if partOf[i] == partOf[j] {
				continue
			}
			if rng.Float64() < p {
				incidences[i][j] = true
				incidences[j][i] = true
			}
		}
	}
	return incidences, firstPerPart
}

// BruteForceCliques enumerates every k-clique of a k-partite graph by
// exhaustive per-part choice, for use as a reference oracle against the
// search engines' output. It is exponential in the part sizes and intended
// for small test graphs only.
func BruteForceCliques(incidences [][]bool, firstPerPart []int) [][]int {
	n := len(incidences)
	k := len(firstPerPart)
	parts := make([]int, k+1)
	copy(parts, firstPerPart)
	parts[k] = n

	var results [][]int
	current := make([]int, k)

	var choose func(part int)
	choose = func(part int) {
		if part == k {
			clique := make([]int, k)
			copy(clique, current)
			results = append(results, clique)
			return
		}
		for v := parts[part]; v < parts[part+1]; v++ {
			ok := true
			for p := 0; p < part; p++ {
				if !incidences[v][current[p]] {
					ok = false
					break
				}
			}
			if ok {
				current[part] = v
				choose(part + 1)
			}
		}
	}
	choose(0)
	return results
}
