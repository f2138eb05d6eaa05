package clique_test

import (
	"context"
	"fmt"
	"log"

	"github.com/gopherclique/kpclique/clique"
)

// ExampleNewKPartiteKClique enumerates the single triangle hidden in three
// parts of two vertices each.
func ExampleNewKPartiteKClique() {
	// Parts {0,1}, {2,3}, {4,5}; edges 0-2, 0-4, 2-4.
	incidences := make([][]bool, 6)
	for i := range incidences {
		incidences[i] = make([]bool, 6)
	}
	for _, e := range [][2]int{{0, 2}, {0, 4}, {2, 4}} {
		incidences[e[0]][e[1]] = true
		incidences[e[1]][e[0]] = true
	}

	eng, err := clique.NewKPartiteKClique(incidences, []int{0, 2, 4})
	if err != nil {
		log.Fatal(err)
	}
	for {
		ok, err := eng.Next(context.Background())
		if err != nil {
			log.Fatal(err)
		}
		if !ok {
			break
		}
		fmt.Println(eng.Clique())
	}
	// Output:
	// [0 2 4]
}

// ExampleNewFindClique runs the first-fit strategy over a complete
// tripartite graph with singleton parts; the one clique is forced at
// construction time.
func ExampleNewFindClique() {
	// Parts {0}, {1}, {2}; all three vertices pairwise adjacent.
	incidences := [][]bool{
		{false, true, true},
		{true, false, true},
		{true, true, false},
	}

	eng, err := clique.NewFindClique(incidences, []int{0, 1, 2})
	if err != nil {
		log.Fatal(err)
	}
	for {
		ok, err := eng.Next(context.Background())
		if err != nil {
			log.Fatal(err)
		}
		if !ok {
			break
		}
		fmt.Println(eng.Clique())
	}
	// Output:
	// [0 1 2]
}
