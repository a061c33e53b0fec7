package restrict_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/locograph/restrict"
)

// ExampleRestrictToLocalGraph restricts the path 0-1-2-3 to radius 2
// around target 0. Node 3 falls outside the radius, so Q keeps exactly
// the edges (0,1) and (1,2), each stored in both orientations.
func ExampleRestrictToLocalGraph() {
	A := mat.NewDense(4, 4, nil)
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 3}} {
		A.Set(e[0], e[1], 1)
		A.Set(e[1], e[0], 1)
	}

	q, err := restrict.RestrictToLocalGraph(A, []int{0}, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, e := range q.Edges() {
		fmt.Printf("(%d,%d)\n", e.U, e.V)
	}
	// Output:
	// (0,1)
	// (1,0)
	// (1,2)
	// (2,1)
}

// ExampleDistanceLabels shows the hop labeling on a star with center 0:
// every leaf sits one hop from the target.
func ExampleDistanceLabels() {
	A := mat.NewDense(4, 4, nil)
	for _, leaf := range []int{1, 2, 3} {
		A.Set(0, leaf, 1)
		A.Set(leaf, 0, 1)
	}

	dist, err := restrict.DistanceLabels(A, []int{0}, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for v := 0; v < 4; v++ {
		fmt.Printf("node %d: %d\n", v, dist[v])
	}
	// Output:
	// node 0: 0
	// node 1: 1
	// node 2: 1
	// node 3: 1
}
