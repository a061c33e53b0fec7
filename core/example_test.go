package core_test

import (
	"fmt"

	"github.com/katalvlaran/locograph/core"
)

// ExampleEdgeMap shows the doubled-orientation storage: one Insert
// produces two keys, so either direction can be looked up in O(1).
func ExampleEdgeMap() {
	q := core.EdgeMap{}
	q.Insert(0, 1, 1)
	q.Insert(1, 2, 1)

	fmt.Println("keys:", q.Len())
	fmt.Println("has (2,1):", q.Has(2, 1))
	fmt.Println("nodes:", q.Nodes())
	// Output:
	// keys: 4
	// has (2,1): true
	// nodes: [0 1 2]
}

// ExampleRef resolves a by-name reference through a positional name list.
func ExampleRef() {
	lk := core.NameList([]string{"geneA", "geneB", "geneC"})

	idx, err := core.ByName("geneC").Resolve(lk)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("geneC =", idx)
	// Output:
	// geneC = 2
}
