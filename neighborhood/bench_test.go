package neighborhood_test

import (
	"testing"

	"github.com/katalvlaran/locograph/core"
	"github.com/katalvlaran/locograph/neighborhood"
)

// ladderEdgeMap builds a 2×n ladder: two rails with rungs every node.
func ladderEdgeMap(n int) core.EdgeMap {
	q := core.EdgeMap{}
	for i := 0; i < n-1; i++ {
		q.Insert(i, i+1, 1)     // top rail
		q.Insert(n+i, n+i+1, 1) // bottom rail
	}
	for i := 0; i < n; i++ {
		q.Insert(i, n+i, 1) // rung
	}
	return q
}

func BenchmarkExtract_Ladder1000(b *testing.B) {
	q := ladderEdgeMap(1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := neighborhood.Extract(q, core.ByIndex(0), nil); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkExtract_Ladder1000_Radius10(b *testing.B) {
	q := ladderEdgeMap(1000)
	targets := []int{500, 1500}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := neighborhood.Extract(q, core.ByIndex(0), targets,
			neighborhood.WithMaxRadius(10))
		if err != nil {
			b.Fatal(err)
		}
	}
}
