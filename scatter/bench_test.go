// SPDX-License-Identifier: MIT

package scatter_test

import (
	"testing"

	"github.com/katalvlaran/geoscatter/graph"
	"github.com/katalvlaran/geoscatter/scatter"
)

// BenchmarkFit_Cycle64 measures the full pipeline on a 64-vertex cycle with
// default hyperparameters (dominated by the Ψ bank squarings, O(n³) each).
func BenchmarkFit_Cycle64(b *testing.B) {
	g, err := graph.Cycle(64)
	if err != nil {
		b.Fatal(err)
	}
	batch := []*graph.Graph{g}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		est := scatter.New()
		if err = est.Fit(batch); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkNormalizedAdjacency_Complete64 isolates operator construction.
func BenchmarkNormalizedAdjacency_Complete64(b *testing.B) {
	g, err := graph.Complete(64)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = scatter.NormalizedAdjacency(g); err != nil {
			b.Fatal(err)
		}
	}
}
