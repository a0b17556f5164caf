// SPDX-License-Identifier: MIT
package backend_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/plexus/backend"
	"github.com/katalvlaran/plexus/core"
)

// ExampleSession wires the reference backend into a graph and runs the
// delegated queries through the external-identifier boundary.
func ExampleSession() {
	g, err := core.FromEdgeList(
		[]string{"a", "b", "c"},
		[]string{"b", "c", "d"},
		core.WithDirected(true),
		core.WithBackend(backend.New()))
	if err != nil {
		fmt.Println(err)
		return
	}

	pairs, _ := g.TwoHopNeighbors(context.Background())
	for _, p := range pairs {
		fmt.Println(p.First, "→→", p.Second)
	}

	sample, _ := g.RandomVertexSample(context.Background())
	fmt.Println(sample)
	// Output:
	// a →→ c
	// b →→ d
	// [a b c d]
}
