package dijkstra_test

import (
	"fmt"

	"github.com/solvekit/solvekit/core"
	"github.com/solvekit/solvekit/dijkstra"
)

// ExampleDijkstra routes between US cities on a small flight network and
// prints the cheapest distance plus the route taken.
func ExampleDijkstra() {
	g := core.NewWeightedGraph("Seattle", "Chicago", "Atlanta", "Miami")
	_ = g.AddEdgeBetween("Seattle", "Chicago", 1737)
	_ = g.AddEdgeBetween("Seattle", "Atlanta", 2618)
	_ = g.AddEdgeBetween("Chicago", "Atlanta", 588)
	_ = g.AddEdgeBetween("Atlanta", "Miami", 604)

	res, err := dijkstra.Dijkstra(g, "Seattle")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	miami, _ := g.IndexOf("Miami")
	fmt.Printf("Seattle -> Miami: %g\n", res.Dist[miami])

	path, _ := res.PathTo(miami)
	for _, e := range path {
		from, _ := g.VertexAt(e.U)
		to, _ := g.VertexAt(e.V)
		fmt.Printf("%s -> %s (%g)\n", from, to, e.Weight)
	}
	// Output:
	// Seattle -> Miami: 2929
	// Seattle -> Chicago (1737)
	// Chicago -> Atlanta (588)
	// Atlanta -> Miami (604)
}
