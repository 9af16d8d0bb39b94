package network_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/connectome/conmat"
	"github.com/katalvlaran/connectome/dendro"
	"github.com/katalvlaran/connectome/network"
)

// ExampleConstruct runs the whole pipeline on text inputs: parse a
// correlation matrix and a linkage table, construct the network with the
// default percentile threshold, then inspect edges and clusters.
func ExampleConstruct() {
	matrixText := `0    0.9  0.1  0.2
0.9  0    0.3  0.1
0.1  0.3  0    0.8
0.2  0.1  0.8  0`
	linkageText := `1 2 0.1
3 4 0.2
5 6 0.9`

	m, err := conmat.ParseDense(strings.NewReader(matrixText))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	linkage, err := dendro.ParseLinkage(strings.NewReader(linkageText))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	set, err := conmat.NewSet([]*conmat.Dense{m}, []string{"correlation"})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	nw, err := network.Construct(set,
		network.WithLinkage(linkage),
		network.WithClusterCount(2))
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Printf("nodes=%d edges=%d clusters=%d\n", nw.N(), nw.EdgeCount(), nw.ActiveClusters())
	for _, e := range nw.Edges() {
		fmt.Printf("edge %s-%s w=%.1f\n", nw.Nodes()[e.U].Name, nw.Nodes()[e.V].Name, e.Weights[0])
	}
	// Output:
	// nodes=4 edges=2 clusters=2
	// edge 1-2 w=0.9
	// edge 3-4 w=0.8
}

// ExampleNetwork_ExtractSubnetwork pulls the ego-graph of a node and shows
// the parent back-references.
func ExampleNetwork_ExtractSubnetwork() {
	m, _ := conmat.DenseOf([][]float64{
		{0, 0.9, 0.1},
		{0.9, 0, 0.8},
		{0.1, 0.8, 0},
	})
	set, _ := conmat.NewSet([]*conmat.Dense{m}, []string{"correlation"})
	nw, err := network.Construct(set)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	sub, err := nw.ExtractSubnetwork(0)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, node := range sub.Nodes() {
		fmt.Printf("node %s (parent index %d)\n", node.Name, node.Source)
	}
	// Output:
	// node 1 (parent index 0)
	// node 2 (parent index 1)
}
