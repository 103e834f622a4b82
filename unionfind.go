package slidegraph

// unionFind implements a disjoint-set structure with path compression,
// sized for dendrogram labeling: original points occupy 0..n-1 and merged
// clusters receive IDs n..2n-2 as agglomeration proceeds.
type unionFind struct {
	parent []int
	size   []int
	// nextLabel is the ID for the next merged cluster, starting at n.
	nextLabel int
}

// newUnionFind creates a unionFind for n initial elements with internal
// storage for up to 2*n - 1 elements, so labelDendrogram can assign new
// cluster IDs starting at n.
func newUnionFind(n int) *unionFind {
	total := 2*n - 1
	if total < 1 {
		total = 1
	}
	parent := make([]int, total)
	size := make([]int, total)
	for i := range parent {
		parent[i] = -1 // -1 means "is a root"
	}
	for i := 0; i < n; i++ {
		size[i] = 1
	}
	return &unionFind{
		parent:    parent,
		size:      size,
		nextLabel: n,
	}
}

// find returns the root of the set containing x, with path compression.
func (uf *unionFind) find(x int) int {
	root := x
	for uf.parent[root] != -1 {
		root = uf.parent[root]
	}
	for uf.parent[x] != -1 {
		x, uf.parent[x] = uf.parent[x], root
	}
	return root
}
