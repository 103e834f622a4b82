package slidegraph

// CutDendrogram extracts a flat cluster assignment from a scipy-format
// dendrogram over n observations by applying every merge whose distance is
// <= threshold. Rows are expected sorted by distance ascending (as produced
// by AverageLinkage), so the walk stops at the first row above threshold.
//
// Returns a label per observation (0-based, assigned in first-seen point
// order) and the number of distinct clusters. Labels are opaque: they are
// stable for identical inputs but carry no meaning across calls.
func CutDendrogram(dendrogram [][4]float64, n int, threshold float64) ([]int, int) {
	// parent over the dendrogram ID space: points 0..n-1, merged clusters
	// n..2n-2. -1 marks a root.
	parent := make([]int, 2*n-1)
	for i := range parent {
		parent[i] = -1
	}
	for k, row := range dendrogram {
		if row[2] > threshold {
			break
		}
		parent[int(row[0])] = n + k
		parent[int(row[1])] = n + k
	}

	labels := make([]int, n)
	rootLabel := make(map[int]int)
	next := 0
	for i := 0; i < n; i++ {
		root := i
		for parent[root] != -1 {
			root = parent[root]
		}
		label, ok := rootLabel[root]
		if !ok {
			label = next
			rootLabel[root] = label
			next++
		}
		labels[i] = label
	}
	return labels, next
}
