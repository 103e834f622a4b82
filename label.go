package slidegraph

import "sort"

// labelDendrogram converts agglomeration merges into a dendrogram in scipy
// linkage format. merges is [][3]float64 where each entry is
// [clusterA, clusterB, distance] with clusterA/clusterB identified by a
// representative original point index. Returns [][4]float64 rows of
// [left, right, distance, mergedSize], sorted by distance ascending, where
// merged cluster IDs start at n and increment per row.
func labelDendrogram(merges [][3]float64, n int) [][4]float64 {
	if len(merges) == 0 {
		return nil
	}

	// Stable sort by distance so equal-distance merges keep their
	// agglomeration order, making the output deterministic.
	sorted := make([][3]float64, len(merges))
	copy(sorted, merges)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i][2] < sorted[j][2]
	})

	uf := newUnionFind(n)
	result := make([][4]float64, 0, len(sorted))

	for _, merge := range sorted {
		a := int(merge[0])
		b := int(merge[1])
		dist := merge[2]

		aa := uf.find(a)
		bb := uf.find(b)
		newSize := uf.size[aa] + uf.size[bb]

		result = append(result, [4]float64{float64(aa), float64(bb), dist, float64(newSize)})

		// Relabel the merged root to the next dendrogram cluster ID
		// (n + row index). Both previous roots point to it.
		uf.size[uf.nextLabel] = newSize
		uf.parent[aa] = uf.nextLabel
		uf.parent[bb] = uf.nextLabel
		uf.nextLabel++
	}

	return result
}
