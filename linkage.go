package slidegraph

import (
	"fmt"
	"math"
)

// AverageLinkage performs average-linkage agglomerative clustering over a
// condensed pairwise distance array for n points, using the
// nearest-neighbour-chain algorithm (O(n²) time, O(n²) working memory for
// the distance copy). The inter-cluster distance after merging clusters x
// and y is the size-weighted mean
//
//	d(x∪y, z) = (|x|·d(x,z) + |y|·d(y,z)) / (|x| + |y|)
//
// Returns a dendrogram in scipy linkage format ([left, right, distance,
// size] rows sorted by distance ascending, merged IDs starting at n).
// Deterministic for identical inputs.
//
// Returns ErrInvalidInput if the condensed array length is not n*(n-1)/2,
// and ErrNumerical if it contains NaN, negative, or infinite values.
func AverageLinkage(condensed []float64, n int) ([][4]float64, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: need at least 2 observations, got %d", ErrInvalidInput, n)
	}
	if len(condensed) != n*(n-1)/2 {
		return nil, fmt.Errorf("%w: condensed array length %d does not match n*(n-1)/2 = %d (n=%d)",
			ErrInvalidInput, len(condensed), n*(n-1)/2, n)
	}
	for i, v := range condensed {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return nil, fmt.Errorf("%w: condensed distance at index %d is %v; distances must be finite and non-negative",
				ErrNumerical, i, v)
		}
	}

	// Working copy: entries for merged clusters are rewritten in place at
	// the surviving representative's rows.
	d := make([]float64, len(condensed))
	copy(d, condensed)

	size := make([]int, n) // 0 means the cluster was merged away
	for i := range size {
		size[i] = 1
	}

	chain := make([]int, 0, n)
	merges := make([][3]float64, 0, n-1)

	for len(merges) < n-1 {
		if len(chain) < 2 {
			chain = chain[:0]
			for x := 0; x < n; x++ {
				if size[x] > 0 {
					chain = append(chain, x)
					break
				}
			}
		}

		// Follow nearest neighbours until a reciprocal pair is found.
		var x, y int
		var minDist float64
		for {
			x = chain[len(chain)-1]

			minDist = math.Inf(1)
			y = -1
			if len(chain) > 1 {
				// Prefer the previous chain element so reciprocal
				// pairs terminate the walk.
				y = chain[len(chain)-2]
				minDist = d[condensedPairIndex(x, y, n)]
			}
			for z := 0; z < n; z++ {
				if z == x || size[z] == 0 {
					continue
				}
				if dist := d[condensedPairIndex(x, z, n)]; dist < minDist {
					minDist = dist
					y = z
				}
			}

			if len(chain) > 1 && y == chain[len(chain)-2] {
				chain = chain[:len(chain)-2]
				break
			}
			chain = append(chain, y)
		}

		if x > y {
			x, y = y, x
		}
		merges = append(merges, [3]float64{float64(x), float64(y), minDist})

		// Merge x into y: y's entries become the size-weighted average and
		// x is deactivated.
		sx, sy := float64(size[x]), float64(size[y])
		for z := 0; z < n; z++ {
			if z == x || z == y || size[z] == 0 {
				continue
			}
			dxz := d[condensedPairIndex(x, z, n)]
			dyz := d[condensedPairIndex(y, z, n)]
			d[condensedPairIndex(y, z, n)] = (sx*dxz + sy*dyz) / (sx + sy)
		}
		size[y] += size[x]
		size[x] = 0
	}

	return labelDendrogram(merges, n), nil
}

// condensedPairIndex is condensedIndex for an unordered pair.
func condensedPairIndex(i, j, n int) int {
	if i > j {
		i, j = j, i
	}
	return condensedIndex(i, j, n)
}
