package slidegraph

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// maxDissimilarity is assigned to point pairs that are never compared:
// pairs further apart than the neighbour search radius.
const maxDissimilarity = 1.0

// SimilarityKernel computes the fused spatial/feature dissimilarity between
// two points: 1 - exp(-lambdaF * ||f_i - f_j||_2) * exp(-lambdaD * d_ij),
// where d_ij is the precomputed spatial distance. The result is in [0, 1]
// with 1 meaning maximally dissimilar.
//
// Callers are expected to evaluate the kernel only for pairs inside the
// neighbour search radius; pairs outside are assigned maxDissimilarity
// directly.
func SimilarityKernel(featI, featJ []float64, spatialDist, lambdaD, lambdaF float64) float64 {
	featureSimilarity := math.Exp(-lambdaF * floats.Distance(featI, featJ, 2))
	distanceSimilarity := math.Exp(-lambdaD * spatialDist)
	return 1 - featureSimilarity*distanceSimilarity
}

// condensedIndex maps a pair (i, j) with i < j to its position in the
// condensed (linearized upper-triangular, diagonal omitted) distance array
// for n points:
//
//	idx(i, j) = i*n - i*(i+1)/2 + (j - i - 1)
//
// This layout is an invariant shared by the builder, the agglomeration, and
// the dendrogram cut; the array has length n*(n-1)/2.
func condensedIndex(i, j, n int) int {
	return i*n - i*(i+1)/2 + (j - i - 1)
}

// CondensedDistances builds the condensed pairwise dissimilarity array for
// all points. points and features are flat row-major with n rows and dims /
// featDims columns respectively (features already filtered).
//
// For each point, neighbors are ranked by Euclidean distance via a KD-tree
// query and truncated to those strictly inside the search radius; the
// similarity kernel is evaluated for that neighborhood and every other pair
// defaults to maximal dissimilarity. Each point's row (indices > i only)
// occupies the next contiguous segment of the condensed array.
//
// Returns ErrInvalidInput if n < 2.
func CondensedDistances(points []float64, n, dims int, features []float64, featDims int, cfg Config) ([]float64, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: need at least 2 points to build pairwise distances, got %d", ErrInvalidInput, n)
	}

	tree := NewKDTree(points, n, dims, cfg.LeafSize)
	neighbourIndexes, neighbourDistances := tree.QueryKNN(points, n, n)

	condensed := make([]float64, n*(n-1)/2)
	row := make([]float64, n)
	index := 0

	for i := 0; i < n-1; i++ {
		for k := range row {
			row[k] = maxDissimilarity
		}

		// QueryKNN results are sorted ascending, so the in-radius
		// neighborhood is a prefix.
		idx := neighbourIndexes[i]
		dist := neighbourDistances[i]
		featI := features[i*featDims : (i+1)*featDims]
		for k := 0; k < len(dist) && dist[k] < cfg.NeighbourSearchRadius; k++ {
			j := idx[k]
			featJ := features[j*featDims : (j+1)*featDims]
			row[j] = SimilarityKernel(featI, featJ, dist[k], cfg.LambdaD, cfg.LambdaF)
		}

		index += copy(condensed[index:], row[i+1:])
	}

	return condensed, nil
}
