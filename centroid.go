package slidegraph

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// AggregateCentroids reduces each cluster to a representative node: the
// rounded mean coordinate and the mean feature vector of its members.
// points and features are flat row-major (n×dims and n×featDims); labels
// assigns each point a cluster in [0, numClusters). Returns parallel flat
// matrices of numClusters rows, indexed by cluster label.
//
// Coordinates round half to even, so centroids land on integer grid
// positions the same way the upstream pixel coordinates do. A singleton
// cluster yields the original point.
func AggregateCentroids(points []float64, n, dims int, features []float64, featDims int, labels []int, numClusters int) (coords, feats []float64) {
	coords = make([]float64, numClusters*dims)
	feats = make([]float64, numClusters*featDims)
	counts := make([]int, numClusters)

	for i := 0; i < n; i++ {
		c := labels[i]
		counts[c]++
		floats.Add(coords[c*dims:(c+1)*dims], points[i*dims:(i+1)*dims])
		if featDims > 0 {
			floats.Add(feats[c*featDims:(c+1)*featDims], features[i*featDims:(i+1)*featDims])
		}
	}

	for c := 0; c < numClusters; c++ {
		inv := 1 / float64(counts[c])
		coordRow := coords[c*dims : (c+1)*dims]
		floats.Scale(inv, coordRow)
		for d := range coordRow {
			coordRow[d] = math.RoundToEven(coordRow[d])
		}
		if featDims > 0 {
			floats.Scale(inv, feats[c*featDims:(c+1)*featDims])
		}
	}

	return coords, feats
}
