package slidegraph

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// edgeThreshold converts the 0/1 adjacency matrix to an edge index; any
// value in (0, 1) is equivalent for binary adjacency.
const edgeThreshold = 0.5

// Graph is the immutable output of BuildGraph: one node per cluster.
type Graph struct {
	// X holds one feature vector per node: the mean of the member points'
	// feature vectors, in filtered-feature space.
	X [][]float64

	// EdgeIndex is the 2×M connectivity of the graph. Symmetric by
	// construction: both (i,j) and (j,i) appear for every connection.
	EdgeIndex EdgeIndex

	// Coords holds one spatial coordinate per node: the rounded mean of the
	// member points' coordinates.
	Coords [][]float64

	// Y is the optional graph label, nil when none was supplied.
	Y []float64
}

// BuildGraph constructs a spatial-feature graph from labeled points.
//
// points is an N×D list of spatial coordinates (D must be 2 for the
// triangulation step) and features an N×F list of per-point feature
// vectors. label, when non-nil, is attached to the output as Y; wrap a
// scalar label as a single-element slice. cfg controls the similarity
// kernel, clustering cut, and connectivity cutoff; see Config.
//
// The pipeline: drop near-constant feature dimensions, build the condensed
// spatial-feature dissimilarity array, cluster by average linkage cut at
// cfg.LambdaH, reduce clusters to centroids, connect centroids by Delaunay
// triangulation pruned at cfg.ConnectivityDistance, and convert the
// adjacency to an edge index. When fewer than 4 clusters remain the
// triangulation is undefined, so centroids are instead connected directly
// whenever they are within cfg.ConnectivityDistance of each other.
//
// Deterministic: identical inputs and configuration produce identical
// output. Errors wrap ErrInvalidInput for caller contract violations and
// ErrNumerical for malformed distance values.
func BuildGraph(points, features [][]float64, label []float64, cfg Config) (*Graph, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	n := len(points)
	if n != len(features) {
		return nil, fmt.Errorf("%w: points and features must have the same length, got %d and %d",
			ErrInvalidInput, n, len(features))
	}
	if n < 2 {
		return nil, fmt.Errorf("%w: need at least 2 points to build a graph, got %d", ErrInvalidInput, n)
	}

	flatPoints, dims, err := flatten(points, "points")
	if err != nil {
		return nil, err
	}
	if dims == 0 {
		return nil, fmt.Errorf("%w: points must have at least 1 coordinate dimension", ErrInvalidInput)
	}
	flatFeatures, featDims, err := flatten(features, "features")
	if err != nil {
		return nil, err
	}

	flatFeatures, featDims = filterSignificantFeatures(flatFeatures, n, featDims, cfg.FeatureRangeThresh)

	condensed, err := CondensedDistances(flatPoints, n, dims, flatFeatures, featDims, cfg)
	if err != nil {
		return nil, err
	}

	dendrogram, err := AverageLinkage(condensed, n)
	if err != nil {
		return nil, err
	}
	labels, numClusters := CutDendrogram(dendrogram, n, cfg.LambdaH)

	coords, feats := AggregateCentroids(flatPoints, n, dims, flatFeatures, featDims, labels, numClusters)

	var adjacency *mat.Dense
	if numClusters < 4 {
		adjacency = thresholdAdjacency(coords, numClusters, dims, cfg.ConnectivityDistance)
	} else {
		adjacency, err = DelaunayAdjacency(coords, numClusters, dims, cfg.ConnectivityDistance)
		if err != nil {
			return nil, err
		}
	}

	edges, err := AffinityToEdgeIndex(adjacency, edgeThreshold)
	if err != nil {
		return nil, err
	}

	graph := &Graph{
		X:         rowsFromFlat(feats, numClusters, featDims),
		EdgeIndex: edges,
		Coords:    rowsFromFlat(coords, numClusters, dims),
	}
	if label != nil {
		graph.Y = append([]float64(nil), label...)
	}
	return graph, nil
}

// thresholdAdjacency connects every pair of points within dthresh
// (inclusive). Used in place of the triangulation when there are too few
// centroids to triangulate; with so few points the triangulation would
// connect every pair anyway, leaving only the distance cutoff.
func thresholdAdjacency(points []float64, n, dims int, dthresh float64) *mat.Dense {
	adjacency := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := euclidean(points[i*dims:(i+1)*dims], points[j*dims:(j+1)*dims])
			if d <= dthresh {
				adjacency.Set(i, j, 1)
				adjacency.Set(j, i, 1)
			}
		}
	}
	return adjacency
}

// flatten converts an N×D row list to flat row-major form, validating that
// all rows have equal length.
func flatten(rows [][]float64, what string) ([]float64, int, error) {
	dims := len(rows[0])
	flat := make([]float64, 0, len(rows)*dims)
	for i, row := range rows {
		if len(row) != dims {
			return nil, 0, fmt.Errorf("%w: %s row %d has %d columns, want %d", ErrInvalidInput, what, i, len(row), dims)
		}
		flat = append(flat, row...)
	}
	return flat, dims, nil
}

// rowsFromFlat converts a flat row-major matrix back to an N-row list.
func rowsFromFlat(flat []float64, n, dims int) [][]float64 {
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = flat[i*dims : (i+1)*dims : (i+1)*dims]
	}
	return rows
}
