// Package slidegraph builds spatial-feature graphs from labeled points with
// associated feature vectors, e.g. cell or patch locations in a microscopy
// image with per-patch embedding features.
//
// Construction fuses two distance notions into one similarity kernel:
// spatial distance between point coordinates and Euclidean distance between
// feature vectors, each with a configurable exponential decay. Points are
// grouped by average-linkage hierarchical clustering over the resulting
// condensed dissimilarity array, clusters are reduced to centroids, and
// centroids are connected by Delaunay triangulation with edges longer than a
// distance cutoff removed. The result is a node set (centroid coordinates
// and mean features) plus a sparse 2×M edge index.
//
// Basic usage:
//
//	cfg := slidegraph.DefaultConfig()
//	graph, err := slidegraph.BuildGraph(points, features, nil, cfg)
//	// graph.Coords[i] is the spatial centroid of node i
//	// graph.X[i] is the mean feature vector of node i
//	// graph.EdgeIndex holds (source, target) pairs of node indices
//
// The intermediate steps are exported for standalone use:
// CondensedDistances, AverageLinkage, CutDendrogram, AggregateCentroids,
// DelaunayAdjacency, and AffinityToEdgeIndex (a general affinity-matrix to
// edge-index converter).
//
// All computation is single-threaded, in-memory, and deterministic; the
// pairwise stages are O(n²), sized for hundreds to low thousands of points
// per graph. Callers wanting parallelism should run independent graph
// constructions concurrently.
package slidegraph
