package slidegraph

import (
	"fmt"
	"sort"

	"github.com/fogleman/delaunay"
	"gonum.org/v1/gonum/mat"
)

// adjacencyLeafSize is the KD-tree leaf size for the edge-pruning radius
// queries; centroid sets are small, so tuning is not worth a parameter.
const adjacencyLeafSize = 40

// DelaunayAdjacency builds a binary adjacency matrix over 2-D points via
// Delaunay triangulation, connecting each point to its triangulation
// neighbours that lie within dthresh (Euclidean, inclusive). The raw
// triangulation connects every point to its natural geometric neighbours but
// may bridge sparse regions with long edges; the cutoff removes those while
// preserving the local mesh.
//
// points is flat row-major with n rows of 2 coordinates. The result is
// symmetric with a zero diagonal.
//
// Returns ErrInvalidInput if dims != 2, n < 4, or the point set admits no
// triangulation (e.g. all points collinear).
func DelaunayAdjacency(points []float64, n, dims int, dthresh float64) (*mat.Dense, error) {
	if dims != 2 {
		return nil, fmt.Errorf("%w: triangulation requires 2-D coordinates, got %d dimensions", ErrInvalidInput, dims)
	}
	if n < 4 {
		return nil, fmt.Errorf("%w: triangulation requires at least 4 points, got %d", ErrInvalidInput, n)
	}

	pts := make([]delaunay.Point, n)
	for i := range pts {
		pts[i] = delaunay.Point{X: points[i*dims], Y: points[i*dims+1]}
	}
	triangulation, err := delaunay.Triangulate(pts)
	if err != nil {
		return nil, fmt.Errorf("%w: triangulation failed: %v", ErrInvalidInput, err)
	}

	// One pass over the triangle triplets collects each point's
	// triangulation neighbours, then a sort+compact dedupes them.
	neighbours := make([][]int, n)
	triangles := triangulation.Triangles
	for t := 0; t+2 < len(triangles); t += 3 {
		a, b, c := triangles[t], triangles[t+1], triangles[t+2]
		neighbours[a] = append(neighbours[a], b, c)
		neighbours[b] = append(neighbours[b], a, c)
		neighbours[c] = append(neighbours[c], a, b)
	}
	for i := range neighbours {
		neighbours[i] = dedupeInts(neighbours[i])
	}

	tree := NewKDTree(points, n, dims, adjacencyLeafSize)
	withinRange := make([]bool, n)

	adjacency := mat.NewDense(n, n, nil)
	for i, nbs := range neighbours {
		if len(nbs) == 0 {
			continue
		}

		for _, j := range tree.QueryRadius(points[i*dims:(i+1)*dims], dthresh) {
			withinRange[j] = true
		}
		for _, j := range nbs {
			if withinRange[j] {
				adjacency.Set(i, j, 1)
				adjacency.Set(j, i, 1)
			}
		}
		for k := range withinRange {
			withinRange[k] = false
		}
	}

	return adjacency, nil
}

// dedupeInts sorts s and removes duplicates in place.
func dedupeInts(s []int) []int {
	if len(s) < 2 {
		return s
	}
	sort.Ints(s)
	out := s[:1]
	for _, v := range s[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}
