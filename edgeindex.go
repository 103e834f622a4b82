package slidegraph

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// EdgeIndex is a sparse coordinate edge list in 2×M form: column k is the
// directed edge (Src[k], Dst[k]). A symmetric adjacency matrix yields both
// directions of every undirected edge.
type EdgeIndex struct {
	Src []int
	Dst []int
}

// Len returns the number of edges M.
func (e EdgeIndex) Len() int { return len(e.Src) }

// Dense exports the edge index as a 2×M matrix (row 0 = sources,
// row 1 = targets). Returns an empty matrix when there are no edges.
func (e EdgeIndex) Dense() *mat.Dense {
	m := e.Len()
	if m == 0 {
		return &mat.Dense{}
	}
	data := make([]float64, 2*m)
	for k := 0; k < m; k++ {
		data[k] = float64(e.Src[k])
		data[m+k] = float64(e.Dst[k])
	}
	return mat.NewDense(2, m, data)
}

// AffinityToEdgeIndex converts a square affinity (or adjacency) matrix into
// an edge index containing every coordinate pair whose value is strictly
// greater than threshold. Pairs are emitted in row-major scan order, so the
// result is deterministic. Self-loops are never produced by the
// triangulation path, but a nonzero diagonal above threshold will be
// reported faithfully here; this converter is a general utility, reused for
// arbitrary affinity matrices.
//
// mat.Matrix is the canonical representation at this boundary; adapt other
// matrix forms with thin wrappers such as AffinityFromRows.
//
// Returns ErrInvalidInput if the matrix is not square or threshold is NaN.
func AffinityToEdgeIndex(affinity mat.Matrix, threshold float64) (EdgeIndex, error) {
	if math.IsNaN(threshold) {
		return EdgeIndex{}, fmt.Errorf("%w: threshold must be a number, got NaN", ErrInvalidInput)
	}
	r, c := affinity.Dims()
	if r != c {
		return EdgeIndex{}, fmt.Errorf("%w: affinity matrix must be square, got %dx%d", ErrInvalidInput, r, c)
	}

	var edges EdgeIndex
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if affinity.At(i, j) > threshold {
				edges.Src = append(edges.Src, i)
				edges.Dst = append(edges.Dst, j)
			}
		}
	}
	return edges, nil
}

// AffinityFromRows adapts a [][]float64 matrix into the canonical mat.Dense
// form accepted by AffinityToEdgeIndex. Returns ErrInvalidInput if rows are
// ragged or the matrix is empty.
func AffinityFromRows(rows [][]float64) (*mat.Dense, error) {
	n := len(rows)
	if n == 0 {
		return nil, fmt.Errorf("%w: affinity matrix must not be empty", ErrInvalidInput)
	}
	cols := len(rows[0])
	data := make([]float64, 0, n*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: affinity row %d has %d columns, want %d", ErrInvalidInput, i, len(row), cols)
		}
		data = append(data, row...)
	}
	return mat.NewDense(n, cols, data), nil
}
