package slidegraph

import (
	"sort"
	"testing"
)

func bruteKNN(points []float64, n, dims int, query []float64, k int) ([]int, []float64) {
	type pair struct {
		idx  int
		dist float64
	}
	pairs := make([]pair, n)
	for i := 0; i < n; i++ {
		pairs[i] = pair{i, euclidean(query, points[i*dims:(i+1)*dims])}
	}
	sort.SliceStable(pairs, func(a, b int) bool { return pairs[a].dist < pairs[b].dist })
	if k > n {
		k = n
	}
	idx := make([]int, k)
	dist := make([]float64, k)
	for i := 0; i < k; i++ {
		idx[i] = pairs[i].idx
		dist[i] = pairs[i].dist
	}
	return idx, dist
}

func TestKDTree_QueryKNNMatchesBruteForce(t *testing.T) {
	points := []float64{
		0, 0,
		1, 0,
		0, 1,
		5, 5,
		-3, 2,
		10, -4,
		2, 2,
		7, 1,
	}
	n, dims := 8, 2
	tree := NewKDTree(points, n, dims, 2)

	indices, distances := tree.QueryKNN(points, n, n)
	for q := 0; q < n; q++ {
		wantIdx, wantDist := bruteKNN(points, n, dims, points[q*dims:(q+1)*dims], n)
		if len(indices[q]) != n {
			t.Fatalf("query %d: expected %d results, got %d", q, n, len(indices[q]))
		}
		for k := 0; k < n; k++ {
			if !almostEqual(distances[q][k], wantDist[k], floatTol) {
				t.Errorf("query %d rank %d: distance %v, want %v", q, k, distances[q][k], wantDist[k])
			}
		}
		// Indices may permute within distance ties; distances must be sorted.
		for k := 1; k < n; k++ {
			if distances[q][k] < distances[q][k-1] {
				t.Errorf("query %d: distances not sorted ascending at rank %d", q, k)
			}
		}
		if indices[q][0] != wantIdx[0] && distances[q][0] != 0 {
			t.Errorf("query %d: nearest neighbour should be the point itself", q)
		}
	}
}

func TestKDTree_QueryKNNSelfFirst(t *testing.T) {
	points := []float64{0, 0, 3, 4, 6, 8}
	tree := NewKDTree(points, 3, 2, 40)
	indices, distances := tree.QueryKNN(points, 3, 3)
	for q := 0; q < 3; q++ {
		if indices[q][0] != q {
			t.Errorf("query %d: expected self first, got %d", q, indices[q][0])
		}
		if distances[q][0] != 0 {
			t.Errorf("query %d: expected self distance 0, got %v", q, distances[q][0])
		}
	}
}

func TestKDTree_QueryKNNTruncatesK(t *testing.T) {
	points := []float64{0, 0, 1, 0, 2, 0, 3, 0}
	tree := NewKDTree(points, 4, 2, 1)
	indices, distances := tree.QueryKNN(points[:2], 1, 2)
	if len(indices[0]) != 2 || len(distances[0]) != 2 {
		t.Fatalf("expected 2 results, got %d", len(indices[0]))
	}
	if indices[0][0] != 0 || indices[0][1] != 1 {
		t.Errorf("expected neighbours [0 1], got %v", indices[0])
	}
}

func TestKDTree_QueryRadiusInclusive(t *testing.T) {
	points := []float64{0, 0, 3, 0, 5, 0, 10, 0}
	tree := NewKDTree(points, 4, 2, 2)

	got := tree.QueryRadius([]float64{0, 0}, 5)
	want := []int{0, 1, 2} // point at distance exactly 5 is included
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestKDTree_QueryRadiusEmpty(t *testing.T) {
	points := []float64{0, 0, 100, 100}
	tree := NewKDTree(points, 2, 2, 40)
	got := tree.QueryRadius([]float64{50, 0}, 1)
	if len(got) != 0 {
		t.Errorf("expected no results, got %v", got)
	}
}

func TestKDTree_LeafSizeOneMatchesLargeLeaf(t *testing.T) {
	points := []float64{
		1, 9,
		4, 2,
		8, 7,
		2, 3,
		9, 1,
		5, 5,
		7, 3,
	}
	n, dims := 7, 2
	small := NewKDTree(points, n, dims, 1)
	large := NewKDTree(points, n, dims, 40)

	for q := 0; q < n; q++ {
		query := points[q*dims : (q+1)*dims]
		_, distSmall := small.QueryKNN(query, 1, n)
		_, distLarge := large.QueryKNN(query, 1, n)
		for k := 0; k < n; k++ {
			if !almostEqual(distSmall[0][k], distLarge[0][k], floatTol) {
				t.Errorf("query %d rank %d: leafSize=1 gives %v, leafSize=40 gives %v",
					q, k, distSmall[0][k], distLarge[0][k])
			}
		}
	}
}
