package slidegraph

import "testing"

func TestAggregateCentroids_TwoClusters(t *testing.T) {
	points := []float64{
		0, 0,
		2, 0,
		10, 10,
		12, 14,
	}
	features := []float64{
		1, 0,
		3, 0,
		5, 1,
		7, 3,
	}
	labels := []int{0, 0, 1, 1}

	coords, feats := AggregateCentroids(points, 4, 2, features, 2, labels, 2)

	wantCoords := []float64{1, 0, 11, 12}
	for i := range wantCoords {
		if coords[i] != wantCoords[i] {
			t.Errorf("coords = %v, want %v", coords, wantCoords)
			break
		}
	}
	wantFeats := []float64{2, 0, 6, 2}
	for i := range wantFeats {
		if !almostEqual(feats[i], wantFeats[i], floatTol) {
			t.Errorf("feats = %v, want %v", feats, wantFeats)
			break
		}
	}
}

func TestAggregateCentroids_Singleton(t *testing.T) {
	points := []float64{7, 9}
	features := []float64{0.25, 0.75}
	coords, feats := AggregateCentroids(points, 1, 2, features, 2, []int{0}, 1)
	if coords[0] != 7 || coords[1] != 9 {
		t.Errorf("singleton centroid coords = %v, want [7 9]", coords)
	}
	if feats[0] != 0.25 || feats[1] != 0.75 {
		t.Errorf("singleton centroid features = %v, want [0.25 0.75]", feats)
	}
}

func TestAggregateCentroids_RoundHalfToEven(t *testing.T) {
	// Mean x = 0.5 rounds to 0, mean y = 1.5 rounds to 2.
	points := []float64{
		0, 1,
		1, 2,
	}
	features := []float64{0, 0}
	coords, _ := AggregateCentroids(points, 2, 2, features, 1, []int{0, 0}, 1)
	if coords[0] != 0 {
		t.Errorf("expected 0.5 to round to 0 (half to even), got %v", coords[0])
	}
	if coords[1] != 2 {
		t.Errorf("expected 1.5 to round to 2 (half to even), got %v", coords[1])
	}
}

func TestAggregateCentroids_FeaturesNotRounded(t *testing.T) {
	points := []float64{0, 0, 1, 1}
	features := []float64{0.2, 0.3}
	_, feats := AggregateCentroids(points, 2, 2, features, 1, []int{0, 0}, 1)
	if !almostEqual(feats[0], 0.25, floatTol) {
		t.Errorf("feature mean must not be rounded: got %v, want 0.25", feats[0])
	}
}

func TestAggregateCentroids_ZeroFeatureDims(t *testing.T) {
	points := []float64{0, 0, 2, 2}
	coords, feats := AggregateCentroids(points, 2, 2, nil, 0, []int{0, 0}, 1)
	if len(coords) != 2 {
		t.Fatalf("expected 1 centroid of 2 coords, got %v", coords)
	}
	if len(feats) != 0 {
		t.Errorf("expected empty feature centroids, got %v", feats)
	}
}
