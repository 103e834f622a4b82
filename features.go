package slidegraph

// filterSignificantFeatures drops feature dimensions whose range (max - min
// across all points) does not exceed thresh. Near-constant dimensions carry
// no discriminative signal and would only dilute the feature-space norm.
// features is flat row-major with n rows and dims columns. Returns the
// filtered flat matrix and its new column count.
func filterSignificantFeatures(features []float64, n, dims int, thresh float64) ([]float64, int) {
	if n == 0 || dims == 0 {
		return nil, 0
	}

	mins := make([]float64, dims)
	maxs := make([]float64, dims)
	copy(mins, features[:dims])
	copy(maxs, features[:dims])
	for i := 1; i < n; i++ {
		row := features[i*dims : (i+1)*dims]
		for j, v := range row {
			if v < mins[j] {
				mins[j] = v
			}
			if v > maxs[j] {
				maxs[j] = v
			}
		}
	}

	keep := make([]int, 0, dims)
	for j := 0; j < dims; j++ {
		if maxs[j]-mins[j] > thresh {
			keep = append(keep, j)
		}
	}
	if len(keep) == dims {
		return features, dims
	}

	filtered := make([]float64, n*len(keep))
	for i := 0; i < n; i++ {
		row := features[i*dims : (i+1)*dims]
		for k, j := range keep {
			filtered[i*len(keep)+k] = row[j]
		}
	}
	return filtered, len(keep)
}
