package interleave

// Interleave merges sources into a single slice of length equal to the sum of
// their lengths. Each source keeps its relative order and each element
// appears exactly once. Empty sources are ignored, and a single source is
// returned as a copy of itself. The inputs are not modified.
func Interleave[T any](sources ...[]T) []T {
	total := 0
	for _, s := range sources {
		total += len(s)
	}

	out := make([]T, 0, total)
	if total == 0 {
		return out
	}

	emitted := make([]int, len(sources))
	for step := 1; step <= total; step++ {
		for j, s := range sources {
			// emitted[j] == ceil(len(s)*step/total) after this step.
			if emitted[j]*total < len(s)*step {
				out = append(out, s[emitted[j]])
				emitted[j]++
			}
		}
	}
	return out
}
