package utils

// Epley1RM estimates a one-rep max from a working set.
func Epley1RM(weight float64, reps int) float64 {
	if reps == 0 {
		return 0
	}
	if reps == 1 {
		return weight
	}

	return weight * (1 + float64(reps)/30)
}
