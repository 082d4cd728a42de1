package gamemath

// ClampFloat clamps v to [lo, hi].
func ClampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Approach moves current toward target by factor of the remaining gap.
// A factor of 1 snaps; anything in (0,1) eases exponentially.
func Approach(current, target, factor float64) float64 {
	return current + (target-current)*factor
}

// Sign returns -1 for negative v and 1 otherwise.
func Sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
