package gamemath

// ApplyGravity accelerates a vertical speed and caps the fall speed.
func ApplyGravity(speedY, gravity, maxFall float64) float64 {
	speedY += gravity
	if speedY > maxFall {
		return maxFall
	}
	return speedY
}

// Clamp limits v to [lo, hi]. When hi < lo the range collapses to lo.
func Clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp moves from a toward b by factor t in [0, 1].
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
