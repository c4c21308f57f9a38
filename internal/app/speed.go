package app

// Tick-rate bounds for the +/- keys.
const (
	MinTPS = 1
	MaxTPS = 1920
)

// nextTPS doubles or halves tps within [MinTPS, MaxTPS].
func nextTPS(tps, direction int) int {
	switch {
	case direction > 0:
		tps *= 2
	case direction < 0:
		tps /= 2
	}
	if tps < MinTPS {
		return MinTPS
	}
	if tps > MaxTPS {
		return MaxTPS
	}
	return tps
}
