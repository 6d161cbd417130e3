package utils

func Float32ToInt16(x float32) int16 {
	// Clamp and scale
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Use 32767 for positive max to avoid overflow
	return int16(x * 32767.0)
}

// QuantizeInt16 converts a float32 sample buffer to 16-bit PCM.
// Samples outside [-1, 1] are clamped.
func QuantizeInt16(samples []float32) []int16 {
	out := make([]int16, len(samples))
	for i, s := range samples {
		out[i] = Float32ToInt16(s)
	}

	return out
}
