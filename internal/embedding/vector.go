package embedding

import "math"

// CosineSimilarity computes the normalized dot product of two vectors.
// Returns 0 when either vector has zero norm, so callers never divide by
// zero. Mismatched lengths compare over the shorter prefix.
func CosineSimilarity(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		x := float64(a[i])
		y := float64(b[i])
		dot += x * y
		normA += x * x
		normB += y * y
	}
	for i := n; i < len(a); i++ {
		x := float64(a[i])
		normA += x * x
	}
	for i := n; i < len(b); i++ {
		y := float64(b[i])
		normB += y * y
	}
	if normA == 0 || normB == 0 {
		return 0.0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
