package model

const historySize = 5

// History keeps the fingerprints of recent generations for cycle detection
type History struct {
	hashes []string
}

// Update records a fingerprint, keeping only the most recent ones
func (h *History) Update(hash string) {
	h.hashes = append(h.hashes, hash)
	if len(h.hashes) > historySize {
		h.hashes = h.hashes[1:]
	}
}

// IsStagnant reports whether current matches one of the last three recorded
// fingerprints, i.e. the population is static or oscillating with period 2 or 3.
func (h *History) IsStagnant(current string) bool {
	if len(h.hashes) < 3 {
		return false
	}

	for i := 1; i <= 3; i++ {
		if h.hashes[len(h.hashes)-i] == current {
			return true
		}
	}

	return false
}
