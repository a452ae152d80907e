package model

// History keeps the hashes of recent generations for cycle detection
type History struct {
	size   int
	hashes []string
}

func NewHistory(size int) *History {
	return &History{size: size}
}

// Push records a hash, dropping the oldest one once the history is full
func (h *History) Push(hash string) {
	h.hashes = append(h.hashes, hash)
	if len(h.hashes) > h.size {
		h.hashes = h.hashes[1:]
	}
}

// IsStagnant reports whether hash repeats one of the last three recorded states,
// which covers still lifes and oscillators of period 2 and 3.
func (h *History) IsStagnant(hash string) bool {
	if len(h.hashes) < 3 {
		return false
	}

	for i := 1; i <= 3; i++ {
		if h.hashes[len(h.hashes)-i] == hash {
			return true
		}
	}
	return false
}

// Reset forgets every recorded state
func (h *History) Reset() {
	h.hashes = nil
}
