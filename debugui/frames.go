package debugui

// FrameHistory is a fixed-size ring of frame times in milliseconds.
type FrameHistory struct {
	samples []float32
	next    int
	filled  bool
}

func NewFrameHistory(size int) *FrameHistory {
	return &FrameHistory{samples: make([]float32, size)}
}

func (h *FrameHistory) Push(ms float32) {
	h.samples[h.next] = ms
	h.next = (h.next + 1) % len(h.samples)
	if h.next == 0 {
		h.filled = true
	}
}

// Len is the number of samples recorded, up to the ring size.
func (h *FrameHistory) Len() int {
	if h.filled {
		return len(h.samples)
	}
	return h.next
}

// Average of the recorded samples, or zero when empty.
func (h *FrameHistory) Average() float32 {
	n := h.Len()
	if n == 0 {
		return 0
	}
	var sum float32
	for _, s := range h.Ordered() {
		sum += s
	}
	return sum / float32(n)
}

// Ordered returns the recorded samples oldest first.
func (h *FrameHistory) Ordered() []float32 {
	if !h.filled {
		out := make([]float32, h.next)
		copy(out, h.samples[:h.next])
		return out
	}
	out := make([]float32, len(h.samples))
	n := copy(out, h.samples[h.next:])
	copy(out[n:], h.samples[:h.next])
	return out
}
