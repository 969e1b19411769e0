package extract

// ring is a fixed-capacity buffer holding the most recently pushed lines.
// Once full, each push evicts the oldest entry.
type ring struct {
	lines []string
	head  int // index of the oldest entry
	n     int
}

func newRing(capacity int) *ring {
	return &ring{lines: make([]string, capacity)}
}

// push appends line. When the ring is full it returns the evicted oldest
// line with full=true.
func (r *ring) push(line string) (evicted string, full bool) {
	if r.n < len(r.lines) {
		r.lines[(r.head+r.n)%len(r.lines)] = line
		r.n++
		return "", false
	}
	evicted = r.lines[r.head]
	r.lines[r.head] = line
	r.head = (r.head + 1) % len(r.lines)
	return evicted, true
}

// len returns the number of retained lines.
func (r *ring) len() int { return r.n }

// at returns the i-th oldest retained line.
func (r *ring) at(i int) string {
	return r.lines[(r.head+i)%len(r.lines)]
}
