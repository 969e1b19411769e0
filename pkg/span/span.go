package span

import (
	"fmt"
	"strconv"
	"strings"
)

// Span selects a half-open range of lines using Python slicing semantics.
// A nil bound is open: a nil Begin means "from the first line", a nil End
// means "through the last line". Negative bounds count from the end of the
// input, with -1 denoting the last line.
type Span struct {
	Begin *int
	End   *int
}

// Range is a concrete half-open line range [Lo, Hi) into a zero-indexed
// sequence of lines. Lo <= Hi always holds.
type Range struct {
	Lo int
	Hi int
}

// Len returns the number of lines the range selects.
func (r Range) Len() int { return r.Hi - r.Lo }

// Empty reports whether the range selects no lines.
func (r Range) Empty() bool { return r.Lo >= r.Hi }

// Parse parses a slice specification of the form "BEGIN:END", where BEGIN
// and END are optional signed integers. ":" is the identity span (both
// bounds open).
func Parse(s string) (Span, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return Span{}, fmt.Errorf("expected BEGIN:END, got %q", s)
	}

	var sp Span
	if parts[0] != "" {
		begin, err := strconv.Atoi(parts[0])
		if err != nil {
			return Span{}, fmt.Errorf("invalid starting point %q", parts[0])
		}
		sp.Begin = &begin
	}
	if parts[1] != "" {
		end, err := strconv.Atoi(parts[1])
		if err != nil {
			return Span{}, fmt.Errorf("invalid ending point %q", parts[1])
		}
		sp.End = &end
	}
	return sp, nil
}

// Resolve maps the span onto an input of total lines, normalizing negative
// bounds and clamping both into [0, total]. A reversed pair collapses to an
// empty range rather than an error, matching slicing semantics.
func (s Span) Resolve(total int) Range {
	lo := 0
	if s.Begin != nil {
		lo = *s.Begin
		if lo < 0 {
			lo += total
		}
	}
	hi := total
	if s.End != nil {
		hi = *s.End
		if hi < 0 {
			hi += total
		}
	}

	lo = clamp(lo, 0, total)
	hi = clamp(hi, 0, total)
	if lo > hi {
		lo = hi
	}
	return Range{Lo: lo, Hi: hi}
}

// String returns the span in "[BEGIN:END]" notation, with open bounds left
// blank.
func (s Span) String() string {
	var b strings.Builder
	b.WriteByte('[')
	if s.Begin != nil {
		b.WriteString(strconv.Itoa(*s.Begin))
	}
	b.WriteByte(':')
	if s.End != nil {
		b.WriteString(strconv.Itoa(*s.End))
	}
	b.WriteByte(']')
	return b.String()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
