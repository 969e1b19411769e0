package extract

import (
	"bufio"
	"fmt"
	"io"

	"slice/pkg/span"
)

// maxLineBytes caps a single logical line. Lines must never be split, so
// the cap is generous; past it the input is reported as unreadable.
const maxLineBytes = 16 * 1024 * 1024

var newline = []byte{'\n'}

// Extract reads lines from r and writes the ones selected by sp to w, each
// terminated by a single LF. Both LF and CRLF input terminators are
// recognized, and a final unterminated chunk counts as one line.
//
// The strategy depends on the span. With no negative bound the input is
// streamed forward and reading stops as soon as the upper bound is reached.
// A negative bound forces the total line count to be known first, which is
// handled with a ring of at most |bound| lines so memory stays proportional
// to the requested lookback, never to the input size.
func Extract(sp span.Span, r io.Reader, w io.Writer) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	switch {
	case sp.Begin != nil && *sp.Begin < 0:
		return extractTail(sp, sc, w)
	case sp.End != nil && *sp.End < 0:
		return extractWindow(sp, sc, w)
	default:
		return extractForward(sp, sc, w)
	}
}

// extractForward handles non-negative bounds in a single counting pass,
// holding no more than the current line. It stops consuming the input once
// the last selected line has been written.
func extractForward(sp span.Span, sc *bufio.Scanner, w io.Writer) error {
	lo := 0
	if sp.Begin != nil {
		lo = *sp.Begin
	}
	bounded := sp.End != nil
	if bounded && *sp.End <= lo {
		return nil
	}

	for i := 0; sc.Scan(); i++ {
		if i >= lo {
			if err := writeLine(w, sc.Bytes()); err != nil {
				return err
			}
		}
		if bounded && i+1 == *sp.End {
			return nil
		}
	}
	return readErr(sc)
}

// extractTail handles a negative begin. The last |begin| lines are retained
// in a ring while the total is counted; the span resolves once the input is
// exhausted. With a non-negative end, nothing past line end+|begin| can
// affect the output, so reading stops there.
func extractTail(sp span.Span, sc *bufio.Scanner, w io.Writer) error {
	k := -*sp.Begin
	buf := newRing(k)

	limit := -1
	if sp.End != nil && *sp.End >= 0 {
		limit = *sp.End + k
	}

	total := 0
	for sc.Scan() {
		buf.push(sc.Text())
		total++
		if total == limit {
			break
		}
	}
	if err := readErr(sc); err != nil {
		return err
	}

	rng := sp.Resolve(total)
	first := total - buf.len() // global index of the oldest retained line
	for i := rng.Lo; i < rng.Hi; i++ {
		if err := writeLine(w, []byte(buf.at(i-first))); err != nil {
			return err
		}
	}
	return nil
}

// extractWindow handles a non-negative begin with a negative end. After
// skipping begin lines, a window of |end| lines trails the read position;
// every line evicted from it is exactly |end| lines from the current end of
// the input and therefore part of the output.
func extractWindow(sp span.Span, sc *bufio.Scanner, w io.Writer) error {
	skip := 0
	if sp.Begin != nil {
		skip = *sp.Begin
	}
	win := newRing(-*sp.End)

	for i := 0; sc.Scan(); i++ {
		if i < skip {
			continue
		}
		if old, full := win.push(sc.Text()); full {
			if err := writeLine(w, []byte(old)); err != nil {
				return err
			}
		}
	}
	return readErr(sc)
}

func writeLine(w io.Writer, line []byte) error {
	if _, err := w.Write(line); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if _, err := w.Write(newline); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func readErr(sc *bufio.Scanner) error {
	if err := sc.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}
