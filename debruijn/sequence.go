package debruijn

import (
	"strconv"
	"strings"
)

// Extend returns a new sequence equal to seq followed by its first m symbols,
// taken cyclically when m > len(seq). Testbenches append n (or 2n) symbols so
// that the last windows and any look-ahead read past the end stay defined.
// seq itself is never modified; m <= 0 yields a plain copy.
func Extend(seq Sequence, m int) Sequence {
	if m < 0 || len(seq) == 0 {
		m = 0
	}
	out := make(Sequence, len(seq), len(seq)+m)
	copy(out, seq)
	for i := 0; i < m; i++ {
		out = append(out, seq[i%len(seq)])
	}

	return out
}

// Pattern returns the testbench pattern for B(k, n) in two stages: the cycle
// closed with its own first n symbols, then the first margin symbols of that
// closed sequence appended to it.
//
//	Pattern(2, 3, 6) == [0 0 0 1 0 1 1 1 0 0 0 0 0 0 1 0 1]
//
// Errors are those of Generate.
func Pattern(k, n, margin int) (Sequence, error) {
	seq, err := Generate(k, n)
	if err != nil {
		return nil, err
	}

	return Extend(Extend(seq, n), margin), nil
}

// CountWindows reads seq cyclically and counts each length-n window.
// Keys are comma-joined symbol codes, e.g. "0,1,1".
// Returns nil when seq is empty or n < 1.
func CountWindows(seq Sequence, n int) map[string]int {
	if len(seq) == 0 || n < MinWindow {
		return nil
	}

	counts := make(map[string]int, len(seq))
	var sb strings.Builder
	for i := range seq {
		sb.Reset()
		for j := 0; j < n; j++ {
			if j > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.Itoa(seq[(i+j)%len(seq)]))
		}
		counts[sb.String()]++
	}

	return counts
}

// IsDeBruijn reports whether seq is a cyclic de Bruijn sequence B(k, n):
// length k^n, symbols in [0, k), and every window occurring exactly once.
func IsDeBruijn(seq Sequence, k, n int) bool {
	if k < MinAlphabet || n < MinWindow {
		return false
	}
	total, ok := power(k, n)
	if !ok || len(seq) != total {
		return false
	}
	for _, s := range seq {
		if s < 0 || s >= k {
			return false
		}
	}

	// Windows are encoded as base-k integers in [0, k^n).
	seen := make([]bool, total)
	for i := range seq {
		code := 0
		for j := 0; j < n; j++ {
			code = code*k + seq[(i+j)%total]
		}
		if seen[code] {
			return false
		}
		seen[code] = true
	}

	return true
}
