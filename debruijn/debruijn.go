package debruijn

import "fmt"

// Generate returns the canonical de Bruijn sequence B(k, n) of length k^n.
// Reading the result cyclically, every length-n string over {0..k-1} occurs
// exactly once. Equal (k, n) always yield identical sequences.
//
// Example:
//
//	seq, _ := Generate(2, 3) // [0 0 0 1 0 1 1 1]
func Generate(k, n int) (Sequence, error) {
	if k < MinAlphabet {
		return nil, fmt.Errorf("%s: k=%d: %w", MethodGenerate, k, ErrAlphabetTooSmall)
	}
	if n < MinWindow {
		return nil, fmt.Errorf("%s: n=%d: %w", MethodGenerate, n, ErrWindowTooShort)
	}
	total, ok := power(k, n)
	if !ok {
		return nil, fmt.Errorf("%s: %d^%d: %w", MethodGenerate, k, n, ErrSequenceTooLong)
	}

	out := make(Sequence, 0, total)
	a := make([]int, n+1) // a[0] stays 0 and seeds a[t-p] for t == p

	// At most one frame per prefix length t ∈ [1, n+1] is live.
	stack := make([]frame, 1, n+2)
	stack[0] = frame{t: 1, p: 1, next: -1}

	for len(stack) > 0 {
		top := len(stack) - 1
		f := stack[top]

		// Leaf: a[1..n] is complete.
		if f.t > n {
			if n%f.p == 0 {
				out = append(out, a[1:f.p+1]...)
			}
			stack = stack[:top]
			continue
		}

		inherited := a[f.t-f.p]
		switch {
		case f.next < 0:
			// Keep the current period: a[t] repeats a[t-p].
			a[f.t] = inherited
			stack[top].next = inherited + 1
			stack = append(stack, frame{t: f.t + 1, p: f.p, next: -1})
		case f.next < k:
			// Larger symbol at t starts a new period of length t.
			a[f.t] = f.next
			stack[top].next = f.next + 1
			stack = append(stack, frame{t: f.t + 1, p: f.t, next: -1})
		default:
			stack = stack[:top]
		}
	}

	return out, nil
}

// MustGenerate is like Generate but panics on invalid parameters.
// Intended for fixtures and package-level test patterns.
func MustGenerate(k, n int) Sequence {
	seq, err := Generate(k, n)
	if err != nil {
		panic(err)
	}

	return seq
}

// power returns k^n and false if the result would exceed MaxLength.
func power(k, n int) (int, bool) {
	total := 1
	for i := 0; i < n; i++ {
		if total > MaxLength/k {
			return 0, false
		}
		total *= k
	}

	return total, true
}
