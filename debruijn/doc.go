// Package debruijn generates de Bruijn sequences: cyclic symbol patterns in
// which every string of length n over an alphabet of size k occurs exactly once
// as a contiguous (wraparound-inclusive) window.
//
// What:
//
//   - Generate(k, n): the canonical, lexicographically smallest de Bruijn
//     sequence B(k, n), built by concatenating Lyndon words whose length
//     divides n, enumerated in increasing order (Fredricksen–Kessler–Maiorana).
//   - Extend(seq, m): append the first m symbols so that every window can be
//     read linearly, without wrapping, by a downstream consumer.
//   - CountWindows / IsDeBruijn: cyclic window census, used to verify patterns.
//
// Why:
//
//   - A de Bruijn pattern is the shortest stimulus that drives a link through
//     every n-symbol history, which makes it the standard maximal-stress
//     pattern for signal-integrity testbenches (ISI, crosstalk, equalizer
//     training).
//
// Algorithm:
//
//	a[0..n] := 0                       // prefix array, 1-indexed
//	db(t, p):
//	  if t > n:
//	    if n mod p == 0: emit a[1..p]   // Lyndon word of length p
//	  else:
//	    a[t] = a[t-p]; db(t+1, p)
//	    for j in a[t-p]+1 .. k-1:
//	      a[t] = j; db(t+1, t)
//
// The search is run on an explicit frame stack over the prefix array rather
// than on the call stack, so the window length is bounded only by MaxLength.
//
// Complexity:
//
//   - Time:   O(k^n) (amortized constant work per emitted symbol).
//   - Memory: O(n) working state + O(k^n) output.
//
// Errors:
//
//   - ErrAlphabetTooSmall  k < 2.
//   - ErrWindowTooShort    n < 1.
//   - ErrSequenceTooLong   k^n exceeds MaxLength.
package debruijn
