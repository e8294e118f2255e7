package debruijn

import "errors"

// MaxLength bounds k^n. Testbench patterns are tens of thousands of symbols;
// the limit only guards against accidental exponent blow-ups.
const MaxLength = 1 << 24

// MinAlphabet is the smallest alphabet that admits a de Bruijn sequence with
// more than one distinct window.
const MinAlphabet = 2

// MinWindow is the smallest window length.
const MinWindow = 1

// MethodGenerate prefixes errors returned by Generate.
const MethodGenerate = "Generate"

var (
	// ErrAlphabetTooSmall is returned when k < MinAlphabet.
	ErrAlphabetTooSmall = errors.New("debruijn: alphabet size must be at least 2")

	// ErrWindowTooShort is returned when n < MinWindow.
	ErrWindowTooShort = errors.New("debruijn: window length must be at least 1")

	// ErrSequenceTooLong is returned when k^n exceeds MaxLength.
	ErrSequenceTooLong = errors.New("debruijn: sequence length exceeds MaxLength")
)

// Sequence is an ordered list of symbol codes in [0, k).
// A Sequence returned by Generate is never modified by this package afterwards.
type Sequence []int

// frame is one activation of the db(t, p) search.
// next is the next candidate symbol for a[t]; -1 means the frame has not yet
// taken its inherited branch a[t] = a[t-p].
type frame struct {
	t    int
	p    int
	next int
}
