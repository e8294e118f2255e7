// Package level encodes integer symbol codes into electrical levels for PWL
// stimulus files.
//
// A Level is a tagged value: either Numeric (a voltage or current in SI units)
// or Symbolic (an opaque name such as 'xvcc' that the circuit simulator binds
// to a rail or a .param). Every consumer branches on Kind explicitly; no
// arithmetic is ever attempted on a symbolic level except where two endpoints
// are the same symbol.
//
// Two encoding families are provided:
//
//   - RailEncoder: binary rail encoding for the digital (PAM-2 with delay)
//     stimulus. Select maps a code to one of two current-source names, Data
//     maps a bit to 0 or the supply rail name.
//   - PAMEncoder: linear PAM-M encoding for the analog stimulus. Code c of an
//     M-level alphabet maps to (c − (M−1)/2) / ((M−1)/2) × A, i.e. M equally
//     spaced levels spanning [−A, +A].
//
// Both satisfy Encoder.
package level
