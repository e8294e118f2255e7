// Package pwlfile reads and writes PWL breakpoint files.
//
// Format: one breakpoint per line, two whitespace-separated fields.
//
//	0 0
//	4.3e-09 'ileak'
//	1.43e-08 xvcc
//
// Write emits the time with six significant digits and the value as
// level.Level renders it: a number with six significant digits, or a quoted
// symbol. The reader is more permissive than the writer. It accepts SPICE
// engineering suffixes on numbers ("10n", "300ps"), bare or quoted symbols,
// and comment lines starting with '*', ';' or '#'.
//
// Parsed traces are validated with pwl.Trace.Validate, so an empty file
// yields pwl.ErrEmptyTrace and out-of-order times yield pwl.ErrNonMonotonic.
//
// FileName builds the conventional output name
// "<kind>_pwl_<k>_<n>_<tbit>_<tinterval>.txt", with times in shortest
// round-trip form ("1e-08").
package pwlfile
