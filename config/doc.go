// Package config holds the YAML run configuration of the stimulus
// generator.
//
// A Run names the mode (digital or analog), the de Bruijn parameters, the
// timing and the rail names. Durations and amplitude are Value fields and
// accept either plain numbers or SPICE engineering strings:
//
//	mode: digital
//	alphabet: 2
//	window: 3
//	margin: 6
//	timing:
//	  bit_time: 10n
//	  interval: 55n
//	  delay: 5n
//	  rise_time: 300p
//	  setup_margin: 2n
//	rail:
//	  select_low: ileak
//	  select_high: ihold
//	  supply: xvcc
//	output: .
//
// Fields missing from a file keep their Default values. Unknown fields are
// rejected.
package config
