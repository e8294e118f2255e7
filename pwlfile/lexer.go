package pwlfile

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// pwlLexer tokenizes PWL text. Number is deliberately loose about the
// suffix; units.ParseValue rejects anything that is not a SPICE multiplier.
var pwlLexer = lexer.MustSimple([]lexer.SimpleRule{
	// SPICE comment cards (*), plus ; and # line comments
	{Name: "Comment", Pattern: `[*;#][^\n]*`},

	{Name: "Whitespace", Pattern: `[\s]+`},

	// 'ileak', 'xvcc'
	{Name: "Quoted", Pattern: `'[^'\n]*'`},

	// 0, -1.5, 1e-08, 10n, 300ps, 1meg
	{Name: "Number", Pattern: `[-+]?(?:[0-9]+\.?[0-9]*|\.[0-9]+)(?:[eE][-+]?[0-9]+)?[a-zA-Z]*`},

	// bare symbol names
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_.]*`},
})
