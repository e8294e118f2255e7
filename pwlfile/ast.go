package pwlfile

// pwlText is the parse tree of a whole file.
type pwlText struct {
	Points []*point `parser:"@@*"`
}

// point is one "time value" pair.
type point struct {
	Time  string `parser:"@Number"`
	Value *value `parser:"@@"`
}

// value holds exactly one of its alternatives.
type value struct {
	Number *string `parser:"  @Number"`
	Quoted *string `parser:"| @Quoted"`
	Ident  *string `parser:"| @Ident"`
}
