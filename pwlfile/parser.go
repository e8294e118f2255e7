package pwlfile

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/alecthomas/participle/v2"

	"github.com/katalvlaran/pamstim/level"
	"github.com/katalvlaran/pamstim/pwl"
	"github.com/katalvlaran/pamstim/units"
)

// Parser reads PWL text into a pwl.Trace.
type Parser struct {
	parser *participle.Parser[pwlText]
}

// NewParser creates a new PWL parser instance.
func NewParser() (*Parser, error) {
	parser, err := participle.Build[pwlText](
		participle.Lexer(pwlLexer),
		participle.Elide("Comment", "Whitespace"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build parser: %w", err)
	}

	return &Parser{parser: parser}, nil
}

// Parse parses PWL text from a reader.
func (p *Parser) Parse(r io.Reader) (pwl.Trace, error) {
	ast, err := p.parser.Parse("", r)
	if err != nil {
		return nil, fmt.Errorf("Parse: %w: %v", ErrSyntax, err)
	}

	return toTrace(ast)
}

// ParseString parses PWL text from a string.
func (p *Parser) ParseString(input string) (pwl.Trace, error) {
	ast, err := p.parser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("ParseString: %w: %v", ErrSyntax, err)
	}

	return toTrace(ast)
}

// ParseFile parses a PWL file from a file path.
func (p *Parser) ParseFile(filename string) (pwl.Trace, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	tr, err := p.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	return tr, nil
}

var (
	defaultOnce   sync.Once
	defaultParser *Parser
	defaultErr    error
)

// ReadFile parses filename with a shared Parser.
func ReadFile(filename string) (pwl.Trace, error) {
	defaultOnce.Do(func() {
		defaultParser, defaultErr = NewParser()
	})
	if defaultErr != nil {
		return nil, defaultErr
	}

	return defaultParser.ParseFile(filename)
}

// toTrace converts the parse tree, resolving engineering values and
// validating time order.
func toTrace(ast *pwlText) (pwl.Trace, error) {
	tr := make(pwl.Trace, 0, len(ast.Points))
	for i, pt := range ast.Points {
		t, err := units.ParseValue(pt.Time)
		if err != nil {
			return nil, fmt.Errorf("point %d: time: %w", i, err)
		}
		var v level.Level
		switch pv := pt.Value; {
		case pv.Number != nil:
			f, err := units.ParseValue(*pv.Number)
			if err != nil {
				return nil, fmt.Errorf("point %d: value: %w", i, err)
			}
			v = level.Numeric(f)
		case pv.Quoted != nil:
			name := strings.Trim(*pv.Quoted, "'")
			if name == "" {
				return nil, fmt.Errorf("point %d: empty symbol: %w", i, ErrSyntax)
			}
			v = level.Symbol(name)
		default:
			v = level.Symbol(*pv.Ident)
		}
		tr = append(tr, pwl.Breakpoint{T: t, V: v})
	}
	if err := tr.Validate(); err != nil {
		return nil, err
	}

	return tr, nil
}
