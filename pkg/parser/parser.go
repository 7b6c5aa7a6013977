// Package parser provides a lexer and recursive-descent parser for the TPTP
// and TSTP languages, covering clause normal form (cnf), unsorted first-order
// logic (fof), sorted first-order logic with and without rank-1 polymorphism
// (tff) and quantified modal logic (qmf).  Documents parsed by this package
// render back to well-formed TPTP via their String methods.
package parser

import (
	"fmt"
	"math/big"

	"github.com/twistedduck/tptp/pkg/ast"
	"github.com/twistedduck/tptp/pkg/util"
	"github.com/twistedduck/tptp/pkg/util/source"
	"github.com/twistedduck/tptp/pkg/util/source/lex"
)

// ParseTPTP parses a TPTP problem file into a sequence of units, along with a
// source map recording the span each unit occupies in the original text.
func ParseTPTP(srcfile *source.File) (ast.TPTP, *source.Map[uint], []source.SyntaxError) {
	var document ast.TPTP
	// Lex the source file
	tokens, errs := Lex(*srcfile)
	//
	if len(errs) > 0 {
		return document, nil, errs
	}
	//
	parser := NewParser(srcfile, stripComments(tokens))
	document.Units, errs = parser.parseUnits()
	//
	return document, parser.srcmap, errs
}

// ParseTPTPString parses a TPTP problem given as a string.
func ParseTPTPString(text string) (ast.TPTP, []source.SyntaxError) {
	document, _, errs := ParseTPTP(source.NewSourceFile("", []byte(text)))
	//
	return document, errs
}

// ParseTSTP parses a TSTP derivation file: an optional SZS header held in the
// leading comments, followed by a sequence of units.
func ParseTSTP(srcfile *source.File) (ast.TSTP, *source.Map[uint], []source.SyntaxError) {
	var document ast.TSTP
	// Lex the source file
	tokens, errs := Lex(*srcfile)
	//
	if len(errs) > 0 {
		return document, nil, errs
	}
	// Scan leading comments for the SZS header before discarding them.
	document.SZS = scanSZS(srcfile, tokens)
	//
	parser := NewParser(srcfile, stripComments(tokens))
	document.Units, errs = parser.parseUnits()
	//
	return document, parser.srcmap, errs
}

// ParseTSTPString parses a TSTP derivation given as a string.
func ParseTSTPString(text string) (ast.TSTP, []source.SyntaxError) {
	document, _, errs := ParseTSTP(source.NewSourceFile("", []byte(text)))
	//
	return document, errs
}

// Parser is a recursive-descent parser operating over a lexed token stream.
// Ambiguous corners of the grammar are resolved by backtracking, simply by
// rewinding the token index.
type Parser struct {
	srcfile *source.File
	tokens  []lex.Token
	// Mapping from unit ordinals to the spans those units occupy.
	srcmap *source.Map[uint]
	// Position within the token stream
	index int
	// Stack of grammar labels used to contextualise syntax errors.
	labels []string
}

// NewParser constructs a parser over a given stream of tokens.
func NewParser(srcfile *source.File, tokens []lex.Token) *Parser {
	// Construct initial source mapping
	srcmap := source.NewSourceMap[uint](*srcfile)
	// Construct parser
	return &Parser{srcfile, tokens, srcmap, 0, nil}
}

// parseUnits parses a sequence of units running to the end of the input.
func (p *Parser) parseUnits() ([]ast.Unit, []source.SyntaxError) {
	var units []ast.Unit
	//
	for p.lookahead().Kind != END_OF {
		var (
			start      = p.index
			unit, errs = p.parseUnit()
		)
		//
		if len(errs) > 0 {
			return nil, errs
		}
		// Map unit ordinal back to its span
		p.srcmap.Put(uint(len(units)), p.spanOf(start, p.index-1))
		//
		units = append(units, unit)
	}
	//
	return units, nil
}

// parseUnit parses a single include directive or annotated unit.
func (p *Parser) parseUnit() (ast.Unit, []source.SyntaxError) {
	p.enter("unit")
	defer p.exit()
	//
	var lookahead = p.lookahead()
	//
	if lookahead.Kind != LOWER_WORD {
		return nil, p.syntaxErrors(lookahead, "expecting unit")
	}
	//
	switch p.string(lookahead) {
	case "include":
		return p.parseInclude()
	case "cnf", "fof", "tff", "qmf":
		return p.parseAnnotatedUnit(ast.Language(p.string(lookahead)))
	default:
		return nil, p.syntaxErrors(lookahead, "unknown language")
	}
}

// parseInclude parses an include directive, with an optional selection of
// named units to include.
func (p *Parser) parseInclude() (ast.Unit, []source.SyntaxError) {
	p.enter("include")
	defer p.exit()
	//
	var (
		include ast.Include
		errs    []source.SyntaxError
	)
	// Advance past "include"
	p.match(LOWER_WORD)
	//
	if _, errs = p.expect(LPAREN); len(errs) > 0 {
		return nil, errs
	}
	//
	if include.File, errs = p.parseAtom(); len(errs) > 0 {
		return nil, errs
	}
	// Parse optional unit-name selection
	if p.match(COMMA) {
		var names []ast.UnitName
		//
		if _, errs = p.expect(LBRACKET); len(errs) > 0 {
			return nil, errs
		}
		// Selections are never empty
		for len(names) == 0 || p.match(COMMA) {
			var name ast.UnitName
			//
			if name, errs = p.parseUnitName(); len(errs) > 0 {
				return nil, errs
			}
			//
			names = append(names, name)
		}
		//
		if _, errs = p.expect(RBRACKET); len(errs) > 0 {
			return nil, errs
		}
		//
		include.Selection = util.Some(names)
	}
	//
	if _, errs = p.expect(RPAREN); len(errs) > 0 {
		return nil, errs
	}
	//
	if _, errs = p.expect(DOT); len(errs) > 0 {
		return nil, errs
	}
	//
	return include, nil
}

// parseAnnotatedUnit parses an annotated unit in the given language: a name,
// a declaration and an optional provenance annotation, wrapped in parentheses
// and terminated by a dot.
func (p *Parser) parseAnnotatedUnit(language ast.Language) (ast.Unit, []source.SyntaxError) {
	var (
		unit ast.AnnotatedUnit
		errs []source.SyntaxError
	)
	// Advance past language keyword
	p.match(LOWER_WORD)
	//
	if _, errs = p.expect(LPAREN); len(errs) > 0 {
		return nil, errs
	}
	//
	if unit.Name, errs = p.parseUnitName(); len(errs) > 0 {
		return nil, errs
	}
	//
	if _, errs = p.expect(COMMA); len(errs) > 0 {
		return nil, errs
	}
	//
	if unit.Declaration, errs = p.parseDeclaration(language); len(errs) > 0 {
		return nil, errs
	}
	// Parse optional provenance annotation
	if p.match(COMMA) {
		var annotation ast.Annotation
		//
		if annotation, errs = p.parseAnnotation(); len(errs) > 0 {
			return nil, errs
		}
		//
		unit.Annotation = util.Some(annotation)
	}
	//
	if _, errs = p.expect(RPAREN); len(errs) > 0 {
		return nil, errs
	}
	//
	if _, errs = p.expect(DOT); len(errs) > 0 {
		return nil, errs
	}
	//
	return unit, nil
}

// parseUnitName parses the name of a unit: either an atom, or an integer.
func (p *Parser) parseUnitName() (ast.UnitName, []source.SyntaxError) {
	var lookahead = p.lookahead()
	//
	switch lookahead.Kind {
	case INTEGER:
		p.match(INTEGER)
		//
		return util.Right[ast.Atom](p.bigint(lookahead)), nil
	case LOWER_WORD, SINGLE_QUOTED:
		atom, errs := p.parseAtom()
		//
		if len(errs) > 0 {
			return ast.UnitName{}, errs
		}
		//
		return util.Left[ast.Atom, *big.Int](atom), nil
	default:
		return ast.UnitName{}, p.syntaxErrors(lookahead, "expecting unit name")
	}
}

// parseDeclaration parses the declaration of a unit: a role and a formula or,
// in the sorted languages only, a type declaration.
func (p *Parser) parseDeclaration(language ast.Language) (ast.Declaration, []source.SyntaxError) {
	tok, errs := p.expect(LOWER_WORD)
	//
	if len(errs) > 0 {
		return nil, errs
	}
	// Type declarations only arise in sorted units
	if language == ast.LangTFF && p.string(tok) == "type" {
		if _, errs = p.expect(COMMA); len(errs) > 0 {
			return nil, errs
		}
		//
		return p.parseTypeDeclaration()
	}
	//
	var declaration ast.TaggedFormula
	//
	declaration.Role = ast.Extended[ast.Role](p.string(tok))
	//
	if _, errs = p.expect(COMMA); len(errs) > 0 {
		return nil, errs
	}
	//
	if declaration.Formula, errs = p.parseFormula(language); len(errs) > 0 {
		return nil, errs
	}
	//
	return declaration, nil
}

// ============================================================================
// Helpers
// ============================================================================

// enter pushes a grammar label onto the label stack, contextualising any
// syntax errors reported before the matching exit.
func (p *Parser) enter(label string) {
	p.labels = append(p.labels, label)
}

// exit pops the most recently entered grammar label.
func (p *Parser) exit() {
	p.labels = p.labels[:len(p.labels)-1]
}

// lookahead returns the next token without consuming it.  Observe this is
// always safe since the stream is terminated by an END_OF token which is
// never consumed.
func (p *Parser) lookahead() lex.Token {
	return p.tokens[p.index]
}

// match attempts to consume a token of the given kind, returning true if
// successful.
func (p *Parser) match(kind uint) bool {
	if p.lookahead().Kind == kind {
		p.index++
		//
		return true
	}
	//
	return false
}

// matchDollarWord attempts to consume a dollar word with the given text,
// returning true if successful.
func (p *Parser) matchDollarWord(text string) bool {
	var lookahead = p.lookahead()
	//
	if lookahead.Kind == DOLLAR_WORD && p.string(lookahead) == text {
		p.index++
		//
		return true
	}
	//
	return false
}

// expect consumes the next token, which must be of the given kind otherwise
// an error is reported.
func (p *Parser) expect(kind uint) (lex.Token, []source.SyntaxError) {
	var lookahead = p.lookahead()
	//
	if lookahead.Kind != kind {
		return lookahead, p.syntaxErrors(lookahead, "unexpected token")
	}
	//
	p.index++
	//
	return lookahead, nil
}

// follows checks whether tokens of the given kinds occur (in sequence) at the
// current position.
func (p *Parser) follows(kinds ...uint) bool {
	if p.index+len(kinds) > len(p.tokens) {
		return false
	}
	//
	for i, kind := range kinds {
		if p.tokens[p.index+i].Kind != kind {
			return false
		}
	}
	//
	return true
}

// parseKeyword consumes a lower word which must match the given keyword.
func (p *Parser) parseKeyword(keyword string) []source.SyntaxError {
	tok, errs := p.expect(LOWER_WORD)
	//
	if len(errs) > 0 {
		return errs
	} else if p.string(tok) != keyword {
		return p.syntaxErrors(tok, fmt.Sprintf("expected \"%s\"", keyword))
	}
	//
	return nil
}

// string returns the raw text of a given token.
func (p *Parser) string(token lex.Token) string {
	var (
		start = token.Span.Start()
		end   = token.Span.End()
	)
	//
	return string(p.srcfile.Contents()[start:end])
}

// bigint returns the numeric value of a given (signed) integer token.
func (p *Parser) bigint(token lex.Token) *big.Int {
	var number big.Int
	//
	number.SetString(p.string(token), 10)
	//
	return &number
}

// spanOf constructs a span covering a given (inclusive) range of tokens.
func (p *Parser) spanOf(firstToken int, lastToken int) source.Span {
	var (
		first = p.tokens[firstToken]
		last  = p.tokens[lastToken]
	)
	//
	return source.NewSpan(first.Span.Start(), last.Span.End())
}

// syntaxErrors constructs a syntax error at a given token, contextualised by
// the active grammar labels (innermost first).
func (p *Parser) syntaxErrors(token lex.Token, msg string) []source.SyntaxError {
	var context []string
	//
	for i := len(p.labels) - 1; i >= 0; i-- {
		context = append(context, p.labels[i])
	}
	//
	return []source.SyntaxError{*p.srcfile.SyntaxError(token.Span, msg, context...)}
}

// stripComments removes line and block comments from a token stream, since
// they play no part in the grammar itself.
func stripComments(tokens []lex.Token) []lex.Token {
	return util.RemoveMatching(tokens, func(token lex.Token) bool {
		return token.Kind == LINE_COMMENT || token.Kind == BLOCK_COMMENT
	})
}
