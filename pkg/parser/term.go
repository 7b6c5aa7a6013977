package parser

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/twistedduck/tptp/pkg/ast"
	"github.com/twistedduck/tptp/pkg/util"
	"github.com/twistedduck/tptp/pkg/util/source"
	"github.com/twistedduck/tptp/pkg/util/source/lex"
)

// parseAtom parses an atom: either a lower word, or an arbitrary single
// quoted string.
func (p *Parser) parseAtom() (ast.Atom, []source.SyntaxError) {
	var lookahead = p.lookahead()
	//
	switch lookahead.Kind {
	case LOWER_WORD:
		p.match(LOWER_WORD)
		//
		return ast.Atom(p.string(lookahead)), nil
	case SINGLE_QUOTED:
		p.match(SINGLE_QUOTED)
		//
		return ast.Atom(unquote(p.string(lookahead))), nil
	default:
		return "", p.syntaxErrors(lookahead, "expecting atom")
	}
}

// parseVar parses a variable (i.e. an upper word).
func (p *Parser) parseVar() (ast.Var, []source.SyntaxError) {
	tok, errs := p.expect(UPPER_WORD)
	//
	if len(errs) > 0 {
		return "", errs
	}
	//
	return ast.Var(p.string(tok)), nil
}

// parseName parses a name drawn from the vocabulary T: either a reserved
// name marked by a leading "$", or a user-defined atom.
func parseName[T ast.Named[T]](p *Parser) (ast.Name[T], []source.SyntaxError) {
	var lookahead = p.lookahead()
	//
	if lookahead.Kind == DOLLAR_WORD {
		p.match(DOLLAR_WORD)
		// Strip the leading marker
		return ast.ReservedName(ast.Extended[T](p.string(lookahead)[1:])), nil
	}
	//
	atom, errs := p.parseAtom()
	//
	if len(errs) > 0 {
		return ast.Name[T]{}, errs
	}
	//
	return ast.DefinedName[T](atom), nil
}

// parseTerm parses a first-order term: a variable, a distinct object, a
// number, or a function applied to zero or more arguments.  Redundant
// parentheses are tolerated (and discarded).
func (p *Parser) parseTerm() (ast.Term, []source.SyntaxError) {
	p.enter("term")
	defer p.exit()
	//
	var lookahead = p.lookahead()
	//
	switch lookahead.Kind {
	case LPAREN:
		// Discard redundant parentheses
		p.match(LPAREN)
		//
		term, errs := p.parseTerm()
		//
		if len(errs) > 0 {
			return nil, errs
		}
		//
		if _, errs = p.expect(RPAREN); len(errs) > 0 {
			return nil, errs
		}
		//
		return term, nil
	case UPPER_WORD:
		p.match(UPPER_WORD)
		//
		return ast.Var(p.string(lookahead)), nil
	case DOUBLE_QUOTED:
		p.match(DOUBLE_QUOTED)
		//
		return ast.DistinctObject(unquote(p.string(lookahead))), nil
	case INTEGER, RATIONAL, REAL:
		return p.parseNumber()
	case LOWER_WORD, SINGLE_QUOTED, DOLLAR_WORD:
		name, errs := parseName[ast.Function](p)
		//
		if len(errs) > 0 {
			return nil, errs
		}
		//
		arguments, errs := p.parseOptionalArguments()
		//
		if len(errs) > 0 {
			return nil, errs
		}
		//
		return ast.Application{Name: name, Arguments: arguments}, nil
	default:
		return nil, p.syntaxErrors(lookahead, "expecting term")
	}
}

// parseOptionalArguments parses a parenthesised list of term arguments, or
// nothing at all.  Argument lists are never empty.
func (p *Parser) parseOptionalArguments() ([]ast.Term, []source.SyntaxError) {
	var (
		arguments []ast.Term
		term      ast.Term
		errs      []source.SyntaxError
	)
	//
	if !p.match(LPAREN) {
		return nil, nil
	}
	//
	for len(arguments) == 0 || p.match(COMMA) {
		if term, errs = p.parseTerm(); len(errs) > 0 {
			return nil, errs
		}
		//
		arguments = append(arguments, term)
	}
	//
	if _, errs = p.expect(RPAREN); len(errs) > 0 {
		return nil, errs
	}
	//
	return arguments, nil
}

// parseNumber parses an integer, rational or real number.
func (p *Parser) parseNumber() (ast.Number, []source.SyntaxError) {
	var lookahead = p.lookahead()
	//
	switch lookahead.Kind {
	case INTEGER:
		p.match(INTEGER)
		//
		return ast.Integer{Value: p.bigint(lookahead)}, nil
	case RATIONAL:
		p.match(RATIONAL)
		//
		return p.rational(lookahead)
	case REAL:
		p.match(REAL)
		//
		return p.real(lookahead), nil
	default:
		return nil, p.syntaxErrors(lookahead, "expecting number")
	}
}

// rational constructs the number denoted by a rational token.  Rationals are
// left unreduced, but a zero denominator is rejected outright.
func (p *Parser) rational(token lex.Token) (ast.Number, []source.SyntaxError) {
	var (
		text = p.string(token)
		k    = strings.IndexByte(text, '/')
		//
		numerator   big.Int
		denominator big.Int
	)
	//
	numerator.SetString(text[:k], 10)
	denominator.SetString(text[k+1:], 10)
	//
	if denominator.Sign() == 0 {
		return nil, p.syntaxErrors(token, "rational has zero denominator")
	}
	//
	return ast.Rational{Numerator: &numerator, Denominator: &denominator}, nil
}

// real constructs the number denoted by a real token, normalising it into a
// coefficient and (base ten) exponent.  Any fractional digits are folded into
// the exponent and, when the exponent comes to zero, the result is simply an
// integer.
func (p *Parser) real(token lex.Token) ast.Number {
	var (
		text     = p.string(token)
		mantissa = text
		exponent = 0
	)
	// Split off any explicit exponent
	if k := strings.IndexAny(text, "eE"); k >= 0 {
		mantissa = text[:k]
		exponent, _ = strconv.Atoi(text[k+1:])
	}
	// Fold any fraction into the exponent
	if k := strings.IndexByte(mantissa, '.'); k >= 0 {
		exponent -= len(mantissa) - k - 1
		mantissa = mantissa[:k] + mantissa[k+1:]
	}
	//
	var coefficient big.Int
	//
	coefficient.SetString(mantissa, 10)
	//
	if exponent == 0 {
		return ast.Integer{Value: &coefficient}
	}
	//
	return ast.Real{Coefficient: &coefficient, Exponent: exponent}
}

// parseLiteral parses a literal: an equality (or inequality) between two
// terms, or a predicate applied to zero or more arguments.  Equalities are
// tried first, since a predication is indistinguishable from the left-hand
// side of an equality until the sign is (or is not) encountered.
func (p *Parser) parseLiteral() (ast.Literal, []source.SyntaxError) {
	p.enter("literal")
	defer p.exit()
	//
	var start = p.index
	//
	if left, errs := p.parseTerm(); len(errs) == 0 {
		if sign, ok := p.parseSign(); ok {
			right, errs := p.parseTerm()
			//
			if len(errs) > 0 {
				return nil, errs
			}
			//
			return ast.Equality{Left: left, Sign: sign, Right: right}, nil
		}
	}
	// Backtrack, and retry as a predication
	p.index = start
	//
	return p.parsePredication()
}

// parsePredication parses a predicate applied to zero or more arguments.
func (p *Parser) parsePredication() (ast.Literal, []source.SyntaxError) {
	name, errs := parseName[ast.Predicate](p)
	//
	if len(errs) > 0 {
		return nil, errs
	}
	//
	arguments, errs := p.parseOptionalArguments()
	//
	if len(errs) > 0 {
		return nil, errs
	}
	//
	return ast.Predication{Name: name, Arguments: arguments}, nil
}

// parseSign attempts to consume an equality (or inequality) sign, returning
// true if successful.
func (p *Parser) parseSign() (ast.Sign, bool) {
	switch {
	case p.match(EQUALS):
		return ast.Positive, true
	case p.match(NOT_EQUALS):
		return ast.Negative, true
	default:
		return ast.Positive, false
	}
}

// parseClause parses a disjunction of signed literals.  Parenthesised nested
// clauses are permitted, and are flattened into the enclosing clause in
// order.
func (p *Parser) parseClause() (ast.Clause, []source.SyntaxError) {
	p.enter("clause")
	defer p.exit()
	//
	var literals []util.Pair[ast.Sign, ast.Literal]
	//
	for len(literals) == 0 || p.match(VLINE) {
		subclause, errs := p.parseSubClause()
		//
		if len(errs) > 0 {
			return ast.Clause{}, errs
		}
		// Flatten into enclosing clause
		literals = append(literals, subclause...)
	}
	//
	return ast.NewClause(literals), nil
}

// parseSubClause parses a single disjunct of a clause: a signed literal, or a
// parenthesised nested clause.
func (p *Parser) parseSubClause() ([]util.Pair[ast.Sign, ast.Literal], []source.SyntaxError) {
	var start = p.index
	// Negated literal
	if p.match(TILDE) {
		literal, errs := p.parseNegatedLiteral()
		//
		if len(errs) > 0 {
			return nil, errs
		}
		//
		return []util.Pair[ast.Sign, ast.Literal]{util.NewPair(ast.Negative, literal)}, nil
	}
	// Try a literal first, since a parenthesised term could be opening an
	// equality.
	if literal, errs := p.parseLiteral(); len(errs) == 0 {
		return []util.Pair[ast.Sign, ast.Literal]{util.NewPair(ast.Positive, literal)}, nil
	}
	// Backtrack, and retry as a parenthesised nested clause
	p.index = start
	//
	if p.match(LPAREN) {
		clause, errs := p.parseClause()
		//
		if len(errs) > 0 {
			return nil, errs
		}
		//
		if _, errs = p.expect(RPAREN); len(errs) > 0 {
			return nil, errs
		}
		//
		return clause.Literals, nil
	}
	//
	return nil, p.syntaxErrors(p.lookahead(), "expecting literal")
}

// parseNegatedLiteral parses the literal following a negation, tolerating one
// layer of redundant parentheses around it.
func (p *Parser) parseNegatedLiteral() (ast.Literal, []source.SyntaxError) {
	if p.match(LPAREN) {
		literal, errs := p.parseLiteral()
		//
		if len(errs) > 0 {
			return nil, errs
		}
		//
		if _, errs = p.expect(RPAREN); len(errs) > 0 {
			return nil, errs
		}
		//
		return literal, nil
	}
	//
	return p.parseLiteral()
}

// unquote strips the enclosing quotes from a quoted token, undoing any
// escaping of the quote character and backslash.
func unquote(text string) string {
	var builder strings.Builder
	// Strip enclosing quotes
	text = text[1 : len(text)-1]
	//
	for i := 0; i < len(text); i++ {
		if text[i] == '\\' {
			i++
		}
		//
		builder.WriteByte(text[i])
	}
	//
	return builder.String()
}
