package parser

import (
	"github.com/twistedduck/tptp/pkg/ast"
	"github.com/twistedduck/tptp/pkg/util/source"
)

// parseTypeDeclaration parses the body of a type declaration: a symbol name
// and, after a colon, either a sort-constructor signature or the type of the
// symbol.
func (p *Parser) parseTypeDeclaration() (ast.Declaration, []source.SyntaxError) {
	var (
		name ast.Atom
		errs []source.SyntaxError
	)
	// Discard redundant parentheses around the whole declaration
	if p.match(LPAREN) {
		declaration, errs := p.parseTypeDeclaration()
		//
		if len(errs) > 0 {
			return nil, errs
		}
		//
		if _, errs = p.expect(RPAREN); len(errs) > 0 {
			return nil, errs
		}
		//
		return declaration, nil
	}
	//
	if name, errs = p.parseAtom(); len(errs) > 0 {
		return nil, errs
	}
	//
	if _, errs = p.expect(COLON); len(errs) > 0 {
		return nil, errs
	}
	// Try a sort-constructor signature first
	var start = p.index
	//
	if arity, ok := p.parseSortSignature(); ok {
		return ast.SortDeclaration{Name: name, Arity: arity}, nil
	}
	// Backtrack, and retry as a symbol typing
	p.index = start
	//
	typ, errs := p.parseType()
	//
	if len(errs) > 0 {
		return nil, errs
	}
	//
	return ast.Typing{Name: name, Type: typ}, nil
}

// parseSortSignature attempts to parse a sort-constructor signature,
// returning its arity if successful.  Signatures take one of three shapes:
// "$tType", "$tType > $tType", or "($tType * ... * $tType) > $tType".
func (p *Parser) parseSortSignature() (uint, bool) {
	var arity uint
	//
	switch {
	case p.matchDollarWord("$tType"):
		// nullary (or unary, see below)
	case p.match(LPAREN):
		for arity == 0 || p.match(STAR) {
			if !p.matchDollarWord("$tType") {
				return 0, false
			}
			//
			arity++
		}
		//
		if !p.match(RPAREN) || !p.match(ARROW) || !p.matchDollarWord("$tType") {
			return 0, false
		}
	default:
		return 0, false
	}
	// An apparently nullary signature may yet be the argument of a unary one
	if arity == 0 && p.match(ARROW) {
		if !p.matchDollarWord("$tType") {
			return 0, false
		}
		//
		return 1, true
	}
	//
	return arity, true
}

// parseType parses the type of a symbol: an optional sort-variable prefix,
// followed by a (possibly degenerate) mapping.  Types without sort variables
// are downgraded to the monomorphic representation where possible.
func (p *Parser) parseType() (ast.Type, []source.SyntaxError) {
	p.enter("type")
	defer p.exit()
	//
	var (
		variables []ast.Var
		errs      []source.SyntaxError
	)
	// Parse optional sort-variable prefix
	if p.match(TYPE_QUANT) {
		if variables, errs = p.parseSortVariables(); len(errs) > 0 {
			return nil, errs
		}
	}
	//
	arguments, result, errs := p.parseMapping()
	//
	if len(errs) > 0 {
		return nil, errs
	}
	//
	return ast.NewType(variables, arguments, result), nil
}

// parseSortVariables parses the sort-variable prefix of a polymorphic type: a
// non-empty bracketed list of variables, each annotated with the sort of
// sorts, followed by a colon.
func (p *Parser) parseSortVariables() ([]ast.Var, []source.SyntaxError) {
	var (
		variables []ast.Var
		variable  ast.Var
		errs      []source.SyntaxError
	)
	//
	if _, errs = p.expect(LBRACKET); len(errs) > 0 {
		return nil, errs
	}
	// Variable lists are never empty
	for len(variables) == 0 || p.match(COMMA) {
		if variable, errs = p.parseVar(); len(errs) > 0 {
			return nil, errs
		}
		//
		if _, errs = p.expect(COLON); len(errs) > 0 {
			return nil, errs
		}
		// Each variable is annotated with the sort of sorts
		if !p.matchDollarWord("$tType") {
			return nil, p.syntaxErrors(p.lookahead(), "expecting $tType")
		}
		//
		variables = append(variables, variable)
	}
	//
	if _, errs = p.expect(RBRACKET); len(errs) > 0 {
		return nil, errs
	}
	//
	if _, errs = p.expect(COLON); len(errs) > 0 {
		return nil, errs
	}
	//
	return variables, nil
}

// parseMapping parses a mapping: an argument group followed by an arrow and a
// result sort, a lone sort, or a parenthesised mapping.
func (p *Parser) parseMapping() ([]ast.TFF1Sort, ast.TFF1Sort, []source.SyntaxError) {
	var start = p.index
	// Attempt an argument group followed by an arrow
	arguments, errs := p.parseArgumentGroup()
	//
	if len(errs) == 0 {
		if p.match(ARROW) {
			result, errs := p.parseSort()
			//
			if len(errs) > 0 {
				return nil, nil, errs
			}
			//
			return arguments, result, nil
		}
		// Without an arrow, a lone sort stands for itself
		if len(arguments) == 1 {
			return nil, arguments[0], nil
		}
	}
	// Backtrack, and retry as a parenthesised mapping
	p.index = start
	//
	if p.match(LPAREN) {
		arguments, result, errs := p.parseMapping()
		//
		if len(errs) > 0 {
			return nil, nil, errs
		}
		//
		if _, errs = p.expect(RPAREN); len(errs) > 0 {
			return nil, nil, errs
		}
		//
		return arguments, result, nil
	}
	//
	return nil, nil, errs
}

// parseArgumentGroup parses the argument sorts of a mapping: either a single
// sort, or a parenthesised group of sorts separated by stars.
func (p *Parser) parseArgumentGroup() ([]ast.TFF1Sort, []source.SyntaxError) {
	var (
		arguments []ast.TFF1Sort
		sort      ast.TFF1Sort
		errs      []source.SyntaxError
	)
	//
	if p.match(LPAREN) {
		for len(arguments) == 0 || p.match(STAR) {
			if sort, errs = p.parseSort(); len(errs) > 0 {
				return nil, errs
			}
			//
			arguments = append(arguments, sort)
		}
		//
		if _, errs = p.expect(RPAREN); len(errs) > 0 {
			return nil, errs
		}
		//
		return arguments, nil
	}
	//
	if sort, errs = p.parseSort(); len(errs) > 0 {
		return nil, errs
	}
	//
	return []ast.TFF1Sort{sort}, nil
}

// parseSort parses a first-order sort: a sort variable, or a sort constructor
// applied to zero or more sort arguments.  Redundant parentheses are
// tolerated (and discarded).
func (p *Parser) parseSort() (ast.TFF1Sort, []source.SyntaxError) {
	p.enter("sort")
	defer p.exit()
	//
	var lookahead = p.lookahead()
	//
	switch lookahead.Kind {
	case LPAREN:
		// Discard redundant parentheses
		p.match(LPAREN)
		//
		sort, errs := p.parseSort()
		//
		if len(errs) > 0 {
			return nil, errs
		}
		//
		if _, errs = p.expect(RPAREN); len(errs) > 0 {
			return nil, errs
		}
		//
		return sort, nil
	case UPPER_WORD:
		p.match(UPPER_WORD)
		//
		return ast.SortVariable{Variable: ast.Var(p.string(lookahead))}, nil
	case LOWER_WORD, SINGLE_QUOTED, DOLLAR_WORD:
		name, errs := parseName[ast.Sort](p)
		//
		if len(errs) > 0 {
			return nil, errs
		}
		//
		arguments, errs := p.parseSortArguments()
		//
		if len(errs) > 0 {
			return nil, errs
		}
		//
		return ast.SortApplication{Name: name, Arguments: arguments}, nil
	default:
		return nil, p.syntaxErrors(lookahead, "expecting sort")
	}
}

// parseSortArguments parses a parenthesised list of sort arguments, or
// nothing at all.  Argument lists are never empty.
func (p *Parser) parseSortArguments() ([]ast.TFF1Sort, []source.SyntaxError) {
	var (
		arguments []ast.TFF1Sort
		sort      ast.TFF1Sort
		errs      []source.SyntaxError
	)
	//
	if !p.match(LPAREN) {
		return nil, nil
	}
	//
	for len(arguments) == 0 || p.match(COMMA) {
		if sort, errs = p.parseSort(); len(errs) > 0 {
			return nil, errs
		}
		//
		arguments = append(arguments, sort)
	}
	//
	if _, errs = p.expect(RPAREN); len(errs) > 0 {
		return nil, errs
	}
	//
	return arguments, nil
}
