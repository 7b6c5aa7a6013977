package parser

import (
	"github.com/twistedduck/tptp/pkg/ast"
	"github.com/twistedduck/tptp/pkg/util"
	"github.com/twistedduck/tptp/pkg/util/source"
)

// parseFormula parses a formula in the given language.  Sorted formulas are
// always parsed with the polymorphic grammar and subsequently downgraded to
// the monomorphic representation, provided no genuine polymorphism is
// present.
func (p *Parser) parseFormula(language ast.Language) (ast.Formula, []source.SyntaxError) {
	p.enter("formula")
	defer p.exit()
	//
	switch language {
	case ast.LangCNF:
		clause, errs := p.parseClause()
		//
		if len(errs) > 0 {
			return nil, errs
		}
		//
		return ast.CNF{Clause: clause}, nil
	case ast.LangFOF:
		formula, errs := parseFirstOrder(p, parseUnsorted)
		//
		if len(errs) > 0 {
			return nil, errs
		}
		//
		return ast.FOF{Formula: formula}, nil
	case ast.LangTFF:
		formula, errs := parseFirstOrder(p, parsePolySorted)
		//
		if len(errs) > 0 {
			return nil, errs
		}
		// Downgrade where no polymorphism present
		if mono, ok := ast.MonomorphizeFirstOrder(formula); ok {
			return ast.TFF0{Formula: mono}, nil
		}
		//
		return ast.TFF1{Formula: formula}, nil
	case ast.LangQMF:
		formula, errs := p.parseModal()
		//
		if len(errs) > 0 {
			return nil, errs
		}
		//
		return ast.QMF{Formula: formula}, nil
	default:
		panic("unreachable")
	}
}

// annotationParser parses the sort annotation (if any) attached to a
// quantified variable, and determines which first-order language is being
// parsed.
type annotationParser[S ast.SortAnnotation] func(*Parser) (S, []source.SyntaxError)

// parseUnsorted parses the (always absent) sort annotation of an unsorted
// first-order formula.
func parseUnsorted(p *Parser) (ast.Unsorted, []source.SyntaxError) {
	return ast.Unsorted{}, nil
}

// parsePolySorted parses an optional sort annotation, where the sort is
// either the sort of sorts (binding a sort variable) or an arbitrary
// polymorphic sort.
func parsePolySorted(p *Parser) (ast.PolySorted, []source.SyntaxError) {
	if !p.match(COLON) {
		return ast.PolySorted{}, nil
	}
	// Sort of sorts binds a sort variable
	if p.matchDollarWord("$tType") {
		var sort = util.Left[ast.QuantifiedSort, ast.TFF1Sort](ast.QuantifiedSort{})
		//
		return ast.PolySorted{Sort: util.Some(sort)}, nil
	}
	//
	sort, errs := p.parseSort()
	//
	if len(errs) > 0 {
		return ast.PolySorted{}, errs
	}
	//
	return ast.PolySorted{Sort: util.Some(util.Right[ast.QuantifiedSort](sort))}, nil
}

// parseFirstOrder parses a first-order formula, generic over the sort
// annotations attached to quantified variables.  Binary connectives bind the
// remaining input greedily, hence associate rightwards.
func parseFirstOrder[S ast.SortAnnotation](p *Parser,
	annotation annotationParser[S]) (ast.FirstOrder[S], []source.SyntaxError) {
	//
	left, errs := parseUnitFirstOrder(p, annotation)
	//
	if len(errs) > 0 {
		return nil, errs
	}
	//
	if connective, ok := p.parseConnective(); ok {
		right, errs := parseFirstOrder(p, annotation)
		//
		if len(errs) > 0 {
			return nil, errs
		}
		//
		return ast.Connected[S]{Left: left, Connective: connective, Right: right}, nil
	}
	//
	return left, nil
}

// parseUnitFirstOrder parses a unit formula: a quantified or negated formula,
// a literal, or a parenthesised formula.
func parseUnitFirstOrder[S ast.SortAnnotation](p *Parser,
	annotation annotationParser[S]) (ast.FirstOrder[S], []source.SyntaxError) {
	//
	var (
		start     = p.index
		lookahead = p.lookahead()
	)
	//
	switch lookahead.Kind {
	case EXCLAM, QUESTION:
		return parseQuantifiedFirstOrder(p, annotation)
	case TILDE:
		p.match(TILDE)
		// Negation binds as tightly as possible
		body, errs := parseUnitFirstOrder(p, annotation)
		//
		if len(errs) > 0 {
			return nil, errs
		}
		//
		return ast.Negated[S]{Formula: body}, nil
	}
	// Try a literal first, since a parenthesised term could be opening an
	// equality.
	if literal, errs := p.parseLiteral(); len(errs) == 0 {
		return ast.Atomic[S]{Literal: literal}, nil
	}
	// Backtrack, and retry as a parenthesised formula
	p.index = start
	//
	if p.match(LPAREN) {
		formula, errs := parseFirstOrder(p, annotation)
		//
		if len(errs) > 0 {
			return nil, errs
		}
		//
		if _, errs = p.expect(RPAREN); len(errs) > 0 {
			return nil, errs
		}
		//
		return formula, nil
	}
	//
	return nil, p.syntaxErrors(lookahead, "expecting formula")
}

// parseQuantifiedFirstOrder parses a quantified formula: a quantifier, a
// non-empty bracketed list of (annotated) variables, and a unit formula body.
func parseQuantifiedFirstOrder[S ast.SortAnnotation](p *Parser,
	annotation annotationParser[S]) (ast.FirstOrder[S], []source.SyntaxError) {
	//
	var (
		quantifier = ast.Forall
		variables  []util.Pair[ast.Var, S]
		errs       []source.SyntaxError
	)
	//
	if p.match(QUESTION) {
		quantifier = ast.Exists
	} else if _, errs = p.expect(EXCLAM); len(errs) > 0 {
		return nil, errs
	}
	//
	if _, errs = p.expect(LBRACKET); len(errs) > 0 {
		return nil, errs
	}
	// Variable lists are never empty
	for len(variables) == 0 || p.match(COMMA) {
		var (
			variable ast.Var
			sort     S
		)
		//
		if variable, errs = p.parseVar(); len(errs) > 0 {
			return nil, errs
		}
		//
		if sort, errs = annotation(p); len(errs) > 0 {
			return nil, errs
		}
		//
		variables = append(variables, util.NewPair(variable, sort))
	}
	//
	if _, errs = p.expect(RBRACKET); len(errs) > 0 {
		return nil, errs
	}
	//
	if _, errs = p.expect(COLON); len(errs) > 0 {
		return nil, errs
	}
	// Body binds as tightly as possible
	body, errs := parseUnitFirstOrder(p, annotation)
	//
	if len(errs) > 0 {
		return nil, errs
	}
	//
	return ast.Quantified[S]{Quantifier: quantifier, Variables: variables, Formula: body}, nil
}

// parseConnective attempts to consume a binary connective, returning true if
// successful.
func (p *Parser) parseConnective() (ast.Connective, bool) {
	switch {
	case p.match(AMPERSAND):
		return ast.Conjunction, true
	case p.match(VLINE):
		return ast.Disjunction, true
	case p.match(IMPLIES):
		return ast.Implication, true
	case p.match(IFF):
		return ast.Equivalence, true
	case p.match(XOR):
		return ast.ExclusiveOr, true
	case p.match(NAND):
		return ast.NegatedConjunction, true
	case p.match(NOR):
		return ast.NegatedDisjunction, true
	case p.match(IF):
		return ast.ReversedImplication, true
	default:
		return "", false
	}
}

// parseModal parses a quantified modal formula.  As for first-order formulas,
// binary connectives bind the remaining input greedily.
func (p *Parser) parseModal() (ast.QuantifiedModal, []source.SyntaxError) {
	left, errs := p.parseUnitModal()
	//
	if len(errs) > 0 {
		return nil, errs
	}
	//
	if connective, ok := p.parseConnective(); ok {
		right, errs := p.parseModal()
		//
		if len(errs) > 0 {
			return nil, errs
		}
		//
		return ast.ModalConnected{Left: left, Connective: connective, Right: right}, nil
	}
	//
	return left, nil
}

// parseUnitModal parses a unit modal formula: a quantified, negated or
// modally qualified formula, a literal, or a parenthesised formula.
func (p *Parser) parseUnitModal() (ast.QuantifiedModal, []source.SyntaxError) {
	var (
		start     = p.index
		lookahead = p.lookahead()
	)
	//
	switch lookahead.Kind {
	case EXCLAM, QUESTION:
		return p.parseQuantifiedModal()
	case TILDE:
		p.match(TILDE)
		//
		body, errs := p.parseUnitModal()
		//
		if len(errs) > 0 {
			return nil, errs
		}
		//
		return ast.ModalNegated{Formula: body}, nil
	case HASH_WORD:
		p.match(HASH_WORD)
		// Strip the leading marker
		modality := ast.Extended[ast.Modality](p.string(lookahead)[1:])
		//
		if _, errs := p.expect(COLON); len(errs) > 0 {
			return nil, errs
		}
		//
		body, errs := p.parseUnitModal()
		//
		if len(errs) > 0 {
			return nil, errs
		}
		//
		return ast.Modaled{Modality: modality, Formula: body}, nil
	}
	// Try a literal first, since a parenthesised term could be opening an
	// equality.
	if literal, errs := p.parseLiteral(); len(errs) == 0 {
		return ast.ModalAtomic{Literal: literal}, nil
	}
	// Backtrack, and retry as a parenthesised formula
	p.index = start
	//
	if p.match(LPAREN) {
		formula, errs := p.parseModal()
		//
		if len(errs) > 0 {
			return nil, errs
		}
		//
		if _, errs = p.expect(RPAREN); len(errs) > 0 {
			return nil, errs
		}
		//
		return formula, nil
	}
	//
	return nil, p.syntaxErrors(lookahead, "expecting formula")
}

// parseQuantifiedModal parses a quantified modal formula: a quantifier, a
// non-empty bracketed list of variables, and a unit formula body.
func (p *Parser) parseQuantifiedModal() (ast.QuantifiedModal, []source.SyntaxError) {
	var (
		quantifier = ast.Forall
		variables  []ast.Var
		errs       []source.SyntaxError
	)
	//
	if p.match(QUESTION) {
		quantifier = ast.Exists
	} else if _, errs = p.expect(EXCLAM); len(errs) > 0 {
		return nil, errs
	}
	//
	if _, errs = p.expect(LBRACKET); len(errs) > 0 {
		return nil, errs
	}
	// Variable lists are never empty
	for len(variables) == 0 || p.match(COMMA) {
		var variable ast.Var
		//
		if variable, errs = p.parseVar(); len(errs) > 0 {
			return nil, errs
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
	// Body binds as tightly as possible
	body, errs := p.parseUnitModal()
	//
	if len(errs) > 0 {
		return nil, errs
	}
	//
	return ast.ModalQuantified{Quantifier: quantifier, Variables: variables, Formula: body}, nil
}
