package parser

import (
	"github.com/twistedduck/tptp/pkg/ast"
	"github.com/twistedduck/tptp/pkg/util"
	"github.com/twistedduck/tptp/pkg/util/source"
)

// parseAnnotation parses the provenance annotation of a unit: a source,
// followed by an optional list of useful information.
func (p *Parser) parseAnnotation() (ast.Annotation, []source.SyntaxError) {
	p.enter("annotation")
	defer p.exit()
	//
	var (
		annotation ast.Annotation
		errs       []source.SyntaxError
	)
	//
	if annotation.Source, errs = p.parseSource(); len(errs) > 0 {
		return annotation, errs
	}
	// Parse optional useful information
	if p.match(COMMA) {
		var info []ast.Info
		//
		if info, errs = p.parseInfoList(); len(errs) > 0 {
			return annotation, errs
		}
		//
		annotation.Info = util.Some(info)
	}
	//
	return annotation, nil
}

// parseSource parses the source of a unit.  Sources labelled with a keyword
// (file, theory, creator, introduced, inference) are distinguished by that
// keyword; anything else is a reference to another unit by name.
func (p *Parser) parseSource() (ast.Source, []source.SyntaxError) {
	p.enter("source")
	defer p.exit()
	//
	var lookahead = p.lookahead()
	//
	if lookahead.Kind == LOWER_WORD && p.follows(LOWER_WORD, LPAREN) {
		switch p.string(lookahead) {
		case "file":
			return p.parseFileSource()
		case "theory":
			return p.parseTheory()
		case "creator":
			return p.parseCreator()
		case "introduced":
			return p.parseIntroduced()
		case "inference":
			return p.parseInference()
		}
	} else if lookahead.Kind == LOWER_WORD && p.string(lookahead) == "unknown" {
		p.match(LOWER_WORD)
		//
		return ast.UnknownSource{}, nil
	}
	// Fall back on a unit-name reference
	name, errs := p.parseUnitName()
	//
	if len(errs) > 0 {
		return nil, errs
	}
	//
	return ast.UnitSource{Name: name}, nil
}

// parseFileSource parses a reference to a unit of an external file: the file
// name and, optionally, the name of the unit within that file.
func (p *Parser) parseFileSource() (ast.FileSource, []source.SyntaxError) {
	var (
		file ast.FileSource
		errs []source.SyntaxError
	)
	//
	if errs = p.parseKeyword("file"); len(errs) > 0 {
		return file, errs
	}
	//
	if _, errs = p.expect(LPAREN); len(errs) > 0 {
		return file, errs
	}
	//
	if file.Name, errs = p.parseAtom(); len(errs) > 0 {
		return file, errs
	}
	// Parse optional unit name
	if p.match(COMMA) {
		var name ast.UnitName
		//
		if name, errs = p.parseUnitName(); len(errs) > 0 {
			return file, errs
		}
		//
		file.Unit = util.Some(name)
	}
	//
	if _, errs = p.expect(RPAREN); len(errs) > 0 {
		return file, errs
	}
	//
	return file, nil
}

// parseTheory parses a reference to an established theory (e.g. equality),
// with optional useful information.
func (p *Parser) parseTheory() (ast.Source, []source.SyntaxError) {
	var (
		theory ast.Theory
		errs   []source.SyntaxError
	)
	//
	if errs = p.parseKeyword("theory"); len(errs) > 0 {
		return nil, errs
	}
	//
	if _, errs = p.expect(LPAREN); len(errs) > 0 {
		return nil, errs
	}
	//
	if theory.Name, errs = p.parseAtom(); len(errs) > 0 {
		return nil, errs
	}
	// Parse optional useful information
	if p.match(COMMA) {
		var info []ast.Info
		//
		if info, errs = p.parseInfoList(); len(errs) > 0 {
			return nil, errs
		}
		//
		theory.Info = util.Some(info)
	}
	//
	if _, errs = p.expect(RPAREN); len(errs) > 0 {
		return nil, errs
	}
	//
	return theory, nil
}

// parseCreator parses an attribution to the tool which created a unit, with
// optional useful information.
func (p *Parser) parseCreator() (ast.Source, []source.SyntaxError) {
	var (
		creator ast.Creator
		errs    []source.SyntaxError
	)
	//
	if errs = p.parseKeyword("creator"); len(errs) > 0 {
		return nil, errs
	}
	//
	if _, errs = p.expect(LPAREN); len(errs) > 0 {
		return nil, errs
	}
	//
	if creator.Name, errs = p.parseAtom(); len(errs) > 0 {
		return nil, errs
	}
	// Parse optional useful information
	if p.match(COMMA) {
		var info []ast.Info
		//
		if info, errs = p.parseInfoList(); len(errs) > 0 {
			return nil, errs
		}
		//
		creator.Info = util.Some(info)
	}
	//
	if _, errs = p.expect(RPAREN); len(errs) > 0 {
		return nil, errs
	}
	//
	return creator, nil
}

// parseIntroduced parses the record of a unit introduced during a derivation
// rather than derived from its parents (e.g. a definition or assumption).
func (p *Parser) parseIntroduced() (ast.Source, []source.SyntaxError) {
	var (
		introduced ast.Introduced
		errs       []source.SyntaxError
	)
	//
	if errs = p.parseKeyword("introduced"); len(errs) > 0 {
		return nil, errs
	}
	//
	if _, errs = p.expect(LPAREN); len(errs) > 0 {
		return nil, errs
	}
	//
	tok, errs := p.expect(LOWER_WORD)
	//
	if len(errs) > 0 {
		return nil, errs
	}
	//
	introduced.Kind = ast.Extended[ast.Intro](p.string(tok))
	// Parse optional useful information
	if p.match(COMMA) {
		var info []ast.Info
		//
		if info, errs = p.parseInfoList(); len(errs) > 0 {
			return nil, errs
		}
		//
		introduced.Info = util.Some(info)
	}
	//
	if _, errs = p.expect(RPAREN); len(errs) > 0 {
		return nil, errs
	}
	//
	return introduced, nil
}

// parseInference parses the record of an inference: the name of the rule
// applied, useful information about the inference (e.g. its SZS status), and
// the parents it was applied to.
func (p *Parser) parseInference() (ast.Source, []source.SyntaxError) {
	var (
		inference ast.Inference
		errs      []source.SyntaxError
	)
	//
	if errs = p.parseKeyword("inference"); len(errs) > 0 {
		return nil, errs
	}
	//
	if _, errs = p.expect(LPAREN); len(errs) > 0 {
		return nil, errs
	}
	//
	if inference.Rule, errs = p.parseAtom(); len(errs) > 0 {
		return nil, errs
	}
	//
	if _, errs = p.expect(COMMA); len(errs) > 0 {
		return nil, errs
	}
	//
	if inference.Info, errs = p.parseInfoList(); len(errs) > 0 {
		return nil, errs
	}
	//
	if _, errs = p.expect(COMMA); len(errs) > 0 {
		return nil, errs
	}
	//
	if inference.Parents, errs = p.parseParents(); len(errs) > 0 {
		return nil, errs
	}
	//
	if _, errs = p.expect(RPAREN); len(errs) > 0 {
		return nil, errs
	}
	//
	return inference, nil
}

// parseParents parses the (possibly empty) bracketed list of parents of an
// inference.  Each parent is itself a source, with optional useful
// information after a colon.
func (p *Parser) parseParents() ([]ast.Parent, []source.SyntaxError) {
	var (
		parents []ast.Parent
		errs    []source.SyntaxError
	)
	//
	if _, errs = p.expect(LBRACKET); len(errs) > 0 {
		return nil, errs
	}
	// List may be empty
	for p.lookahead().Kind != RBRACKET {
		var parent ast.Parent
		//
		if len(parents) != 0 {
			if _, errs = p.expect(COMMA); len(errs) > 0 {
				return nil, errs
			}
		}
		//
		if parent.Source, errs = p.parseSource(); len(errs) > 0 {
			return nil, errs
		}
		// Parse optional parent details
		if p.match(COLON) {
			var info []ast.Info
			//
			if info, errs = p.parseInfoList(); len(errs) > 0 {
				return nil, errs
			}
			//
			parent.Info = util.Some(info)
		}
		//
		parents = append(parents, parent)
	}
	// Advance past "]"
	p.match(RBRACKET)
	//
	return parents, nil
}

// parseInfoList parses a (possibly empty) bracketed list of useful
// information.
func (p *Parser) parseInfoList() ([]ast.Info, []source.SyntaxError) {
	var (
		items []ast.Info
		item  ast.Info
		errs  []source.SyntaxError
	)
	//
	if _, errs = p.expect(LBRACKET); len(errs) > 0 {
		return nil, errs
	}
	// List may be empty
	for p.lookahead().Kind != RBRACKET {
		if len(items) != 0 {
			if _, errs = p.expect(COMMA); len(errs) > 0 {
				return nil, errs
			}
		}
		//
		if item, errs = p.parseInfo(); len(errs) > 0 {
			return nil, errs
		}
		//
		items = append(items, item)
	}
	// Advance past "]"
	p.match(RBRACKET)
	//
	return items, nil
}

// parseInfo parses an item of useful information.  Items labelled with a
// keyword (description, iquote, status, assumptions, refutation, bind) are
// distinguished by that keyword, with general applications, lists, embedded
// expressions and numbers as the fallbacks.
func (p *Parser) parseInfo() (ast.Info, []source.SyntaxError) {
	p.enter("info")
	defer p.exit()
	//
	var lookahead = p.lookahead()
	//
	if lookahead.Kind == LOWER_WORD && p.follows(LOWER_WORD, LPAREN) {
		switch p.string(lookahead) {
		case "description":
			return p.parseDescription()
		case "iquote":
			return p.parseIQuote()
		case "status":
			return p.parseStatus()
		case "assumptions":
			return p.parseAssumptions()
		case "refutation":
			return p.parseRefutation()
		case "bind":
			return p.parseBind()
		}
	}
	//
	switch lookahead.Kind {
	case LBRACKET:
		items, errs := p.parseInfoList()
		//
		if len(errs) > 0 {
			return nil, errs
		}
		//
		return ast.GeneralList{Items: items}, nil
	case DOLLAR_WORD:
		expression, errs := p.parseExpression()
		//
		if len(errs) > 0 {
			return nil, errs
		}
		//
		return expression.(ast.Info), nil
	case INTEGER, RATIONAL, REAL:
		number, errs := p.parseNumber()
		//
		if len(errs) > 0 {
			return nil, errs
		}
		//
		return ast.InfoNumber{Value: number}, nil
	case LOWER_WORD, SINGLE_QUOTED:
		return p.parseGeneralFunction()
	default:
		return nil, p.syntaxErrors(lookahead, "expecting info")
	}
}

// parseDescription parses a description of a unit.
func (p *Parser) parseDescription() (ast.Info, []source.SyntaxError) {
	var (
		text ast.Atom
		errs []source.SyntaxError
	)
	//
	if errs = p.parseKeyword("description"); len(errs) > 0 {
		return nil, errs
	}
	//
	if _, errs = p.expect(LPAREN); len(errs) > 0 {
		return nil, errs
	}
	//
	if text, errs = p.parseAtom(); len(errs) > 0 {
		return nil, errs
	}
	//
	if _, errs = p.expect(RPAREN); len(errs) > 0 {
		return nil, errs
	}
	//
	return ast.Description{Text: text}, nil
}

// parseIQuote parses a quotation attached to a unit.
func (p *Parser) parseIQuote() (ast.Info, []source.SyntaxError) {
	var (
		text ast.Atom
		errs []source.SyntaxError
	)
	//
	if errs = p.parseKeyword("iquote"); len(errs) > 0 {
		return nil, errs
	}
	//
	if _, errs = p.expect(LPAREN); len(errs) > 0 {
		return nil, errs
	}
	//
	if text, errs = p.parseAtom(); len(errs) > 0 {
		return nil, errs
	}
	//
	if _, errs = p.expect(RPAREN); len(errs) > 0 {
		return nil, errs
	}
	//
	return ast.IQuote{Text: text}, nil
}

// parseStatus parses the SZS status of an inference.  Both the short
// (e.g. thm) and long (e.g. Theorem) forms of a status are accepted.
func (p *Parser) parseStatus() (ast.Info, []source.SyntaxError) {
	var errs []source.SyntaxError
	//
	if errs = p.parseKeyword("status"); len(errs) > 0 {
		return nil, errs
	}
	//
	if _, errs = p.expect(LPAREN); len(errs) > 0 {
		return nil, errs
	}
	//
	var lookahead = p.lookahead()
	//
	if lookahead.Kind != LOWER_WORD && lookahead.Kind != UPPER_WORD {
		return nil, p.syntaxErrors(lookahead, "expecting status value")
	}
	//
	p.match(lookahead.Kind)
	//
	value := ast.Extended[ast.Success](p.string(lookahead))
	//
	if _, errs = p.expect(RPAREN); len(errs) > 0 {
		return nil, errs
	}
	//
	return ast.Status{Value: value}, nil
}

// parseAssumptions parses the assumptions a unit rests upon: a non-empty
// bracketed list of unit names.
func (p *Parser) parseAssumptions() (ast.Info, []source.SyntaxError) {
	var (
		names []ast.UnitName
		errs  []source.SyntaxError
	)
	//
	if errs = p.parseKeyword("assumptions"); len(errs) > 0 {
		return nil, errs
	}
	//
	if _, errs = p.expect(LPAREN); len(errs) > 0 {
		return nil, errs
	}
	//
	if _, errs = p.expect(LBRACKET); len(errs) > 0 {
		return nil, errs
	}
	// Assumption lists are never empty
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
	if _, errs = p.expect(RPAREN); len(errs) > 0 {
		return nil, errs
	}
	//
	return ast.Assumptions{Names: names}, nil
}

// parseRefutation parses a reference to the refutation of a unit, held in an
// external file.
func (p *Parser) parseRefutation() (ast.Info, []source.SyntaxError) {
	var errs []source.SyntaxError
	//
	if errs = p.parseKeyword("refutation"); len(errs) > 0 {
		return nil, errs
	}
	//
	if _, errs = p.expect(LPAREN); len(errs) > 0 {
		return nil, errs
	}
	//
	file, errs := p.parseFileSource()
	//
	if len(errs) > 0 {
		return nil, errs
	}
	//
	if _, errs = p.expect(RPAREN); len(errs) > 0 {
		return nil, errs
	}
	//
	return ast.Refutation{File: file}, nil
}

// parseBind parses the record of a variable bound during an inference, along
// with the expression it was bound to.
func (p *Parser) parseBind() (ast.Info, []source.SyntaxError) {
	var (
		bind ast.Bind
		errs []source.SyntaxError
	)
	//
	if errs = p.parseKeyword("bind"); len(errs) > 0 {
		return nil, errs
	}
	//
	if _, errs = p.expect(LPAREN); len(errs) > 0 {
		return nil, errs
	}
	//
	if bind.Variable, errs = p.parseVar(); len(errs) > 0 {
		return nil, errs
	}
	//
	if _, errs = p.expect(COMMA); len(errs) > 0 {
		return nil, errs
	}
	//
	if bind.Value, errs = p.parseExpression(); len(errs) > 0 {
		return nil, errs
	}
	//
	if _, errs = p.expect(RPAREN); len(errs) > 0 {
		return nil, errs
	}
	//
	return bind, nil
}

// parseGeneralFunction parses an uninterpreted function application, with
// arbitrary information as its arguments.  A bare atom is an application with
// no arguments at all.
func (p *Parser) parseGeneralFunction() (ast.Info, []source.SyntaxError) {
	var (
		function ast.GeneralFunction
		errs     []source.SyntaxError
	)
	//
	if function.Name, errs = p.parseAtom(); len(errs) > 0 {
		return nil, errs
	}
	// Parse optional argument list
	if p.match(LPAREN) {
		var item ast.Info
		//
		for len(function.Arguments) == 0 || p.match(COMMA) {
			if item, errs = p.parseInfo(); len(errs) > 0 {
				return nil, errs
			}
			//
			function.Arguments = append(function.Arguments, item)
		}
		//
		if _, errs = p.expect(RPAREN); len(errs) > 0 {
			return nil, errs
		}
	}
	//
	return function, nil
}

// parseExpression parses a formula or term embedded in an annotation, marked
// by the language it belongs to.
func (p *Parser) parseExpression() (ast.Expression, []source.SyntaxError) {
	var (
		lookahead = p.lookahead()
		tok, errs = p.expect(DOLLAR_WORD)
	)
	//
	if len(errs) > 0 {
		return nil, errs
	}
	//
	if _, errs = p.expect(LPAREN); len(errs) > 0 {
		return nil, errs
	}
	//
	var expression ast.Expression
	//
	switch p.string(tok) {
	case "$fot":
		term, errs := p.parseTerm()
		//
		if len(errs) > 0 {
			return nil, errs
		}
		//
		expression = ast.TermExpression{Term: term}
	case "$cnf", "$fof", "$tff", "$qmf":
		formula, errs := p.parseFormula(ast.Language(p.string(tok)[1:]))
		//
		if len(errs) > 0 {
			return nil, errs
		}
		//
		expression = ast.FormulaExpression{Formula: formula}
	default:
		return nil, p.syntaxErrors(lookahead, "unknown expression language")
	}
	//
	if _, errs = p.expect(RPAREN); len(errs) > 0 {
		return nil, errs
	}
	//
	return expression, nil
}
