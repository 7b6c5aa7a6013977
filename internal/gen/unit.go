package gen

import (
	"math/rand/v2"

	"github.com/twistedduck/tptp/pkg/ast"
	"github.com/twistedduck/tptp/pkg/util"
)

// UnitName generates the name of a unit: either an atom, or an integer.
func UnitName() ast.UnitName {
	if rand.IntN(3) == 0 {
		return ast.IntName(rand.Int64N(2001) - 1000)
	}
	//
	return ast.AtomName(string(Atom()))
}

func unitNames(n uint) []ast.UnitName {
	items := make([]ast.UnitName, n)
	//
	for i := range items {
		items[i] = UnitName()
	}
	//
	return items
}

// Declaration generates the declaration of a unit in the given language:
// usually a tagged formula but, for the sorted languages, occasionally a type
// declaration.
func Declaration(language ast.Language, depth uint) ast.Declaration {
	if language == ast.LangTFF {
		switch rand.IntN(4) {
		case 0:
			return ast.SortDeclaration{Name: Atom(), Arity: rand.UintN(3)}
		case 1:
			return ast.Typing{Name: Atom(), Type: Type()}
		}
	}
	//
	return ast.TaggedFormula{Role: role(), Formula: Formula(language, depth)}
}

func role() ast.Reserved[ast.Role] {
	if rand.IntN(8) == 0 {
		return ast.Extended[ast.Role]("speculation")
	}
	//
	return ast.Standard(pick(
		ast.Axiom, ast.Hypothesis, ast.Lemma, ast.Plain,
		ast.Conjecture, ast.NegatedConjecture,
	))
}

// Annotation generates the provenance annotation of a unit, of (at most) the
// given depth.
func Annotation(depth uint) ast.Annotation {
	return ast.Annotation{Source: Source(depth), Info: maybeInfos(depth)}
}

// Source generates the source of a unit, of (at most) the given depth.
func Source(depth uint) ast.Source {
	if depth == 0 {
		switch rand.IntN(3) {
		case 0:
			return ast.UnknownSource{}
		case 1:
			return ast.UnitSource{Name: UnitName()}
		default:
			return fileSource()
		}
	}
	//
	switch rand.IntN(5) {
	case 0:
		return ast.Theory{Name: Atom(), Info: maybeInfos(depth - 1)}
	case 1:
		return ast.Creator{Name: Atom(), Info: maybeInfos(depth - 1)}
	case 2:
		return ast.Introduced{Kind: intro(), Info: maybeInfos(depth - 1)}
	default:
		return ast.Inference{
			Rule:    Atom(),
			Info:    infos(rand.UintN(2), depth-1),
			Parents: parents(rand.UintN(3), depth-1),
		}
	}
}

func fileSource() ast.FileSource {
	var unit = util.None[ast.UnitName]()
	//
	if rand.IntN(2) == 0 {
		unit = util.Some(UnitName())
	}
	//
	return ast.FileSource{Name: Atom(), Unit: unit}
}

func intro() ast.Reserved[ast.Intro] {
	if rand.IntN(8) == 0 {
		return ast.Extended[ast.Intro]("by_magic")
	}
	//
	return ast.Standard(pick(
		ast.ByDefinition, ast.ByAxiomOfChoice, ast.ByTautology, ast.ByAssumption,
	))
}

func parents(n uint, depth uint) []ast.Parent {
	if n == 0 {
		return nil
	}
	//
	items := make([]ast.Parent, n)
	//
	for i := range items {
		items[i] = ast.Parent{Source: Source(depth), Info: maybeInfos(depth)}
	}
	//
	return items
}

// Info generates an item of useful information, of (at most) the given depth.
func Info(depth uint) ast.Info {
	if depth == 0 {
		switch rand.IntN(4) {
		case 0:
			return ast.Description{Text: Atom()}
		case 1:
			return ast.Status{Value: status()}
		case 2:
			return ast.InfoNumber{Value: Number()}
		default:
			return ast.GeneralFunction{Name: Atom()}
		}
	}
	//
	switch rand.IntN(7) {
	case 0:
		return ast.IQuote{Text: Atom()}
	case 1:
		// Assumption lists are never empty
		return ast.Assumptions{Names: unitNames(rand.UintN(2) + 1)}
	case 2:
		return ast.Refutation{File: fileSource()}
	case 3:
		return ast.Bind{Variable: Var(), Value: Expression(depth - 1)}
	case 4:
		return ast.GeneralList{Items: infos(rand.UintN(3), depth-1)}
	case 5:
		return ast.GeneralFunction{Name: Atom(), Arguments: infos(rand.UintN(3)+1, depth-1)}
	default:
		return Info(0)
	}
}

func infos(n uint, depth uint) []ast.Info {
	if n == 0 {
		return nil
	}
	//
	items := make([]ast.Info, n)
	//
	for i := range items {
		items[i] = Info(depth)
	}
	//
	return items
}

func maybeInfos(depth uint) util.Option[[]ast.Info] {
	if rand.IntN(2) == 0 {
		return util.None[[]ast.Info]()
	}
	//
	return util.Some(infos(rand.UintN(3), depth))
}

func status() ast.Reserved[ast.Success] {
	if rand.IntN(2) == 0 {
		return ast.Extended[ast.Success](pick("thm", "sat", "esa", "uns"))
	}
	//
	return ast.Standard(pick(ast.THM, ast.SAT, ast.UNS, ast.CSA, ast.EQV))
}

// Expression generates a formula or term embedded in an annotation, of (at
// most) the given depth.
func Expression(depth uint) ast.Expression {
	if rand.IntN(4) == 0 {
		return ast.TermExpression{Term: Term(depth)}
	}
	//
	var language = pick(ast.LangCNF, ast.LangFOF, ast.LangTFF, ast.LangQMF)
	//
	return ast.FormulaExpression{Formula: Formula(language, depth)}
}

// Unit generates a unit of (at most) the given depth: usually an annotated
// unit, occasionally an include directive.
func Unit(depth uint) ast.Unit {
	if rand.IntN(8) == 0 {
		var selection = util.None[[]ast.UnitName]()
		//
		if rand.IntN(2) == 0 {
			selection = util.Some(unitNames(rand.UintN(2) + 1))
		}
		//
		return ast.Include{File: Atom(), Selection: selection}
	}
	//
	var (
		language   = pick(ast.LangCNF, ast.LangFOF, ast.LangTFF, ast.LangQMF)
		annotation = util.None[ast.Annotation]()
	)
	//
	if rand.IntN(2) == 0 {
		annotation = util.Some(Annotation(1))
	}
	//
	return ast.AnnotatedUnit{
		Name:        UnitName(),
		Declaration: Declaration(language, depth),
		Annotation:  annotation,
	}
}

// TPTP generates a whole problem with the given number of units.
func TPTP(units uint, depth uint) ast.TPTP {
	var document ast.TPTP
	//
	for range units {
		document.Units = append(document.Units, Unit(depth))
	}
	//
	return document
}

// TSTP generates a whole derivation with the given number of units, under an
// optional SZS header.
func TSTP(units uint, depth uint) ast.TSTP {
	return ast.TSTP{SZS: SZS(), Units: TPTP(units, depth).Units}
}

// SZS generates an SZS header, with optional status and dataform.
func SZS() ast.SZS {
	var szs ast.SZS
	//
	switch rand.IntN(3) {
	case 0:
		szs.Status = util.Some(util.Left[ast.Success, ast.NoSuccess](pick(ast.THM, ast.SAT, ast.UNS, ast.CSA)))
	case 1:
		szs.Status = util.Some(util.Right[ast.Success](pick(ast.UNK, ast.TMO, ast.GUP, ast.ERR)))
	}
	//
	if rand.IntN(2) == 0 {
		szs.Dataform = util.Some(pick(ast.CRf, ast.Prf, ast.Mod, ast.LDa, ast.Ref))
	}
	//
	return szs
}
