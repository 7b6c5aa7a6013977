package gen

import (
	"math/rand/v2"

	"github.com/twistedduck/tptp/pkg/ast"
	"github.com/twistedduck/tptp/pkg/util"
)

// Clause generates a non-empty clause of (at most) the given depth.
func Clause(depth uint) ast.Clause {
	var literals = make([]util.Pair[ast.Sign, ast.Literal], rand.UintN(3)+1)
	//
	for i := range literals {
		literals[i] = util.NewPair(sign(), Literal(depth))
	}
	//
	return ast.NewClause(literals)
}

func quantifier() ast.Quantifier {
	return pick(ast.Forall, ast.Exists)
}

func connective() ast.Connective {
	return pick(
		ast.Conjunction, ast.Disjunction,
		ast.Implication, ast.ReversedImplication,
		ast.Equivalence, ast.ExclusiveOr,
		ast.NegatedConjunction, ast.NegatedDisjunction,
	)
}

func vars(n uint) []ast.Var {
	items := make([]ast.Var, n)
	//
	for i := range items {
		items[i] = Var()
	}
	//
	return items
}

// UnsortedFormula generates an unsorted first-order formula of (at most) the
// given depth.
func UnsortedFormula(depth uint) ast.UnsortedFirstOrder {
	if depth == 0 {
		return ast.Atomic[ast.Unsorted]{Literal: Literal(0)}
	}
	//
	switch rand.IntN(4) {
	case 0:
		return ast.Atomic[ast.Unsorted]{Literal: Literal(depth)}
	case 1:
		return ast.Negated[ast.Unsorted]{Formula: UnsortedFormula(depth - 1)}
	case 2:
		return ast.Connected[ast.Unsorted]{
			Left:       UnsortedFormula(depth - 1),
			Connective: connective(),
			Right:      UnsortedFormula(depth - 1),
		}
	default:
		return ast.Quantified[ast.Unsorted]{
			Quantifier: quantifier(),
			Variables:  unsortedVariables(rand.UintN(2) + 1),
			Formula:    UnsortedFormula(depth - 1),
		}
	}
}

func unsortedVariables(n uint) []util.Pair[ast.Var, ast.Unsorted] {
	items := make([]util.Pair[ast.Var, ast.Unsorted], n)
	//
	for i := range items {
		items[i] = util.NewPair(Var(), ast.Unsorted{})
	}
	//
	return items
}

// SortedFormula generates a monomorphic sorted first-order formula of (at
// most) the given depth.
func SortedFormula(depth uint) ast.SortedFirstOrder {
	if depth == 0 {
		return ast.Atomic[ast.Sorted]{Literal: Literal(0)}
	}
	//
	switch rand.IntN(4) {
	case 0:
		return ast.Atomic[ast.Sorted]{Literal: Literal(depth)}
	case 1:
		return ast.Negated[ast.Sorted]{Formula: SortedFormula(depth - 1)}
	case 2:
		return ast.Connected[ast.Sorted]{
			Left:       SortedFormula(depth - 1),
			Connective: connective(),
			Right:      SortedFormula(depth - 1),
		}
	default:
		return ast.Quantified[ast.Sorted]{
			Quantifier: quantifier(),
			Variables:  sortedVariables(rand.UintN(2) + 1),
			Formula:    SortedFormula(depth - 1),
		}
	}
}

func sortedVariables(n uint) []util.Pair[ast.Var, ast.Sorted] {
	items := make([]util.Pair[ast.Var, ast.Sorted], n)
	//
	for i := range items {
		items[i] = util.NewPair(Var(), sortedAnnotation())
	}
	//
	return items
}

func sortedAnnotation() ast.Sorted {
	if rand.IntN(2) == 0 {
		return ast.Sorted{}
	}
	//
	return ast.Sorted{Sort: util.Some(sortName())}
}

func sortName() ast.Name[ast.Sort] {
	if rand.IntN(2) == 0 {
		return ast.StandardName(pick(ast.Integers, ast.Booleans, ast.Individuals, ast.Reals))
	}
	//
	return ast.DefinedName[ast.Sort](Atom())
}

// PolySortedFormula generates a polymorphic sorted first-order formula of (at
// most) the given depth.
func PolySortedFormula(depth uint) ast.PolySortedFirstOrder {
	if depth == 0 {
		return ast.Atomic[ast.PolySorted]{Literal: Literal(0)}
	}
	//
	switch rand.IntN(4) {
	case 0:
		return ast.Atomic[ast.PolySorted]{Literal: Literal(depth)}
	case 1:
		return ast.Negated[ast.PolySorted]{Formula: PolySortedFormula(depth - 1)}
	case 2:
		return ast.Connected[ast.PolySorted]{
			Left:       PolySortedFormula(depth - 1),
			Connective: connective(),
			Right:      PolySortedFormula(depth - 1),
		}
	default:
		return ast.Quantified[ast.PolySorted]{
			Quantifier: quantifier(),
			Variables:  polySortedVariables(rand.UintN(2)+1, depth-1),
			Formula:    PolySortedFormula(depth - 1),
		}
	}
}

func polySortedVariables(n uint, depth uint) []util.Pair[ast.Var, ast.PolySorted] {
	items := make([]util.Pair[ast.Var, ast.PolySorted], n)
	//
	for i := range items {
		items[i] = util.NewPair(Var(), polySortedAnnotation(depth))
	}
	//
	return items
}

func polySortedAnnotation(depth uint) ast.PolySorted {
	switch rand.IntN(4) {
	case 0:
		return ast.PolySorted{}
	case 1:
		return ast.PolySorted{Sort: util.Some(sortOfSorts())}
	default:
		return ast.PolySorted{Sort: util.Some(util.Right[ast.QuantifiedSort](Sort(depth)))}
	}
}

func sortOfSorts() util.Either[ast.QuantifiedSort, ast.TFF1Sort] {
	return util.Left[ast.QuantifiedSort, ast.TFF1Sort](ast.QuantifiedSort{})
}

// ModalFormula generates a quantified modal formula of (at most) the given
// depth.
func ModalFormula(depth uint) ast.QuantifiedModal {
	if depth == 0 {
		return ast.ModalAtomic{Literal: Literal(0)}
	}
	//
	switch rand.IntN(5) {
	case 0:
		return ast.ModalAtomic{Literal: Literal(depth)}
	case 1:
		return ast.ModalNegated{Formula: ModalFormula(depth - 1)}
	case 2:
		return ast.ModalConnected{
			Left:       ModalFormula(depth - 1),
			Connective: connective(),
			Right:      ModalFormula(depth - 1),
		}
	case 3:
		return ast.Modaled{Modality: modality(), Formula: ModalFormula(depth - 1)}
	default:
		return ast.ModalQuantified{
			Quantifier: quantifier(),
			Variables:  vars(rand.UintN(2) + 1),
			Formula:    ModalFormula(depth - 1),
		}
	}
}

func modality() ast.Reserved[ast.Modality] {
	if rand.IntN(4) == 0 {
		return ast.Extended[ast.Modality]("necessarily")
	}
	//
	return ast.Standard(pick(ast.Box, ast.Diamond))
}

// Sort generates a polymorphic sort of (at most) the given depth.
func Sort(depth uint) ast.TFF1Sort {
	if rand.IntN(3) == 0 {
		return ast.SortVariable{Variable: Var()}
	}
	//
	var arguments []ast.TFF1Sort
	//
	if depth > 0 && rand.IntN(2) == 0 {
		arguments = sorts(rand.UintN(2)+1, depth-1)
	}
	//
	return ast.SortApplication{Name: sortName(), Arguments: arguments}
}

func sorts(n uint, depth uint) []ast.TFF1Sort {
	if n == 0 {
		return nil
	}
	//
	items := make([]ast.TFF1Sort, n)
	//
	for i := range items {
		items[i] = Sort(depth)
	}
	//
	return items
}

// Type generates the type of a symbol, with an optional sort-variable prefix.
func Type() ast.Type {
	var variables []ast.Var
	//
	if rand.IntN(2) == 0 {
		variables = vars(rand.UintN(2) + 1)
	}
	//
	return ast.NewType(variables, sorts(rand.UintN(4), 1), Sort(1))
}

// Formula generates a formula in the given language, of (at most) the given
// depth.
func Formula(language ast.Language, depth uint) ast.Formula {
	switch language {
	case ast.LangCNF:
		return ast.CNF{Clause: Clause(depth)}
	case ast.LangFOF:
		return ast.FOF{Formula: UnsortedFormula(depth)}
	case ast.LangTFF:
		if rand.IntN(2) == 0 {
			return ast.TFF0{Formula: SortedFormula(depth)}
		}
		//
		return ast.TFF1{Formula: polymorphicFormula(depth)}
	case ast.LangQMF:
		return ast.QMF{Formula: ModalFormula(depth)}
	default:
		panic("unreachable")
	}
}

// polymorphicFormula generates a formula guaranteed to exercise genuine
// polymorphism, by always binding at least one sort variable.  Without this,
// the formula would parse back into the monomorphic representation.
func polymorphicFormula(depth uint) ast.PolySortedFirstOrder {
	var binder = util.NewPair(Var(), ast.PolySorted{Sort: util.Some(sortOfSorts())})
	//
	return ast.Quantified[ast.PolySorted]{
		Quantifier: quantifier(),
		Variables:  []util.Pair[ast.Var, ast.PolySorted]{binder},
		Formula:    PolySortedFormula(depth),
	}
}
