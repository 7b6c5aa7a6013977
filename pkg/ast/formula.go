package ast

import (
	"fmt"
	"strings"

	"github.com/twistedduck/tptp/pkg/util"
)

// FirstOrder is a first-order formula, generic over the sort annotation its
// quantified variables carry.  Instantiating the annotation gives the
// unsorted, monomorphic and polymorphic formula representations.
type FirstOrder[S SortAnnotation] interface {
	fmt.Stringer
	// isFirstOrder is a marker restricting implementations to this package.
	isFirstOrder(S)
}

// UnsortedFirstOrder is a first-order formula without sort annotations.
type UnsortedFirstOrder = FirstOrder[Unsorted]

// SortedFirstOrder is a first-order formula with monomorphic sort
// annotations.
type SortedFirstOrder = FirstOrder[Sorted]

// PolySortedFirstOrder is a first-order formula with polymorphic sort
// annotations.
type PolySortedFirstOrder = FirstOrder[PolySorted]

// ===================================================================
// Atomic
// ===================================================================

// Atomic is a formula consisting of a single literal.
type Atomic[S SortAnnotation] struct {
	// Literal making up this formula.
	Literal Literal
}

func (p Atomic[S]) isFirstOrder(S) {}

func (p Atomic[S]) String() string {
	return p.Literal.String()
}

// ===================================================================
// Negated
// ===================================================================

// Negated is the negation of a formula.
type Negated[S SortAnnotation] struct {
	// Formula being negated.
	Formula FirstOrder[S]
}

func (p Negated[S]) isFirstOrder(S) {}

func (p Negated[S]) String() string {
	return fmt.Sprintf("~%s", bracket(p.Formula))
}

// ===================================================================
// Connected
// ===================================================================

// Connected is the application of a binary connective to two formulas.
type Connected[S SortAnnotation] struct {
	// Left operand of the connective.
	Left FirstOrder[S]
	// Connective being applied.
	Connective Connective
	// Right operand of the connective.
	Right FirstOrder[S]
}

func (p Connected[S]) isFirstOrder(S) {}

func (p Connected[S]) String() string {
	return fmt.Sprintf("%s %s %s", bracket(p.Left), p.Connective.Name(), bracket(p.Right))
}

// bracket renders a formula, parenthesising it whenever it is a connective
// application (whose rendering would otherwise be ambiguous in context).
func bracket[S SortAnnotation](formula FirstOrder[S]) string {
	if _, ok := formula.(Connected[S]); ok {
		return fmt.Sprintf("(%s)", formula.String())
	}
	//
	return formula.String()
}

// ===================================================================
// Quantified
// ===================================================================

// Quantified is the quantification of a formula over one or more (annotated)
// variables.  The variable list is never empty.
type Quantified[S SortAnnotation] struct {
	// Quantifier binding the variables.
	Quantifier Quantifier
	// Variables bound by the quantifier, each with its sort annotation.
	Variables []util.Pair[Var, S]
	// Formula being quantified over.
	Formula FirstOrder[S]
}

func (p Quantified[S]) isFirstOrder(S) {}

func (p Quantified[S]) String() string {
	var variables = make([]string, len(p.Variables))
	//
	for i, v := range p.Variables {
		if annotation := v.Right.String(); annotation != "" {
			variables[i] = fmt.Sprintf("%s: %s", v.Left, annotation)
		} else {
			variables[i] = v.Left.String()
		}
	}
	//
	return fmt.Sprintf("%s [%s]: %s", p.Quantifier.Name(),
		strings.Join(variables, ", "), bracket(p.Formula))
}

// ===================================================================
// Modal formulas
// ===================================================================

// QuantifiedModal is a formula of quantified modal logic.  Modal formulas
// mirror the first-order shapes, with unannotated quantified variables and an
// additional modal operator form.
type QuantifiedModal interface {
	fmt.Stringer
	// isModal is a marker restricting implementations to this package.
	isModal()
}

// ModalAtomic is a modal formula consisting of a single literal.
type ModalAtomic struct {
	// Literal making up this formula.
	Literal Literal
}

func (p ModalAtomic) isModal() {}

func (p ModalAtomic) String() string {
	return p.Literal.String()
}

// ModalNegated is the negation of a modal formula.
type ModalNegated struct {
	// Formula being negated.
	Formula QuantifiedModal
}

func (p ModalNegated) isModal() {}

func (p ModalNegated) String() string {
	return fmt.Sprintf("~%s", bracketModal(p.Formula))
}

// ModalConnected is the application of a binary connective to two modal
// formulas.
type ModalConnected struct {
	// Left operand of the connective.
	Left QuantifiedModal
	// Connective being applied.
	Connective Connective
	// Right operand of the connective.
	Right QuantifiedModal
}

func (p ModalConnected) isModal() {}

func (p ModalConnected) String() string {
	return fmt.Sprintf("%s %s %s", bracketModal(p.Left), p.Connective.Name(), bracketModal(p.Right))
}

// ModalQuantified is the quantification of a modal formula over one or more
// variables.  The variable list is never empty.
type ModalQuantified struct {
	// Quantifier binding the variables.
	Quantifier Quantifier
	// Variables bound by the quantifier.
	Variables []Var
	// Formula being quantified over.
	Formula QuantifiedModal
}

func (p ModalQuantified) isModal() {}

func (p ModalQuantified) String() string {
	return fmt.Sprintf("%s [%s]: %s", p.Quantifier.Name(), join(p.Variables, ", "),
		bracketModal(p.Formula))
}

// Modaled is the application of a modal operator (necessity or possibility)
// to a modal formula.
type Modaled struct {
	// Modality being applied.
	Modality Reserved[Modality]
	// Formula the modality is applied to.
	Formula QuantifiedModal
}

func (p Modaled) isModal() {}

func (p Modaled) String() string {
	return fmt.Sprintf("#%s: %s", p.Modality.String(), bracketModal(p.Formula))
}

// bracketModal renders a modal formula, parenthesising it whenever it is a
// connective application.
func bracketModal(formula QuantifiedModal) string {
	if _, ok := formula.(ModalConnected); ok {
		return fmt.Sprintf("(%s)", formula.String())
	}
	//
	return formula.String()
}

// ===================================================================
// Formulas
// ===================================================================

// Formula is a formula in any of the five sub-languages.  Each variant knows
// which language tag it is written under.
type Formula interface {
	fmt.Stringer
	// Language this formula is written in.
	Language() Language
	// isFormula is a marker restricting implementations to this package.
	isFormula()
}

// CNF is a formula in clausal normal form.
type CNF struct {
	// Clause making up this formula.
	Clause Clause
}

func (p CNF) isFormula() {}

// Language implementation for the Formula interface.
func (p CNF) Language() Language { return LangCNF }

func (p CNF) String() string { return p.Clause.String() }

// FOF is an unsorted first-order formula.
type FOF struct {
	// Formula wrapped by this variant.
	Formula UnsortedFirstOrder
}

func (p FOF) isFormula() {}

// Language implementation for the Formula interface.
func (p FOF) Language() Language { return LangFOF }

func (p FOF) String() string { return p.Formula.String() }

// TFF0 is a monomorphic sorted first-order formula.
type TFF0 struct {
	// Formula wrapped by this variant.
	Formula SortedFirstOrder
}

func (p TFF0) isFormula() {}

// Language implementation for the Formula interface.
func (p TFF0) Language() Language { return LangTFF }

func (p TFF0) String() string { return p.Formula.String() }

// TFF1 is a polymorphic sorted first-order formula.
type TFF1 struct {
	// Formula wrapped by this variant.
	Formula PolySortedFirstOrder
}

func (p TFF1) isFormula() {}

// Language implementation for the Formula interface.
func (p TFF1) Language() Language { return LangTFF }

func (p TFF1) String() string { return p.Formula.String() }

// QMF is a quantified modal formula.
type QMF struct {
	// Formula wrapped by this variant.
	Formula QuantifiedModal
}

func (p QMF) isFormula() {}

// Language implementation for the Formula interface.
func (p QMF) Language() Language { return LangQMF }

func (p QMF) String() string { return p.Formula.String() }
