package ast

import (
	"fmt"
	"strings"

	"github.com/twistedduck/tptp/pkg/util"
)

// Term is a first-order term: a variable, a distinct object, a number or a
// function application.
type Term interface {
	fmt.Stringer
	// isTerm is a marker restricting implementations to this package.
	isTerm()
}

func (p Var) isTerm()            {}
func (p DistinctObject) isTerm() {}

// ===================================================================
// Application
// ===================================================================

// Application is the application of a (possibly interpreted) function to zero
// or more argument terms.  A constant is an application with no arguments.
type Application struct {
	// Name of the function being applied.
	Name Name[Function]
	// Arguments the function is applied to.
	Arguments []Term
}

func (p Application) isTerm() {}

func (p Application) String() string {
	if len(p.Arguments) == 0 {
		return p.Name.String()
	}
	//
	return fmt.Sprintf("%s(%s)", p.Name.String(), join(p.Arguments, ", "))
}

// ===================================================================
// Literals
// ===================================================================

// Literal is an atomic proposition: either a predication or an equality
// between two terms.
type Literal interface {
	fmt.Stringer
	// isLiteral is a marker restricting implementations to this package.
	isLiteral()
}

// Predication is the application of a (possibly interpreted) predicate to
// zero or more argument terms.
type Predication struct {
	// Name of the predicate being applied.
	Name Name[Predicate]
	// Arguments the predicate is applied to.
	Arguments []Term
}

func (p Predication) isLiteral() {}

func (p Predication) String() string {
	if len(p.Arguments) == 0 {
		return p.Name.String()
	}
	//
	return fmt.Sprintf("%s(%s)", p.Name.String(), join(p.Arguments, ", "))
}

// Equality asserts that two terms denote the same individual (or, when
// negative, different individuals).
type Equality struct {
	// Left operand of this equality.
	Left Term
	// Sign of this equality.
	Sign Sign
	// Right operand of this equality.
	Right Term
}

func (p Equality) isLiteral() {}

func (p Equality) String() string {
	return fmt.Sprintf("%s %s %s", p.Left.String(), p.Sign.Name(), p.Right.String())
}

// ===================================================================
// Clauses
// ===================================================================

// Clause is a disjunction of signed literals.  Clauses are always non-empty:
// the empty clause is represented by the single positive literal "$false".
type Clause struct {
	// Literals of this clause, each paired with its sign.
	Literals []util.Pair[Sign, Literal]
}

// NewClause constructs a clause from signed literals, canonicalising the
// empty disjunction into the false predicate.
func NewClause(literals []util.Pair[Sign, Literal]) Clause {
	if len(literals) == 0 {
		var falsum Literal = Predication{StandardName(Falsum), nil}
		//
		literals = []util.Pair[Sign, Literal]{util.NewPair(Positive, falsum)}
	}
	//
	return Clause{literals}
}

func (p Clause) String() string {
	var builder strings.Builder
	//
	for i, literal := range p.Literals {
		if i != 0 {
			builder.WriteString(" | ")
		}
		//
		if literal.Left == Negative {
			builder.WriteString("~ ")
		}
		//
		builder.WriteString(literal.Right.String())
	}
	//
	return builder.String()
}

// join renders a list of items with the given separator between them.
func join[T fmt.Stringer](items []T, separator string) string {
	var builder strings.Builder
	//
	for i, item := range items {
		if i != 0 {
			builder.WriteString(separator)
		}
		//
		builder.WriteString(item.String())
	}
	//
	return builder.String()
}
