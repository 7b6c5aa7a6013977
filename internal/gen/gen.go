// Package gen provides random generation of TPTP syntax, used to exercise the
// parser and the renderer against one another.  Generators respect the
// invariants of the syntax tree (e.g. denominators are strictly positive, and
// clauses are never empty) so that whatever they produce both renders and
// parses cleanly.
package gen

import (
	"math/big"
	"math/rand/v2"

	"github.com/twistedduck/tptp/pkg/ast"
)

// pick returns a uniformly random item.
func pick[T any](items ...T) T {
	return items[rand.IntN(len(items))]
}

// Atom generates an atom: usually a bare lowercase word, occasionally
// something which must be quoted.  Words which the grammar treats as keywords
// (in some position or other) are deliberately excluded.
func Atom() ast.Atom {
	if rand.IntN(4) == 0 {
		return ast.Atom(pick(
			"don't", "two words", "back\\slash", "Upper", "123start", "wib(ble",
		))
	}
	//
	return ast.Atom(pick("a", "b3", "c_d", "apply", "flatten", "prove", "split", "resolution"))
}

// Var generates a variable.
func Var() ast.Var {
	return ast.Var(pick("X", "Y", "Z2", "Xs", "VAR", "A_1"))
}

// DistinctObject generates a (possibly empty) distinct object.
func DistinctObject() ast.DistinctObject {
	return ast.DistinctObject(pick("", "cheese", "two words", "\"quoted\"", "back\\slash"))
}

// Number generates an integer, rational or real number.
func Number() ast.Number {
	switch rand.IntN(3) {
	case 0:
		return ast.Integer{Value: bigint()}
	case 1:
		// Denominators are always strictly positive
		return ast.Rational{Numerator: bigint(), Denominator: big.NewInt(rand.Int64N(30) + 1)}
	default:
		// A zero exponent would collapse back into an integer
		exponent := rand.IntN(6) + 1
		//
		if rand.IntN(2) == 0 {
			exponent = -exponent
		}
		//
		return ast.Real{Coefficient: bigint(), Exponent: exponent}
	}
}

func bigint() *big.Int {
	return big.NewInt(rand.Int64N(2001) - 1000)
}

// Term generates a term of (at most) the given depth.
func Term(depth uint) ast.Term {
	if depth == 0 {
		switch rand.IntN(4) {
		case 0:
			return Var()
		case 1:
			return DistinctObject()
		case 2:
			return Number()
		default:
			return ast.Application{Name: functionName()}
		}
	}
	//
	return ast.Application{Name: functionName(), Arguments: terms(rand.UintN(3)+1, depth-1)}
}

func terms(n uint, depth uint) []ast.Term {
	if n == 0 {
		return nil
	}
	//
	items := make([]ast.Term, n)
	//
	for i := range items {
		items[i] = Term(depth)
	}
	//
	return items
}

func functionName() ast.Name[ast.Function] {
	if rand.IntN(5) == 0 {
		return ast.StandardName(pick(ast.Sum, ast.Uminus, ast.Floor, ast.ToInt))
	}
	//
	return ast.DefinedName[ast.Function](Atom())
}

func predicateName() ast.Name[ast.Predicate] {
	if rand.IntN(5) == 0 {
		return ast.StandardName(pick(ast.Less, ast.Greater, ast.Tautology, ast.IsInt))
	}
	//
	return ast.DefinedName[ast.Predicate](Atom())
}

func sign() ast.Sign {
	return pick(ast.Positive, ast.Negative)
}

// Literal generates a literal of (at most) the given depth: an equality
// between two terms, or a predication.
func Literal(depth uint) ast.Literal {
	if rand.IntN(2) == 0 {
		return ast.Equality{Left: Term(depth), Sign: sign(), Right: Term(depth)}
	}
	//
	var arguments []ast.Term
	//
	if depth > 0 {
		arguments = terms(rand.UintN(3), depth-1)
	}
	//
	return ast.Predication{Name: predicateName(), Arguments: arguments}
}
