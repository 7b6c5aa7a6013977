package ast

import (
	"reflect"
	"testing"

	"github.com/twistedduck/tptp/pkg/util"
)

// unsortedSample builds an unsorted formula exercising every shape:
// ! [X, Y]: (p(X) => ~ (q(Y) & X = Y))
func unsortedSample() UnsortedFirstOrder {
	var (
		p Literal = Predication{DefinedName[Predicate]("p"), []Term{Var("X")}}
		q Literal = Predication{DefinedName[Predicate]("q"), []Term{Var("Y")}}
		e Literal = Equality{Var("X"), Positive, Var("Y")}
	)
	//
	return Quantified[Unsorted]{
		Quantifier: Forall,
		Variables: []util.Pair[Var, Unsorted]{
			util.NewPair(Var("X"), Unsorted{}),
			util.NewPair(Var("Y"), Unsorted{}),
		},
		Formula: Connected[Unsorted]{
			Left:       Atomic[Unsorted]{p},
			Connective: Implication,
			Right: Negated[Unsorted]{
				Connected[Unsorted]{Atomic[Unsorted]{q}, Conjunction, Atomic[Unsorted]{e}},
			},
		},
	}
}

func TestConvert_SortUnsort(t *testing.T) {
	var (
		formula     = unsortedSample()
		sorted      = SortFirstOrder(formula)
		unsorted, ok = UnsortFirstOrder(sorted)
	)
	//
	if !ok {
		t.Fatalf("round trip failed")
	} else if !reflect.DeepEqual(formula, unsorted) {
		t.Errorf("round trip changed formula: %s", unsorted.String())
	}
}

func TestConvert_UnsortFails(t *testing.T) {
	// An explicit sort cannot be erased
	sorted := Quantified[Sorted]{
		Quantifier: Exists,
		Variables: []util.Pair[Var, Sorted]{
			util.NewPair(Var("X"), Sorted{util.Some(StandardName(Integers))}),
		},
		Formula: Atomic[Sorted]{Predication{DefinedName[Predicate]("p"), []Term{Var("X")}}},
	}
	//
	if _, ok := UnsortFirstOrder(sorted); ok {
		t.Errorf("explicitly sorted formula should not unsort")
	}
}

func TestConvert_PolymorphizeMonomorphize(t *testing.T) {
	var (
		sorted   = SortFirstOrder(unsortedSample())
		poly     = PolymorphizeFirstOrder(sorted)
		mono, ok = MonomorphizeFirstOrder(poly)
	)
	//
	if !ok {
		t.Fatalf("round trip failed")
	} else if !reflect.DeepEqual(sorted, mono) {
		t.Errorf("round trip changed formula: %s", mono.String())
	}
}

func TestConvert_MonomorphizeFails(t *testing.T) {
	// A sort-variable binder makes a formula genuinely polymorphic
	poly := Quantified[PolySorted]{
		Quantifier: Forall,
		Variables: []util.Pair[Var, PolySorted]{
			util.NewPair(Var("A"), PolySorted{
				util.Some(util.Left[QuantifiedSort, TFF1Sort](QuantifiedSort{}))}),
		},
		Formula: Atomic[PolySorted]{Predication{DefinedName[Predicate]("p"), nil}},
	}
	//
	if _, ok := MonomorphizeFirstOrder(poly); ok {
		t.Errorf("sort binder should not monomorphize")
	}
	// So does a sort-constructor application of non-zero arity
	list := Quantified[PolySorted]{
		Quantifier: Forall,
		Variables: []util.Pair[Var, PolySorted]{
			util.NewPair(Var("X"), PolySorted{
				util.Some(util.Right[QuantifiedSort, TFF1Sort](SortApplication{
					DefinedName[Sort]("list"),
					[]TFF1Sort{SortApplication{Name: StandardName(Integers)}},
				}))}),
		},
		Formula: Atomic[PolySorted]{Predication{DefinedName[Predicate]("p"), nil}},
	}
	//
	if _, ok := MonomorphizeFirstOrder(list); ok {
		t.Errorf("applied sort constructor should not monomorphize")
	}
}

func TestConvert_Reassociate(t *testing.T) {
	var (
		a Literal = Predication{DefinedName[Predicate]("a"), nil}
		b Literal = Predication{DefinedName[Predicate]("b"), nil}
		c Literal = Predication{DefinedName[Predicate]("c"), nil}
		d Literal = Predication{DefinedName[Predicate]("d"), nil}
	)
	// (a & b) & (c & d)
	formula := Connected[Unsorted]{
		Left:       Connected[Unsorted]{Atomic[Unsorted]{a}, Conjunction, Atomic[Unsorted]{b}},
		Connective: Conjunction,
		Right:      Connected[Unsorted]{Atomic[Unsorted]{c}, Conjunction, Atomic[Unsorted]{d}},
	}
	// a & (b & (c & d))
	want := Connected[Unsorted]{
		Left:       Atomic[Unsorted]{a},
		Connective: Conjunction,
		Right: Connected[Unsorted]{
			Left:       Atomic[Unsorted]{b},
			Connective: Conjunction,
			Right:      Connected[Unsorted]{Atomic[Unsorted]{c}, Conjunction, Atomic[Unsorted]{d}},
		},
	}
	//
	if got := ReassociateFirstOrder[Unsorted](formula); !reflect.DeepEqual(got, FirstOrder[Unsorted](want)) {
		t.Errorf("expected %s, got %s", want.String(), got.String())
	}
}

// Non-associative connectives keep their bracketing.
func TestConvert_ReassociateImplication(t *testing.T) {
	var (
		a Literal = Predication{DefinedName[Predicate]("a"), nil}
		b Literal = Predication{DefinedName[Predicate]("b"), nil}
		c Literal = Predication{DefinedName[Predicate]("c"), nil}
	)
	// (a => b) => c
	formula := Connected[Unsorted]{
		Left:       Connected[Unsorted]{Atomic[Unsorted]{a}, Implication, Atomic[Unsorted]{b}},
		Connective: Implication,
		Right:      Atomic[Unsorted]{c},
	}
	//
	if got := ReassociateFirstOrder[Unsorted](formula); !reflect.DeepEqual(got, FirstOrder[Unsorted](formula)) {
		t.Errorf("implication chain was regrouped: %s", got.String())
	}
}
