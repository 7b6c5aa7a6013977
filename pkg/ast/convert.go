package ast

import (
	"github.com/twistedduck/tptp/pkg/util"
)

// SortFirstOrder lifts an unsorted formula into the monomorphic
// representation, leaving every quantified variable unannotated.  This
// conversion always succeeds, and is inverted (on its image) by
// UnsortFirstOrder.
func SortFirstOrder(formula UnsortedFirstOrder) SortedFirstOrder {
	sorted, _ := mapFirstOrder(formula, func(Unsorted) (Sorted, bool) {
		return Sorted{util.None[Name[Sort]]()}, true
	})
	//
	return sorted
}

// UnsortFirstOrder strips a monomorphic formula down to the unsorted
// representation.  This fails if any quantified variable carries an explicit
// sort, since erasing it would lose information.
func UnsortFirstOrder(formula SortedFirstOrder) (UnsortedFirstOrder, bool) {
	return mapFirstOrder(formula, func(annotation Sorted) (Unsorted, bool) {
		return Unsorted{}, annotation.Sort.IsEmpty()
	})
}

// PolymorphizeFirstOrder lifts a monomorphic formula into the polymorphic
// representation, turning every atomic sort into a zero-arity constructor
// application.  This conversion always succeeds, and is inverted (on its
// image) by MonomorphizeFirstOrder.
func PolymorphizeFirstOrder(formula SortedFirstOrder) PolySortedFirstOrder {
	poly, _ := mapFirstOrder(formula, func(annotation Sorted) (PolySorted, bool) {
		if annotation.Sort.IsEmpty() {
			return PolySorted{util.None[util.Either[QuantifiedSort, TFF1Sort]]()}, true
		}
		//
		var sort TFF1Sort = SortApplication{annotation.Sort.Unwrap(), nil}
		//
		return PolySorted{util.Some(util.Right[QuantifiedSort](sort))}, true
	})
	//
	return poly
}

// MonomorphizeFirstOrder strips a polymorphic formula down to the monomorphic
// representation.  This fails if the formula makes genuine use of
// polymorphism, that is if any quantified variable is a sort variable or
// carries a sort which is not a zero-arity constructor application.
func MonomorphizeFirstOrder(formula PolySortedFirstOrder) (SortedFirstOrder, bool) {
	return mapFirstOrder(formula, func(annotation PolySorted) (Sorted, bool) {
		if annotation.Sort.IsEmpty() {
			return Sorted{util.None[Name[Sort]]()}, true
		}
		// Sort variables cannot be represented monomorphically.
		if sort := annotation.Sort.Unwrap(); !sort.IsLeft() {
			if name, ok := MonomorphizeTFF1Sort(sort.UnwrapRight()); ok {
				return Sorted{util.Some(name)}, true
			}
		}
		//
		return Sorted{}, false
	})
}

// MonomorphizeTFF1Sort strips a polymorphic sort down to an atomic sort name.
// This fails unless the sort is a zero-arity constructor application.
func MonomorphizeTFF1Sort(sort TFF1Sort) (Name[Sort], bool) {
	if application, ok := sort.(SortApplication); ok && len(application.Arguments) == 0 {
		return application.Name, true
	}
	//
	return Name[Sort]{}, false
}

// mapFirstOrder rebuilds a formula with every sort annotation passed through
// the given conversion, failing as soon as the conversion fails on any
// annotation.
func mapFirstOrder[A SortAnnotation, B SortAnnotation](formula FirstOrder[A],
	fn func(A) (B, bool)) (FirstOrder[B], bool) {
	//
	switch f := formula.(type) {
	case Atomic[A]:
		return Atomic[B]{f.Literal}, true
	case Negated[A]:
		if body, ok := mapFirstOrder(f.Formula, fn); ok {
			return Negated[B]{body}, true
		}
	case Connected[A]:
		var (
			left, lok  = mapFirstOrder(f.Left, fn)
			right, rok = mapFirstOrder(f.Right, fn)
		)
		//
		if lok && rok {
			return Connected[B]{left, f.Connective, right}, true
		}
	case Quantified[A]:
		var variables = make([]util.Pair[Var, B], len(f.Variables))
		//
		for i, v := range f.Variables {
			annotation, ok := fn(v.Right)
			//
			if !ok {
				return nil, false
			}
			//
			variables[i] = util.NewPair(v.Left, annotation)
		}
		//
		if body, ok := mapFirstOrder(f.Formula, fn); ok {
			return Quantified[B]{f.Quantifier, variables, body}, true
		}
	}
	//
	return nil, false
}

// ===================================================================
// Reassociation
// ===================================================================

// ReassociateFirstOrder rewrites every chain of applications of an
// associative connective into right-nested form, giving a canonical
// representation for formulas which differ only in bracketing.  For example,
// "(a & b) & (c & d)" becomes "a & (b & (c & d))".
func ReassociateFirstOrder[S SortAnnotation](formula FirstOrder[S]) FirstOrder[S] {
	switch f := formula.(type) {
	case Negated[S]:
		return Negated[S]{ReassociateFirstOrder(f.Formula)}
	case Connected[S]:
		if f.Connective.IsAssociative() {
			var (
				operands = flattenConnected(f.Connective, formula)
				result   = operands[len(operands)-1]
			)
			//
			for i := len(operands) - 2; i >= 0; i-- {
				result = Connected[S]{operands[i], f.Connective, result}
			}
			//
			return result
		}
		//
		return Connected[S]{
			ReassociateFirstOrder(f.Left), f.Connective, ReassociateFirstOrder(f.Right)}
	case Quantified[S]:
		return Quantified[S]{f.Quantifier, f.Variables, ReassociateFirstOrder(f.Formula)}
	}
	// Atomic
	return formula
}

// flattenConnected collects, in order, the operands of a chain of
// applications of the given associative connective, reassociating each
// operand as it goes.
func flattenConnected[S SortAnnotation](connective Connective,
	formula FirstOrder[S]) []FirstOrder[S] {
	//
	if f, ok := formula.(Connected[S]); ok && f.Connective == connective {
		left := flattenConnected(connective, f.Left)
		//
		return append(left, flattenConnected(connective, f.Right)...)
	}
	//
	return []FirstOrder[S]{ReassociateFirstOrder(formula)}
}
