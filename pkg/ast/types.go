package ast

import (
	"fmt"
	"strings"

	"github.com/twistedduck/tptp/pkg/util"
)

// SortAnnotation determines what sort information (if any) a quantified
// variable carries.  The three instantiations of this interface distinguish
// the unsorted, monomorphic and polymorphic formula representations.
type SortAnnotation interface {
	fmt.Stringer
	// isAnnotation is a marker restricting implementations to this package.
	isAnnotation()
}

// Unsorted is the (empty) annotation of an unsorted variable.
type Unsorted struct{}

func (p Unsorted) isAnnotation() {}

func (p Unsorted) String() string { return "" }

// Sorted is the annotation of a monomorphic variable: either an explicit
// atomic sort, or nothing (in which case the variable ranges over
// individuals).
type Sorted struct {
	// Sort of this variable (if given).
	Sort util.Option[Name[Sort]]
}

func (p Sorted) isAnnotation() {}

func (p Sorted) String() string {
	if p.Sort.IsEmpty() {
		return ""
	}
	//
	return p.Sort.Unwrap().String()
}

// PolySorted is the annotation of a polymorphic variable: either the sort of
// sorts (binding a sort variable), an arbitrary polymorphic sort, or nothing.
type PolySorted struct {
	// Sort of this variable (if given).
	Sort util.Option[util.Either[QuantifiedSort, TFF1Sort]]
}

func (p PolySorted) isAnnotation() {}

func (p PolySorted) String() string {
	if p.Sort.IsEmpty() {
		return ""
	}
	//
	if sort := p.Sort.Unwrap(); sort.IsLeft() {
		return sort.UnwrapLeft().String()
	} else {
		return sort.UnwrapRight().String()
	}
}

// QuantifiedSort is the sort of sorts, "$tType".  Annotating a variable with
// it turns that variable into a sort variable.
type QuantifiedSort struct{}

func (p QuantifiedSort) String() string { return "$tType" }

// ===================================================================
// Polymorphic sorts
// ===================================================================

// TFF1Sort is a polymorphic sort: a sort variable, or a sort constructor
// applied to zero or more polymorphic sorts.
type TFF1Sort interface {
	fmt.Stringer
	// isTFF1Sort is a marker restricting implementations to this package.
	isTFF1Sort()
}

// SortVariable is a variable standing for a sort.
type SortVariable struct {
	// Variable bound (elsewhere) at sort $tType.
	Variable Var
}

func (p SortVariable) isTFF1Sort() {}

func (p SortVariable) String() string {
	return string(p.Variable)
}

// SortApplication is the application of a (possibly interpreted) sort
// constructor to zero or more polymorphic sorts.  An atomic sort is an
// application with no arguments.
type SortApplication struct {
	// Name of the sort constructor being applied.
	Name Name[Sort]
	// Arguments the sort constructor is applied to.
	Arguments []TFF1Sort
}

func (p SortApplication) isTFF1Sort() {}

func (p SortApplication) String() string {
	if len(p.Arguments) == 0 {
		return p.Name.String()
	}
	//
	return fmt.Sprintf("%s(%s)", p.Name.String(), join(p.Arguments, ", "))
}

// ===================================================================
// Types
// ===================================================================

// Type is the declared type of a function or predicate symbol: either a
// monomorphic mapping between atomic sorts, or a polymorphic type scheme.
type Type interface {
	fmt.Stringer
	// isType is a marker restricting implementations to this package.
	isType()
}

// NewType constructs the type with the given sort variables, argument sorts
// and result sort.  Types which do not use polymorphism (no sort variables,
// atomic sorts throughout) are canonicalised into monomorphic mappings.
func NewType(variables []Var, arguments []TFF1Sort, result TFF1Sort) Type {
	if len(variables) == 0 {
		var (
			args = make([]Name[Sort], len(arguments))
			ok   bool
		)
		// Attempt downgrade of each argument sort, then the result sort.
		for i, argument := range arguments {
			if args[i], ok = MonomorphizeTFF1Sort(argument); !ok {
				return TFF1Type{variables, arguments, result}
			}
		}
		//
		if res, ok := MonomorphizeTFF1Sort(result); ok {
			if len(args) == 0 {
				args = nil
			}
			//
			return Mapping{args, res}
		}
	}
	//
	return TFF1Type{variables, arguments, result}
}

// Mapping is a monomorphic type: a mapping from zero or more atomic argument
// sorts to an atomic result sort.
type Mapping struct {
	// Arguments of this mapping.
	Arguments []Name[Sort]
	// Result of this mapping.
	Result Name[Sort]
}

func (p Mapping) isType() {}

func (p Mapping) String() string {
	switch len(p.Arguments) {
	case 0:
		return p.Result.String()
	case 1:
		return fmt.Sprintf("%s > %s", p.Arguments[0].String(), p.Result.String())
	default:
		return fmt.Sprintf("(%s) > %s", join(p.Arguments, " * "), p.Result.String())
	}
}

// TFF1Type is a polymorphic type scheme: universally quantified sort
// variables over a mapping from zero or more polymorphic argument sorts to a
// polymorphic result sort.
type TFF1Type struct {
	// Variables quantified over by this scheme.
	Variables []Var
	// Arguments of the underlying mapping.
	Arguments []TFF1Sort
	// Result of the underlying mapping.
	Result TFF1Sort
}

func (p TFF1Type) isType() {}

func (p TFF1Type) String() string {
	var body string
	//
	switch len(p.Arguments) {
	case 0:
		body = p.Result.String()
	case 1:
		body = fmt.Sprintf("%s > %s", p.Arguments[0].String(), p.Result.String())
	default:
		body = fmt.Sprintf("(%s) > %s", join(p.Arguments, " * "), p.Result.String())
	}
	//
	if len(p.Variables) == 0 {
		return body
	}
	// Quantified mappings require bracketing.
	if len(p.Arguments) > 0 {
		body = fmt.Sprintf("(%s)", body)
	}
	//
	var builder = make([]string, len(p.Variables))
	//
	for i, variable := range p.Variables {
		builder[i] = fmt.Sprintf("%s: $tType", variable)
	}
	//
	return fmt.Sprintf("!> [%s]: %s", strings.Join(builder, ", "), body)
}
