package ast

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/twistedduck/tptp/pkg/util"
)

// Declaration is the payload of an annotated unit: a sort-constructor
// introduction, a symbol typing, or a role-tagged formula.
type Declaration interface {
	fmt.Stringer
	// Language this declaration is written in.
	Language() Language
	// isDeclaration is a marker restricting implementations to this package.
	isDeclaration()
}

// SortDeclaration introduces a sort constructor of the given arity.
type SortDeclaration struct {
	// Name of the sort constructor.
	Name Atom
	// Arity of the sort constructor.
	Arity uint
}

func (p SortDeclaration) isDeclaration() {}

// Language implementation for the Declaration interface.
func (p SortDeclaration) Language() Language { return LangTFF }

func (p SortDeclaration) String() string {
	switch p.Arity {
	case 0:
		return fmt.Sprintf("type, %s: $tType", p.Name.String())
	case 1:
		return fmt.Sprintf("type, %s: $tType > $tType", p.Name.String())
	default:
		var arguments = make([]string, p.Arity)
		//
		for i := range arguments {
			arguments[i] = "$tType"
		}
		//
		return fmt.Sprintf("type, %s: (%s) > $tType", p.Name.String(),
			strings.Join(arguments, " * "))
	}
}

// Typing declares the type of a function or predicate symbol.
type Typing struct {
	// Name of the symbol being typed.
	Name Atom
	// Type declared for the symbol.
	Type Type
}

func (p Typing) isDeclaration() {}

// Language implementation for the Declaration interface.
func (p Typing) Language() Language { return LangTFF }

func (p Typing) String() string {
	return fmt.Sprintf("type, %s: %s", p.Name.String(), p.Type.String())
}

// TaggedFormula is a formula tagged with the role it plays in the document
// (axiom, conjecture, etc).
type TaggedFormula struct {
	// Role the formula plays.
	Role Reserved[Role]
	// Formula being declared.
	Formula Formula
}

func (p TaggedFormula) isDeclaration() {}

// Language implementation for the Declaration interface.
func (p TaggedFormula) Language() Language { return p.Formula.Language() }

func (p TaggedFormula) String() string {
	return fmt.Sprintf("%s, %s", p.Role.String(), p.Formula.String())
}

// ===================================================================
// Units
// ===================================================================

// UnitName identifies a unit within a document: either an atom or an
// integer.
type UnitName = util.Either[Atom, *big.Int]

// AtomName constructs a unit name from a raw symbol.
func AtomName(name string) UnitName {
	return util.Left[Atom, *big.Int](Atom(name))
}

// IntName constructs a unit name from a machine integer.
func IntName(number int64) UnitName {
	return util.Right[Atom](big.NewInt(number))
}

// formatUnitName renders a unit name, quoting atoms as required.
func formatUnitName(name UnitName) string {
	if name.IsLeft() {
		return name.UnwrapLeft().String()
	}
	//
	return name.UnwrapRight().String()
}

// Unit is one top-level element of a document: an include directive or an
// annotated unit.
type Unit interface {
	fmt.Stringer
	// isUnit is a marker restricting implementations to this package.
	isUnit()
}

// Include directs the consumer to insert the contents of another file,
// optionally restricted to the named units.
type Include struct {
	// File being included.
	File Atom
	// Selection of units to include (all when absent).
	Selection util.Option[[]UnitName]
}

func (p Include) isUnit() {}

func (p Include) String() string {
	if p.Selection.IsEmpty() {
		return fmt.Sprintf("include(%s).", p.File.String())
	}
	//
	var names = make([]string, len(p.Selection.Unwrap()))
	//
	for i, name := range p.Selection.Unwrap() {
		names[i] = formatUnitName(name)
	}
	//
	return fmt.Sprintf("include(%s, [%s]).", p.File.String(), strings.Join(names, ", "))
}

// AnnotatedUnit is a named declaration, optionally annotated with its
// provenance.
type AnnotatedUnit struct {
	// Name of this unit.
	Name UnitName
	// Declaration made by this unit.
	Declaration Declaration
	// Annotation describing where this unit came from (if given).
	Annotation util.Option[Annotation]
}

func (p AnnotatedUnit) isUnit() {}

func (p AnnotatedUnit) String() string {
	var (
		language = p.Declaration.Language()
		name     = formatUnitName(p.Name)
	)
	//
	if p.Annotation.IsEmpty() {
		return fmt.Sprintf("%s(%s, %s).", language, name, p.Declaration.String())
	}
	//
	return fmt.Sprintf("%s(%s, %s, %s).", language, name, p.Declaration.String(),
		p.Annotation.Unwrap().String())
}

// ===================================================================
// Documents
// ===================================================================

// TPTP is a problem file: an ordered sequence of units.
type TPTP struct {
	// Units making up this document.
	Units []Unit
}

func (p TPTP) String() string {
	var lines = make([]string, len(p.Units))
	//
	for i, unit := range p.Units {
		lines[i] = unit.String()
	}
	//
	return strings.Join(lines, "\n")
}

// TSTP is a derivation file: an ordered sequence of units preceded by an SZS
// summary of the proof search which produced them.
type TSTP struct {
	// SZS summary reported for this derivation.
	SZS SZS
	// Units making up this derivation.
	Units []Unit
}

func (p TSTP) String() string {
	var lines []string
	//
	if header := p.SZS.String(); header != "" {
		lines = append(lines, header)
	}
	//
	for _, unit := range p.Units {
		lines = append(lines, unit.String())
	}
	//
	return strings.Join(lines, "\n")
}
