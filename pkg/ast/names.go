// Package ast defines the abstract syntax of TPTP problem files and TSTP
// derivation files, covering clausal normal form, unsorted and sorted
// first-order logic, and quantified modal logic.
package ast

import (
	"strings"

	"github.com/twistedduck/tptp/pkg/util"
)

// Named is implemented by any enumerable vocabulary whose members each carry a
// canonical name.
type Named[T any] interface {
	// Name returns the canonical name of this member.
	Name() string
	// Members enumerates the vocabulary.
	Members() []T
}

// ===================================================================
// Reserved
// ===================================================================

// Reserved represents an identifier drawn from a closed vocabulary T, or else
// a free-form extension of that vocabulary.
type Reserved[T Named[T]] struct {
	// Indicates whether this is a standard member of the vocabulary.
	standard bool
	// Standard member (if applicable).
	member T
	// Extension text (otherwise).
	extension string
}

// Standard constructs a reserved identifier denoting a standard member of the
// vocabulary T.
func Standard[T Named[T]](member T) Reserved[T] {
	return Reserved[T]{true, member, ""}
}

// Extended constructs a reserved identifier from raw text, resolving it to a
// standard member of the vocabulary whenever the text matches that member's
// canonical name.  Hence, an extension is only ever produced from text which
// matches no canonical name.
func Extended[T Named[T]](name string) Reserved[T] {
	var empty T
	//
	for _, member := range empty.Members() {
		if member.Name() == name {
			return Standard(member)
		}
	}
	//
	return Reserved[T]{false, empty, name}
}

// IsStandard indicates whether this identifier denotes a standard member of
// its vocabulary.
func (p Reserved[T]) IsStandard() bool { return p.standard }

// Unwrap returns the standard member this identifier denotes, and panics if it
// is an extension.
func (p Reserved[T]) Unwrap() T {
	if !p.standard {
		panic("cannot unwrap an extended identifier")
	}
	//
	return p.member
}

func (p Reserved[T]) String() string {
	if p.standard {
		return p.member.Name()
	}
	//
	return p.extension
}

// ===================================================================
// Name
// ===================================================================

// Name represents either a reserved identifier, displayed behind a leading
// dollar marker, or a user-defined symbol.
type Name[T Named[T]] struct {
	inner util.Either[Reserved[T], Atom]
}

// ReservedName constructs a name denoting a reserved identifier.
func ReservedName[T Named[T]](reserved Reserved[T]) Name[T] {
	return Name[T]{util.Left[Reserved[T], Atom](reserved)}
}

// StandardName constructs a name denoting a standard member of the vocabulary
// T.
func StandardName[T Named[T]](member T) Name[T] {
	return ReservedName(Standard(member))
}

// DefinedName constructs a name denoting a user-defined symbol.
func DefinedName[T Named[T]](atom Atom) Name[T] {
	return Name[T]{util.Right[Reserved[T]](atom)}
}

// IsReserved indicates whether this name denotes a reserved identifier.
func (p Name[T]) IsReserved() bool { return p.inner.IsLeft() }

// Reserved returns the reserved identifier this name denotes, and panics if it
// denotes a user-defined symbol.
func (p Name[T]) Reserved() Reserved[T] { return p.inner.UnwrapLeft() }

// Atom returns the user-defined symbol this name denotes, and panics if it
// denotes a reserved identifier.
func (p Name[T]) Atom() Atom { return p.inner.UnwrapRight() }

func (p Name[T]) String() string {
	if p.inner.IsLeft() {
		return "$" + p.inner.UnwrapLeft().String()
	}
	//
	return p.inner.UnwrapRight().String()
}

// ===================================================================
// Atoms, variables and distinct objects
// ===================================================================

// Atom represents a user-defined symbol: either a bare lowercase word, or an
// arbitrary (non-empty) string of printable characters which must be quoted
// when rendered.
type Atom string

func (p Atom) String() string {
	if isLowerWord(string(p)) {
		return string(p)
	}
	//
	return quote(string(p), '\'')
}

// Var represents a logical variable, scoped to the quantifier or clause which
// introduces it.
type Var string

func (p Var) String() string { return string(p) }

// DistinctObject represents a (possibly empty) string which is asserted to
// denote a different object than every distinct object with different textual
// content.  Distinct objects are always rendered in double quotes.
type DistinctObject string

func (p DistinctObject) String() string { return quote(string(p), '"') }

// ===================================================================
// Helpers
// ===================================================================

// Determine whether a given string is a bare lowercase word, and hence whether
// it can be rendered without quotes.
func isLowerWord(text string) bool {
	if len(text) == 0 || text[0] < 'a' || text[0] > 'z' {
		return false
	}
	//
	for i := 1; i < len(text); i++ {
		if !isAlphaNumeric(text[i]) {
			return false
		}
	}
	//
	return true
}

// Determine whether a given character can occur in a word after its first
// character.
func isAlphaNumeric(c byte) bool {
	return c == '_' || ('0' <= c && c <= '9') || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// Quote a given string using a given quote character, escaping occurrences of
// that character and backslash.
func quote(text string, q byte) string {
	var builder strings.Builder
	//
	builder.WriteByte(q)
	//
	for i := 0; i < len(text); i++ {
		if text[i] == q || text[i] == '\\' {
			builder.WriteByte('\\')
		}
		//
		builder.WriteByte(text[i])
	}
	//
	builder.WriteByte(q)
	//
	return builder.String()
}
