package ast

import (
	"fmt"
	"strings"

	"github.com/twistedduck/tptp/pkg/util"
)

// Annotation records where a unit came from, together with arbitrary further
// metadata.
type Annotation struct {
	// Source this unit was derived from.
	Source Source
	// Info attached to this unit (if given).
	Info util.Option[[]Info]
}

func (p Annotation) String() string {
	if p.Info.IsEmpty() {
		return p.Source.String()
	}
	//
	return fmt.Sprintf("%s, [%s]", p.Source.String(), join(p.Info.Unwrap(), ", "))
}

// ===================================================================
// Sources
// ===================================================================

// Source describes the provenance of a unit: where it was read from, which
// tool invented it, or which inference derived it.
type Source interface {
	fmt.Stringer
	// isSource is a marker restricting implementations to this package.
	isSource()
}

// UnknownSource marks a unit of unknown provenance.
type UnknownSource struct{}

func (p UnknownSource) isSource() {}

func (p UnknownSource) String() string { return "unknown" }

// UnitSource marks a unit as a copy of another unit.
type UnitSource struct {
	// Name of the unit this unit was copied from.
	Name UnitName
}

func (p UnitSource) isSource() {}

func (p UnitSource) String() string {
	return formatUnitName(p.Name)
}

// FileSource marks a unit as read from a file, optionally naming the unit
// within that file.
type FileSource struct {
	// Name of the file the unit was read from.
	Name Atom
	// Unit within the file (if given).
	Unit util.Option[UnitName]
}

func (p FileSource) isSource() {}

func (p FileSource) String() string {
	if p.Unit.IsEmpty() {
		return fmt.Sprintf("file(%s)", p.Name.String())
	}
	//
	return fmt.Sprintf("file(%s, %s)", p.Name.String(), formatUnitName(p.Unit.Unwrap()))
}

// Theory marks a unit as an instance of a built-in theory (equality,
// arithmetic, etc).
type Theory struct {
	// Name of the theory.
	Name Atom
	// Info attached to the theory reference (if given).
	Info util.Option[[]Info]
}

func (p Theory) isSource() {}

func (p Theory) String() string {
	if p.Info.IsEmpty() {
		return fmt.Sprintf("theory(%s)", p.Name.String())
	}
	//
	return fmt.Sprintf("theory(%s, [%s])", p.Name.String(), join(p.Info.Unwrap(), ", "))
}

// Creator marks a unit as produced by a named tool.
type Creator struct {
	// Name of the tool.
	Name Atom
	// Info attached to the tool reference (if given).
	Info util.Option[[]Info]
}

func (p Creator) isSource() {}

func (p Creator) String() string {
	if p.Info.IsEmpty() {
		return fmt.Sprintf("creator(%s)", p.Name.String())
	}
	//
	return fmt.Sprintf("creator(%s, [%s])", p.Name.String(), join(p.Info.Unwrap(), ", "))
}

// Introduced marks a unit as invented during proof search, recording why it
// was introduced.
type Introduced struct {
	// Kind of introduction.
	Kind Reserved[Intro]
	// Info attached to the introduction (if given).
	Info util.Option[[]Info]
}

func (p Introduced) isSource() {}

func (p Introduced) String() string {
	if p.Info.IsEmpty() {
		return fmt.Sprintf("introduced(%s)", p.Kind.String())
	}
	//
	return fmt.Sprintf("introduced(%s, [%s])", p.Kind.String(), join(p.Info.Unwrap(), ", "))
}

// Inference marks a unit as derived from its parents by a named inference
// rule.  This is the one recursive source: each parent carries its own
// source, which may itself be an inference.
type Inference struct {
	// Rule applied by the inference.
	Rule Atom
	// Info attached to the inference (possibly empty).
	Info []Info
	// Parents the inference derived this unit from (possibly empty).
	Parents []Parent
}

func (p Inference) isSource() {}

func (p Inference) String() string {
	return fmt.Sprintf("inference(%s, [%s], [%s])", p.Rule.String(),
		join(p.Info, ", "), join(p.Parents, ", "))
}

// Parent is one premise of an inference: a source plus optional further
// metadata.
type Parent struct {
	// Source of this parent.
	Source Source
	// Info attached to this parent (if given).
	Info util.Option[[]Info]
}

func (p Parent) String() string {
	if p.Info.IsEmpty() {
		return p.Source.String()
	}
	//
	return fmt.Sprintf("%s: [%s]", p.Source.String(), join(p.Info.Unwrap(), ", "))
}

// ===================================================================
// Info
// ===================================================================

// Info is a node of the free-form metadata tree attached to sources and
// annotations.
type Info interface {
	fmt.Stringer
	// isInfo is a marker restricting implementations to this package.
	isInfo()
}

// Description is a human-readable description.
type Description struct {
	// Text of the description.
	Text Atom
}

func (p Description) isInfo() {}

func (p Description) String() string {
	return fmt.Sprintf("description(%s)", p.Text.String())
}

// IQuote is text quoted verbatim from the producing tool.
type IQuote struct {
	// Text being quoted.
	Text Atom
}

func (p IQuote) isInfo() {}

func (p IQuote) String() string {
	return fmt.Sprintf("iquote(%s)", p.Text.String())
}

// Status reports the SZS status of an inference step.
type Status struct {
	// Value of the status.
	Value Reserved[Success]
}

func (p Status) isInfo() {}

func (p Status) String() string {
	return fmt.Sprintf("status(%s)", p.Value.String())
}

// Assumptions lists the units an inference step additionally assumed.  The
// list is never empty.
type Assumptions struct {
	// Names of the assumed units.
	Names []UnitName
}

func (p Assumptions) isInfo() {}

func (p Assumptions) String() string {
	var names = make([]string, len(p.Names))
	//
	for i, name := range p.Names {
		names[i] = formatUnitName(name)
	}
	//
	return fmt.Sprintf("assumptions([%s])", strings.Join(names, ", "))
}

// Refutation points at a file containing a refutation referenced by an
// inference step.
type Refutation struct {
	// File containing the refutation.
	File FileSource
}

func (p Refutation) isInfo() {}

func (p Refutation) String() string {
	return fmt.Sprintf("refutation(%s)", p.File.String())
}

// Bind records the expression a variable was bound to during an inference
// step.
type Bind struct {
	// Variable being bound.
	Variable Var
	// Value the variable was bound to.
	Value Expression
}

func (p Bind) isInfo() {}

func (p Bind) String() string {
	return fmt.Sprintf("bind(%s, %s)", p.Variable.String(), p.Value.String())
}

// GeneralFunction is a free-form function-style metadata node.  A node with
// no arguments renders as a bare symbol.
type GeneralFunction struct {
	// Name of the node.
	Name Atom
	// Arguments of the node.
	Arguments []Info
}

func (p GeneralFunction) isInfo() {}

func (p GeneralFunction) String() string {
	if len(p.Arguments) == 0 {
		return p.Name.String()
	}
	//
	return fmt.Sprintf("%s(%s)", p.Name.String(), join(p.Arguments, ", "))
}

// GeneralList is a free-form list-style metadata node.
type GeneralList struct {
	// Items of the list.
	Items []Info
}

func (p GeneralList) isInfo() {}

func (p GeneralList) String() string {
	return fmt.Sprintf("[%s]", join(p.Items, ", "))
}

// InfoNumber is a numeric metadata node.
type InfoNumber struct {
	// Value of the node.
	Value Number
}

func (p InfoNumber) isInfo() {}

func (p InfoNumber) String() string {
	return p.Value.String()
}

// ===================================================================
// Expressions
// ===================================================================

// Expression is a formula or term embedded in the metadata tree, marked with
// the language it is written in.
type Expression interface {
	fmt.Stringer
	// isExpression is a marker restricting implementations to this package.
	isExpression()
}

// FormulaExpression is an embedded formula.
type FormulaExpression struct {
	// Formula being embedded.
	Formula Formula
}

func (p FormulaExpression) isInfo()       {}
func (p FormulaExpression) isExpression() {}

func (p FormulaExpression) String() string {
	return fmt.Sprintf("$%s(%s)", p.Formula.Language(), p.Formula.String())
}

// TermExpression is an embedded term.
type TermExpression struct {
	// Term being embedded.
	Term Term
}

func (p TermExpression) isInfo()       {}
func (p TermExpression) isExpression() {}

func (p TermExpression) String() string {
	return fmt.Sprintf("$fot(%s)", p.Term.String())
}
