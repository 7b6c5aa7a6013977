package ast

// Language identifies one of the supported input languages.
type Language string

const (
	// LangCNF is the language of clausal normal form.
	LangCNF Language = "cnf"
	// LangFOF is the language of unsorted first-order formulas.
	LangFOF Language = "fof"
	// LangTFF is the language of sorted first-order formulas, both monomorphic
	// and polymorphic.
	LangTFF Language = "tff"
	// LangQMF is the language of quantified modal formulas.
	LangQMF Language = "qmf"
)

func (p Language) String() string { return string(p) }

// ===================================================================
// Sorts
// ===================================================================

// Sort is the built-in vocabulary of monomorphic sorts.
type Sort string

const (
	// Individuals is the default sort of unsorted logic.
	Individuals Sort = "i"
	// Booleans is the sort of truth values.
	Booleans Sort = "o"
	// Integers is the sort of integer numbers.
	Integers Sort = "int"
	// Reals is the sort of real numbers.
	Reals Sort = "real"
	// Rationals is the sort of rational numbers.
	Rationals Sort = "rat"
)

// Name returns the canonical name of this sort.
func (p Sort) Name() string { return string(p) }

// Members enumerates the sort vocabulary.
func (p Sort) Members() []Sort {
	return []Sort{Individuals, Booleans, Integers, Reals, Rationals}
}

// ===================================================================
// Functions
// ===================================================================

// Function is the built-in vocabulary of arithmetic functions.
type Function string

const (
	// Uminus is unary negation.
	Uminus Function = "uminus"
	// Sum is addition.
	Sum Function = "sum"
	// Difference is subtraction.
	Difference Function = "difference"
	// Product is multiplication.
	Product Function = "product"
	// Quotient is exact division on the rationals and reals.
	Quotient Function = "quotient"
	// QuotientE is division truncated towards negative infinity.
	QuotientE Function = "quotient_e"
	// QuotientT is division truncated towards zero.
	QuotientT Function = "quotient_t"
	// QuotientF is division truncated towards negative infinity (floor).
	QuotientF Function = "quotient_f"
	// RemainderE is the remainder of euclidean division.
	RemainderE Function = "remainder_e"
	// RemainderT is the remainder of truncating division.
	RemainderT Function = "remainder_t"
	// RemainderF is the remainder of flooring division.
	RemainderF Function = "remainder_f"
	// Floor rounds towards negative infinity.
	Floor Function = "floor"
	// Ceiling rounds towards positive infinity.
	Ceiling Function = "ceiling"
	// Truncate rounds towards zero.
	Truncate Function = "truncate"
	// Round rounds to the nearest integral value.
	Round Function = "round"
	// ToInt coerces a number to the integer sort.
	ToInt Function = "to_int"
	// ToRat coerces a number to the rational sort.
	ToRat Function = "to_rat"
	// ToReal coerces a number to the real sort.
	ToReal Function = "to_real"
)

// Name returns the canonical name of this function.
func (p Function) Name() string { return string(p) }

// Members enumerates the function vocabulary.
func (p Function) Members() []Function {
	return []Function{
		Uminus, Sum, Difference, Product,
		Quotient, QuotientE, QuotientT, QuotientF,
		RemainderE, RemainderT, RemainderF,
		Floor, Ceiling, Truncate, Round,
		ToInt, ToRat, ToReal,
	}
}

// ===================================================================
// Predicates
// ===================================================================

// Predicate is the built-in vocabulary of predicates.
type Predicate string

const (
	// Tautology is the always-true predicate.
	Tautology Predicate = "true"
	// Falsum is the always-false predicate.
	Falsum Predicate = "false"
	// Distinct asserts pairwise inequality of its arguments.
	Distinct Predicate = "distinct"
	// Less is the strictly-less-than ordering.
	Less Predicate = "less"
	// Lesseq is the less-than-or-equal ordering.
	Lesseq Predicate = "lesseq"
	// Greater is the strictly-greater-than ordering.
	Greater Predicate = "greater"
	// Greatereq is the greater-than-or-equal ordering.
	Greatereq Predicate = "greatereq"
	// IsInt holds for integral numbers.
	IsInt Predicate = "is_int"
	// IsRat holds for rational numbers.
	IsRat Predicate = "is_rat"
)

// Name returns the canonical name of this predicate.
func (p Predicate) Name() string { return string(p) }

// Members enumerates the predicate vocabulary.
func (p Predicate) Members() []Predicate {
	return []Predicate{
		Tautology, Falsum, Distinct,
		Less, Lesseq, Greater, Greatereq,
		IsInt, IsRat,
	}
}

// ===================================================================
// Quantifiers, connectives and signs
// ===================================================================

// Quantifier is the vocabulary of first-order quantifiers.
type Quantifier string

const (
	// Forall is universal quantification.
	Forall Quantifier = "!"
	// Exists is existential quantification.
	Exists Quantifier = "?"
)

// Name returns the canonical name of this quantifier.
func (p Quantifier) Name() string { return string(p) }

// Members enumerates the quantifier vocabulary.
func (p Quantifier) Members() []Quantifier {
	return []Quantifier{Forall, Exists}
}

// Connective is the vocabulary of binary logical connectives.
type Connective string

const (
	// Conjunction is logical and.
	Conjunction Connective = "&"
	// Disjunction is logical or.
	Disjunction Connective = "|"
	// Implication is material implication.
	Implication Connective = "=>"
	// Equivalence is if-and-only-if.
	Equivalence Connective = "<=>"
	// ExclusiveOr is exclusive disjunction.
	ExclusiveOr Connective = "<~>"
	// NegatedConjunction is negated and.
	NegatedConjunction Connective = "~&"
	// NegatedDisjunction is negated or.
	NegatedDisjunction Connective = "~|"
	// ReversedImplication is implication from right to left.
	ReversedImplication Connective = "<="
)

// Name returns the canonical name of this connective.
func (p Connective) Name() string { return string(p) }

// Members enumerates the connective vocabulary.
func (p Connective) Members() []Connective {
	return []Connective{
		Conjunction, Disjunction,
		Implication, Equivalence, ExclusiveOr,
		NegatedConjunction, NegatedDisjunction, ReversedImplication,
	}
}

// IsAssociative indicates whether chains of this connective can be regrouped
// without changing their meaning.
func (p Connective) IsAssociative() bool {
	return p == Conjunction || p == Disjunction
}

// Sign is the vocabulary of equality signs.
type Sign string

const (
	// Positive asserts equality (or, on a clause literal, no negation).
	Positive Sign = "="
	// Negative asserts inequality (or, on a clause literal, negation).
	Negative Sign = "!="
)

// Name returns the canonical name of this sign.
func (p Sign) Name() string { return string(p) }

// Members enumerates the sign vocabulary.
func (p Sign) Members() []Sign {
	return []Sign{Positive, Negative}
}

// ===================================================================
// Roles
// ===================================================================

// Role is the vocabulary of formula roles.
type Role string

const (
	// Axiom is a formula accepted without proof.
	Axiom Role = "axiom"
	// Hypothesis is an assumption of the current problem.
	Hypothesis Role = "hypothesis"
	// Definition defines a symbol.
	Definition Role = "definition"
	// Assumption is a formula which can be used like an axiom, but must be
	// discharged.
	Assumption Role = "assumption"
	// Lemma is a formula proven from the axioms, usable as an intermediate
	// step.
	Lemma Role = "lemma"
	// Theorem is a proven formula.
	Theorem Role = "theorem"
	// Corollary follows from a theorem.
	Corollary Role = "corollary"
	// Conjecture is the formula to be proven.
	Conjecture Role = "conjecture"
	// NegatedConjecture is the negation of the formula to be proven.
	NegatedConjecture Role = "negated_conjecture"
	// Plain carries no role semantics.
	Plain Role = "plain"
	// FiDomain axiomatises the domain of a finite interpretation.
	FiDomain Role = "fi_domain"
	// FiFunctors axiomatises the functions of a finite interpretation.
	FiFunctors Role = "fi_functors"
	// FiPredicates axiomatises the predicates of a finite interpretation.
	FiPredicates Role = "fi_predicates"
	// Unknown is a formula whose role is not known.
	Unknown Role = "unknown"
)

// Name returns the canonical name of this role.
func (p Role) Name() string { return string(p) }

// Members enumerates the role vocabulary.
func (p Role) Members() []Role {
	return []Role{
		Axiom, Hypothesis, Definition, Assumption,
		Lemma, Theorem, Corollary,
		Conjecture, NegatedConjecture, Plain,
		FiDomain, FiFunctors, FiPredicates, Unknown,
	}
}

// ===================================================================
// Modalities
// ===================================================================

// Modality is the vocabulary of modal operators.
type Modality string

const (
	// Box is the necessity operator.
	Box Modality = "box"
	// Diamond is the possibility operator.
	Diamond Modality = "dia"
)

// Name returns the canonical name of this modality.
func (p Modality) Name() string { return string(p) }

// Members enumerates the modality vocabulary.
func (p Modality) Members() []Modality {
	return []Modality{Box, Diamond}
}

// ===================================================================
// Introduction kinds
// ===================================================================

// Intro is the vocabulary of reasons for which a unit can be introduced into
// a derivation.
type Intro string

const (
	// ByDefinition marks a unit introduced as a definition.
	ByDefinition Intro = "definition"
	// ByAxiomOfChoice marks a unit introduced as an instance of the axiom of
	// choice.
	ByAxiomOfChoice Intro = "axiom_of_choice"
	// ByTautology marks a unit introduced as a tautology.
	ByTautology Intro = "tautology"
	// ByAssumption marks a unit introduced as a local assumption.
	ByAssumption Intro = "assumption"
)

// Name returns the canonical name of this introduction kind.
func (p Intro) Name() string { return string(p) }

// Members enumerates the introduction vocabulary.
func (p Intro) Members() []Intro {
	return []Intro{ByDefinition, ByAxiomOfChoice, ByTautology, ByAssumption}
}
