package ast

import (
	"fmt"
	"strings"

	"github.com/twistedduck/tptp/pkg/util"
)

// Success is the vocabulary of SZS success codes, reported by a prover when
// its proof search reached a conclusive outcome.  Members are named by their
// standard short codes and carry the corresponding long names.
type Success string

const (
	// SUC ("Success") is the root of the success ontology.
	SUC Success = "Success"
	// UNP ("UnsatisfiabilityPreserving") holds when unsatisfiability carries
	// from axioms to conjecture.
	UNP Success = "UnsatisfiabilityPreserving"
	// SAP ("SatisfiabilityPreserving") holds when satisfiability carries from
	// axioms to conjecture.
	SAP Success = "SatisfiabilityPreserving"
	// ESA ("EquiSatisfiable") holds when axioms and conjecture are
	// equisatisfiable.
	ESA Success = "EquiSatisfiable"
	// SAT ("Satisfiable") holds when the formulas have a model.
	SAT Success = "Satisfiable"
	// FSA ("FinitelySatisfiable") holds when the formulas have a finite model.
	FSA Success = "FinitelySatisfiable"
	// THM ("Theorem") holds when the conjecture follows from the axioms.
	THM Success = "Theorem"
	// EQV ("Equivalent") holds when axioms and conjecture are equivalent.
	EQV Success = "Equivalent"
	// TAC ("TautologousConclusion") holds when the conjecture is a tautology.
	TAC Success = "TautologousConclusion"
	// WEC ("WeakerConclusion") holds when the conjecture is weaker than the
	// axioms.
	WEC Success = "WeakerConclusion"
	// ETH ("EquivalentTheorem") holds when the conjecture is an equivalent
	// theorem.
	ETH Success = "EquivalentTheorem"
	// TAU ("Tautology") holds when every formula is a tautology.
	TAU Success = "Tautology"
	// WTC ("WeakerTautologousConclusion") combines WEC and TAC.
	WTC Success = "WeakerTautologousConclusion"
	// WTH ("WeakerTheorem") holds when a weakened conjecture is a theorem.
	WTH Success = "WeakerTheorem"
	// CAX ("ContradictoryAxioms") holds when the axioms are inconsistent.
	CAX Success = "ContradictoryAxioms"
	// SCA ("SatisfiableConclusionContradictsAxioms") combines CAX with a
	// satisfiable conjecture.
	SCA Success = "SatisfiableConclusionContradictsAxioms"
	// TCA ("TautologousConclusionContradictsAxioms") combines CAX with a
	// tautologous conjecture.
	TCA Success = "TautologousConclusionContradictsAxioms"
	// WCA ("WeakerConclusionContradictsAxioms") combines CAX with a weakened
	// conjecture.
	WCA Success = "WeakerConclusionContradictsAxioms"
	// CUP ("CounterUnsatisfiabilityPreserving") is the counter analogue of
	// UNP.
	CUP Success = "CounterUnsatisfiabilityPreserving"
	// CSP ("CounterSatisfiabilityPreserving") is the counter analogue of SAP.
	CSP Success = "CounterSatisfiabilityPreserving"
	// ECS ("EquiCounterSatisfiable") is the counter analogue of ESA.
	ECS Success = "EquiCounterSatisfiable"
	// CSA ("CounterSatisfiable") holds when the negated conjecture has a
	// model.
	CSA Success = "CounterSatisfiable"
	// CTH ("CounterTheorem") holds when the negated conjecture follows from
	// the axioms.
	CTH Success = "CounterTheorem"
	// CEQ ("CounterEquivalent") holds when axioms and negated conjecture are
	// equivalent.
	CEQ Success = "CounterEquivalent"
	// UNC ("UnsatisfiableConclusion") holds when the conjecture is
	// unsatisfiable.
	UNC Success = "UnsatisfiableConclusion"
	// WCC ("WeakerCounterConclusion") is the counter analogue of WEC.
	WCC Success = "WeakerCounterConclusion"
	// ECT ("EquivalentCounterTheorem") is the counter analogue of ETH.
	ECT Success = "EquivalentCounterTheorem"
	// FUN ("FinitelyUnsatisfiable") holds when every finite interpretation
	// falsifies the formulas.
	FUN Success = "FinitelyUnsatisfiable"
	// UNS ("Unsatisfiable") holds when the formulas have no model.
	UNS Success = "Unsatisfiable"
	// WUC ("WeakerUnsatisfiableConclusion") combines WCC and UNC.
	WUC Success = "WeakerUnsatisfiableConclusion"
	// WCT ("WeakerCounterTheorem") holds when a weakened negated conjecture
	// is a theorem.
	WCT Success = "WeakerCounterTheorem"
	// SCC ("SatisfiableCounterConclusionContradictsAxioms") is the counter
	// analogue of SCA.
	SCC Success = "SatisfiableCounterConclusionContradictsAxioms"
	// UCA ("UnsatisfiableConclusionContradictsAxioms") combines CAX with an
	// unsatisfiable conjecture.
	UCA Success = "UnsatisfiableConclusionContradictsAxioms"
	// NOC ("NoConsequence") holds when the conjecture neither follows from
	// nor contradicts the axioms.
	NOC Success = "NoConsequence"
)

// Name returns the canonical (long) name of this success code.
func (p Success) Name() string { return string(p) }

// Members enumerates the success vocabulary.
func (p Success) Members() []Success {
	return []Success{
		SUC, UNP, SAP, ESA, SAT, FSA, THM, EQV, TAC, WEC, ETH, TAU,
		WTC, WTH, CAX, SCA, TCA, WCA, CUP, CSP, ECS, CSA, CTH, CEQ,
		UNC, WCC, ECT, FUN, UNS, WUC, WCT, SCC, UCA, NOC,
	}
}

// ===================================================================
// No-success codes
// ===================================================================

// NoSuccess is the vocabulary of SZS no-success codes, reported by a prover
// when its proof search did not reach a conclusive outcome.
type NoSuccess string

const (
	// NOS ("NoSuccess") is the root of the no-success ontology.
	NOS NoSuccess = "NoSuccess"
	// OPN ("Open") marks a problem not yet attempted.
	OPN NoSuccess = "Open"
	// UNK ("Unknown") marks an attempt with unknown outcome.
	UNK NoSuccess = "Unknown"
	// STP ("Stopped") marks an attempt which was interrupted.
	STP NoSuccess = "Stopped"
	// ERR ("Error") marks an attempt which failed with an error.
	ERR NoSuccess = "Error"
	// OSE ("OSError") marks an operating system failure.
	OSE NoSuccess = "OSError"
	// INE ("InputError") marks malformed input.
	INE NoSuccess = "InputError"
	// SYE ("SyntaxError") marks syntactically malformed input.
	SYE NoSuccess = "SyntaxError"
	// SEE ("SemanticError") marks semantically malformed input.
	SEE NoSuccess = "SemanticError"
	// TYE ("TypeError") marks ill-typed input.
	TYE NoSuccess = "TypeError"
	// FOR ("Forced") marks an attempt stopped by external forces.
	FOR NoSuccess = "Forced"
	// USR ("User") marks an attempt stopped by the user.
	USR NoSuccess = "User"
	// RSO ("ResourceOut") marks resource exhaustion.
	RSO NoSuccess = "ResourceOut"
	// TMO ("Timeout") marks time exhaustion.
	TMO NoSuccess = "Timeout"
	// MMO ("MemoryOut") marks memory exhaustion.
	MMO NoSuccess = "MemoryOut"
	// GUP ("GaveUp") marks an attempt the prover abandoned.
	GUP NoSuccess = "GaveUp"
	// INC ("Incomplete") marks an attempt abandoned due to incompleteness.
	INC NoSuccess = "Incomplete"
	// IAP ("Inappropriate") marks a problem the prover cannot attempt.
	IAP NoSuccess = "Inappropriate"
	// INP ("InProgress") marks an attempt still running.
	INP NoSuccess = "InProgress"
	// NTT ("NotTried") marks a problem the prover has not tried.
	NTT NoSuccess = "NotTried"
	// NTY ("NotTriedYet") marks a problem the prover has not tried yet, but
	// will.
	NTY NoSuccess = "NotTriedYet"
)

// Name returns the canonical (long) name of this no-success code.
func (p NoSuccess) Name() string { return string(p) }

// Members enumerates the no-success vocabulary.
func (p NoSuccess) Members() []NoSuccess {
	return []NoSuccess{
		NOS, OPN, UNK, STP, ERR, OSE, INE, SYE, SEE, TYE, FOR,
		USR, RSO, TMO, MMO, GUP, INC, IAP, INP, NTT, NTY,
	}
}

// ===================================================================
// Dataforms
// ===================================================================

// Dataform is the vocabulary of SZS dataform codes, describing the shape of
// the data a prover outputs alongside its status.
type Dataform string

const (
	// LDa ("LogicalData") is the root of the dataform ontology.
	LDa Dataform = "LogicalData"
	// Sol ("Solution") is a solution to the problem.
	Sol Dataform = "Solution"
	// Prf ("Proof") is a proof of the conjecture.
	Prf Dataform = "Proof"
	// Der ("Derivation") is a derivation of some formulas.
	Der Dataform = "Derivation"
	// Ref ("Refutation") is a refutation of the negated conjecture.
	Ref Dataform = "Refutation"
	// CRf ("CNFRefutation") is a refutation in clausal normal form.
	CRf Dataform = "CNFRefutation"
	// Mod ("Model") is a model of the formulas.
	Mod Dataform = "Model"
	// Sat ("Saturation") is a saturated set of formulas.
	Sat Dataform = "Saturation"
	// Lof ("ListOfFormulae") is a list of formulas.
	Lof Dataform = "ListOfFormulae"
	// Lth ("ListOfTHF") is a list of higher-order formulas.
	Lth Dataform = "ListOfTHF"
	// Ltf ("ListOfTFF") is a list of sorted first-order formulas.
	Ltf Dataform = "ListOfTFF"
	// Lfo ("ListOfFOF") is a list of unsorted first-order formulas.
	Lfo Dataform = "ListOfFOF"
	// Lcn ("ListOfCNF") is a list of clauses.
	Lcn Dataform = "ListOfCNF"
	// Ass ("Assurance") is an assurance of the status, with no data.
	Ass Dataform = "Assurance"
	// IPr ("IncompleteProof") is a proof with gaps.
	IPr Dataform = "IncompleteProof"
	// Non ("None") is no data at all.
	Non Dataform = "None"
)

// Name returns the canonical (long) name of this dataform.
func (p Dataform) Name() string { return string(p) }

// Members enumerates the dataform vocabulary.
func (p Dataform) Members() []Dataform {
	return []Dataform{
		LDa, Sol, Prf, Der, Ref, CRf, Mod, Sat,
		Lof, Lth, Ltf, Lfo, Lcn, Ass, IPr, Non,
	}
}

// ===================================================================
// Summary
// ===================================================================

// SZS summarises the outcome a prover reported in the comments preceding a
// derivation: an optional proof-search status together with an optional
// dataform describing the output.
type SZS struct {
	// Status of the proof search (if reported).
	Status util.Option[util.Either[Success, NoSuccess]]
	// Dataform of the output (if reported).
	Dataform util.Option[Dataform]
}

// String renders this summary as SZS comment lines, or the empty string when
// nothing was reported.
func (p SZS) String() string {
	var lines []string
	//
	if p.Status.HasValue() {
		var name string
		//
		if status := p.Status.Unwrap(); status.IsLeft() {
			name = status.UnwrapLeft().Name()
		} else {
			name = status.UnwrapRight().Name()
		}
		//
		lines = append(lines, fmt.Sprintf("%% SZS status %s", name))
	}
	//
	if p.Dataform.HasValue() {
		lines = append(lines, fmt.Sprintf("%% SZS output start %s", p.Dataform.Unwrap().Name()))
	}
	//
	return strings.Join(lines, "\n")
}
