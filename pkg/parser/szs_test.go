package parser

import (
	"reflect"
	"testing"

	"github.com/twistedduck/tptp/pkg/ast"
	"github.com/twistedduck/tptp/pkg/util"
)

func TestSZS_Derivation(t *testing.T) {
	var input = `% SZS status Theorem for SYN001+1
% SZS output start CNFRefutation for SYN001+1
cnf(c1,axiom, p(X), file('syn001.p', ax1)).
cnf(c2,negated_conjecture, ~ p(a)).
cnf(c3,plain, $false, inference(resolution, [status(Theorem)], [c1, c2])).
`
	//
	document, errs := ParseTSTPString(input)
	//
	if len(errs) > 0 {
		t.Fatalf("unexpected error: %s", errs[0].Message())
	}
	//
	CheckStatus(t, statusOf(ast.THM), document.SZS)
	//
	if document.SZS.Dataform != util.Some(ast.CRf) {
		t.Errorf("expected CNFRefutation dataform, got %s", document.SZS.String())
	}
	//
	if len(document.Units) != 3 {
		t.Errorf("expected three units, got %d", len(document.Units))
	}
}

func TestSZS_NoHeader(t *testing.T) {
	document, errs := ParseTSTPString("cnf(c1,axiom, p).")
	//
	if len(errs) > 0 {
		t.Fatalf("unexpected error: %s", errs[0].Message())
	}
	//
	if !reflect.DeepEqual(ast.SZS{}, document.SZS) {
		t.Errorf("expected no summary, got %s", document.SZS.String())
	}
}

func TestSZS_FirstWins(t *testing.T) {
	var input = `% SZS status Unsatisfiable for prob
% SZS status Theorem for prob
cnf(c1,axiom, p).
`
	//
	document, _ := ParseTSTPString(input)
	//
	CheckStatus(t, statusOf(ast.UNS), document.SZS)
}

func TestSZS_NoSuccess(t *testing.T) {
	document, _ := ParseTSTPString("% SZS status Timeout for prob\n")
	//
	if document.SZS.Status != util.Some(util.Right[ast.Success](ast.TMO)) {
		t.Errorf("expected Timeout status, got %s", document.SZS.String())
	}
}

// NotTried and NotTriedYet must not be confused, despite sharing a prefix.
func TestSZS_NotTriedYet(t *testing.T) {
	document, _ := ParseTSTPString("% SZS status NotTriedYet for prob\n")
	//
	if document.SZS.Status != util.Some(util.Right[ast.Success](ast.NTY)) {
		t.Errorf("expected NotTriedYet status, got %s", document.SZS.String())
	}
}

func TestSZS_UnknownStatus(t *testing.T) {
	document, _ := ParseTSTPString("% SZS status Wibble for prob\n")
	//
	if document.SZS.Status.HasValue() {
		t.Errorf("unknown status should be dropped, got %s", document.SZS.String())
	}
}

// The scan stops at the first unit, so trailing SZS comments are ignored.
func TestSZS_LeadingCommentsOnly(t *testing.T) {
	var input = `cnf(c1,axiom, p).
% SZS status Theorem for prob
`
	//
	document, _ := ParseTSTPString(input)
	//
	if document.SZS.Status.HasValue() {
		t.Errorf("trailing status should be ignored, got %s", document.SZS.String())
	}
}

// Block comments terminate the scan as well.
func TestSZS_BlockCommentStopsScan(t *testing.T) {
	var input = `/* prover output */
% SZS status Theorem for prob
cnf(c1,axiom, p).
`
	//
	document, _ := ParseTSTPString(input)
	//
	if document.SZS.Status.HasValue() {
		t.Errorf("status after block comment should be ignored, got %s", document.SZS.String())
	}
}

func TestSZS_OtherCommentsSkipped(t *testing.T) {
	var input = `% Problem  : SYN001+1
% SZS status Satisfiable for prob
cnf(c1,axiom, p).
`
	//
	document, _ := ParseTSTPString(input)
	//
	CheckStatus(t, statusOf(ast.SAT), document.SZS)
}

func TestSZS_String(t *testing.T) {
	var szs = ast.SZS{
		Status:   statusOf(ast.THM),
		Dataform: util.Some(ast.Prf),
	}
	//
	var expected = "% SZS status Theorem\n% SZS output start Proof"
	//
	if szs.String() != expected {
		t.Errorf("expected %q, got %q", expected, szs.String())
	}
}

// ============================================================================
// Helpers
// ============================================================================

func CheckStatus(t *testing.T, want util.Option[util.Either[ast.Success, ast.NoSuccess]], got ast.SZS) {
	if got.Status != want {
		t.Errorf("expected status %v, got %s", want.Unwrap(), got.String())
	}
}

func statusOf(success ast.Success) util.Option[util.Either[ast.Success, ast.NoSuccess]] {
	return util.Some(util.Left[ast.Success, ast.NoSuccess](success))
}
