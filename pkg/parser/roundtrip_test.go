package parser

import (
	"reflect"
	"testing"

	"github.com/twistedduck/tptp/internal/gen"
	"github.com/twistedduck/tptp/pkg/ast"
	"github.com/twistedduck/tptp/pkg/util"
	"github.com/twistedduck/tptp/pkg/util/source"
)

// Number of documents to generate per round trip.
const ROUNDTRIP_TESTS = 200

// ============================================================================
// Formula round trips
// ============================================================================

func TestRoundTrip_Cnf(t *testing.T) {
	for i := 0; i < ROUNDTRIP_TESTS; i++ {
		roundTripFormula(t, gen.Formula(ast.LangCNF, 2))
	}
}

func TestRoundTrip_Fof(t *testing.T) {
	for i := 0; i < ROUNDTRIP_TESTS; i++ {
		roundTripFormula(t, gen.Formula(ast.LangFOF, 3))
	}
}

func TestRoundTrip_Tff(t *testing.T) {
	for i := 0; i < ROUNDTRIP_TESTS; i++ {
		roundTripFormula(t, gen.Formula(ast.LangTFF, 3))
	}
}

func TestRoundTrip_Qmf(t *testing.T) {
	for i := 0; i < ROUNDTRIP_TESTS; i++ {
		roundTripFormula(t, gen.Formula(ast.LangQMF, 3))
	}
}

// ============================================================================
// Declaration round trips
// ============================================================================

func TestRoundTrip_Types(t *testing.T) {
	for i := 0; i < ROUNDTRIP_TESTS; i++ {
		roundTripUnit(t, ast.AnnotatedUnit{
			Name:        gen.UnitName(),
			Declaration: ast.Typing{Name: gen.Atom(), Type: gen.Type()},
		})
	}
}

func TestRoundTrip_Declarations(t *testing.T) {
	for i := 0; i < ROUNDTRIP_TESTS; i++ {
		roundTripUnit(t, ast.AnnotatedUnit{
			Name:        gen.UnitName(),
			Declaration: gen.Declaration(ast.LangTFF, 2),
		})
	}
}

func TestRoundTrip_Annotations(t *testing.T) {
	for i := 0; i < ROUNDTRIP_TESTS; i++ {
		roundTripUnit(t, ast.AnnotatedUnit{
			Name:        gen.UnitName(),
			Declaration: gen.Declaration(ast.LangCNF, 1),
			Annotation:  util.Some(gen.Annotation(2)),
		})
	}
}

// ============================================================================
// Document round trips
// ============================================================================

func TestRoundTrip_Problems(t *testing.T) {
	for i := 0; i < ROUNDTRIP_TESTS; i++ {
		var document = gen.TPTP(5, 2)
		//
		parsed, errs := ParseTPTPString(document.String())
		//
		if len(errs) > 0 {
			t.Fatalf("%s: %s", document.String(), errs[0].Message())
		} else if !reflect.DeepEqual(document, parsed) {
			t.Fatalf("expected %s, got %s", document.String(), parsed.String())
		}
	}
}

func TestRoundTrip_Derivations(t *testing.T) {
	for i := 0; i < ROUNDTRIP_TESTS; i++ {
		var document = gen.TSTP(5, 2)
		//
		parsed, errs := ParseTSTPString(document.String())
		//
		if len(errs) > 0 {
			t.Fatalf("%s: %s", document.String(), errs[0].Message())
		} else if !reflect.DeepEqual(document, parsed) {
			t.Fatalf("expected %s, got %s", document.String(), parsed.String())
		}
	}
}

// Source maps cover every unit of a parsed document.
func TestRoundTrip_SourceMap(t *testing.T) {
	var document = gen.TPTP(5, 2)
	//
	parsed, srcmap, errs := ParseTPTP(source.NewSourceFile("gen.p", []byte(document.String())))
	//
	if len(errs) > 0 {
		t.Fatalf("unexpected error: %s", errs[0].Message())
	}
	//
	for i := range parsed.Units {
		if !srcmap.Has(uint(i)) {
			t.Errorf("unit %d has no source span", i)
		}
	}
}

// ============================================================================
// Helpers
// ============================================================================

// roundTripFormula renders a formula inside a unit, parses the result back,
// and checks the parse reproduced the formula exactly.
func roundTripFormula(t *testing.T, formula ast.Formula) {
	roundTripUnit(t, ast.AnnotatedUnit{
		Name: ast.AtomName("u"),
		Declaration: ast.TaggedFormula{
			Role:    ast.Standard(ast.Axiom),
			Formula: formula,
		},
	})
}

// roundTripUnit renders a unit, parses the result back, and checks the parse
// reproduced the unit exactly.
func roundTripUnit(t *testing.T, unit ast.Unit) {
	var document = ast.TPTP{Units: []ast.Unit{unit}}
	//
	parsed, errs := ParseTPTPString(document.String())
	//
	if len(errs) > 0 {
		t.Fatalf("%s: %s", document.String(), errs[0].Message())
	} else if !reflect.DeepEqual(document, parsed) {
		t.Fatalf("expected %s, got %s", document.String(), parsed.String())
	}
}
