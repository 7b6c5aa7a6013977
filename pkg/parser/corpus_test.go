package parser

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/twistedduck/tptp/pkg/ast"
	"github.com/twistedduck/tptp/pkg/util"
	"github.com/twistedduck/tptp/pkg/util/source"
)

// Determines the (relative) location of the test directory.  That is where
// the corpus of problem (and derivation) files is found.
const TestDir = "testdata"

// ===================================================================
// Problem Files
// ===================================================================

func Test_Corpus_Agatha(t *testing.T) {
	CheckProblem(t, "agatha.p", 12)
}

func Test_Corpus_AgathaGzipped(t *testing.T) {
	CheckProblem(t, "agatha_gz.p.gz", 12)
}

func Test_Corpus_Group(t *testing.T) {
	CheckProblem(t, "group.p", 8)
}

func Test_Corpus_Arithmetic(t *testing.T) {
	CheckProblem(t, "arithmetic.p", 7)
}

func Test_Corpus_Lists(t *testing.T) {
	CheckProblem(t, "lists.p", 8)
}

func Test_Corpus_Modal(t *testing.T) {
	CheckProblem(t, "modal.p", 4)
}

func Test_Corpus_Includes(t *testing.T) {
	CheckProblem(t, "includes.p", 3)
}

// ===================================================================
// Derivation Files
// ===================================================================

func Test_Corpus_GroupProof(t *testing.T) {
	document := CheckDerivation(t, "group_proof.s", 6)
	//
	CheckStatus(t, statusOf(ast.UNS), document.SZS)
	//
	if document.SZS.Dataform != util.Some(ast.CRf) {
		t.Errorf("unexpected dataform: %v", document.SZS.Dataform)
	}
}

func Test_Corpus_Timeout(t *testing.T) {
	document := CheckDerivation(t, "timeout.s", 0)
	//
	want := util.Some(util.Right[ast.Success](ast.TMO))
	if document.SZS.Status != want {
		t.Errorf("unexpected status: %v", document.SZS.Status)
	}
}

// ===================================================================
// Invalid Files
// ===================================================================

func Test_Corpus_InvalidMissingDot(t *testing.T) {
	CheckInvalid(t, "invalid_missing_dot.p")
}

func Test_Corpus_InvalidUnclosed(t *testing.T) {
	CheckInvalid(t, "invalid_unclosed.p")
}

// ===================================================================
// Helpers
// ===================================================================

// CheckProblem reads a given problem file from the corpus, checks it parses
// cleanly into the expected number of units with a span recorded for each,
// and checks its canonical rendering parses back to the same document.
func CheckProblem(t *testing.T, filename string, nunits int) {
	file := readCorpusFile(t, filename)
	//
	document, srcmap, errs := ParseTPTP(file)
	//
	for _, err := range errs {
		t.Errorf("%s: %s", filename, err.Message())
	}
	//
	if len(errs) > 0 {
		t.FailNow()
	}
	//
	if len(document.Units) != nunits {
		t.Errorf("%s: expected %d units, got %d", filename, nunits, len(document.Units))
	}
	//
	for i := range document.Units {
		if !srcmap.Has(uint(i)) {
			t.Errorf("%s: unit %d missing from source map", filename, i)
		}
	}
	// Check the canonical rendering reparses to the same document.
	reparsed, errs := ParseTPTPString(document.String())
	//
	if len(errs) > 0 {
		t.Errorf("%s: canonical form does not reparse: %s", filename, errs[0].Message())
	} else if !reflect.DeepEqual(document, reparsed) {
		t.Errorf("%s: canonical form reparses differently", filename)
	}
}

// CheckDerivation reads a given derivation file from the corpus and checks it
// parses cleanly into the expected number of units.
func CheckDerivation(t *testing.T, filename string, nunits int) ast.TSTP {
	file := readCorpusFile(t, filename)
	//
	document, _, errs := ParseTSTP(file)
	//
	for _, err := range errs {
		t.Errorf("%s: %s", filename, err.Message())
	}
	//
	if len(errs) > 0 {
		t.FailNow()
	}
	//
	if len(document.Units) != nunits {
		t.Errorf("%s: expected %d units, got %d", filename, nunits, len(document.Units))
	}
	//
	return document
}

// CheckInvalid reads a given file from the corpus and checks it does not
// parse.
func CheckInvalid(t *testing.T, filename string) {
	file := readCorpusFile(t, filename)
	//
	if _, _, errs := ParseTPTP(file); len(errs) == 0 {
		t.Errorf("%s: expected syntax errors", filename)
	}
}

func readCorpusFile(t *testing.T, filename string) *source.File {
	files, err := source.ReadFiles(filepath.Join(TestDir, filename))
	if err != nil {
		t.Fatal(err)
	}
	//
	return &files[0]
}
