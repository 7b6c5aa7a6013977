package ast

import (
	"testing"
)

// ============================================================================
// Reserved identifiers
// ============================================================================

// checkVocabulary checks that every member of a vocabulary resolves back to
// itself from its canonical name, and that unknown text falls back to an
// extension.
func checkVocabulary[T Named[T]](t *testing.T) {
	var empty T
	//
	for _, member := range empty.Members() {
		reserved := Extended[T](member.Name())
		//
		if !reserved.IsStandard() {
			t.Errorf("%s not recognised as standard", member.Name())
		} else if reserved.Unwrap().Name() != member.Name() {
			t.Errorf("%s resolved to %s", member.Name(), reserved.Unwrap().Name())
		}
	}
	// Unknown text must fall back to an extension
	if Extended[T]("zz_no_such_member").IsStandard() {
		t.Errorf("unknown text resolved as standard")
	}
}

func TestNames_Sorts(t *testing.T)       { checkVocabulary[Sort](t) }
func TestNames_Functions(t *testing.T)   { checkVocabulary[Function](t) }
func TestNames_Predicates(t *testing.T)  { checkVocabulary[Predicate](t) }
func TestNames_Quantifiers(t *testing.T) { checkVocabulary[Quantifier](t) }
func TestNames_Connectives(t *testing.T) { checkVocabulary[Connective](t) }
func TestNames_Signs(t *testing.T)       { checkVocabulary[Sign](t) }
func TestNames_Roles(t *testing.T)       { checkVocabulary[Role](t) }
func TestNames_Modalities(t *testing.T)  { checkVocabulary[Modality](t) }
func TestNames_Intros(t *testing.T)      { checkVocabulary[Intro](t) }
func TestNames_Success(t *testing.T)     { checkVocabulary[Success](t) }
func TestNames_NoSuccess(t *testing.T)   { checkVocabulary[NoSuccess](t) }
func TestNames_Dataforms(t *testing.T)   { checkVocabulary[Dataform](t) }

func TestNames_Extension(t *testing.T) {
	reserved := Extended[Role]("speculation")
	//
	if reserved.IsStandard() {
		t.Errorf("extension resolved as standard")
	} else if reserved.String() != "speculation" {
		t.Errorf("extension lost its text: %s", reserved.String())
	}
}

// A name sharing a prefix with a standard member must not be short matched.
func TestNames_NoPrefixMatch(t *testing.T) {
	if Extended[NoSuccess]("NotTriedYet") != Standard(NTY) {
		t.Errorf("NotTriedYet failed to resolve")
	}
	//
	if Extended[NoSuccess]("NotTried") != Standard(NTT) {
		t.Errorf("NotTried failed to resolve")
	}
	//
	if Extended[NoSuccess]("NotTriedYetMore").IsStandard() {
		t.Errorf("NotTriedYetMore should be an extension")
	}
}

// ============================================================================
// Rendering
// ============================================================================

func TestNames_AtomBare(t *testing.T) {
	checkString(t, "apply_1", Atom("apply_1"))
}

func TestNames_AtomQuoted(t *testing.T) {
	checkString(t, "'two words'", Atom("two words"))
	checkString(t, "'Upper'", Atom("Upper"))
	checkString(t, "'123'", Atom("123"))
	checkString(t, `'don\'t'`, Atom("don't"))
	checkString(t, `'back\\slash'`, Atom(`back\slash`))
}

func TestNames_DistinctObject(t *testing.T) {
	checkString(t, `""`, DistinctObject(""))
	checkString(t, `"cheese"`, DistinctObject("cheese"))
	checkString(t, `"say \"moo\""`, DistinctObject(`say "moo"`))
}

func TestNames_Reserved(t *testing.T) {
	checkString(t, "$int", StandardName(Integers))
	checkString(t, "$array", ReservedName(Extended[Sort]("array")))
	checkString(t, "$$array", ReservedName(Extended[Sort]("$array")))
	checkString(t, "list", DefinedName[Sort](Atom("list")))
}

func checkString(t *testing.T, want string, item interface{ String() string }) {
	if got := item.String(); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}
