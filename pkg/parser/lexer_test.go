package parser

import (
	"testing"

	"github.com/twistedduck/tptp/pkg/util/source"
)

func TestLex_Punctuation(t *testing.T) {
	CheckTokens(t, "( ) [ ] , . :",
		LPAREN, RPAREN, LBRACKET, RBRACKET, COMMA, DOT, COLON)
}

func TestLex_Operators(t *testing.T) {
	CheckTokens(t, "<=> <~> => <= != !> ~& ~| | & ~ ! ? = > *",
		IFF, XOR, IMPLIES, IF, NOT_EQUALS, TYPE_QUANT, NAND, NOR,
		VLINE, AMPERSAND, TILDE, EXCLAM, QUESTION, EQUALS, ARROW, STAR)
}

func TestLex_Words(t *testing.T) {
	CheckTokens(t, "word wOrd_9 Word $word $$word #word",
		LOWER_WORD, LOWER_WORD, UPPER_WORD, DOLLAR_WORD, DOLLAR_WORD, HASH_WORD)
}

func TestLex_Numbers(t *testing.T) {
	CheckTokens(t, "0 -17 +3 1/2 -7/2 2.5 -2.5 1e6 2.5e-3",
		INTEGER, INTEGER, INTEGER, RATIONAL, RATIONAL,
		REAL, REAL, REAL, REAL)
}

func TestLex_Quoted(t *testing.T) {
	CheckTokens(t, `'don\'t' "" "say \"moo\""`,
		SINGLE_QUOTED, DOUBLE_QUOTED, DOUBLE_QUOTED)
}

func TestLex_Comments(t *testing.T) {
	// Comments survive lexing (the SZS scan needs them)
	CheckTokens(t, "p % trailing\n/* block */ q",
		LOWER_WORD, LINE_COMMENT, BLOCK_COMMENT, LOWER_WORD)
}

func TestLex_CommentAtEof(t *testing.T) {
	CheckTokens(t, "p. % no newline", LOWER_WORD, DOT, LINE_COMMENT)
}

// A dot between two integers is a dot, not a decimal point, unless digits
// follow it directly.
func TestLex_DotsVersusReals(t *testing.T) {
	CheckTokens(t, "1 . 2", INTEGER, DOT, INTEGER)
	CheckTokens(t, "1.2", REAL)
}

func TestLex_Errors(t *testing.T) {
	var inputs = []string{
		"'unterminated",
		`"unterminated`,
		"/* unterminated",
		"@",
		"$Upper",
	}
	//
	for _, input := range inputs {
		if _, errs := Lex(*source.NewSourceFile("", []byte(input))); len(errs) == 0 {
			t.Errorf("input should not have lexed: %s", input)
		}
	}
}

// ============================================================================
// Helpers
// ============================================================================

func CheckTokens(t *testing.T, input string, kinds ...uint) {
	tokens, errs := Lex(*source.NewSourceFile("", []byte(input)))
	//
	if len(errs) > 0 {
		t.Fatalf("%s: %s", input, errs[0].Message())
	}
	// Final token is always END_OF
	if len(tokens) != len(kinds)+1 {
		t.Fatalf("%s: expected %d tokens, got %d", input, len(kinds)+1, len(tokens))
	}
	//
	for i, kind := range kinds {
		if tokens[i].Kind != kind {
			t.Errorf("%s: token %d has kind %d, expected %d", input, i, tokens[i].Kind, kind)
		}
	}
	//
	if last := tokens[len(kinds)]; last.Kind != END_OF {
		t.Errorf("%s: stream not terminated, got kind %d", input, last.Kind)
	}
}
