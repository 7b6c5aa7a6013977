package parser

import (
	"github.com/twistedduck/tptp/pkg/util"
	"github.com/twistedduck/tptp/pkg/util/source"
	"github.com/twistedduck/tptp/pkg/util/source/lex"
)

// END_OF signals "end of file"
const END_OF uint = 0

// WHITESPACE signals whitespace
const WHITESPACE uint = 1

// LINE_COMMENT signals "% ... \n"
const LINE_COMMENT uint = 2

// BLOCK_COMMENT signals "/* ... */"
const BLOCK_COMMENT uint = 3

// LPAREN signals "("
const LPAREN uint = 10

// RPAREN signals ")"
const RPAREN uint = 11

// LBRACKET signals "["
const LBRACKET uint = 12

// RBRACKET signals "]"
const RBRACKET uint = 13

// COMMA signals ","
const COMMA uint = 14

// DOT signals "."
const DOT uint = 15

// COLON signals ":"
const COLON uint = 16

// IFF signals "<=>"
const IFF uint = 20

// XOR signals "<~>"
const XOR uint = 21

// IMPLIES signals "=>"
const IMPLIES uint = 22

// IF signals "<="
const IF uint = 23

// NOT_EQUALS signals "!="
const NOT_EQUALS uint = 24

// TYPE_QUANT signals "!>"
const TYPE_QUANT uint = 25

// NAND signals "~&"
const NAND uint = 26

// NOR signals "~|"
const NOR uint = 27

// VLINE signals "|"
const VLINE uint = 28

// AMPERSAND signals "&"
const AMPERSAND uint = 29

// TILDE signals "~"
const TILDE uint = 30

// EXCLAM signals "!"
const EXCLAM uint = 31

// QUESTION signals "?"
const QUESTION uint = 32

// EQUALS signals "="
const EQUALS uint = 33

// ARROW signals ">"
const ARROW uint = 34

// STAR signals "*"
const STAR uint = 35

// INTEGER signals a signed integer number
const INTEGER uint = 40

// RATIONAL signals a fraction of two integer numbers
const RATIONAL uint = 41

// REAL signals a decimal number, optionally in scientific notation
const REAL uint = 42

// LOWER_WORD signals a word starting with a lowercase letter
const LOWER_WORD uint = 50

// UPPER_WORD signals a word starting with an uppercase letter
const UPPER_WORD uint = 51

// DOLLAR_WORD signals a lowercase word prefixed by "$"
const DOLLAR_WORD uint = 52

// HASH_WORD signals a lowercase word prefixed by "#"
const HASH_WORD uint = 53

// SINGLE_QUOTED signals "'...'"
const SINGLE_QUOTED uint = 54

// DOUBLE_QUOTED signals a double quoted string
const DOUBLE_QUOTED uint = 55

// Rule for describing whitespace
var whitespace lex.Scanner[rune] = lex.Many(lex.Or(
	lex.Unit(' '), lex.Unit('\t'), lex.Unit('\r'), lex.Unit('\n')))

// Line comments start with '%' and continue until a newline or EOF.
var lineComment lex.Scanner[rune] = lex.And(lex.Unit('%'), lex.Until('\n'))

// Block comments are bracketed by "/*" and "*/", and must be terminated.
var blockComment lex.Scanner[rune] = lex.Sequence(lex.Unit('/', '*'), lex.UntilAfter('*', '/'))

// Rules for describing words.  A word is a sequence of alphanumeric
// characters whose case is mandated for the first.
var (
	alphaNumeric = lex.Or(
		lex.Within('0', '9'),
		lex.Within('a', 'z'),
		lex.Within('A', 'Z'),
		lex.Unit('_'),
	)

	lowerWord = lex.And(lex.Within('a', 'z'), lex.Many(alphaNumeric))
	upperWord = lex.And(lex.Within('A', 'Z'), lex.Many(alphaNumeric))

	// System extensions ($$word) lex as a single dollar word.
	dollarWord = lex.Or(
		lex.Sequence(lex.Unit('$', '$'), lowerWord),
		lex.Sequence(lex.Unit('$'), lowerWord),
	)
	hashWord = lex.Sequence(lex.Unit('#'), lowerWord)
)

// Rules for describing quoted tokens.  A quoted token accepts any printable
// character, with the quote character itself and backslash escaped by a
// backslash.  Single quoted tokens must be non-empty; double quoted tokens
// may be empty.
var (
	singleQuotedChar = lex.Or(
		lex.Unit('\\', '\''),
		lex.Unit('\\', '\\'),
		lex.And(lex.Within(' ', '~'), lex.Not('\'', '\\')),
	)

	doubleQuotedChar = lex.Or(
		lex.Unit('\\', '"'),
		lex.Unit('\\', '\\'),
		lex.And(lex.Within(' ', '~'), lex.Not('"', '\\')),
	)

	singleQuoted = lex.Sequence(
		lex.Unit('\''), lex.Many(singleQuotedChar), lex.Unit('\''))

	doubleQuoted = lex.Sequence(
		lex.SequenceNullableLast(lex.Unit('"'), lex.Many(doubleQuotedChar)), lex.Unit('"'))
)

// Rules for describing numbers.  A rational is a signed integer over an
// unsigned integer; a real carries a fraction, an exponent, or both.
var (
	digits = lex.And(lex.Within('0', '9'), lex.Many(lex.Within('0', '9')))

	signedDigits = lex.Or(
		lex.Sequence(lex.Or(lex.Unit('+'), lex.Unit('-')), digits),
		digits,
	)

	fraction = lex.Sequence(lex.Unit('.'), digits)
	exponent = lex.Sequence(lex.Or(lex.Unit('e'), lex.Unit('E')), signedDigits)

	rational = lex.Sequence(signedDigits, lex.Unit('/'), digits)

	real = lex.Or(
		lex.Sequence(signedDigits, fraction, exponent),
		lex.Sequence(signedDigits, fraction),
		lex.Sequence(signedDigits, exponent),
	)

	integer = signedDigits
)

// lexing rules
var rules []lex.LexRule[rune] = []lex.LexRule[rune]{
	lex.Rule(lineComment, LINE_COMMENT),
	lex.Rule(blockComment, BLOCK_COMMENT),
	lex.Rule(lex.Unit('('), LPAREN),
	lex.Rule(lex.Unit(')'), RPAREN),
	lex.Rule(lex.Unit('['), LBRACKET),
	lex.Rule(lex.Unit(']'), RBRACKET),
	lex.Rule(lex.Unit(','), COMMA),
	lex.Rule(lex.Unit(':'), COLON),
	lex.Rule(lex.Unit('<', '=', '>'), IFF),
	lex.Rule(lex.Unit('<', '~', '>'), XOR),
	lex.Rule(lex.Unit('<', '='), IF),
	lex.Rule(lex.Unit('=', '>'), IMPLIES),
	lex.Rule(lex.Unit('!', '='), NOT_EQUALS),
	lex.Rule(lex.Unit('!', '>'), TYPE_QUANT),
	lex.Rule(lex.Unit('~', '&'), NAND),
	lex.Rule(lex.Unit('~', '|'), NOR),
	lex.Rule(lex.Unit('|'), VLINE),
	lex.Rule(lex.Unit('&'), AMPERSAND),
	lex.Rule(lex.Unit('~'), TILDE),
	lex.Rule(lex.Unit('!'), EXCLAM),
	lex.Rule(lex.Unit('?'), QUESTION),
	lex.Rule(lex.Unit('='), EQUALS),
	lex.Rule(lex.Unit('>'), ARROW),
	lex.Rule(lex.Unit('*'), STAR),
	lex.Rule(whitespace, WHITESPACE),
	// Rationals must precede integers, since every rational starts with one.
	lex.Rule(rational, RATIONAL),
	lex.Rule(real, REAL),
	lex.Rule(integer, INTEGER),
	lex.Rule(lex.Unit('.'), DOT),
	lex.Rule(singleQuoted, SINGLE_QUOTED),
	lex.Rule(doubleQuoted, DOUBLE_QUOTED),
	lex.Rule(dollarWord, DOLLAR_WORD),
	lex.Rule(hashWord, HASH_WORD),
	lex.Rule(lowerWord, LOWER_WORD),
	lex.Rule(upperWord, UPPER_WORD),
	lex.Rule(lex.Eof[rune](), END_OF),
}

// Lex a given source file into a sequence of zero or more tokens, along with
// any syntax errors arising.  Whitespace tokens are removed, but comment
// tokens are kept for the benefit of the SZS scan.
func Lex(srcfile source.File) ([]lex.Token, []source.SyntaxError) {
	var (
		lexer = lex.NewLexer(srcfile.Contents(), rules...)
		// Lex as many tokens as possible
		tokens = lexer.Collect()
	)
	// Check whether anything was left (if so this is an error)
	if lexer.Remaining() != 0 {
		var (
			start, end = lexer.Index(), lexer.Index() + lexer.Remaining()
			span       = source.NewSpan(int(start), int(end))
			err        = srcfile.SyntaxError(span, lexFailure(srcfile.Contents()[start:]))
		)
		// errors
		return nil, []source.SyntaxError{*err}
	}
	// Remove any whitespace
	tokens = util.RemoveMatching(tokens, func(t lex.Token) bool { return t.Kind == WHITESPACE })
	// Done
	return tokens, nil
}

// lexFailure refines the diagnostic for unlexable text by inspecting the
// character the lexer stopped on.
func lexFailure(remaining []rune) string {
	switch {
	case remaining[0] == '\'':
		return "malformed single quoted atom"
	case remaining[0] == '"':
		return "malformed distinct object"
	case len(remaining) >= 2 && remaining[0] == '/' && remaining[1] == '*':
		return "unterminated block comment"
	default:
		return "unknown text encountered"
	}
}
