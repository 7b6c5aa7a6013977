package parser

import (
	"reflect"
	"strings"
	"testing"

	"github.com/twistedduck/tptp/pkg/ast"
	"github.com/twistedduck/tptp/pkg/util"
)

// ============================================================================
// Positive tests
// ============================================================================

func TestParser_EmptyDocument(t *testing.T) {
	CheckOk(t, ast.TPTP{}, "")
	CheckOk(t, ast.TPTP{}, " % just a comment\n /* and another */ ")
}

func TestParser_Cnf(t *testing.T) {
	var (
		p ast.Literal = ast.Predication{
			Name: defined[ast.Predicate]("p"), Arguments: []ast.Term{ast.Var("X")}}
		q ast.Literal = ast.Predication{
			Name: defined[ast.Predicate]("q"), Arguments: []ast.Term{ast.Var("X")}}
	)
	//
	unit := annotated("c1", ast.TaggedFormula{
		Role: ast.Standard(ast.Axiom),
		Formula: ast.CNF{Clause: ast.NewClause([]util.Pair[ast.Sign, ast.Literal]{
			util.NewPair(ast.Positive, p),
			util.NewPair(ast.Negative, q),
		})},
	})
	//
	CheckOk(t, document(unit), "cnf(c1,axiom, p(X) | ~ q(X)).")
}

func TestParser_CnfNested(t *testing.T) {
	var (
		a ast.Literal = ast.Predication{Name: defined[ast.Predicate]("a")}
		b ast.Literal = ast.Predication{Name: defined[ast.Predicate]("b")}
		c ast.Literal = ast.Predication{Name: defined[ast.Predicate]("c")}
	)
	// Nested subclauses flatten, in order, into the enclosing clause
	unit := annotated("c2", ast.TaggedFormula{
		Role: ast.Standard(ast.Axiom),
		Formula: ast.CNF{Clause: ast.NewClause([]util.Pair[ast.Sign, ast.Literal]{
			util.NewPair(ast.Positive, a),
			util.NewPair(ast.Negative, b),
			util.NewPair(ast.Positive, c),
		})},
	})
	//
	CheckOk(t, document(unit), "cnf(c2,axiom, (a | ~(b)) | c).")
}

func TestParser_CnfEquality(t *testing.T) {
	unit := annotated("c3", ast.TaggedFormula{
		Role: ast.Standard(ast.Axiom),
		Formula: ast.CNF{Clause: ast.NewClause([]util.Pair[ast.Sign, ast.Literal]{
			util.NewPair[ast.Sign, ast.Literal](ast.Positive,
				ast.Equality{Left: ast.Var("X"), Sign: ast.Negative, Right: ast.NewInteger(0)}),
		})},
	})
	// Redundant parentheses around equality operands are discarded
	CheckOk(t, document(unit), "cnf(c3,axiom, (X) != ((0))).")
}

func TestParser_Fof(t *testing.T) {
	var (
		p ast.Literal = ast.Predication{
			Name: defined[ast.Predicate]("p"), Arguments: []ast.Term{ast.Var("X")}}
		q ast.Literal = ast.Predication{
			Name: defined[ast.Predicate]("q"), Arguments: []ast.Term{ast.Var("X")}}
	)
	//
	unit := annotated("ax1", ast.TaggedFormula{
		Role: ast.Standard(ast.Axiom),
		Formula: ast.FOF{Formula: ast.Quantified[ast.Unsorted]{
			Quantifier: ast.Forall,
			Variables:  []util.Pair[ast.Var, ast.Unsorted]{util.NewPair(ast.Var("X"), ast.Unsorted{})},
			Formula: ast.Connected[ast.Unsorted]{
				Left:       ast.Atomic[ast.Unsorted]{Literal: p},
				Connective: ast.Implication,
				Right:      ast.Atomic[ast.Unsorted]{Literal: q},
			},
		}},
	})
	//
	CheckOk(t, document(unit), "fof(ax1,axiom, ! [X] : (p(X) => q(X))).")
}

func TestParser_FofRightAssociative(t *testing.T) {
	var (
		a = ast.Atomic[ast.Unsorted]{Literal: ast.Predication{Name: defined[ast.Predicate]("a")}}
		b = ast.Atomic[ast.Unsorted]{Literal: ast.Predication{Name: defined[ast.Predicate]("b")}}
		c = ast.Atomic[ast.Unsorted]{Literal: ast.Predication{Name: defined[ast.Predicate]("c")}}
	)
	// Unbracketed connective chains associate rightwards
	unit := annotated("ax2", ast.TaggedFormula{
		Role: ast.Standard(ast.Axiom),
		Formula: ast.FOF{Formula: ast.Connected[ast.Unsorted]{
			Left:       a,
			Connective: ast.Disjunction,
			Right: ast.Connected[ast.Unsorted]{
				Left: b, Connective: ast.Conjunction, Right: c},
		}},
	})
	//
	CheckOk(t, document(unit), "fof(ax2,axiom, a | b & c).")
}

func TestParser_FofNumbers(t *testing.T) {
	unit := annotated("ax3", ast.TaggedFormula{
		Role: ast.Standard(ast.Axiom),
		Formula: ast.FOF{Formula: ast.Atomic[ast.Unsorted]{
			Literal: ast.Predication{
				Name: ast.StandardName(ast.Less),
				Arguments: []ast.Term{
					ast.NewRational(1, 2),
					ast.NewReal(25, -1),
				},
			},
		}},
	})
	// 2.5 normalises to coefficient 25, exponent -1
	CheckOk(t, document(unit), "fof(ax3,axiom, $less(1/2, 2.5)).")
}

func TestParser_FofIntegerReal(t *testing.T) {
	unit := annotated("ax4", ast.TaggedFormula{
		Role: ast.Standard(ast.Axiom),
		Formula: ast.FOF{Formula: ast.Atomic[ast.Unsorted]{
			Literal: ast.Equality{
				Left:  ast.NewInteger(20),
				Sign:  ast.Positive,
				Right: ast.NewInteger(20),
			},
		}},
	})
	// A real whose exponent comes to zero is an integer constant
	CheckOk(t, document(unit), "fof(ax4,axiom, 2.0e1 = 20).")
}

func TestParser_TffMonomorphic(t *testing.T) {
	unit := annotated("t1", ast.Typing{
		Name: "f",
		Type: ast.Mapping{
			Arguments: []ast.Name[ast.Sort]{ast.StandardName(ast.Integers)},
			Result:    ast.StandardName(ast.Integers),
		},
	})
	//
	CheckOk(t, document(unit), "tff(t1,type, f: $int > $int).")
}

func TestParser_TffSortDeclaration(t *testing.T) {
	CheckOk(t,
		document(annotated("t2", ast.SortDeclaration{Name: "list", Arity: 1})),
		"tff(t2,type, list: $tType > $tType).")
	//
	CheckOk(t,
		document(annotated("t3", ast.SortDeclaration{Name: "pair", Arity: 2})),
		"tff(t3,type, pair: ($tType * $tType) > $tType).")
	//
	CheckOk(t,
		document(annotated("t4", ast.SortDeclaration{Name: "point", Arity: 0})),
		"tff(t4,type, point: $tType).")
}

func TestParser_TffPolymorphicType(t *testing.T) {
	unit := annotated("t5", ast.Typing{
		Name: "cons",
		Type: ast.NewType(
			[]ast.Var{"A"},
			[]ast.TFF1Sort{
				ast.SortVariable{Variable: "A"},
				ast.SortApplication{
					Name:      defined[ast.Sort]("list"),
					Arguments: []ast.TFF1Sort{ast.SortVariable{Variable: "A"}},
				},
			},
			ast.SortApplication{
				Name:      defined[ast.Sort]("list"),
				Arguments: []ast.TFF1Sort{ast.SortVariable{Variable: "A"}},
			},
		),
	})
	//
	CheckOk(t, document(unit),
		"tff(t5,type, cons: !> [A: $tType]: ((A * list(A)) > list(A))).")
}

// A sorted formula without genuine polymorphism downgrades to the monomorphic
// representation.
func TestParser_TffDowngrade(t *testing.T) {
	unit := annotated("t6", ast.TaggedFormula{
		Role: ast.Standard(ast.Axiom),
		Formula: ast.TFF0{Formula: ast.Quantified[ast.Sorted]{
			Quantifier: ast.Forall,
			Variables: []util.Pair[ast.Var, ast.Sorted]{
				util.NewPair(ast.Var("X"), ast.Sorted{Sort: util.Some(ast.StandardName(ast.Integers))}),
				util.NewPair(ast.Var("Y"), ast.Sorted{}),
			},
			Formula: ast.Atomic[ast.Sorted]{
				Literal: ast.Predication{
					Name:      defined[ast.Predicate]("p"),
					Arguments: []ast.Term{ast.Var("X"), ast.Var("Y")},
				},
			},
		}},
	})
	//
	CheckOk(t, document(unit), "tff(t6,axiom, ! [X: $int, Y] : p(X, Y)).")
}

// A sorted formula binding a sort variable stays polymorphic.
func TestParser_TffPolymorphic(t *testing.T) {
	unit := annotated("t7", ast.TaggedFormula{
		Role: ast.Standard(ast.Axiom),
		Formula: ast.TFF1{Formula: ast.Quantified[ast.PolySorted]{
			Quantifier: ast.Forall,
			Variables: []util.Pair[ast.Var, ast.PolySorted]{
				util.NewPair(ast.Var("A"), ast.PolySorted{
					Sort: util.Some(util.Left[ast.QuantifiedSort, ast.TFF1Sort](ast.QuantifiedSort{}))}),
				util.NewPair(ast.Var("X"), ast.PolySorted{
					Sort: util.Some(util.Right[ast.QuantifiedSort, ast.TFF1Sort](
						ast.SortVariable{Variable: "A"}))}),
			},
			Formula: ast.Atomic[ast.PolySorted]{
				Literal: ast.Equality{Left: ast.Var("X"), Sign: ast.Positive, Right: ast.Var("X")},
			},
		}},
	})
	//
	CheckOk(t, document(unit), "tff(t7,axiom, ! [A: $tType, X: A] : X = X).")
}

func TestParser_Qmf(t *testing.T) {
	var p ast.Literal = ast.Predication{
		Name: defined[ast.Predicate]("p"), Arguments: []ast.Term{ast.Var("X")}}
	//
	unit := annotated("m1", ast.TaggedFormula{
		Role: ast.Standard(ast.Axiom),
		Formula: ast.QMF{Formula: ast.ModalQuantified{
			Quantifier: ast.Forall,
			Variables:  []ast.Var{"X"},
			Formula: ast.Modaled{
				Modality: ast.Standard(ast.Box),
				Formula:  ast.ModalAtomic{Literal: p},
			},
		}},
	})
	//
	CheckOk(t, document(unit), "qmf(m1,axiom, ! [X] : #box : p(X)).")
}

func TestParser_Include(t *testing.T) {
	CheckOk(t,
		document(ast.Include{File: "axioms/eq.ax"}),
		"include('axioms/eq.ax').")
	//
	CheckOk(t,
		document(ast.Include{
			File:      "axioms/eq.ax",
			Selection: util.Some([]ast.UnitName{ast.AtomName("refl"), ast.IntName(2)}),
		}),
		"include('axioms/eq.ax', [refl, 2]).")
}

func TestParser_QuotedAtoms(t *testing.T) {
	unit := annotated("q1", ast.TaggedFormula{
		Role: ast.Standard(ast.Axiom),
		Formula: ast.FOF{Formula: ast.Atomic[ast.Unsorted]{
			Literal: ast.Predication{
				Name: defined[ast.Predicate]("two words"),
				Arguments: []ast.Term{
					ast.Application{Name: defined[ast.Function]("don't")},
					ast.DistinctObject(`say "moo"`),
				},
			},
		}},
	})
	//
	CheckOk(t, document(unit), `fof(q1,axiom, 'two words'('don\'t', "say \"moo\"")).`)
}

func TestParser_SystemExtension(t *testing.T) {
	unit := annotated("s1", ast.TaggedFormula{
		Role: ast.Standard(ast.Axiom),
		Formula: ast.FOF{Formula: ast.Atomic[ast.Unsorted]{
			Literal: ast.Predication{
				Name: ast.ReservedName(ast.Extended[ast.Predicate]("$holds")),
				Arguments: []ast.Term{
					ast.Application{Name: ast.ReservedName(ast.Extended[ast.Function]("fresh"))},
				},
			},
		}},
	})
	// $$word extensions keep their extra marker; unknown $word extensions
	// keep their text
	CheckOk(t, document(unit), "fof(s1,axiom, $$holds($fresh)).")
}

func TestParser_Annotations(t *testing.T) {
	unit := ast.AnnotatedUnit{
		Name: ast.AtomName("d1"),
		Declaration: ast.TaggedFormula{
			Role: ast.Standard(ast.Plain),
			Formula: ast.CNF{Clause: ast.NewClause([]util.Pair[ast.Sign, ast.Literal]{
				util.NewPair[ast.Sign, ast.Literal](ast.Positive,
					ast.Predication{Name: defined[ast.Predicate]("p")}),
			})},
		},
		Annotation: util.Some(ast.Annotation{
			Source: ast.Inference{
				Rule: "resolution",
				Info: []ast.Info{ast.Status{Value: ast.Standard(ast.THM)}},
				Parents: []ast.Parent{
					{Source: ast.UnitSource{Name: ast.AtomName("c1")}},
					{Source: ast.UnitSource{Name: ast.IntName(2)},
						Info: util.Some([]ast.Info{ast.Bind{
							Variable: "X",
							Value:    ast.TermExpression{Term: ast.Application{Name: defined[ast.Function]("a")}},
						}})},
				},
			},
			Info: util.Some([]ast.Info{
				ast.Description{Text: "resolved"},
				ast.InfoNumber{Value: ast.NewInteger(42)},
			}),
		}),
	}
	//
	CheckOk(t, document(unit),
		`cnf(d1,plain, p, inference(resolution, [status(Theorem)], `+
			`[c1, 2: [bind(X, $fot(a))]]), [description(resolved), 42]).`)
}

func TestParser_Sources(t *testing.T) {
	var sources = map[string]ast.Source{
		"unknown":           ast.UnknownSource{},
		"c9":                ast.UnitSource{Name: ast.AtomName("c9")},
		"file('p.p')":       ast.FileSource{Name: "p.p"},
		"file('p.p', c2)":   ast.FileSource{Name: "p.p", Unit: util.Some(ast.AtomName("c2"))},
		"theory(equality)":  ast.Theory{Name: "equality"},
		"creator(otter)":    ast.Creator{Name: "otter"},
		"introduced(definition)": ast.Introduced{
			Kind: ast.Standard(ast.ByDefinition)},
		"inference(rm, [], [])": ast.Inference{Rule: "rm"},
	}
	//
	for text, source := range sources {
		unit := ast.AnnotatedUnit{
			Name: ast.AtomName("u"),
			Declaration: ast.TaggedFormula{
				Role: ast.Standard(ast.Plain),
				Formula: ast.CNF{Clause: ast.NewClause([]util.Pair[ast.Sign, ast.Literal]{
					util.NewPair[ast.Sign, ast.Literal](ast.Positive,
						ast.Predication{Name: defined[ast.Predicate]("p")}),
				})},
			},
			Annotation: util.Some(ast.Annotation{Source: source}),
		}
		//
		CheckOk(t, document(unit), "cnf(u,plain, p, "+text+").")
	}
}

func TestParser_InfoShapes(t *testing.T) {
	var shapes = map[string]ast.Info{
		"description(blah)":   ast.Description{Text: "blah"},
		"iquote(blah)":        ast.IQuote{Text: "blah"},
		"status(thm)":         ast.Status{Value: ast.Extended[ast.Success]("thm")},
		"assumptions([a, 1])": ast.Assumptions{Names: []ast.UnitName{ast.AtomName("a"), ast.IntName(1)}},
		"refutation(file('p.p'))": ast.Refutation{
			File: ast.FileSource{Name: "p.p"}},
		"bind(X, $fof(p))": ast.Bind{Variable: "X",
			Value: ast.FormulaExpression{Formula: ast.FOF{
				Formula: ast.Atomic[ast.Unsorted]{
					Literal: ast.Predication{Name: defined[ast.Predicate]("p")}}}}},
		"refines(strategy, [depth])": ast.GeneralFunction{Name: "refines",
			Arguments: []ast.Info{ast.GeneralFunction{Name: "strategy"},
				ast.GeneralList{Items: []ast.Info{ast.GeneralFunction{Name: "depth"}}}}},
		"-7/2": ast.InfoNumber{Value: ast.NewRational(-7, 2)},
	}
	//
	for text, info := range shapes {
		unit := ast.AnnotatedUnit{
			Name: ast.AtomName("u"),
			Declaration: ast.TaggedFormula{
				Role: ast.Standard(ast.Plain),
				Formula: ast.CNF{Clause: ast.NewClause([]util.Pair[ast.Sign, ast.Literal]{
					util.NewPair[ast.Sign, ast.Literal](ast.Positive,
						ast.Predication{Name: defined[ast.Predicate]("p")}),
				})},
			},
			Annotation: util.Some(ast.Annotation{
				Source: ast.UnknownSource{},
				Info:   util.Some([]ast.Info{info}),
			}),
		}
		//
		CheckOk(t, document(unit), "cnf(u,plain, p, unknown, ["+text+"]).")
	}
}

// ============================================================================
// Negative tests
// ============================================================================

func TestParser_Errors(t *testing.T) {
	var inputs = []string{
		"cnf(c1,axiom, p(X)",           // unterminated unit
		"cnf(c1,axiom, p(X)) .extra",   // trailing garbage
		"cnf(c1,axiom, ).",             // missing clause
		"cnf(c1,axiom, p | ).",         // dangling disjunction
		"fof(ax,axiom, ! [] : p).",     // empty variable list
		"fof(ax,axiom, ! [x] : p).",    // lowercase variable
		"fof(ax,axiom, p => ).",        // dangling connective
		"tff(t,type, f: ).",            // missing type
		"tff(t,type, f: $int >).",      // dangling arrow
		"qmf(m,axiom, #box p).",        // missing colon
		"include(nofile",               // unterminated include
		"theorem(t,axiom, p).",         // unknown language
		"cnf(c1,axiom, 1/0 = X).",      // zero denominator
		"cnf(c1,axiom, p, wibble(p)).", // malformed source
		"fof(ax,axiom, 'dangling).",    // unterminated quote
		"fof(ax,axiom, p). /* open",    // unterminated block comment
	}
	//
	for _, input := range inputs {
		CheckErr(t, input)
	}
}

func TestParser_ErrorContext(t *testing.T) {
	_, errs := ParseTPTPString("cnf(c1,axiom, p | q &).")
	//
	if len(errs) != 1 {
		t.Fatalf("expected exactly one error")
	}
	// The label stack names the productions being parsed, innermost first
	if msg := errs[0].Message(); !strings.Contains(msg, "while parsing") {
		t.Errorf("error lacks grammar context: %s", msg)
	}
}

// ============================================================================
// Helpers
// ============================================================================

func CheckOk(t *testing.T, want ast.TPTP, input string) {
	got, errs := ParseTPTPString(input)
	//
	if len(errs) > 0 {
		t.Errorf("%s: %s", input, errs[0].Message())
	} else if !reflect.DeepEqual(want, got) {
		t.Errorf("%s: expected %s, got %s", input, want.String(), got.String())
	}
}

func CheckErr(t *testing.T, input string) {
	if _, errs := ParseTPTPString(input); len(errs) == 0 {
		t.Errorf("input should not have parsed: %s", input)
	}
}

func document(units ...ast.Unit) ast.TPTP {
	return ast.TPTP{Units: units}
}

func annotated(name string, declaration ast.Declaration) ast.Unit {
	return ast.AnnotatedUnit{Name: ast.AtomName(name), Declaration: declaration}
}

func defined[T ast.Named[T]](name ast.Atom) ast.Name[T] {
	return ast.DefinedName[T](name)
}
