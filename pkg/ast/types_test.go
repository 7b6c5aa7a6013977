package ast

import (
	"reflect"
	"testing"
)

// atomic wraps a sort name into a zero-arity constructor application.
func atomic(name Name[Sort]) TFF1Sort {
	return SortApplication{Name: name}
}

func TestType_Constant(t *testing.T) {
	typ := NewType(nil, nil, atomic(StandardName(Integers)))
	//
	want := Mapping{nil, StandardName(Integers)}
	//
	if !reflect.DeepEqual(typ, want) {
		t.Errorf("expected monomorphic constant, got %s", typ.String())
	}
}

func TestType_Mapping(t *testing.T) {
	typ := NewType(nil,
		[]TFF1Sort{atomic(StandardName(Integers)), atomic(DefinedName[Sort]("list"))},
		atomic(StandardName(Booleans)))
	//
	want := Mapping{
		[]Name[Sort]{StandardName(Integers), DefinedName[Sort]("list")},
		StandardName(Booleans),
	}
	//
	if !reflect.DeepEqual(typ, want) {
		t.Errorf("expected monomorphic mapping, got %s", typ.String())
	}
	//
	checkString(t, "($int * list) > $o", typ)
}

// A quantified variable prevents the downgrade, even over atomic sorts.
func TestType_Quantified(t *testing.T) {
	typ := NewType([]Var{"A"}, nil, atomic(StandardName(Integers)))
	//
	if _, ok := typ.(TFF1Type); !ok {
		t.Errorf("expected polymorphic type, got %s", typ.String())
	}
}

// A sort variable in argument position prevents the downgrade.
func TestType_SortVariable(t *testing.T) {
	typ := NewType(nil, []TFF1Sort{SortVariable{"A"}}, atomic(StandardName(Integers)))
	//
	if _, ok := typ.(TFF1Type); !ok {
		t.Errorf("expected polymorphic type, got %s", typ.String())
	}
}

// A sort-constructor application of non-zero arity prevents the downgrade.
func TestType_SortApplication(t *testing.T) {
	var list TFF1Sort = SortApplication{
		DefinedName[Sort]("list"), []TFF1Sort{atomic(StandardName(Integers))},
	}
	//
	typ := NewType(nil, nil, list)
	//
	if _, ok := typ.(TFF1Type); !ok {
		t.Errorf("expected polymorphic type, got %s", typ.String())
	}
	//
	checkString(t, "list($int)", list)
}

func TestType_QuantifiedString(t *testing.T) {
	typ := NewType([]Var{"A", "B"},
		[]TFF1Sort{SortVariable{"A"}, SortVariable{"B"}}, SortVariable{"A"})
	//
	checkString(t, "!> [A: $tType, B: $tType]: ((A * B) > A)", typ)
}

func TestType_MonomorphizeSort(t *testing.T) {
	if name, ok := MonomorphizeTFF1Sort(atomic(StandardName(Reals))); !ok {
		t.Errorf("atomic sort failed to monomorphize")
	} else if name != StandardName(Reals) {
		t.Errorf("atomic sort monomorphized to %s", name.String())
	}
	// Sort variables have no monomorphic form
	if _, ok := MonomorphizeTFF1Sort(SortVariable{"A"}); ok {
		t.Errorf("sort variable should not monomorphize")
	}
}
