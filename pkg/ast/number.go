package ast

import (
	"fmt"
	"math/big"
)

// Number is a numeric constant occurring as a term.  Numbers come in three
// flavours (integer, rational, real) which denote distinct individuals even
// when arithmetically equal.
type Number interface {
	Term
	// isNumber is a marker restricting implementations to this package.
	isNumber()
}

// ===================================================================
// Integer
// ===================================================================

// Integer is an arbitrary-precision integer constant.
type Integer struct {
	// Value of this constant.
	Value *big.Int
}

// NewInteger constructs an integer constant from a machine integer.
func NewInteger(value int64) Integer {
	return Integer{big.NewInt(value)}
}

func (p Integer) isTerm()   {}
func (p Integer) isNumber() {}

func (p Integer) String() string {
	return p.Value.String()
}

// ===================================================================
// Rational
// ===================================================================

// Rational is an arbitrary-precision rational constant.  The fraction is kept
// exactly as written, hence is not necessarily in lowest terms; the
// denominator is always positive.
type Rational struct {
	// Numerator of this constant (carries the sign).
	Numerator *big.Int
	// Denominator of this constant (always positive).
	Denominator *big.Int
}

// NewRational constructs a rational constant from machine integers.  This
// panics if the denominator is not positive.
func NewRational(numerator int64, denominator int64) Rational {
	if denominator <= 0 {
		panic("rational denominator must be positive")
	}
	//
	return Rational{big.NewInt(numerator), big.NewInt(denominator)}
}

func (p Rational) isTerm()   {}
func (p Rational) isNumber() {}

func (p Rational) String() string {
	return fmt.Sprintf("%s/%s", p.Numerator.String(), p.Denominator.String())
}

// ===================================================================
// Real
// ===================================================================

// Real is an arbitrary-precision real constant in exponent notation,
// denoting Coefficient * 10^Exponent.  A real whose decimal expansion needs
// no exponent is an Integer instead, so the exponent here is never zero.
type Real struct {
	// Coefficient of this constant.
	Coefficient *big.Int
	// Exponent of this constant.
	Exponent int
}

// NewReal constructs a real constant from a machine coefficient and exponent.
func NewReal(coefficient int64, exponent int) Real {
	return Real{big.NewInt(coefficient), exponent}
}

func (p Real) isTerm()   {}
func (p Real) isNumber() {}

func (p Real) String() string {
	return fmt.Sprintf("%se%d", p.Coefficient.String(), p.Exponent)
}
