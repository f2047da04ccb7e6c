// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pricing

import (
	"github.com/holiman/uint256"
)

// Fixed-point layout used by the power routine: unsigned Q64.64, i.e. the
// value x is represented as x * 2^64. All intermediate math is carried in
// uint256 so that squaring a mantissa in [1, 2) cannot overflow.
const fracBits = 64

// ln(2) * 2^64, rounded down.
const ln2Q64 = 0xB17217F7D1CF79AB

// Largest integer exponent exp2 will materialize. The mantissa sum occupies
// up to 65 bits, so any larger shift would overflow uint256 and the caller
// must saturate instead.
const maxIntegerExp = 191

// Taylor expansion of e^x is cut off after this many terms. The fractional
// argument is < ln(2), so term 48 is already far below the 2^-64 resolution
// of the representation.
const expTaylorTerms = 48

var (
	oneQ64 = new(uint256.Int).Lsh(uint256.NewInt(1), fracBits)
	twoQ64 = new(uint256.Int).Lsh(uint256.NewInt(1), fracBits+1)
)

// log2Q64 returns floor(log2(num/denom) * 2^64) for num >= denom >= 1.
//
// The integer part is taken from the bit length of the Q64.64 ratio; the
// fractional bits are produced by the classic iterated-squaring method: the
// mantissa m in [1, 2) is squared, and whenever the square reaches [2, 4)
// the corresponding fractional bit is set and the mantissa renormalized.
// Every step rounds down, so the result never exceeds the true logarithm.
func log2Q64(num uint64, denom uint64) *uint256.Int {
	x := new(uint256.Int).Lsh(uint256.NewInt(num), fracBits)
	x.Div(x, uint256.NewInt(denom))

	result := new(uint256.Int)

	// Integer part: shift the mantissa back into [1, 2).
	if intPart := x.BitLen() - 1 - fracBits; intPart > 0 {
		x.Rsh(x, uint(intPart))
		result.SetUint64(uint64(intPart))
	}
	result.Lsh(result, fracBits)

	if x.Eq(oneQ64) {
		return result
	}

	bit := new(uint256.Int)
	for i := fracBits - 1; i >= 0; i-- {
		x.Mul(x, x)
		x.Rsh(x, fracBits)
		if x.Cmp(twoQ64) >= 0 {
			x.Rsh(x, 1)
			result.Or(result, bit.Lsh(uint256.NewInt(1), uint(i)))
		}
	}
	return result
}

// exp2Q64 returns floor(2^(y/2^64) * 2^64).
//
// The integer part of the exponent becomes a left shift. The fractional part
// f is evaluated as e^(f*ln2) with a plain Taylor series; f*ln2 < ln2 < 1 so
// the series converges rapidly and every floored term keeps the result a
// lower bound of the true power.
func exp2Q64(y *uint256.Int) (*uint256.Int, error) {
	intPart := new(uint256.Int).Rsh(y, fracBits)
	if !intPart.IsUint64() || intPart.Uint64() > maxIntegerExp {
		return nil, ErrExponentTooLarge
	}

	// x = frac(y) * ln2 in Q64.64
	x := new(uint256.Int).And(y, new(uint256.Int).SubUint64(oneQ64, 1))
	x.Mul(x, uint256.NewInt(ln2Q64))
	x.Rsh(x, fracBits)

	// e^x = 1 + x + x^2/2! + ...
	sum := new(uint256.Int).Set(oneQ64)
	term := new(uint256.Int).Set(oneQ64)
	for i := uint64(1); i <= expTaylorTerms; i++ {
		term.Mul(term, x)
		term.Rsh(term, fracBits)
		term.Div(term, uint256.NewInt(i))
		if term.IsZero() {
			break
		}
		sum.Add(sum, term)
	}

	return sum.Lsh(sum, uint(intPart.Uint64())), nil
}

// powQ64 returns floor((baseNum/baseDenom)^(expNum/expDenom) * 2^64) for
// baseNum >= baseDenom >= 1. The result is a lower bound of the true power;
// the relative error is bounded by 2^-40 across the domain used by the
// purchase and sale formulas.
func powQ64(baseNum uint64, baseDenom uint64, expNum uint64, expDenom uint64) (*uint256.Int, error) {
	exponent := log2Q64(baseNum, baseDenom)
	exponent.Mul(exponent, uint256.NewInt(expNum))
	exponent.Div(exponent, uint256.NewInt(expDenom))
	return exp2Q64(exponent)
}
