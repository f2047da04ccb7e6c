// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package pricing implements the constant-weight bonding-curve formula that
// prices every mToken trade. Both entry points are pure integer functions:
// the same inputs always produce the same outputs, and all rounding is
// toward zero so that the approximation error always favors the token's
// reserve, never the trader. In particular, buying and immediately selling
// can never return more reserve currency than was deposited.
package pricing

import (
	"github.com/holiman/uint256"

	safemath "github.com/ava-labs/avalanchego/utils/math"
)

const (
	// MaxWeight is the parts-per-million denominator of the curve weight. A
	// weight of MaxWeight is a constant 1:1 price against the reserve.
	MaxWeight = 1_000_000

	// FeeDenominator converts basis points into fractions.
	FeeDenominator = 10_000
)

// PurchaseReturn computes how many mTokens a deposit of [netDeposit] reserve
// units buys against a token with [supply] outstanding units, [reserve]
// backing units, and curve weight [weight] (PPM):
//
//	supply * ((1 + netDeposit/reserve)^(weight/MaxWeight) - 1)
//
// The result is rounded down.
func PurchaseReturn(supply uint64, reserve uint64, weight uint64, netDeposit uint64) (uint64, error) {
	if err := checkDomain(supply, reserve, weight); err != nil {
		return 0, err
	}
	if netDeposit == 0 {
		return 0, nil
	}

	newReserve, err := safemath.Add(reserve, netDeposit)
	if err != nil {
		return 0, ErrOverflow
	}

	// Weight of 100% is the linear case, computed exactly.
	if weight == MaxWeight {
		return mulDiv(supply, netDeposit, reserve)
	}

	p, err := powQ64(newReserve, reserve, weight, MaxWeight)
	if err != nil {
		return 0, ErrOverflow
	}

	// supply * (p - 1), floored back out of Q64.64.
	out := new(uint256.Int).Sub(p, oneQ64)
	out.Mul(out, uint256.NewInt(supply))
	out.Rsh(out, fracBits)
	if !out.IsUint64() {
		return 0, ErrOverflow
	}
	return out.Uint64(), nil
}

// SaleReturn computes how much reserve currency burning [sellAmount] mTokens
// releases:
//
//	reserve * (1 - (1 - sellAmount/supply)^(MaxWeight/weight))
//
// The result is rounded down and is strictly below [reserve] except for a
// total sale of the supply, which releases the full reserve.
func SaleReturn(supply uint64, reserve uint64, weight uint64, sellAmount uint64) (uint64, error) {
	if err := checkDomain(supply, reserve, weight); err != nil {
		return 0, err
	}
	if sellAmount > supply {
		return 0, ErrSellAmountTooBig
	}
	if sellAmount == 0 {
		return 0, nil
	}
	if sellAmount == supply {
		return reserve, nil
	}
	if weight == MaxWeight {
		return mulDiv(reserve, sellAmount, supply)
	}

	p, err := powQ64(supply, supply-sellAmount, MaxWeight, weight)
	if err == ErrExponentTooLarge {
		// The curve is so steep that (supply/(supply-sellAmount))^(1/w)
		// exceeds the fixed-point range; the exact result rounds down to one
		// unit short of the full reserve.
		return reserve - 1, nil
	}
	if err != nil {
		return 0, err
	}

	// reserve - ceil(reserve / p), which equals floor(reserve * (1 - 1/p))
	// and keeps the intermediate product within 128 bits.
	rem := new(uint256.Int).Lsh(uint256.NewInt(reserve), fracBits)
	rem.Add(rem, new(uint256.Int).SubUint64(p, 1))
	rem.Div(rem, p)
	return reserve - rem.Uint64(), nil
}

// Fee returns floor(amount * feeBP / 10000) without intermediate overflow.
func Fee(amount uint64, feeBP uint64) uint64 {
	f := new(uint256.Int).SetUint64(amount)
	f.Mul(f, uint256.NewInt(feeBP))
	f.Div(f, uint256.NewInt(FeeDenominator))
	return f.Uint64()
}

func checkDomain(supply uint64, reserve uint64, weight uint64) error {
	if supply == 0 {
		return ErrSupplyZero
	}
	if reserve == 0 {
		return ErrReserveZero
	}
	if weight == 0 || weight > MaxWeight {
		return ErrInvalidWeight
	}
	return nil
}

func mulDiv(a uint64, b uint64, denom uint64) (uint64, error) {
	r := new(uint256.Int).SetUint64(a)
	r.Mul(r, uint256.NewInt(b))
	r.Div(r, uint256.NewInt(denom))
	if !r.IsUint64() {
		return 0, ErrOverflow
	}
	return r.Uint64(), nil
}
