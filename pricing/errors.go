// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pricing

import "errors"

var (
	ErrSupplyZero       = errors.New("supply is zero")
	ErrReserveZero      = errors.New("reserve balance is zero")
	ErrInvalidWeight    = errors.New("curve weight is not in (0, MaxWeight]")
	ErrSellAmountTooBig = errors.New("sell amount exceeds supply")
	ErrOverflow         = errors.New("result does not fit in 64 bits")

	ErrExponentTooLarge = errors.New("power exponent too large")
)
