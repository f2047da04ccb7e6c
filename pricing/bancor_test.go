// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPurchaseReturnDomain(t *testing.T) {
	require := require.New(t)

	_, err := PurchaseReturn(0, 1_000_000, 500_000, 1_000)
	require.ErrorIs(err, ErrSupplyZero)
	_, err = PurchaseReturn(1_000_000, 0, 500_000, 1_000)
	require.ErrorIs(err, ErrReserveZero)
	_, err = PurchaseReturn(1_000_000, 1_000_000, 0, 1_000)
	require.ErrorIs(err, ErrInvalidWeight)
	_, err = PurchaseReturn(1_000_000, 1_000_000, MaxWeight+1, 1_000)
	require.ErrorIs(err, ErrInvalidWeight)
}

func TestSaleReturnDomain(t *testing.T) {
	require := require.New(t)

	_, err := SaleReturn(0, 1_000_000, 500_000, 1_000)
	require.ErrorIs(err, ErrSupplyZero)
	_, err = SaleReturn(1_000_000, 0, 500_000, 1_000)
	require.ErrorIs(err, ErrReserveZero)
	_, err = SaleReturn(1_000_000, 1_000_000, MaxWeight+1, 1_000)
	require.ErrorIs(err, ErrInvalidWeight)
	_, err = SaleReturn(1_000_000, 1_000_000, 500_000, 1_000_001)
	require.ErrorIs(err, ErrSellAmountTooBig)
}

func TestZeroTradeAmounts(t *testing.T) {
	require := require.New(t)

	out, err := PurchaseReturn(1_000_000, 1_000_000, 500_000, 0)
	require.NoError(err)
	require.Zero(out)

	out, err = SaleReturn(1_000_000, 1_000_000, 500_000, 0)
	require.NoError(err)
	require.Zero(out)
}

// A weight of 100% prices shares 1:1 against the reserve, so the returns are
// exact linear proportions.
func TestLinearWeightIsExact(t *testing.T) {
	require := require.New(t)

	out, err := PurchaseReturn(1_000_000, 1_000_000, MaxWeight, 9_900)
	require.NoError(err)
	require.Equal(uint64(9_900), out)

	out, err = PurchaseReturn(500_000, 2_000_000, MaxWeight, 100)
	require.NoError(err)
	require.Equal(uint64(25), out)

	out, err = SaleReturn(1_000_000, 1_000_000, MaxWeight, 10_000)
	require.NoError(err)
	require.Equal(uint64(10_000), out)

	out, err = SaleReturn(2_000_000, 500_000, MaxWeight, 8)
	require.NoError(err)
	require.Equal(uint64(2), out)
}

func TestSaleOfFullSupplyDrainsReserve(t *testing.T) {
	require := require.New(t)

	for _, weight := range []uint64{100_000, 500_000, MaxWeight} {
		out, err := SaleReturn(123_456, 789_012, weight, 123_456)
		require.NoError(err)
		require.Equal(uint64(789_012), out)
	}
}

// A near-total sale on a very steep curve overflows the fixed-point power
// range; the result saturates one unit short of the full reserve.
func TestSaleReturnSaturatesOnSteepCurves(t *testing.T) {
	require := require.New(t)

	supply := uint64(1) << 40
	out, err := SaleReturn(supply, 1_000, 1, supply-1)
	require.NoError(err)
	require.Equal(uint64(999), out)
}

// The computed return must track the closed-form float evaluation closely
// while never exceeding it.
func TestPurchaseReturnMatchesReference(t *testing.T) {
	require := require.New(t)

	tests := []struct {
		supply  uint64
		reserve uint64
		weight  uint64
		deposit uint64
	}{
		{1_000_000, 1_000_000, 500_000, 1_000_000},
		{1_000_000, 1_000_000, 500_000, 10_000},
		{1_000_000, 250_000, 100_000, 750_000},
		{5_000_000, 1_000_000, 900_000, 123_456},
		{1_000, 1, 500_000, 990_000},
	}
	for _, tt := range tests {
		out, err := PurchaseReturn(tt.supply, tt.reserve, tt.weight, tt.deposit)
		require.NoError(err)

		exact := float64(tt.supply) * (math.Pow(1+float64(tt.deposit)/float64(tt.reserve), float64(tt.weight)/MaxWeight) - 1)
		require.LessOrEqual(float64(out), exact+1)
		require.InDelta(exact, float64(out), math.Max(16, exact*1e-9))
	}
}

func TestSaleReturnMatchesReference(t *testing.T) {
	require := require.New(t)

	tests := []struct {
		supply  uint64
		reserve uint64
		weight  uint64
		sell    uint64
	}{
		{1_000_000, 1_000_000, 500_000, 10_000},
		{1_000_000, 1_000_000, 500_000, 900_000},
		{1_000_000, 250_000, 100_000, 50_000},
		{5_000_000, 1_000_000, 900_000, 4_000_000},
	}
	for _, tt := range tests {
		out, err := SaleReturn(tt.supply, tt.reserve, tt.weight, tt.sell)
		require.NoError(err)

		exact := float64(tt.reserve) * (1 - math.Pow(1-float64(tt.sell)/float64(tt.supply), MaxWeight/float64(tt.weight)))
		require.LessOrEqual(float64(out), exact+1)
		require.InDelta(exact, float64(out), math.Max(16, exact*1e-9))
	}
}

// Buying and immediately selling the bought shares must never return more
// than the original deposit, for any weight.
func TestRoundTripNeverProfits(t *testing.T) {
	require := require.New(t)

	supplies := []uint64{1_000, 1_000_000, 1_000_000_000}
	reserves := []uint64{1, 1_000, 1_000_000, 1_000_000_000}
	weights := []uint64{1, 100_000, 250_000, 500_000, 750_000, 900_000, MaxWeight}
	deposits := []uint64{1, 1_000, 1_000_000, 123_456_789}

	for _, supply := range supplies {
		for _, reserve := range reserves {
			for _, weight := range weights {
				for _, deposit := range deposits {
					shares, err := PurchaseReturn(supply, reserve, weight, deposit)
					require.NoError(err)
					if shares == 0 {
						continue
					}
					back, err := SaleReturn(supply+shares, reserve+deposit, weight, shares)
					require.NoError(err)
					require.LessOrEqual(back, deposit)
				}
			}
		}
	}
}

func TestPurchaseReturnIsMonotonic(t *testing.T) {
	require := require.New(t)

	var prev uint64
	for _, deposit := range []uint64{1, 10, 100, 1_000, 10_000, 100_000, 1_000_000} {
		out, err := PurchaseReturn(1_000_000, 1_000_000, 500_000, deposit)
		require.NoError(err)
		require.GreaterOrEqual(out, prev)
		prev = out
	}
}

// Repeated evaluation must be bit-for-bit reproducible, since every node
// reprices the same trades.
func TestReturnsAreDeterministic(t *testing.T) {
	require := require.New(t)

	first, err := PurchaseReturn(1_000, 1, 500_000, 990_000)
	require.NoError(err)
	for i := 0; i < 10; i++ {
		again, err := PurchaseReturn(1_000, 1, 500_000, 990_000)
		require.NoError(err)
		require.Equal(first, again)
	}
}

func TestFee(t *testing.T) {
	require := require.New(t)

	require.Equal(uint64(100), Fee(10_000, 100))
	require.Equal(uint64(0), Fee(1, 100))
	require.Equal(uint64(0), Fee(10_000, 0))
	require.Equal(uint64(10_000), Fee(10_000, FeeDenominator))
	require.Equal(uint64(123), Fee(12_345, 100))
	// No intermediate overflow at uint64 extremes
	require.Equal(uint64(math.MaxUint64/100), Fee(math.MaxUint64/100*100, 100))
}
