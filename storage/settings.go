// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"encoding/binary"

	"github.com/ava-labs/avalanchego/database"

	"github.com/ava-labs/hypersdk/state"

	hconsts "github.com/ava-labs/hypersdk/consts"
)

// Settings new tokens are created with unless the register admin changes them.
const (
	DefaultCreationPrice  uint64 = 1_000_000
	DefaultInitialSupply  uint64 = 1_000_000
	DefaultReserveDeposit uint64 = 1_000_000
	DefaultTransactionFee uint64 = 100
	DefaultFeeLimit       uint64 = 1_000
	DefaultCurveWeight    uint64 = 500_000
)

func TokenSettingsKey() []byte {
	k := make([]byte, 1+hconsts.Uint16Len)
	k[0] = tokenSettingsPrefix
	binary.BigEndian.PutUint16(k[1:], TokenSettingsChunks)
	return k
}

func SetTokenSettings(
	ctx context.Context,
	mu state.Mutable,
	creationPrice uint64,
	initialSupply uint64,
	reserveDeposit uint64,
	transactionFee uint64,
	feeLimit uint64,
	curveWeight uint64,
) error {
	v := make([]byte, 6*hconsts.Uint64Len)
	binary.BigEndian.PutUint64(v, creationPrice)
	binary.BigEndian.PutUint64(v[hconsts.Uint64Len:], initialSupply)
	binary.BigEndian.PutUint64(v[2*hconsts.Uint64Len:], reserveDeposit)
	binary.BigEndian.PutUint64(v[3*hconsts.Uint64Len:], transactionFee)
	binary.BigEndian.PutUint64(v[4*hconsts.Uint64Len:], feeLimit)
	binary.BigEndian.PutUint64(v[5*hconsts.Uint64Len:], curveWeight)
	return mu.Insert(ctx, TokenSettingsKey(), v)
}

func GetTokenSettingsNoController(
	ctx context.Context,
	mu state.Immutable,
) (uint64, uint64, uint64, uint64, uint64, uint64, error) {
	v, err := mu.GetValue(ctx, TokenSettingsKey())
	return innerGetTokenSettings(v, err)
}

// Used to serve RPC queries
func GetTokenSettings(
	ctx context.Context,
	f ReadState,
) (uint64, uint64, uint64, uint64, uint64, uint64, error) {
	values, errs := f(ctx, [][]byte{TokenSettingsKey()})
	return innerGetTokenSettings(values[0], errs[0])
}

func innerGetTokenSettings(
	v []byte,
	err error,
) (uint64, uint64, uint64, uint64, uint64, uint64, error) {
	if err == database.ErrNotFound {
		return 0, 0, 0, 0, 0, 0, ErrSettingsNotFound
	}
	if err != nil {
		return 0, 0, 0, 0, 0, 0, err
	}
	creationPrice := binary.BigEndian.Uint64(v)
	initialSupply := binary.BigEndian.Uint64(v[hconsts.Uint64Len:])
	reserveDeposit := binary.BigEndian.Uint64(v[2*hconsts.Uint64Len:])
	transactionFee := binary.BigEndian.Uint64(v[3*hconsts.Uint64Len:])
	feeLimit := binary.BigEndian.Uint64(v[4*hconsts.Uint64Len:])
	curveWeight := binary.BigEndian.Uint64(v[5*hconsts.Uint64Len:])
	return creationPrice, initialSupply, reserveDeposit, transactionFee, feeLimit, curveWeight, nil
}
