// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"encoding/binary"

	"github.com/ava-labs/avalanchego/database"

	"github.com/AtteqCom/memevm/consts"
	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/state"
	"github.com/ava-labs/hypersdk/utils"

	smath "github.com/ava-labs/avalanchego/utils/math"
	hconsts "github.com/ava-labs/hypersdk/consts"
)

// Token addresses are derived from the normalized name and symbol, so
// uniqueness of either implies uniqueness of the address.
func MTokenAddress(name []byte, symbol []byte) codec.Address {
	v := make([]byte, len(name)+len(symbol))
	copy(v, name)
	copy(v[len(name):], symbol)
	id := utils.ToID(v)
	return codec.CreateAddress(consts.MTOKENID, id)
}

func MTokenInfoKey(tokenAddress codec.Address) []byte {
	k := make([]byte, 1+codec.AddressLen+hconsts.Uint16Len)
	k[0] = mTokenInfoPrefix
	copy(k[1:1+codec.AddressLen], tokenAddress[:])
	binary.BigEndian.PutUint16(k[1+codec.AddressLen:], MTokenInfoChunks)
	return k
}

func MTokenHoldingKey(token codec.Address, account codec.Address) []byte {
	k := make([]byte, 1+codec.AddressLen+codec.AddressLen+hconsts.Uint16Len)
	k[0] = mTokenHoldingPrefix
	copy(k[1:], token[:])
	copy(k[1+codec.AddressLen:], account[:])
	binary.BigEndian.PutUint16(k[1+codec.AddressLen+codec.AddressLen:], MTokenHoldingChunks)
	return k
}

func SetMTokenInfo(
	ctx context.Context,
	mu state.Mutable,
	tokenAddress codec.Address,
	name []byte,
	symbol []byte,
	totalSupply uint64,
	reserveBalance uint64,
	curveWeight uint64,
	transactionFee uint64,
	feeLimit uint64,
	owner codec.Address,
	paused bool,
) error {
	// Setup
	k := MTokenInfoKey(tokenAddress)
	nameLen := len(name)
	symbolLen := len(symbol)
	nameEnd := hconsts.Uint16Len + nameLen
	symbolEnd := nameEnd + hconsts.Uint16Len + symbolLen
	tokenInfoSize := symbolEnd + 5*hconsts.Uint64Len + codec.AddressLen + hconsts.ByteLen
	v := make([]byte, tokenInfoSize)

	// Insert name
	binary.BigEndian.PutUint16(v, uint16(nameLen))
	copy(v[hconsts.Uint16Len:nameEnd], name)
	// Insert symbol
	binary.BigEndian.PutUint16(v[nameEnd:], uint16(symbolLen))
	copy(v[nameEnd+hconsts.Uint16Len:symbolEnd], symbol)
	// Insert totalSupply
	binary.BigEndian.PutUint64(v[symbolEnd:], totalSupply)
	// Insert reserveBalance
	binary.BigEndian.PutUint64(v[symbolEnd+hconsts.Uint64Len:], reserveBalance)
	// Insert curveWeight
	binary.BigEndian.PutUint64(v[symbolEnd+2*hconsts.Uint64Len:], curveWeight)
	// Insert transactionFee
	binary.BigEndian.PutUint64(v[symbolEnd+3*hconsts.Uint64Len:], transactionFee)
	// Insert feeLimit
	binary.BigEndian.PutUint64(v[symbolEnd+4*hconsts.Uint64Len:], feeLimit)
	// Insert owner
	copy(v[symbolEnd+5*hconsts.Uint64Len:], owner[:])
	// Insert paused
	b := byte(0x0)
	if paused {
		b = 0x1
	}
	v[symbolEnd+5*hconsts.Uint64Len+codec.AddressLen] = b
	return mu.Insert(ctx, k, v)
}

func GetMTokenInfo(
	ctx context.Context,
	f ReadState,
	tokenAddress codec.Address,
) ([]byte, []byte, uint64, uint64, uint64, uint64, uint64, codec.Address, bool, error) {
	k := MTokenInfoKey(tokenAddress)
	values, errs := f(ctx, [][]byte{k})
	if errs[0] != nil {
		return nil, nil, 0, 0, 0, 0, 0, codec.EmptyAddress, false, errs[0]
	}
	return innerGetMTokenInfo(values[0])
}

func GetMTokenInfoNoController(
	ctx context.Context,
	mu state.Immutable,
	tokenAddress codec.Address,
) ([]byte, []byte, uint64, uint64, uint64, uint64, uint64, codec.Address, bool, error) {
	k := MTokenInfoKey(tokenAddress)
	v, err := mu.GetValue(ctx, k)
	if err != nil {
		return nil, nil, 0, 0, 0, 0, 0, codec.EmptyAddress, false, err
	}
	return innerGetMTokenInfo(v)
}

func innerGetMTokenInfo(
	v []byte,
) ([]byte, []byte, uint64, uint64, uint64, uint64, uint64, codec.Address, bool, error) {
	// Extract name
	nameLen := binary.BigEndian.Uint16(v)
	nameEnd := hconsts.Uint16Len + int(nameLen)
	name := v[hconsts.Uint16Len:nameEnd]
	// Extract symbol
	symbolLen := binary.BigEndian.Uint16(v[nameEnd:])
	symbolEnd := nameEnd + hconsts.Uint16Len + int(symbolLen)
	symbol := v[nameEnd+hconsts.Uint16Len : symbolEnd]
	// Extract totalSupply
	totalSupply := binary.BigEndian.Uint64(v[symbolEnd:])
	// Extract reserveBalance
	reserveBalance := binary.BigEndian.Uint64(v[symbolEnd+hconsts.Uint64Len:])
	// Extract curveWeight
	curveWeight := binary.BigEndian.Uint64(v[symbolEnd+2*hconsts.Uint64Len:])
	// Extract transactionFee
	transactionFee := binary.BigEndian.Uint64(v[symbolEnd+3*hconsts.Uint64Len:])
	// Extract feeLimit
	feeLimit := binary.BigEndian.Uint64(v[symbolEnd+4*hconsts.Uint64Len:])
	// Extract owner
	owner := codec.Address(v[symbolEnd+5*hconsts.Uint64Len : symbolEnd+5*hconsts.Uint64Len+codec.AddressLen])
	// Extract paused
	paused := v[symbolEnd+5*hconsts.Uint64Len+codec.AddressLen] == 0x1

	return name, symbol, totalSupply, reserveBalance, curveWeight, transactionFee, feeLimit, owner, paused, nil
}

func MTokenExists(
	ctx context.Context,
	mu state.Immutable,
	tokenAddress codec.Address,
) bool {
	v, err := mu.GetValue(ctx, MTokenInfoKey(tokenAddress))
	return v != nil && err == nil
}

func SetMTokenHolding(
	ctx context.Context,
	mu state.Mutable,
	tokenAddress codec.Address,
	account codec.Address,
	shares uint64,
) error {
	k := MTokenHoldingKey(tokenAddress, account)
	v := make([]byte, hconsts.Uint64Len)
	binary.BigEndian.PutUint64(v, shares)
	return mu.Insert(ctx, k, v)
}

func GetMTokenHolding(
	ctx context.Context,
	f ReadState,
	tokenAddress codec.Address,
	account codec.Address,
) (uint64, error) {
	k := MTokenHoldingKey(tokenAddress, account)
	values, errs := f(ctx, [][]byte{k})
	if errs[0] == database.ErrNotFound {
		return 0, nil
	}
	if errs[0] != nil {
		return 0, errs[0]
	}
	return binary.BigEndian.Uint64(values[0]), nil
}

func GetMTokenHoldingNoController(
	ctx context.Context,
	mu state.Immutable,
	tokenAddress codec.Address,
	account codec.Address,
) (uint64, error) {
	k := MTokenHoldingKey(tokenAddress, account)
	v, err := mu.GetValue(ctx, k)
	if err == database.ErrNotFound {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(v), nil
}

// This function updates both the token info state and the holding state.
// Note: it is the responsibility of the caller to check that invariants
// related to this function are met.
func MintShares(
	ctx context.Context,
	mu state.Mutable,
	tokenAddress codec.Address,
	to codec.Address,
	mintAmount uint64,
	reserveDelta uint64,
) error {
	tName, tSymbol, tSupply, tReserve, tWeight, tFee, tFeeLimit, tOwner, tPaused, err := GetMTokenInfoNoController(ctx, mu, tokenAddress)
	if err != nil {
		return err
	}
	holding, err := GetMTokenHoldingNoController(ctx, mu, tokenAddress, to)
	if err != nil {
		return err
	}
	newTotalSupply, err := smath.Add(tSupply, mintAmount)
	if err != nil {
		return err
	}
	newReserve, err := smath.Add(tReserve, reserveDelta)
	if err != nil {
		return err
	}
	newHolding, err := smath.Add(holding, mintAmount)
	if err != nil {
		return err
	}
	if err := SetMTokenInfo(ctx, mu, tokenAddress, tName, tSymbol, newTotalSupply, newReserve, tWeight, tFee, tFeeLimit, tOwner, tPaused); err != nil {
		return err
	}
	return SetMTokenHolding(ctx, mu, tokenAddress, to, newHolding)
}

// Burns [burnAmount] shares held by [from] and releases [reserveDelta] from
// the token reserve.
// Note: it is the responsibility of the caller to check that invariants
// related to this function are met.
func BurnShares(
	ctx context.Context,
	mu state.Mutable,
	tokenAddress codec.Address,
	from codec.Address,
	burnAmount uint64,
	reserveDelta uint64,
) error {
	tName, tSymbol, tSupply, tReserve, tWeight, tFee, tFeeLimit, tOwner, tPaused, err := GetMTokenInfoNoController(ctx, mu, tokenAddress)
	if err != nil {
		return err
	}
	holding, err := GetMTokenHoldingNoController(ctx, mu, tokenAddress, from)
	if err != nil {
		return err
	}
	newHolding, err := smath.Sub(holding, burnAmount)
	if err != nil {
		return ErrInvalidHolding
	}
	newTotalSupply, err := smath.Sub(tSupply, burnAmount)
	if err != nil {
		return err
	}
	newReserve, err := smath.Sub(tReserve, reserveDelta)
	if err != nil {
		return err
	}
	if err := SetMTokenHolding(ctx, mu, tokenAddress, from, newHolding); err != nil {
		return err
	}
	return SetMTokenInfo(ctx, mu, tokenAddress, tName, tSymbol, newTotalSupply, newReserve, tWeight, tFee, tFeeLimit, tOwner, tPaused)
}

func TransferShares(
	ctx context.Context,
	mu state.Mutable,
	tokenAddress codec.Address,
	from codec.Address,
	to codec.Address,
	value uint64,
) error {
	fromHolding, err := GetMTokenHoldingNoController(ctx, mu, tokenAddress, from)
	if err != nil {
		return err
	}
	if from == to {
		// Self-transfers must not double-count the holding.
		if fromHolding < value {
			return ErrInvalidHolding
		}
		return nil
	}
	toHolding, err := GetMTokenHoldingNoController(ctx, mu, tokenAddress, to)
	if err != nil {
		return err
	}
	newFromHolding, err := smath.Sub(fromHolding, value)
	if err != nil {
		return ErrInvalidHolding
	}
	newToHolding, err := smath.Add(toHolding, value)
	if err != nil {
		return err
	}
	if err = SetMTokenHolding(ctx, mu, tokenAddress, from, newFromHolding); err != nil {
		return err
	}
	return SetMTokenHolding(ctx, mu, tokenAddress, to, newToHolding)
}
