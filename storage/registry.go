// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"encoding/binary"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/state"
	"github.com/ava-labs/hypersdk/utils"

	hconsts "github.com/ava-labs/hypersdk/consts"
)

// The register keeps three kinds of records:
//   - name and symbol indices mapping normalized identifiers to token
//     addresses, which enforce uniqueness of both
//   - a singleton head record holding the token count and the most recently
//     created token, plus a per-token entry linking to its predecessor, which
//     together form a walkable creation log
//   - a singleton config record holding the register admin and the factory
//     pause flag

func TokenNameIndexKey(name []byte) []byte {
	id := utils.ToID(name)
	k := make([]byte, 1+ids.IDLen+hconsts.Uint16Len)
	k[0] = tokenNameIndexPrefix
	copy(k[1:], id[:])
	binary.BigEndian.PutUint16(k[1+ids.IDLen:], TokenIndexChunks)
	return k
}

func TokenSymbolIndexKey(symbol []byte) []byte {
	id := utils.ToID(symbol)
	k := make([]byte, 1+ids.IDLen+hconsts.Uint16Len)
	k[0] = tokenSymbolIndexPrefix
	copy(k[1:], id[:])
	binary.BigEndian.PutUint16(k[1+ids.IDLen:], TokenIndexChunks)
	return k
}

func RegisterHeadKey() []byte {
	k := make([]byte, 1+hconsts.Uint16Len)
	k[0] = registerHeadPrefix
	binary.BigEndian.PutUint16(k[1:], RegisterHeadChunks)
	return k
}

func RegisterEntryKey(tokenAddress codec.Address) []byte {
	k := make([]byte, 1+codec.AddressLen+hconsts.Uint16Len)
	k[0] = registerEntryPrefix
	copy(k[1:], tokenAddress[:])
	binary.BigEndian.PutUint16(k[1+codec.AddressLen:], RegisterEntryChunks)
	return k
}

func RegisterConfigKey() []byte {
	k := make([]byte, 1+hconsts.Uint16Len)
	k[0] = registerConfigPrefix
	binary.BigEndian.PutUint16(k[1:], RegisterConfigChunks)
	return k
}

func SetTokenNameIndex(
	ctx context.Context,
	mu state.Mutable,
	name []byte,
	tokenAddress codec.Address,
) error {
	return mu.Insert(ctx, TokenNameIndexKey(name), tokenAddress[:])
}

func SetTokenSymbolIndex(
	ctx context.Context,
	mu state.Mutable,
	symbol []byte,
	tokenAddress codec.Address,
) error {
	return mu.Insert(ctx, TokenSymbolIndexKey(symbol), tokenAddress[:])
}

func TokenNameExists(
	ctx context.Context,
	mu state.Immutable,
	name []byte,
) bool {
	v, err := mu.GetValue(ctx, TokenNameIndexKey(name))
	return v != nil && err == nil
}

func TokenSymbolExists(
	ctx context.Context,
	mu state.Immutable,
	symbol []byte,
) bool {
	v, err := mu.GetValue(ctx, TokenSymbolIndexKey(symbol))
	return v != nil && err == nil
}

// Used to serve RPC queries
func GetTokenByName(
	ctx context.Context,
	f ReadState,
	name []byte,
) (codec.Address, error) {
	values, errs := f(ctx, [][]byte{TokenNameIndexKey(name)})
	return innerGetIndexedAddress(values[0], errs[0])
}

// Used to serve RPC queries
func GetTokenBySymbol(
	ctx context.Context,
	f ReadState,
	symbol []byte,
) (codec.Address, error) {
	values, errs := f(ctx, [][]byte{TokenSymbolIndexKey(symbol)})
	return innerGetIndexedAddress(values[0], errs[0])
}

func innerGetIndexedAddress(v []byte, err error) (codec.Address, error) {
	if err == database.ErrNotFound {
		return codec.EmptyAddress, ErrTokenNotFound
	}
	if err != nil {
		return codec.EmptyAddress, err
	}
	return codec.Address(v), nil
}

func SetRegisterHead(
	ctx context.Context,
	mu state.Mutable,
	count uint64,
	latest codec.Address,
) error {
	v := make([]byte, hconsts.Uint64Len+codec.AddressLen)
	binary.BigEndian.PutUint64(v, count)
	copy(v[hconsts.Uint64Len:], latest[:])
	return mu.Insert(ctx, RegisterHeadKey(), v)
}

func GetRegisterHeadNoController(
	ctx context.Context,
	mu state.Immutable,
) (uint64, codec.Address, error) {
	v, err := mu.GetValue(ctx, RegisterHeadKey())
	return innerGetRegisterHead(v, err)
}

// Used to serve RPC queries
func GetRegisterHead(
	ctx context.Context,
	f ReadState,
) (uint64, codec.Address, error) {
	values, errs := f(ctx, [][]byte{RegisterHeadKey()})
	return innerGetRegisterHead(values[0], errs[0])
}

func innerGetRegisterHead(v []byte, err error) (uint64, codec.Address, error) {
	if err == database.ErrNotFound {
		return 0, codec.EmptyAddress, nil
	}
	if err != nil {
		return 0, codec.EmptyAddress, err
	}
	count := binary.BigEndian.Uint64(v)
	latest := codec.Address(v[hconsts.Uint64Len:])
	return count, latest, nil
}

func SetRegisterEntry(
	ctx context.Context,
	mu state.Mutable,
	tokenAddress codec.Address,
	order uint64,
	prev codec.Address,
) error {
	v := make([]byte, hconsts.Uint64Len+codec.AddressLen)
	binary.BigEndian.PutUint64(v, order)
	copy(v[hconsts.Uint64Len:], prev[:])
	return mu.Insert(ctx, RegisterEntryKey(tokenAddress), v)
}

// Used to serve RPC queries
func GetRegisterEntry(
	ctx context.Context,
	f ReadState,
	tokenAddress codec.Address,
) (uint64, codec.Address, error) {
	values, errs := f(ctx, [][]byte{RegisterEntryKey(tokenAddress)})
	if errs[0] == database.ErrNotFound {
		return 0, codec.EmptyAddress, ErrTokenNotFound
	}
	if errs[0] != nil {
		return 0, codec.EmptyAddress, errs[0]
	}
	order := binary.BigEndian.Uint64(values[0])
	prev := codec.Address(values[0][hconsts.Uint64Len:])
	return order, prev, nil
}

func SetRegisterConfig(
	ctx context.Context,
	mu state.Mutable,
	admin codec.Address,
	factoryPaused bool,
) error {
	v := make([]byte, codec.AddressLen+hconsts.ByteLen)
	copy(v, admin[:])
	b := byte(0x0)
	if factoryPaused {
		b = 0x1
	}
	v[codec.AddressLen] = b
	return mu.Insert(ctx, RegisterConfigKey(), v)
}

func GetRegisterConfigNoController(
	ctx context.Context,
	mu state.Immutable,
) (codec.Address, bool, error) {
	v, err := mu.GetValue(ctx, RegisterConfigKey())
	return innerGetRegisterConfig(v, err)
}

// Used to serve RPC queries
func GetRegisterConfig(
	ctx context.Context,
	f ReadState,
) (codec.Address, bool, error) {
	values, errs := f(ctx, [][]byte{RegisterConfigKey()})
	return innerGetRegisterConfig(values[0], errs[0])
}

func innerGetRegisterConfig(v []byte, err error) (codec.Address, bool, error) {
	if err == database.ErrNotFound {
		return codec.EmptyAddress, false, ErrRegisterNotFound
	}
	if err != nil {
		return codec.EmptyAddress, false, err
	}
	admin := codec.Address(v[:codec.AddressLen])
	return admin, v[codec.AddressLen] == 0x1, nil
}
