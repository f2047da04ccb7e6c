// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

// Key prefixes
const (
	// Required for StateManager
	heightPrefix byte = iota
	timestampPrefix
	feePrefix

	// Required for MemeVM
	balancePrefix
	mTokenInfoPrefix
	mTokenHoldingPrefix
	tokenNameIndexPrefix
	tokenSymbolIndexPrefix
	registerHeadPrefix
	registerEntryPrefix
	tokenSettingsPrefix
	registerConfigPrefix
)

// TODO: tune these values
// Chunks
const (
	BalanceChunks          uint16 = 1
	MTokenInfoChunks       uint16 = 2
	MTokenHoldingChunks    uint16 = 1
	TokenIndexChunks       uint16 = 1
	RegisterHeadChunks     uint16 = 1
	RegisterEntryChunks    uint16 = 1
	TokenSettingsChunks    uint16 = 1
	RegisterConfigChunks   uint16 = 1
)

// Related to action invariants
const (
	MaxTokenNameSize   = 64
	MaxTokenSymbolSize = 16
)

var (
	heightKey    = []byte{heightPrefix}
	timestampKey = []byte{timestampPrefix}
	feeKey       = []byte{feePrefix}
)

func HeightKey() []byte {
	return heightKey
}

func TimestampKey() []byte {
	return timestampKey
}

func FeeKey() []byte {
	return feeKey
}
