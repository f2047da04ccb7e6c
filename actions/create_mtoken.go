// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/AtteqCom/memevm/consts"
	"github.com/AtteqCom/memevm/storage"
	"github.com/AtteqCom/memevm/utils"
	"github.com/ava-labs/hypersdk/chain"
	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/state"
)

var _ chain.Action = (*CreateMToken)(nil)

// CreateMToken registers a new bonding curve token. The creation price is
// paid to the register admin and the initial reserve deposit is moved into
// the new token's reserve, so the token is tradable from its first block.
type CreateMToken struct {
	Name   []byte `serialize:"true" json:"name"`
	Symbol []byte `serialize:"true" json:"symbol"`

	// Admin must match the current register admin. Required for StateKeys().
	Admin codec.Address `serialize:"true" json:"admin"`
}

// GetTypeID implements chain.Action.
func (*CreateMToken) GetTypeID() uint8 {
	return consts.CreateMTokenID
}

// StateKeys implements chain.Action.
func (c *CreateMToken) StateKeys(actor codec.Address, _ ids.ID) state.Keys {
	name, symbol := normalizeIdentifiers(c.Name, c.Symbol)
	tokenAddress := storage.MTokenAddress(name, symbol)
	return state.Keys{
		string(storage.RegisterConfigKey()):                   state.Read,
		string(storage.TokenSettingsKey()):                    state.Read,
		string(storage.TokenNameIndexKey(name)):               state.All,
		string(storage.TokenSymbolIndexKey(symbol)):           state.All,
		string(storage.MTokenInfoKey(tokenAddress)):           state.All,
		string(storage.MTokenHoldingKey(tokenAddress, actor)): state.All,
		string(storage.RegisterHeadKey()):                     state.All,
		string(storage.RegisterEntryKey(tokenAddress)):        state.All,
		string(storage.BalanceKey(actor)):                     state.Read | state.Write,
		string(storage.BalanceKey(c.Admin)):                   state.All,
		string(storage.BalanceKey(tokenAddress)):              state.All,
	}
}

// Execute implements chain.Action.
func (c *CreateMToken) Execute(
	ctx context.Context,
	_ chain.Rules,
	mu state.Mutable,
	_ int64,
	actor codec.Address,
	_ ids.ID,
) (codec.Typed, error) {
	// Enforce initial invariants
	strippedName := utils.StripSpaceCharacters(c.Name)
	strippedSymbol := utils.StripSpaceCharacters(c.Symbol)
	if len(strippedName) == 0 {
		return nil, ErrOutputTokenNameEmpty
	}
	if len(strippedSymbol) == 0 {
		return nil, ErrOutputTokenSymbolEmpty
	}
	if len(strippedName) > storage.MaxTokenNameSize {
		return nil, ErrOutputTokenNameTooLarge
	}
	if len(strippedSymbol) > storage.MaxTokenSymbolSize {
		return nil, ErrOutputTokenSymbolTooLarge
	}
	if !utils.ContainsOnlyPrintableASCII(strippedName) {
		return nil, ErrOutputTokenNameInvalid
	}
	if !utils.ContainsOnlyPrintableASCII(strippedSymbol) {
		return nil, ErrOutputTokenSymbolInvalid
	}

	// Uniqueness is checked on the lowercased identifiers
	normName := utils.ToLowercaseASCII(strippedName)
	normSymbol := utils.ToLowercaseASCII(strippedSymbol)
	if storage.TokenNameExists(ctx, mu, normName) {
		return nil, ErrOutputTokenNameTaken
	}
	if storage.TokenSymbolExists(ctx, mu, normSymbol) {
		return nil, ErrOutputTokenSymbolTaken
	}

	tokenAddress := storage.MTokenAddress(normName, normSymbol)
	if storage.MTokenExists(ctx, mu, tokenAddress) {
		return nil, ErrOutputTokenAlreadyExists
	}

	admin, factoryPaused, err := storage.GetRegisterConfigNoController(ctx, mu)
	if err != nil {
		return nil, err
	}
	if factoryPaused {
		return nil, ErrOutputFactoryPaused
	}
	if admin != c.Admin {
		return nil, ErrOutputWrongAdminAddress
	}

	creationPrice, initialSupply, reserveDeposit, transactionFee, feeLimit, curveWeight, err := storage.GetTokenSettingsNoController(ctx, mu)
	if err != nil {
		return nil, err
	}

	// Charge the creator before any record is written
	if _, err := storage.SubBalance(ctx, mu, actor, creationPrice); err != nil {
		return nil, err
	}
	if _, err := storage.AddBalance(ctx, mu, admin, creationPrice, true); err != nil {
		return nil, err
	}
	if _, err := storage.SubBalance(ctx, mu, actor, reserveDeposit); err != nil {
		return nil, err
	}
	if _, err := storage.AddBalance(ctx, mu, tokenAddress, reserveDeposit, true); err != nil {
		return nil, err
	}

	if err := storage.SetMTokenInfo(ctx, mu, tokenAddress, strippedName, strippedSymbol, initialSupply, reserveDeposit, curveWeight, transactionFee, feeLimit, actor, false); err != nil {
		return nil, err
	}
	if err := storage.SetMTokenHolding(ctx, mu, tokenAddress, actor, initialSupply); err != nil {
		return nil, err
	}
	if err := storage.SetTokenNameIndex(ctx, mu, normName, tokenAddress); err != nil {
		return nil, err
	}
	if err := storage.SetTokenSymbolIndex(ctx, mu, normSymbol, tokenAddress); err != nil {
		return nil, err
	}

	// Append to the creation log
	count, latest, err := storage.GetRegisterHeadNoController(ctx, mu)
	if err != nil {
		return nil, err
	}
	order := count + 1
	if err := storage.SetRegisterEntry(ctx, mu, tokenAddress, order, latest); err != nil {
		return nil, err
	}
	if err := storage.SetRegisterHead(ctx, mu, order, tokenAddress); err != nil {
		return nil, err
	}

	return &CreateMTokenResult{
		TokenAddress:   tokenAddress,
		CreationOrder:  order,
		TotalSupply:    initialSupply,
		ReserveBalance: reserveDeposit,
	}, nil
}

// ComputeUnits implements chain.Action.
func (*CreateMToken) ComputeUnits(chain.Rules) uint64 {
	return CreateMTokenComputeUnits
}

// ValidRange implements chain.Action.
func (*CreateMToken) ValidRange(chain.Rules) (int64, int64) {
	return -1, -1
}

// normalizeIdentifiers mirrors the Execute() normalization so that StateKeys()
// declares the same keys Execute() touches.
func normalizeIdentifiers(rawName []byte, rawSymbol []byte) ([]byte, []byte) {
	name := utils.ToLowercaseASCII(utils.StripSpaceCharacters(rawName))
	symbol := utils.ToLowercaseASCII(utils.StripSpaceCharacters(rawSymbol))
	return name, symbol
}

var _ codec.Typed = (*CreateMTokenResult)(nil)

type CreateMTokenResult struct {
	TokenAddress   codec.Address `serialize:"true" json:"token_address"`
	CreationOrder  uint64        `serialize:"true" json:"creation_order"`
	TotalSupply    uint64        `serialize:"true" json:"total_supply"`
	ReserveBalance uint64        `serialize:"true" json:"reserve_balance"`
}

func (*CreateMTokenResult) GetTypeID() uint8 {
	return consts.CreateMTokenID
}
