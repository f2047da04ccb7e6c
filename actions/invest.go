// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"
	"errors"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"

	"github.com/AtteqCom/memevm/consts"
	"github.com/AtteqCom/memevm/pricing"
	"github.com/AtteqCom/memevm/storage"
	"github.com/ava-labs/hypersdk/chain"
	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/state"
)

var _ chain.Action = (*Invest)(nil)

// Invest deposits reserve currency into a token's bonding curve and mints
// shares priced along the curve. The transaction fee is taken from the
// deposit and paid to the token owner before pricing.
type Invest struct {
	Token codec.Address `serialize:"true" json:"token"`

	// Amount of reserve currency to deposit, fee included.
	Amount uint64 `serialize:"true" json:"amount"`

	// MinimumShares aborts the purchase if the curve would mint fewer shares.
	MinimumShares uint64 `serialize:"true" json:"minimum_shares"`

	// Owner must match the token owner. Required for StateKeys().
	Owner codec.Address `serialize:"true" json:"owner"`
}

// GetTypeID implements chain.Action.
func (*Invest) GetTypeID() uint8 {
	return consts.InvestID
}

// StateKeys implements chain.Action.
func (i *Invest) StateKeys(actor codec.Address, _ ids.ID) state.Keys {
	return state.Keys{
		string(storage.MTokenInfoKey(i.Token)):           state.Read | state.Write,
		string(storage.MTokenHoldingKey(i.Token, actor)): state.All,
		string(storage.BalanceKey(actor)):                state.Read | state.Write,
		string(storage.BalanceKey(i.Owner)):              state.All,
		string(storage.BalanceKey(i.Token)):              state.Read | state.Write,
	}
}

// Execute implements chain.Action.
func (i *Invest) Execute(
	ctx context.Context,
	_ chain.Rules,
	mu state.Mutable,
	_ int64,
	actor codec.Address,
	_ ids.ID,
) (codec.Typed, error) {
	if i.Amount == 0 {
		return nil, ErrOutputValueZero
	}
	_, _, totalSupply, reserveBalance, curveWeight, transactionFee, _, owner, paused, err := storage.GetMTokenInfoNoController(ctx, mu, i.Token)
	if errors.Is(err, database.ErrNotFound) {
		return nil, ErrOutputTokenDoesNotExist
	}
	if err != nil {
		return nil, err
	}
	if paused {
		return nil, ErrOutputMintingPaused
	}
	if owner != i.Owner {
		return nil, ErrOutputWrongOwnerAddress
	}

	fee := pricing.Fee(i.Amount, transactionFee)
	netDeposit := i.Amount - fee
	if netDeposit == 0 {
		return nil, ErrOutputDepositTooSmall
	}
	shares, err := pricing.PurchaseReturn(totalSupply, reserveBalance, curveWeight, netDeposit)
	if err != nil {
		return nil, err
	}
	if shares == 0 {
		return nil, ErrOutputDepositTooSmall
	}
	if shares < i.MinimumShares {
		return nil, ErrOutputSlippageExceeded
	}

	if _, err := storage.SubBalance(ctx, mu, actor, i.Amount); err != nil {
		return nil, err
	}
	if fee > 0 {
		if _, err := storage.AddBalance(ctx, mu, owner, fee, true); err != nil {
			return nil, err
		}
	}
	if _, err := storage.AddBalance(ctx, mu, i.Token, netDeposit, true); err != nil {
		return nil, err
	}
	if err := storage.MintShares(ctx, mu, i.Token, actor, shares, netDeposit); err != nil {
		return nil, err
	}

	return &InvestResult{
		SharesMinted:   shares,
		FeePaid:        fee,
		TotalSupply:    totalSupply + shares,
		ReserveBalance: reserveBalance + netDeposit,
	}, nil
}

// ComputeUnits implements chain.Action.
func (*Invest) ComputeUnits(chain.Rules) uint64 {
	return InvestComputeUnits
}

// ValidRange implements chain.Action.
func (*Invest) ValidRange(chain.Rules) (int64, int64) {
	return -1, -1
}

var _ codec.Typed = (*InvestResult)(nil)

type InvestResult struct {
	SharesMinted   uint64 `serialize:"true" json:"shares_minted"`
	FeePaid        uint64 `serialize:"true" json:"fee_paid"`
	TotalSupply    uint64 `serialize:"true" json:"total_supply"`
	ReserveBalance uint64 `serialize:"true" json:"reserve_balance"`
}

func (*InvestResult) GetTypeID() uint8 {
	return consts.InvestID
}
