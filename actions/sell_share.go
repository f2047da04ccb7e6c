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

var _ chain.Action = (*SellShare)(nil)

// SellShare burns shares back into the bonding curve and pays out reserve
// currency. Selling stays available while minting is paused so that holders
// always have an exit.
type SellShare struct {
	Token codec.Address `serialize:"true" json:"token"`

	// Shares to burn.
	Shares uint64 `serialize:"true" json:"shares"`

	// MinimumPayout aborts the sale if the net payout would be lower.
	MinimumPayout uint64 `serialize:"true" json:"minimum_payout"`

	// Owner must match the token owner. Required for StateKeys().
	Owner codec.Address `serialize:"true" json:"owner"`
}

// GetTypeID implements chain.Action.
func (*SellShare) GetTypeID() uint8 {
	return consts.SellShareID
}

// StateKeys implements chain.Action.
func (s *SellShare) StateKeys(actor codec.Address, _ ids.ID) state.Keys {
	return state.Keys{
		string(storage.MTokenInfoKey(s.Token)):           state.Read | state.Write,
		string(storage.MTokenHoldingKey(s.Token, actor)): state.Read | state.Write,
		string(storage.BalanceKey(actor)):                state.All,
		string(storage.BalanceKey(s.Owner)):              state.All,
		string(storage.BalanceKey(s.Token)):              state.Read | state.Write,
	}
}

// Execute implements chain.Action.
func (s *SellShare) Execute(
	ctx context.Context,
	_ chain.Rules,
	mu state.Mutable,
	_ int64,
	actor codec.Address,
	_ ids.ID,
) (codec.Typed, error) {
	if s.Shares == 0 {
		return nil, ErrOutputValueZero
	}
	_, _, totalSupply, reserveBalance, curveWeight, transactionFee, _, owner, _, err := storage.GetMTokenInfoNoController(ctx, mu, s.Token)
	if errors.Is(err, database.ErrNotFound) {
		return nil, ErrOutputTokenDoesNotExist
	}
	if err != nil {
		return nil, err
	}
	if owner != s.Owner {
		return nil, ErrOutputWrongOwnerAddress
	}
	holding, err := storage.GetMTokenHoldingNoController(ctx, mu, s.Token, actor)
	if err != nil {
		return nil, err
	}
	if holding < s.Shares {
		return nil, ErrOutputInsufficientShares
	}

	grossPayout, err := pricing.SaleReturn(totalSupply, reserveBalance, curveWeight, s.Shares)
	if err != nil {
		return nil, err
	}
	if grossPayout == 0 {
		return nil, ErrOutputPayoutTooSmall
	}
	fee := pricing.Fee(grossPayout, transactionFee)
	netPayout := grossPayout - fee
	if netPayout == 0 {
		return nil, ErrOutputPayoutTooSmall
	}
	if netPayout < s.MinimumPayout {
		return nil, ErrOutputSlippageExceeded
	}

	if err := storage.BurnShares(ctx, mu, s.Token, actor, s.Shares, grossPayout); err != nil {
		return nil, err
	}
	if _, err := storage.SubBalance(ctx, mu, s.Token, grossPayout); err != nil {
		return nil, err
	}
	if fee > 0 {
		if _, err := storage.AddBalance(ctx, mu, owner, fee, true); err != nil {
			return nil, err
		}
	}
	if _, err := storage.AddBalance(ctx, mu, actor, netPayout, true); err != nil {
		return nil, err
	}

	return &SellShareResult{
		Payout:         netPayout,
		FeePaid:        fee,
		TotalSupply:    totalSupply - s.Shares,
		ReserveBalance: reserveBalance - grossPayout,
	}, nil
}

// ComputeUnits implements chain.Action.
func (*SellShare) ComputeUnits(chain.Rules) uint64 {
	return SellShareComputeUnits
}

// ValidRange implements chain.Action.
func (*SellShare) ValidRange(chain.Rules) (int64, int64) {
	return -1, -1
}

var _ codec.Typed = (*SellShareResult)(nil)

type SellShareResult struct {
	Payout         uint64 `serialize:"true" json:"payout"`
	FeePaid        uint64 `serialize:"true" json:"fee_paid"`
	TotalSupply    uint64 `serialize:"true" json:"total_supply"`
	ReserveBalance uint64 `serialize:"true" json:"reserve_balance"`
}

func (*SellShareResult) GetTypeID() uint8 {
	return consts.SellShareID
}
