// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"
	"errors"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"

	"github.com/AtteqCom/memevm/consts"
	"github.com/AtteqCom/memevm/storage"
	"github.com/ava-labs/hypersdk/chain"
	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/state"
)

var _ chain.Action = (*SetTransactionFee)(nil)

// SetTransactionFee changes a token's trading fee. The new fee must stay
// strictly below the fee limit fixed at creation time.
type SetTransactionFee struct {
	Token codec.Address `serialize:"true" json:"token"`
	Fee   uint64        `serialize:"true" json:"fee"`
}

// GetTypeID implements chain.Action.
func (*SetTransactionFee) GetTypeID() uint8 {
	return consts.SetTransactionFeeID
}

// StateKeys implements chain.Action.
func (s *SetTransactionFee) StateKeys(_ codec.Address, _ ids.ID) state.Keys {
	return state.Keys{
		string(storage.MTokenInfoKey(s.Token)): state.Read | state.Write,
	}
}

// Execute implements chain.Action.
func (s *SetTransactionFee) Execute(
	ctx context.Context,
	_ chain.Rules,
	mu state.Mutable,
	_ int64,
	actor codec.Address,
	_ ids.ID,
) (codec.Typed, error) {
	name, symbol, totalSupply, reserveBalance, curveWeight, oldFee, feeLimit, owner, paused, err := storage.GetMTokenInfoNoController(ctx, mu, s.Token)
	if errors.Is(err, database.ErrNotFound) {
		return nil, ErrOutputTokenDoesNotExist
	}
	if err != nil {
		return nil, err
	}
	if owner != actor {
		return nil, ErrOutputNotTokenOwner
	}
	if s.Fee >= feeLimit {
		return nil, ErrOutputFeeAboveLimit
	}
	if err := storage.SetMTokenInfo(ctx, mu, s.Token, name, symbol, totalSupply, reserveBalance, curveWeight, s.Fee, feeLimit, owner, paused); err != nil {
		return nil, err
	}

	return &SetTransactionFeeResult{
		OldFee: oldFee,
		NewFee: s.Fee,
	}, nil
}

// ComputeUnits implements chain.Action.
func (*SetTransactionFee) ComputeUnits(chain.Rules) uint64 {
	return SetTransactionFeeComputeUnits
}

// ValidRange implements chain.Action.
func (*SetTransactionFee) ValidRange(chain.Rules) (int64, int64) {
	return -1, -1
}

var _ codec.Typed = (*SetTransactionFeeResult)(nil)

type SetTransactionFeeResult struct {
	OldFee uint64 `serialize:"true" json:"old_fee"`
	NewFee uint64 `serialize:"true" json:"new_fee"`
}

func (*SetTransactionFeeResult) GetTypeID() uint8 {
	return consts.SetTransactionFeeID
}
