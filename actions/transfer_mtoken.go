// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/AtteqCom/memevm/consts"
	"github.com/AtteqCom/memevm/storage"
	"github.com/ava-labs/hypersdk/chain"
	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/state"
)

var _ chain.Action = (*TransferMToken)(nil)

// TransferMToken moves shares between accounts without touching the curve.
type TransferMToken struct {
	Token codec.Address `serialize:"true" json:"token"`
	To    codec.Address `serialize:"true" json:"to"`
	Value uint64        `serialize:"true" json:"value"`
}

// GetTypeID implements chain.Action.
func (*TransferMToken) GetTypeID() uint8 {
	return consts.TransferMTokenID
}

// StateKeys implements chain.Action.
func (t *TransferMToken) StateKeys(actor codec.Address, _ ids.ID) state.Keys {
	return state.Keys{
		string(storage.MTokenInfoKey(t.Token)):           state.Read,
		string(storage.MTokenHoldingKey(t.Token, actor)): state.Read | state.Write,
		string(storage.MTokenHoldingKey(t.Token, t.To)):  state.All,
	}
}

// Execute implements chain.Action.
func (t *TransferMToken) Execute(
	ctx context.Context,
	_ chain.Rules,
	mu state.Mutable,
	_ int64,
	actor codec.Address,
	_ ids.ID,
) (codec.Typed, error) {
	if t.Value == 0 {
		return nil, ErrOutputValueZero
	}
	if !storage.MTokenExists(ctx, mu, t.Token) {
		return nil, ErrOutputTokenDoesNotExist
	}
	if err := storage.TransferShares(ctx, mu, t.Token, actor, t.To, t.Value); err != nil {
		return nil, err
	}
	senderHolding, err := storage.GetMTokenHoldingNoController(ctx, mu, t.Token, actor)
	if err != nil {
		return nil, err
	}
	receiverHolding, err := storage.GetMTokenHoldingNoController(ctx, mu, t.Token, t.To)
	if err != nil {
		return nil, err
	}

	return &TransferMTokenResult{
		SenderHolding:   senderHolding,
		ReceiverHolding: receiverHolding,
	}, nil
}

// ComputeUnits implements chain.Action.
func (*TransferMToken) ComputeUnits(chain.Rules) uint64 {
	return TransferMTokenComputeUnits
}

// ValidRange implements chain.Action.
func (*TransferMToken) ValidRange(chain.Rules) (int64, int64) {
	return -1, -1
}

var _ codec.Typed = (*TransferMTokenResult)(nil)

type TransferMTokenResult struct {
	SenderHolding   uint64 `serialize:"true" json:"sender_holding"`
	ReceiverHolding uint64 `serialize:"true" json:"receiver_holding"`
}

func (*TransferMTokenResult) GetTypeID() uint8 {
	return consts.TransferMTokenID
}
