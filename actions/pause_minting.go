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

var (
	_ chain.Action = (*PauseMinting)(nil)
	_ chain.Action = (*UnpauseMinting)(nil)
)

// PauseMinting stops share purchases on a token. Selling is unaffected.
type PauseMinting struct {
	Token codec.Address `serialize:"true" json:"token"`
}

// GetTypeID implements chain.Action.
func (*PauseMinting) GetTypeID() uint8 {
	return consts.PauseMintingID
}

// StateKeys implements chain.Action.
func (p *PauseMinting) StateKeys(_ codec.Address, _ ids.ID) state.Keys {
	return state.Keys{
		string(storage.MTokenInfoKey(p.Token)): state.Read | state.Write,
	}
}

// Execute implements chain.Action.
func (p *PauseMinting) Execute(
	ctx context.Context,
	_ chain.Rules,
	mu state.Mutable,
	_ int64,
	actor codec.Address,
	_ ids.ID,
) (codec.Typed, error) {
	if err := setPaused(ctx, mu, p.Token, actor, true); err != nil {
		return nil, err
	}
	return &PauseMintingResult{Paused: true}, nil
}

// ComputeUnits implements chain.Action.
func (*PauseMinting) ComputeUnits(chain.Rules) uint64 {
	return PauseMintingComputeUnits
}

// ValidRange implements chain.Action.
func (*PauseMinting) ValidRange(chain.Rules) (int64, int64) {
	return -1, -1
}

// UnpauseMinting resumes share purchases on a paused token.
type UnpauseMinting struct {
	Token codec.Address `serialize:"true" json:"token"`
}

// GetTypeID implements chain.Action.
func (*UnpauseMinting) GetTypeID() uint8 {
	return consts.UnpauseMintingID
}

// StateKeys implements chain.Action.
func (u *UnpauseMinting) StateKeys(_ codec.Address, _ ids.ID) state.Keys {
	return state.Keys{
		string(storage.MTokenInfoKey(u.Token)): state.Read | state.Write,
	}
}

// Execute implements chain.Action.
func (u *UnpauseMinting) Execute(
	ctx context.Context,
	_ chain.Rules,
	mu state.Mutable,
	_ int64,
	actor codec.Address,
	_ ids.ID,
) (codec.Typed, error) {
	if err := setPaused(ctx, mu, u.Token, actor, false); err != nil {
		return nil, err
	}
	return &PauseMintingResult{Paused: false}, nil
}

// ComputeUnits implements chain.Action.
func (*UnpauseMinting) ComputeUnits(chain.Rules) uint64 {
	return UnpauseMintingComputeUnits
}

// ValidRange implements chain.Action.
func (*UnpauseMinting) ValidRange(chain.Rules) (int64, int64) {
	return -1, -1
}

func setPaused(
	ctx context.Context,
	mu state.Mutable,
	token codec.Address,
	actor codec.Address,
	paused bool,
) error {
	name, symbol, totalSupply, reserveBalance, curveWeight, transactionFee, feeLimit, owner, wasPaused, err := storage.GetMTokenInfoNoController(ctx, mu, token)
	if errors.Is(err, database.ErrNotFound) {
		return ErrOutputTokenDoesNotExist
	}
	if err != nil {
		return err
	}
	if owner != actor {
		return ErrOutputNotTokenOwner
	}
	if paused && wasPaused {
		return ErrOutputAlreadyPaused
	}
	if !paused && !wasPaused {
		return ErrOutputNotPaused
	}
	return storage.SetMTokenInfo(ctx, mu, token, name, symbol, totalSupply, reserveBalance, curveWeight, transactionFee, feeLimit, owner, paused)
}

var _ codec.Typed = (*PauseMintingResult)(nil)

type PauseMintingResult struct {
	Paused bool `serialize:"true" json:"paused"`
}

func (*PauseMintingResult) GetTypeID() uint8 {
	return consts.PauseMintingID
}
