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

var _ chain.Action = (*SetFactoryStatus)(nil)

// SetFactoryStatus pauses or resumes token creation across the whole
// register. Individual token pause flags are unaffected.
type SetFactoryStatus struct {
	Paused bool `serialize:"true" json:"paused"`
}

// GetTypeID implements chain.Action.
func (*SetFactoryStatus) GetTypeID() uint8 {
	return consts.SetFactoryStatusID
}

// StateKeys implements chain.Action.
func (*SetFactoryStatus) StateKeys(_ codec.Address, _ ids.ID) state.Keys {
	return state.Keys{
		string(storage.RegisterConfigKey()): state.Read | state.Write,
	}
}

// Execute implements chain.Action.
func (s *SetFactoryStatus) Execute(
	ctx context.Context,
	_ chain.Rules,
	mu state.Mutable,
	_ int64,
	actor codec.Address,
	_ ids.ID,
) (codec.Typed, error) {
	admin, oldPaused, err := storage.GetRegisterConfigNoController(ctx, mu)
	if err != nil {
		return nil, err
	}
	if admin != actor {
		return nil, ErrOutputNotRegisterAdmin
	}
	if err := storage.SetRegisterConfig(ctx, mu, admin, s.Paused); err != nil {
		return nil, err
	}

	return &SetFactoryStatusResult{
		OldPaused: oldPaused,
		NewPaused: s.Paused,
	}, nil
}

// ComputeUnits implements chain.Action.
func (*SetFactoryStatus) ComputeUnits(chain.Rules) uint64 {
	return SetFactoryStatusComputeUnits
}

// ValidRange implements chain.Action.
func (*SetFactoryStatus) ValidRange(chain.Rules) (int64, int64) {
	return -1, -1
}

var _ codec.Typed = (*SetFactoryStatusResult)(nil)

type SetFactoryStatusResult struct {
	OldPaused bool `serialize:"true" json:"old_paused"`
	NewPaused bool `serialize:"true" json:"new_paused"`
}

func (*SetFactoryStatusResult) GetTypeID() uint8 {
	return consts.SetFactoryStatusID
}
