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

var _ chain.Action = (*SetRegisterAdmin)(nil)

// SetRegisterAdmin hands the register over to a new admin. Creation fees of
// future tokens are paid to the new admin.
type SetRegisterAdmin struct {
	NewAdmin codec.Address `serialize:"true" json:"new_admin"`
}

// GetTypeID implements chain.Action.
func (*SetRegisterAdmin) GetTypeID() uint8 {
	return consts.SetRegisterAdminID
}

// StateKeys implements chain.Action.
func (*SetRegisterAdmin) StateKeys(_ codec.Address, _ ids.ID) state.Keys {
	return state.Keys{
		string(storage.RegisterConfigKey()): state.Read | state.Write,
	}
}

// Execute implements chain.Action.
func (s *SetRegisterAdmin) Execute(
	ctx context.Context,
	_ chain.Rules,
	mu state.Mutable,
	_ int64,
	actor codec.Address,
	_ ids.ID,
) (codec.Typed, error) {
	oldAdmin, factoryPaused, err := storage.GetRegisterConfigNoController(ctx, mu)
	if err != nil {
		return nil, err
	}
	if oldAdmin != actor {
		return nil, ErrOutputNotRegisterAdmin
	}
	if err := storage.SetRegisterConfig(ctx, mu, s.NewAdmin, factoryPaused); err != nil {
		return nil, err
	}

	return &SetRegisterAdminResult{
		OldAdmin: oldAdmin,
		NewAdmin: s.NewAdmin,
	}, nil
}

// ComputeUnits implements chain.Action.
func (*SetRegisterAdmin) ComputeUnits(chain.Rules) uint64 {
	return SetRegisterAdminComputeUnits
}

// ValidRange implements chain.Action.
func (*SetRegisterAdmin) ValidRange(chain.Rules) (int64, int64) {
	return -1, -1
}

var _ codec.Typed = (*SetRegisterAdminResult)(nil)

type SetRegisterAdminResult struct {
	OldAdmin codec.Address `serialize:"true" json:"old_admin"`
	NewAdmin codec.Address `serialize:"true" json:"new_admin"`
}

func (*SetRegisterAdminResult) GetTypeID() uint8 {
	return consts.SetRegisterAdminID
}
