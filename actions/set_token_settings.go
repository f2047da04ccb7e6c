// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/AtteqCom/memevm/consts"
	"github.com/AtteqCom/memevm/pricing"
	"github.com/AtteqCom/memevm/storage"
	"github.com/ava-labs/hypersdk/chain"
	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/state"
)

// Settings fields addressable by SetTokenSettings.
const (
	SettingsCreationPrice uint8 = iota
	SettingsInitialSupply
	SettingsReserveDeposit
	SettingsTransactionFee
	SettingsFeeLimit
	SettingsCurveWeight
)

var _ chain.Action = (*SetTokenSettings)(nil)

// SetTokenSettings updates one field of the shared creation settings.
// Changes only affect tokens created afterwards.
type SetTokenSettings struct {
	Field uint8  `serialize:"true" json:"field"`
	Value uint64 `serialize:"true" json:"value"`
}

// GetTypeID implements chain.Action.
func (*SetTokenSettings) GetTypeID() uint8 {
	return consts.SetTokenSettingsID
}

// StateKeys implements chain.Action.
func (*SetTokenSettings) StateKeys(_ codec.Address, _ ids.ID) state.Keys {
	return state.Keys{
		string(storage.RegisterConfigKey()): state.Read,
		string(storage.TokenSettingsKey()):  state.Read | state.Write,
	}
}

// Execute implements chain.Action.
func (s *SetTokenSettings) Execute(
	ctx context.Context,
	_ chain.Rules,
	mu state.Mutable,
	_ int64,
	actor codec.Address,
	_ ids.ID,
) (codec.Typed, error) {
	admin, _, err := storage.GetRegisterConfigNoController(ctx, mu)
	if err != nil {
		return nil, err
	}
	if admin != actor {
		return nil, ErrOutputNotRegisterAdmin
	}
	creationPrice, initialSupply, reserveDeposit, transactionFee, feeLimit, curveWeight, err := storage.GetTokenSettingsNoController(ctx, mu)
	if err != nil {
		return nil, err
	}

	var oldValue uint64
	switch s.Field {
	case SettingsCreationPrice:
		oldValue, creationPrice = creationPrice, s.Value
	case SettingsInitialSupply:
		if s.Value == 0 {
			return nil, ErrOutputInvalidSettingsValue
		}
		oldValue, initialSupply = initialSupply, s.Value
	case SettingsReserveDeposit:
		if s.Value == 0 {
			return nil, ErrOutputInvalidSettingsValue
		}
		oldValue, reserveDeposit = reserveDeposit, s.Value
	case SettingsTransactionFee:
		if s.Value >= feeLimit {
			return nil, ErrOutputInvalidSettingsValue
		}
		oldValue, transactionFee = transactionFee, s.Value
	case SettingsFeeLimit:
		if s.Value <= transactionFee || s.Value > pricing.FeeDenominator {
			return nil, ErrOutputInvalidSettingsValue
		}
		oldValue, feeLimit = feeLimit, s.Value
	case SettingsCurveWeight:
		if s.Value == 0 || s.Value > pricing.MaxWeight {
			return nil, ErrOutputInvalidSettingsValue
		}
		oldValue, curveWeight = curveWeight, s.Value
	default:
		return nil, ErrOutputInvalidSettingsField
	}

	if err := storage.SetTokenSettings(ctx, mu, creationPrice, initialSupply, reserveDeposit, transactionFee, feeLimit, curveWeight); err != nil {
		return nil, err
	}

	return &SetTokenSettingsResult{
		Field:    s.Field,
		OldValue: oldValue,
		NewValue: s.Value,
	}, nil
}

// ComputeUnits implements chain.Action.
func (*SetTokenSettings) ComputeUnits(chain.Rules) uint64 {
	return SetTokenSettingsComputeUnits
}

// ValidRange implements chain.Action.
func (*SetTokenSettings) ValidRange(chain.Rules) (int64, int64) {
	return -1, -1
}

var _ codec.Typed = (*SetTokenSettingsResult)(nil)

type SetTokenSettingsResult struct {
	Field    uint8  `serialize:"true" json:"field"`
	OldValue uint64 `serialize:"true" json:"old_value"`
	NewValue uint64 `serialize:"true" json:"new_value"`
}

func (*SetTokenSettingsResult) GetTypeID() uint8 {
	return consts.SetTokenSettingsID
}
