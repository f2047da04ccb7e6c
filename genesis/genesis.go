// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package genesis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/trace"

	"github.com/ava-labs/hypersdk/chain"
	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/genesis"
	"github.com/ava-labs/hypersdk/state"

	"github.com/AtteqCom/memevm/pricing"
	"github.com/AtteqCom/memevm/storage"
)

var (
	_ genesis.Genesis               = (*Genesis)(nil)
	_ genesis.GenesisAndRuleFactory = (*Factory)(nil)
)

var (
	ErrNoRegisterAdmin = errors.New("genesis must name a register admin")
	ErrInvalidSettings = errors.New("invalid genesis token settings")
)

// TokenSettings overrides the defaults every token is created with. A nil
// field keeps the default.
type TokenSettings struct {
	CreationPrice  *uint64 `json:"creationPrice,omitempty"`
	InitialSupply  *uint64 `json:"initialSupply,omitempty"`
	ReserveDeposit *uint64 `json:"reserveDeposit,omitempty"`
	TransactionFee *uint64 `json:"transactionFee,omitempty"`
	FeeLimit       *uint64 `json:"feeLimit,omitempty"`
	CurveWeight    *uint64 `json:"curveWeight,omitempty"`
}

// Genesis extends the default genesis with the register configuration. The
// register admin collects token creation fees and controls the factory, so
// every chain must start with one.
type Genesis struct {
	*genesis.DefaultGenesis

	RegisterAdmin string         `json:"registerAdmin"`
	TokenSettings *TokenSettings `json:"tokenSettings,omitempty"`
}

func NewGenesis(customAllocations []*genesis.CustomAllocation, registerAdmin string) *Genesis {
	return &Genesis{
		DefaultGenesis: genesis.NewDefaultGenesis(customAllocations),
		RegisterAdmin:  registerAdmin,
	}
}

func (g *Genesis) InitializeState(ctx context.Context, tracer trace.Tracer, mu state.Mutable, balanceHandler chain.StateManager) error {
	if err := g.DefaultGenesis.InitializeState(ctx, tracer, mu, balanceHandler); err != nil {
		return err
	}

	ctx, span := tracer.Start(ctx, "Genesis.InitializeRegister")
	defer span.End()

	if g.RegisterAdmin == "" {
		return ErrNoRegisterAdmin
	}
	admin, err := codec.ParseAnyHrpAddressBech32(g.RegisterAdmin)
	if err != nil {
		return fmt.Errorf("%w: %s", err, g.RegisterAdmin)
	}
	if err := storage.SetRegisterConfig(ctx, mu, admin, false); err != nil {
		return err
	}

	creationPrice := storage.DefaultCreationPrice
	initialSupply := storage.DefaultInitialSupply
	reserveDeposit := storage.DefaultReserveDeposit
	transactionFee := storage.DefaultTransactionFee
	feeLimit := storage.DefaultFeeLimit
	curveWeight := storage.DefaultCurveWeight
	if s := g.TokenSettings; s != nil {
		if s.CreationPrice != nil {
			creationPrice = *s.CreationPrice
		}
		if s.InitialSupply != nil {
			initialSupply = *s.InitialSupply
		}
		if s.ReserveDeposit != nil {
			reserveDeposit = *s.ReserveDeposit
		}
		if s.TransactionFee != nil {
			transactionFee = *s.TransactionFee
		}
		if s.FeeLimit != nil {
			feeLimit = *s.FeeLimit
		}
		if s.CurveWeight != nil {
			curveWeight = *s.CurveWeight
		}
	}
	if initialSupply == 0 || reserveDeposit == 0 {
		return ErrInvalidSettings
	}
	if curveWeight == 0 || curveWeight > pricing.MaxWeight {
		return ErrInvalidSettings
	}
	if feeLimit > pricing.FeeDenominator || transactionFee >= feeLimit {
		return ErrInvalidSettings
	}
	return storage.SetTokenSettings(ctx, mu, creationPrice, initialSupply, reserveDeposit, transactionFee, feeLimit, curveWeight)
}

type Factory struct{}

func (Factory) Load(genesisBytes []byte, _ []byte, networkID uint32, chainID ids.ID) (genesis.Genesis, genesis.RuleFactory, error) {
	gen := &Genesis{DefaultGenesis: &genesis.DefaultGenesis{}}
	if err := json.Unmarshal(genesisBytes, gen); err != nil {
		return nil, nil, err
	}
	gen.Rules.NetworkID = networkID
	gen.Rules.ChainID = chainID

	return gen, &genesis.ImmutableRuleFactory{Rules: gen.Rules}, nil
}
