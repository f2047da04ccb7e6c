// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package genesis

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/trace"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/hypersdk/chain/chaintest"
	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/codec/codectest"
	hgenesis "github.com/ava-labs/hypersdk/genesis"

	"github.com/AtteqCom/memevm/consts"
	"github.com/AtteqCom/memevm/storage"
)

func TestGenesisInitializesRegister(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()

	adminAddr := codectest.NewRandomAddress()
	admin := codec.MustAddressBech32(consts.HRP, adminAddr)
	gen := NewGenesis([]*hgenesis.CustomAllocation{
		{Address: admin, Balance: 5_000_000},
	}, admin)

	store := chaintest.NewInMemoryStore()
	req.NoError(gen.InitializeState(ctx, trace.Noop, store, &storage.StateManager{}))

	bal, err := storage.GetBalance(ctx, store, adminAddr)
	req.NoError(err)
	req.Equal(uint64(5_000_000), bal)

	gotAdmin, paused, err := storage.GetRegisterConfigNoController(ctx, store)
	req.NoError(err)
	req.Equal(adminAddr, gotAdmin)
	req.False(paused)

	creationPrice, initialSupply, reserveDeposit, transactionFee, feeLimit, curveWeight, err := storage.GetTokenSettingsNoController(ctx, store)
	req.NoError(err)
	req.Equal(storage.DefaultCreationPrice, creationPrice)
	req.Equal(storage.DefaultInitialSupply, initialSupply)
	req.Equal(storage.DefaultReserveDeposit, reserveDeposit)
	req.Equal(storage.DefaultTransactionFee, transactionFee)
	req.Equal(storage.DefaultFeeLimit, feeLimit)
	req.Equal(storage.DefaultCurveWeight, curveWeight)
}

func TestGenesisSettingsOverrides(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()

	admin := codec.MustAddressBech32(consts.HRP, codectest.NewRandomAddress())
	creationPrice := uint64(42)
	curveWeight := uint64(100_000)
	gen := NewGenesis(nil, admin)
	gen.TokenSettings = &TokenSettings{
		CreationPrice: &creationPrice,
		CurveWeight:   &curveWeight,
	}

	store := chaintest.NewInMemoryStore()
	req.NoError(gen.InitializeState(ctx, trace.Noop, store, &storage.StateManager{}))

	gotPrice, _, _, _, _, gotWeight, err := storage.GetTokenSettingsNoController(ctx, store)
	req.NoError(err)
	req.Equal(creationPrice, gotPrice)
	req.Equal(curveWeight, gotWeight)
}

func TestGenesisRequiresRegisterAdmin(t *testing.T) {
	req := require.New(t)

	gen := NewGenesis(nil, "")
	err := gen.InitializeState(context.Background(), trace.Noop, chaintest.NewInMemoryStore(), &storage.StateManager{})
	req.ErrorIs(err, ErrNoRegisterAdmin)
}

func TestGenesisRejectsInvalidSettings(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()

	admin := codec.MustAddressBech32(consts.HRP, codectest.NewRandomAddress())

	zero := uint64(0)
	tooSteep := uint64(2_000_000)
	fee := uint64(500)

	for _, s := range []*TokenSettings{
		{InitialSupply: &zero},
		{ReserveDeposit: &zero},
		{CurveWeight: &zero},
		{CurveWeight: &tooSteep},
		{FeeLimit: &fee, TransactionFee: &fee},
	} {
		gen := NewGenesis(nil, admin)
		gen.TokenSettings = s
		err := gen.InitializeState(ctx, trace.Noop, chaintest.NewInMemoryStore(), &storage.StateManager{})
		req.ErrorIs(err, ErrInvalidSettings)
	}
}

func TestFactoryLoad(t *testing.T) {
	req := require.New(t)

	admin := codec.MustAddressBech32(consts.HRP, codectest.NewRandomAddress())
	genesisBytes, err := json.Marshal(NewGenesis(nil, admin))
	req.NoError(err)

	chainID := ids.GenerateTestID()
	loaded, ruleFactory, err := Factory{}.Load(genesisBytes, nil, 1337, chainID)
	req.NoError(err)

	gen, ok := loaded.(*Genesis)
	req.True(ok)
	req.Equal(admin, gen.RegisterAdmin)

	rules := ruleFactory.GetRules(0)
	req.Equal(uint32(1337), rules.GetNetworkID())
	req.Equal(chainID, rules.GetChainID())
}
