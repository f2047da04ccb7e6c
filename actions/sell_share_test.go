// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AtteqCom/memevm/pricing"
	"github.com/AtteqCom/memevm/storage"
	"github.com/ava-labs/hypersdk/chain/chaintest"
	"github.com/ava-labs/hypersdk/codec/codectest"
	"github.com/ava-labs/hypersdk/state"
	"github.com/ava-labs/hypersdk/state/tstate"
)

func TestSellShare(t *testing.T) {
	req := require.New(t)
	ts := tstate.New(1)
	ctx := context.Background()

	actor := codectest.NewRandomAddress()
	owner := codectest.NewRandomAddress()

	missingTokenAddress := storage.MTokenAddress([]byte("missing"), []byte("mss"))

	parentState := ts.NewView(
		state.Keys{
			string(storage.MTokenInfoKey(tokenOneAddress)):           state.All,
			string(storage.MTokenInfoKey(missingTokenAddress)):       state.All,
			string(storage.MTokenHoldingKey(tokenOneAddress, actor)): state.All,
			string(storage.BalanceKey(actor)):                        state.All,
			string(storage.BalanceKey(owner)):                        state.All,
			string(storage.BalanceKey(tokenOneAddress)):              state.All,
		},
		chaintest.NewInMemoryStore().Storage,
	)

	// Linear curve, so selling t shares returns reserve*t/supply gross.
	// Minting stays paused for the whole test: selling must work regardless.
	req.NoError(storage.SetMTokenInfo(ctx, parentState, tokenOneAddress, []byte(TokenOneName), []byte(TokenOneSymbol), TestInitialSupply, TestReserveDeposit, pricing.MaxWeight, TestTransactionFee, TestFeeLimit, owner, true))
	req.NoError(storage.SetMTokenHolding(ctx, parentState, tokenOneAddress, actor, 50_000))
	req.NoError(storage.SetBalance(ctx, parentState, tokenOneAddress, TestReserveDeposit))

	tests := []chaintest.ActionTest{
		{
			Name: "No sale of zero shares",
			Action: &SellShare{
				Token:  tokenOneAddress,
				Shares: 0,
				Owner:  owner,
			},
			ExpectedErr: ErrOutputValueZero,
			State:       parentState,
			Actor:       actor,
		},
		{
			Name: "No sale of nonexistent token",
			Action: &SellShare{
				Token:  missingTokenAddress,
				Shares: 10_000,
				Owner:  owner,
			},
			ExpectedErr: ErrOutputTokenDoesNotExist,
			State:       parentState,
			Actor:       actor,
		},
		{
			Name: "No sale with wrong owner address",
			Action: &SellShare{
				Token:  tokenOneAddress,
				Shares: 10_000,
				Owner:  actor,
			},
			ExpectedErr: ErrOutputWrongOwnerAddress,
			State:       parentState,
			Actor:       actor,
		},
		{
			Name: "No sale above held shares",
			Action: &SellShare{
				Token:  tokenOneAddress,
				Shares: 50_001,
				Owner:  owner,
			},
			ExpectedErr: ErrOutputInsufficientShares,
			State:       parentState,
			Actor:       actor,
		},
		{
			Name: "No sale below minimum payout",
			Action: &SellShare{
				Token:         tokenOneAddress,
				Shares:        10_000,
				MinimumPayout: 9_901,
				Owner:         owner,
			},
			ExpectedErr: ErrOutputSlippageExceeded,
			State:       parentState,
			Actor:       actor,
		},
		{
			Name: "Correct sale is allowed while minting is paused",
			Action: &SellShare{
				Token:         tokenOneAddress,
				Shares:        10_000,
				MinimumPayout: 9_900,
				Owner:         owner,
			},
			ExpectedOutputs: &SellShareResult{
				Payout:         9_900,
				FeePaid:        100,
				TotalSupply:    TestInitialSupply - 10_000,
				ReserveBalance: TestReserveDeposit - 10_000,
			},
			ExpectedErr: nil,
			State:       parentState,
			Actor:       actor,
			Assertion: func(ctx context.Context, t *testing.T, m state.Mutable) {
				require := require.New(t)
				_, _, totalSupply, reserveBalance, _, _, _, _, paused, err := storage.GetMTokenInfoNoController(ctx, m, tokenOneAddress)
				require.NoError(err)
				require.Equal(TestInitialSupply-10_000, totalSupply)
				require.Equal(TestReserveDeposit-10_000, reserveBalance)
				require.True(paused)

				holding, err := storage.GetMTokenHoldingNoController(ctx, m, tokenOneAddress, actor)
				require.NoError(err)
				require.Equal(uint64(40_000), holding)

				actorBalance, err := storage.GetBalance(ctx, m, actor)
				require.NoError(err)
				require.Equal(uint64(9_900), actorBalance)
				ownerBalance, err := storage.GetBalance(ctx, m, owner)
				require.NoError(err)
				require.Equal(uint64(100), ownerBalance)
				reserveHoldings, err := storage.GetBalance(ctx, m, tokenOneAddress)
				require.NoError(err)
				require.Equal(TestReserveDeposit-10_000, reserveHoldings)
			},
		},
	}

	for _, tt := range tests {
		tt.Run(ctx, t)
	}
}
