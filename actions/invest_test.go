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

func TestInvest(t *testing.T) {
	req := require.New(t)
	ts := tstate.New(1)
	ctx := context.Background()

	actor := codectest.NewRandomAddress()
	poorActor := codectest.NewRandomAddress()
	owner := codectest.NewRandomAddress()

	// A linear curve makes the expected returns exact: a net deposit of d
	// mints supply*d/reserve shares.
	thinTokenAddress := storage.MTokenAddress([]byte("thin"), []byte("thn"))
	missingTokenAddress := storage.MTokenAddress([]byte("missing"), []byte("mss"))

	parentState := ts.NewView(
		state.Keys{
			string(storage.MTokenInfoKey(tokenOneAddress)):            state.All,
			string(storage.MTokenInfoKey(thinTokenAddress)):           state.All,
			string(storage.MTokenInfoKey(missingTokenAddress)):        state.All,
			string(storage.MTokenHoldingKey(tokenOneAddress, actor)):  state.All,
			string(storage.BalanceKey(actor)):                         state.All,
			string(storage.BalanceKey(poorActor)):                     state.All,
			string(storage.BalanceKey(owner)):                         state.All,
			string(storage.BalanceKey(tokenOneAddress)):               state.All,
		},
		chaintest.NewInMemoryStore().Storage,
	)

	req.NoError(storage.SetMTokenInfo(ctx, parentState, tokenOneAddress, []byte(TokenOneName), []byte(TokenOneSymbol), TestInitialSupply, TestReserveDeposit, pricing.MaxWeight, TestTransactionFee, TestFeeLimit, owner, false))
	req.NoError(storage.SetMTokenInfo(ctx, parentState, thinTokenAddress, []byte("Thin"), []byte("THN"), 1, TestReserveDeposit, pricing.MaxWeight, 0, TestFeeLimit, owner, false))
	req.NoError(storage.SetBalance(ctx, parentState, actor, StartingBalance))
	req.NoError(storage.SetBalance(ctx, parentState, poorActor, 1))
	req.NoError(storage.SetBalance(ctx, parentState, tokenOneAddress, TestReserveDeposit))

	tests := []chaintest.ActionTest{
		{
			Name: "No investment of zero",
			Action: &Invest{
				Token:  tokenOneAddress,
				Amount: 0,
				Owner:  owner,
			},
			ExpectedErr: ErrOutputValueZero,
			State:       parentState,
			Actor:       actor,
		},
		{
			Name: "No investment into nonexistent token",
			Action: &Invest{
				Token:  missingTokenAddress,
				Amount: 10_000,
				Owner:  owner,
			},
			ExpectedErr: ErrOutputTokenDoesNotExist,
			State:       parentState,
			Actor:       actor,
		},
		{
			Name: "No investment with wrong owner address",
			Action: &Invest{
				Token:  tokenOneAddress,
				Amount: 10_000,
				Owner:  actor,
			},
			ExpectedErr: ErrOutputWrongOwnerAddress,
			State:       parentState,
			Actor:       actor,
		},
		{
			Name: "No investment buying zero shares",
			Action: &Invest{
				Token:  thinTokenAddress,
				Amount: 2,
				Owner:  owner,
			},
			ExpectedErr: ErrOutputDepositTooSmall,
			State:       parentState,
			Actor:       actor,
		},
		{
			Name: "No investment below minimum shares",
			Action: &Invest{
				Token:         tokenOneAddress,
				Amount:        10_000,
				MinimumShares: 9_901,
				Owner:         owner,
			},
			ExpectedErr: ErrOutputSlippageExceeded,
			State:       parentState,
			Actor:       actor,
		},
		{
			Name: "No investment without funds",
			Action: &Invest{
				Token:  tokenOneAddress,
				Amount: 10_000,
				Owner:  owner,
			},
			ExpectedErr: storage.ErrInvalidBalance,
			State:       parentState,
			Actor:       poorActor,
		},
		{
			Name: "Correct investment is allowed",
			Action: &Invest{
				Token:         tokenOneAddress,
				Amount:        10_000,
				MinimumShares: 9_900,
				Owner:         owner,
			},
			ExpectedOutputs: &InvestResult{
				SharesMinted:   9_900,
				FeePaid:        100,
				TotalSupply:    TestInitialSupply + 9_900,
				ReserveBalance: TestReserveDeposit + 9_900,
			},
			ExpectedErr: nil,
			State:       parentState,
			Actor:       actor,
			Assertion: func(ctx context.Context, t *testing.T, m state.Mutable) {
				require := require.New(t)
				_, _, totalSupply, reserveBalance, _, _, _, _, _, err := storage.GetMTokenInfoNoController(ctx, m, tokenOneAddress)
				require.NoError(err)
				require.Equal(TestInitialSupply+9_900, totalSupply)
				require.Equal(TestReserveDeposit+9_900, reserveBalance)

				holding, err := storage.GetMTokenHoldingNoController(ctx, m, tokenOneAddress, actor)
				require.NoError(err)
				require.Equal(uint64(9_900), holding)

				actorBalance, err := storage.GetBalance(ctx, m, actor)
				require.NoError(err)
				require.Equal(StartingBalance-10_000, actorBalance)
				ownerBalance, err := storage.GetBalance(ctx, m, owner)
				require.NoError(err)
				require.Equal(uint64(100), ownerBalance)
				reserveHoldings, err := storage.GetBalance(ctx, m, tokenOneAddress)
				require.NoError(err)
				require.Equal(TestReserveDeposit+9_900, reserveHoldings)
			},
		},
	}

	for _, tt := range tests {
		tt.Run(ctx, t)
	}

	req.NoError(storage.SetMTokenInfo(ctx, parentState, tokenOneAddress, []byte(TokenOneName), []byte(TokenOneSymbol), TestInitialSupply+9_900, TestReserveDeposit+9_900, pricing.MaxWeight, TestTransactionFee, TestFeeLimit, owner, true))

	tests = []chaintest.ActionTest{
		{
			Name: "No investment while minting is paused",
			Action: &Invest{
				Token:  tokenOneAddress,
				Amount: 10_000,
				Owner:  owner,
			},
			ExpectedErr: ErrOutputMintingPaused,
			State:       parentState,
			Actor:       actor,
		},
	}

	for _, tt := range tests {
		tt.Run(ctx, t)
	}
}
