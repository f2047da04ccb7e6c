// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AtteqCom/memevm/storage"
	"github.com/ava-labs/hypersdk/chain/chaintest"
	"github.com/ava-labs/hypersdk/codec/codectest"
	"github.com/ava-labs/hypersdk/state"
	"github.com/ava-labs/hypersdk/state/tstate"
)

func TestSetTransactionFee(t *testing.T) {
	req := require.New(t)
	ts := tstate.New(1)
	ctx := context.Background()

	owner := codectest.NewRandomAddress()
	other := codectest.NewRandomAddress()

	missingTokenAddress := storage.MTokenAddress([]byte("missing"), []byte("mss"))

	parentState := ts.NewView(
		state.Keys{
			string(storage.MTokenInfoKey(tokenOneAddress)):     state.All,
			string(storage.MTokenInfoKey(missingTokenAddress)): state.All,
		},
		chaintest.NewInMemoryStore().Storage,
	)

	req.NoError(storage.SetMTokenInfo(ctx, parentState, tokenOneAddress, []byte(TokenOneName), []byte(TokenOneSymbol), TestInitialSupply, TestReserveDeposit, TestCurveWeight, TestTransactionFee, TestFeeLimit, owner, false))

	tests := []chaintest.ActionTest{
		{
			Name: "No fee change on nonexistent token",
			Action: &SetTransactionFee{
				Token: missingTokenAddress,
				Fee:   200,
			},
			ExpectedErr: ErrOutputTokenDoesNotExist,
			State:       parentState,
			Actor:       owner,
		},
		{
			Name: "Only the owner can change the fee",
			Action: &SetTransactionFee{
				Token: tokenOneAddress,
				Fee:   200,
			},
			ExpectedErr: ErrOutputNotTokenOwner,
			State:       parentState,
			Actor:       other,
		},
		{
			Name: "No fee at the limit",
			Action: &SetTransactionFee{
				Token: tokenOneAddress,
				Fee:   TestFeeLimit,
			},
			ExpectedErr: ErrOutputFeeAboveLimit,
			State:       parentState,
			Actor:       owner,
		},
		{
			Name: "No fee above the limit",
			Action: &SetTransactionFee{
				Token: tokenOneAddress,
				Fee:   TestFeeLimit + 1,
			},
			ExpectedErr: ErrOutputFeeAboveLimit,
			State:       parentState,
			Actor:       owner,
		},
		{
			Name: "Correct fee change is allowed",
			Action: &SetTransactionFee{
				Token: tokenOneAddress,
				Fee:   200,
			},
			ExpectedOutputs: &SetTransactionFeeResult{
				OldFee: TestTransactionFee,
				NewFee: 200,
			},
			ExpectedErr: nil,
			State:       parentState,
			Actor:       owner,
			Assertion: func(ctx context.Context, t *testing.T, m state.Mutable) {
				require := require.New(t)
				_, _, _, _, _, transactionFee, feeLimit, _, _, err := storage.GetMTokenInfoNoController(ctx, m, tokenOneAddress)
				require.NoError(err)
				require.Equal(uint64(200), transactionFee)
				require.Equal(TestFeeLimit, feeLimit)
			},
		},
	}

	for _, tt := range tests {
		tt.Run(ctx, t)
	}
}
