// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"github.com/AtteqCom/memevm/storage"
)

const (
	TokenOneName   = "Dodge Meme"
	TokenOneSymbol = "DGM"

	TokenTwoName   = "Pepe Classic"
	TokenTwoSymbol = "PEPC"

	TooLargeTokenName   = "Lorem ipsum dolor sit amet, consectetur adipiscing elit pharetra." // #nosec G101
	TooLargeTokenSymbol = "AAAAAAAAAAAAAAAAA"

	TestCreationPrice  uint64 = 1_000
	TestInitialSupply  uint64 = 1_000_000
	TestReserveDeposit uint64 = 1_000_000
	TestTransactionFee uint64 = 100
	TestFeeLimit       uint64 = 1_000
	TestCurveWeight    uint64 = 500_000

	StartingBalance uint64 = 10_000_000
)

var (
	tokenOneNormName   = []byte("dodge meme")
	tokenOneNormSymbol = []byte("dgm")

	tokenOneAddress = storage.MTokenAddress(tokenOneNormName, tokenOneNormSymbol)
)
