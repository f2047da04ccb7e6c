// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

const (
	TransferComputeUnits          = 1
	CreateMTokenComputeUnits      = 1
	InvestComputeUnits            = 1
	SellShareComputeUnits         = 1
	SetTransactionFeeComputeUnits = 1
	PauseMintingComputeUnits      = 1
	UnpauseMintingComputeUnits    = 1
	TransferMTokenComputeUnits    = 1
	SetFactoryStatusComputeUnits  = 1
	SetTokenSettingsComputeUnits  = 1
	SetRegisterAdminComputeUnits  = 1
)
