// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import "errors"

var (
	// Validation errors
	ErrOutputValueZero           = errors.New("value is zero")
	ErrOutputTokenNameEmpty      = errors.New("token name is empty after stripping")
	ErrOutputTokenNameTooLarge   = errors.New("token name is too large")
	ErrOutputTokenNameInvalid    = errors.New("token name contains non-printable characters")
	ErrOutputTokenSymbolEmpty    = errors.New("token symbol is empty after stripping")
	ErrOutputTokenSymbolTooLarge = errors.New("token symbol is too large")
	ErrOutputTokenSymbolInvalid  = errors.New("token symbol contains non-printable characters")

	// State errors
	ErrOutputTokenAlreadyExists = errors.New("token already exists")
	ErrOutputTokenDoesNotExist  = errors.New("token does not exist")
	ErrOutputTokenNameTaken     = errors.New("token name is already registered")
	ErrOutputTokenSymbolTaken   = errors.New("token symbol is already registered")
	ErrOutputMintingPaused      = errors.New("token minting is paused")
	ErrOutputAlreadyPaused      = errors.New("token minting is already paused")
	ErrOutputNotPaused          = errors.New("token minting is not paused")
	ErrOutputFactoryPaused      = errors.New("token creation is paused")

	// Authorization errors
	ErrOutputNotTokenOwner     = errors.New("actor is not token owner")
	ErrOutputNotRegisterAdmin  = errors.New("actor is not register admin")
	ErrOutputWrongOwnerAddress = errors.New("owner address does not match token owner")
	ErrOutputWrongAdminAddress = errors.New("admin address does not match register admin")

	// Trade errors
	ErrOutputInsufficientShares = errors.New("insufficient share balance")
	ErrOutputSlippageExceeded   = errors.New("return is below requested minimum")
	ErrOutputDepositTooSmall    = errors.New("deposit buys zero shares")
	ErrOutputPayoutTooSmall     = errors.New("sale returns zero reserve")

	// Settings errors
	ErrOutputFeeAboveLimit        = errors.New("transaction fee is not below fee limit")
	ErrOutputInvalidSettingsField = errors.New("settings field does not exist")
	ErrOutputInvalidSettingsValue = errors.New("settings value is out of bounds")
)
