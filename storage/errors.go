// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import "errors"

var (
	ErrInvalidBalance   = errors.New("invalid balance")
	ErrInvalidHolding   = errors.New("invalid token holding")
	ErrTokenNotFound    = errors.New("token not found")
	ErrRegisterNotFound = errors.New("register config not found")
	ErrSettingsNotFound = errors.New("token settings not found")
)
