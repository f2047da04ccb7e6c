// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import (
	"github.com/ava-labs/avalanchego/utils/wrappers"

	"github.com/ava-labs/hypersdk/api/indexer"
	"github.com/ava-labs/hypersdk/api/jsonrpc"
	"github.com/ava-labs/hypersdk/api/ws"
	"github.com/ava-labs/hypersdk/auth"
	"github.com/ava-labs/hypersdk/chain"
	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/extension/externalsubscriber"
	"github.com/ava-labs/hypersdk/vm"

	"github.com/AtteqCom/memevm/actions"
	"github.com/AtteqCom/memevm/consts"
	"github.com/AtteqCom/memevm/genesis"
	"github.com/AtteqCom/memevm/storage"
)

var (
	ActionParser *codec.TypeParser[chain.Action]
	AuthParser   *codec.TypeParser[chain.Auth]
	OutputParser *codec.TypeParser[codec.Typed]
)

// Setup types
func init() {
	ActionParser = codec.NewTypeParser[chain.Action]()
	AuthParser = codec.NewTypeParser[chain.Auth]()
	OutputParser = codec.NewTypeParser[codec.Typed]()

	errs := &wrappers.Errs{}
	errs.Add(
		ActionParser.Register(&actions.Transfer{}, nil),

		// Token actions
		ActionParser.Register(&actions.CreateMToken{}, nil),
		ActionParser.Register(&actions.Invest{}, nil),
		ActionParser.Register(&actions.SellShare{}, nil),
		ActionParser.Register(&actions.SetTransactionFee{}, nil),
		ActionParser.Register(&actions.PauseMinting{}, nil),
		ActionParser.Register(&actions.UnpauseMinting{}, nil),
		ActionParser.Register(&actions.TransferMToken{}, nil),

		// Register actions
		ActionParser.Register(&actions.SetFactoryStatus{}, nil),
		ActionParser.Register(&actions.SetTokenSettings{}, nil),
		ActionParser.Register(&actions.SetRegisterAdmin{}, nil),

		AuthParser.Register(&auth.ED25519{}, auth.UnmarshalED25519),
		AuthParser.Register(&auth.SECP256R1{}, auth.UnmarshalSECP256R1),
		AuthParser.Register(&auth.BLS{}, auth.UnmarshalBLS),

		OutputParser.Register(&actions.TransferResult{}, nil),
		OutputParser.Register(&actions.CreateMTokenResult{}, nil),
		OutputParser.Register(&actions.InvestResult{}, nil),
		OutputParser.Register(&actions.SellShareResult{}, nil),
		OutputParser.Register(&actions.SetTransactionFeeResult{}, nil),
		OutputParser.Register(&actions.PauseMintingResult{}, nil),
		OutputParser.Register(&actions.TransferMTokenResult{}, nil),
		OutputParser.Register(&actions.SetFactoryStatusResult{}, nil),
		OutputParser.Register(&actions.SetTokenSettingsResult{}, nil),
		OutputParser.Register(&actions.SetRegisterAdminResult{}, nil),
	)
	if errs.Errored() {
		panic(errs.Err)
	}
}

// New returns a VM with the indexer, websocket, rpc, and external subscriber apis enabled.
func New(options ...vm.Option) (*vm.VM, error) {
	opts := append([]vm.Option{
		indexer.With(),
		ws.With(),
		jsonrpc.With(),
		With(), // Add Controller API
		externalsubscriber.With(),
	}, options...)

	return NewWithOptions(opts...)
}

// NewWithOptions returns a VM with the specified options
func NewWithOptions(options ...vm.Option) (*vm.VM, error) {
	return vm.New(
		consts.Version,
		genesis.Factory{},
		&storage.StateManager{},
		ActionParser,
		AuthParser,
		OutputParser,
		auth.Engines(),
		options...,
	)
}
