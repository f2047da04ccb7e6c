// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import (
	"context"
	"strings"

	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/requester"

	"github.com/AtteqCom/memevm/consts"
	"github.com/AtteqCom/memevm/genesis"
)

type JSONRPCClient struct {
	requester *requester.EndpointRequester
	g         *genesis.Genesis
}

// NewJSONRPCClient creates a new client object.
func NewJSONRPCClient(uri string) *JSONRPCClient {
	uri = strings.TrimSuffix(uri, "/")
	uri += JSONRPCEndpoint
	req := requester.New(uri, consts.Name)
	return &JSONRPCClient{req, nil}
}

func (cli *JSONRPCClient) Genesis(ctx context.Context) (*genesis.Genesis, error) {
	if cli.g != nil {
		return cli.g, nil
	}

	resp := new(GenesisReply)
	err := cli.requester.SendRequest(
		ctx,
		"genesis",
		nil,
		resp,
	)
	if err != nil {
		return nil, err
	}
	cli.g = resp.Genesis
	return resp.Genesis, nil
}

func (cli *JSONRPCClient) GetBalance(ctx context.Context, address codec.Address) (*GetBalanceReply, error) {
	resp := new(GetBalanceReply)
	err := cli.requester.SendRequest(
		ctx,
		"getBalance",
		&GetBalanceArgs{
			Address: address,
		},
		resp,
	)
	return resp, err
}

func (cli *JSONRPCClient) GetMToken(ctx context.Context, tokenAddress codec.Address) (*GetMTokenReply, error) {
	resp := new(GetMTokenReply)
	err := cli.requester.SendRequest(
		ctx,
		"getMToken",
		&GetMTokenArgs{
			TokenAddress: tokenAddress,
		},
		resp,
	)
	return resp, err
}

func (cli *JSONRPCClient) GetHolding(ctx context.Context, tokenAddress codec.Address, account codec.Address) (*GetHoldingReply, error) {
	resp := new(GetHoldingReply)
	err := cli.requester.SendRequest(
		ctx,
		"getHolding",
		&GetHoldingArgs{
			TokenAddress: tokenAddress,
			Account:      account,
		},
		resp,
	)
	return resp, err
}

func (cli *JSONRPCClient) GetTokenSettings(ctx context.Context) (*GetTokenSettingsReply, error) {
	resp := new(GetTokenSettingsReply)
	err := cli.requester.SendRequest(
		ctx,
		"getTokenSettings",
		nil,
		resp,
	)
	return resp, err
}

func (cli *JSONRPCClient) GetRegister(ctx context.Context) (*GetRegisterReply, error) {
	resp := new(GetRegisterReply)
	err := cli.requester.SendRequest(
		ctx,
		"getRegister",
		nil,
		resp,
	)
	return resp, err
}

func (cli *JSONRPCClient) GetRegisterEntry(ctx context.Context, tokenAddress codec.Address) (*GetRegisterEntryReply, error) {
	resp := new(GetRegisterEntryReply)
	err := cli.requester.SendRequest(
		ctx,
		"getRegisterEntry",
		&GetRegisterEntryArgs{
			TokenAddress: tokenAddress,
		},
		resp,
	)
	return resp, err
}

func (cli *JSONRPCClient) GetTokenByName(ctx context.Context, name string) (*GetTokenByNameReply, error) {
	resp := new(GetTokenByNameReply)
	err := cli.requester.SendRequest(
		ctx,
		"getTokenByName",
		&GetTokenByNameArgs{
			Name: name,
		},
		resp,
	)
	return resp, err
}

func (cli *JSONRPCClient) GetTokenBySymbol(ctx context.Context, symbol string) (*GetTokenBySymbolReply, error) {
	resp := new(GetTokenBySymbolReply)
	err := cli.requester.SendRequest(
		ctx,
		"getTokenBySymbol",
		&GetTokenBySymbolArgs{
			Symbol: symbol,
		},
		resp,
	)
	return resp, err
}
