// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import (
	"net/http"

	"github.com/ava-labs/hypersdk/api"
	"github.com/ava-labs/hypersdk/codec"

	"github.com/AtteqCom/memevm/consts"
	"github.com/AtteqCom/memevm/genesis"
	"github.com/AtteqCom/memevm/storage"
	"github.com/AtteqCom/memevm/utils"
)

const JSONRPCEndpoint = "/memeapi"

var _ api.HandlerFactory[api.VM] = (*jsonRPCServerFactory)(nil)

type jsonRPCServerFactory struct{}

func (jsonRPCServerFactory) New(vm api.VM) (api.Handler, error) {
	handler, err := api.NewJSONRPCHandler(consts.Name, NewJSONRPCServer(vm))
	return api.Handler{
		Path:    JSONRPCEndpoint,
		Handler: handler,
	}, err
}

type JSONRPCServer struct {
	vm api.VM
}

func NewJSONRPCServer(vm api.VM) *JSONRPCServer {
	return &JSONRPCServer{vm: vm}
}

type GenesisReply struct {
	Genesis *genesis.Genesis `json:"genesis"`
}

func (j *JSONRPCServer) Genesis(_ *http.Request, _ *struct{}, reply *GenesisReply) (err error) {
	reply.Genesis = j.vm.Genesis().(*genesis.Genesis)
	return nil
}

type GetBalanceArgs struct {
	Address codec.Address `json:"address"`
}

type GetBalanceReply struct {
	Balance uint64 `json:"balance"`
}

func (j *JSONRPCServer) GetBalance(req *http.Request, args *GetBalanceArgs, reply *GetBalanceReply) error {
	ctx, span := j.vm.Tracer().Start(req.Context(), "Server.GetBalance")
	defer span.End()

	balance, err := storage.GetBalanceFromState(ctx, j.vm.ReadState, args.Address)
	if err != nil {
		return err
	}
	reply.Balance = balance
	return nil
}

type GetMTokenArgs struct {
	TokenAddress codec.Address `json:"tokenAddress"`
}

type GetMTokenReply struct {
	Name           string        `json:"name"`
	Symbol         string        `json:"symbol"`
	TotalSupply    uint64        `json:"totalSupply"`
	ReserveBalance uint64        `json:"reserveBalance"`
	CurveWeight    uint64        `json:"curveWeight"`
	TransactionFee uint64        `json:"transactionFee"`
	FeeLimit       uint64        `json:"feeLimit"`
	Owner          codec.Address `json:"owner"`
	Paused         bool          `json:"paused"`
}

func (j *JSONRPCServer) GetMToken(req *http.Request, args *GetMTokenArgs, reply *GetMTokenReply) error {
	ctx, span := j.vm.Tracer().Start(req.Context(), "Server.GetMToken")
	defer span.End()

	name, symbol, totalSupply, reserveBalance, curveWeight, transactionFee, feeLimit, owner, paused, err := storage.GetMTokenInfo(ctx, j.vm.ReadState, args.TokenAddress)
	if err != nil {
		return err
	}
	reply.Name = string(name)
	reply.Symbol = string(symbol)
	reply.TotalSupply = totalSupply
	reply.ReserveBalance = reserveBalance
	reply.CurveWeight = curveWeight
	reply.TransactionFee = transactionFee
	reply.FeeLimit = feeLimit
	reply.Owner = owner
	reply.Paused = paused
	return nil
}

type GetHoldingArgs struct {
	TokenAddress codec.Address `json:"tokenAddress"`
	Account      codec.Address `json:"account"`
}

type GetHoldingReply struct {
	Shares uint64 `json:"shares"`
}

func (j *JSONRPCServer) GetHolding(req *http.Request, args *GetHoldingArgs, reply *GetHoldingReply) error {
	ctx, span := j.vm.Tracer().Start(req.Context(), "Server.GetHolding")
	defer span.End()

	shares, err := storage.GetMTokenHolding(ctx, j.vm.ReadState, args.TokenAddress, args.Account)
	if err != nil {
		return err
	}
	reply.Shares = shares
	return nil
}

type GetTokenSettingsReply struct {
	CreationPrice  uint64 `json:"creationPrice"`
	InitialSupply  uint64 `json:"initialSupply"`
	ReserveDeposit uint64 `json:"reserveDeposit"`
	TransactionFee uint64 `json:"transactionFee"`
	FeeLimit       uint64 `json:"feeLimit"`
	CurveWeight    uint64 `json:"curveWeight"`
}

func (j *JSONRPCServer) GetTokenSettings(req *http.Request, _ *struct{}, reply *GetTokenSettingsReply) error {
	ctx, span := j.vm.Tracer().Start(req.Context(), "Server.GetTokenSettings")
	defer span.End()

	creationPrice, initialSupply, reserveDeposit, transactionFee, feeLimit, curveWeight, err := storage.GetTokenSettings(ctx, j.vm.ReadState)
	if err != nil {
		return err
	}
	reply.CreationPrice = creationPrice
	reply.InitialSupply = initialSupply
	reply.ReserveDeposit = reserveDeposit
	reply.TransactionFee = transactionFee
	reply.FeeLimit = feeLimit
	reply.CurveWeight = curveWeight
	return nil
}

type GetRegisterReply struct {
	Admin         codec.Address `json:"admin"`
	FactoryPaused bool          `json:"factoryPaused"`
	TokenCount    uint64        `json:"tokenCount"`
	LatestToken   codec.Address `json:"latestToken"`
}

func (j *JSONRPCServer) GetRegister(req *http.Request, _ *struct{}, reply *GetRegisterReply) error {
	ctx, span := j.vm.Tracer().Start(req.Context(), "Server.GetRegister")
	defer span.End()

	admin, factoryPaused, err := storage.GetRegisterConfig(ctx, j.vm.ReadState)
	if err != nil {
		return err
	}
	count, latest, err := storage.GetRegisterHead(ctx, j.vm.ReadState)
	if err != nil {
		return err
	}
	reply.Admin = admin
	reply.FactoryPaused = factoryPaused
	reply.TokenCount = count
	reply.LatestToken = latest
	return nil
}

type GetRegisterEntryArgs struct {
	TokenAddress codec.Address `json:"tokenAddress"`
}

type GetRegisterEntryReply struct {
	CreationOrder uint64        `json:"creationOrder"`
	PreviousToken codec.Address `json:"previousToken"`
}

func (j *JSONRPCServer) GetRegisterEntry(req *http.Request, args *GetRegisterEntryArgs, reply *GetRegisterEntryReply) error {
	ctx, span := j.vm.Tracer().Start(req.Context(), "Server.GetRegisterEntry")
	defer span.End()

	order, prev, err := storage.GetRegisterEntry(ctx, j.vm.ReadState, args.TokenAddress)
	if err != nil {
		return err
	}
	reply.CreationOrder = order
	reply.PreviousToken = prev
	return nil
}

type GetTokenByNameArgs struct {
	Name string `json:"name"`
}

type GetTokenByNameReply struct {
	TokenAddress codec.Address `json:"tokenAddress"`
}

func (j *JSONRPCServer) GetTokenByName(req *http.Request, args *GetTokenByNameArgs, reply *GetTokenByNameReply) error {
	ctx, span := j.vm.Tracer().Start(req.Context(), "Server.GetTokenByName")
	defer span.End()

	name := utils.ToLowercaseASCII(utils.StripSpaceCharacters([]byte(args.Name)))
	tokenAddress, err := storage.GetTokenByName(ctx, j.vm.ReadState, name)
	if err != nil {
		return err
	}
	reply.TokenAddress = tokenAddress
	return nil
}

type GetTokenBySymbolArgs struct {
	Symbol string `json:"symbol"`
}

type GetTokenBySymbolReply struct {
	TokenAddress codec.Address `json:"tokenAddress"`
}

func (j *JSONRPCServer) GetTokenBySymbol(req *http.Request, args *GetTokenBySymbolArgs, reply *GetTokenBySymbolReply) error {
	ctx, span := j.vm.Tracer().Start(req.Context(), "Server.GetTokenBySymbol")
	defer span.End()

	symbol := utils.ToLowercaseASCII(utils.StripSpaceCharacters([]byte(args.Symbol)))
	tokenAddress, err := storage.GetTokenBySymbol(ctx, j.vm.ReadState, symbol)
	if err != nil {
		return err
	}
	reply.TokenAddress = tokenAddress
	return nil
}
