// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ava-labs/hypersdk/codec"

	"github.com/AtteqCom/memevm/consts"
	"github.com/AtteqCom/memevm/vm"
)

var genesisCmd = &cobra.Command{
	Use:   "genesis",
	Short: "Print the genesis of the chain",
	RunE: func(_ *cobra.Command, args []string) error {
		if len(args) != 0 {
			return fmt.Errorf("expected exactly 0 arguments, got %d", len(args))
		}
		cli := vm.NewJSONRPCClient(uri)
		gen, err := cli.Genesis(context.Background())
		if err != nil {
			return err
		}
		b, err := json.MarshalIndent(gen, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(b))
		return nil
	},
}

var balanceCmd = &cobra.Command{
	Use:   "balance [address]",
	Short: "View the native balance of an account",
	RunE: func(_ *cobra.Command, args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("expected exactly 1 argument, got %d", len(args))
		}
		addr, err := codec.ParseAddressBech32(consts.HRP, args[0])
		if err != nil {
			return err
		}
		cli := vm.NewJSONRPCClient(uri)
		resp, err := cli.GetBalance(context.Background(), addr)
		if err != nil {
			return err
		}
		color.Cyan("balance=%d %s", resp.Balance, consts.Symbol)
		return nil
	},
}

var tokenCmd = &cobra.Command{
	Use:   "token [address]",
	Short: "View information about a token",
	RunE: func(_ *cobra.Command, args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("expected exactly 1 argument, got %d", len(args))
		}
		token, err := codec.ParseAddressBech32(consts.HRP, args[0])
		if err != nil {
			return err
		}
		cli := vm.NewJSONRPCClient(uri)
		info, err := cli.GetMToken(context.Background(), token)
		if err != nil {
			return err
		}
		entry, err := cli.GetRegisterEntry(context.Background(), token)
		if err != nil {
			return err
		}
		owner := codec.MustAddressBech32(consts.HRP, info.Owner)
		color.Cyan("name=%q symbol=%q owner=%s", info.Name, info.Symbol, owner)
		color.Cyan("totalSupply=%d reserveBalance=%d curveWeight=%d", info.TotalSupply, info.ReserveBalance, info.CurveWeight)
		color.Cyan("transactionFee=%d feeLimit=%d paused=%t creationOrder=%d", info.TransactionFee, info.FeeLimit, info.Paused, entry.CreationOrder)
		return nil
	},
}

var holdingCmd = &cobra.Command{
	Use:   "holding [token] [account]",
	Short: "View the share holding of an account",
	RunE: func(_ *cobra.Command, args []string) error {
		if len(args) != 2 {
			return fmt.Errorf("expected exactly 2 arguments, got %d", len(args))
		}
		token, err := codec.ParseAddressBech32(consts.HRP, args[0])
		if err != nil {
			return err
		}
		account, err := codec.ParseAddressBech32(consts.HRP, args[1])
		if err != nil {
			return err
		}
		cli := vm.NewJSONRPCClient(uri)
		resp, err := cli.GetHolding(context.Background(), token, account)
		if err != nil {
			return err
		}
		color.Cyan("shares=%d", resp.Shares)
		return nil
	},
}

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "View the settings new tokens are created with",
	RunE: func(_ *cobra.Command, args []string) error {
		if len(args) != 0 {
			return fmt.Errorf("expected exactly 0 arguments, got %d", len(args))
		}
		cli := vm.NewJSONRPCClient(uri)
		resp, err := cli.GetTokenSettings(context.Background())
		if err != nil {
			return err
		}
		color.Cyan("creationPrice=%d initialSupply=%d reserveDeposit=%d", resp.CreationPrice, resp.InitialSupply, resp.ReserveDeposit)
		color.Cyan("transactionFee=%d feeLimit=%d curveWeight=%d", resp.TransactionFee, resp.FeeLimit, resp.CurveWeight)
		return nil
	},
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "View the token register",
	RunE: func(_ *cobra.Command, args []string) error {
		if len(args) != 0 {
			return fmt.Errorf("expected exactly 0 arguments, got %d", len(args))
		}
		cli := vm.NewJSONRPCClient(uri)
		resp, err := cli.GetRegister(context.Background())
		if err != nil {
			return err
		}
		admin := codec.MustAddressBech32(consts.HRP, resp.Admin)
		color.Cyan("admin=%s factoryPaused=%t tokenCount=%d", admin, resp.FactoryPaused, resp.TokenCount)
		if resp.TokenCount > 0 {
			color.Cyan("latestToken=%s", codec.MustAddressBech32(consts.HRP, resp.LatestToken))
		}
		return nil
	},
}

var lookupCmd = &cobra.Command{
	Use:   "lookup [name or symbol]",
	Short: "Find a token by name or symbol",
	RunE: func(_ *cobra.Command, args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("expected exactly 1 argument, got %d", len(args))
		}
		cli := vm.NewJSONRPCClient(uri)
		ctx := context.Background()
		if resp, err := cli.GetTokenByName(ctx, args[0]); err == nil {
			color.Cyan("token=%s", codec.MustAddressBech32(consts.HRP, resp.TokenAddress))
			return nil
		}
		resp, err := cli.GetTokenBySymbol(ctx, args[0])
		if err != nil {
			return err
		}
		color.Cyan("token=%s", codec.MustAddressBech32(consts.HRP, resp.TokenAddress))
		return nil
	},
}
