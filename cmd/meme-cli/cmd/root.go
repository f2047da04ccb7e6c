// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// "meme-cli" implements memevm client operation interface.
package cmd

import (
	"github.com/spf13/cobra"
)

var (
	uri string

	rootCmd = &cobra.Command{
		Use:        "meme-cli",
		Short:      "MemeVM CLI",
		SuggestFor: []string{"meme-cli", "memecli"},
	}
)

func init() {
	cobra.EnablePrefixMatching = true
	rootCmd.PersistentFlags().StringVar(
		&uri,
		"endpoint",
		"http://localhost:9650/ext/bc/memevm",
		"RPC endpoint for the chain",
	)
	rootCmd.AddCommand(
		genesisCmd,
		balanceCmd,
		tokenCmd,
		holdingCmd,
		settingsCmd,
		registerCmd,
		lookupCmd,
	)
}

func Execute() error {
	return rootCmd.Execute()
}
