// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// "meme-cli" implements memevm client operation interface.
package main

import (
	"os"

	"github.com/fatih/color"

	"github.com/AtteqCom/memevm/cmd/meme-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		color.Red("meme-cli failed: %v", err)
		os.Exit(1)
	}
	os.Exit(0)
}
