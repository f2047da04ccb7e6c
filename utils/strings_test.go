// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStripSpaceCharacters(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "no surrounding spaces",
			input:    "Dodge Meme",
			expected: "Dodge Meme",
		},
		{
			name:     "strip at the beginning",
			input:    "   Dodge Meme",
			expected: "Dodge Meme",
		},
		{
			name:     "strip at the end",
			input:    "Dodge Meme      ",
			expected: "Dodge Meme",
		},
		{
			name:     "strip both",
			input:    "              Dodge Meme      ",
			expected: "Dodge Meme",
		},
		{
			name:     "does not strip in the middle",
			input:    "Dodge   Meme",
			expected: "Dodge   Meme",
		},
		{
			name:     "strip control bytes",
			input:    "\t\x1fDodge Meme\x00",
			expected: "Dodge Meme",
		},
		{
			name:     "spaces only",
			input:    "   ",
			expected: "",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, string(StripSpaceCharacters([]byte(tt.input))))
		})
	}
}

func TestContainsOnlyPrintableASCII(t *testing.T) {
	require := require.New(t)
	require.True(ContainsOnlyPrintableASCII([]byte(" !\"#$%&'()*+,-./0123456789:;<=>?@ABCDEFGHIJKLMNOPQRSTUVWXYZ[\\]^_`abcdefghijklmnopqrstuvwxyz{|}~")))
	require.False(ContainsOnlyPrintableASCII([]byte("Dodge Meme \x1f")))
	require.False(ContainsOnlyPrintableASCII([]byte("Dodge\tMeme")))
	require.False(ContainsOnlyPrintableASCII([]byte("\t")))
	require.False(ContainsOnlyPrintableASCII([]byte("Dodge Meme á")))
	require.True(ContainsOnlyPrintableASCII(nil))
}

func TestToLowercaseASCII(t *testing.T) {
	require := require.New(t)
	require.Equal(
		" !\"#$%&'()*+,-./0123456789:;<=>?@abcdefghijklmnopqrstuvwxyz[\\]^_`abcdefghijklmnopqrstuvwxyz{|}~",
		string(ToLowercaseASCII([]byte(" !\"#$%&'()*+,-./0123456789:;<=>?@ABCDEFGHIJKLMNOPQRSTUVWXYZ[\\]^_`abcdefghijklmnopqrstuvwxyz{|}~"))),
	)
	require.Equal("dodge meme", string(ToLowercaseASCII([]byte("Dodge Meme"))))
}
