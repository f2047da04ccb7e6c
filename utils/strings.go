// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package utils

// StripSpaceCharacters removes leading and trailing spaces and C0 control
// bytes. Interior spaces are preserved.
func StripSpaceCharacters(s []byte) []byte {
	start := 0
	for start < len(s) && s[start] <= ' ' {
		start++
	}
	end := len(s)
	for end > start && s[end-1] <= ' ' {
		end--
	}
	return s[start:end]
}

// ContainsOnlyPrintableASCII reports whether every byte of [s] is in the
// printable ASCII range (0x20 to 0x7E).
func ContainsOnlyPrintableASCII(s []byte) bool {
	for _, b := range s {
		if b < 0x20 || b > 0x7e {
			return false
		}
	}
	return true
}

// ToLowercaseASCII returns a copy of [s] with ASCII uppercase letters mapped
// to lowercase. Other bytes pass through unchanged.
func ToLowercaseASCII(s []byte) []byte {
	out := make([]byte, len(s))
	for i, b := range s {
		if b >= 'A' && b <= 'Z' {
			b += 'a' - 'A'
		}
		out[i] = b
	}
	return out
}
