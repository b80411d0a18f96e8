// Package keccak provides the Keccak-256 hash used by the ABI codec for
// function selectors and by EIP-712 for type and struct hashes.
//
// This is the legacy Keccak padding used by Ethereum, not NIST SHA3-256.
package keccak

import (
	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/crypto/sha3"
)

// Sum256 returns the Keccak-256 digest of the concatenated inputs.
func Sum256(data ...[]byte) common.Hash {
	h := sha3.NewLegacyKeccak256()
	for _, b := range data {
		_, _ = h.Write(b)
	}

	var out common.Hash
	h.Sum(out[:0])
	return out
}

// Selector returns the first four bytes of the digest of a function signature.
func Selector(signature string) [4]byte {
	sum := Sum256([]byte(signature))

	var out [4]byte
	copy(out[:], sum[:4])
	return out
}
