// Package mnemonic turns 256-bit entropy into 24-word BIP-39 phrases and back.
package mnemonic

import (
	"errors"
	"fmt"
	"strings"

	bip39 "github.com/tyler-smith/go-bip39"

	"SeedScanner/internal/entropy"
)

// Words is the phrase length produced from entropy.Size bytes.
const Words = 24

// ErrEntropyLength means the entropy is not entropy.Size bytes. With the fixed
// buffer used by the search it is an invariant violation, not a per-attempt error.
var ErrEntropyLength = errors.New("entropy must be 32 bytes")

// FromEntropy returns the checksummed phrase for buf. It is pure: the same
// buffer always yields the same words.
func FromEntropy(buf []byte) (string, error) {
	if len(buf) != entropy.Size {
		return "", fmt.Errorf("%w: got %d", ErrEntropyLength, len(buf))
	}
	mn, err := bip39.NewMnemonic(buf)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEntropyLength, err)
	}
	return mn, nil
}

// ToEntropy inverts FromEntropy. It rejects phrases with a bad checksum or
// unknown words.
func ToEntropy(mn string) ([entropy.Size]byte, error) {
	var out [entropy.Size]byte
	if n := len(strings.Fields(mn)); n != Words {
		return out, fmt.Errorf("mnemonic has %d words, want %d", n, Words)
	}
	raw, err := bip39.EntropyFromMnemonic(mn)
	if err != nil {
		return out, fmt.Errorf("decode mnemonic: %w", err)
	}
	if len(raw) > entropy.Size {
		return out, fmt.Errorf("%w: got %d", ErrEntropyLength, len(raw))
	}
	// leading zero bytes may be trimmed by the decoder
	copy(out[entropy.Size-len(raw):], raw)
	return out, nil
}

// Valid reports whether mn is a well-formed phrase with a correct checksum.
func Valid(mn string) bool {
	return bip39.IsMnemonicValid(mn)
}

// Seed derives the 64-byte BIP-39 seed. The search always uses an empty passphrase.
func Seed(mn, passphrase string) []byte {
	return bip39.NewSeed(mn, passphrase)
}
