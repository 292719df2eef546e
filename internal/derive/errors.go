package derive

import "errors"

var (
	// ErrInvalidAddressInput is returned for a target that does not parse or
	// belongs to a different network than the profile.
	ErrInvalidAddressInput = errors.New("invalid target address")

	// ErrMasterKeyDerivation means the seed produced no usable master key.
	// It is scoped to one mnemonic; the search counts the attempt and moves on.
	ErrMasterKeyDerivation = errors.New("master key derivation failed")

	// ErrInvalidDerivationPath means the profile or a path built from it is
	// malformed. Paths are fixed per run, so this aborts the search.
	ErrInvalidDerivationPath = errors.New("invalid derivation path")
)
