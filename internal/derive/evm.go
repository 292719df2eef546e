package derive

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	hdwallet "github.com/miguelmota/go-ethereum-hdwallet"
)

type evmKeychain struct {
	profile Profile
}

func (k evmKeychain) branch(seed []byte) (chain, error) {
	w, err := hdwallet.NewFromSeed(seed)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMasterKeyDerivation, err)
	}
	return evmChain{w: w, profile: k.profile}, nil
}

func (k evmKeychain) parseTarget(text string) (Target, error) {
	if !common.IsHexAddress(text) {
		return Target{}, fmt.Errorf("%w: %q is not a 20-byte hex address", ErrInvalidAddressInput, text)
	}
	addr := common.HexToAddress(text)
	return Target{Text: addr.Hex(), Kind: "evm", program: addr.Bytes()}, nil
}

type evmChain struct {
	w       *hdwallet.Wallet
	profile Profile
}

func (c evmChain) program(i uint32) ([]byte, error) {
	path, err := hdwallet.ParseDerivationPath(c.profile.Path(int(i)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDerivationPath, err)
	}
	acct, err := c.w.Derive(path, false)
	if err != nil {
		return nil, err
	}
	return acct.Address.Bytes(), nil
}

func (c evmChain) encode(program []byte) (string, error) {
	return common.BytesToAddress(program).Hex(), nil
}
