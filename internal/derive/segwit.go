package derive

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
)

type segwitKeychain struct {
	net  *chaincfg.Params
	path []uint32
}

func (k segwitKeychain) branch(seed []byte) (chain, error) {
	master, err := hdkeychain.NewMaster(seed, k.net)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMasterKeyDerivation, err)
	}
	node := master
	for _, idx := range k.path {
		node, err = node.Derive(idx)
		if err != nil {
			return nil, pathError(err)
		}
	}
	return segwitChain{node: node, net: k.net}, nil
}

func (k segwitKeychain) parseTarget(text string) (Target, error) {
	addr, err := btcutil.DecodeAddress(text, k.net)
	if err != nil {
		if other := detectNet(text, k.net); other != nil {
			return Target{}, fmt.Errorf("%w: %q is a %s address, want %s",
				ErrInvalidAddressInput, text, other.Name, k.net.Name)
		}
		return Target{}, fmt.Errorf("%w: %q: %v", ErrInvalidAddressInput, text, err)
	}
	if !addr.IsForNet(k.net) {
		// bech32 text of any registered network decodes; only the HRP tells them apart
		if other := detectNet(text, k.net); other != nil {
			return Target{}, fmt.Errorf("%w: %q is a %s address, want %s",
				ErrInvalidAddressInput, text, other.Name, k.net.Name)
		}
		return Target{}, fmt.Errorf("%w: %q is not a %s address", ErrInvalidAddressInput, text, k.net.Name)
	}

	t := Target{Text: addr.EncodeAddress()}
	switch a := addr.(type) {
	case *btcutil.AddressWitnessPubKeyHash:
		t.Kind = "p2wpkh"
		t.program = a.WitnessProgram()
	case *btcutil.AddressPubKeyHash:
		t.Kind = "p2pkh"
	case *btcutil.AddressScriptHash:
		t.Kind = "p2sh"
	case *btcutil.AddressWitnessScriptHash:
		t.Kind = "p2wsh"
	case *btcutil.AddressTaproot:
		t.Kind = "p2tr"
	default:
		t.Kind = "other"
	}
	return t, nil
}

type segwitChain struct {
	node *hdkeychain.ExtendedKey
	net  *chaincfg.Params
}

func (c segwitChain) program(i uint32) ([]byte, error) {
	child, err := c.node.Derive(i)
	if err != nil {
		return nil, pathError(err)
	}
	pub, err := child.ECPubKey()
	if err != nil {
		return nil, err
	}
	return witnessProgram(pub), nil
}

func (c segwitChain) encode(program []byte) (string, error) {
	addr, err := btcutil.NewAddressWitnessPubKeyHash(program, c.net)
	if err != nil {
		return "", err
	}
	return addr.EncodeAddress(), nil
}

// witnessProgram is the v0 P2WPKH program: HASH160 of the compressed key.
func witnessProgram(pub *btcec.PublicKey) []byte {
	return btcutil.Hash160(pub.SerializeCompressed())
}

// pathError separates malformed paths from the rare unusable child key.
func pathError(err error) error {
	if errors.Is(err, hdkeychain.ErrDeriveHardFromPublic) || errors.Is(err, hdkeychain.ErrDeriveBeyondMaxDepth) {
		return fmt.Errorf("%w: %v", ErrInvalidDerivationPath, err)
	}
	return err
}

// detectNet finds another known network text decodes for, so the operator
// gets "wrong network" instead of a bare decode error.
func detectNet(text string, want *chaincfg.Params) *chaincfg.Params {
	for _, net := range knownNets {
		if net == want {
			continue
		}
		addr, err := btcutil.DecodeAddress(text, net)
		if err == nil && addr.IsForNet(net) {
			return net
		}
	}
	return nil
}
