package derive

import (
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
)

// Scheme selects the address encoding a profile derives.
type Scheme string

const (
	SchemeP2WPKH Scheme = "p2wpkh" // BIP-84 native segwit, single key
	SchemeEVM    Scheme = "evm"    // BIP-44 coin 60, EIP-55 hex
)

// DefaultCount is the number of receive addresses checked per mnemonic.
const DefaultCount = 24

// Profile fixes the derivation path m/purpose'/coin'/account'/change/i and
// the network for one run. It is a value; copies never alias.
type Profile struct {
	Scheme   Scheme
	Net      *chaincfg.Params // nil for SchemeEVM
	Purpose  uint32
	CoinType uint32
	Account  uint32
	Change   uint32
	Count    int
}

// BIP84 is the native segwit receive chain m/84'/coin'/0'/0 on net.
func BIP84(net *chaincfg.Params) Profile {
	return Profile{
		Scheme:   SchemeP2WPKH,
		Net:      net,
		Purpose:  84,
		CoinType: net.HDCoinType,
		Account:  0,
		Change:   0,
		Count:    DefaultCount,
	}
}

// EVM is the Ethereum receive chain m/44'/60'/0'/0.
func EVM() Profile {
	return Profile{
		Scheme:   SchemeEVM,
		Purpose:  44,
		CoinType: 60,
		Account:  0,
		Change:   0,
		Count:    DefaultCount,
	}
}

// Path renders the textual path of address i.
func (p Profile) Path(i int) string {
	return fmt.Sprintf("m/%d'/%d'/%d'/%d/%d", p.Purpose, p.CoinType, p.Account, p.Change, i)
}

// NetworkName is the chain the profile derives for.
func (p Profile) NetworkName() string {
	if p.Scheme == SchemeEVM {
		return "ethereum"
	}
	if p.Net == nil {
		return ""
	}
	return p.Net.Name
}

// branchPath is the chain node every address index hangs from.
func (p Profile) branchPath() []uint32 {
	return []uint32{
		hdkeychain.HardenedKeyStart + p.Purpose,
		hdkeychain.HardenedKeyStart + p.CoinType,
		hdkeychain.HardenedKeyStart + p.Account,
		p.Change,
	}
}

func (p Profile) Validate() error {
	switch p.Scheme {
	case SchemeP2WPKH:
		if p.Net == nil {
			return fmt.Errorf("%w: p2wpkh profile without network", ErrInvalidDerivationPath)
		}
	case SchemeEVM:
	default:
		return fmt.Errorf("%w: unknown scheme %q", ErrInvalidDerivationPath, p.Scheme)
	}
	segments := []struct {
		name string
		v    uint32
	}{
		{"purpose", p.Purpose},
		{"coin", p.CoinType},
		{"account", p.Account},
		{"change", p.Change},
	}
	for _, s := range segments {
		if s.v >= hdkeychain.HardenedKeyStart {
			return fmt.Errorf("%w: %s index %d out of range", ErrInvalidDerivationPath, s.name, s.v)
		}
	}
	if p.Count < 1 || uint64(p.Count) > uint64(hdkeychain.HardenedKeyStart) {
		return fmt.Errorf("%w: count %d out of range", ErrInvalidDerivationPath, p.Count)
	}
	return nil
}

var knownNets = []*chaincfg.Params{
	&chaincfg.MainNetParams,
	&chaincfg.TestNet3Params,
	&chaincfg.RegressionNetParams,
	&chaincfg.SigNetParams,
	&chaincfg.SimNetParams,
}

// NetworkByName resolves a chaincfg network by its Name ("mainnet", "testnet3", ...).
func NetworkByName(name string) (*chaincfg.Params, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" || n == "bitcoin" {
		n = chaincfg.MainNetParams.Name
	}
	for _, net := range knownNets {
		if net.Name == n {
			return net, nil
		}
	}
	return nil, fmt.Errorf("unknown network %q", name)
}
