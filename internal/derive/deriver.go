// Package derive turns a mnemonic into the ordered address set of a Profile
// and compares it against a parsed target address.
package derive

import (
	"bytes"
	"fmt"

	"SeedScanner/internal/mnemonic"
)

// keychain is one address scheme: how a seed becomes the chain branch and how
// a target text becomes comparable bytes.
type keychain interface {
	branch(seed []byte) (chain, error)
	parseTarget(text string) (Target, error)
}

// chain is the non-hardened node addresses are derived from.
type chain interface {
	// program returns the bytes an address of index i commits to.
	program(i uint32) ([]byte, error)
	encode(program []byte) (string, error)
}

// Target is a validated address on the profile's network.
type Target struct {
	Text string
	Kind string // p2wpkh, p2pkh, p2sh, p2wsh, p2tr, evm

	program []byte
}

// CanMatch reports whether the target's script type is one the profile derives.
// Other types parse fine but never match.
func (t Target) CanMatch() bool { return len(t.program) > 0 }

// Match describes the first derived address equal to the target.
type Match struct {
	Found   bool
	Index   int
	Path    string
	Address string
}

type Deriver struct {
	profile Profile
	keys    keychain
}

func New(p Profile) (*Deriver, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	d := &Deriver{profile: p}
	switch p.Scheme {
	case SchemeP2WPKH:
		d.keys = segwitKeychain{net: p.Net, path: p.branchPath()}
	case SchemeEVM:
		d.keys = evmKeychain{profile: p}
	}
	return d, nil
}

func (d *Deriver) Profile() Profile { return d.profile }

// ParseTarget validates text against the profile's network.
func (d *Deriver) ParseTarget(text string) (Target, error) {
	return d.keys.parseTarget(text)
}

// Addresses returns the Count addresses of mn in index order.
func (d *Deriver) Addresses(mn string) ([]string, error) {
	ch, err := d.keys.branch(mnemonic.Seed(mn, ""))
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, d.profile.Count)
	for i := 0; i < d.profile.Count; i++ {
		prog, err := ch.program(uint32(i))
		if err != nil {
			return nil, fmt.Errorf("derive %s: %w", d.profile.Path(i), err)
		}
		addr, err := ch.encode(prog)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", d.profile.Path(i), err)
		}
		out = append(out, addr)
	}
	return out, nil
}

// Check derives addresses of mn in index order and stops at the first one
// equal to t. Equality is on the committed bytes; network and script type are
// pinned by ParseTarget.
func (d *Deriver) Check(mn string, t Target) (Match, error) {
	ch, err := d.keys.branch(mnemonic.Seed(mn, ""))
	if err != nil {
		return Match{}, err
	}
	for i := 0; i < d.profile.Count; i++ {
		prog, err := ch.program(uint32(i))
		if err != nil {
			return Match{}, fmt.Errorf("derive %s: %w", d.profile.Path(i), err)
		}
		if !bytes.Equal(prog, t.program) {
			continue
		}
		addr, err := ch.encode(prog)
		if err != nil {
			return Match{}, fmt.Errorf("encode %s: %w", d.profile.Path(i), err)
		}
		return Match{Found: true, Index: i, Path: d.profile.Path(i), Address: addr}, nil
	}
	return Match{}, nil
}
