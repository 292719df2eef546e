package cli

import (
	"bytes"
	"context"
	"math/big"
	"path/filepath"
	"testing"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"SeedScanner/internal/derive"
	"SeedScanner/internal/entropy"
	"SeedScanner/internal/mnemonic"
	"SeedScanner/internal/search"
	"SeedScanner/pkg/appcfg"
)

func testRunner(t *testing.T, address string) (*Runner, *bytes.Buffer) {
	t.Helper()
	cfg := appcfg.Default()
	cfg.FoundDir = t.TempDir()

	var out bytes.Buffer
	r := NewRunner(cfg, address)
	r.Out = &out
	return r, &out
}

func targetAt(t *testing.T, counter int64, index int) (string, string) {
	t.Helper()
	buf := entropy.FromCounter(big.NewInt(counter))
	mn, err := mnemonic.FromEntropy(buf[:])
	require.NoError(t, err)

	d, err := derive.New(derive.BIP84(&chaincfg.MainNetParams))
	require.NoError(t, err)
	addrs, err := d.Addresses(mn)
	require.NoError(t, err)
	return addrs[index], mn
}

func TestProfileFromConfig(t *testing.T) {
	cfg := appcfg.Default()
	p, err := ProfileFromConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, derive.BIP84(&chaincfg.MainNetParams), p)

	cfg.Network = "testnet3"
	cfg.DeriveCount = 3
	p, err = ProfileFromConfig(cfg)
	require.NoError(t, err)
	assert.Same(t, &chaincfg.TestNet3Params, p.Net)
	assert.Equal(t, 3, p.Count)

	cfg.Scheme = "evm"
	p, err = ProfileFromConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, derive.SchemeEVM, p.Scheme)

	cfg = appcfg.Default()
	cfg.Network = "litecoin"
	_, err = ProfileFromConfig(cfg)
	assert.Error(t, err)
}

func TestRunRejectsTarget(t *testing.T) {
	testnet, err := btcutil.NewAddressWitnessPubKeyHash(make([]byte, 20), &chaincfg.TestNet3Params)
	require.NoError(t, err)

	for _, addr := range []string{"garbage", testnet.EncodeAddress()} {
		t.Run(addr, func(t *testing.T) {
			r, out := testRunner(t, addr)
			_, err := r.Run(context.Background())
			require.ErrorIs(t, err, derive.ErrInvalidAddressInput)
			assert.Empty(t, out.String(), "search must not start")
		})
	}
}

func TestRunMatch(t *testing.T) {
	addr, mn := targetAt(t, 1, 3)
	r, out := testRunner(t, addr)
	r.searchOpts = search.Options{End: big.NewInt(2)}

	res, err := r.Run(context.Background())
	require.NoError(t, err)
	require.True(t, res.Matched)
	assert.Equal(t, 3, res.Index)
	assert.Equal(t, mn, res.Mnemonic)
	assert.Equal(t, int64(2), res.Attempts.Int64())

	assert.Contains(t, out.String(), "Match found!")
	assert.Contains(t, out.String(), mn)
	assert.Contains(t, out.String(), "m/84'/0'/0'/0/3")

	matches, err := filepath.Glob(filepath.Join(r.Config.FoundDir, "found", "*", "*", "found.jsonl"))
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestRunMatchHidesSecrets(t *testing.T) {
	addr, mn := targetAt(t, 0, 0)
	r, out := testRunner(t, addr)
	r.Config.HideSecretsInConsole = true
	r.Config.FoundDir = ""
	r.searchOpts = search.Options{End: big.NewInt(0)}

	res, err := r.Run(context.Background())
	require.NoError(t, err)
	require.True(t, res.Matched)
	assert.NotContains(t, out.String(), mn)
	assert.Contains(t, out.String(), "[REDACTED]")
}

func TestRunExhausted(t *testing.T) {
	r, out := testRunner(t, "bc1qcr8te4kr609gcawutmrza0j4xv80jy8z306fyu")
	r.Config.Language = "en"
	r.searchOpts = search.Options{End: big.NewInt(2)}

	res, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, search.Exhausted, res.State)
	assert.Contains(t, out.String(), "target address type: p2wpkh")
	assert.Contains(t, out.String(), "Search space exhausted.")
	assert.Contains(t, out.String(), "Finished. Total attempts: 3")
}

func TestRunInterrupted(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r, out := testRunner(t, "bc1qcr8te4kr609gcawutmrza0j4xv80jy8z306fyu")
	res, err := r.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, search.Interrupted, res.State)
	assert.Equal(t, int64(0), res.Attempts.Int64())
	assert.Contains(t, out.String(), "Stopped by operator.")
}

func TestHumanDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{d: 0, want: "0s"},
		{d: 42 * time.Second, want: "42s"},
		{d: 3*time.Minute + 5*time.Second, want: "3m05s"},
		{d: 2*time.Hour + 7*time.Minute + 9*time.Second, want: "2h07m09s"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, humanDuration(tt.d))
	}
}
