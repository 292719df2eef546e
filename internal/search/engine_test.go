package search

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"SeedScanner/internal/derive"
	"SeedScanner/internal/entropy"
	"SeedScanner/internal/mnemonic"
)

type recorder struct {
	progress []Progress
	failed   []*big.Int
	errs     []error
	finished []Result
}

func (r *recorder) Progress(p Progress) { r.progress = append(r.progress, p) }

func (r *recorder) AttemptFailed(c *big.Int, err error) {
	r.failed = append(r.failed, c)
	r.errs = append(r.errs, err)
}

func (r *recorder) Finished(res Result) { r.finished = append(r.finished, res) }

// stepClock advances by step on every reading.
func stepClock(step time.Duration) func() time.Time {
	t := time.Unix(1_700_000_000, 0)
	return func() time.Time {
		t = t.Add(step)
		return t
	}
}

type checkFunc func(call int, mn string) (derive.Match, error)

type fakeChecker struct {
	calls int
	fn    checkFunc
}

func (f *fakeChecker) Check(mn string, _ derive.Target) (derive.Match, error) {
	f.calls++
	if f.fn == nil {
		return derive.Match{}, nil
	}
	return f.fn(f.calls, mn)
}

func mnemonicFor(t *testing.T, c int64) string {
	t.Helper()
	buf := entropy.FromCounter(big.NewInt(c))
	mn, err := mnemonic.FromEntropy(buf[:])
	require.NoError(t, err)
	return mn
}

func mainnetDeriver(t *testing.T) *derive.Deriver {
	t.Helper()
	d, err := derive.New(derive.BIP84(&chaincfg.MainNetParams))
	require.NoError(t, err)
	return d
}

func TestRunFindsMatch(t *testing.T) {
	d := mainnetDeriver(t)
	const counter, index = 2, 5

	want := mnemonicFor(t, counter)
	addrs, err := d.Addresses(want)
	require.NoError(t, err)
	target, err := d.ParseTarget(addrs[index])
	require.NoError(t, err)

	rec := &recorder{}
	e, err := New(d, target, rec, Options{End: big.NewInt(3), Now: stepClock(time.Millisecond)})
	require.NoError(t, err)

	res, err := e.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, MatchFound, res.State)
	assert.True(t, res.Matched)
	assert.Equal(t, index, res.Index)
	assert.Equal(t, want, res.Mnemonic)
	assert.Equal(t, addrs[index], res.Address)
	assert.Equal(t, "m/84'/0'/0'/0/5", res.Path)
	assert.Equal(t, int64(counter), res.Counter.Int64())
	assert.Equal(t, int64(counter+1), res.Attempts.Int64())

	require.Len(t, rec.finished, 1)
	assert.Equal(t, res, rec.finished[0])
}

func TestRunExhausted(t *testing.T) {
	d := mainnetDeriver(t)
	// 12-word vector address: not reachable from any 24-word mnemonic
	target, err := d.ParseTarget("bc1qcr8te4kr609gcawutmrza0j4xv80jy8z306fyu")
	require.NoError(t, err)

	const n = 4
	rec := &recorder{}
	e, err := New(d, target, rec, Options{End: big.NewInt(n)})
	require.NoError(t, err)

	res, err := e.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, Exhausted, res.State)
	assert.False(t, res.Matched)
	assert.Equal(t, int64(n+1), res.Attempts.Int64())
	assert.Nil(t, res.Counter)
	require.Len(t, rec.finished, 1)
	assert.Empty(t, rec.failed)
}

func TestRunProgressPerChunk(t *testing.T) {
	rec := &recorder{}
	e, err := New(&fakeChecker{}, derive.Target{}, rec, Options{
		End:       big.NewInt(4),
		ChunkSize: 2,
		Now:       stepClock(250 * time.Millisecond),
	})
	require.NoError(t, err)

	res, err := e.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(5), res.Attempts.Int64())

	require.Len(t, rec.progress, 2)
	assert.Equal(t, int64(2), rec.progress[0].Attempts.Int64())
	assert.Equal(t, int64(2), rec.progress[0].Counter.Int64())
	assert.Equal(t, int64(4), rec.progress[1].Attempts.Int64())
	for _, p := range rec.progress {
		// one clock step per chunk
		assert.InDelta(t, 8.0, p.Rate, 0.001)
	}
}

func TestRunProgressZeroElapsed(t *testing.T) {
	frozen := time.Unix(1_700_000_000, 0)
	rec := &recorder{}
	e, err := New(&fakeChecker{}, derive.Target{}, rec, Options{
		End:       big.NewInt(2),
		ChunkSize: 3,
		Now:       func() time.Time { return frozen },
	})
	require.NoError(t, err)

	_, err = e.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, rec.progress, 1)
	assert.Greater(t, rec.progress[0].Rate, 0.0)
	assert.False(t, rec.progress[0].Rate > 1e300)
}

func TestRunAttemptErrorContinues(t *testing.T) {
	fc := &fakeChecker{fn: func(call int, _ string) (derive.Match, error) {
		if call == 2 {
			return derive.Match{}, derive.ErrMasterKeyDerivation
		}
		return derive.Match{}, nil
	}}

	rec := &recorder{}
	e, err := New(fc, derive.Target{}, rec, Options{End: big.NewInt(3)})
	require.NoError(t, err)

	res, err := e.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, Exhausted, res.State)
	assert.Equal(t, int64(4), res.Attempts.Int64())
	assert.Equal(t, 4, fc.calls)
	require.Len(t, rec.failed, 1)
	assert.Equal(t, int64(1), rec.failed[0].Int64())
	assert.ErrorIs(t, rec.errs[0], derive.ErrMasterKeyDerivation)
}

func TestRunInvalidPathAborts(t *testing.T) {
	fc := &fakeChecker{fn: func(int, string) (derive.Match, error) {
		return derive.Match{}, derive.ErrInvalidDerivationPath
	}}

	rec := &recorder{}
	e, err := New(fc, derive.Target{}, rec, Options{End: big.NewInt(10)})
	require.NoError(t, err)

	res, err := e.Run(context.Background())
	require.ErrorIs(t, err, derive.ErrInvalidDerivationPath)
	assert.Equal(t, 1, fc.calls)
	require.NotNil(t, res.Attempts)
	assert.Equal(t, int64(1), res.Attempts.Int64())
	assert.Empty(t, rec.finished)
}

func TestRunInterrupted(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fc := &fakeChecker{fn: func(call int, _ string) (derive.Match, error) {
		if call == 3 {
			cancel()
		}
		return derive.Match{}, nil
	}}

	rec := &recorder{}
	e, err := New(fc, derive.Target{}, rec, Options{})
	require.NoError(t, err)

	res, err := e.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, Interrupted, res.State)
	assert.Equal(t, int64(3), res.Attempts.Int64())
	require.Len(t, rec.finished, 1)
}

func TestRunUpperBound(t *testing.T) {
	var seen []string
	fc := &fakeChecker{fn: func(_ int, mn string) (derive.Match, error) {
		seen = append(seen, mn)
		return derive.Match{}, nil
	}}

	start := new(big.Int).Sub(entropy.MaxCounter(), big.NewInt(1))
	e, err := New(fc, derive.Target{}, nil, Options{Start: start})
	require.NoError(t, err)

	res, err := e.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Exhausted, res.State)
	assert.Equal(t, int64(2), res.Attempts.Int64())
	require.Len(t, seen, 2)

	top := entropy.FromCounter(entropy.MaxCounter())
	last, err := mnemonic.FromEntropy(top[:])
	require.NoError(t, err)
	assert.Equal(t, last, seen[1])
}

func TestNewRejectsOptions(t *testing.T) {
	over := new(big.Int).Add(entropy.MaxCounter(), big.NewInt(1))

	tests := []struct {
		name string
		opt  Options
	}{
		{name: "negative chunk", opt: Options{ChunkSize: -1}},
		{name: "start after end", opt: Options{Start: big.NewInt(5), End: big.NewInt(4)}},
		{name: "negative start", opt: Options{Start: big.NewInt(-1)}},
		{name: "end beyond space", opt: Options{End: over}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(&fakeChecker{}, derive.Target{}, nil, tt.opt)
			assert.Error(t, err)
		})
	}

	_, err := New(nil, derive.Target{}, nil, Options{})
	assert.Error(t, err)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "match_found", MatchFound.String())
	assert.Equal(t, "exhausted", Exhausted.String())
	assert.Equal(t, "interrupted", Interrupted.String())
	assert.Equal(t, "running", Running.String())
}
