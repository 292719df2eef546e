// Package search walks the counter space, turning each counter into a
// mnemonic and checking its derived addresses against the target.
package search

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"SeedScanner/internal/derive"
	"SeedScanner/internal/entropy"
	"SeedScanner/internal/mnemonic"
)

// DefaultChunkSize is the number of attempts between throughput reports.
const DefaultChunkSize = 100

// rateEpsilon keeps the throughput finite when a chunk takes no measurable time.
const rateEpsilon = 1e-9

// Checker is the part of derive.Deriver the engine needs.
type Checker interface {
	Check(mn string, t derive.Target) (derive.Match, error)
}

type Options struct {
	Start     *big.Int // default 0
	End       *big.Int // inclusive, default entropy.MaxCounter()
	ChunkSize int      // default DefaultChunkSize
	Now       func() time.Time
}

type Engine struct {
	checker Checker
	target  derive.Target
	rep     Reporter

	start *big.Int
	end   *big.Int
	chunk int
	now   func() time.Time
}

func New(checker Checker, target derive.Target, rep Reporter, opt Options) (*Engine, error) {
	if checker == nil {
		return nil, errors.New("nil checker")
	}
	if rep == nil {
		rep = nopReporter{}
	}
	e := &Engine{
		checker: checker,
		target:  target,
		rep:     rep,
		start:   new(big.Int),
		end:     entropy.MaxCounter(),
		chunk:   opt.ChunkSize,
		now:     opt.Now,
	}
	if opt.Start != nil {
		e.start.Set(opt.Start)
	}
	if opt.End != nil {
		e.end.Set(opt.End)
	}
	if e.chunk == 0 {
		e.chunk = DefaultChunkSize
	}
	if e.now == nil {
		e.now = time.Now
	}

	switch {
	case e.chunk < 0:
		return nil, fmt.Errorf("chunk size must be > 0, got %d", e.chunk)
	case !entropy.Fits(e.start):
		return nil, fmt.Errorf("start %s outside [0, 2^256-1]", e.start)
	case !entropy.Fits(e.end):
		return nil, fmt.Errorf("end %s outside [0, 2^256-1]", e.end)
	case e.start.Cmp(e.end) > 0:
		return nil, fmt.Errorf("start %s is after end %s", e.start, e.end)
	}
	return e, nil
}

// Run checks counters from start to end inclusive, one at a time. It returns
// on the first match, after the last counter, or when ctx is done; in each
// case Finished is reported. A returned error means an invariant broke and no
// further counter can be trusted.
func (e *Engine) Run(ctx context.Context) (Result, error) {
	one := big.NewInt(1)
	counter := new(big.Int).Set(e.start)
	attempts := new(big.Int)

	began := e.now()
	checkpoint := began
	inChunk := 0

	res := Result{State: Running}

	for counter.Cmp(e.end) <= 0 {
		if ctx.Err() != nil {
			res.State = Interrupted
			break
		}

		buf := entropy.FromCounter(counter)
		mn, err := mnemonic.FromEntropy(buf[:])
		if err != nil {
			res.Attempts = attempts
			return res, fmt.Errorf("counter %s: %w", counter, err)
		}

		m, err := e.checker.Check(mn, e.target)
		attempts.Add(attempts, one)
		switch {
		case errors.Is(err, derive.ErrInvalidDerivationPath):
			res.Attempts = attempts
			return res, fmt.Errorf("counter %s: %w", counter, err)
		case err != nil:
			e.rep.AttemptFailed(new(big.Int).Set(counter), err)
		case m.Found:
			res.State = MatchFound
			res.Matched = true
			res.Counter = new(big.Int).Set(counter)
			res.Index = m.Index
			res.Path = m.Path
			res.Address = m.Address
			res.Mnemonic = mn
		}
		if res.Matched {
			break
		}

		counter.Add(counter, one)
		inChunk++
		if inChunk == e.chunk {
			now := e.now()
			elapsed := now.Sub(checkpoint)
			e.rep.Progress(Progress{
				Attempts: new(big.Int).Set(attempts),
				Counter:  new(big.Int).Set(counter),
				Rate:     float64(e.chunk) / (elapsed.Seconds() + rateEpsilon),
				Elapsed:  now.Sub(began),
			})
			checkpoint = now
			inChunk = 0
		}
	}

	if res.State == Running {
		res.State = Exhausted
	}
	res.Attempts = attempts
	res.Elapsed = e.now().Sub(began)
	e.rep.Finished(res)
	return res, nil
}
