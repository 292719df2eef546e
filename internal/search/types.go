package search

import (
	"math/big"
	"time"
)

type State int

const (
	Running State = iota
	MatchFound
	Exhausted
	Interrupted
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case MatchFound:
		return "match_found"
	case Exhausted:
		return "exhausted"
	case Interrupted:
		return "interrupted"
	default:
		return "unknown"
	}
}

// Progress is emitted once per chunk of attempts.
type Progress struct {
	Attempts *big.Int
	Counter  *big.Int // next counter to try
	Rate     float64  // attempts per second over the last chunk
	Elapsed  time.Duration
}

// Result is the terminal event of a run.
type Result struct {
	State   State
	Matched bool

	// set when Matched
	Counter  *big.Int
	Index    int
	Path     string
	Mnemonic string
	Address  string

	Attempts *big.Int
	Elapsed  time.Duration
}

// Reporter receives the run's events. Calls happen on the Run goroutine and
// must not block for long.
type Reporter interface {
	Progress(p Progress)
	AttemptFailed(counter *big.Int, err error)
	Finished(r Result)
}

type nopReporter struct{}

func (nopReporter) Progress(Progress) {}

func (nopReporter) AttemptFailed(*big.Int, error) {}

func (nopReporter) Finished(Result) {}
