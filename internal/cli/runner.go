package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"SeedScanner/internal/derive"
	"SeedScanner/internal/search"
	"SeedScanner/pkg/appcfg"
	"SeedScanner/pkg/i18n"
	"SeedScanner/pkg/logx"
)

type Runner struct {
	Config  *appcfg.Config
	Address string
	Out     io.Writer

	// bounded ranges for tests; the command always scans from zero
	searchOpts search.Options
}

func NewRunner(cfg *appcfg.Config, address string) *Runner {
	return &Runner{Config: cfg, Address: address, Out: os.Stdout}
}

// ProfileFromConfig builds the derivation profile selected by cfg.
func ProfileFromConfig(cfg *appcfg.Config) (derive.Profile, error) {
	var p derive.Profile
	switch strings.ToLower(cfg.Scheme) {
	case string(derive.SchemeP2WPKH):
		net, err := derive.NetworkByName(cfg.Network)
		if err != nil {
			return p, err
		}
		p = derive.BIP84(net)
	case string(derive.SchemeEVM):
		p = derive.EVM()
	default:
		return p, fmt.Errorf("unknown scheme %q", cfg.Scheme)
	}
	p.Count = cfg.DeriveCount
	return p, p.Validate()
}

// Run validates the target and scans until a match, exhaustion or ctx is done.
// Target errors are returned before any attempt is made.
func (r *Runner) Run(ctx context.Context) (search.Result, error) {
	if err := r.Config.Validate(); err != nil {
		return search.Result{}, fmt.Errorf("config: %w", err)
	}
	profile, err := ProfileFromConfig(r.Config)
	if err != nil {
		return search.Result{}, err
	}
	d, err := derive.New(profile)
	if err != nil {
		return search.Result{}, err
	}
	target, err := d.ParseTarget(strings.TrimSpace(r.Address))
	if err != nil {
		return search.Result{}, err
	}

	rep := NewConsoleReporter(r.Out, i18n.Get(r.Config.Language), ReporterOptions{
		FoundDir:    r.Config.FoundDir,
		HideSecrets: r.Config.HideSecretsInConsole,
	})

	opts := r.searchOpts
	opts.ChunkSize = r.Config.ChunkSize
	eng, err := search.New(d, target, rep, opts)
	if err != nil {
		return search.Result{}, err
	}

	rep.Started(target, profile)
	res, err := eng.Run(ctx)
	if err != nil {
		logx.S().Errorw("search aborted", "err", err)
		return res, err
	}
	return res, nil
}

// WithInterrupt cancels the returned context on SIGINT or SIGTERM.
func WithInterrupt(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
}
