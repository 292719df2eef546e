package cli

import (
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"SeedScanner/internal/derive"
	"SeedScanner/internal/logsink"
	"SeedScanner/internal/search"
	"SeedScanner/pkg/i18n"
	"SeedScanner/pkg/logx"
)

type ReporterOptions struct {
	FoundDir    string // "" disables found records
	HideSecrets bool
	Now         func() time.Time
}

// ConsoleReporter renders search events: progress and per-attempt errors go
// to the log, the start and final banners go to out.
type ConsoleReporter struct {
	out    io.Writer
	msgs   i18n.Messages
	opt    ReporterOptions
	styled bool

	network string
	saved   string
}

func NewConsoleReporter(out io.Writer, msgs i18n.Messages, opt ReporterOptions) *ConsoleReporter {
	if opt.Now == nil {
		opt.Now = time.Now
	}
	return &ConsoleReporter{
		out:    out,
		msgs:   msgs,
		opt:    opt,
		styled: isTerminal(out),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (r *ConsoleReporter) render(s lipgloss.Style, text string) string {
	if !r.styled {
		return text
	}
	return s.Render(text)
}

// Started prints the header for a run against target.
func (r *ConsoleReporter) Started(target derive.Target, p derive.Profile) {
	r.network = p.NetworkName()

	lines := []string{
		r.render(titleStyle, r.msgs.AppTitle),
		fmt.Sprintf(r.msgs.Target, r.render(valueStyle, target.Text)),
		r.render(mutedStyle, fmt.Sprintf(r.msgs.TargetKind, target.Kind)),
		r.render(mutedStyle, fmt.Sprintf(r.msgs.Network, r.network)),
		r.render(mutedStyle, fmt.Sprintf(r.msgs.Path, p.Path(0)+" .. "+p.Path(p.Count-1))),
	}
	r.banner(lines)

	logx.S().Infow(r.msgs.Starting,
		"target", target.Text,
		"kind", target.Kind,
		"network", r.network,
		"scheme", string(p.Scheme),
		"count", p.Count,
	)
	if !target.CanMatch() {
		logx.S().Warnf(r.msgs.TargetNoMatch, target.Kind, string(p.Scheme))
	}
}

func (r *ConsoleReporter) Progress(p search.Progress) {
	logx.S().Infow(fmt.Sprintf(r.msgs.Progress, p.Attempts.String(), p.Rate),
		"attempts", p.Attempts.String(),
		"rate_seeds_per_sec", fmt.Sprintf("%.2f", p.Rate),
		"elapsed", humanDuration(p.Elapsed),
	)
}

func (r *ConsoleReporter) AttemptFailed(counter *big.Int, err error) {
	logx.S().Warnw(r.msgs.AttemptFailed, "counter", counter.String(), "err", err)
}

func (r *ConsoleReporter) Finished(res search.Result) {
	total := res.Attempts.String()

	if !res.Matched {
		msg := r.msgs.Exhausted
		if res.State == search.Interrupted {
			msg = r.msgs.Interrupted
		}
		logx.S().Infow("stopped",
			"state", res.State.String(),
			"attempts", total,
			"elapsed", humanDuration(res.Elapsed),
		)
		r.banner([]string{
			r.render(mutedStyle, msg),
			fmt.Sprintf(r.msgs.TotalAttempts, r.render(valueStyle, total)),
		})
		return
	}

	logx.S().Infow("FOUND",
		"address", res.Address,
		"index", res.Index,
		"path", res.Path,
		"counter", res.Counter.String(),
		"attempts", total,
		"elapsed", humanDuration(res.Elapsed),
		"mnemonic", res.Mnemonic,
	)

	if r.opt.FoundDir != "" {
		if err := r.saveFound(res); err != nil {
			logx.S().Errorw("found record write failed", "err", err)
		}
	}

	shown := res.Mnemonic
	if r.opt.HideSecrets {
		shown = "[REDACTED]"
	}
	lines := []string{
		r.render(okStyle, "✔ "+r.msgs.MatchFound),
		fmt.Sprintf(r.msgs.MatchMnemonic, r.render(valueStyle, shown)),
		fmt.Sprintf(r.msgs.MatchIndex, res.Index, res.Path),
		fmt.Sprintf(r.msgs.MatchCounter, res.Counter.String()),
		fmt.Sprintf(r.msgs.TotalAttempts, total),
	}
	if r.saved != "" {
		lines = append(lines, r.render(mutedStyle, fmt.Sprintf(r.msgs.FoundSaved, r.saved)))
	}
	r.banner(lines)
}

func (r *ConsoleReporter) saveFound(res search.Result) error {
	dir, err := logsink.MakeModuleDirs(r.opt.FoundDir, "found", r.opt.Now())
	if err != nil {
		return err
	}
	if err := logsink.WriteFound(dir, logsink.Found{
		Address:  res.Address,
		Network:  r.network,
		Index:    res.Index,
		Path:     res.Path,
		Counter:  res.Counter.String(),
		Attempts: res.Attempts.String(),
		Mnemonic: res.Mnemonic,
	}); err != nil {
		return err
	}
	r.saved = dir
	return nil
}

func (r *ConsoleReporter) banner(lines []string) {
	body := strings.Join(lines, "\n")
	if r.styled {
		body = boxStyle.Render(body)
	}
	fmt.Fprintln(r.out, body)
}

func humanDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		m := int(d.Minutes())
		s := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm%02ds", m, s)
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%dh%02dm%02ds", h, m, s)
}
