package runner

import (
	"context"
	"io"
	"iter"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/projectdiscovery/gcache"
	"github.com/projectdiscovery/gologger"
	"github.com/rs/xid"

	"github.com/projectdiscovery/lansweep/pkg/netcfg"
	"github.com/projectdiscovery/lansweep/pkg/sweep"
)

// Runner contains the internal logic of the program
type Runner struct {
	options *Options
	source  netcfg.Source
	scanner *sweep.Scanner
	out     io.Writer
}

// NewRunner instance
func NewRunner(options *Options) (*Runner, error) {
	timeout := time.Duration(options.TimeoutMs) * time.Millisecond

	var prober sweep.Prober
	switch options.ProbeMode {
	case "ping":
		prober = &sweep.PingCmdProber{Timeout: timeout}
	default:
		prober = &sweep.ICMPProber{Timeout: timeout}
	}

	return &Runner{
		options: options,
		source:  &netcfg.GopsutilSource{Interface: options.Interface},
		scanner: &sweep.Scanner{Prober: prober, Concurrency: options.Concurrency},
		out:     os.Stdout,
	}, nil
}

// Run executes a single sweep, or loops forever in monitor mode. Only
// configuration-phase errors are returned; individual probe failures never
// surface here.
func (r *Runner) Run(ctx context.Context) error {
	if !r.options.Monitor {
		_, err := r.sweepOnce(ctx)
		return err
	}
	return r.monitor(ctx)
}

// Close the runner instance
func (r *Runner) Close() {}

func (r *Runner) sweepOnce(ctx context.Context) (*sweep.Report, error) {
	sweepID := xid.New().String()

	target, hosts, total, err := r.resolveTargets()
	if err != nil {
		return nil, err
	}

	gologger.Info().Msgf("sweep %s: probing %d hosts on %s (concurrency %d, timeout %dms)",
		sweepID, total, target, r.options.Concurrency, r.options.TimeoutMs)

	started := time.Now()
	alive, err := r.scanner.Scan(ctx, hosts)
	if err != nil {
		return nil, err
	}
	gologger.Verbose().Msgf("sweep %s finished in %s", sweepID, time.Since(started).Round(time.Millisecond))

	report := sweep.NewReport(target, alive)
	report.Network = r.options.Network
	report.Render(r.out, au)
	return report, nil
}

// resolveTargets computes the host sequence for one sweep: either explicit
// -cidr targets or the usable range of the interface-derived subnet.
func (r *Runner) resolveTargets() (string, iter.Seq[sweep.Address], int, error) {
	if len(r.options.Cidrs) > 0 {
		addrs, err := sweep.ExpandTargets(r.options.Cidrs)
		if err != nil {
			return "", nil, 0, err
		}
		return strings.Join(r.options.Cidrs, ","), slices.Values(addrs), len(addrs), nil
	}

	cfg, err := r.source.LocalConfig()
	if err != nil {
		return "", nil, 0, err
	}
	gologger.Verbose().Msgf("using interface %s (%s netmask %s)", cfg.Interface, cfg.Address, cfg.Netmask)

	subnet, err := sweep.Resolve(cfg.Address, cfg.Netmask)
	if err != nil {
		return "", nil, 0, err
	}
	return subnet.String(), subnet.Hosts(), subnet.HostCount(), nil
}

// monitor re-sweeps on an interval and logs hosts joining or leaving. Known
// hosts live in an expiring LRU so a host that stays silent long enough is
// reported as new when it comes back; nothing is persisted.
func (r *Runner) monitor(ctx context.Context) error {
	interval := time.Duration(r.options.Interval) * time.Second
	known := gcache.New[sweep.Address, struct{}](4096).
		LRU().
		Expiration(3 * interval).
		Build()

	first := true
	for {
		report, err := r.sweepOnce(ctx)
		if err != nil {
			return err
		}

		current := make(map[sweep.Address]struct{}, report.Count())
		for _, addr := range report.Hosts {
			current[addr] = struct{}{}
			if !first && !known.Has(addr) {
				gologger.Info().Msgf("new host %s", addr)
			}
			_ = known.Set(addr, struct{}{})
		}
		for _, addr := range known.Keys(true) {
			if _, ok := current[addr]; !ok {
				gologger.Verbose().Msgf("host %s did not respond this sweep", addr)
			}
		}
		first = false

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(interval):
		}
	}
}
