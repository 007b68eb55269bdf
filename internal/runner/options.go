package runner

import (
	"fmt"
	"os"
	"strconv"

	"github.com/logrusorgru/aurora/v4"
	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/formatter"
	"github.com/projectdiscovery/gologger/levels"
	envutil "github.com/projectdiscovery/utils/env"

	"github.com/projectdiscovery/lansweep/pkg/version"
)

var au *aurora.Aurora

var (
	ConcurrencyEnv = envutil.GetEnvOrDefault("LANSWEEP_CONCURRENCY", "100")
	TimeoutMsEnv   = envutil.GetEnvOrDefault("LANSWEEP_TIMEOUT_MS", "1000")
)

// Options contains the configuration options for tuning the sweep.
type Options struct {
	Interface string
	Cidrs     goflags.StringSlice
	Network   string

	ProbeMode string
	TimeoutMs int

	Concurrency int

	Monitor  bool
	Interval int

	Verbose bool
	Silent  bool
	NoColor bool
	Version bool
}

// ParseOptions parses the command line flags provided by a user
func ParseOptions() *Options {
	options := &Options{}
	flagSet := goflags.NewFlagSet()

	flagSet.SetDescription(`lansweep discovers live hosts on the local IPv4 subnet by probing every usable address with bounded-concurrency liveness checks`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringVarP(&options.Interface, "interface", "i", "", "network interface to derive the subnet from (default: first private IPv4 interface)"),
		flagSet.StringSliceVar(&options.Cidrs, "cidr", nil, "explicit CIDR range(s) to sweep instead of the derived subnet (comma separated)", goflags.NormalizedStringSliceOptions),
		flagSet.StringVarP(&options.Network, "network", "nw", "", "network label shown in the scan header (display only)"),
	)

	flagSet.CreateGroup("probe", "Probe",
		flagSet.StringVar(&options.ProbeMode, "probe", "icmp", "liveness probe mechanism (icmp, ping)"),
		flagSet.IntVar(&options.TimeoutMs, "timeout", envInt(TimeoutMsEnv, 1000), "per-probe timeout in milliseconds"),
	)

	flagSet.CreateGroup("rate-limit", "Rate-Limit",
		flagSet.IntVarP(&options.Concurrency, "concurrency", "c", envInt(ConcurrencyEnv, 100), "maximum number of probes in flight"),
	)

	flagSet.CreateGroup("monitor", "Monitor",
		flagSet.BoolVar(&options.Monitor, "monitor", false, "repeat the sweep and log hosts joining or leaving"),
		flagSet.IntVar(&options.Interval, "interval", 60, "seconds between sweeps in monitor mode"),
	)

	flagSet.CreateGroup("debug", "Debug",
		flagSet.BoolVarP(&options.Verbose, "verbose", "v", false, "show verbose output"),
		flagSet.BoolVar(&options.Silent, "silent", false, "show only the final report"),
		flagSet.BoolVarP(&options.NoColor, "no-color", "nc", false, "disable output content coloring (ANSI escape codes)"),
		flagSet.BoolVar(&options.Version, "version", false, "show version of the project"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("%s\n", err)
	}

	// configure aurora for the report output
	au = aurora.New(aurora.WithColors(true))

	options.configureOutput()

	showBanner()

	if options.Version {
		gologger.Info().Msgf("Current Version: %s\n", version.GetVersion())
		os.Exit(0)
	}

	if err := options.validate(); err != nil {
		gologger.Fatal().Msgf("%s\n", err)
	}

	return options
}

func (options *Options) validate() error {
	switch options.ProbeMode {
	case "icmp", "ping":
	default:
		return fmt.Errorf("unknown probe mechanism %q (expected icmp or ping)", options.ProbeMode)
	}
	if options.Concurrency <= 0 {
		options.Concurrency = 100
	}
	if options.TimeoutMs <= 0 {
		options.TimeoutMs = 1000
	}
	if options.Interval <= 0 {
		options.Interval = 60
	}
	return nil
}

// configureOutput configures the output on the screen
func (options *Options) configureOutput() {
	if options.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}
	if options.NoColor {
		gologger.DefaultLogger.SetFormatter(formatter.NewCLI(true))
		au = aurora.New(aurora.WithColors(false))
	}
	if options.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	}
}

func envInt(value string, fallback int) int {
	if n, err := strconv.Atoi(value); err == nil && n > 0 {
		return n
	}
	return fallback
}
