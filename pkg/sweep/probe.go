package sweep

import (
	"context"
	"os/exec"
	"runtime"
	"strconv"
	"time"

	probing "github.com/prometheus-community/pro-bing"
)

// DefaultProbeTimeout bounds a single liveness check.
const DefaultProbeTimeout = time.Second

// Prober performs one liveness check against one address. Implementations
// report false for any failure: the sweep cannot tell a down host from a
// broken probe mechanism and does not try.
type Prober interface {
	Probe(ctx context.Context, addr Address) bool
}

// ProberFunc adapts a function to the Prober interface.
type ProberFunc func(ctx context.Context, addr Address) bool

func (f ProberFunc) Probe(ctx context.Context, addr Address) bool { return f(ctx, addr) }

// ICMPProber sends a single ICMP echo request via pro-bing.
type ICMPProber struct {
	Timeout time.Duration
}

func (p *ICMPProber) Probe(ctx context.Context, addr Address) bool {
	pinger, err := probing.NewPinger(addr.String())
	if err != nil {
		return false
	}
	pinger.Count = 1
	pinger.Timeout = p.timeout()
	pinger.SetPrivileged(runtime.GOOS == "windows")

	// Run in a goroutine so a cancelled context can stop the pinger.
	done := make(chan error, 1)
	go func() {
		done <- pinger.Run()
	}()

	select {
	case err := <-done:
		if err != nil {
			return false
		}
		return pinger.Statistics().PacketsRecv > 0
	case <-ctx.Done():
		pinger.Stop()
		return false
	}
}

func (p *ICMPProber) timeout() time.Duration {
	if p.Timeout <= 0 {
		return DefaultProbeTimeout
	}
	return p.Timeout
}

// PingCmdProber shells out to the system ping binary, one echo request with a
// hard per-call timeout. A spawn failure counts as not alive.
type PingCmdProber struct {
	Timeout time.Duration
}

func (p *PingCmdProber) Probe(ctx context.Context, addr Address) bool {
	timeout := p.timeout()

	// The process itself is killed shortly after its own deadline in case
	// the binary ignores the timeout flag.
	ctx, cancel := context.WithTimeout(ctx, timeout+500*time.Millisecond)
	defer cancel()

	cmd := exec.CommandContext(ctx, "ping", pingArgs(addr.String(), timeout)...)
	return cmd.Run() == nil
}

func (p *PingCmdProber) timeout() time.Duration {
	if p.Timeout <= 0 {
		return DefaultProbeTimeout
	}
	return p.Timeout
}

func pingArgs(target string, timeout time.Duration) []string {
	ms := strconv.Itoa(int(timeout.Milliseconds()))
	switch runtime.GOOS {
	case "windows":
		return []string{"-n", "1", "-w", ms, target}
	case "darwin":
		// -W takes milliseconds on macOS.
		return []string{"-c", "1", "-W", ms, target}
	default:
		secs := int((timeout + time.Second - 1) / time.Second)
		return []string{"-c", "1", "-W", strconv.Itoa(secs), target}
	}
}
