// Package sweep implements a bounded-concurrency IPv4 liveness sweep.
//
// The sweep is a linear pipeline:
//   - Resolve derives the subnet from a local address and netmask
//   - Subnet.Hosts lazily yields the usable host range (no network/broadcast)
//   - Scanner.Scan fans out one probe per address behind an admission gate
//   - NewReport sorts the alive set into a deterministic report
//
// Probe failures are expected and silent: an address that does not answer,
// times out, or whose probe mechanism errors simply does not appear in the
// report. Only configuration errors (unparseable address or netmask) are
// surfaced, before any probing starts.
//
// Example usage:
//
//	subnet, err := sweep.Resolve("192.168.1.10", "255.255.255.0")
//	scanner := &sweep.Scanner{Prober: &sweep.ICMPProber{Timeout: time.Second}}
//	alive, err := scanner.Scan(ctx, subnet.Hosts())
//	sweep.NewReport(subnet.String(), alive).Render(os.Stdout, nil)
//
// Privilege Requirements:
// - Unprivileged UDP-based ICMP works on most Linux setups; raw sockets
//   require root/admin elsewhere
// - The ping prober (PingCmdProber) delegates privileges to the system binary
package sweep
