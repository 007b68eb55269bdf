// Package netcfg resolves the host's own IPv4 network configuration from its
// interfaces. It is the only platform-facing collaborator of the sweep: when
// it cannot determine a usable address and netmask the run aborts before any
// probing, with no fallback.
package netcfg

import (
	"errors"
	"fmt"
	"net"

	gopsutilnet "github.com/shirou/gopsutil/v3/net"
)

// ErrNoConfig is returned when no usable interface configuration exists.
var ErrNoConfig = errors.New("could not resolve local network configuration")

// Config is the IPv4 configuration of a single local interface.
type Config struct {
	Interface string
	Address   string
	Netmask   string
}

// Source resolves the local network configuration. Implementations return
// ErrNoConfig (possibly wrapped) when nothing usable is found.
type Source interface {
	LocalConfig() (Config, error)
}

// GopsutilSource introspects interfaces via gopsutil.
type GopsutilSource struct {
	// Interface restricts resolution to the named interface. Empty means
	// pick the first up, non-loopback interface with a private IPv4 address.
	Interface string
}

func (s *GopsutilSource) LocalConfig() (Config, error) {
	ifaces, err := gopsutilnet.Interfaces()
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s", ErrNoConfig, err)
	}

	cfg, ok := pickConfig(ifaces, s.Interface)
	if !ok {
		if s.Interface != "" {
			return Config{}, fmt.Errorf("%w: interface %q has no usable IPv4 address", ErrNoConfig, s.Interface)
		}
		return Config{}, ErrNoConfig
	}
	return cfg, nil
}

// pickConfig selects the first interface satisfying the filters. When name is
// empty only private IPv4 addresses qualify; a named interface may carry any
// IPv4 address.
func pickConfig(ifaces []gopsutilnet.InterfaceStat, name string) (Config, bool) {
	for _, iface := range ifaces {
		if name != "" && iface.Name != name {
			continue
		}
		if hasFlag(iface.Flags, "loopback") || !hasFlag(iface.Flags, "up") {
			continue
		}

		for _, addr := range iface.Addrs {
			ip, network, err := net.ParseCIDR(addr.Addr)
			if err != nil {
				continue
			}
			ip4 := ip.To4()
			if ip4 == nil {
				continue
			}
			if name == "" && !ip4.IsPrivate() {
				continue
			}
			ones, bits := network.Mask.Size()
			if bits != 32 {
				continue
			}
			return Config{
				Interface: iface.Name,
				Address:   ip4.String(),
				Netmask:   net.IP(net.CIDRMask(ones, 32)).String(),
			}, true
		}
	}
	return Config{}, false
}

func hasFlag(flags []string, want string) bool {
	for _, flag := range flags {
		if flag == want {
			return true
		}
	}
	return false
}
