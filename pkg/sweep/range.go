package sweep

import (
	"errors"
	"fmt"
	"iter"
	"net"
	"strconv"
	"strings"
)

// ErrInvalidNetworkConfig is returned when a local address and netmask
// cannot form a valid IPv4 subnet.
var ErrInvalidNetworkConfig = errors.New("invalid network configuration")

// Subnet is an IPv4 network identified by its base address and prefix length.
type Subnet struct {
	network Address
	prefix  int
}

// Resolve derives the subnet containing localAddr. The second argument
// accepts dotted-decimal netmasks ("255.255.255.0") as well as prefix
// notation ("24" or "/24").
func Resolve(localAddr, netmaskOrPrefix string) (Subnet, error) {
	addr, err := ParseAddress(localAddr)
	if err != nil {
		return Subnet{}, fmt.Errorf("%w: %s", ErrInvalidNetworkConfig, err)
	}

	prefix, err := parsePrefix(netmaskOrPrefix)
	if err != nil {
		return Subnet{}, err
	}

	mask := maskOf(prefix)
	return Subnet{network: addr & mask, prefix: prefix}, nil
}

func parsePrefix(s string) (int, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "/")

	if prefix, err := strconv.Atoi(s); err == nil {
		if prefix < 0 || prefix > 32 {
			return 0, fmt.Errorf("%w: prefix /%d out of range", ErrInvalidNetworkConfig, prefix)
		}
		return prefix, nil
	}

	ip := net.ParseIP(s)
	if ip == nil || ip.To4() == nil {
		return 0, fmt.Errorf("%w: unparseable netmask %q", ErrInvalidNetworkConfig, s)
	}
	ones, bits := net.IPMask(ip.To4()).Size()
	if bits != 32 {
		// Size reports 0,0 for non-contiguous masks.
		return 0, fmt.Errorf("%w: non-contiguous netmask %q", ErrInvalidNetworkConfig, s)
	}
	return ones, nil
}

func maskOf(prefix int) Address {
	if prefix <= 0 {
		return 0
	}
	return Address(^uint32(0) << (32 - prefix))
}

// Network returns the subnet base address.
func (s Subnet) Network() Address { return s.network }

// Broadcast returns the all-ones host address of the subnet.
func (s Subnet) Broadcast() Address { return s.network | ^maskOf(s.prefix) }

// Prefix returns the prefix length.
func (s Subnet) Prefix() int { return s.prefix }

// String returns the subnet in CIDR notation.
func (s Subnet) String() string {
	return fmt.Sprintf("%s/%d", s.network, s.prefix)
}

// HostCount returns the number of usable host addresses. Prefixes 31 and 32
// have none.
func (s Subnet) HostCount() int {
	if s.prefix >= 31 {
		return 0
	}
	return (1 << (32 - s.prefix)) - 2
}

// Hosts yields every usable host address in ascending order, excluding the
// network and broadcast addresses. The sequence is generated lazily so a
// large subnet is never materialized in memory.
func (s Subnet) Hosts() iter.Seq[Address] {
	return func(yield func(Address) bool) {
		if s.prefix >= 31 {
			return
		}
		for addr := s.network + 1; addr < s.Broadcast(); addr++ {
			if !yield(addr) {
				return
			}
		}
	}
}
