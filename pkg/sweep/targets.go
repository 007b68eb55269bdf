package sweep

import (
	"fmt"
	"net"
	"slices"

	"github.com/projectdiscovery/mapcidr"
	sliceutil "github.com/projectdiscovery/utils/slice"
)

// ExpandTargets expands explicit CIDR targets into their usable host
// addresses, deduplicated across overlapping ranges and sorted ascending.
// Network and broadcast addresses are excluded like in the derived-subnet
// path.
func ExpandTargets(targets []string) ([]Address, error) {
	seen := make(map[Address]struct{})

	for _, target := range sliceutil.Dedupe(targets) {
		_, network, err := net.ParseCIDR(target)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid CIDR %q", ErrInvalidNetworkConfig, target)
		}
		if network.IP.To4() == nil {
			return nil, fmt.Errorf("%w: IPv6 target %q not supported", ErrInvalidNetworkConfig, target)
		}

		base, _ := AddressOf(network.IP)
		ones, _ := network.Mask.Size()
		subnet := Subnet{network: base, prefix: ones}

		ips, err := mapcidr.IPAddresses(network.String())
		if err != nil {
			return nil, fmt.Errorf("%w: expanding %q: %s", ErrInvalidNetworkConfig, target, err)
		}
		for _, ipStr := range ips {
			addr, err := ParseAddress(ipStr)
			if err != nil {
				continue
			}
			if subnet.prefix <= 30 && (addr == subnet.Network() || addr == subnet.Broadcast()) {
				continue
			}
			if subnet.prefix >= 31 {
				// No usable hosts, matching Subnet.Hosts semantics.
				continue
			}
			seen[addr] = struct{}{}
		}
	}

	addrs := make([]Address, 0, len(seen))
	for addr := range seen {
		addrs = append(addrs, addr)
	}
	slices.Sort(addrs)
	return addrs, nil
}
