package sweep

import (
	"encoding/binary"
	"fmt"
	"net"
)

// Address is an IPv4 address packed into a uint32 in network byte order.
// Report ordering is the natural ordering of this integer, so 10.0.0.9
// sorts before 10.0.0.10.
type Address uint32

// ParseAddress converts dotted-decimal text into an Address.
func ParseAddress(s string) (Address, error) {
	ip := net.ParseIP(s)
	if ip == nil {
		return 0, fmt.Errorf("invalid IP address: %s", s)
	}
	ip4 := ip.To4()
	if ip4 == nil {
		return 0, fmt.Errorf("not an IPv4 address: %s", s)
	}
	return Address(binary.BigEndian.Uint32(ip4)), nil
}

// AddressOf converts a net.IP into an Address. Returns false for anything
// that is not IPv4.
func AddressOf(ip net.IP) (Address, bool) {
	ip4 := ip.To4()
	if ip4 == nil {
		return 0, false
	}
	return Address(binary.BigEndian.Uint32(ip4)), true
}

// IP returns the address as a net.IP.
func (a Address) IP() net.IP {
	ip := make(net.IP, net.IPv4len)
	binary.BigEndian.PutUint32(ip, uint32(a))
	return ip
}

// String returns the dotted-decimal form.
func (a Address) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", byte(a>>24), byte(a>>16), byte(a>>8), byte(a))
}
