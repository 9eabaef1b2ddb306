package ipnetwork

import (
	"math/big"
	"net/netip"
)

// IPNetwork is a closed union over IPv4Network and IPv6Network, letting
// callers handle both address families uniformly. The zero value is the
// IPv4 0.0.0.0/0 block. Values are immutable and comparable with ==.
type IPNetwork struct {
	v4  IPv4Network
	v6  IPv6Network
	is6 bool
}

// IPNetworkFrom4 wraps an IPv4 block.
func IPNetworkFrom4(n IPv4Network) IPNetwork {
	return IPNetwork{v4: n}
}

// IPNetworkFrom6 wraps an IPv6 block.
func IPNetworkFrom6(n IPv6Network) IPNetwork {
	return IPNetwork{v6: n, is6: true}
}

// ParseIPNetwork parses CIDR notation of either family, dispatching on
// the address part.
func ParseIPNetwork(s string) (IPNetwork, error) {
	addr, cidr, err := splitCIDR(s)
	if err != nil {
		return IPNetwork{}, err
	}
	if addr.Is4() {
		n, err := IPv4NetworkFromAddr(addr, cidr)
		if err != nil {
			return IPNetwork{}, err
		}
		return IPNetworkFrom4(n), nil
	}
	n, err := NewIPv6Network(addr, cidr)
	if err != nil {
		return IPNetwork{}, err
	}
	return IPNetworkFrom6(n), nil
}

// MustParseIPNetwork is ParseIPNetwork for inputs known to be valid.
// It panics on error.
func MustParseIPNetwork(s string) IPNetwork {
	n, err := ParseIPNetwork(s)
	if err != nil {
		panic(err)
	}
	return n
}

// Is4 reports whether the block is an IPv4 network.
func (n IPNetwork) Is4() bool {
	return !n.is6
}

// Is6 reports whether the block is an IPv6 network.
func (n IPNetwork) Is6() bool {
	return n.is6
}

// V4 returns the IPv4 variant. ok is false for IPv6 blocks.
func (n IPNetwork) V4() (IPv4Network, bool) {
	return n.v4, !n.is6
}

// V6 returns the IPv6 variant. ok is false for IPv4 blocks.
func (n IPNetwork) V6() (IPv6Network, bool) {
	return n.v6, n.is6
}

// First returns the block's base address.
func (n IPNetwork) First() netip.Addr {
	if n.is6 {
		return n.v6.First()
	}
	return n.v4.First()
}

// Last returns the block's final address.
func (n IPNetwork) Last() netip.Addr {
	if n.is6 {
		return n.v6.Last()
	}
	return n.v4.Last()
}

// CIDR returns the prefix length.
func (n IPNetwork) CIDR() uint8 {
	if n.is6 {
		return n.v6.CIDR()
	}
	return n.v4.CIDR()
}

// HostCount returns the number of addresses the block spans. Both
// families report through a big.Int so callers need not branch.
func (n IPNetwork) HostCount() *big.Int {
	if n.is6 {
		return n.v6.HostCount()
	}
	return new(big.Int).SetUint64(n.v4.HostCount())
}

// Netmask returns the conventional prefix mask.
func (n IPNetwork) Netmask() netip.Addr {
	if n.is6 {
		return n.v6.Netmask()
	}
	return n.v4.Netmask()
}

// Prefix returns the block as a netip.Prefix.
func (n IPNetwork) Prefix() netip.Prefix {
	if n.is6 {
		return n.v6.Prefix()
	}
	return n.v4.Prefix()
}

// Contains reports whether addr lies strictly inside the block. An
// address of the other family reports false.
func (n IPNetwork) Contains(addr netip.Addr) bool {
	if n.is6 {
		return n.v6.Contains(addr)
	}
	return n.v4.Contains(addr)
}

// IsSubnet reports whether other is a subnet of n. Blocks of different
// families are never subnets of one another.
func (n IPNetwork) IsSubnet(other IPNetwork) bool {
	if n.is6 != other.is6 {
		return false
	}
	if n.is6 {
		return n.v6.IsSubnet(other.v6)
	}
	return n.v4.IsSubnet(other.v4)
}

// IsSupernet reports whether other is a supernet of n. Blocks of
// different families are never supernets of one another.
func (n IPNetwork) IsSupernet(other IPNetwork) bool {
	if n.is6 != other.is6 {
		return false
	}
	if n.is6 {
		return n.v6.IsSupernet(other.v6)
	}
	return n.v4.IsSupernet(other.v4)
}

// Compare orders blocks by base address, then by prefix length. IPv4
// blocks sort before IPv6 blocks.
func (n IPNetwork) Compare(other IPNetwork) int {
	switch {
	case n.is6 != other.is6:
		if other.is6 {
			return -1
		}
		return 1
	case n.is6:
		return n.v6.Compare(other.v6)
	default:
		return n.v4.Compare(other.v4)
	}
}

// Subnets returns an iterator over the /newCIDR blocks tiling n. It
// fails with ErrCIDRMismatch when newCIDR is shorter than n's own
// prefix or exceeds the family's width.
func (n IPNetwork) Subnets(newCIDR uint8) (*SubnetIterator, error) {
	if n.is6 {
		it, err := n.v6.Subnets(newCIDR)
		if err != nil {
			return nil, err
		}
		return &SubnetIterator{v6: it}, nil
	}
	it, err := n.v4.Subnets(newCIDR)
	if err != nil {
		return nil, err
	}
	return &SubnetIterator{v4: it}, nil
}

// Hosts returns an iterator over the addresses strictly inside n.
func (n IPNetwork) Hosts() *HostIterator {
	if n.is6 {
		return n.v6.Hosts()
	}
	return n.v4.Hosts()
}

// String returns the canonical CIDR notation of n.
func (n IPNetwork) String() string {
	if n.is6 {
		return n.v6.String()
	}
	return n.v4.String()
}

// MarshalText implements encoding.TextMarshaler.
func (n IPNetwork) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *IPNetwork) UnmarshalText(text []byte) error {
	parsed, err := ParseIPNetwork(string(text))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}
