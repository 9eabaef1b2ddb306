package ipnetwork

import (
	"cmp"
	"fmt"
	"math/big"
	"net/netip"
)

// IPv6Network is an IPv6 address block: a base address aligned to the
// block's size plus a prefix length in [0,128]. The zero value is the
// ::/0 block. Networks are immutable and comparable with ==.
type IPv6Network struct {
	first uint128
	cidr  uint8
}

// NewIPv6Network builds the block addr/cidr. It fails with
// ErrInvalidNetwork when addr is not an IPv6 address, carries a zone,
// cidr exceeds 128 or the address is not aligned to a /cidr boundary.
func NewIPv6Network(addr netip.Addr, cidr uint8) (IPv6Network, error) {
	if !addr.Is6() {
		return IPv6Network{}, fmt.Errorf("%w: %s is not an IPv6 address", ErrInvalidNetwork, addr)
	}
	if addr.Zone() != "" {
		return IPv6Network{}, fmt.Errorf("%w: %s: zone is not allowed", ErrInvalidNetwork, addr)
	}
	return ipv6NetworkFromUint128(uint128From16(addr.As16()), cidr)
}

func ipv6NetworkFromUint128(first uint128, cidr uint8) (IPv6Network, error) {
	if cidr > 128 {
		return IPv6Network{}, fmt.Errorf("%w: prefix length /%d exceeds 128 bits", ErrInvalidNetwork, cidr)
	}
	if !first.and(hostSpan128(cidr)).isZero() {
		return IPv6Network{}, fmt.Errorf(
			"%w: %s is not aligned to a /%d boundary",
			ErrInvalidNetwork, netip.AddrFrom16(first.to16()), cidr,
		)
	}
	return IPv6Network{first: first, cidr: cidr}, nil
}

// ParseIPv6Network parses colon-hex CIDR notation such as "2001:db8::/32".
// Malformed input fails with ErrNetworkParse; well-formed but misaligned
// input fails with ErrInvalidNetwork.
func ParseIPv6Network(s string) (IPv6Network, error) {
	addr, cidr, err := splitCIDR(s)
	if err != nil {
		return IPv6Network{}, err
	}
	if !addr.Is6() {
		return IPv6Network{}, fmt.Errorf("%w: %q: not an IPv6 address", ErrNetworkParse, s)
	}
	return NewIPv6Network(addr, cidr)
}

// MustParseIPv6Network is ParseIPv6Network for inputs known to be valid.
// It panics on error.
func MustParseIPv6Network(s string) IPv6Network {
	n, err := ParseIPv6Network(s)
	if err != nil {
		panic(err)
	}
	return n
}

// First returns the block's base address.
func (n IPv6Network) First() netip.Addr {
	return netip.AddrFrom16(n.first.to16())
}

// Last returns the block's final address.
func (n IPv6Network) Last() netip.Addr {
	return netip.AddrFrom16(n.lastU().to16())
}

// CIDR returns the prefix length.
func (n IPv6Network) CIDR() uint8 {
	return n.cidr
}

// HostCount returns the number of addresses the block spans, including
// the base and final addresses. The count reaches 2^128 for ::/0, so it
// is returned as a big.Int.
func (n IPv6Network) HostCount() *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), uint(128-n.cidr))
}

// Netmask returns the conventional prefix mask, e.g.
// ffff:ffff:ffff:ffff:: for a /64 block.
func (n IPv6Network) Netmask() netip.Addr {
	return netip.AddrFrom16(hostSpan128(n.cidr).not().to16())
}

// Prefix returns the block as a netip.Prefix.
func (n IPv6Network) Prefix() netip.Prefix {
	return netip.PrefixFrom(n.First(), int(n.cidr))
}

// Contains reports whether addr lies strictly inside the block. The
// base and final addresses themselves are not contained. IPv4 addresses
// report false.
func (n IPv6Network) Contains(addr netip.Addr) bool {
	if !addr.Is6() || addr.Zone() != "" {
		return false
	}
	v := uint128From16(addr.As16())
	return n.first.less(v) && v.less(n.lastU())
}

// IsSubnet reports whether other is a subnet of n, i.e. n's address
// range fully encloses other's.
func (n IPv6Network) IsSubnet(other IPv6Network) bool {
	return n.first.compare(other.first) <= 0 && other.lastU().compare(n.lastU()) <= 0
}

// IsSupernet reports whether other is a supernet of n, i.e. other's
// address range fully encloses n's.
func (n IPv6Network) IsSupernet(other IPv6Network) bool {
	return n.first.compare(other.first) >= 0 && other.lastU().compare(n.lastU()) >= 0
}

// Compare orders blocks by base address, then by prefix length, so a
// larger block sorts before a more specific one sharing its base.
func (n IPv6Network) Compare(other IPv6Network) int {
	if c := n.first.compare(other.first); c != 0 {
		return c
	}
	return cmp.Compare(n.cidr, other.cidr)
}

// Subnets returns an iterator over the /newCIDR blocks tiling n. It
// fails with ErrCIDRMismatch when newCIDR is shorter than n's own
// prefix or exceeds 128 bits.
func (n IPv6Network) Subnets(newCIDR uint8) (*IPv6SubnetIterator, error) {
	if newCIDR > 128 || newCIDR < n.cidr {
		return nil, fmt.Errorf("%w: cannot tile a /%d block with /%d blocks", ErrCIDRMismatch, n.cidr, newCIDR)
	}
	return &IPv6SubnetIterator{
		current: n.first,
		max:     n.lastU(),
		span:    hostSpan128(newCIDR),
		cidr:    newCIDR,
	}, nil
}

// Hosts returns an iterator over the addresses strictly inside n, in
// ascending order. The enumerated set is exactly the set for which
// Contains reports true.
func (n IPv6Network) Hosts() *HostIterator {
	return &HostIterator{current: n.First(), last: n.Last()}
}

// String returns the canonical CIDR notation of n.
func (n IPv6Network) String() string {
	return n.Prefix().String()
}

// MarshalText implements encoding.TextMarshaler.
func (n IPv6Network) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *IPv6Network) UnmarshalText(text []byte) error {
	parsed, err := ParseIPv6Network(string(text))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

func (n IPv6Network) lastU() uint128 {
	// The base address is aligned, so adding the span cannot wrap.
	last, _ := n.first.add(hostSpan128(n.cidr))
	return last
}
