package ipnetwork

import (
	"cmp"
	"encoding/binary"
	"fmt"
	"math"
	"net/netip"
)

// IPv4Network is an IPv4 address block: a base address aligned to the
// block's size plus a prefix length in [0,32]. The zero value is the
// 0.0.0.0/0 block. Networks are immutable and comparable with ==.
type IPv4Network struct {
	first uint32
	cidr  uint8
}

// NewIPv4Network builds the block a.b.c.d/cidr. It fails with
// ErrInvalidNetwork when cidr exceeds 32 or the address is not aligned
// to a /cidr boundary.
func NewIPv4Network(a, b, c, d byte, cidr uint8) (IPv4Network, error) {
	first := uint32(a)<<24 | uint32(b)<<16 | uint32(c)<<8 | uint32(d)
	return ipv4NetworkFromUint32(first, cidr)
}

// IPv4NetworkFromAddr builds the block addr/cidr. IPv4-mapped IPv6
// addresses are unmapped first; any other IPv6 address fails with
// ErrInvalidNetwork.
func IPv4NetworkFromAddr(addr netip.Addr, cidr uint8) (IPv4Network, error) {
	addr = addr.Unmap()
	if !addr.Is4() {
		return IPv4Network{}, fmt.Errorf("%w: %s is not an IPv4 address", ErrInvalidNetwork, addr)
	}
	b := addr.As4()
	return ipv4NetworkFromUint32(binary.BigEndian.Uint32(b[:]), cidr)
}

func ipv4NetworkFromUint32(first uint32, cidr uint8) (IPv4Network, error) {
	if cidr > 32 {
		return IPv4Network{}, fmt.Errorf("%w: prefix length /%d exceeds 32 bits", ErrInvalidNetwork, cidr)
	}
	if uint64(first)&hostSpan32(cidr) != 0 {
		return IPv4Network{}, fmt.Errorf(
			"%w: %s is not aligned to a /%d boundary",
			ErrInvalidNetwork, addrFromUint32(first), cidr,
		)
	}
	return IPv4Network{first: first, cidr: cidr}, nil
}

// ParseIPv4Network parses dotted-quad CIDR notation such as "1.1.1.0/24".
// Malformed input fails with ErrNetworkParse; well-formed but misaligned
// input fails with ErrInvalidNetwork.
func ParseIPv4Network(s string) (IPv4Network, error) {
	addr, cidr, err := splitCIDR(s)
	if err != nil {
		return IPv4Network{}, err
	}
	if !addr.Is4() {
		return IPv4Network{}, fmt.Errorf("%w: %q: not an IPv4 address", ErrNetworkParse, s)
	}
	return IPv4NetworkFromAddr(addr, cidr)
}

// MustParseIPv4Network is ParseIPv4Network for inputs known to be valid.
// It panics on error.
func MustParseIPv4Network(s string) IPv4Network {
	n, err := ParseIPv4Network(s)
	if err != nil {
		panic(err)
	}
	return n
}

// First returns the block's base address.
func (n IPv4Network) First() netip.Addr {
	return addrFromUint32(n.first)
}

// Last returns the block's final address.
func (n IPv4Network) Last() netip.Addr {
	return addrFromUint32(uint32(n.lastU()))
}

// CIDR returns the prefix length.
func (n IPv4Network) CIDR() uint8 {
	return n.cidr
}

// HostCount returns the number of addresses the block spans, including
// the base and final addresses.
func (n IPv4Network) HostCount() uint64 {
	return hostSpan32(n.cidr) + 1
}

// Netmask returns the conventional prefix mask, e.g. 255.255.255.0 for
// a /24 block.
func (n IPv4Network) Netmask() netip.Addr {
	return addrFromUint32(^uint32(hostSpan32(n.cidr)))
}

// Prefix returns the block as a netip.Prefix.
func (n IPv4Network) Prefix() netip.Prefix {
	return netip.PrefixFrom(n.First(), int(n.cidr))
}

// Contains reports whether addr lies strictly inside the block. The
// base and final addresses themselves are not contained. IPv4-mapped
// IPv6 addresses are unmapped first; other IPv6 addresses report false.
func (n IPv4Network) Contains(addr netip.Addr) bool {
	addr = addr.Unmap()
	if !addr.Is4() {
		return false
	}
	b := addr.As4()
	v := uint64(binary.BigEndian.Uint32(b[:]))
	return v > n.firstU() && v < n.lastU()
}

// IsSubnet reports whether other is a subnet of n, i.e. n's address
// range fully encloses other's.
func (n IPv4Network) IsSubnet(other IPv4Network) bool {
	return n.firstU() <= other.firstU() && other.lastU() <= n.lastU()
}

// IsSupernet reports whether other is a supernet of n, i.e. other's
// address range fully encloses n's.
func (n IPv4Network) IsSupernet(other IPv4Network) bool {
	return n.firstU() >= other.firstU() && other.lastU() >= n.lastU()
}

// Compare orders blocks by base address, then by prefix length, so a
// larger block sorts before a more specific one sharing its base.
func (n IPv4Network) Compare(other IPv4Network) int {
	if c := cmp.Compare(n.first, other.first); c != 0 {
		return c
	}
	return cmp.Compare(n.cidr, other.cidr)
}

// Subnets returns an iterator over the /newCIDR blocks tiling n. It
// fails with ErrCIDRMismatch when newCIDR is shorter than n's own
// prefix or exceeds 32 bits.
func (n IPv4Network) Subnets(newCIDR uint8) (*IPv4SubnetIterator, error) {
	if newCIDR > 32 || newCIDR < n.cidr {
		return nil, fmt.Errorf("%w: cannot tile a /%d block with /%d blocks", ErrCIDRMismatch, n.cidr, newCIDR)
	}
	return &IPv4SubnetIterator{
		current:  n.firstU(),
		max:      n.lastU(),
		stepping: hostSpan32(newCIDR) + 1,
		cidr:     newCIDR,
	}, nil
}

// Hosts returns an iterator over the addresses strictly inside n, in
// ascending order. The enumerated set is exactly the set for which
// Contains reports true.
func (n IPv4Network) Hosts() *HostIterator {
	return &HostIterator{current: n.First(), last: n.Last()}
}

// String returns the canonical CIDR notation of n.
func (n IPv4Network) String() string {
	return n.Prefix().String()
}

// MarshalText implements encoding.TextMarshaler.
func (n IPv4Network) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *IPv4Network) UnmarshalText(text []byte) error {
	parsed, err := ParseIPv4Network(string(text))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// firstU and lastU widen to uint64 so that /0 arithmetic cannot wrap.
func (n IPv4Network) firstU() uint64 {
	return uint64(n.first)
}

func (n IPv4Network) lastU() uint64 {
	return n.firstU() + hostSpan32(n.cidr)
}

func addrFromUint32(v uint32) netip.Addr {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	return netip.AddrFrom4(b)
}

const maxUint32 = uint64(math.MaxUint32)
