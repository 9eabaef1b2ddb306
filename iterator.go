package ipnetwork

import "net/netip"

// IPv4SubnetIterator enumerates the fixed-size sub-blocks of an IPv4
// block in ascending base-address order. It is a finite, forward-only
// cursor obtained from IPv4Network.Subnets; it is not safe for
// concurrent use.
//
// The advancement steps before emitting, so the sub-block sharing the
// parent's base address is never produced and enumeration instead runs
// one step past the parent's extent, stopping early only when that
// address cannot start a block.
type IPv4SubnetIterator struct {
	current  uint64
	max      uint64
	stepping uint64
	cidr     uint8
}

// Next returns the next sub-block. ok is false once the sequence is
// exhausted; exhausted iterators stay exhausted.
func (it *IPv4SubnetIterator) Next() (n IPv4Network, ok bool) {
	if it.current >= it.max {
		return IPv4Network{}, false
	}
	it.current += it.stepping
	if it.current > maxUint32 {
		// Ran off the top of the address space.
		it.current = it.max
		return IPv4Network{}, false
	}
	n, err := ipv4NetworkFromUint32(uint32(it.current), it.cidr)
	if err != nil {
		it.current = it.max
		return IPv4Network{}, false
	}
	return n, true
}

// IPv6SubnetIterator is the IPv6 counterpart of IPv4SubnetIterator,
// obtained from IPv6Network.Subnets.
type IPv6SubnetIterator struct {
	current uint128
	max     uint128
	// span is the stepping minus one: a /0 stepping of 2^128 has no
	// 128-bit representation.
	span uint128
	cidr uint8
}

// Next returns the next sub-block. ok is false once the sequence is
// exhausted; exhausted iterators stay exhausted.
func (it *IPv6SubnetIterator) Next() (n IPv6Network, ok bool) {
	if it.current.compare(it.max) >= 0 {
		return IPv6Network{}, false
	}
	next, carry := it.current.add(it.span)
	next, carryOne := next.addOne()
	if carry || carryOne {
		it.current = it.max
		return IPv6Network{}, false
	}
	it.current = next
	n, err := ipv6NetworkFromUint128(next, it.cidr)
	if err != nil {
		it.current = it.max
		return IPv6Network{}, false
	}
	return n, true
}

// SubnetIterator enumerates sub-blocks of either family as IPNetwork
// values, obtained from IPNetwork.Subnets.
type SubnetIterator struct {
	v4 *IPv4SubnetIterator
	v6 *IPv6SubnetIterator
}

// Next returns the next sub-block. ok is false once the sequence is
// exhausted.
func (it *SubnetIterator) Next() (IPNetwork, bool) {
	if it.v6 != nil {
		n, ok := it.v6.Next()
		if !ok {
			return IPNetwork{}, false
		}
		return IPNetworkFrom6(n), true
	}
	n, ok := it.v4.Next()
	if !ok {
		return IPNetwork{}, false
	}
	return IPNetworkFrom4(n), true
}

// HostIterator enumerates the addresses strictly inside a block in
// ascending order, skipping the base and final addresses so that the
// produced set matches Contains exactly. Blocks of two addresses or
// fewer therefore produce nothing.
type HostIterator struct {
	current netip.Addr
	last    netip.Addr
}

// Next returns the next host address. ok is false once the sequence is
// exhausted.
func (it *HostIterator) Next() (netip.Addr, bool) {
	next := it.current.Next()
	if !next.IsValid() || next.Compare(it.last) >= 0 {
		return netip.Addr{}, false
	}
	it.current = next
	return next, true
}
