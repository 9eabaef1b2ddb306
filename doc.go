// Package ipnetwork models IPv4 and IPv6 address blocks in CIDR notation:
// parsing, derived quantities (first and last address, netmask, host count),
// containment and subnet/supernet relations, and lazy enumeration of
// sub-blocks and host addresses.
//
// Networks are immutable values. IPv4Network and IPv6Network carry a base
// address and a prefix length; the base address is always aligned to the
// block's own size. IPNetwork is a closed union over the two, letting
// callers handle both families uniformly.
//
// All enumeration is pull-based: Subnets and Hosts return cursors whose
// Next method the caller drives, so even a /0 block can be walked without
// materializing it.
package ipnetwork
