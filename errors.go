package ipnetwork

import "errors"

var (
	// ErrInvalidNetwork is returned when a prefix length is out of range
	// for its address family or the base address does not land on a block
	// boundary for that prefix length.
	ErrInvalidNetwork = errors.New("invalid network")

	// ErrCIDRMismatch is returned when two prefix lengths or address
	// families cannot be combined, such as tiling a block with sub-blocks
	// larger than itself.
	ErrCIDRMismatch = errors.New("cidr mismatch")

	// ErrNetworkParse is returned for malformed CIDR notation: a missing
	// or duplicated separator, an unparseable address or an unparseable
	// prefix length.
	ErrNetworkParse = errors.New("network parse error")
)
