package ipnetwork

import (
	"fmt"
	"net/netip"
	"strconv"
	"strings"
)

// splitCIDR splits "addr/prefix" notation and parses both halves. The
// address family is left for the caller to check. Failures here are
// always ErrNetworkParse; alignment is judged later by the constructors.
func splitCIDR(s string) (netip.Addr, uint8, error) {
	addrPart, cidrPart, found := strings.Cut(s, "/")
	if !found || strings.Contains(cidrPart, "/") {
		return netip.Addr{}, 0, fmt.Errorf("%w: %q: want address/prefix", ErrNetworkParse, s)
	}

	addr, err := netip.ParseAddr(addrPart)
	if err != nil {
		return netip.Addr{}, 0, fmt.Errorf("%w: %q: bad address", ErrNetworkParse, s)
	}
	if addr.Zone() != "" {
		// A zoned address never names an address block.
		return netip.Addr{}, 0, fmt.Errorf("%w: %q: zone is not allowed", ErrNetworkParse, s)
	}

	cidr, err := strconv.ParseUint(cidrPart, 10, 8)
	if err != nil {
		return netip.Addr{}, 0, fmt.Errorf("%w: %q: bad prefix length", ErrNetworkParse, s)
	}

	return addr, uint8(cidr), nil
}
