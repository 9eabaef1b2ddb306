package app

import (
	"fmt"
	"net/netip"

	"github.com/mkovalev/ipnetwork"

	"go4.org/netipx"
)

// Aggregate merges blocks of both families into the minimal equivalent
// list of prefixes: overlapping and adjacent blocks collapse, nested
// blocks disappear into their supernets.
func Aggregate(networks []ipnetwork.IPNetwork) ([]netip.Prefix, error) {
	if len(networks) == 0 {
		return nil, nil
	}

	var builder netipx.IPSetBuilder
	for _, network := range networks {
		builder.AddPrefix(network.Prefix())
	}

	set, err := builder.IPSet()
	if err != nil {
		return nil, fmt.Errorf("aggregating networks: %w", err)
	}

	return set.Prefixes(), nil
}
