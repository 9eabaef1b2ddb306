package app

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/mkovalev/ipnetwork"
)

// ErrViewNotFound is returned when a configuration entry names an
// unknown report view.
var ErrViewNotFound = errors.New("report view not found")

type viewFunc func(ipnetwork.IPNetwork, viewOptions) (Section, error)

type viewOptions struct {
	subnetPrefix    uint8
	hasSubnetPrefix bool
	maxSubnets      int
	maxHosts        int
}

// inspector builds report sections for single networks. Views are
// dispatched by name, the way resolvers are picked from a configuration
// entry.
type inspector struct {
	logger *slog.Logger
	output OutputConfig
	views  map[string]viewFunc
}

func newInspector(output OutputConfig, logger *slog.Logger) *inspector {
	return &inspector{
		logger: logger,
		output: output,
		views: map[string]viewFunc{
			"summary": summaryView,
			"subnets": subnetsView,
			"hosts":   hostsView,
		},
	}
}

// Inspect produces the configured sections for one network.
func (ins *inspector) Inspect(
	network ipnetwork.IPNetwork,
	viewNames []string,
	opts viewOptions,
) (NetworkReport, error) {
	opts.maxSubnets = ins.output.MaxSubnets
	opts.maxHosts = ins.output.MaxHosts

	report := NetworkReport{
		Network:  network,
		Sections: make([]Section, 0, len(viewNames)),
	}

	for _, viewName := range viewNames {
		view, ok := ins.views[viewName]
		if !ok {
			return NetworkReport{}, fmt.Errorf("%s: %w", viewName, ErrViewNotFound)
		}

		section, err := view(network, opts)
		if err != nil {
			return NetworkReport{}, fmt.Errorf("view %s: %w", viewName, err)
		}
		report.Sections = append(report.Sections, section)
	}

	ins.logger.Debug(
		"inspector: network inspected",
		slog.String("network", network.String()),
		slog.Any("views", viewNames),
	)

	return report, nil
}

func summaryView(network ipnetwork.IPNetwork, _ viewOptions) (Section, error) {
	family := "IPv4"
	if network.Is6() {
		family = "IPv6"
	}

	return Section{
		Title: "summary",
		Lines: []string{
			fmt.Sprintf("family     %s", family),
			fmt.Sprintf("first      %s", network.First()),
			fmt.Sprintf("last       %s", network.Last()),
			fmt.Sprintf("netmask    %s", network.Netmask()),
			fmt.Sprintf("hostcount  %s", network.HostCount()),
		},
	}, nil
}

func subnetsView(network ipnetwork.IPNetwork, opts viewOptions) (Section, error) {
	if !opts.hasSubnetPrefix {
		return Section{}, fmt.Errorf("subnet_prefix is not configured for %s", network)
	}

	iter, err := network.Subnets(opts.subnetPrefix)
	if err != nil {
		return Section{}, err
	}

	section := Section{Title: fmt.Sprintf("subnets /%d", opts.subnetPrefix)}
	for len(section.Lines) < opts.maxSubnets {
		subnet, ok := iter.Next()
		if !ok {
			return section, nil
		}
		section.Lines = append(section.Lines, subnet.String())
	}

	if _, ok := iter.Next(); ok {
		section.Truncated = true
	}
	return section, nil
}

func hostsView(network ipnetwork.IPNetwork, opts viewOptions) (Section, error) {
	iter := network.Hosts()

	section := Section{Title: "hosts"}
	for len(section.Lines) < opts.maxHosts {
		addr, ok := iter.Next()
		if !ok {
			return section, nil
		}
		section.Lines = append(section.Lines, addr.String())
	}

	if _, ok := iter.Next(); ok {
		section.Truncated = true
	}
	return section, nil
}
