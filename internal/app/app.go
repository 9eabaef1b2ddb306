// Package app turns a configuration of networks into a rendered report:
// per-network summary, subnet and host sections plus an aggregated
// prefix list across all entries.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/mkovalev/ipnetwork"

	"golang.org/x/sync/errgroup"
)

type App struct {
	conf      Config
	logger    *slog.Logger
	inspector *inspector
}

func New(conf Config, logger *slog.Logger) *App {
	return &App{
		conf:      conf,
		logger:    logger,
		inspector: newInspector(conf.Output, logger),
	}
}

// Run inspects every configured network and writes the report to w.
// Entries are processed concurrently; the report keeps configuration
// order.
func (a *App) Run(ctx context.Context, w io.Writer) error {
	a.logger.Info("inspecting networks", slog.Int("count", len(a.conf.Networks)))

	var (
		networks = make([]ipnetwork.IPNetwork, len(a.conf.Networks))
		reports  = make([]NetworkReport, len(a.conf.Networks))
	)

	eg, ctx := errgroup.WithContext(ctx)
	for i, entry := range a.conf.Networks {
		i, entry := i, entry

		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			network, err := ipnetwork.ParseIPNetwork(entry.CIDR)
			if err != nil {
				return fmt.Errorf("networks[%d]: %w", i, err)
			}
			networks[i] = network

			prefix, hasPrefix := entry.GetSubnetPrefix(a.conf.Defaults)
			report, err := a.inspector.Inspect(
				network,
				entry.GetViews(a.conf.Defaults),
				viewOptions{subnetPrefix: prefix, hasSubnetPrefix: hasPrefix},
			)
			if err != nil {
				return fmt.Errorf("networks[%d]: %w", i, err)
			}
			reports[i] = report

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return err
	}

	aggregated, err := Aggregate(networks)
	if err != nil {
		return err
	}

	report := Report{Networks: reports, Aggregated: aggregated}
	if err := report.Render(w); err != nil {
		return fmt.Errorf("rendering report: %w", err)
	}

	a.logger.Info("report complete", slog.Int("networks", len(reports)))
	return nil
}
