package app

import (
	"fmt"
	"io"
	"net/netip"

	"github.com/mkovalev/ipnetwork"
)

// Report is the rendered outcome of one inspection run.
type Report struct {
	Networks   []NetworkReport
	Aggregated []netip.Prefix
}

// NetworkReport holds the sections produced for a single network.
type NetworkReport struct {
	Network  ipnetwork.IPNetwork
	Sections []Section
}

// Section is one titled block of report lines. Truncated is set when an
// enumeration hit the configured output cap.
type Section struct {
	Title     string
	Lines     []string
	Truncated bool
}

// Render writes the report in plain text.
func (r Report) Render(w io.Writer) error {
	for _, network := range r.Networks {
		if _, err := fmt.Fprintf(w, "%s\n", network.Network); err != nil {
			return err
		}
		for _, section := range network.Sections {
			if _, err := fmt.Fprintf(w, "  %s:\n", section.Title); err != nil {
				return err
			}
			for _, line := range section.Lines {
				if _, err := fmt.Fprintf(w, "    %s\n", line); err != nil {
					return err
				}
			}
			if section.Truncated {
				if _, err := fmt.Fprintln(w, "    ..."); err != nil {
					return err
				}
			}
		}
	}

	if len(r.Aggregated) > 0 {
		if _, err := fmt.Fprintln(w, "aggregated:"); err != nil {
			return err
		}
		for _, prefix := range r.Aggregated {
			if _, err := fmt.Fprintf(w, "  %s\n", prefix); err != nil {
				return err
			}
		}
	}

	return nil
}
