package app

import (
	"bytes"
	"context"
	"net/netip"
	"testing"

	"github.com/mkovalev/ipnetwork"

	"github.com/stretchr/testify/require"
)

func TestAppRun(t *testing.T) {
	conf, err := ParseConfig("testdata/config.toml")
	require.NoError(t, err)

	var out bytes.Buffer
	a := New(conf, discardLogger())
	require.NoError(t, a.Run(context.Background(), &out))

	report := out.String()
	require.Contains(t, report, "10.0.0.0/22\n")
	require.Contains(t, report, "subnets /24:\n")
	require.Contains(t, report, "    10.0.1.0/24\n")
	require.Contains(t, report, "2001:db8::/126\n")
	require.Contains(t, report, "    2001:db8::1\n")
	require.Contains(t, report, "aggregated:\n")
	require.Contains(t, report, "  10.0.0.0/22\n")
}

func TestAppRunBadNetwork(t *testing.T) {
	conf := Config{
		Output:   OutputConfig{MaxSubnets: 4, MaxHosts: 4},
		Networks: []NetworkConfig{{CIDR: "10.0.0.1/8"}},
	}

	var out bytes.Buffer
	a := New(conf, discardLogger())
	err := a.Run(context.Background(), &out)

	require.ErrorIs(t, err, ipnetwork.ErrInvalidNetwork)
}

func TestAggregate(t *testing.T) {
	prefixes, err := Aggregate([]ipnetwork.IPNetwork{
		ipnetwork.MustParseIPNetwork("10.0.0.0/24"),
		ipnetwork.MustParseIPNetwork("10.0.1.0/24"),
		ipnetwork.MustParseIPNetwork("10.0.0.128/25"), // nested, disappears
		ipnetwork.MustParseIPNetwork("2001:db8::/32"),
	})

	require.NoError(t, err)
	require.Equal(t, []netip.Prefix{
		netip.MustParsePrefix("10.0.0.0/23"),
		netip.MustParsePrefix("2001:db8::/32"),
	}, prefixes)
}

func TestAggregateEmpty(t *testing.T) {
	prefixes, err := Aggregate(nil)

	require.NoError(t, err)
	require.Empty(t, prefixes)
}
