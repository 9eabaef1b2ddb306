package ipnetwork_test

import (
	"encoding/json"
	"math/big"
	"net/netip"
	"slices"
	"testing"

	"github.com/mkovalev/ipnetwork"

	"github.com/stretchr/testify/require"
)

func TestParseIPNetworkDispatch(t *testing.T) {
	v4, err := ipnetwork.ParseIPNetwork("1.1.1.0/24")
	require.NoError(t, err)
	require.True(t, v4.Is4())
	require.False(t, v4.Is6())

	inner4, ok := v4.V4()
	require.True(t, ok)
	require.Equal(t, ipnetwork.MustParseIPv4Network("1.1.1.0/24"), inner4)
	_, ok = v4.V6()
	require.False(t, ok)

	v6, err := ipnetwork.ParseIPNetwork("2001:db8::/32")
	require.NoError(t, err)
	require.True(t, v6.Is6())

	inner6, ok := v6.V6()
	require.True(t, ok)
	require.Equal(t, ipnetwork.MustParseIPv6Network("2001:db8::/32"), inner6)
}

func TestParseIPNetworkErrors(t *testing.T) {
	_, err := ipnetwork.ParseIPNetwork("1.1.1.1")
	require.ErrorIs(t, err, ipnetwork.ErrNetworkParse)

	_, err = ipnetwork.ParseIPNetwork("1.1.1.1/24")
	require.ErrorIs(t, err, ipnetwork.ErrInvalidNetwork)

	_, err = ipnetwork.ParseIPNetwork("2001:db8::1/64")
	require.ErrorIs(t, err, ipnetwork.ErrInvalidNetwork)
}

func TestIPNetworkZeroValue(t *testing.T) {
	var network ipnetwork.IPNetwork

	require.True(t, network.Is4())
	require.Equal(t, "0.0.0.0/0", network.String())
}

func TestIPNetworkEquality(t *testing.T) {
	a := ipnetwork.MustParseIPNetwork("1.1.1.0/24")
	b := ipnetwork.MustParseIPNetwork("1.1.1.0/24")
	c := ipnetwork.MustParseIPNetwork("2001:db8::/32")

	require.True(t, a == b)
	require.False(t, a == c)
}

func TestIPNetworkCompare(t *testing.T) {
	networks := []ipnetwork.IPNetwork{
		ipnetwork.MustParseIPNetwork("2001:db8::/32"),
		ipnetwork.MustParseIPNetwork("10.0.0.0/8"),
		ipnetwork.MustParseIPNetwork("::/0"),
		ipnetwork.MustParseIPNetwork("10.0.0.0/24"),
		ipnetwork.MustParseIPNetwork("1.0.0.0/8"),
	}

	slices.SortFunc(networks, ipnetwork.IPNetwork.Compare)

	want := []string{"1.0.0.0/8", "10.0.0.0/8", "10.0.0.0/24", "::/0", "2001:db8::/32"}
	for i, network := range networks {
		require.Equal(t, want[i], network.String())
	}
}

func TestIPNetworkQueries(t *testing.T) {
	network := ipnetwork.MustParseIPNetwork("1.1.1.0/24")

	require.Equal(t, netip.MustParseAddr("1.1.1.0"), network.First())
	require.Equal(t, netip.MustParseAddr("1.1.1.255"), network.Last())
	require.Equal(t, netip.MustParseAddr("255.255.255.0"), network.Netmask())
	require.Equal(t, uint8(24), network.CIDR())
	require.Zero(t, big.NewInt(256).Cmp(network.HostCount()))
	require.True(t, network.Contains(netip.MustParseAddr("1.1.1.1")))
	require.False(t, network.Contains(netip.MustParseAddr("1.1.1.0")))
}

func TestIPNetworkSubnetCrossFamily(t *testing.T) {
	v4 := ipnetwork.MustParseIPNetwork("0.0.0.0/0")
	v6 := ipnetwork.MustParseIPNetwork("::/0")

	require.False(t, v4.IsSubnet(v6))
	require.False(t, v6.IsSubnet(v4))
	require.False(t, v4.IsSupernet(v6))
	require.False(t, v6.IsSupernet(v4))
}

func TestIPNetworkSubnets(t *testing.T) {
	network := ipnetwork.MustParseIPNetwork("10.0.0.0/22")

	iter, err := network.Subnets(24)
	require.NoError(t, err)

	var subnets []string
	for {
		subnet, ok := iter.Next()
		if !ok {
			break
		}
		subnets = append(subnets, subnet.String())
	}

	require.Equal(t, []string{"10.0.1.0/24", "10.0.2.0/24", "10.0.3.0/24", "10.0.4.0/24"}, subnets)

	_, err = network.Subnets(8)
	require.ErrorIs(t, err, ipnetwork.ErrCIDRMismatch)
}

func TestIPNetworkHosts(t *testing.T) {
	network := ipnetwork.MustParseIPNetwork("2001:db8::/126")

	iter := network.Hosts()
	addr, ok := iter.Next()
	require.True(t, ok)
	require.Equal(t, netip.MustParseAddr("2001:db8::1"), addr)
}

func TestIPNetworkJSONRoundTrip(t *testing.T) {
	type routeRule struct {
		Destination ipnetwork.IPNetwork `json:"destination"`
	}

	rule := routeRule{Destination: ipnetwork.MustParseIPNetwork("2001:db8::/32")}

	data, err := json.Marshal(rule)
	require.NoError(t, err)
	require.JSONEq(t, `{"destination":"2001:db8::/32"}`, string(data))

	var decoded routeRule
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, rule, decoded)

	require.Error(t, json.Unmarshal([]byte(`{"destination":"bogus"}`), &decoded))
}
