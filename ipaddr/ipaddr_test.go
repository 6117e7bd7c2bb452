package ipaddr

import (
	"testing"

	"github.com/stretchr/testify/require"
	"inet.af/netaddr"

	"github.com/go-faster/zerocopy"
)

func TestV4(t *testing.T) {
	ip := netaddr.MustParseIP("127.0.0.1")
	v, ok := ToV4(ip)
	require.True(t, ok)
	require.Equal(t, V4{127, 0, 0, 1}, v)
	require.Equal(t, ip, v.ToIP())
	require.Equal(t, "127.0.0.1", v.String())

	_, ok = ToV4(netaddr.MustParseIP("::1"))
	require.False(t, ok)
}

func TestV6(t *testing.T) {
	ip := netaddr.MustParseIP("2001:db8::1")
	v := ToV6(ip)
	require.Equal(t, ip, v.ToIP())
	require.Equal(t, "2001:db8::1", v.String())
}

func TestPrefix4(t *testing.T) {
	p := Prefix4{IP: V4{10, 0, 0, 0}, Bits: 8}
	require.True(t, p.Contains(V4{10, 1, 2, 3}))
	require.False(t, p.Contains(V4{11, 0, 0, 1}))
}

func TestZeroCopy(t *testing.T) {
	type Route struct {
		Dst     Prefix4
		Gateway V4
		Source  V6
	}
	require.NoError(t, zerocopy.CheckZeroCopy[Route]())

	o := zerocopy.NewOwnedBuf()
	in := []Route{
		{Dst: Prefix4{IP: V4{10, 0, 0, 0}, Bits: 8}, Gateway: V4{10, 0, 0, 1}},
		{Dst: Prefix4{IP: V4{192, 168, 0, 0}, Bits: 16}, Source: ToV6(netaddr.MustParseIP("fe80::1"))},
	}
	ref, err := zerocopy.StoreSlice[Route, uint32](o, in)
	require.NoError(t, err)

	out, err := ref.Load(o.Buf())
	require.NoError(t, err)
	require.Equal(t, in, out)
	require.True(t, out[1].Dst.Contains(V4{192, 168, 1, 1}))
}
