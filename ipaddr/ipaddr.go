// Package ipaddr implements IP addresses as ZeroCopy values.
package ipaddr

import "inet.af/netaddr"

// V4 represents IPv4 address in network byte order.
//
// Unlike netaddr.IP, V4 is plain bytes and can be stored in buffer.
type V4 [4]byte

// ToIP represents v as netaddr.IP.
func (v V4) ToIP() netaddr.IP {
	return netaddr.IPFrom4(v)
}

func (v V4) String() string { return v.ToIP().String() }

// ToV4 represents ip as V4. Reports false if ip is not IPv4.
func ToV4(ip netaddr.IP) (V4, bool) {
	if !ip.Is4() {
		return V4{}, false
	}
	return ip.As4(), true
}

// V6 represents IPv6 address in network byte order.
type V6 [16]byte

// ToIP represents v as netaddr.IP.
func (v V6) ToIP() netaddr.IP {
	return netaddr.IPv6Raw(v)
}

func (v V6) String() string { return v.ToIP().String() }

// ToV6 represents ip as V6, mapping IPv4 addresses to IPv6.
func ToV6(ip netaddr.IP) V6 {
	return ip.As16()
}

// Prefix4 is IPv4 network prefix.
type Prefix4 struct {
	IP   V4
	Bits uint8
}

// ToPrefix represents p as netaddr.IPPrefix.
func (p Prefix4) ToPrefix() netaddr.IPPrefix {
	return netaddr.IPPrefixFrom(p.IP.ToIP(), p.Bits)
}

// Contains reports whether p contains ip.
func (p Prefix4) Contains(ip V4) bool {
	return p.ToPrefix().Contains(ip.ToIP())
}
