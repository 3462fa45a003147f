package protocol

import (
	"net"

	"github.com/msgboxio/packets"
)

// Ip6AddrPrefix is the 17-octet form used by INTERNAL_IP6_ADDRESS and
// INTERNAL_IP6_SUBNET: a 16-byte address followed by a prefix length.
type Ip6AddrPrefix struct {
	Address      net.IP
	PrefixLength uint8
}

// Ip4Subnet is the 8-octet form used by INTERNAL_IP4_SUBNET.
type Ip4Subnet struct {
	Address net.IP
	Netmask net.IPMask
}

// CPAttributes is the typed view of a configuration payload's attribute
// list. Zero-length request attributes are kept as nil entries in the
// list-valued fields so CFG_REQUEST round-trips.
type CPAttributes struct {
	Ip4Address []net.IP
	Ip4Netmask net.IPMask
	Ip4Dns     []net.IP
	Ip4Nbns    []net.IP
	Ip4Dhcp    []net.IP

	AppVersion    string
	HasAppVersion bool

	Ip6Address []*Ip6AddrPrefix
	Ip6Dns     []net.IP
	Ip6Dhcp    []net.IP
	Ip6Subnet  []*Ip6AddrPrefix
	Ip4Subnet  []*Ip4Subnet

	SupportedAttributes []ConfigurationAttributeType
	HasSupported        bool

	// attribute types this package does not know
	Unknown []*ConfigurationAttribute
}

func cpIp4(value []byte, at ConfigurationAttributeType) (net.IP, error) {
	switch len(value) {
	case 0:
		return nil, nil
	case net.IPv4len:
		return net.IP(append([]byte{}, value...)), nil
	}
	return nil, ErrF(ERR_INVALID_SYNTAX, "%s: bad length %d", at, len(value))
}

func cpIp6(value []byte, at ConfigurationAttributeType) (net.IP, error) {
	switch len(value) {
	case 0:
		return nil, nil
	case net.IPv6len:
		return net.IP(append([]byte{}, value...)), nil
	}
	return nil, ErrF(ERR_INVALID_SYNTAX, "%s: bad length %d", at, len(value))
}

func cpIp6Prefix(value []byte, at ConfigurationAttributeType) (*Ip6AddrPrefix, error) {
	switch len(value) {
	case 0:
		return nil, nil
	case net.IPv6len + 1:
		return &Ip6AddrPrefix{
			Address:      net.IP(append([]byte{}, value[:net.IPv6len]...)),
			PrefixLength: value[net.IPv6len],
		}, nil
	}
	return nil, ErrF(ERR_INVALID_SYNTAX, "%s: bad length %d", at, len(value))
}

// DecodeCPAttributes buckets a configuration payload's attributes by
// type, validating the per-type value lengths from RFC 7296 section 3.15.1.
func DecodeCPAttributes(cp *ConfigurationPayload) (*CPAttributes, error) {
	attrs := &CPAttributes{}
	for _, ca := range cp.ConfigurationAttributes {
		switch ca.ConfigurationAttributeType {
		case INTERNAL_IP4_ADDRESS:
			ip, err := cpIp4(ca.Value, ca.ConfigurationAttributeType)
			if err != nil {
				return nil, err
			}
			attrs.Ip4Address = append(attrs.Ip4Address, ip)
		case INTERNAL_IP4_NETMASK:
			ip, err := cpIp4(ca.Value, ca.ConfigurationAttributeType)
			if err != nil {
				return nil, err
			}
			attrs.Ip4Netmask = net.IPMask(ip)
		case INTERNAL_IP4_DNS:
			ip, err := cpIp4(ca.Value, ca.ConfigurationAttributeType)
			if err != nil {
				return nil, err
			}
			attrs.Ip4Dns = append(attrs.Ip4Dns, ip)
		case INTERNAL_IP4_NBNS:
			ip, err := cpIp4(ca.Value, ca.ConfigurationAttributeType)
			if err != nil {
				return nil, err
			}
			attrs.Ip4Nbns = append(attrs.Ip4Nbns, ip)
		case INTERNAL_IP4_DHCP:
			ip, err := cpIp4(ca.Value, ca.ConfigurationAttributeType)
			if err != nil {
				return nil, err
			}
			attrs.Ip4Dhcp = append(attrs.Ip4Dhcp, ip)
		case APPLICATION_VERSION:
			attrs.AppVersion = string(ca.Value)
			attrs.HasAppVersion = true
		case INTERNAL_IP6_ADDRESS:
			ap, err := cpIp6Prefix(ca.Value, ca.ConfigurationAttributeType)
			if err != nil {
				return nil, err
			}
			attrs.Ip6Address = append(attrs.Ip6Address, ap)
		case INTERNAL_IP6_DNS:
			ip, err := cpIp6(ca.Value, ca.ConfigurationAttributeType)
			if err != nil {
				return nil, err
			}
			attrs.Ip6Dns = append(attrs.Ip6Dns, ip)
		case INTERNAL_IP6_DHCP:
			ip, err := cpIp6(ca.Value, ca.ConfigurationAttributeType)
			if err != nil {
				return nil, err
			}
			attrs.Ip6Dhcp = append(attrs.Ip6Dhcp, ip)
		case INTERNAL_IP4_SUBNET:
			switch len(ca.Value) {
			case 0:
				attrs.Ip4Subnet = append(attrs.Ip4Subnet, nil)
			case 2 * net.IPv4len:
				attrs.Ip4Subnet = append(attrs.Ip4Subnet, &Ip4Subnet{
					Address: net.IP(append([]byte{}, ca.Value[:net.IPv4len]...)),
					Netmask: net.IPMask(append([]byte{}, ca.Value[net.IPv4len:]...)),
				})
			default:
				return nil, ErrF(ERR_INVALID_SYNTAX, "%s: bad length %d",
					ca.ConfigurationAttributeType, len(ca.Value))
			}
		case SUPPORTED_ATTRIBUTES:
			if len(ca.Value)%2 != 0 {
				return nil, ErrF(ERR_INVALID_SYNTAX, "%s: bad length %d",
					ca.ConfigurationAttributeType, len(ca.Value))
			}
			for off := 0; off < len(ca.Value); off += 2 {
				at, _ := packets.ReadB16(ca.Value, off)
				attrs.SupportedAttributes = append(attrs.SupportedAttributes,
					ConfigurationAttributeType(at&0x7fff))
			}
			attrs.HasSupported = true
		case INTERNAL_IP6_SUBNET:
			ap, err := cpIp6Prefix(ca.Value, ca.ConfigurationAttributeType)
			if err != nil {
				return nil, err
			}
			if ap == nil {
				return nil, ErrF(ERR_INVALID_SYNTAX, "%s: bad length 0",
					ca.ConfigurationAttributeType)
			}
			attrs.Ip6Subnet = append(attrs.Ip6Subnet, ap)
		default:
			attrs.Unknown = append(attrs.Unknown, ca)
		}
	}
	return attrs, nil
}

func appendCpIp4(list []*ConfigurationAttribute, at ConfigurationAttributeType, ips []net.IP) []*ConfigurationAttribute {
	for _, ip := range ips {
		var value []byte
		if ip4 := ip.To4(); ip4 != nil {
			value = ip4
		}
		list = append(list, &ConfigurationAttribute{at, value})
	}
	return list
}

func appendCpIp6(list []*ConfigurationAttribute, at ConfigurationAttributeType, ips []net.IP) []*ConfigurationAttribute {
	for _, ip := range ips {
		var value []byte
		if ip16 := ip.To16(); ip16 != nil {
			value = ip16
		}
		list = append(list, &ConfigurationAttribute{at, value})
	}
	return list
}

func appendCpIp6Prefix(list []*ConfigurationAttribute, at ConfigurationAttributeType, aps []*Ip6AddrPrefix) []*ConfigurationAttribute {
	for _, ap := range aps {
		var value []byte
		if ap != nil {
			value = append(append([]byte{}, ap.Address.To16()...), ap.PrefixLength)
		}
		list = append(list, &ConfigurationAttribute{at, value})
	}
	return list
}

// ToPayload lowers the typed view back into a configuration payload,
// emitting attributes in ascending type order.
func (attrs *CPAttributes) ToPayload(ct ConfigurationType) *ConfigurationPayload {
	var list []*ConfigurationAttribute
	list = appendCpIp4(list, INTERNAL_IP4_ADDRESS, attrs.Ip4Address)
	if attrs.Ip4Netmask != nil {
		list = append(list, &ConfigurationAttribute{INTERNAL_IP4_NETMASK, HexBytes(attrs.Ip4Netmask)})
	}
	list = appendCpIp4(list, INTERNAL_IP4_DNS, attrs.Ip4Dns)
	list = appendCpIp4(list, INTERNAL_IP4_NBNS, attrs.Ip4Nbns)
	list = appendCpIp4(list, INTERNAL_IP4_DHCP, attrs.Ip4Dhcp)
	if attrs.HasAppVersion {
		list = append(list, &ConfigurationAttribute{APPLICATION_VERSION, []byte(attrs.AppVersion)})
	}
	list = appendCpIp6Prefix(list, INTERNAL_IP6_ADDRESS, attrs.Ip6Address)
	list = appendCpIp6(list, INTERNAL_IP6_DNS, attrs.Ip6Dns)
	list = appendCpIp6(list, INTERNAL_IP6_DHCP, attrs.Ip6Dhcp)
	for _, sub := range attrs.Ip4Subnet {
		var value []byte
		if sub != nil {
			value = append(append([]byte{}, sub.Address.To4()...), sub.Netmask...)
		}
		list = append(list, &ConfigurationAttribute{INTERNAL_IP4_SUBNET, value})
	}
	if attrs.HasSupported {
		value := make([]byte, 2*len(attrs.SupportedAttributes))
		for i, at := range attrs.SupportedAttributes {
			packets.WriteB16(value, 2*i, uint16(at)&0x7fff)
		}
		list = append(list, &ConfigurationAttribute{SUPPORTED_ATTRIBUTES, value})
	}
	list = appendCpIp6Prefix(list, INTERNAL_IP6_SUBNET, attrs.Ip6Subnet)
	list = append(list, attrs.Unknown...)
	return &ConfigurationPayload{
		PayloadHeader:           &PayloadHeader{},
		ConfigurationType:       ct,
		ConfigurationAttributes: list,
	}
}
