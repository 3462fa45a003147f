package protocol

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigurationRoundtrip(t *testing.T) {
	attrs := &CPAttributes{
		Ip4Address:    []net.IP{net.IPv4(10, 11, 0, 1).To4()},
		Ip4Netmask:    net.IPMask{255, 255, 255, 0},
		Ip4Dns:        []net.IP{net.IPv4(8, 8, 8, 8).To4(), net.IPv4(8, 8, 4, 4).To4()},
		HasAppVersion: true,
		AppVersion:    "strongSwan 5.9.6",
		Ip6Address: []*Ip6AddrPrefix{
			{Address: net.ParseIP("2001:db8::10"), PrefixLength: 64},
		},
		Ip4Subnet: []*Ip4Subnet{
			{Address: net.IPv4(10, 11, 0, 0).To4(), Netmask: net.IPMask{255, 255, 0, 0}},
		},
		HasSupported:        true,
		SupportedAttributes: []ConfigurationAttributeType{INTERNAL_IP4_ADDRESS, INTERNAL_IP4_DNS},
	}
	cp := attrs.ToPayload(CFG_REPLY)

	b, err := cp.Encode()
	require.NoError(t, err)

	back := &ConfigurationPayload{PayloadHeader: &PayloadHeader{}}
	require.NoError(t, back.Decode(b))
	assert.Equal(t, CFG_REPLY, back.ConfigurationType)

	got, err := DecodeCPAttributes(back)
	require.NoError(t, err)
	require.Len(t, got.Ip4Address, 1)
	assert.True(t, got.Ip4Address[0].Equal(net.IPv4(10, 11, 0, 1)))
	assert.Equal(t, net.IPMask{255, 255, 255, 0}, got.Ip4Netmask)
	require.Len(t, got.Ip4Dns, 2)
	assert.Equal(t, "strongSwan 5.9.6", got.AppVersion)
	require.Len(t, got.Ip6Address, 1)
	assert.True(t, got.Ip6Address[0].Address.Equal(net.ParseIP("2001:db8::10")))
	assert.Equal(t, uint8(64), got.Ip6Address[0].PrefixLength)
	require.Len(t, got.Ip4Subnet, 1)
	assert.Equal(t, net.IPMask{255, 255, 0, 0}, got.Ip4Subnet[0].Netmask)
	assert.Equal(t, attrs.SupportedAttributes, got.SupportedAttributes)
}

// a CFG_REQUEST carries zero-length attributes asking for assignment
func TestConfigurationRequest(t *testing.T) {
	cp := &ConfigurationPayload{
		PayloadHeader:     &PayloadHeader{},
		ConfigurationType: CFG_REQUEST,
		ConfigurationAttributes: []*ConfigurationAttribute{
			{INTERNAL_IP4_ADDRESS, nil},
			{INTERNAL_IP4_DNS, nil},
		},
	}
	b, err := cp.Encode()
	require.NoError(t, err)
	assert.Len(t, b, 4+4+4)

	back := &ConfigurationPayload{PayloadHeader: &PayloadHeader{}}
	require.NoError(t, back.Decode(b))
	got, err := DecodeCPAttributes(back)
	require.NoError(t, err)
	require.Len(t, got.Ip4Address, 1)
	assert.Nil(t, got.Ip4Address[0])
}

func TestConfigurationErrors(t *testing.T) {
	back := &ConfigurationPayload{PayloadHeader: &PayloadHeader{}}
	assert.Error(t, back.Decode([]byte{1, 0}), "too small")
	assert.Error(t, back.Decode([]byte{9, 0, 0, 0}), "unknown CFG type")
	// attribute length past the end of the payload
	assert.Error(t, back.Decode(hexit(t, "02000000"+"000100ff0a")))

	// five octets can not be an IPv4 address
	cp := &ConfigurationPayload{
		PayloadHeader:           &PayloadHeader{},
		ConfigurationType:       CFG_REPLY,
		ConfigurationAttributes: []*ConfigurationAttribute{{INTERNAL_IP4_ADDRESS, make(HexBytes, 5)}},
	}
	_, err := DecodeCPAttributes(cp)
	assert.Error(t, err)

	// odd SUPPORTED_ATTRIBUTES length
	cp.ConfigurationAttributes = []*ConfigurationAttribute{{SUPPORTED_ATTRIBUTES, make(HexBytes, 3)}}
	_, err = DecodeCPAttributes(cp)
	assert.Error(t, err)
}

func TestUnknownConfigurationAttribute(t *testing.T) {
	cp := &ConfigurationPayload{
		PayloadHeader:           &PayloadHeader{},
		ConfigurationType:       CFG_REPLY,
		ConfigurationAttributes: []*ConfigurationAttribute{{ConfigurationAttributeType(0x7000), HexBytes{1, 2, 3}}},
	}
	got, err := DecodeCPAttributes(cp)
	require.NoError(t, err)
	require.Len(t, got.Unknown, 1)

	back := got.ToPayload(CFG_REPLY)
	require.Len(t, back.ConfigurationAttributes, 1)
	assert.Equal(t, cp.ConfigurationAttributes[0], back.ConfigurationAttributes[0])
}
