package protocol

import (
	"net"

	"github.com/msgboxio/packets"
)

// caps the selector list inside one TS payload
const maxTrafficSelectors = 255

func selectorAddrLen(t SelectorType) int {
	if t == TS_IPV6_ADDR_RANGE {
		return net.IPv6len
	}
	return net.IPv4len
}

// MakeSelector builds an address-range selector covering all ports and
// protocols; the selector type is picked from the address width. Both
// addresses must be of the same family.
func MakeSelector(start, end net.IP) (*Selector, error) {
	if s4, e4 := start.To4(), end.To4(); s4 != nil && e4 != nil {
		return &Selector{
			Type:         TS_IPV4_ADDR_RANGE,
			EndPort:      65535,
			StartAddress: s4,
			EndAddress:   e4,
		}, nil
	}
	if s16, e16 := start.To16(), end.To16(); s16 != nil && e16 != nil &&
		start.To4() == nil && end.To4() == nil {
		return &Selector{
			Type:         TS_IPV6_ADDR_RANGE,
			EndPort:      65535,
			StartAddress: s16,
			EndAddress:   e16,
		}, nil
	}
	return nil, ErrF(ERR_INVALID_SYNTAX, "selector addresses of mixed or unknown family: %s - %s", start, end)
}

// ParseSelector builds a selector from textual addresses; malformed
// literals are rejected.
func ParseSelector(start, end string) (*Selector, error) {
	startIP := net.ParseIP(start)
	if startIP == nil {
		return nil, ErrF(ERR_INVALID_SYNTAX, "bad selector address %q", start)
	}
	endIP := net.ParseIP(end)
	if endIP == nil {
		return nil, ErrF(ERR_INVALID_SYNTAX, "bad selector address %q", end)
	}
	return MakeSelector(startIP, endIP)
}

func decodeSelector(b []byte) (sel *Selector, used int, err error) {
	if len(b) < MIN_LEN_SELECTOR {
		err = ErrF(ERR_INVALID_SYNTAX, "selector too small %d < %d", len(b), MIN_LEN_SELECTOR)
		return
	}
	stype, _ := packets.ReadB8(b, 0)
	id, _ := packets.ReadB8(b, 1)
	slen, _ := packets.ReadB16(b, 2)
	switch SelectorType(stype) {
	case TS_IPV4_ADDR_RANGE, TS_IPV6_ADDR_RANGE:
	default:
		err = ErrF(ERR_INVALID_SYNTAX, "unknown selector type 0x%x", stype)
		return
	}
	iplen := selectorAddrLen(SelectorType(stype))
	if int(slen) != MIN_LEN_SELECTOR+2*iplen {
		err = ErrF(ERR_INVALID_SYNTAX, "selector length %d does not match type (want %d)",
			slen, MIN_LEN_SELECTOR+2*iplen)
		return
	}
	if len(b) < int(slen) {
		err = ErrF(ERR_INVALID_SYNTAX, "selector length %d > remaining %d", slen, len(b))
		return
	}
	sport, _ := packets.ReadB16(b, 4)
	eport, _ := packets.ReadB16(b, 6)
	sel = &Selector{
		Type:         SelectorType(stype),
		IpProtocolId: id,
		StartPort:    sport,
		EndPort:      eport,
		StartAddress: append([]byte{}, b[8:8+iplen]...),
		EndAddress:   append([]byte{}, b[8+iplen:8+2*iplen]...),
	}
	used = int(slen)
	return
}

func (sel *Selector) encode() (b []byte, err error) {
	iplen := selectorAddrLen(sel.Type)
	start, end := sel.StartAddress, sel.EndAddress
	if sel.Type == TS_IPV4_ADDR_RANGE {
		start, end = start.To4(), end.To4()
	}
	if len(start) != iplen || len(end) != iplen {
		return nil, ErrF(ERR_INVALID_SYNTAX,
			"selector address width does not match type %s: %d/%d != %d",
			sel.Type, len(sel.StartAddress), len(sel.EndAddress), iplen)
	}
	b = make([]byte, MIN_LEN_SELECTOR)
	packets.WriteB8(b, 0, uint8(sel.Type))
	packets.WriteB8(b, 1, sel.IpProtocolId)
	packets.WriteB16(b, 4, sel.StartPort)
	packets.WriteB16(b, 6, sel.EndPort)
	b = append(b, start...)
	b = append(b, end...)
	packets.WriteB16(b, 2, uint16(len(b)))
	return b, nil
}

func (s *TrafficSelectorPayload) Type() PayloadType {
	return s.TrafficSelectorPayloadType
}

func (s *TrafficSelectorPayload) Encode() (b []byte, err error) {
	b = []byte{uint8(len(s.Selectors)), 0, 0, 0}
	for _, sel := range s.Selectors {
		sb, err := sel.encode()
		if err != nil {
			return nil, err
		}
		b = append(b, sb...)
	}
	return b, nil
}

func (s *TrafficSelectorPayload) Decode(b []byte) error {
	if len(b) < MIN_LEN_TRAFFIC_SELECTOR {
		return ErrF(ERR_INVALID_SYNTAX, "TS payload too small %d < %d", len(b), MIN_LEN_TRAFFIC_SELECTOR)
	}
	numSel, _ := packets.ReadB8(b, 0)
	b = b[4:]
	for len(b) > 0 {
		if len(s.Selectors) >= maxTrafficSelectors {
			return ErrF(ERR_INVALID_SYNTAX, "more than %d selectors in TS payload", maxTrafficSelectors)
		}
		sel, used, err := decodeSelector(b)
		if err != nil {
			return err
		}
		s.Selectors = append(s.Selectors, sel)
		b = b[used:]
	}
	if len(s.Selectors) != int(numSel) {
		return ErrF(ERR_INVALID_SYNTAX, "wrong number of selectors: %d != %d", len(s.Selectors), numSel)
	}
	return nil
}
