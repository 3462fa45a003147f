package protocol

import "fmt"

func (p ProtocolId) String() string {
	switch p {
	case IKE:
		return "IKE"
	case AH:
		return "AH"
	case ESP:
		return "ESP"
	default:
		return "Unknown"
	}
}

func (e IkeExchangeType) String() string {
	switch e {
	case IKE_SA_INIT:
		return "IKE_SA_INIT"
	case IKE_AUTH:
		return "IKE_AUTH"
	case CREATE_CHILD_SA:
		return "CREATE_CHILD_SA"
	case INFORMATIONAL:
		return "INFORMATIONAL"
	default:
		return "Unknown"
	}
}

func (p TransformType) String() string {
	switch p {
	case TRANSFORM_TYPE_ENCR:
		return "ENCR"
	case TRANSFORM_TYPE_PRF:
		return "PRF"
	case TRANSFORM_TYPE_INTEG:
		return "INTEG"
	case TRANSFORM_TYPE_DH:
		return "DH"
	case TRANSFORM_TYPE_ESN:
		return "ESN"
	default:
		return "Unknown"
	}
}

func (t Transform) String() string {
	return TransformName(t)
}

func (t *SaTransform) String() string {
	if t.KeyLength != 0 {
		return fmt.Sprintf("%s_%d", TransformName(t.Transform), t.KeyLength)
	}
	return TransformName(t.Transform)
}

func (p PayloadType) String() string {
	switch p {
	case PayloadTypeNone:
		return "None"
	case PayloadTypeSA:
		return "SA"
	case PayloadTypeKE:
		return "KE"
	case PayloadTypeIDi:
		return "IDi"
	case PayloadTypeIDr:
		return "IDr"
	case PayloadTypeCERT:
		return "CERT"
	case PayloadTypeCERTREQ:
		return "CERTREQ"
	case PayloadTypeAUTH:
		return "AUTH"
	case PayloadTypeNonce:
		return "No"
	case PayloadTypeN:
		return "N"
	case PayloadTypeD:
		return "D"
	case PayloadTypeV:
		return "V"
	case PayloadTypeTSi:
		return "TSi"
	case PayloadTypeTSr:
		return "TSr"
	case PayloadTypeSK:
		return "SK"
	case PayloadTypeCP:
		return "CP"
	case PayloadTypeEAP:
		return "EAP"
	default:
		return "Unknown"
	}
}

func (p Payloads) String() string {
	var pls []string
	for _, pl := range p.Array {
		if ty := pl.Type(); ty == PayloadTypeN {
			n := pl.(*NotifyPayload)
			pls = append(pls, fmt.Sprintf("N[%s]", n.NotificationType))
		} else {
			pls = append(pls, ty.String())
		}
	}
	return fmt.Sprintf("%v", pls)
}

func (t SelectorType) String() string {
	switch t {
	case TS_IPV4_ADDR_RANGE:
		return "TS_IPV4_ADDR_RANGE"
	case TS_IPV6_ADDR_RANGE:
		return "TS_IPV6_ADDR_RANGE"
	default:
		return "Unknown"
	}
}

func (s Selector) String() string {
	return fmt.Sprintf("(%d, %d-%d, %s-%s)",
		s.IpProtocolId,
		s.StartPort,
		s.EndPort,
		s.StartAddress,
		s.EndAddress)
}

func (c ConfigurationType) String() string {
	switch c {
	case CFG_REQUEST:
		return "CFG_REQUEST"
	case CFG_REPLY:
		return "CFG_REPLY"
	case CFG_SET:
		return "CFG_SET"
	case CFG_ACK:
		return "CFG_ACK"
	default:
		return "Unknown"
	}
}

func (a ConfigurationAttributeType) String() string {
	switch a {
	case INTERNAL_IP4_ADDRESS:
		return "INTERNAL_IP4_ADDRESS"
	case INTERNAL_IP4_NETMASK:
		return "INTERNAL_IP4_NETMASK"
	case INTERNAL_IP4_DNS:
		return "INTERNAL_IP4_DNS"
	case INTERNAL_IP4_NBNS:
		return "INTERNAL_IP4_NBNS"
	case INTERNAL_IP4_DHCP:
		return "INTERNAL_IP4_DHCP"
	case APPLICATION_VERSION:
		return "APPLICATION_VERSION"
	case INTERNAL_IP6_ADDRESS:
		return "INTERNAL_IP6_ADDRESS"
	case INTERNAL_IP6_DNS:
		return "INTERNAL_IP6_DNS"
	case INTERNAL_IP6_DHCP:
		return "INTERNAL_IP6_DHCP"
	case INTERNAL_IP4_SUBNET:
		return "INTERNAL_IP4_SUBNET"
	case SUPPORTED_ATTRIBUTES:
		return "SUPPORTED_ATTRIBUTES"
	case INTERNAL_IP6_SUBNET:
		return "INTERNAL_IP6_SUBNET"
	default:
		return fmt.Sprintf("ConfigurationAttribute(%d)", uint16(a))
	}
}

func (c EapCode) String() string {
	switch c {
	case EapCodeRequest:
		return "Request"
	case EapCodeResponse:
		return "Response"
	case EapCodeSuccess:
		return "Success"
	case EapCodeFailure:
		return "Failure"
	default:
		return fmt.Sprintf("EapCode(%d)", uint8(c))
	}
}

var notificationNames = map[NotificationType]string{
	UNSUPPORTED_CRITICAL_PAYLOAD:  "UNSUPPORTED_CRITICAL_PAYLOAD",
	INVALID_IKE_SPI:               "INVALID_IKE_SPI",
	INVALID_MAJOR_VERSION:         "INVALID_MAJOR_VERSION",
	INVALID_SYNTAX:                "INVALID_SYNTAX",
	INVALID_MESSAGE_ID:            "INVALID_MESSAGE_ID",
	INVALID_SPI:                   "INVALID_SPI",
	NO_PROPOSAL_CHOSEN:            "NO_PROPOSAL_CHOSEN",
	INVALID_KE_PAYLOAD:            "INVALID_KE_PAYLOAD",
	AUTHENTICATION_FAILED:         "AUTHENTICATION_FAILED",
	SINGLE_PAIR_REQUIRED:          "SINGLE_PAIR_REQUIRED",
	NO_ADDITIONAL_SAS:             "NO_ADDITIONAL_SAS",
	INTERNAL_ADDRESS_FAILURE:      "INTERNAL_ADDRESS_FAILURE",
	FAILED_CP_REQUIRED:            "FAILED_CP_REQUIRED",
	TS_UNACCEPTABLE:               "TS_UNACCEPTABLE",
	INVALID_SELECTORS:             "INVALID_SELECTORS",
	TEMPORARY_FAILURE:             "TEMPORARY_FAILURE",
	CHILD_SA_NOT_FOUND:            "CHILD_SA_NOT_FOUND",
	INITIAL_CONTACT:               "INITIAL_CONTACT",
	SET_WINDOW_SIZE:               "SET_WINDOW_SIZE",
	ADDITIONAL_TS_POSSIBLE:        "ADDITIONAL_TS_POSSIBLE",
	IPCOMP_SUPPORTED:              "IPCOMP_SUPPORTED",
	NAT_DETECTION_SOURCE_IP:       "NAT_DETECTION_SOURCE_IP",
	NAT_DETECTION_DESTINATION_IP:  "NAT_DETECTION_DESTINATION_IP",
	COOKIE:                        "COOKIE",
	USE_TRANSPORT_MODE:            "USE_TRANSPORT_MODE",
	HTTP_CERT_LOOKUP_SUPPORTED:    "HTTP_CERT_LOOKUP_SUPPORTED",
	REKEY_SA:                      "REKEY_SA",
	ESP_TFC_PADDING_NOT_SUPPORTED: "ESP_TFC_PADDING_NOT_SUPPORTED",
	NON_FIRST_FRAGMENTS_ALSO:      "NON_FIRST_FRAGMENTS_ALSO",
	MOBIKE_SUPPORTED:              "MOBIKE_SUPPORTED",
	REDIRECT_SUPPORTED:            "REDIRECT_SUPPORTED",
	IKEV2_FRAGMENTATION_SUPPORTED: "IKEV2_FRAGMENTATION_SUPPORTED",
	SIGNATURE_HASH_ALGORITHMS:     "SIGNATURE_HASH_ALGORITHMS",
	AUTH_LIFETIME:                 "AUTH_LIFETIME",
}

func (n NotificationType) String() string {
	if name, ok := notificationNames[n]; ok {
		return name
	}
	return fmt.Sprintf("Notify(%d)", uint16(n))
}
