package protocol

// SA payload

// caps the proposal chain inside one SA payload
const maxSaProposals = 255

func (s *SaPayload) Type() PayloadType {
	return PayloadTypeSA
}

func (s *SaPayload) Encode() (b []byte, err error) {
	if len(s.Proposals) == 0 {
		return nil, ErrF(ERR_INVALID_SYNTAX, "SA payload without proposals")
	}
	for _, prop := range s.Proposals {
		if len(prop.Transforms) == 0 {
			return nil, ErrF(ERR_INVALID_SYNTAX, "proposal %d without transforms", prop.Number)
		}
	}
	for idx, prop := range s.Proposals {
		isLast := idx == len(s.Proposals)-1
		b = append(b, prop.encode(isLast)...)
	}
	return
}

func (s *SaPayload) Decode(b []byte) (err error) {
	// Header has already been decoded
	for len(b) > 0 {
		if len(s.Proposals) >= maxSaProposals {
			return ErrF(ERR_INVALID_SYNTAX, "more than %d proposals in SA payload", maxSaProposals)
		}
		prop, used, errP := decodeProposal(b)
		if errP != nil {
			return errP
		}
		s.Proposals = append(s.Proposals, prop)
		b = b[used:]
		if prop.IsLast {
			if len(b) > 0 {
				return ErrF(ERR_INVALID_SYNTAX, "extra bytes after last proposal: %d", len(b))
			}
			break
		}
	}
	if len(s.Proposals) == 0 {
		return ErrF(ERR_INVALID_SYNTAX, "SA payload without proposals")
	}
	return
}
