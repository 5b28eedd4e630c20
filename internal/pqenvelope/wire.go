package pqenvelope

import (
	"encoding/base64"
	"encoding/binary"
)

// ToBytes renders the envelope as u32_be(len(EncapsulatedKey)) ‖
// EncapsulatedKey ‖ SealedPayload.
func (e *Envelope) ToBytes() []byte {
	out := make([]byte, 4+len(e.EncapsulatedKey)+len(e.SealedPayload))
	binary.BigEndian.PutUint32(out[:4], uint32(len(e.EncapsulatedKey)))
	copy(out[4:], e.EncapsulatedKey)
	copy(out[4+len(e.EncapsulatedKey):], e.SealedPayload)
	return out
}

// EnvelopeFromBytes parses the binary framing produced by ToBytes. Fails
// with CodeInvalidEnvelope if the declared length overruns the buffer.
func EnvelopeFromBytes(raw []byte) (*Envelope, error) {
	if len(raw) < 4 {
		return nil, newCryptoError(CodeInvalidEnvelope, "buffer shorter than length prefix", nil)
	}
	kemLen := uint64(binary.BigEndian.Uint32(raw[:4]))
	if kemLen > uint64(len(raw)-4) {
		return nil, newCryptoError(CodeInvalidEnvelope, "declared KEM length overruns buffer", nil)
	}
	encapsulatedKey := raw[4 : 4+kemLen]
	sealedPayload := raw[4+kemLen:]
	return &Envelope{EncapsulatedKey: encapsulatedKey, SealedPayload: sealedPayload}, nil
}

// TransportEnvelope is the JSON-shaped wire contract for an envelope carried
// over an external transport.
type TransportEnvelope struct {
	EncapsulatedKeyB64 string `json:"encapsulatedKeyB64"`
	SealedPayloadB64   string `json:"sealedPayloadB64"`
	TimestampMs        int64  `json:"timestampMs"`
	NonceB64           string `json:"nonceB64,omitempty"`
}

// ToTransport renders the envelope in its base64 transport form.
func (e *Envelope) ToTransport(timestampMs int64, nonce []byte) TransportEnvelope {
	t := TransportEnvelope{
		EncapsulatedKeyB64: base64.StdEncoding.EncodeToString(e.EncapsulatedKey),
		SealedPayloadB64:   base64.StdEncoding.EncodeToString(e.SealedPayload),
		TimestampMs:        timestampMs,
	}
	if len(nonce) > 0 {
		t.NonceB64 = base64.StdEncoding.EncodeToString(nonce)
	}
	return t
}

// EnvelopeFromTransport decodes the base64 transport form back into an
// Envelope, discarding the timestamp and nonce (opaque to this layer).
func EnvelopeFromTransport(t TransportEnvelope) (*Envelope, error) {
	encapsulatedKey, err := base64.StdEncoding.DecodeString(t.EncapsulatedKeyB64)
	if err != nil {
		return nil, newCryptoError(CodeInvalidEnvelope, "malformed base64 encapsulated key", err)
	}
	sealedPayload, err := base64.StdEncoding.DecodeString(t.SealedPayloadB64)
	if err != nil {
		return nil, newCryptoError(CodeInvalidEnvelope, "malformed base64 sealed payload", err)
	}
	return &Envelope{EncapsulatedKey: encapsulatedKey, SealedPayload: sealedPayload}, nil
}
