// Package transport exposes the public-key distribution and verification
// endpoints over HTTP. It is pure serialization glue: every security
// decision is made by internal/pqenvelope and internal/verify, never here.
package transport

import "github.com/anchorpq/integrity/internal/pqenvelope"

// PublicKeyResponse is the wire shape of the public-key distribution
// endpoint.
type PublicKeyResponse struct {
	PublicKey    string `json:"publicKey"`
	ParameterSet string `json:"parameterSet"`
	Algorithm    string `json:"algorithm"`
	GeneratedAt  int64  `json:"generatedAt"` // milliseconds since Unix epoch
	KeyID        string `json:"keyId"`
}

// VerifyRequest is the wire shape of a verification request: an envelope
// sealed to the server's KEM public key.
type VerifyRequest struct {
	EncapsulatedKey  string `json:"encapsulatedKey"`  // base64
	EncryptedPayload string `json:"encryptedPayload"` // base64 of IV ‖ CIPHERTEXT ‖ TAG
	Timestamp        int64  `json:"timestamp"`        // milliseconds, unvalidated
	Nonce            string `json:"nonce,omitempty"`  // base64, opaque to the core
}

// VerifyResponse is the wire shape of a verification decision. errorCode is
// present only when status is REJECTED.
type VerifyResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp int64  `json:"timestamp"`
	ErrorCode string `json:"errorCode,omitempty"`
}

// envelopeFromRequest decodes the base64 wire fields into a pqenvelope
// Envelope by copying them field by field into a pqenvelope.TransportEnvelope
// rather than through JSON, since TransportEnvelope's JSON field names differ
// from the public wire contract.
func envelopeFromRequest(req VerifyRequest) (*pqenvelope.Envelope, error) {
	return pqenvelope.EnvelopeFromTransport(pqenvelope.TransportEnvelope{
		EncapsulatedKeyB64: req.EncapsulatedKey,
		SealedPayloadB64:   req.EncryptedPayload,
		TimestampMs:        req.Timestamp,
		NonceB64:           req.Nonce,
	})
}

// payloadWire is the cleartext JSON shape carried inside the sealed
// envelope: the attestation the client wants verified.
type payloadWire struct {
	MerkleRoot        string `json:"merkleRoot"`
	Version           string `json:"version"`
	Variant           string `json:"variant"`
	SignerFingerprint string `json:"signerFingerprint"`
}
