package transport

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/anchorpq/integrity/internal/pqenvelope"
	"github.com/anchorpq/integrity/internal/verify"
)

// Server wires the verification Service and the process keypair to HTTP.
type Server struct {
	verifyService *verify.Service
}

// NewServer constructs a transport Server over a Verification Core.
func NewServer(verifyService *verify.Service) *Server {
	return &Server{verifyService: verifyService}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handlePublicKey serves the process-wide KEM public key so clients can
// seal attestations against it.
func (s *Server) handlePublicKey(w http.ResponseWriter, r *http.Request) {
	kp := pqenvelope.Handle()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(PublicKeyResponse{
		PublicKey:    base64.StdEncoding.EncodeToString(kp.PublicBytes),
		ParameterSet: string(kp.ParameterSet),
		Algorithm:    "ML-KEM",
		GeneratedAt:  kp.GeneratedAt.UnixMilli(),
		KeyID:        kp.KeyID.String(),
	})
}

// handleVerify opens the sealed envelope, unmarshals the cleartext
// attestation, and hands it to the Verification Core. Envelope failures
// never reach the core — they are turned into REJECTED(ERR_CRYPTO) here,
// before any repository lookup, per the crypto-failure scenario the core
// itself does not model.
func (s *Server) handleVerify(w http.ResponseWriter, r *http.Request) {
	var req VerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	env, err := envelopeFromRequest(req)
	if err != nil {
		writeVerifyResponse(w, verify.RejectedFromCryptoError(cryptoCode(err), err.Error()))
		return
	}

	kp := pqenvelope.Handle()
	plaintext, err := pqenvelope.OpenWith(kp.ParameterSet, kp.PrivateKey, env)
	if err != nil {
		log.Printf("[transport] envelope open failed: %v", err)
		writeVerifyResponse(w, verify.RejectedFromCryptoError(cryptoCode(err), "envelope could not be opened"))
		return
	}

	var payload payloadWire
	if err := json.Unmarshal(plaintext, &payload); err != nil {
		writeVerifyResponse(w, verify.RejectedFromCryptoError(pqenvelope.CodeInvalidEnvelope, "sealed payload was not valid JSON"))
		return
	}

	decision := s.verifyService.VerifyIntegrity(r.Context(), verify.Payload{
		MerkleRootHex:     payload.MerkleRoot,
		Version:           payload.Version,
		Variant:           payload.Variant,
		SignerFingerprint: payload.SignerFingerprint,
	})
	writeVerifyResponse(w, decision)
}

// writeVerifyResponse always responds with 200: the decision travels in the
// body so the transport status code cannot leak whether an attestation was
// tampered with.
func writeVerifyResponse(w http.ResponseWriter, d verify.Decision) {
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(VerifyResponse{
		Status:    string(d.Status),
		Message:   d.Message,
		Timestamp: d.Timestamp,
		ErrorCode: d.ErrorCode,
	})
}

func cryptoCode(err error) string {
	var ce *pqenvelope.CryptoError
	if errors.As(err, &ce) {
		return ce.Code
	}
	return pqenvelope.CodeInvalidEnvelope
}
