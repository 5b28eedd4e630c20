package verify

import (
	"context"
	"log"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/anchorpq/integrity/internal/merkle"
)

var hexFieldPattern = regexp.MustCompile(`^[0-9A-Fa-f]{64}$`)

const (
	maxVersionLength = 50
	maxVariantLength = 30
)

// Payload is the runtime attestation a client sends: the build's Merkle
// root, its (version, variant) identity, and the signer fingerprint of the
// key that produced it.
type Payload struct {
	MerkleRootHex     string
	Version           string
	Variant           string
	SignerFingerprint string
}

// Service is the Verification Core. It holds no request-scoped mutable
// state — every call re-fetches from the repository, so a verify that
// logically follows a successful SaveOrUpdate always observes the new
// record.
type Service struct {
	repo Repository
}

// NewService constructs a Verification Core over repo.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// VerifyIntegrity runs the Received -> Looked-Up -> Compared -> Decided
// state machine described by the ordering and tie-break rules: unknown
// version/variant takes precedence over a Merkle mismatch, which in turn
// takes precedence over a signer mismatch (downgraded to Restricted, not
// rejected).
func (s *Service) VerifyIntegrity(ctx context.Context, payload Payload) Decision {
	now := time.Now()

	if err := validatePayload(payload); err != nil {
		return rejected(now, ErrInvalidRequest, err.Error())
	}

	if s.repo == nil {
		return rejected(now, ErrInternal, "no repository backend configured")
	}

	record, err := s.repo.FindActive(ctx, payload.Version, payload.Variant)
	if err != nil {
		log.Printf("[verify] repository lookup failed for (%s, %s): %v", payload.Version, payload.Variant, err)
		return rejected(now, ErrInternal, "repository lookup failed")
	}
	if record == nil {
		return rejected(now, ErrUnknownVersion, "no active canonical record for this version/variant")
	}

	gotRoot := strings.ToLower(payload.MerkleRootHex)
	wantRoot := strings.ToLower(record.MerkleRootHex)
	if !merkle.ConstantTimeEquals([]byte(gotRoot), []byte(wantRoot)) {
		return rejected(now, ErrMerkleMismatch, "merkle root does not match the canonical record")
	}

	gotSigner := strings.ToLower(payload.SignerFingerprint)
	wantSigner := strings.ToLower(record.SignerFingerprint)
	if !merkle.ConstantTimeEquals([]byte(gotSigner), []byte(wantSigner)) {
		return restricted(now)
	}

	return approved(now)
}

func validatePayload(p Payload) error {
	if !hexFieldPattern.MatchString(p.MerkleRootHex) {
		return errInvalidField("merkleRoot must be 64 hex characters")
	}
	if !hexFieldPattern.MatchString(p.SignerFingerprint) {
		return errInvalidField("signerFingerprint must be 64 hex characters")
	}
	if p.Version == "" || utf8.RuneCountInString(p.Version) > maxVersionLength {
		return errInvalidField("version must be non-empty and at most 50 characters")
	}
	if p.Variant == "" || utf8.RuneCountInString(p.Variant) > maxVariantLength {
		return errInvalidField("variant must be non-empty and at most 30 characters")
	}
	return nil
}

type validationError string

func (e validationError) Error() string { return string(e) }

func errInvalidField(msg string) error { return validationError(msg) }

// RejectedFromCryptoError produces a Decision for a failure that occurred
// before a payload was ever available — an envelope open/decapsulation
// failure. The crypto-layer code is preserved (ErrCrypto with the
// underlying code folded into the message) so the caller's diagnosis isn't
// lost, but ERR_CRYPTO is always the user-visible errorCode.
func RejectedFromCryptoError(cryptoCode, message string) Decision {
	return rejected(time.Now(), ErrCrypto, message+" ("+cryptoCode+")")
}
