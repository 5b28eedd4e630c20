package pqenvelope

import "errors"

// CryptoError is a typed envelope-layer failure carrying a stable,
// machine-readable code. Callers propagate the code unchanged; only the
// message is for humans.
type CryptoError struct {
	Code    string
	Message string
	Err     error
}

func (e *CryptoError) Error() string {
	if e.Err != nil {
		return e.Code + ": " + e.Message + ": " + e.Err.Error()
	}
	return e.Code + ": " + e.Message
}

func (e *CryptoError) Unwrap() error {
	return e.Err
}

// Error codes per the envelope failure taxonomy. Values are stable and MUST
// NOT change once shipped — callers match on them.
const (
	CodeKeyGenerationFailed = "CRYPTO_001"
	CodeEncapsulationFailed = "CRYPTO_002"
	CodeDecapsulationFailed = "CRYPTO_003"
	CodeKeyDerivationFailed = "CRYPTO_004"
	CodeEncryptionFailed    = "CRYPTO_005"
	CodeDecryptionFailed    = "CRYPTO_006"
	CodeInvalidCiphertext   = "CRYPTO_007"
	CodeAuthenticationFailed = "CRYPTO_008"
	CodeInvalidPublicKey    = "CRYPTO_009"
	CodeInvalidEnvelope     = "CRYPTO_010"
	CodeInvalidPrivateKey   = "CRYPTO_011"
)

func newCryptoError(code, message string, err error) *CryptoError {
	return &CryptoError{Code: code, Message: message, Err: err}
}

// ErrUnknownParameterSet is a non-crypto-coded configuration error: the
// caller asked for a parameter set name this package doesn't recognize.
var ErrUnknownParameterSet = errors.New("pqenvelope: unknown KEM parameter set")
