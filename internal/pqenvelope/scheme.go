/*
Package pqenvelope implements the hybrid post-quantum confidential channel:
ML-KEM key encapsulation, HKDF key derivation, and AES-256-GCM AEAD, combined
into a one-shot sealed envelope.

All three ML-KEM parameter sets are handled through circl's generic
kem.Scheme interface rather than a hardcoded parameter set, so adding a
fourth set in the future is a one-line change to the scheme table below.
*/
package pqenvelope

import (
	"github.com/cloudflare/circl/kem"
	"github.com/cloudflare/circl/kem/mlkem/mlkem1024"
	"github.com/cloudflare/circl/kem/mlkem/mlkem512"
	"github.com/cloudflare/circl/kem/mlkem/mlkem768"
)

// ParameterSet identifies a supported ML-KEM security level.
type ParameterSet string

const (
	MLKEM512  ParameterSet = "ML-KEM-512"
	MLKEM768  ParameterSet = "ML-KEM-768"
	MLKEM1024 ParameterSet = "ML-KEM-1024"

	// DefaultParameterSet is used whenever a caller does not specify one,
	// and is the fallback target for unknown configured values.
	DefaultParameterSet = MLKEM768
)

var schemes = map[ParameterSet]kem.Scheme{
	MLKEM512:  mlkem512.Scheme(),
	MLKEM768:  mlkem768.Scheme(),
	MLKEM1024: mlkem1024.Scheme(),
}

// schemeFor resolves a ParameterSet to its circl kem.Scheme.
func schemeFor(ps ParameterSet) (kem.Scheme, error) {
	s, ok := schemes[ps]
	if !ok {
		return nil, ErrUnknownParameterSet
	}
	return s, nil
}
