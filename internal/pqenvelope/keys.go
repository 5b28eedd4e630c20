package pqenvelope

import (
	"encoding/binary"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/cloudflare/circl/kem"
	"github.com/google/uuid"
)

// KeyPair is the process-wide server keypair. It is initialized exactly
// once via Init and is immutable thereafter; concurrent readers need no
// lock because nothing about it changes after construction.
type KeyPair struct {
	KeyID        uuid.UUID
	ParameterSet ParameterSet
	PublicKey    kem.PublicKey
	PrivateKey   kem.PrivateKey
	PublicBytes  []byte
	GeneratedAt  time.Time
}

var (
	handle     *KeyPair
	handleOnce sync.Once
	handleErr  error
)

// Init generates or loads the process-wide key pair and installs it as the
// singleton Handle. It is safe to call multiple times; only the first call
// does any work. If keyFilePath is non-empty, Init attempts to load from it
// first and falls back to generation (re-persisting) on any load failure.
func Init(parameterSet ParameterSet, keyFilePath string) (*KeyPair, error) {
	handleOnce.Do(func() {
		handle, handleErr = initOnce(parameterSet, keyFilePath)
	})
	return handle, handleErr
}

// Handle returns the previously initialized singleton. It panics if Init
// has not been called — this is a violated internal invariant, not a
// recoverable runtime condition.
func Handle() *KeyPair {
	if handle == nil {
		panic("pqenvelope: Handle called before Init")
	}
	return handle
}

func initOnce(parameterSet ParameterSet, keyFilePath string) (*KeyPair, error) {
	if keyFilePath != "" {
		if kp, err := Load(parameterSet, keyFilePath); err == nil {
			return kp, nil
		} else {
			log.Printf("[pqenvelope] failed to load key pair from %s, generating fresh: %v", keyFilePath, err)
		}
	}

	material, err := GenerateKeyPair(parameterSet)
	if err != nil {
		return nil, err
	}

	kp, err := materialToKeyPair(material)
	if err != nil {
		return nil, err
	}

	if keyFilePath != "" {
		if err := Persist(kp, material.PrivateKey, keyFilePath); err != nil {
			log.Printf("[pqenvelope] failed to persist generated key pair to %s: %v", keyFilePath, err)
		}
	}

	return kp, nil
}

func materialToKeyPair(material *KeyPairMaterial) (*KeyPair, error) {
	pub, err := ImportPublic(material.ParameterSet, material.PublicKey)
	if err != nil {
		return nil, err
	}
	priv, err := ImportPrivate(material.ParameterSet, material.PrivateKey)
	if err != nil {
		return nil, err
	}
	return &KeyPair{
		KeyID:        uuid.New(),
		ParameterSet: material.ParameterSet,
		PublicKey:    pub,
		PrivateKey:   priv,
		PublicBytes:  material.PublicKey,
		GeneratedAt:  time.Now(),
	}, nil
}

// Persist writes the key pair to path using a standardized encoding: the
// KEM's own public/private key byte encodings concatenated with
// length-prefixes, preceded by the key ID and parameter set name. This
// replaces a reflective object-graph serialization with an explicit,
// version-stable binary layout.
//
// Layout: u32_be(len(keyID)) ‖ keyID ‖ u32_be(len(parameterSet)) ‖
// parameterSet ‖ u32_be(len(pub)) ‖ pub ‖ u32_be(len(priv)) ‖ priv
func Persist(kp *KeyPair, privateKeyBytes []byte, path string) error {
	buf := make([]byte, 0, 256+len(kp.PublicBytes)+len(privateKeyBytes))
	buf = appendLengthPrefixed(buf, []byte(kp.KeyID.String()))
	buf = appendLengthPrefixed(buf, []byte(kp.ParameterSet))
	buf = appendLengthPrefixed(buf, kp.PublicBytes)
	buf = appendLengthPrefixed(buf, privateKeyBytes)
	return os.WriteFile(path, buf, 0o600)
}

// Load reads a key pair previously written by Persist. On any structural
// failure the caller is expected to fall back to generation.
func Load(parameterSet ParameterSet, path string) (*KeyPair, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("pqenvelope: failed to read key file: %w", err)
	}

	rest := raw
	keyIDBytes, rest, err := readLengthPrefixed(rest)
	if err != nil {
		return nil, err
	}
	parameterSetBytes, rest, err := readLengthPrefixed(rest)
	if err != nil {
		return nil, err
	}
	pubBytes, rest, err := readLengthPrefixed(rest)
	if err != nil {
		return nil, err
	}
	privBytes, _, err := readLengthPrefixed(rest)
	if err != nil {
		return nil, err
	}

	loadedParameterSet := ParameterSet(parameterSetBytes)
	if loadedParameterSet != parameterSet {
		return nil, fmt.Errorf("pqenvelope: key file parameter set %q does not match configured %q", loadedParameterSet, parameterSet)
	}

	keyID, err := uuid.Parse(string(keyIDBytes))
	if err != nil {
		return nil, fmt.Errorf("pqenvelope: malformed key ID in key file: %w", err)
	}

	pub, err := ImportPublic(loadedParameterSet, pubBytes)
	if err != nil {
		return nil, err
	}
	priv, err := ImportPrivate(loadedParameterSet, privBytes)
	if err != nil {
		return nil, err
	}

	return &KeyPair{
		KeyID:        keyID,
		ParameterSet: loadedParameterSet,
		PublicKey:    pub,
		PrivateKey:   priv,
		PublicBytes:  pubBytes,
		GeneratedAt:  time.Now(),
	}, nil
}

func appendLengthPrefixed(buf, field []byte) []byte {
	lenPrefix := make([]byte, 4)
	binary.BigEndian.PutUint32(lenPrefix, uint32(len(field)))
	buf = append(buf, lenPrefix...)
	buf = append(buf, field...)
	return buf
}

func readLengthPrefixed(buf []byte) (field []byte, rest []byte, err error) {
	if len(buf) < 4 {
		return nil, nil, fmt.Errorf("pqenvelope: key file truncated at length prefix")
	}
	n := binary.BigEndian.Uint32(buf[:4])
	buf = buf[4:]
	if uint64(n) > uint64(len(buf)) {
		return nil, nil, fmt.Errorf("pqenvelope: key file truncated at field of length %d", n)
	}
	return buf[:n], buf[n:], nil
}
