package transport

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/anchorpq/integrity/internal/pqenvelope"
)

// initTestKeyPair initializes the process-wide pqenvelope singleton exactly
// once for the whole test binary (Init is idempotent via sync.Once) and
// returns the resulting handle.
func initTestKeyPair(t *testing.T) *pqenvelope.KeyPair {
	t.Helper()
	kp, err := pqenvelope.Init(pqenvelope.DefaultParameterSet, "")
	require.NoError(t, err)
	return kp
}
