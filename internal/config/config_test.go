package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/anchorpq/integrity/internal/pqenvelope"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	assert.Equal(t, ":8443", cfg.ListenAddr)
	assert.Equal(t, pqenvelope.DefaultParameterSet, cfg.KEMParameterSet)
	assert.Empty(t, cfg.KEMKeyFilePath)
}

func TestResolveParameterSetAcceptsKnownValues(t *testing.T) {
	assert.Equal(t, pqenvelope.MLKEM512, resolveParameterSet("ML-KEM-512"))
	assert.Equal(t, pqenvelope.MLKEM1024, resolveParameterSet("ML-KEM-1024"))
}

func TestResolveParameterSetFallsBackOnUnknownValue(t *testing.T) {
	assert.Equal(t, pqenvelope.DefaultParameterSet, resolveParameterSet("ML-KEM-9000"))
}

func TestSplitNonEmptyTrimsAndDropsBlanks(t *testing.T) {
	got := splitNonEmpty(" a.class , , b.class ")
	assert.Equal(t, []string{"a.class", "b.class"}, got)
}

func TestSplitNonEmptyOnEmptyStringReturnsNil(t *testing.T) {
	assert.Nil(t, splitNonEmpty(""))
}
