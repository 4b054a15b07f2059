package handler

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-spellbook/internal/config"
	"github.com/MKhiriev/go-spellbook/internal/logger"
	"github.com/MKhiriev/go-spellbook/internal/service"
	"github.com/MKhiriev/go-spellbook/internal/session"
	"github.com/MKhiriev/go-spellbook/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager() *session.Manager {
	return session.NewManager(time.Hour, utils.NewUUIDGenerator())
}

func TestNewHandlers_HTTPAddress(t *testing.T) {
	cfg := config.StructuredConfig{Server: config.Server{HTTPAddress: ":8000"}}

	h, err := NewHandlers(&service.Services{}, newTestManager(), cfg, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP)
}

// An HTTP address is the only transport, so without one nothing can serve.
func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(&service.Services{}, newTestManager(), config.StructuredConfig{}, logger.Nop())

	assert.Nil(t, h)
	assert.ErrorIs(t, err, errNoHandlersAreCreated)
}
