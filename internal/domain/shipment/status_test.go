package shipment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/familyexpressec/courier-api/internal/httperr"
)

func TestCanTransition_HappyPath(t *testing.T) {
	assert.NoError(t, CanTransition(StatusPending, StatusInTransit))
	assert.NoError(t, CanTransition(StatusInTransit, StatusDelivered))
	assert.NoError(t, CanTransition(StatusPending, StatusCancelled))
	assert.NoError(t, CanTransition(StatusInTransit, StatusCancelled))
}

func TestCanTransition_TerminalStatesRejected(t *testing.T) {
	for _, from := range []Status{StatusDelivered, StatusCancelled} {
		for _, to := range []Status{StatusPending, StatusInTransit, StatusDelivered, StatusCancelled} {
			err := CanTransition(from, to)
			assert.True(t, httperr.IsBusiness(err, "invalid_transition"),
				"%s → %s should be rejected", from, to)
		}
	}
}

func TestCanTransition_NoSkips(t *testing.T) {
	// No se entrega sin pasar por tránsito ni se vuelve a pendiente.
	assert.Error(t, CanTransition(StatusPending, StatusDelivered))
	assert.Error(t, CanTransition(StatusInTransit, StatusPending))
}

func TestCanTransition_InvalidStatus(t *testing.T) {
	err := CanTransition(StatusPending, Status("lost"))
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
}

func TestStatusHelpers(t *testing.T) {
	assert.True(t, StatusDelivered.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, Status("lost").IsValid())
	assert.Equal(t, "En tránsito", StatusInTransit.Label())
}
