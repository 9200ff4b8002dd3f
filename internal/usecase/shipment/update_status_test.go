package shipment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/familyexpressec/courier-api/internal/domain/shipment"
	"github.com/familyexpressec/courier-api/internal/httperr"
	"github.com/familyexpressec/courier-api/internal/models"
)

func seedShipment(repo *fakeRepo, status string) *models.Shipment {
	sh := &models.Shipment{
		TrackingCode: "FE-20250301-0001",
		ClientID:     1,
		Category:     "B",
		Status:       status,
	}
	repo.nextID++
	sh.ID = repo.nextID
	repo.shipments[sh.ID] = sh
	return sh
}

func TestUpdateStatus_AppendsExactlyOneEvent(t *testing.T) {
	repo := newFakeRepo()
	cache := newFakeCache()
	sh := seedShipment(repo, string(domain.StatusPending))

	uc := NewUpdateStatus(repo, cache, nil)

	out, err := uc.Execute(context.Background(), 7, sh.ID, domain.StatusInTransit, "Miami", "Salió en vuelo")
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusInTransit), out.Status)

	require.Len(t, repo.events, 1)
	ev := repo.events[0]
	assert.Equal(t, sh.TrackingCode, ev.TrackingCode)
	assert.Equal(t, string(domain.StatusInTransit), ev.Status)
	assert.Equal(t, "Miami", ev.Location)
	assert.Equal(t, "Salió en vuelo", ev.Note)
}

func TestUpdateStatus_DeliveredStampsTimestamp(t *testing.T) {
	repo := newFakeRepo()
	sh := seedShipment(repo, string(domain.StatusInTransit))

	uc := NewUpdateStatus(repo, newFakeCache(), nil)

	out, err := uc.Execute(context.Background(), 7, sh.ID, domain.StatusDelivered, "Guayaquil", "Entregado al destinatario")
	require.NoError(t, err)

	require.NotNil(t, out.DeliveredAt)
	assert.Nil(t, out.CancelledAt)
}

func TestUpdateStatus_CancelledStampsTimestamp(t *testing.T) {
	repo := newFakeRepo()
	sh := seedShipment(repo, string(domain.StatusPending))

	uc := NewUpdateStatus(repo, newFakeCache(), nil)

	out, err := uc.Execute(context.Background(), 7, sh.ID, domain.StatusCancelled, "", "Cliente desistió")
	require.NoError(t, err)

	require.NotNil(t, out.CancelledAt)
	assert.Nil(t, out.DeliveredAt)
}

func TestUpdateStatus_InvalidatesTrackingCache(t *testing.T) {
	repo := newFakeRepo()
	cache := newFakeCache()
	sh := seedShipment(repo, string(domain.StatusPending))
	cache.data[trackCacheKey(sh.TrackingCode)] = []byte(`{"status":"pending"}`)

	uc := NewUpdateStatus(repo, cache, nil)

	_, err := uc.Execute(context.Background(), 7, sh.ID, domain.StatusInTransit, "Miami", "")
	require.NoError(t, err)

	assert.Contains(t, cache.deleted, trackCacheKey(sh.TrackingCode))
	assert.NotContains(t, cache.data, trackCacheKey(sh.TrackingCode))
}

func TestUpdateStatus_TerminalStatesRejectTransitions(t *testing.T) {
	for _, terminal := range []domain.Status{domain.StatusDelivered, domain.StatusCancelled} {
		repo := newFakeRepo()
		sh := seedShipment(repo, string(terminal))

		uc := NewUpdateStatus(repo, newFakeCache(), nil)

		_, err := uc.Execute(context.Background(), 7, sh.ID, domain.StatusInTransit, "", "")
		require.Error(t, err, "desde %s", terminal)
		assert.True(t, httperr.IsBusiness(err, "invalid_transition"))

		// Ni estado ni historial cambian.
		assert.Equal(t, string(terminal), repo.shipments[sh.ID].Status)
		assert.Empty(t, repo.events)
	}
}

func TestUpdateStatus_SkippingAStageFails(t *testing.T) {
	repo := newFakeRepo()
	sh := seedShipment(repo, string(domain.StatusPending))

	uc := NewUpdateStatus(repo, newFakeCache(), nil)

	_, err := uc.Execute(context.Background(), 7, sh.ID, domain.StatusDelivered, "", "")
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_transition"))
}

func TestUpdateStatus_ShipmentNotFound(t *testing.T) {
	repo := newFakeRepo()
	uc := NewUpdateStatus(repo, newFakeCache(), nil)

	_, err := uc.Execute(context.Background(), 7, 999, domain.StatusInTransit, "", "")
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "shipment_not_found"))
}

func TestMarkPrinted_IdempotentAndNoEvent(t *testing.T) {
	repo := newFakeRepo()
	sh := seedShipment(repo, string(domain.StatusPending))

	uc := NewMarkPrinted(repo, nil)

	out, err := uc.Execute(context.Background(), 7, sh.ID, DocumentReceipt)
	require.NoError(t, err)
	assert.True(t, out.Payment.ReceiptPrinted)
	assert.False(t, out.Payment.LabelPrinted)

	// Segunda impresión: mismo resultado, sin efecto adicional.
	out, err = uc.Execute(context.Background(), 7, sh.ID, DocumentReceipt)
	require.NoError(t, err)
	assert.True(t, out.Payment.ReceiptPrinted)

	out, err = uc.Execute(context.Background(), 7, sh.ID, DocumentLabel)
	require.NoError(t, err)
	assert.True(t, out.Payment.LabelPrinted)

	// Imprimir no es un evento del paquete.
	assert.Empty(t, repo.events)
}

func TestMarkPrinted_UnknownDocument(t *testing.T) {
	repo := newFakeRepo()
	sh := seedShipment(repo, string(domain.StatusPending))

	uc := NewMarkPrinted(repo, nil)

	_, err := uc.Execute(context.Background(), 7, sh.ID, "invoice")
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_document"))
}
