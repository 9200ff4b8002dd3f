package shipment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/familyexpressec/courier-api/internal/domain/shipment"
	"github.com/familyexpressec/courier-api/internal/models"
)

func seedTrackable(repo *fakeRepo) *models.Shipment {
	sh := seedShipment(repo, string(domain.StatusInTransit))
	sh.Recipient = models.RecipientSnapshot{
		Name:     "Rosa López",
		Phone:    "0991234567",
		City:     "Guayaquil",
		Province: "Guayas",
	}
	sh.Payment = models.PaymentRecord{Amount: 40.50, Method: "cash", Paid: true}

	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	repo.events = append(repo.events,
		models.TrackingEvent{
			ShipmentID:   sh.ID,
			TrackingCode: sh.TrackingCode,
			Status:       string(domain.StatusPending),
			Location:     "USA",
			Note:         "Paquete registrado y pagado",
			CreatedAt:    base,
		},
		models.TrackingEvent{
			ShipmentID:   sh.ID,
			TrackingCode: sh.TrackingCode,
			Status:       string(domain.StatusInTransit),
			Location:     "Miami",
			CreatedAt:    base.Add(6 * time.Hour),
		},
	)
	return sh
}

func TestTrack_BuildsPublicView(t *testing.T) {
	repo := newFakeRepo()
	sh := seedTrackable(repo)

	uc := NewTrack(repo, nil)

	info, err := uc.Execute(context.Background(), sh.TrackingCode)
	require.NoError(t, err)

	assert.Equal(t, sh.TrackingCode, info.TrackingCode)
	assert.Equal(t, string(domain.StatusInTransit), info.Status)
	assert.Equal(t, "En tránsito", info.StatusLabel)
	assert.Equal(t, "Guayaquil", info.DestCity)
	assert.Equal(t, "Guayas", info.DestProvince)

	require.Len(t, info.History, 2)
	assert.Equal(t, string(domain.StatusPending), info.History[0].Status)
	assert.Equal(t, "USA", info.History[0].Location)
	assert.Equal(t, string(domain.StatusInTransit), info.History[1].Status)
	assert.True(t, info.History[0].Timestamp.Before(info.History[1].Timestamp))
}

func TestTrack_CacheMissThenHit(t *testing.T) {
	repo := newFakeRepo()
	cache := newFakeCache()
	sh := seedTrackable(repo)

	uc := NewTrack(repo, cache)

	first, err := uc.Execute(context.Background(), sh.TrackingCode)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.getShipmentCalls)
	assert.Contains(t, cache.data, trackCacheKey(sh.TrackingCode))

	// Segunda consulta dentro del TTL: sale del cache, no del repo.
	second, err := uc.Execute(context.Background(), sh.TrackingCode)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.getShipmentCalls)

	assert.Equal(t, first.TrackingCode, second.TrackingCode)
	assert.Equal(t, first.Status, second.Status)
	assert.Len(t, second.History, len(first.History))
}

func TestTrack_UnknownCode(t *testing.T) {
	repo := newFakeRepo()
	uc := NewTrack(repo, newFakeCache())

	_, err := uc.Execute(context.Background(), "FE-20250301-9999")
	require.Error(t, err)
}
