package shipment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/familyexpressec/courier-api/internal/models"
)

func statShipment(status, category string, charged, cost float64) models.Shipment {
	return models.Shipment{
		Status:   status,
		Category: category,
		Payment:  models.PaymentRecord{Amount: charged, Paid: true},
		Costs:    models.CostBreakdown{Total: cost},
	}
}

func TestComputeStats(t *testing.T) {
	shipments := []models.Shipment{
		statShipment("pending", "B", 40.50, 40.50),
		statShipment("in_transit", "B", 45.00, 40.50), // cobrado sobre la cotización
		statShipment("delivered", "G", 25.25, 25.25),
		statShipment("delivered", "G", 30.00, 25.25),
		statShipment("cancelled", "B", 40.50, 40.50),
	}

	s := ComputeStats(shipments)

	assert.Equal(t, 5, s.Total)
	assert.Equal(t, 1, s.Pending)
	assert.Equal(t, 1, s.InTransit)
	assert.Equal(t, 2, s.Delivered)
	assert.Equal(t, 1, s.Cancelled)

	assert.Equal(t, 3, s.CategoryB)
	assert.Equal(t, 2, s.CategoryG)

	assert.InDelta(t, 181.25, s.TotalRevenue, 0.001)
	assert.InDelta(t, 172.00, s.TotalCosts, 0.001)
	assert.InDelta(t, 9.25, s.TotalProfit, 0.001)
}

func TestComputeStats_Empty(t *testing.T) {
	s := ComputeStats(nil)

	assert.Equal(t, 0, s.Total)
	assert.Zero(t, s.TotalRevenue)
	assert.Zero(t, s.TotalCosts)
	assert.Zero(t, s.TotalProfit)
}

func TestGetStatistics_DateRange(t *testing.T) {
	repo := newFakeRepo()

	old := statShipment("delivered", "B", 40.50, 40.50)
	old.CreatedAt = time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	recent := statShipment("pending", "G", 25.25, 25.25)
	recent.CreatedAt = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	for _, sh := range []models.Shipment{old, recent} {
		cp := sh
		repo.nextID++
		cp.ID = repo.nextID
		repo.shipments[cp.ID] = &cp
	}

	uc := NewGetStatistics(repo)

	// Sin rango: todo.
	all, err := uc.Execute(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, all.Total)

	// Solo marzo.
	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)
	march, err := uc.Execute(context.Background(), &from, &to)
	require.NoError(t, err)

	assert.Equal(t, 1, march.Total)
	assert.Equal(t, 1, march.Pending)
	assert.Equal(t, 1, march.CategoryG)
	assert.InDelta(t, 25.25, march.TotalRevenue, 0.001)
}
