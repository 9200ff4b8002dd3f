package shipment

import (
	"context"
	"math"
	"time"

	domain "github.com/familyexpressec/courier-api/internal/domain/shipment"
	"github.com/familyexpressec/courier-api/internal/models"
)

// ======================================================
// STATISTICS
// ======================================================

type Stats struct {
	Total int `json:"total"`

	Pending   int `json:"pending"`
	InTransit int `json:"in_transit"`
	Delivered int `json:"delivered"`
	Cancelled int `json:"cancelled"`

	CategoryB int `json:"category_b"`
	CategoryG int `json:"category_g"`

	TotalRevenue float64 `json:"total_revenue"`
	TotalCosts   float64 `json:"total_costs"`
	TotalProfit  float64 `json:"total_profit"`
}

// ComputeStats agrega sobre cualquier colección de envíos: conteos por
// estado y categoría más los acumulados de cobro, costo y ganancia.
func ComputeStats(shipments []models.Shipment) Stats {
	var s Stats
	s.Total = len(shipments)

	for _, sh := range shipments {
		switch domain.Status(sh.Status) {
		case domain.StatusPending:
			s.Pending++
		case domain.StatusInTransit:
			s.InTransit++
		case domain.StatusDelivered:
			s.Delivered++
		case domain.StatusCancelled:
			s.Cancelled++
		}

		if sh.Category == "G" {
			s.CategoryG++
		} else {
			s.CategoryB++
		}

		s.TotalRevenue += sh.Payment.Amount
		s.TotalCosts += sh.Costs.Total
	}

	s.TotalRevenue = round2(s.TotalRevenue)
	s.TotalCosts = round2(s.TotalCosts)
	s.TotalProfit = round2(s.TotalRevenue - s.TotalCosts)

	return s
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ======================================================
// USE CASE
// ======================================================

type GetStatistics struct {
	repo domain.Repository
}

func NewGetStatistics(repo domain.Repository) *GetStatistics {
	return &GetStatistics{repo: repo}
}

// Execute agrega sobre todos los envíos, o sobre un rango de fechas si
// se entrega uno.
func (uc *GetStatistics) Execute(
	ctx context.Context,
	from *time.Time,
	to *time.Time,
) (Stats, error) {

	var (
		shipments []models.Shipment
		err       error
	)

	if from != nil && to != nil {
		shipments, err = uc.repo.ListShipmentsByDateRange(ctx, *from, *to)
	} else {
		shipments, err = uc.repo.ListShipments(ctx)
	}
	if err != nil {
		return Stats{}, err
	}

	return ComputeStats(shipments), nil
}
