package shipment

import (
	"context"
	"log"

	"github.com/familyexpressec/courier-api/internal/audit"
	domain "github.com/familyexpressec/courier-api/internal/domain/shipment"
	"github.com/familyexpressec/courier-api/internal/httperr"
	"github.com/familyexpressec/courier-api/internal/models"
	"github.com/familyexpressec/courier-api/internal/timezone"
)

type UpdateStatus struct {
	repo  domain.Repository
	cache Cache
	audit *audit.Dispatcher
}

func NewUpdateStatus(
	repo domain.Repository,
	cache Cache,
	audit *audit.Dispatcher,
) *UpdateStatus {
	return &UpdateStatus{
		repo:  repo,
		cache: cache,
		audit: audit,
	}
}

func (uc *UpdateStatus) Execute(
	ctx context.Context,
	staffID uint,
	shipmentID uint,
	to domain.Status,
	location string,
	note string,
) (*models.Shipment, error) {

	sh, err := uc.repo.GetShipmentByID(ctx, shipmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("shipment_not_found")
	}

	now := timezone.Now()
	ev, err := domain.Transition(sh, to, location, note, now)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateShipment(ctx, sh); err != nil {
		return nil, err
	}

	if err := uc.repo.AppendEvent(ctx, ev); err != nil {
		return nil, err
	}

	// El tracking público cacheado quedó viejo; si el DEL falla solo se
	// retrasa la vista por el TTL.
	if uc.cache != nil {
		if err := uc.cache.Delete(ctx, trackCacheKey(sh.TrackingCode)); err != nil {
			log.Printf("tracking cache invalidation failed: %v", err)
		}
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			UserID:   &staffID,
			Action:   "shipment_status_updated",
			Entity:   "shipment",
			EntityID: &sh.ID,
			Metadata: map[string]any{"status": string(to), "location": location},
		})
	}

	return sh, nil
}
