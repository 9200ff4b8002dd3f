package shipment

import (
	"context"
	"encoding/json"
	"log"
	"time"

	domain "github.com/familyexpressec/courier-api/internal/domain/shipment"
)

const trackCacheTTL = 60 * time.Second

// Cache es el contrato mínimo contra redis; los fallos se tratan como
// miss y se loguean, nunca tumban la consulta.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

func trackCacheKey(code string) string {
	return "tracking:" + code
}

// ======================================================
// PUBLIC TRACKING VIEW
// ======================================================

type TrackingEventView struct {
	Status      string    `json:"status"`
	StatusLabel string    `json:"status_label"`
	Location    string    `json:"location"`
	Note        string    `json:"note"`
	Timestamp   time.Time `json:"timestamp"`
}

// TrackingInfo es la vista pública: sin datos de pago ni identificación
// completa del destinatario.
type TrackingInfo struct {
	TrackingCode string     `json:"tracking_code"`
	Status       string     `json:"status"`
	StatusLabel  string     `json:"status_label"`
	Category     string     `json:"category"`
	DestCity     string     `json:"destination_city"`
	DestProvince string     `json:"destination_province"`
	CreatedAt    time.Time  `json:"created_at"`
	DeliveredAt  *time.Time `json:"delivered_at"`

	History []TrackingEventView `json:"history"`
}

type Track struct {
	repo  domain.Repository
	cache Cache
}

func NewTrack(repo domain.Repository, cache Cache) *Track {
	return &Track{repo: repo, cache: cache}
}

func (uc *Track) Execute(ctx context.Context, code string) (*TrackingInfo, error) {
	key := trackCacheKey(code)

	if uc.cache != nil {
		if raw, ok, err := uc.cache.Get(ctx, key); err != nil {
			log.Printf("tracking cache get failed: %v", err)
		} else if ok {
			var info TrackingInfo
			if err := json.Unmarshal(raw, &info); err == nil {
				return &info, nil
			}
		}
	}

	sh, err := uc.repo.GetShipmentByTrackingCode(ctx, code)
	if err != nil {
		return nil, err
	}

	events, err := uc.repo.ListEventsByTrackingCode(ctx, code)
	if err != nil {
		return nil, err
	}

	info := &TrackingInfo{
		TrackingCode: sh.TrackingCode,
		Status:       sh.Status,
		StatusLabel:  domain.Status(sh.Status).Label(),
		Category:     sh.Category,
		DestCity:     sh.Recipient.City,
		DestProvince: sh.Recipient.Province,
		CreatedAt:    sh.CreatedAt,
		DeliveredAt:  sh.DeliveredAt,
		History:      make([]TrackingEventView, 0, len(events)),
	}

	for _, ev := range events {
		info.History = append(info.History, TrackingEventView{
			Status:      ev.Status,
			StatusLabel: domain.Status(ev.Status).Label(),
			Location:    ev.Location,
			Note:        ev.Note,
			Timestamp:   ev.CreatedAt,
		})
	}

	if uc.cache != nil {
		if raw, err := json.Marshal(info); err == nil {
			if err := uc.cache.Set(ctx, key, raw, trackCacheTTL); err != nil {
				log.Printf("tracking cache set failed: %v", err)
			}
		}
	}

	return info, nil
}
