package shipment

import (
	"context"
	"errors"
	"time"

	domain "github.com/familyexpressec/courier-api/internal/domain/shipment"
	"github.com/familyexpressec/courier-api/internal/models"
)

// fakeRepo es un domain.Repository en memoria para los tests de usecase.
type fakeRepo struct {
	clients   map[uint]*models.Client
	members   map[uint]*models.FamilyMember
	shipments map[uint]*models.Shipment
	events    []models.TrackingEvent

	nextID uint

	getShipmentCalls int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		clients:   map[uint]*models.Client{},
		members:   map[uint]*models.FamilyMember{},
		shipments: map[uint]*models.Shipment{},
	}
}

func (f *fakeRepo) GetClientByID(ctx context.Context, id uint) (*models.Client, error) {
	c, ok := f.clients[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return c, nil
}

func (f *fakeRepo) GetFamilyMember(ctx context.Context, clientID, memberID uint) (*models.FamilyMember, error) {
	m, ok := f.members[memberID]
	if !ok || m.ClientID != clientID {
		return nil, errors.New("record not found")
	}
	return m, nil
}

func (f *fakeRepo) CreateShipment(ctx context.Context, sh *models.Shipment) error {
	f.nextID++
	sh.ID = f.nextID
	if sh.CreatedAt.IsZero() {
		sh.CreatedAt = time.Now()
	}
	f.shipments[sh.ID] = sh
	return nil
}

func (f *fakeRepo) GetShipmentByID(ctx context.Context, id uint) (*models.Shipment, error) {
	sh, ok := f.shipments[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return sh, nil
}

func (f *fakeRepo) GetShipmentByTrackingCode(ctx context.Context, code string) (*models.Shipment, error) {
	f.getShipmentCalls++
	for _, sh := range f.shipments {
		if sh.TrackingCode == code {
			return sh, nil
		}
	}
	return nil, errors.New("record not found")
}

func (f *fakeRepo) UpdateShipment(ctx context.Context, sh *models.Shipment) error {
	f.shipments[sh.ID] = sh
	return nil
}

func (f *fakeRepo) AppendEvent(ctx context.Context, ev *models.TrackingEvent) error {
	f.events = append(f.events, *ev)
	return nil
}

func (f *fakeRepo) ListEventsByTrackingCode(ctx context.Context, code string) ([]models.TrackingEvent, error) {
	var out []models.TrackingEvent
	for _, ev := range f.events {
		if ev.TrackingCode == code {
			out = append(out, ev)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListShipments(ctx context.Context) ([]models.Shipment, error) {
	var out []models.Shipment
	for _, sh := range f.shipments {
		out = append(out, *sh)
	}
	return out, nil
}

func (f *fakeRepo) ListShipmentsByClient(ctx context.Context, clientID uint) ([]models.Shipment, error) {
	var out []models.Shipment
	for _, sh := range f.shipments {
		if sh.ClientID == clientID {
			out = append(out, *sh)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListShipmentsByCustomer(ctx context.Context, customerID uint) ([]models.Shipment, error) {
	var out []models.Shipment
	for _, sh := range f.shipments {
		if sh.CustomerID != nil && *sh.CustomerID == customerID {
			out = append(out, *sh)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListShipmentsByStatus(ctx context.Context, status string) ([]models.Shipment, error) {
	var out []models.Shipment
	for _, sh := range f.shipments {
		if sh.Status == status {
			out = append(out, *sh)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListShipmentsByDateRange(ctx context.Context, from, to time.Time) ([]models.Shipment, error) {
	var out []models.Shipment
	for _, sh := range f.shipments {
		if !sh.CreatedAt.Before(from) && sh.CreatedAt.Before(to) {
			out = append(out, *sh)
		}
	}
	return out, nil
}

func (f *fakeRepo) CountShipmentsCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	shipments, _ := f.ListShipmentsByDateRange(ctx, from, to)
	return int64(len(shipments)), nil
}

func (f *fakeRepo) ExistsByTrackingCode(ctx context.Context, code string) (bool, error) {
	for _, sh := range f.shipments {
		if sh.TrackingCode == code {
			return true, nil
		}
	}
	return false, nil
}

var _ domain.Repository = (*fakeRepo)(nil)

// fakeCache registra operaciones para verificar la invalidación.
type fakeCache struct {
	data    map[string][]byte
	deleted []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string][]byte{}}
}

func (f *fakeCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	v, ok := f.data[key]
	return v, ok, nil
}

func (f *fakeCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	f.data[key] = value
	return nil
}

func (f *fakeCache) Delete(ctx context.Context, key string) error {
	f.deleted = append(f.deleted, key)
	delete(f.data, key)
	return nil
}

var _ Cache = (*fakeCache)(nil)
