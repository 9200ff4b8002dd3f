package tracking

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	count    int64
	countErr error

	existing  map[string]bool
	existsErr error
}

func (f *fakeStore) CountShipmentsCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return f.count, nil
}

func (f *fakeStore) ExistsByTrackingCode(ctx context.Context, code string) (bool, error) {
	if f.existsErr != nil {
		return false, f.existsErr
	}
	return f.existing[code], nil
}

func newTestGenerator(store Store) *Generator {
	g := NewGenerator(store, "FE")
	// Reloj fijo: 2025-03-01 12:00 hora de Ecuador (UTC-5).
	g.nowFn = func() time.Time {
		return time.Date(2025, 3, 1, 17, 0, 0, 0, time.UTC)
	}
	g.rng = rand.New(rand.NewSource(1))
	return g
}

func TestGenerate_Sequential(t *testing.T) {
	store := &fakeStore{existing: map[string]bool{}}
	g := newTestGenerator(store)

	first := g.Generate(context.Background())
	assert.Equal(t, "FE-20250301-0001", first)

	// Un envío más registrado ese día.
	store.count = 1
	second := g.Generate(context.Background())
	assert.Equal(t, "FE-20250301-0002", second)

	assert.NotEqual(t, first, second)
}

func TestGenerate_CollisionAppendsSuffix(t *testing.T) {
	store := &fakeStore{
		count:    1,
		existing: map[string]bool{"FE-20250301-0002": true},
	}
	g := newTestGenerator(store)

	code := g.Generate(context.Background())
	assert.True(t, strings.HasPrefix(code, "FE-20250301-0002-"), code)
	assert.Len(t, code, len("FE-20250301-0002-000"))
}

func TestGenerate_CountErrorFallsBackToTimestamp(t *testing.T) {
	store := &fakeStore{countErr: errors.New("store down")}
	g := newTestGenerator(store)

	code := g.Generate(context.Background())
	assert.True(t, strings.HasPrefix(code, "FE-"), code)
	// Formato de fallback: FE-<unix millis>, sin fecha YYYYMMDD.
	assert.NotContains(t, code, "20250301")
}

func TestGenerate_ExistsErrorFallsBackToTimestamp(t *testing.T) {
	store := &fakeStore{existsErr: errors.New("store down"), existing: nil}
	g := newTestGenerator(store)

	code := g.Generate(context.Background())
	assert.Len(t, strings.Split(code, "-"), 2)
}

func TestGenerate_UniqueWithinRun(t *testing.T) {
	// En un solo hilo, códigos del mismo día nunca se repiten.
	store := &fakeStore{existing: map[string]bool{}}
	g := newTestGenerator(store)

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		store.count = int64(i)
		code := g.Generate(context.Background())
		require.False(t, seen[code], "duplicated code %s", code)
		seen[code] = true
	}
}

func TestParse(t *testing.T) {
	g := newTestGenerator(&fakeStore{})

	p, ok := g.Parse("FE-20250301-0002")
	require.True(t, ok)
	assert.Equal(t, "FE", p.Prefix)
	assert.Equal(t, "2025-03-01", p.Date)
	assert.Equal(t, "0002", p.Sequential)

	_, ok = g.Parse("DHL-20250301-0002")
	assert.False(t, ok)

	_, ok = g.Parse("FE-1740844800000")
	assert.False(t, ok)
}
