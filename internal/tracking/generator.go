package tracking

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/jinzhu/now"

	"github.com/familyexpressec/courier-api/internal/timezone"
)

// Store es lo mínimo que el generador necesita del almacén de envíos.
type Store interface {
	CountShipmentsCreatedBetween(ctx context.Context, from, to time.Time) (int64, error)
	ExistsByTrackingCode(ctx context.Context, code string) (bool, error)
}

// Generator produce códigos FE-YYYYMMDD-NNNN donde NNNN es el número de
// envío del día (hora de Ecuador). La unicidad es best-effort: el conteo
// y el formateo no están serializados, así que dos terminales creando a
// la vez pueden chocar; en ese caso se agrega un sufijo aleatorio en vez
// de reintentar el conteo.
type Generator struct {
	store  Store
	prefix string

	nowFn func() time.Time
	rng   *rand.Rand
}

func NewGenerator(store Store, prefix string) *Generator {
	return &Generator{
		store:  store,
		prefix: prefix,
		nowFn:  time.Now,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Generate nunca bloquea la creación del envío: si el conteo falla,
// degrada a un código por timestamp en vez de devolver error.
func (g *Generator) Generate(ctx context.Context) string {
	loc := timezone.Location(timezone.DefaultTimezone)
	local := g.nowFn().In(loc)

	dayStart := now.New(local).BeginningOfDay()
	dayEnd := dayStart.Add(24 * time.Hour)

	count, err := g.store.CountShipmentsCreatedBetween(ctx, dayStart, dayEnd)
	if err != nil {
		log.Printf("tracking: count failed, falling back to timestamp code: %v", err)
		return fmt.Sprintf("%s-%d", g.prefix, local.UnixMilli())
	}

	code := fmt.Sprintf("%s-%s-%04d", g.prefix, local.Format("20060102"), count+1)

	exists, err := g.store.ExistsByTrackingCode(ctx, code)
	if err != nil {
		log.Printf("tracking: uniqueness check failed, falling back to timestamp code: %v", err)
		return fmt.Sprintf("%s-%d", g.prefix, local.UnixMilli())
	}

	if exists {
		// Otro terminal ganó la carrera; desambiguar, no recontar.
		return fmt.Sprintf("%s-%03d", code, g.rng.Intn(1000))
	}

	return code
}

type Parsed struct {
	Prefix     string
	Date       string
	Sequential string
	Full       string
}

// Parse descompone un código generado; devuelve false para códigos de
// otro prefijo o con formato de fallback por timestamp.
func (g *Generator) Parse(code string) (Parsed, bool) {
	parts := strings.Split(code, "-")
	if len(parts) < 3 || parts[0] != g.prefix {
		return Parsed{}, false
	}

	dateStr := parts[1]
	if len(dateStr) != 8 {
		return Parsed{}, false
	}

	return Parsed{
		Prefix:     parts[0],
		Date:       fmt.Sprintf("%s-%s-%s", dateStr[0:4], dateStr[4:6], dateStr[6:8]),
		Sequential: parts[2],
		Full:       code,
	}, true
}
