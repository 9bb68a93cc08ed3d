package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/Jean-snt/SUPABASE-MOD-1-3/src/catalog/domain/entity"
)

// CatalogSnapshot es la copia local persistida del catálogo, bajo una clave
// de almacenamiento fija. Se lee al arrancar y se reescribe en cada refresh
// exitoso del catálogo remoto. Es una dependencia inyectada explícita, con
// política de frescura por TTL.
type CatalogSnapshot struct {
	path string
	ttl  time.Duration
	mu   sync.RWMutex
}

// snapshotFile es el formato serializado del snapshot
type snapshotFile struct {
	SavedAt  time.Time        `json:"saved_at"`
	Products []entity.Product `json:"products"`
}

// ErrSnapshotStale indica que el snapshot existe pero venció su TTL
var ErrSnapshotStale = errors.New("catalog snapshot is stale")

// NewCatalogSnapshot crea el cache de catálogo sobre un archivo local.
// Un TTL de cero desactiva el control de frescura.
func NewCatalogSnapshot(path string, ttl time.Duration) *CatalogSnapshot {
	return &CatalogSnapshot{
		path: path,
		ttl:  ttl,
	}
}

// Save reescribe el snapshot con la lista completa de productos
func (c *CatalogSnapshot) Save(products []entity.Product) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	payload := snapshotFile{
		SavedAt:  time.Now(),
		Products: products,
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("error serializing catalog snapshot: %w", err)
	}

	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return fmt.Errorf("error writing catalog snapshot: %w", err)
	}

	return nil
}

// Load lee el snapshot local. Retorna ErrSnapshotStale si venció el TTL,
// con los productos igualmente cargados por si el caller decide usarlos.
func (c *CatalogSnapshot) Load() ([]entity.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, err := os.ReadFile(c.path)
	if err != nil {
		return nil, fmt.Errorf("error reading catalog snapshot: %w", err)
	}

	var payload snapshotFile
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("error parsing catalog snapshot: %w", err)
	}

	if c.ttl > 0 && time.Since(payload.SavedAt) > c.ttl {
		return payload.Products, ErrSnapshotStale
	}

	return payload.Products, nil
}

// LoadOrDefaults lee el snapshot y, si no existe o está corrupto, retorna
// el catálogo por defecto del local (mismo comportamiento que el front:
// localStorage o DEFAULT_PRODUCTS)
func (c *CatalogSnapshot) LoadOrDefaults() []entity.Product {
	products, err := c.Load()
	if err != nil && !errors.Is(err, ErrSnapshotStale) {
		return DefaultProducts()
	}
	return products
}
