package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/Jean-snt/SUPABASE-MOD-1-3/src/catalog/domain/entity"
	"github.com/Jean-snt/SUPABASE-MOD-1-3/src/catalog/domain/port"

	"github.com/shopspring/decimal"
)

// CatalogStoreClient es el cliente HTTP del catálogo contra el store remoto
// (API REST estilo PostgREST: filtros por query param, una tabla por ruta).
// Implementa ProductRepository y StockRepository.
type CatalogStoreClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// storeProduct es la fila de products tal como la expone el store remoto
type storeProduct struct {
	ID        int64            `json:"id"`
	Name      string           `json:"name"`
	Price     decimal.Decimal  `json:"price"`
	Unit      string           `json:"unit"`
	Category  string           `json:"category"`
	Image     string           `json:"image"`
	Stock     *decimal.Decimal `json:"stock"`
	CreatedAt *time.Time       `json:"created_at"`
	UpdatedAt *time.Time       `json:"updated_at"`
}

// NewCatalogStoreClient crea una nueva instancia del cliente
func NewCatalogStoreClient() *CatalogStoreClient {
	baseURL := os.Getenv("STORE_API_URL")
	apiKey := os.Getenv("STORE_API_KEY")

	return &CatalogStoreClient{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

var _ port.ProductRepository = (*CatalogStoreClient)(nil)
var _ port.StockRepository = (*CatalogStoreClient)(nil)

// List retorna los productos del store remoto ordenados por nombre
func (c *CatalogStoreClient) List(ctx context.Context, category string) ([]entity.Product, error) {
	params := url.Values{}
	params.Set("select", "*")
	params.Set("order", "name.asc")
	if category != "" {
		params.Set("category", "eq."+category)
	}

	var rows []storeProduct
	if err := c.get(ctx, "/rest/v1/products", params, &rows); err != nil {
		return nil, fmt.Errorf("error fetching products: %w", err)
	}

	return toProducts(rows), nil
}

// Search busca por coincidencia parcial de nombre (ilike del store)
func (c *CatalogStoreClient) Search(ctx context.Context, term string) ([]entity.Product, error) {
	params := url.Values{}
	params.Set("select", "*")
	params.Set("order", "name.asc")
	params.Set("name", "ilike.*"+term+"*")

	var rows []storeProduct
	if err := c.get(ctx, "/rest/v1/products", params, &rows); err != nil {
		return nil, fmt.Errorf("error searching products: %w", err)
	}

	return toProducts(rows), nil
}

// GetByID retorna un producto puntual
func (c *CatalogStoreClient) GetByID(ctx context.Context, productID int64) (*entity.Product, error) {
	params := url.Values{}
	params.Set("select", "*")
	params.Set("id", fmt.Sprintf("eq.%d", productID))

	var rows []storeProduct
	if err := c.get(ctx, "/rest/v1/products", params, &rows); err != nil {
		return nil, fmt.Errorf("error fetching product %d: %w", productID, err)
	}
	if len(rows) == 0 {
		return nil, entity.ErrProductNotFound
	}

	product := toProduct(rows[0])
	return &product, nil
}

// ListCategories retorna la taxonomía de categorías
func (c *CatalogStoreClient) ListCategories(ctx context.Context) ([]entity.Category, error) {
	params := url.Values{}
	params.Set("select", "id,name,color")
	params.Set("order", "id.asc")

	var categories []entity.Category
	if err := c.get(ctx, "/rest/v1/categories", params, &categories); err != nil {
		return nil, fmt.Errorf("error fetching categories: %w", err)
	}
	return categories, nil
}

// GetStock lee solo la columna stock del producto
func (c *CatalogStoreClient) GetStock(ctx context.Context, productID int64) (*decimal.Decimal, error) {
	params := url.Values{}
	params.Set("select", "stock")
	params.Set("id", fmt.Sprintf("eq.%d", productID))

	var rows []struct {
		Stock *decimal.Decimal `json:"stock"`
	}
	if err := c.get(ctx, "/rest/v1/products", params, &rows); err != nil {
		return nil, fmt.Errorf("error reading stock for product %d: %w", productID, err)
	}
	if len(rows) == 0 {
		return nil, entity.ErrProductNotFound
	}

	return rows[0].Stock, nil
}

// UpdateStock escribe el nuevo stock del producto vía PATCH
func (c *CatalogStoreClient) UpdateStock(ctx context.Context, productID int64, newStock decimal.Decimal) error {
	params := url.Values{}
	params.Set("id", fmt.Sprintf("eq.%d", productID))

	payload := map[string]decimal.Decimal{"stock": newStock}
	if err := c.send(ctx, http.MethodPatch, "/rest/v1/products", params, payload, nil); err != nil {
		return fmt.Errorf("error updating stock for product %d: %w", productID, err)
	}
	return nil
}

func (c *CatalogStoreClient) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	return c.send(ctx, http.MethodGet, path, params, nil, out)
}

func (c *CatalogStoreClient) send(ctx context.Context, method, path string, params url.Values, body interface{}, out interface{}) error {
	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("error serializing request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("apikey", c.apiKey)
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error calling remote store: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("error reading response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// El texto del error del store se pasa tal cual, para diagnóstico
		return fmt.Errorf("remote store returned status %d: %s", resp.StatusCode, string(data))
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("error parsing remote store response: %w", err)
		}
	}

	return nil
}

func toProduct(row storeProduct) entity.Product {
	product := entity.Product{
		ID:       row.ID,
		Name:     row.Name,
		Price:    row.Price,
		Unit:     row.Unit,
		Category: row.Category,
		Image:    row.Image,
		Stock:    row.Stock,
	}
	if row.CreatedAt != nil {
		product.CreatedAt = *row.CreatedAt
	}
	if row.UpdatedAt != nil {
		product.UpdatedAt = *row.UpdatedAt
	}
	return product
}

func toProducts(rows []storeProduct) []entity.Product {
	products := make([]entity.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, toProduct(row))
	}
	return products
}
