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

	"github.com/Jean-snt/SUPABASE-MOD-1-3/src/register/domain/entity"
	"github.com/Jean-snt/SUPABASE-MOD-1-3/src/register/domain/port"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// storeHTTP es la plomería común de los clientes del store remoto
// (estilo PostgREST): base URL y api key por entorno, timeout fijo,
// texto de error del store pasado tal cual.
type storeHTTP struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

func newStoreHTTP() storeHTTP {
	return storeHTTP{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: os.Getenv("STORE_API_URL"),
		apiKey:  os.Getenv("STORE_API_KEY"),
	}
}

func (s storeHTTP) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	return s.send(ctx, http.MethodGet, path, params, nil, out)
}

func (s storeHTTP) post(ctx context.Context, path string, body interface{}, out interface{}) error {
	return s.send(ctx, http.MethodPost, path, nil, body, out)
}

func (s storeHTTP) send(ctx context.Context, method, path string, params url.Values, body interface{}, out interface{}) error {
	endpoint := s.baseURL + path
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
	if method == http.MethodPost {
		// Pedimos la fila insertada de vuelta para conocer el id asignado
		req.Header.Set("Prefer", "return=representation")
	}
	if s.apiKey != "" {
		req.Header.Set("apikey", s.apiKey)
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.httpClient.Do(req)
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

// SalesStoreClient es el cliente HTTP de ventas contra el store remoto.
// Implementa SalesRepository. Cabecera y detalles son escrituras
// independientes, sin transacción del lado del cliente.
type SalesStoreClient struct {
	storeHTTP
}

// NewSalesStoreClient crea una nueva instancia del cliente
func NewSalesStoreClient() *SalesStoreClient {
	return &SalesStoreClient{storeHTTP: newStoreHTTP()}
}

var _ port.SalesRepository = (*SalesStoreClient)(nil)

// saleHeaderRow es la fila de sales_header en el store remoto
type saleHeaderRow struct {
	ID            int64           `json:"id,omitempty"`
	UserID        string          `json:"user_id"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod string          `json:"payment_method"`
	Status        string          `json:"status"`
	CreatedAt     *time.Time      `json:"created_at,omitempty"`
}

// saleDetailRow es la fila de sales_detail en el store remoto
type saleDetailRow struct {
	SaleHeaderID int64           `json:"sale_header_id"`
	ProductID    int64           `json:"product_id"`
	Quantity     decimal.Decimal `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Subtotal     decimal.Decimal `json:"subtotal"`
}

// InsertHeader inserta la cabecera de venta y retorna el id asignado
func (c *SalesStoreClient) InsertHeader(ctx context.Context, header *entity.SalesHeader) (int64, error) {
	row := saleHeaderRow{
		UserID:        header.UserID.String(),
		Total:         header.Total,
		PaymentMethod: string(header.PaymentMethod),
		Status:        string(header.Status),
	}

	var inserted []saleHeaderRow
	if err := c.post(ctx, "/rest/v1/sales_header", []saleHeaderRow{row}, &inserted); err != nil {
		return 0, fmt.Errorf("error inserting sales_header: %w", err)
	}
	if len(inserted) == 0 {
		return 0, fmt.Errorf("error inserting sales_header: remote store returned no row")
	}

	return inserted[0].ID, nil
}

// InsertDetails inserta todos los renglones de la venta en una llamada
func (c *SalesStoreClient) InsertDetails(ctx context.Context, details []entity.SalesDetail) error {
	rows := make([]saleDetailRow, 0, len(details))
	for _, detail := range details {
		rows = append(rows, saleDetailRow{
			SaleHeaderID: detail.SaleHeaderID,
			ProductID:    detail.ProductID,
			Quantity:     detail.Quantity,
			UnitPrice:    detail.UnitPrice,
			Subtotal:     detail.Subtotal,
		})
	}

	if err := c.post(ctx, "/rest/v1/sales_detail", rows, nil); err != nil {
		return fmt.Errorf("error inserting sales_detail: %w", err)
	}
	return nil
}

// ListByUser retorna las ventas del usuario, más recientes primero
func (c *SalesStoreClient) ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.SalesHeader, error) {
	params := url.Values{}
	params.Set("select", "*")
	params.Set("user_id", "eq."+userID.String())
	params.Set("order", "created_at.desc")

	var rows []saleHeaderRow
	if err := c.get(ctx, "/rest/v1/sales_header", params, &rows); err != nil {
		return nil, fmt.Errorf("error fetching sales history: %w", err)
	}

	headers := make([]entity.SalesHeader, 0, len(rows))
	for _, row := range rows {
		header := entity.SalesHeader{
			ID:            row.ID,
			UserID:        userID,
			Total:         row.Total,
			PaymentMethod: entity.PaymentMethod(row.PaymentMethod),
			Status:        entity.SaleStatus(row.Status),
		}
		if row.CreatedAt != nil {
			header.CreatedAt = *row.CreatedAt
		}
		headers = append(headers, header)
	}
	return headers, nil
}
