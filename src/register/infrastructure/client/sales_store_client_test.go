package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Jean-snt/SUPABASE-MOD-1-3/src/register/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStoreHTTP(serverURL string) storeHTTP {
	return storeHTTP{
		httpClient: &http.Client{Timeout: 5 * time.Second},
		baseURL:    serverURL,
		apiKey:     "test-key",
	}
}

func TestSalesStoreClient_InsertHeaderReturnsAssignedID(t *testing.T) {
	var gotPrefer, gotAPIKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/rest/v1/sales_header", r.URL.Path)
		gotPrefer = r.Header.Get("Prefer")
		gotAPIKey = r.Header.Get("apikey")

		var rows []saleHeaderRow
		require.NoError(t, json.NewDecoder(r.Body).Decode(&rows))
		require.Len(t, rows, 1)
		assert.Equal(t, "efectivo", rows[0].PaymentMethod)

		rows[0].ID = 321
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(rows)
	}))
	defer server.Close()

	client := &SalesStoreClient{storeHTTP: testStoreHTTP(server.URL)}
	header := &entity.SalesHeader{
		UserID:        uuid.New(),
		Total:         decimal.RequireFromString("10.30"),
		PaymentMethod: entity.PaymentCash,
		Status:        entity.SaleCompleted,
	}

	id, err := client.InsertHeader(context.Background(), header)

	require.NoError(t, err)
	assert.Equal(t, int64(321), id)
	assert.Equal(t, "return=representation", gotPrefer)
	assert.Equal(t, "test-key", gotAPIKey)
}

func TestSalesStoreClient_StoreErrorTextPassedThrough(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message":"new row violates row-level security policy"}`))
	}))
	defer server.Close()

	client := &SalesStoreClient{storeHTTP: testStoreHTTP(server.URL)}

	_, err := client.InsertHeader(context.Background(), &entity.SalesHeader{
		UserID:        uuid.New(),
		Total:         decimal.NewFromInt(10),
		PaymentMethod: entity.PaymentCash,
		Status:        entity.SaleCompleted,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 403")
	assert.Contains(t, err.Error(), "row-level security policy")
}

func TestSalesStoreClient_InsertDetailsSendsAllRows(t *testing.T) {
	var received []saleDetailRow
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/rest/v1/sales_detail", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client := &SalesStoreClient{storeHTTP: testStoreHTTP(server.URL)}
	details := []entity.SalesDetail{
		{SaleHeaderID: 321, ProductID: 1, Quantity: decimal.NewFromFloat(1.5), UnitPrice: decimal.RequireFromString("5.20"), Subtotal: decimal.RequireFromString("7.80")},
		{SaleHeaderID: 321, ProductID: 2, Quantity: decimal.NewFromInt(1), UnitPrice: decimal.RequireFromString("2.50"), Subtotal: decimal.RequireFromString("2.50")},
	}

	require.NoError(t, client.InsertDetails(context.Background(), details))
	require.Len(t, received, 2)
	assert.Equal(t, int64(321), received[0].SaleHeaderID)
	assert.Equal(t, int64(2), received[1].ProductID)
}

func TestCashMovementStoreClient_LastOpeningFilters(t *testing.T) {
	userID := uuid.New()
	createdAt := time.Now().Add(-time.Hour)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		assert.Equal(t, "eq."+userID.String(), query.Get("user_id"))
		assert.Equal(t, "eq.apertura", query.Get("movement_type"))
		assert.Equal(t, "created_at.desc", query.Get("order"))
		assert.Equal(t, "1", query.Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]cashMovementRow{{
			ID:           9,
			UserID:       userID.String(),
			MovementType: "apertura",
			Amount:       decimal.RequireFromString("50.00"),
			CreatedAt:    &createdAt,
		}})
	}))
	defer server.Close()

	client := &CashMovementStoreClient{storeHTTP: testStoreHTTP(server.URL)}

	movement, err := client.LastOpening(context.Background(), userID)

	require.NoError(t, err)
	require.NotNil(t, movement)
	assert.Equal(t, int64(9), movement.ID)
	assert.Equal(t, entity.MovementOpening, movement.MovementType)
	assert.Equal(t, "50.00", movement.Amount.StringFixed(2))
}

func TestCashMovementStoreClient_LastOpeningEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte("[]"))
	}))
	defer server.Close()

	client := &CashMovementStoreClient{storeHTTP: testStoreHTTP(server.URL)}

	movement, err := client.LastOpening(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.Nil(t, movement)
}
