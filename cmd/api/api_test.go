package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/torre9/condominio/internal/condominio/types"
	"github.com/torre9/condominio/internal/db"
	"github.com/torre9/condominio/internal/store"
)

func newTestApp(t *testing.T, seeded bool) *application {
	t.Helper()

	database, err := db.New(filepath.Join(t.TempDir(), "test.db"), 1, 1, "1m")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	storage := store.NewStorage(database)
	require.NoError(t, storage.Schema.Apply(context.Background(), store.DefaultSchema))

	if seeded {
		payload := &types.SeedPayload{
			Period: "2026-01",
			Apartments: []types.Apartment{
				{Code: "PB-A", Owner: "Ana"},
				{Code: "PB-B", Owner: "Bruno"},
			},
			Expenses: []types.ExpenseLine{
				{Period: "2026-01", Concept: "Limpieza", AmountUSD: 33.00, AmountBs: 1188.00},
			},
			Dues: []types.DueLine{
				{Code: "PB-A", Period: "2026-01", AssessedUSD: 16.50},
				{Code: "PB-B", Period: "2026-01", AssessedUSD: 16.50},
			},
		}
		require.NoError(t, storage.Seed.Apply(context.Background(), payload, &types.SeedReport{}))
	}

	return &application{
		config: config{addr: ":0"},
		store:  *storage,
	}
}

func TestHealthEndpoint(t *testing.T) {
	app := newTestApp(t, false)
	mux := app.mount()

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	require.Equal(t, http.StatusOK, rr.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "available", body["status"])
}

func TestAlicuotaEndpoint(t *testing.T) {
	app := newTestApp(t, true)
	mux := app.mount()

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/alicuota?mes=2026-01", nil))

	require.Equal(t, http.StatusOK, rr.Code)

	var body GetAlicuotaResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, 2, body.Data.ApartmentUnit)
	assert.InDelta(t, 33.00, body.Data.TotalUSD, 1e-9)
	assert.InDelta(t, 16.50, body.Data.PerApartment, 1e-9)
}

func TestAlicuotaEndpointWithEmptyRoster(t *testing.T) {
	app := newTestApp(t, false)
	mux := app.mount()

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/alicuota?mes=2026-01", nil))

	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestCobranzasEndpoint(t *testing.T) {
	app := newTestApp(t, true)
	mux := app.mount()

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/cobranzas", nil))

	require.Equal(t, http.StatusOK, rr.Code)

	var body GetCobranzasResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.Len(t, body.Data, 2)
	assert.Equal(t, "PB-A", body.Data[0].Code)
	assert.InDelta(t, 16.50, body.Data[0].BalanceUSD, 1e-9)
}

func TestCreatePagoEndpoint(t *testing.T) {
	app := newTestApp(t, true)
	mux := app.mount()

	payload := `{
		"apartamento_codigo": "PB-A",
		"fecha_pago": "2026-02-03",
		"monto": 16.50,
		"tasa_bcv": 36.00,
		"referencia": "0012345"
	}`

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/pagos", strings.NewReader(payload)))

	require.Equal(t, http.StatusCreated, rr.Code)

	var body CreatePagoResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.NotZero(t, body.Data.ID)
	assert.Equal(t, store.NoticeStatusPending, body.Data.Status)

	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/notificaciones?apartamento=PB-A", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var list GetNotificacionesResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	require.Len(t, list.Data, 1)
	assert.Equal(t, "0012345", list.Data[0].Reference)
}

func TestCreatePagoEndpointValidation(t *testing.T) {
	app := newTestApp(t, true)
	mux := app.mount()

	tests := []struct {
		name string
		body string
	}{
		{name: "missing code", body: `{"monto": 16.50}`},
		{name: "no amount", body: `{"apartamento_codigo": "PB-A"}`},
		{name: "bad date", body: `{"apartamento_codigo": "PB-A", "monto": 1, "fecha_pago": "03/02/2026"}`},
		{name: "unknown field", body: `{"apartamento_codigo": "PB-A", "monto": 1, "extra": true}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/pagos", strings.NewReader(tt.body)))
			assert.Equal(t, http.StatusBadRequest, rr.Code)
		})
	}
}
