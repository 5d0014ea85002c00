package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udongsi/udongsi-backend/internal/markets"
	"github.com/udongsi/udongsi-backend/pkg/config"
)

type stubMarketService struct{}

func (stubMarketService) ListMarkets(context.Context) ([]markets.MarketDTO, error) {
	return []markets.MarketDTO{{MarketID: 1, MarketName: "망원시장"}}, nil
}

func (stubMarketService) GetMarket(context.Context, int64) (markets.MarketDetailDTO, error) {
	return markets.MarketDetailDTO{}, nil
}

func (stubMarketService) ListStores(context.Context, int64, *bool) ([]markets.StoreDTO, error) {
	return nil, nil
}

func (stubMarketService) ListAllStores(context.Context, int64) ([]markets.StoreDTO, error) {
	return nil, nil
}

func (stubMarketService) ListStoreDishes(context.Context, int64, int64) (markets.StoreDishesDTO, error) {
	return markets.StoreDishesDTO{}, nil
}

func (stubMarketService) ListSpecialDishes(context.Context, int64) ([]markets.SpecialDishDTO, error) {
	return nil, nil
}

func newTestRouter() http.Handler {
	return NewRouter(RouterParams{
		Config:  &config.Config{App: config.AppConfig{Env: "test"}},
		Markets: stubMarketService{},
	})
}

func TestUnknownRouteEnvelope(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/nope", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusNotFound, resp.Code)
	var envelope struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.Equal(t, "API Not Found", envelope.Message)
}

func TestWrongVerbEnvelope(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodDelete, "/api/markets", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusMethodNotAllowed, resp.Code)
	var envelope struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.Equal(t, "Method Not Allowed", envelope.Message)
}

func TestMarketsRouteWired(t *testing.T) {
	router := newTestRouter()

	for _, path := range []string{"/api/markets", "/api/common/markets"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		require.Equal(t, http.StatusOK, resp.Code, path)
		var envelope struct {
			Message string              `json:"message"`
			Data    []markets.MarketDTO `json:"data"`
			Note    string              `json:"note"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope), path)
		assert.Equal(t, "OK", envelope.Message)
		assert.NotEmpty(t, envelope.Note)
		require.Len(t, envelope.Data, 1)
	}
}

func TestHealthLive(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "test", resp.Header().Get("X-Udongsi-Env"))
}
