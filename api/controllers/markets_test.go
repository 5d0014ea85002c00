package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	marketsvc "github.com/udongsi/udongsi-backend/internal/markets"
	pkgerrors "github.com/udongsi/udongsi-backend/pkg/errors"
)

type stubMarketService struct {
	markets      []marketsvc.MarketDTO
	marketsErr   error
	detail       marketsvc.MarketDetailDTO
	detailErr    error
	stores       []marketsvc.StoreDTO
	storesErr    error
	isSpecial    *bool
	storeDishes  marketsvc.StoreDishesDTO
	storeDishErr error
	specials     []marketsvc.SpecialDishDTO
	specialsErr  error
	gotMarketID  int64
	gotStoreID   int64
}

func (s *stubMarketService) ListMarkets(context.Context) ([]marketsvc.MarketDTO, error) {
	return s.markets, s.marketsErr
}

func (s *stubMarketService) GetMarket(_ context.Context, marketID int64) (marketsvc.MarketDetailDTO, error) {
	s.gotMarketID = marketID
	return s.detail, s.detailErr
}

func (s *stubMarketService) ListStores(_ context.Context, marketID int64, isSpecial *bool) ([]marketsvc.StoreDTO, error) {
	s.gotMarketID = marketID
	s.isSpecial = isSpecial
	return s.stores, s.storesErr
}

func (s *stubMarketService) ListAllStores(_ context.Context, marketID int64) ([]marketsvc.StoreDTO, error) {
	s.gotMarketID = marketID
	return s.stores, s.storesErr
}

func (s *stubMarketService) ListStoreDishes(_ context.Context, marketID, storeID int64) (marketsvc.StoreDishesDTO, error) {
	s.gotMarketID = marketID
	s.gotStoreID = storeID
	return s.storeDishes, s.storeDishErr
}

func (s *stubMarketService) ListSpecialDishes(_ context.Context, marketID int64) ([]marketsvc.SpecialDishDTO, error) {
	s.gotMarketID = marketID
	return s.specials, s.specialsErr
}

func withURLParams(req *http.Request, pairs ...string) *http.Request {
	rc := chi.NewRouteContext()
	for i := 0; i+1 < len(pairs); i += 2 {
		rc.URLParams.Add(pairs[i], pairs[i+1])
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rc))
}

func TestListMarketsIncludesNote(t *testing.T) {
	stub := &stubMarketService{markets: []marketsvc.MarketDTO{{MarketID: 1, MarketName: "망원시장"}}}
	handler := ListMarkets(stub, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/markets", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	var envelope struct {
		Message string                `json:"message"`
		Data    []marketsvc.MarketDTO `json:"data"`
		Note    string                `json:"note"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Note != marketsvc.MarketsNote {
		t.Fatalf("unexpected note %q", envelope.Note)
	}
	if len(envelope.Data) != 1 || envelope.Data[0].MarketName != "망원시장" {
		t.Fatalf("unexpected data %+v", envelope.Data)
	}
}

func TestMarketDetailParsesPathID(t *testing.T) {
	stub := &stubMarketService{detail: marketsvc.MarketDetailDTO{MarketID: 3, MarketName: "광장시장", StoreCount: 4}}
	handler := MarketDetail(stub, nil)

	req := withURLParams(httptest.NewRequest(http.MethodGet, "/api/markets/3", nil), "marketId", "3")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if stub.gotMarketID != 3 {
		t.Fatalf("expected marketId=3 passed to service, got %d", stub.gotMarketID)
	}

	req = withURLParams(httptest.NewRequest(http.MethodGet, "/api/markets/abc", nil), "marketId", "abc")
	resp = httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestMarketStoresFlag(t *testing.T) {
	stub := &stubMarketService{}
	handler := MarketStores(stub, nil)

	req := withURLParams(httptest.NewRequest(http.MethodGet, "/api/markets/1/stores?isSpecial=1", nil), "marketId", "1")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if stub.isSpecial == nil || !*stub.isSpecial {
		t.Fatalf("expected isSpecial=true to reach the service")
	}

	stub.isSpecial = nil
	req = withURLParams(httptest.NewRequest(http.MethodGet, "/api/markets/1/stores?isSpecial=maybe", nil), "marketId", "1")
	resp = httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if stub.isSpecial != nil {
		t.Fatalf("malformed flag should be ignored")
	}
}

func TestStoreDishesNotFoundMessage(t *testing.T) {
	stub := &stubMarketService{storeDishErr: pkgerrors.New(pkgerrors.CodeNotFound, "Store Not Found")}
	handler := StoreDishes(stub, nil)

	req := withURLParams(httptest.NewRequest(http.MethodGet, "/api/markets/1/stores/99/dishes", nil), "marketId", "1", "storeId", "99")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
	var envelope struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Message != "Store Not Found" {
		t.Fatalf("unexpected message %q", envelope.Message)
	}
	if stub.gotMarketID != 1 || stub.gotStoreID != 99 {
		t.Fatalf("ids not passed through: %d %d", stub.gotMarketID, stub.gotStoreID)
	}
}

func TestSpecialDishesOptionalMarket(t *testing.T) {
	stub := &stubMarketService{specials: []marketsvc.SpecialDishDTO{{DishID: 101}}}
	handler := SpecialDishes(stub, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/home/special?marketId=2", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if stub.gotMarketID != 2 {
		t.Fatalf("expected marketId=2, got %d", stub.gotMarketID)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/home/special", nil)
	resp = httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if stub.gotMarketID != 0 {
		t.Fatalf("expected absent marketId to pass 0, got %d", stub.gotMarketID)
	}
}
