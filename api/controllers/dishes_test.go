package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	dishsvc "github.com/udongsi/udongsi-backend/internal/dishes"
	pkgerrors "github.com/udongsi/udongsi-backend/pkg/errors"
	"github.com/udongsi/udongsi-backend/pkg/types"
)

type stubDishService struct {
	categoryItems []dishsvc.CategoryDishDTO
	categoryErr   error
	gotCategory   string
	detail        dishsvc.DetailDTO
	detailErr     error
	gotDishID     int64
	searchItems   []dishsvc.SearchResultDTO
	searchMeta    types.PageMeta
	searchErr     error
	gotParams     dishsvc.SearchParams
}

func (s *stubDishService) ListByCategory(_ context.Context, category string) ([]dishsvc.CategoryDishDTO, error) {
	s.gotCategory = category
	return s.categoryItems, s.categoryErr
}

func (s *stubDishService) GetDetail(_ context.Context, dishID int64) (dishsvc.DetailDTO, error) {
	s.gotDishID = dishID
	return s.detail, s.detailErr
}

func (s *stubDishService) Search(_ context.Context, params dishsvc.SearchParams) ([]dishsvc.SearchResultDTO, types.PageMeta, error) {
	s.gotParams = params
	return s.searchItems, s.searchMeta, s.searchErr
}

func TestCategoryDishesPassesDecodedCategory(t *testing.T) {
	stub := &stubDishService{categoryItems: []dishsvc.CategoryDishDTO{{DishID: 100, DishType: "나물"}}}
	handler := CategoryDishes(stub, nil)

	req := withURLParams(httptest.NewRequest(http.MethodGet, "/api/categories/%EB%82%98%EB%AC%BC/dishes", nil), "category", "나물")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if stub.gotCategory != "나물" {
		t.Fatalf("expected decoded category, got %q", stub.gotCategory)
	}
}

func TestCategoryDishesNotFound(t *testing.T) {
	stub := &stubDishService{categoryErr: pkgerrors.New(pkgerrors.CodeNotFound, "No dishes found for this category")}
	handler := CategoryDishes(stub, nil)

	req := withURLParams(httptest.NewRequest(http.MethodGet, "/api/categories/국/dishes", nil), "category", "국")
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
	if envelope.Message != "No dishes found for this category" {
		t.Fatalf("unexpected message %q", envelope.Message)
	}
}

func TestDishDetailInvalidID(t *testing.T) {
	handler := DishDetail(&stubDishService{}, nil)

	req := withURLParams(httptest.NewRequest(http.MethodGet, "/api/common/dish/abc", nil), "dishId", "abc")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
	var envelope struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Message != "Invalid dishId" {
		t.Fatalf("unexpected message %q", envelope.Message)
	}
}

func TestSearchDishesParamsAndMeta(t *testing.T) {
	stub := &stubDishService{
		searchItems: []dishsvc.SearchResultDTO{{DishID: 100}},
		searchMeta:  types.PageMeta{Page: 2, Size: 5, Total: 11, Pages: 3},
	}
	handler := SearchDishes(stub, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/common/search?keyword=나물&marketId=1&category=반찬&page=2&size=5&sort=price,desc", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if stub.gotParams.Keyword != "나물" || stub.gotParams.MarketID != 1 || stub.gotParams.Category != "반찬" {
		t.Fatalf("unexpected params %+v", stub.gotParams)
	}
	if stub.gotParams.Sort != "price,desc" || stub.gotParams.Page.Page != 2 || stub.gotParams.Page.Size != 5 {
		t.Fatalf("unexpected params %+v", stub.gotParams)
	}

	var envelope struct {
		Message string                    `json:"message"`
		Data    []dishsvc.SearchResultDTO `json:"data"`
		Meta    types.PageMeta            `json:"meta"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Meta.Total != 11 || envelope.Meta.Pages != 3 {
		t.Fatalf("unexpected meta %+v", envelope.Meta)
	}
}

func TestSearchDishesRejectsBadPage(t *testing.T) {
	handler := SearchDishes(&stubDishService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/common/search?page=zero", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}
