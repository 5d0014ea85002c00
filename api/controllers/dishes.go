package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/udongsi/udongsi-backend/api/responses"
	"github.com/udongsi/udongsi-backend/api/validators"
	"github.com/udongsi/udongsi-backend/internal/dishes"
	pkgerrors "github.com/udongsi/udongsi-backend/pkg/errors"
	"github.com/udongsi/udongsi-backend/pkg/logger"
	"github.com/udongsi/udongsi-backend/pkg/pagination"
)

// CategoryDishes lists every dish of the category path parameter.
func CategoryDishes(svc dishes.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "dish service unavailable"))
			return
		}

		category := chi.URLParam(r, "category")
		items, err := svc.ListByCategory(r.Context(), category)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, items)
	}
}

// DishDetail returns one dish with its group-buy progress.
func DishDetail(svc dishes.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "dish service unavailable"))
			return
		}

		dishID, err := validators.ParsePathID(r, "dishId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := r.Context()
		if logg != nil {
			ctx = logg.WithDishID(ctx, dishID)
		}

		detail, err := svc.GetDetail(ctx, dishID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, detail)
	}
}

// SearchDishes filters dishes by keyword, market and category with offset
// pagination and an allowlisted sort.
func SearchDishes(svc dishes.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "dish service unavailable"))
			return
		}

		marketID, _, err := validators.ParseQueryID(r, "marketId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		page, err := validators.ParseQueryInt(r, "page", pagination.DefaultPage, 1, 1_000_000)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		size, err := validators.ParseQueryInt(r, "size", pagination.DefaultSize, 1, pagination.MaxSize)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		params := dishes.SearchParams{
			Keyword:  strings.TrimSpace(r.URL.Query().Get("keyword")),
			MarketID: marketID,
			Category: strings.TrimSpace(r.URL.Query().Get("category")),
			Sort:     strings.TrimSpace(r.URL.Query().Get("sort")),
			Page:     pagination.Params{Page: page, Size: size},
		}

		items, meta, err := svc.Search(r.Context(), params)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessMeta(w, items, meta)
	}
}
