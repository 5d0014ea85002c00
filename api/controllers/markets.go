package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/udongsi/udongsi-backend/api/responses"
	"github.com/udongsi/udongsi-backend/api/validators"
	"github.com/udongsi/udongsi-backend/internal/markets"
	pkgerrors "github.com/udongsi/udongsi-backend/pkg/errors"
	"github.com/udongsi/udongsi-backend/pkg/logger"
)

// ListMarkets returns the full market list. The note flags that proximity
// filtering is not in place yet, so clients show every market.
func ListMarkets(svc markets.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "market service unavailable"))
			return
		}

		items, err := svc.ListMarkets(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessNote(w, items, markets.MarketsNote)
	}
}

// MarketDetail returns one market with its store count.
func MarketDetail(svc markets.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "market service unavailable"))
			return
		}

		marketID, err := validators.ParsePathID(r, "marketId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := r.Context()
		if logg != nil {
			ctx = logg.WithMarketID(ctx, marketID)
		}

		detail, err := svc.GetMarket(ctx, marketID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, detail)
	}
}

// MarketStores lists a market's stores, optionally filtered by the isSpecial
// query flag ("0" or "1").
func MarketStores(svc markets.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "market service unavailable"))
			return
		}

		marketID, err := validators.ParsePathID(r, "marketId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		isSpecial := validators.ParseQueryBoolFlag(r, "isSpecial")

		items, err := svc.ListStores(r.Context(), marketID, isSpecial)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, items)
	}
}

// AllStores lists stores across every market, optionally scoped by marketId.
func AllStores(svc markets.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "market service unavailable"))
			return
		}

		marketID, _, err := validators.ParseQueryID(r, "marketId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		items, err := svc.ListAllStores(r.Context(), marketID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, items)
	}
}

// StoreDishes lists one store's dishes with group-buy progress. Both ids are
// parsed leniently so the service reports malformed pairs uniformly.
func StoreDishes(svc markets.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "market service unavailable"))
			return
		}

		marketID, _ := strconv.ParseInt(chi.URLParam(r, "marketId"), 10, 64)
		storeID, _ := strconv.ParseInt(chi.URLParam(r, "storeId"), 10, 64)

		result, err := svc.ListStoreDishes(r.Context(), marketID, storeID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}
