package controllers

import (
	"net/http"

	"github.com/udongsi/udongsi-backend/api/responses"
	"github.com/udongsi/udongsi-backend/api/validators"
	"github.com/udongsi/udongsi-backend/internal/markets"
	pkgerrors "github.com/udongsi/udongsi-backend/pkg/errors"
	"github.com/udongsi/udongsi-backend/pkg/logger"
)

// SpecialDishes returns the home screen's deal rail, optionally scoped to one
// market.
func SpecialDishes(svc markets.Service, logg *logger.Logger) http.HandlerFunc {
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

		items, err := svc.ListSpecialDishes(r.Context(), marketID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, items)
	}
}
