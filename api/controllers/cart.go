package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/udongsi/udongsi-backend/api/responses"
	"github.com/udongsi/udongsi-backend/api/validators"
	"github.com/udongsi/udongsi-backend/internal/cart"
	pkgerrors "github.com/udongsi/udongsi-backend/pkg/errors"
	"github.com/udongsi/udongsi-backend/pkg/logger"
)

// AddCartItem merges a quantity of one dish into the caller's cart and
// returns the enriched row with the group-buy progress after the merge.
func AddCartItem(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		var input cart.AddItemInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			if pkgerrors.IsCode(err, pkgerrors.CodeValidation) {
				err = pkgerrors.New(pkgerrors.CodeValidation, "userId, dishId, and positive quantity are required.")
			}
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := r.Context()
		if logg != nil {
			ctx = logg.WithUserID(ctx, input.UserID)
			ctx = logg.WithDishID(ctx, input.DishID)
		}

		item, err := svc.AddToCart(ctx, input)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, item)
	}
}

// GetCartItems returns every cart row for the userId query parameter. Missing
// or malformed ids fall through to the service's validation.
func GetCartItems(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		raw := strings.TrimSpace(r.URL.Query().Get("userId"))
		userID, _ := strconv.ParseInt(raw, 10, 64)

		ctx := r.Context()
		if logg != nil {
			ctx = logg.WithUserID(ctx, userID)
		}

		items, err := svc.GetCart(ctx, userID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, items)
	}
}
