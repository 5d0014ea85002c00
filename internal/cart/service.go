package cart

import (
	"context"

	"gorm.io/gorm"

	"github.com/udongsi/udongsi-backend/pkg/db"
	pkgerrors "github.com/udongsi/udongsi-backend/pkg/errors"
)

// ServiceParams groups dependencies for the cart service.
type ServiceParams struct {
	Client *db.Client
	Repo   *Repository
}

// Service exposes the group-buy cart business rules.
type Service interface {
	AddToCart(ctx context.Context, input AddItemInput) (ItemDTO, error)
	GetCart(ctx context.Context, userID int64) ([]ItemDTO, error)
}

type service struct {
	client *db.Client
	repo   *Repository
}

// NewService builds a cart service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Client == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "db client is required")
	}
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart repo is required")
	}
	return &service{
		client: params.Client,
		repo:   params.Repo,
	}, nil
}

// AddToCart merges quantity into the user's ledger row for the dish and
// returns the enriched row, including the group-buy progress after the merge.
// The dish must exist before any ledger mutation happens.
func (s *service) AddToCart(ctx context.Context, input AddItemInput) (ItemDTO, error) {
	if input.UserID <= 0 || input.DishID <= 0 || input.Quantity <= 0 {
		return ItemDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "userId, dishId, and positive quantity are required.")
	}

	exists, err := s.repo.DishExists(ctx, input.DishID)
	if err != nil {
		return ItemDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load dish")
	}
	if !exists {
		return ItemDTO{}, pkgerrors.New(pkgerrors.CodeNotFound, "Dish Not Found.")
	}

	var record cartRowRecord
	txErr := s.client.WithTx(ctx, func(tx *gorm.DB) error {
		if err := s.repo.UpsertQuantity(tx, input.UserID, input.DishID, input.Quantity); err != nil {
			return err
		}
		found, err := s.repo.FindItem(tx, input.UserID, input.DishID)
		if err != nil {
			return err
		}
		record = found
		return nil
	})
	if txErr != nil {
		return ItemDTO{}, pkgerrors.Wrap(pkgerrors.CodeInternal, txErr, "merge cart item")
	}

	return record.toDTO(), nil
}

// GetCart returns every cart row for the user, ordered by sale date
// descending then store name. An empty cart is reported as not found.
func (s *service) GetCart(ctx context.Context, userID int64) ([]ItemDTO, error) {
	if userID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Invalid userId.")
	}

	items, err := s.repo.ListForUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load cart")
	}
	if len(items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Cart is empty.")
	}
	return items, nil
}
