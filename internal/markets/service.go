package markets

import (
	"context"
	"errors"

	"gorm.io/gorm"

	pkgerrors "github.com/udongsi/udongsi-backend/pkg/errors"
)

// ServiceParams groups dependencies for the catalog service.
type ServiceParams struct {
	Repo *Repository
}

// Service exposes market and store browse reads.
type Service interface {
	ListMarkets(ctx context.Context) ([]MarketDTO, error)
	GetMarket(ctx context.Context, marketID int64) (MarketDetailDTO, error)
	ListStores(ctx context.Context, marketID int64, isSpecial *bool) ([]StoreDTO, error)
	ListAllStores(ctx context.Context, marketID int64) ([]StoreDTO, error)
	ListStoreDishes(ctx context.Context, marketID, storeID int64) (StoreDishesDTO, error)
	ListSpecialDishes(ctx context.Context, marketID int64) ([]SpecialDishDTO, error)
}

type service struct {
	repo *Repository
}

// NewService builds a catalog service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "market repo is required")
	}
	return &service{repo: params.Repo}, nil
}

// ListMarkets returns every market. An empty catalog is a normal response.
func (s *service) ListMarkets(ctx context.Context) ([]MarketDTO, error) {
	records, err := s.repo.ListMarkets(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list markets")
	}
	items := make([]MarketDTO, 0, len(records))
	for _, record := range records {
		items = append(items, MarketDTO{MarketID: record.MarketID, MarketName: record.MarketName})
	}
	return items, nil
}

// GetMarket returns one market with its store count.
func (s *service) GetMarket(ctx context.Context, marketID int64) (MarketDetailDTO, error) {
	if marketID <= 0 {
		return MarketDetailDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "Invalid marketId")
	}

	record, err := s.repo.FindMarket(ctx, marketID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return MarketDetailDTO{}, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "Not Found")
		}
		return MarketDetailDTO{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load market")
	}
	return MarketDetailDTO{
		MarketID:   record.MarketID,
		MarketName: record.MarketName,
		StoreCount: record.StoreCount,
	}, nil
}

// ListStores returns a market's stores, optionally filtered by the special
// flag. A market with no matching stores yields an empty list.
func (s *service) ListStores(ctx context.Context, marketID int64, isSpecial *bool) ([]StoreDTO, error) {
	if marketID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Invalid marketId")
	}

	records, err := s.repo.ListStores(ctx, marketID, isSpecial)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list stores")
	}
	return storeDTOs(records), nil
}

// ListAllStores returns the flat store list across markets.
func (s *service) ListAllStores(ctx context.Context, marketID int64) ([]StoreDTO, error) {
	records, err := s.repo.ListAllStores(ctx, marketID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list stores")
	}
	return storeDTOs(records), nil
}

// ListStoreDishes returns a store's dishes with group-buy progress. The store
// must belong to the market.
func (s *service) ListStoreDishes(ctx context.Context, marketID, storeID int64) (StoreDishesDTO, error) {
	if marketID <= 0 || storeID <= 0 {
		return StoreDishesDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "Invalid IDs")
	}

	store, err := s.repo.FindStoreInMarket(ctx, marketID, storeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return StoreDishesDTO{}, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "Store Not Found")
		}
		return StoreDishesDTO{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load store")
	}

	records, err := s.repo.ListDishesForStore(ctx, storeID)
	if err != nil {
		return StoreDishesDTO{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list store dishes")
	}

	dishes := make([]StoreDishDTO, 0, len(records))
	for _, record := range records {
		dishes = append(dishes, record.toDTO())
	}
	return StoreDishesDTO{
		StoreID:   store.StoreID,
		StoreName: store.StoreName,
		Dishes:    dishes,
	}, nil
}

// ListSpecialDishes returns the home screen's deal rail, optionally scoped to
// one market. Always a plain list, possibly empty.
func (s *service) ListSpecialDishes(ctx context.Context, marketID int64) ([]SpecialDishDTO, error) {
	records, err := s.repo.ListSpecialDishes(ctx, marketID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list special dishes")
	}
	items := make([]SpecialDishDTO, 0, len(records))
	for _, record := range records {
		items = append(items, record.toDTO())
	}
	return items, nil
}

func storeDTOs(records []storeRecord) []StoreDTO {
	items := make([]StoreDTO, 0, len(records))
	for _, record := range records {
		items = append(items, record.toDTO())
	}
	return items
}
