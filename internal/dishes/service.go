package dishes

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	pkgerrors "github.com/udongsi/udongsi-backend/pkg/errors"
	"github.com/udongsi/udongsi-backend/pkg/types"
)

// ServiceParams groups dependencies for the dish query service.
type ServiceParams struct {
	Repo *Repository
}

// Service exposes dish browse, detail and search reads.
type Service interface {
	ListByCategory(ctx context.Context, category string) ([]CategoryDishDTO, error)
	GetDetail(ctx context.Context, dishID int64) (DetailDTO, error)
	Search(ctx context.Context, params SearchParams) ([]SearchResultDTO, types.PageMeta, error)
}

type service struct {
	repo *Repository
}

// NewService builds a dish query service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "dish repo is required")
	}
	return &service{repo: params.Repo}, nil
}

// ListByCategory returns every dish of a category with its group-buy
// progress. A category with no dishes is reported as not found.
func (s *service) ListByCategory(ctx context.Context, category string) ([]CategoryDishDTO, error) {
	if strings.TrimSpace(category) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Category is required")
	}

	records, err := s.repo.ListByCategory(ctx, category)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list category dishes")
	}
	if len(records) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "No dishes found for this category")
	}

	items := make([]CategoryDishDTO, 0, len(records))
	for _, record := range records {
		items = append(items, record.toCategoryDTO())
	}
	return items, nil
}

// GetDetail returns one dish with its group-buy progress.
func (s *service) GetDetail(ctx context.Context, dishID int64) (DetailDTO, error) {
	if dishID <= 0 {
		return DetailDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "Invalid dishId")
	}

	record, err := s.repo.FindByID(ctx, dishID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DetailDTO{}, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "Not Found")
		}
		return DetailDTO{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load dish")
	}
	return record.toDetailDTO(), nil
}

// Search filters dishes and returns one page plus pagination metadata. An
// empty result is a normal page, not an error.
func (s *service) Search(ctx context.Context, params SearchParams) ([]SearchResultDTO, types.PageMeta, error) {
	records, total, err := s.repo.Search(ctx, params)
	if err != nil {
		return nil, types.PageMeta{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "search dishes")
	}

	items := make([]SearchResultDTO, 0, len(records))
	for _, record := range records {
		items = append(items, record.toSearchDTO())
	}
	return items, params.Page.Meta(total), nil
}
