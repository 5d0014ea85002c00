package markets

import (
	"context"

	"gorm.io/gorm"
)

// Repository encapsulates market and store catalog reads.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a catalog repository bound to the provided gorm DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListMarkets returns every market ordered by id.
func (r *Repository) ListMarkets(ctx context.Context) ([]marketRecord, error) {
	var records []marketRecord
	err := r.db.WithContext(ctx).
		Raw(`SELECT id AS market_id, name AS market_name FROM markets ORDER BY id ASC`).
		Scan(&records).Error
	return records, err
}

// FindMarket loads one market with its store count, or gorm.ErrRecordNotFound.
func (r *Repository) FindMarket(ctx context.Context, marketID int64) (marketRecord, error) {
	var records []marketRecord
	err := r.db.WithContext(ctx).
		Raw(`
SELECT
    m.id AS market_id,
    m.name AS market_name,
    COALESCE(sc.store_count, 0) AS store_count
FROM markets m
LEFT JOIN (
    SELECT market_id, COUNT(*) AS store_count
    FROM stores
    GROUP BY market_id
) sc ON sc.market_id = m.id
WHERE m.id = ?`, marketID).
		Scan(&records).Error
	if err != nil {
		return marketRecord{}, err
	}
	if len(records) == 0 {
		return marketRecord{}, gorm.ErrRecordNotFound
	}
	return records[0], nil
}

// ListStores returns a market's stores, optionally filtered by the special
// flag, ordered by name.
func (r *Repository) ListStores(ctx context.Context, marketID int64, isSpecial *bool) ([]storeRecord, error) {
	query := `
SELECT id AS store_id, name AS store_name, market_id, is_special
FROM stores
WHERE market_id = ?`
	args := []any{marketID}
	if isSpecial != nil {
		query += ` AND is_special = ?`
		args = append(args, *isSpecial)
	}
	query += ` ORDER BY name ASC`

	var records []storeRecord
	err := r.db.WithContext(ctx).Raw(query, args...).Scan(&records).Error
	return records, err
}

// ListAllStores returns stores across every market, optionally scoped to one.
func (r *Repository) ListAllStores(ctx context.Context, marketID int64) ([]storeRecord, error) {
	query := `SELECT id AS store_id, name AS store_name, market_id, is_special FROM stores`
	args := []any{}
	if marketID > 0 {
		query += ` WHERE market_id = ?`
		args = append(args, marketID)
	}
	query += ` ORDER BY name ASC`

	var records []storeRecord
	err := r.db.WithContext(ctx).Raw(query, args...).Scan(&records).Error
	return records, err
}

// FindStoreInMarket loads a store only when it belongs to the market.
func (r *Repository) FindStoreInMarket(ctx context.Context, marketID, storeID int64) (storeRecord, error) {
	var records []storeRecord
	err := r.db.WithContext(ctx).
		Raw(`
SELECT id AS store_id, name AS store_name, market_id, is_special
FROM stores
WHERE id = ? AND market_id = ?`, storeID, marketID).
		Scan(&records).Error
	if err != nil {
		return storeRecord{}, err
	}
	if len(records) == 0 {
		return storeRecord{}, gorm.ErrRecordNotFound
	}
	return records[0], nil
}

// ListDishesForStore returns a store's dishes with the group-buy aggregate,
// ordered by dish id.
func (r *Repository) ListDishesForStore(ctx context.Context, storeID int64) ([]storeDishRecord, error) {
	var records []storeDishRecord
	err := r.db.WithContext(ctx).
		Raw(`
SELECT
    d.id AS dish_id,
    d.sale_date,
    d.period,
    d.name AS dish_name,
    d.price,
    COALESCE(agg.current_count, 0) AS current_count,
    d.threshold
FROM dishes d
LEFT JOIN (
    SELECT dish_id, SUM(quantity) AS current_count
    FROM cart_items
    GROUP BY dish_id
) agg ON agg.dish_id = d.id
WHERE d.store_id = ?
ORDER BY d.id ASC`, storeID).
		Scan(&records).Error
	return records, err
}

// ListSpecialDishes returns dishes sold by special stores, optionally scoped
// to one market, in deal-rail order.
func (r *Repository) ListSpecialDishes(ctx context.Context, marketID int64) ([]specialDishRecord, error) {
	query := `
SELECT
    d.id AS dish_id,
    d.sale_date,
    d.period,
    s.name AS store_name,
    d.name AS dish_name,
    d.price
FROM dishes d
INNER JOIN stores s ON s.id = d.store_id
WHERE s.is_special = ?`
	args := []any{true}
	if marketID > 0 {
		query += ` AND s.market_id = ?`
		args = append(args, marketID)
	}
	query += ` ORDER BY d.sale_date ASC, d.store_id ASC, d.id ASC`

	var records []specialDishRecord
	err := r.db.WithContext(ctx).Raw(query, args...).Scan(&records).Error
	return records, err
}
