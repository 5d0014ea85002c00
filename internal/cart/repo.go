package cart

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// cartRowSelect pulls a cart row together with its dish, store and the
// group-buy aggregate. CurrentCount sums quantities across every user's cart,
// computed in the same statement as the row itself so the two never diverge.
const cartRowSelect = `
SELECT
    d.id AS dish_id,
    d.sale_date,
    d.period,
    s.name AS store_name,
    d.name AS dish_name,
    d.category AS dish_type,
    d.price,
    COALESCE(agg.current_count, 0) AS current_count,
    d.threshold,
    ci.quantity
FROM cart_items ci
INNER JOIN dishes d ON d.id = ci.dish_id
INNER JOIN stores s ON s.id = d.store_id
LEFT JOIN (
    SELECT dish_id, SUM(quantity) AS current_count
    FROM cart_items
    GROUP BY dish_id
) agg ON agg.dish_id = d.id`

// Repository encapsulates cart ledger persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a cart repository bound to the provided gorm DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// DishExists reports whether the dish is part of the catalog.
func (r *Repository) DishExists(ctx context.Context, dishID int64) (bool, error) {
	var one int
	err := r.db.WithContext(ctx).
		Raw(`SELECT 1 FROM dishes WHERE id = ?`, dishID).
		Scan(&one).Error
	if err != nil {
		return false, err
	}
	return one == 1, nil
}

// UpsertQuantity merges quantity into the (user, dish) ledger row in a single
// statement. Concurrent calls for the same pair serialize at the database, so
// no update is ever lost and no duplicate row can appear.
func (r *Repository) UpsertQuantity(tx *gorm.DB, userID, dishID int64, quantity int) error {
	if tx == nil {
		return gorm.ErrInvalidTransaction
	}
	return tx.Exec(`
INSERT INTO cart_items (user_id, dish_id, quantity)
VALUES (?, ?, ?)
ON CONFLICT (user_id, dish_id)
DO UPDATE SET quantity = cart_items.quantity + excluded.quantity,
              updated_at = CURRENT_TIMESTAMP`,
		userID, dishID, quantity).Error
}

// FindItem loads the enriched row for one (user, dish) pair. Run inside the
// upsert's transaction so the response reflects the merged quantity.
func (r *Repository) FindItem(tx *gorm.DB, userID, dishID int64) (cartRowRecord, error) {
	if tx == nil {
		return cartRowRecord{}, gorm.ErrInvalidTransaction
	}
	var records []cartRowRecord
	err := tx.
		Raw(cartRowSelect+` WHERE ci.user_id = ? AND ci.dish_id = ?`, userID, dishID).
		Scan(&records).Error
	if err != nil {
		return cartRowRecord{}, err
	}
	if len(records) == 0 {
		return cartRowRecord{}, gorm.ErrRecordNotFound
	}
	return records[0], nil
}

// ListForUser returns the user's cart, newest sale date first, stores
// alphabetical within a date.
func (r *Repository) ListForUser(ctx context.Context, userID int64) ([]ItemDTO, error) {
	var records []cartRowRecord
	err := r.db.WithContext(ctx).
		Raw(cartRowSelect+`
 WHERE ci.user_id = ?
 ORDER BY d.sale_date DESC, s.name ASC`, userID).
		Scan(&records).Error
	if err != nil {
		return nil, err
	}
	items := make([]ItemDTO, 0, len(records))
	for _, record := range records {
		items = append(items, record.toDTO())
	}
	return items, nil
}

// IsNotFound reports whether err is the record-missing sentinel.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
