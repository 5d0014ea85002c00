package dishes

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

// dishSelect joins dishes with their store and the group-buy aggregate. The
// aggregate is a grouped SUM over every user's cart, computed in the same
// statement as the rows it annotates.
const dishSelect = `
SELECT
    d.id AS dish_id,
    d.store_id,
    s.name AS store_name,
    d.sale_date,
    d.period,
    d.name AS dish_name,
    d.category,
    d.price,
    COALESCE(agg.current_count, 0) AS current_count,
    d.threshold
FROM dishes d
INNER JOIN stores s ON s.id = d.store_id
LEFT JOIN (
    SELECT dish_id, SUM(quantity) AS current_count
    FROM cart_items
    GROUP BY dish_id
) agg ON agg.dish_id = d.id`

// sortColumns whitelists client sort keys against real columns.
var sortColumns = map[string]string{
	"price":        "d.price",
	"date":         "d.sale_date",
	"dishName":     "d.name",
	"currentCount": "COALESCE(agg.current_count, 0)",
}

// Repository encapsulates dish reads.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a dish repository bound to the provided gorm DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListByCategory returns every dish in a category, newest sale date first.
func (r *Repository) ListByCategory(ctx context.Context, category string) ([]dishRecord, error) {
	var records []dishRecord
	err := r.db.WithContext(ctx).
		Raw(dishSelect+`
 WHERE d.category = ?
 ORDER BY d.sale_date DESC, d.id ASC`, category).
		Scan(&records).Error
	return records, err
}

// FindByID loads one dish with its aggregate, or gorm.ErrRecordNotFound.
func (r *Repository) FindByID(ctx context.Context, dishID int64) (dishRecord, error) {
	var records []dishRecord
	err := r.db.WithContext(ctx).
		Raw(dishSelect+` WHERE d.id = ?`, dishID).
		Scan(&records).Error
	if err != nil {
		return dishRecord{}, err
	}
	if len(records) == 0 {
		return dishRecord{}, gorm.ErrRecordNotFound
	}
	return records[0], nil
}

// Search filters dishes by keyword, market and category, with an allowlisted
// sort and offset pagination. Returns the page plus the unpaged total.
func (r *Repository) Search(ctx context.Context, params SearchParams) ([]dishRecord, int64, error) {
	where := make([]string, 0, 3)
	args := make([]any, 0, 4)

	if keyword := strings.TrimSpace(params.Keyword); keyword != "" {
		where = append(where, "(d.name LIKE ? OR s.name LIKE ?)")
		pattern := "%" + keyword + "%"
		args = append(args, pattern, pattern)
	}
	if params.MarketID > 0 {
		where = append(where, "s.market_id = ?")
		args = append(args, params.MarketID)
	}
	if category := strings.TrimSpace(params.Category); category != "" {
		where = append(where, "d.category = ?")
		args = append(args, category)
	}

	query := dishSelect
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}

	var total int64
	countQuery := "SELECT COUNT(*) FROM (" + query + ") t"
	if err := r.db.WithContext(ctx).Raw(countQuery, args...).Scan(&total).Error; err != nil {
		return nil, 0, err
	}

	page := params.Page.Normalize()
	query += " ORDER BY " + orderClause(params.Sort) + " LIMIT ? OFFSET ?"
	args = append(args, page.Size, page.Offset())

	var records []dishRecord
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&records).Error; err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

func orderClause(sort string) string {
	sort = strings.TrimSpace(sort)
	if sort == "" {
		return "d.id DESC"
	}
	parts := strings.SplitN(sort, ",", 2)
	column, ok := sortColumns[strings.TrimSpace(parts[0])]
	if !ok {
		return "d.id DESC"
	}
	direction := "ASC"
	if len(parts) == 2 && strings.EqualFold(strings.TrimSpace(parts[1]), "desc") {
		direction = "DESC"
	}
	return column + " " + direction
}
