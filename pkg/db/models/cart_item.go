package models

import "time"

// CartItem is one user's pledge of a quantity of one dish. The
// (user_id, dish_id) pair is unique; repeated adds merge additively into the
// existing row via the ledger upsert.
type CartItem struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	UserID    int64     `gorm:"column:user_id;not null;uniqueIndex:ux_cart_items_user_dish"`
	DishID    int64     `gorm:"column:dish_id;not null;uniqueIndex:ux_cart_items_user_dish"`
	Quantity  int       `gorm:"column:quantity;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
