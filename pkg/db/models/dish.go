package models

import "time"

// Dish sale periods.
const (
	PeriodMorning   = "morning"
	PeriodAfternoon = "afternoon"
)

// Dish is one store's offering on a given sale date. Threshold is the quantity
// at which the group buy succeeds; it is informational and never enforced as a
// write-time cap.
type Dish struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	StoreID   int64     `gorm:"column:store_id;not null"`
	SaleDate  time.Time `gorm:"column:sale_date;not null"`
	Period    string    `gorm:"column:period;not null"`
	Name      string    `gorm:"column:name;not null"`
	Category  string    `gorm:"column:category;not null"`
	Price     int64     `gorm:"column:price;not null"`
	Threshold int       `gorm:"column:threshold;not null"`
}
