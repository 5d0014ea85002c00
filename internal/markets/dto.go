package markets

import "time"

// MarketsNote accompanies the market list until proximity filtering lands.
const MarketsNote = "Returned all markets. Nearby-market filtering not implemented yet."

// MarketDTO is one row of the market list.
type MarketDTO struct {
	MarketID   int64  `json:"marketId"`
	MarketName string `json:"marketName"`
}

// MarketDetailDTO is a market with its store count.
type MarketDetailDTO struct {
	MarketID   int64  `json:"marketId"`
	MarketName string `json:"marketName"`
	StoreCount int    `json:"storeCount"`
}

// StoreDTO is one row of a store list.
type StoreDTO struct {
	StoreID   int64  `json:"storeId"`
	StoreName string `json:"storeName"`
	MarketID  int64  `json:"marketId"`
	IsSpecial bool   `json:"isSpecial"`
}

// StoreDishDTO is one dish in the per-store listing.
type StoreDishDTO struct {
	DishID       int64  `json:"dishId"`
	Date         string `json:"date"`
	Period       string `json:"period"`
	DishName     string `json:"dishName"`
	Price        int64  `json:"price"`
	CurrentCount int    `json:"currentCount"`
	Threshold    int    `json:"threshold"`
}

// StoreDishesDTO wraps a store's dishes with the store identity.
type StoreDishesDTO struct {
	StoreID   int64          `json:"storeId"`
	StoreName string         `json:"storeName"`
	Dishes    []StoreDishDTO `json:"dishes"`
}

// SpecialDishDTO is one row of the home screen's deal rail.
type SpecialDishDTO struct {
	DishID    int64  `json:"dishId"`
	Date      string `json:"date"`
	Period    string `json:"period"`
	StoreName string `json:"storeName"`
	DishName  string `json:"dishName"`
	Price     int64  `json:"price"`
}

type marketRecord struct {
	MarketID   int64  `gorm:"column:market_id"`
	MarketName string `gorm:"column:market_name"`
	StoreCount int    `gorm:"column:store_count"`
}

type storeRecord struct {
	StoreID   int64  `gorm:"column:store_id"`
	StoreName string `gorm:"column:store_name"`
	MarketID  int64  `gorm:"column:market_id"`
	IsSpecial bool   `gorm:"column:is_special"`
}

type storeDishRecord struct {
	DishID       int64     `gorm:"column:dish_id"`
	SaleDate     time.Time `gorm:"column:sale_date"`
	Period       string    `gorm:"column:period"`
	DishName     string    `gorm:"column:dish_name"`
	Price        int64     `gorm:"column:price"`
	CurrentCount int       `gorm:"column:current_count"`
	Threshold    int       `gorm:"column:threshold"`
}

type specialDishRecord struct {
	DishID    int64     `gorm:"column:dish_id"`
	SaleDate  time.Time `gorm:"column:sale_date"`
	Period    string    `gorm:"column:period"`
	StoreName string    `gorm:"column:store_name"`
	DishName  string    `gorm:"column:dish_name"`
	Price     int64     `gorm:"column:price"`
}

func (r storeRecord) toDTO() StoreDTO {
	return StoreDTO{
		StoreID:   r.StoreID,
		StoreName: r.StoreName,
		MarketID:  r.MarketID,
		IsSpecial: r.IsSpecial,
	}
}

func (r storeDishRecord) toDTO() StoreDishDTO {
	return StoreDishDTO{
		DishID:       r.DishID,
		Date:         r.SaleDate.Format("2006-01-02"),
		Period:       r.Period,
		DishName:     r.DishName,
		Price:        r.Price,
		CurrentCount: r.CurrentCount,
		Threshold:    r.Threshold,
	}
}

func (r specialDishRecord) toDTO() SpecialDishDTO {
	return SpecialDishDTO{
		DishID:    r.DishID,
		Date:      r.SaleDate.Format("2006-01-02"),
		Period:    r.Period,
		StoreName: r.StoreName,
		DishName:  r.DishName,
		Price:     r.Price,
	}
}
