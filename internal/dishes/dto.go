package dishes

import (
	"time"

	"github.com/udongsi/udongsi-backend/pkg/pagination"
)

// CategoryDishDTO is one row of the category browse list.
type CategoryDishDTO struct {
	DishID       int64  `json:"dishId"`
	StoreID      int64  `json:"storeId"`
	StoreName    string `json:"storeName"`
	Date         string `json:"date"`
	Period       string `json:"period"`
	DishName     string `json:"dishName"`
	DishType     string `json:"dishType"`
	Price        int64  `json:"price"`
	CurrentCount int    `json:"currentCount"`
	Threshold    int    `json:"threshold"`
}

// DetailDTO is the single-dish detail payload.
type DetailDTO struct {
	DishID       int64  `json:"dishId"`
	Date         string `json:"date"`
	Period       string `json:"period"`
	StoreName    string `json:"storeName"`
	DishName     string `json:"dishName"`
	Category     string `json:"category"`
	Price        int64  `json:"price"`
	CurrentCount int    `json:"currentCount"`
	Threshold    int    `json:"threshold"`
}

// SearchResultDTO is one row of the search listing.
type SearchResultDTO struct {
	DishID       int64  `json:"dishId"`
	Date         string `json:"date"`
	Period       string `json:"period"`
	StoreName    string `json:"storeName"`
	DishName     string `json:"dishName"`
	Price        int64  `json:"price"`
	CurrentCount int    `json:"currentCount"`
	Threshold    int    `json:"threshold"`
}

// SearchParams carries the search filters. Zero values mean "not filtered".
type SearchParams struct {
	Keyword  string
	MarketID int64
	Category string
	Sort     string
	Page     pagination.Params
}

type dishRecord struct {
	DishID       int64     `gorm:"column:dish_id"`
	StoreID      int64     `gorm:"column:store_id"`
	StoreName    string    `gorm:"column:store_name"`
	SaleDate     time.Time `gorm:"column:sale_date"`
	Period       string    `gorm:"column:period"`
	DishName     string    `gorm:"column:dish_name"`
	Category     string    `gorm:"column:category"`
	Price        int64     `gorm:"column:price"`
	CurrentCount int       `gorm:"column:current_count"`
	Threshold    int       `gorm:"column:threshold"`
}

func (r dishRecord) date() string {
	return r.SaleDate.Format("2006-01-02")
}

func (r dishRecord) toCategoryDTO() CategoryDishDTO {
	return CategoryDishDTO{
		DishID:       r.DishID,
		StoreID:      r.StoreID,
		StoreName:    r.StoreName,
		Date:         r.date(),
		Period:       r.Period,
		DishName:     r.DishName,
		DishType:     r.Category,
		Price:        r.Price,
		CurrentCount: r.CurrentCount,
		Threshold:    r.Threshold,
	}
}

func (r dishRecord) toDetailDTO() DetailDTO {
	return DetailDTO{
		DishID:       r.DishID,
		Date:         r.date(),
		Period:       r.Period,
		StoreName:    r.StoreName,
		DishName:     r.DishName,
		Category:     r.Category,
		Price:        r.Price,
		CurrentCount: r.CurrentCount,
		Threshold:    r.Threshold,
	}
}

func (r dishRecord) toSearchDTO() SearchResultDTO {
	return SearchResultDTO{
		DishID:       r.DishID,
		Date:         r.date(),
		Period:       r.Period,
		StoreName:    r.StoreName,
		DishName:     r.DishName,
		Price:        r.Price,
		CurrentCount: r.CurrentCount,
		Threshold:    r.Threshold,
	}
}
