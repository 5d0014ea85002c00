package cart

import "time"

// AddItemInput is the request body for adding a dish to the cart.
type AddItemInput struct {
	UserID   int64 `json:"userId" validate:"required,gt=0"`
	DishID   int64 `json:"dishId" validate:"required,gt=0"`
	Quantity int   `json:"quantity" validate:"required,gt=0"`
}

// ItemDTO is one cart row enriched with dish, store and group-buy progress.
type ItemDTO struct {
	DishID       int64  `json:"dishId"`
	Date         string `json:"date"`
	Period       string `json:"period"`
	StoreName    string `json:"storeName"`
	DishName     string `json:"dishName"`
	DishType     string `json:"dishType"`
	Price        int64  `json:"price"`
	CurrentCount int    `json:"currentCount"`
	Threshold    int    `json:"threshold"`
	Quantity     int    `json:"quantity"`
}

type cartRowRecord struct {
	DishID       int64     `gorm:"column:dish_id"`
	SaleDate     time.Time `gorm:"column:sale_date"`
	Period       string    `gorm:"column:period"`
	StoreName    string    `gorm:"column:store_name"`
	DishName     string    `gorm:"column:dish_name"`
	DishType     string    `gorm:"column:dish_type"`
	Price        int64     `gorm:"column:price"`
	CurrentCount int       `gorm:"column:current_count"`
	Threshold    int       `gorm:"column:threshold"`
	Quantity     int       `gorm:"column:quantity"`
}

func (r cartRowRecord) toDTO() ItemDTO {
	return ItemDTO{
		DishID:       r.DishID,
		Date:         r.SaleDate.Format("2006-01-02"),
		Period:       r.Period,
		StoreName:    r.StoreName,
		DishName:     r.DishName,
		DishType:     r.DishType,
		Price:        r.Price,
		CurrentCount: r.CurrentCount,
		Threshold:    r.Threshold,
		Quantity:     r.Quantity,
	}
}
