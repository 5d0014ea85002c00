package models

// Store belongs to exactly one market. IsSpecial marks stores surfaced on the
// home screen's deal rail.
type Store struct {
	ID        int64  `gorm:"column:id;primaryKey"`
	Name      string `gorm:"column:name;not null"`
	MarketID  int64  `gorm:"column:market_id;not null"`
	IsSpecial bool   `gorm:"column:is_special;not null;default:false"`
}
