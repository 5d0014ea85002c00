package models

// Market is read-only reference data; rows are managed by the catalog
// ingestion path, never by this service.
type Market struct {
	ID   int64  `gorm:"column:id;primaryKey"`
	Name string `gorm:"column:name;not null"`
}
