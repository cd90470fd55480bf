package entity

import "time"

// Base carries the store-assigned identity and timestamps. Ids are
// auto-incremented and never reused; deleted rows are gone for good, so
// there is no DeletedAt column.
type Base struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
