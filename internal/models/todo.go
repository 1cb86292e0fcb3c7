package model

import "time"

// TodoItem is the single entity this service manages. CompletedAt is
// non-nil exactly when IsCompleted is true, except on the raw create
// path where a caller-supplied completed flag is persisted as-is.
type TodoItem struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"size:200;not null" json:"title"`
	Description string     `gorm:"size:1000" json:"description"`
	IsCompleted bool       `gorm:"not null;default:false" json:"isCompleted"`
	CreatedAt   time.Time  `gorm:"not null" json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt"`
}
