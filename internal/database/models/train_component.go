package models

import (
	"time"
)

// TrainComponent represents a single catalog entry for one type of train part.
type TrainComponent struct {
	ID                uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name              string    `json:"name" gorm:"size:100;not null;index" validate:"required,min=1,max=100"`
	UniqueNumber      string    `json:"unique_number" gorm:"size:50;not null;uniqueIndex" validate:"required,min=1,max=50"`
	CanAssignQuantity bool      `json:"can_assign_quantity" gorm:"not null;index"`
	Quantity          *int      `json:"quantity" gorm:"default:null"`
	// Version is the optimistic-concurrency token. It is bumped by every
	// conditional update; a write guarded by a stale version affects zero rows.
	Version   int64     `json:"version" gorm:"not null;default:1"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for TrainComponent
func (TrainComponent) TableName() string {
	return "train_components"
}
