package models

import (
	"time"
)

type Comment struct {
	ID              uint64    `gorm:"primarykey" json:"id"`
	Content         string    `gorm:"type:text;not null" json:"content"`
	TaskItemID      uint64    `gorm:"not null" json:"task_item_id"`
	CreatedByUserID uint64    `gorm:"not null" json:"created_by_user_id"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	// Relations
	TaskItem      TaskItem `gorm:"foreignKey:TaskItemID" json:"task_item,omitempty"`
	CreatedByUser User     `gorm:"foreignKey:CreatedByUserID" json:"created_by_user,omitempty"`
}
