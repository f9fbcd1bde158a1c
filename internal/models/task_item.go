package models

import (
	"time"
)

type TaskStatus string

const (
	TaskStatusNew        TaskStatus = "New"
	TaskStatusInProgress TaskStatus = "InProgress"
	TaskStatusDone       TaskStatus = "Done"
	TaskStatusOnHold     TaskStatus = "OnHold"
	TaskStatusCancelled  TaskStatus = "Cancelled"
)

type TaskItem struct {
	ID          uint64     `gorm:"primarykey" json:"id"`
	Title       string     `gorm:"type:varchar(255);not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Status      TaskStatus `gorm:"type:varchar(20);not null;default:'New'" json:"status"`
	UserID      uint64     `gorm:"not null" json:"user_id"`
	ProjectID   uint64     `gorm:"not null" json:"project_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	// Relations
	User     User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Project  Project   `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	Comments []Comment `gorm:"foreignKey:TaskItemID;constraint:OnDelete:CASCADE" json:"comments,omitempty"`
}

// TableName keeps the table aligned with the task_item_id foreign key on comments.
func (TaskItem) TableName() string {
	return "task_items"
}
