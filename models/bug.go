package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Priority represents bug priority levels
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ValidPriority reports whether p is one of the known priorities.
func ValidPriority(p Priority) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// TitleMaxLen is the longest accepted bug or project title.
const TitleMaxLen = 60

// Bug represents a filed bug. A bug belongs to exactly one project for its
// whole life. IsResolved discriminates which transition pair (closed* or
// reopened*) carries the most recent actor/timestamp.
type Bug struct {
	ID          string   `json:"id" gorm:"primaryKey;type:uuid"`
	ProjectID   string   `json:"projectId" gorm:"type:uuid;not null;index"`
	Title       string   `json:"title" gorm:"type:varchar(60);not null"`
	Description string   `json:"description" gorm:"not null"`
	Priority    Priority `json:"priority" gorm:"type:varchar(10);default:'low'"`
	IsResolved  bool     `json:"isResolved" gorm:"default:false"`

	CreatedByID  string     `json:"-" gorm:"type:uuid;not null"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedByID  *string    `json:"-" gorm:"type:uuid"`
	UpdatedAt    *time.Time `json:"updatedAt" gorm:"autoUpdateTime:false"` // stamped only by an explicit edit
	ClosedByID   *string    `json:"-" gorm:"type:uuid"`
	ClosedAt     *time.Time `json:"closedAt"`
	ReopenedByID *string    `json:"-" gorm:"type:uuid"`
	ReopenedAt   *time.Time `json:"reopenedAt"`

	// Relations
	CreatedBy  User  `json:"createdBy" gorm:"foreignKey:CreatedByID"`
	UpdatedBy  *User `json:"updatedBy" gorm:"foreignKey:UpdatedByID"`
	ClosedBy   *User `json:"closedBy" gorm:"foreignKey:ClosedByID"`
	ReopenedBy *User `json:"reopenedBy" gorm:"foreignKey:ReopenedByID"`
}

// BeforeCreate assigns a UUID primary key when none is set
func (b *Bug) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
