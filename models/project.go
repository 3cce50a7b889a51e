package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Project represents a tracked project. The creator is immutable; members
// and bugs are owned by the project and removed with it.
type Project struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid"`
	Name        string    `json:"name" gorm:"type:varchar(60);not null"`
	CreatedByID string    `json:"-" gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	// Relations
	CreatedBy User            `json:"createdBy" gorm:"foreignKey:CreatedByID"`
	Members   []ProjectMember `json:"members" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Bugs      []Bug           `json:"-" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate assigns a UUID primary key when none is set
func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// ProjectMember joins a user to a project. The (project, user) pair is unique.
type ProjectMember struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	ProjectID string    `json:"projectId" gorm:"type:uuid;not null;uniqueIndex:idx_project_member"`
	MemberID  string    `json:"-" gorm:"type:uuid;not null;uniqueIndex:idx_project_member"`
	JoinedAt  time.Time `json:"joinedAt" gorm:"autoCreateTime"`

	Member User `json:"member" gorm:"foreignKey:MemberID"`
}
