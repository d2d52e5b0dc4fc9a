package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TeamMember struct {
	ID       uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name     string     `gorm:"size:255;not null" json:"name"`
	Role     string     `gorm:"size:100" json:"role,omitempty"`
	Phone    string     `gorm:"size:15;not null" json:"phone"`
	Salary   float64    `gorm:"type:decimal(15,2);default:0" json:"salary"`
	JoinedOn *time.Time `json:"joined_on,omitempty"`
	IsActive bool       `gorm:"default:true" json:"is_active"`
	// ID proof or contract, stored inline
	Attachment Attachment `gorm:"type:jsonb;default:'{}'" json:"attachment,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (TeamMember) TableName() string {
	return "team_members"
}
