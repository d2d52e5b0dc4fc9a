package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	SiteVisitStatusScheduled = "scheduled"
	SiteVisitStatusDone      = "done"
	SiteVisitStatusCancelled = "cancelled"
)

// SiteVisit is a scheduled in-person appointment. It carries a copied
// client name/phone rather than a lead foreign key, matching how leads
// and visits are related in practice.
type SiteVisit struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ClientName  string    `gorm:"size:255;not null" json:"client_name"`
	ClientPhone string    `gorm:"size:15;not null" json:"client_phone"`
	VisitDate   time.Time `gorm:"not null;index" json:"visit_date"`
	VisitTime   string    `gorm:"size:10" json:"visit_time,omitempty"` // "15:30"
	Location    string    `gorm:"type:text;not null" json:"location"`
	Notes       string    `gorm:"type:text" json:"notes,omitempty"`
	Status      string    `gorm:"size:20;not null;default:'scheduled';index" json:"status"`
	// Photos taken at the visit, stored inline as a json array of
	// {name, mime_type, data} objects.
	Photos datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"photos,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (SiteVisit) TableName() string {
	return "site_visits"
}
