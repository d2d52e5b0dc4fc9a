package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Lead pipeline statuses. These double as the Kanban column order.
const (
	LeadStatusNew       = "new"
	LeadStatusContacted = "contacted"
	LeadStatusFollowUp  = "follow_up"
	LeadStatusSiteVisit = "site_visit"
	LeadStatusBooked    = "booked"
)

// LeadStatuses is the Kanban column order, left to right.
var LeadStatuses = []string{
	LeadStatusNew,
	LeadStatusContacted,
	LeadStatusFollowUp,
	LeadStatusSiteVisit,
	LeadStatusBooked,
}

// ValidLeadStatus reports whether s names a known pipeline column.
// Drag-and-drop may move a card to any column, so there is no
// transition table — only the status name is checked.
func ValidLeadStatus(s string) bool {
	for _, status := range LeadStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Lead represents a prospective customer in the sales pipeline.
type Lead struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name       string         `gorm:"size:255;not null" json:"name"`
	Phone      string         `gorm:"size:15;not null" json:"phone"`
	Email      string         `gorm:"size:100" json:"email,omitempty"`
	Address    string         `gorm:"type:text" json:"address,omitempty"`
	Budget     float64        `gorm:"type:decimal(15,2);default:0" json:"budget"`
	Scope      string         `gorm:"type:text" json:"scope,omitempty"`
	Status     string         `gorm:"size:20;not null;default:'new';index" json:"status"`
	Notes      string         `gorm:"type:text" json:"notes,omitempty"`
	Source     string         `gorm:"size:50" json:"source,omitempty"`
	Tags       pq.StringArray `gorm:"type:text[]" json:"tags,omitempty"`
	Attachment Attachment     `gorm:"type:jsonb;default:'{}'" json:"attachment,omitempty"`

	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Lead) TableName() string {
	return "leads"
}

func (l *Lead) BeforeCreate(tx *gorm.DB) (err error) {
	// Clients may supply their own id; only fill in a missing one.
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	if l.Status == "" {
		l.Status = LeadStatusNew
	}
	return
}
