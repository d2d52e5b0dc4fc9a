package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	QuoteStatusDraft    = "draft"
	QuoteStatusSent     = "sent"
	QuoteStatusAccepted = "accepted"
	QuoteStatusRejected = "rejected"
)

// Quote is a priced offer; an accepted quote can be converted into an invoice.
type Quote struct {
	ID          uuid.UUID    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Number      string       `gorm:"size:50;uniqueIndex;not null" json:"number"`
	ClientName  string       `gorm:"size:255;not null" json:"client_name"`
	ClientPhone string       `gorm:"size:15" json:"client_phone,omitempty"`
	Address     string       `gorm:"type:text" json:"address,omitempty"`
	IssueDate   time.Time    `gorm:"not null" json:"issue_date"`
	ValidUntil  *time.Time   `json:"valid_until,omitempty"`
	Status      string       `gorm:"size:20;not null;default:'draft';index" json:"status"`
	Lines       InvoiceLines `gorm:"type:jsonb;default:'[]'" json:"lines"`
	Notes       string       `gorm:"type:text" json:"notes,omitempty"`

	// Derived, computed on read
	Total float64 `gorm:"-" json:"total"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Quote) TableName() string {
	return "quotes"
}

func (q *Quote) AfterFind(tx *gorm.DB) error {
	q.Total = q.Lines.Total()
	return nil
}
