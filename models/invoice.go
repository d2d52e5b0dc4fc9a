package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InvoiceLine is a single billed item.
type InvoiceLine struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Amount      float64 `json:"amount"` // unit amount
}

// InvoiceLines is stored as a single jsonb column.
type InvoiceLines []InvoiceLine

// Scan implements the sql.Scanner interface
func (l *InvoiceLines) Scan(value interface{}) error {
	if value == nil {
		*l = InvoiceLines{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		*l = InvoiceLines{}
		return nil
	}

	return json.Unmarshal(bytes, l)
}

// Value implements the driver.Valuer interface
func (l InvoiceLines) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal(InvoiceLines{})
	}
	return json.Marshal(l)
}

// GormDataType defines the data type for GORM
func (InvoiceLines) GormDataType() string {
	return "jsonb"
}

// Total sums quantity * amount over all lines.
func (l InvoiceLines) Total() float64 {
	var total float64
	for _, line := range l {
		total += line.Quantity * line.Amount
	}
	return total
}

type Invoice struct {
	ID          uuid.UUID    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Number      string       `gorm:"size:50;uniqueIndex;not null" json:"number"`
	ClientName  string       `gorm:"size:255;not null" json:"client_name"`
	ClientPhone string       `gorm:"size:15" json:"client_phone,omitempty"`
	Address     string       `gorm:"type:text" json:"address,omitempty"`
	IssueDate   time.Time    `gorm:"not null" json:"issue_date"`
	Lines       InvoiceLines `gorm:"type:jsonb;default:'[]'" json:"lines"`
	Notes       string       `gorm:"type:text" json:"notes,omitempty"`

	// Derived, computed on read
	Total float64 `gorm:"-" json:"total"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Invoice) TableName() string {
	return "invoices"
}

func (i *Invoice) AfterFind(tx *gorm.DB) error {
	i.Total = i.Lines.Total()
	return nil
}
