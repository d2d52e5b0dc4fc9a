package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	// PaymentTypeWeeklyBudget is the recurring weekly site budget transfer.
	PaymentTypeWeeklyBudget = "weekly_budget"
	// PaymentTypeMonthlyService is the monthly service fee, due by the 10th.
	PaymentTypeMonthlyService = "monthly_service"

	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
)

type Payment struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Type   string    `gorm:"size:20;not null;index" json:"type"`
	Label  string    `gorm:"size:255" json:"label,omitempty"`
	Amount float64   `gorm:"type:decimal(15,2);not null" json:"amount"`
	// DueDate is a calendar date; the time-of-day portion is ignored.
	DueDate time.Time  `gorm:"not null;index" json:"due_date"`
	Status  string     `gorm:"size:20;not null;default:'pending';index" json:"status"`
	PaidOn  *time.Time `json:"paid_on,omitempty"`
	Notes   string     `gorm:"type:text" json:"notes,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Payment) TableName() string {
	return "payments"
}
