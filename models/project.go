package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ProjectStatusOngoing   = "ongoing"
	ProjectStatusCompleted = "completed"
	ProjectStatusOnHold    = "on_hold"
)

// Project is a booked job. FinalAmount and PendingAmount are derived at
// read time and never stored.
type Project struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ClientName  string     `gorm:"size:255;not null" json:"client_name"`
	ClientPhone string     `gorm:"size:15;not null" json:"client_phone"`
	Address     string     `gorm:"type:text" json:"address,omitempty"`
	Scope       string     `gorm:"type:text" json:"scope,omitempty"`
	Budget      float64    `gorm:"type:decimal(15,2);not null;default:0" json:"budget"`
	Discount    float64    `gorm:"type:decimal(15,2);default:0" json:"discount"`
	Advance     float64    `gorm:"type:decimal(15,2);default:0" json:"advance"`
	Status      string     `gorm:"size:20;not null;default:'ongoing';index" json:"status"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Notes       string     `gorm:"type:text" json:"notes,omitempty"`

	// Derived, computed on read
	FinalAmount   float64 `gorm:"-" json:"final_amount"`
	PendingAmount float64 `gorm:"-" json:"pending_amount"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Project) TableName() string {
	return "projects"
}

// AfterFind computes the financial fields: final = budget - discount,
// pending = final - advance.
func (p *Project) AfterFind(tx *gorm.DB) error {
	p.Derive()
	return nil
}

// Derive recomputes FinalAmount and PendingAmount from the stored fields.
func (p *Project) Derive() {
	p.FinalAmount = p.Budget - p.Discount
	p.PendingAmount = p.FinalAmount - p.Advance
}
