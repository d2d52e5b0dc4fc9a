package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CommLog records a client touchpoint (call, WhatsApp, email, visit).
// Like site visits it copies the client's name/phone instead of holding
// a lead foreign key.
type CommLog struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ClientName  string    `gorm:"size:255;not null" json:"client_name"`
	ClientPhone string    `gorm:"size:15;not null;index" json:"client_phone"`
	Channel     string    `gorm:"size:30;not null" json:"channel"`  // call, whatsapp, email, in_person
	Direction   string    `gorm:"size:10" json:"direction"`         // inbound, outbound
	Summary     string    `gorm:"type:text;not null" json:"summary"`
	LoggedAt    time.Time `gorm:"not null;index" json:"logged_at"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (CommLog) TableName() string {
	return "comm_logs"
}
