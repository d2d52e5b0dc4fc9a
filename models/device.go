package models

import (
	"time"

	"github.com/google/uuid"
)

// Device is a registered mobile shell instance. The id is generated by
// the device itself, so registration is an upsert keyed by that id; a
// heartbeat once per minute bumps LastSeenAt.
type Device struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Platform   string    `gorm:"size:20" json:"platform,omitempty"` // android, ios
	AppVersion string    `gorm:"size:20" json:"app_version,omitempty"`
	PushToken  string    `gorm:"size:500" json:"push_token,omitempty"`
	LastSeenAt time.Time `gorm:"not null;index" json:"last_seen_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Device) TableName() string {
	return "devices"
}

// Online reports whether the device heartbeat is fresh enough (heartbeats
// arrive once per minute; allow two missed beats).
func (d Device) Online(now time.Time) bool {
	return now.Sub(d.LastSeenAt) <= 3*time.Minute
}
