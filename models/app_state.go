package models

import "time"

// Durable key/value flags, the only state the client persists across
// sessions (reminder dismissals and the like).
const (
	StateKeyPaymentPopupDismissedUntil = "payment_popup_dismissed_until"
)

type AppState struct {
	Key       string    `gorm:"size:100;primaryKey" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (AppState) TableName() string {
	return "app_state"
}
