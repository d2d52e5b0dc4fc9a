package models

import (
	"database/sql/driver"
	"encoding/json"
)

// Attachment is an inline file stored directly on the owning record:
// name, MIME type and the base64 payload as a single jsonb value.
// There is no separate blob store.
type Attachment struct {
	Name     string `json:"name"`
	MimeType string `json:"mime_type"`
	Data     string `json:"data"` // base64-encoded payload
}

// Scan implements the sql.Scanner interface
func (a *Attachment) Scan(value interface{}) error {
	if value == nil {
		*a = Attachment{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		*a = Attachment{}
		return nil
	}

	return json.Unmarshal(bytes, a)
}

// Value implements the driver.Valuer interface
func (a Attachment) Value() (driver.Value, error) {
	return json.Marshal(a)
}

// GormDataType defines the data type for GORM
func (Attachment) GormDataType() string {
	return "jsonb"
}

// IsZero reports whether no file is attached.
func (a Attachment) IsZero() bool {
	return a.Name == "" && a.Data == ""
}
