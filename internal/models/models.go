package models

import "time"

// Subscriber is one captured lead. Rows are insert-only: nothing in the
// system updates or deletes them, so there is no UpdatedAt.
type Subscriber struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	FullName       string `gorm:"not null" json:"full_name"`
	Email          string `gorm:"not null;index" json:"email"`
	Phone          string `json:"phone,omitempty"`
	Company        string `json:"company,omitempty"`
	TelegramHandle string `json:"telegram_handle,omitempty"`
	Message        string `json:"message,omitempty"`
	KeepUpdated    bool   `gorm:"default:false" json:"keep_updated"`
}
