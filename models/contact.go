package models

import (
	"time"

	"gorm.io/gorm"
)

// Contact message handling statuses.
const (
	ContactStatusNew      = "new"
	ContactStatusRead     = "read"
	ContactStatusReplied  = "replied"
	ContactStatusArchived = "archived"
)

// ValidContactStatus reports whether status is one of the allowed values.
func ValidContactStatus(status string) bool {
	switch status {
	case ContactStatusNew, ContactStatusRead, ContactStatusReplied, ContactStatusArchived:
		return true
	}
	return false
}

// ContactMessage is a contact form submission. Rows are created only through
// the public contact endpoint; afterwards only the status field changes.
type ContactMessage struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"not null;index" json:"email"`
	Phone     string    `json:"phone"`
	Subject   string    `gorm:"not null" json:"subject"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Status    string    `gorm:"type:varchar(20);default:'new'" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (m *ContactMessage) BeforeCreate(tx *gorm.DB) error {
	if m.Status == "" {
		m.Status = ContactStatusNew
	}
	return nil
}
