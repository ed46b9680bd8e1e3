package model

import (
	"time"

	"github.com/lib/pq"
)

// Event domain object defining a school event
// swagger:model
type Event struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
	Name           string         `json:"name"`
	Date           time.Time      `json:"date"`
	Location       string         `json:"location"`
	ContactPersons pq.StringArray `gorm:"type:text[];not null;default:'{}'" json:"contactPersons"`
	MainContact    *string        `json:"mainContact,omitempty"`
	ContactInfo    *string        `json:"contactInfo,omitempty"`
}

// EventNote is a free-form note attached to an event. Notes are append-only, except that the
// author can delete their own.
// swagger:model
type EventNote struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	EventID   uint      `gorm:"index" json:"eventId"`
	Content   string    `json:"content"`
	CreatedBy string    `json:"createdBy"`
}
