package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"timeweave/core/entity"

	"github.com/google/uuid"
)

// Notification is an in-app event surfaced to a meeting creator: a new
// participant joined, availability was submitted, or a slot was locked.
type Notification struct {
	CreatorID uuid.UUID  `db:"creator_id" json:"creator_id"`
	MeetingID *uuid.UUID `db:"meeting_id" json:"meeting_id,omitempty"`
	Title     string     `db:"title" json:"title"`
	Message   string     `db:"message" json:"message"`
	Type      string     `db:"type" json:"type"`
	Data      JSONB      `db:"data" json:"data"`
	IsRead    bool       `db:"is_read" json:"is_read"`
	entity.BaseEntity
}

type JSONB map[string]interface{}

func (a JSONB) Value() (driver.Value, error) {
	return json.Marshal(a)
}

func (a *JSONB) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, &a)
}

type PaginatedNotificationEntity = entity.Pagination[Notification]
