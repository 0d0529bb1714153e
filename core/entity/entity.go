package entity

import (
	"time"

	"github.com/google/uuid"
)

// BaseEntity carries the columns shared by every persisted aggregate.
type BaseEntity struct {
	ID        uuid.UUID `db:"id" json:"id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// StampNew assigns a fresh ID when missing and sets both timestamps to now (UTC).
func (b *BaseEntity) StampNew() {
	now := time.Now().UTC()
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	b.CreatedAt = now
	b.UpdatedAt = now
}

// Touch refreshes UpdatedAt before an update statement.
func (b *BaseEntity) Touch() {
	b.UpdatedAt = time.Now().UTC()
}

type Pagination[T any] struct {
	Items      []T `json:"items"`
	TotalItems int `json:"total_items"`
	PageNumber int `json:"page_number"`
	PageSize   int `json:"page_size"`
}
