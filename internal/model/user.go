package model

import (
	"time"

	"github.com/google/uuid"
)

// User is a named participant on a board. It is used for attribution only,
// there are no credentials attached to it.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	BoardID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}
