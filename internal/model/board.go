package model

import (
	"time"

	"github.com/google/uuid"
)

type Board struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name      string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`

	Users   []User   `gorm:"foreignKey:BoardID;constraint:OnDelete:CASCADE"`
	Columns []Column `gorm:"foreignKey:BoardID;constraint:OnDelete:CASCADE"`
	Todos   []Todo   `gorm:"foreignKey:BoardID;constraint:OnDelete:CASCADE"`
}

// BoardStats is the summary shown on the board list: todos still on the board
// and how many of them sit in the default "todo" column.
type BoardStats struct {
	BoardID   uuid.UUID
	Total     int64
	TodoCount int64
}
