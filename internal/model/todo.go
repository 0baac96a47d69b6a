package model

import (
	"time"

	"github.com/google/uuid"
)

type Todo struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	BoardID     uuid.UUID `gorm:"type:uuid;not null;index"`
	UserName    string    `gorm:"not null;default:''"`
	Title       string    `gorm:"not null"`
	Status      string    `gorm:"not null;index"`
	Date        *string
	Description string    `gorm:"not null;default:''"`
	IsError     bool      `gorm:"not null;default:false;index"`
	Comment     *string
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}
