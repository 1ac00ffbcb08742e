package model

import (
	"time"

	"github.com/google/uuid"
)

// List is an ordered column of cards. Position is a dense 0-based rank within the board.
type List struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	BoardID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Title       string    `gorm:"not null"`
	Description string
	Position    int `gorm:"not null"`
	CreatedAt   time.Time

	Cards []Card `gorm:"foreignKey:ListID"`
}
