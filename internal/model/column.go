package model

import (
	"github.com/google/uuid"
)

const (
	// StatusTodo is the status of the default column that can never be removed.
	StatusTodo       = "todo"
	StatusInProgress = "in-progress"
	StatusDone       = "done"

	DefaultColumnColor = "#FFFFFF"
)

type Column struct {
	ID      uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	BoardID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_board_status"`
	Title   string    `gorm:"not null"`
	Status  string    `gorm:"not null;uniqueIndex:idx_board_status"`
	Color   string    `gorm:"not null;default:'#FFFFFF'"`
	Order   int       `gorm:"column:order;not null"`
}

func (Column) TableName() string {
	return "kanban_columns"
}

// DefaultColumns returns the columns every board starts with.
func DefaultColumns(boardID uuid.UUID) []Column {
	return []Column{
		{BoardID: boardID, Title: "To-do", Status: StatusTodo, Color: DefaultColumnColor, Order: 1},
		{BoardID: boardID, Title: "In-Progress", Status: StatusInProgress, Color: DefaultColumnColor, Order: 2},
		{BoardID: boardID, Title: "Done", Status: StatusDone, Color: DefaultColumnColor, Order: 3},
	}
}
