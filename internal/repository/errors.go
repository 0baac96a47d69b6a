package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Common repository errors
var (
	// ErrBoardNotFound is returned when a board is not found
	ErrBoardNotFound = errors.New("board not found")

	// ErrUserNotFound is returned when a board member is not found
	ErrUserNotFound = errors.New("user not found")

	// ErrTodoNotFound is returned when a todo is not found
	ErrTodoNotFound = errors.New("todo not found")

	// ErrColumnNotFound is returned when a column is not found
	ErrColumnNotFound = errors.New("column not found")

	// ErrColumnStatusTaken is returned when a board already has a column with the same status
	ErrColumnStatusTaken = errors.New("column status already exists on this board")

	// ErrDefaultColumn is returned on attempts to remove the default "todo" column
	ErrDefaultColumn = errors.New("the default todo column cannot be removed")
)

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
