package repository_test

import (
	"context"
	"testing"
	"time"

	"todoboard/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

var todoColumns = []string{
	"id", "board_id", "user_name", "title", "status", "date", "description", "is_error", "comment", "created_at",
}

func TestTodoRepository_ListByBoard_ErrorRoomNewestFirst(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	todoRepo := repository.NewTodoRepository(gormDB)

	boardID := uuid.New()
	newer := uuid.New()
	older := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM "todos" WHERE board_id = \$1 AND is_error = \$2 ORDER BY created_at DESC, id DESC`).
		WithArgs(boardID, true).
		WillReturnRows(sqlmock.NewRows(todoColumns).
			AddRow(newer.String(), boardID.String(), "Alice", "Broken build", "todo", nil, "", true, "flaky test", now).
			AddRow(older.String(), boardID.String(), "Bob", "Crash on save", "done", "2024-12-23 ~ 2025-01-01", "", true, nil, now.Add(-time.Hour)))

	// Act
	todos, err := todoRepo.ListByBoard(context.Background(), boardID, true)

	// Assert
	assert.NoError(t, err)
	assert.Len(t, todos, 2)
	assert.Equal(t, newer, todos[0].ID)
	assert.Equal(t, "flaky test", *todos[0].Comment)
	assert.Nil(t, todos[0].Date)
	assert.Equal(t, "2024-12-23 ~ 2025-01-01", *todos[1].Date)
	assert.Nil(t, todos[1].Comment)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTodoRepository_UpdateStatus_NotFound(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	todoRepo := repository.NewTodoRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "todos" SET "status"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	// Act
	err := todoRepo.UpdateStatus(context.Background(), uuid.New(), "done")

	// Assert
	assert.ErrorIs(t, err, repository.ErrTodoNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTodoRepository_DeleteMany_EmptySelection(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	todoRepo := repository.NewTodoRepository(gormDB)

	// Act
	n, err := todoRepo.DeleteMany(context.Background(), uuid.New(), nil)

	// Assert
	assert.NoError(t, err)
	assert.Zero(t, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTodoRepository_DeleteMany(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	todoRepo := repository.NewTodoRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "todos" WHERE board_id = \$1 AND id IN \(\$2,\$3\)`).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	// Act
	n, err := todoRepo.DeleteMany(context.Background(), uuid.New(), []uuid.UUID{uuid.New(), uuid.New()})

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTodoRepository_MarkError(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	todoRepo := repository.NewTodoRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "todos" SET "is_error"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// Act
	n, err := todoRepo.MarkError(context.Background(), uuid.New(), []uuid.UUID{uuid.New()})

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTodoRepository_MarkError_DatabaseError(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	todoRepo := repository.NewTodoRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "todos" SET "is_error"`).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	// Act
	_, err := todoRepo.MarkError(context.Background(), uuid.New(), []uuid.UUID{uuid.New()})

	// Assert
	assert.ErrorIs(t, err, assert.AnError)
	assert.NoError(t, mock.ExpectationsWereMet())
}
