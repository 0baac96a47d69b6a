package repository

import (
	"context"
	"errors"
	"fmt"

	"todoboard/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BoardRepositoryInterface interface {
	Create(ctx context.Context, board *model.Board) error
	List(ctx context.Context) ([]model.Board, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Board, error)
	Update(ctx context.Context, board *model.Board) error
	Delete(ctx context.Context, id uuid.UUID) error
	Stats(ctx context.Context, boardIDs ...uuid.UUID) (map[uuid.UUID]model.BoardStats, error)
}

var _ BoardRepositoryInterface = (*BoardRepository)(nil)

type BoardRepository struct {
	db *gorm.DB
}

func NewBoardRepository(db *gorm.DB) *BoardRepository {
	return &BoardRepository{db: db}
}

func (r *BoardRepository) Create(ctx context.Context, board *model.Board) error {
	return r.db.WithContext(ctx).Create(board).Error
}

func (r *BoardRepository) List(ctx context.Context) ([]model.Board, error) {
	var boards []model.Board
	err := r.db.WithContext(ctx).Order("created_at, id").Find(&boards).Error
	return boards, err
}

func (r *BoardRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Board, error) {
	var board model.Board
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&board).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBoardNotFound
		}
		return nil, err
	}
	return &board, nil
}

func (r *BoardRepository) Update(ctx context.Context, board *model.Board) error {
	result := r.db.WithContext(ctx).Model(&model.Board{}).
		Where("id = ?", board.ID).
		Update("name", board.Name)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBoardNotFound
	}
	return nil
}

// Delete removes the board; users, columns and todos go with it through
// ON DELETE CASCADE.
func (r *BoardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Board{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBoardNotFound
	}
	return nil
}

// Stats counts the todos still on the kanban surface of each board. With no
// ids every board is counted. Boards without todos are absent from the map.
func (r *BoardRepository) Stats(ctx context.Context, boardIDs ...uuid.UUID) (map[uuid.UUID]model.BoardStats, error) {
	var rows []model.BoardStats

	query := r.db.WithContext(ctx).Model(&model.Todo{}).
		Select("board_id, COUNT(*) AS total, COUNT(*) FILTER (WHERE status = ?) AS todo_count", model.StatusTodo).
		Where("is_error = ?", false)
	if len(boardIDs) > 0 {
		query = query.Where("board_id IN ?", boardIDs)
	}

	if err := query.Group("board_id").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("count todos: %w", err)
	}

	stats := make(map[uuid.UUID]model.BoardStats, len(rows))
	for _, row := range rows {
		stats[row.BoardID] = row
	}
	return stats, nil
}
