package repository

import (
	"context"
	"errors"
	"fmt"

	"todoboard/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ColumnRepositoryInterface interface {
	Create(ctx context.Context, column *model.Column) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Column, error)
	ListByBoard(ctx context.Context, boardID uuid.UUID) ([]model.Column, error)
	EnsureDefaults(ctx context.Context, boardID uuid.UUID) ([]model.Column, error)
	Update(ctx context.Context, column *model.Column) error
	Delete(ctx context.Context, id uuid.UUID) error
	MaxOrder(ctx context.Context, boardID uuid.UUID) (int, error)
	UpdateOrder(ctx context.Context, id uuid.UUID, order int) error
	Reorder(ctx context.Context, boardID uuid.UUID, ids []uuid.UUID) error
}

var _ ColumnRepositoryInterface = (*ColumnRepository)(nil)

const (
	columnOrder       = `"order" ASC, id ASC`
	defaultsSavePoint = "default_columns"
)

type ColumnRepository struct {
	db *gorm.DB
}

func NewColumnRepository(db *gorm.DB) *ColumnRepository {
	return &ColumnRepository{db: db}
}

func (r *ColumnRepository) Create(ctx context.Context, column *model.Column) error {
	if err := r.db.WithContext(ctx).Create(column).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrColumnStatusTaken
		}
		return err
	}
	return nil
}

func (r *ColumnRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Column, error) {
	var column model.Column
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&column).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrColumnNotFound
		}
		return nil, err
	}
	return &column, nil
}

func (r *ColumnRepository) ListByBoard(ctx context.Context, boardID uuid.UUID) ([]model.Column, error) {
	var columns []model.Column
	err := r.db.WithContext(ctx).Where("board_id = ?", boardID).Order(columnOrder).Find(&columns).Error
	return columns, err
}

// EnsureDefaults returns the columns of a board, creating the default
// To-do / In-Progress / Done set first when the board has none.
func (r *ColumnRepository) EnsureDefaults(ctx context.Context, boardID uuid.UUID) ([]model.Column, error) {
	var columns []model.Column
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("board_id = ?", boardID).Order(columnOrder).Find(&columns).Error; err != nil {
			return err
		}
		if len(columns) > 0 {
			return nil
		}

		// A failed insert aborts the transaction; the savepoint keeps it usable
		// for the re-read below.
		if err := tx.SavePoint(defaultsSavePoint).Error; err != nil {
			return err
		}
		columns = model.DefaultColumns(boardID)
		if err := tx.Create(&columns).Error; err != nil {
			if !isUniqueViolation(err) {
				return fmt.Errorf("create default columns: %w", err)
			}
			// Another request created them first.
			if err := tx.RollbackTo(defaultsSavePoint).Error; err != nil {
				return err
			}
			columns = nil
			return tx.Where("board_id = ?", boardID).Order(columnOrder).Find(&columns).Error
		}
		return nil
	})
	return columns, err
}

func (r *ColumnRepository) Update(ctx context.Context, column *model.Column) error {
	result := r.db.WithContext(ctx).Model(&model.Column{}).
		Where("id = ?", column.ID).
		Updates(map[string]any{"title": column.Title, "color": column.Color})
	return rowsOrNotFound(result, ErrColumnNotFound)
}

func (r *ColumnRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND status <> ?", id, model.StatusTodo).
		Delete(&model.Column{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return ErrDefaultColumn
	}
	return nil
}

func (r *ColumnRepository) MaxOrder(ctx context.Context, boardID uuid.UUID) (int, error) {
	var maxOrder struct {
		Max int
	}
	err := r.db.WithContext(ctx).Model(&model.Column{}).
		Select(`COALESCE(MAX("order"), 0) as max`).
		Where("board_id = ?", boardID).
		Scan(&maxOrder).Error

	return maxOrder.Max, err
}

func (r *ColumnRepository) UpdateOrder(ctx context.Context, id uuid.UUID, order int) error {
	result := r.db.WithContext(ctx).Model(&model.Column{}).
		Where("id = ?", id).
		Update("order", order)
	return rowsOrNotFound(result, ErrColumnNotFound)
}

// Reorder assigns order 1..n following ids in a single transaction. Every id
// must belong to the board.
func (r *ColumnRepository) Reorder(ctx context.Context, boardID uuid.UUID, ids []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, id := range ids {
			result := tx.Model(&model.Column{}).
				Where("id = ? AND board_id = ?", id, boardID).
				Update("order", i+1)
			if err := rowsOrNotFound(result, ErrColumnNotFound); err != nil {
				return err
			}
		}
		return nil
	})
}
