package repository

import (
	"context"
	"errors"

	"taskboard/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListRepository struct {
	db *gorm.DB
}

type ListRepositoryInterface interface {
	Create(ctx context.Context, list *model.List) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.List, error)
	GetByBoardID(ctx context.Context, boardID uuid.UUID) ([]model.List, error)
	Update(ctx context.Context, list *model.List) error
	Delete(ctx context.Context, id uuid.UUID) error
	Reorder(ctx context.Context, boardID uuid.UUID, orderedIDs []uuid.UUID) error
}

var _ ListRepositoryInterface = (*ListRepository)(nil)

func NewListRepository(db *gorm.DB) *ListRepository {
	return &ListRepository{db: db}
}

// Create appends the list at the end of its board.
func (r *ListRepository) Create(ctx context.Context, list *model.List) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.List{}).Where("board_id = ?", list.BoardID).Count(&count).Error; err != nil {
			return err
		}
		list.Position = int(count)
		return tx.Create(list).Error
	})
}

func (r *ListRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.List, error) {
	var list model.List
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&list).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListNotFound
		}
		return nil, err
	}
	return &list, nil
}

func (r *ListRepository) GetByBoardID(ctx context.Context, boardID uuid.UUID) ([]model.List, error) {
	var lists []model.List
	err := r.db.WithContext(ctx).Where("board_id = ?", boardID).Order("position").Find(&lists).Error
	return lists, err
}

func (r *ListRepository) Update(ctx context.Context, list *model.List) error {
	return r.db.WithContext(ctx).Model(&model.List{}).
		Where("id = ?", list.ID).
		Updates(map[string]interface{}{
			"title":       list.Title,
			"description": list.Description,
		}).Error
}

// Delete removes the list and closes the gap it leaves in the board's ranking.
func (r *ListRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var list model.List
		if err := tx.Where("id = ?", id).First(&list).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrListNotFound
			}
			return err
		}

		if err := tx.Delete(&model.List{}, "id = ?", id).Error; err != nil {
			return err
		}

		return tx.Model(&model.List{}).
			Where("board_id = ? AND position > ?", list.BoardID, list.Position).
			Update("position", gorm.Expr("position - 1")).Error
	})
}

// Reorder assigns positions 0..n-1 following orderedIDs, which must name
// every list of the board exactly once.
func (r *ListRepository) Reorder(ctx context.Context, boardID uuid.UUID, orderedIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing []uuid.UUID
		if err := tx.Model(&model.List{}).Where("board_id = ?", boardID).Pluck("id", &existing).Error; err != nil {
			return err
		}
		if !sameSet(existing, orderedIDs) {
			return ErrOrderMismatch
		}

		for i, id := range orderedIDs {
			if err := tx.Model(&model.List{}).Where("id = ?", id).
				Update("position", i).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// sameSet reports whether want holds exactly the ids in have, each once.
func sameSet(have, want []uuid.UUID) bool {
	if len(have) != len(want) {
		return false
	}
	seen := make(map[uuid.UUID]bool, len(have))
	for _, id := range have {
		seen[id] = false
	}
	for _, id := range want {
		used, ok := seen[id]
		if !ok || used {
			return false
		}
		seen[id] = true
	}
	return true
}
