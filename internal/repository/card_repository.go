package repository

import (
	"context"
	"errors"

	"taskboard/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CardRepository struct {
	db *gorm.DB
}

type CardRepositoryInterface interface {
	Create(ctx context.Context, card *model.Card) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Card, error)
	GetByListID(ctx context.Context, listID uuid.UUID) ([]model.Card, error)
	GetByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Card, error)
	Update(ctx context.Context, card *model.Card) error
	Delete(ctx context.Context, id uuid.UUID) error
	Reorder(ctx context.Context, boardID, listID uuid.UUID, orderedIDs []uuid.UUID) error
}

var _ CardRepositoryInterface = (*CardRepository)(nil)

func NewCardRepository(db *gorm.DB) *CardRepository {
	return &CardRepository{db: db}
}

// withComments preloads comments oldest first together with their authors.
func withComments(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at ASC")
		}).
		Preload("Comments.Author")
}

// Create appends the card at the end of its list.
func (r *CardRepository) Create(ctx context.Context, card *model.Card) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Card{}).Where("list_id = ?", card.ListID).Count(&count).Error; err != nil {
			return err
		}
		card.Position = int(count)
		return tx.Omit(clause.Associations).Create(card).Error
	})
}

func (r *CardRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Card, error) {
	var card model.Card
	if err := withComments(r.db.WithContext(ctx)).Where("id = ?", id).First(&card).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, err
	}
	return &card, nil
}

func (r *CardRepository) GetByListID(ctx context.Context, listID uuid.UUID) ([]model.Card, error) {
	var cards []model.Card
	err := withComments(r.db.WithContext(ctx)).
		Where("list_id = ?", listID).
		Order("position").
		Find(&cards).Error
	return cards, err
}

// GetByOwner returns every card on the owner's boards, soonest due first and
// undated cards last.
func (r *CardRepository) GetByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Card, error) {
	var cards []model.Card
	err := withComments(r.db.WithContext(ctx)).
		Joins("JOIN lists ON lists.id = cards.list_id").
		Joins("JOIN boards ON boards.id = lists.board_id").
		Where("boards.owner_id = ?", ownerID).
		Order("cards.due_date ASC NULLS LAST").
		Order("cards.created_at ASC").
		Find(&cards).Error
	return cards, err
}

func (r *CardRepository) Update(ctx context.Context, card *model.Card) error {
	result := r.db.WithContext(ctx).Model(&model.Card{}).
		Where("id = ?", card.ID).
		Updates(map[string]interface{}{
			"title":       card.Title,
			"description": card.Description,
			"due_date":    card.DueDate,
			"labels":      card.Labels,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCardNotFound
	}
	return nil
}

// Delete removes the card and closes the gap it leaves in its list.
func (r *CardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var card model.Card
		if err := tx.Where("id = ?", id).First(&card).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCardNotFound
			}
			return err
		}

		if err := tx.Delete(&model.Card{}, "id = ?", id).Error; err != nil {
			return err
		}

		return tx.Model(&model.Card{}).
			Where("list_id = ? AND position > ?", card.ListID, card.Position).
			Update("position", gorm.Expr("position - 1")).Error
	})
}

type cardPlacement struct {
	ID      uuid.UUID
	ListID  uuid.UUID
	BoardID uuid.UUID
}

// Reorder makes orderedIDs the content of listID, in that order. Cards may
// come from other lists of the same board; those lists are re-ranked so their
// positions stay dense. Every card currently in listID must be named.
func (r *CardRepository) Reorder(ctx context.Context, boardID, listID uuid.UUID, orderedIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var placements []cardPlacement
		if len(orderedIDs) > 0 {
			if err := tx.Table("cards").
				Select("cards.id AS id, cards.list_id AS list_id, lists.board_id AS board_id").
				Joins("JOIN lists ON lists.id = cards.list_id").
				Where("cards.id IN ?", orderedIDs).
				Scan(&placements).Error; err != nil {
				return err
			}
		}
		if len(placements) != len(orderedIDs) || hasDuplicates(orderedIDs) {
			return ErrOrderMismatch
		}

		sources := make(map[uuid.UUID]struct{})
		for _, p := range placements {
			if p.BoardID != boardID {
				return ErrOrderMismatch
			}
			if p.ListID != listID {
				sources[p.ListID] = struct{}{}
			}
		}

		var current []uuid.UUID
		if err := tx.Model(&model.Card{}).Where("list_id = ?", listID).Pluck("id", &current).Error; err != nil {
			return err
		}
		named := make(map[uuid.UUID]struct{}, len(orderedIDs))
		for _, id := range orderedIDs {
			named[id] = struct{}{}
		}
		for _, id := range current {
			if _, ok := named[id]; !ok {
				return ErrOrderMismatch
			}
		}

		for i, id := range orderedIDs {
			if err := tx.Model(&model.Card{}).Where("id = ?", id).
				Updates(map[string]interface{}{"list_id": listID, "position": i}).Error; err != nil {
				return err
			}
		}

		for source := range sources {
			if err := rerankCards(tx, source); err != nil {
				return err
			}
		}
		return nil
	})
}

func rerankCards(tx *gorm.DB, listID uuid.UUID) error {
	var ids []uuid.UUID
	if err := tx.Model(&model.Card{}).Where("list_id = ?", listID).Order("position").Pluck("id", &ids).Error; err != nil {
		return err
	}
	for i, id := range ids {
		if err := tx.Model(&model.Card{}).Where("id = ?", id).Update("position", i).Error; err != nil {
			return err
		}
	}
	return nil
}

func hasDuplicates(ids []uuid.UUID) bool {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			return true
		}
		seen[id] = struct{}{}
	}
	return false
}
