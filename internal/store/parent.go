package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/kosdesign/game-center/internal/apperr"
	"github.com/kosdesign/game-center/internal/models"
)

// ParentStore is the sole persistence access for GameParent records.
type ParentStore struct {
	db *gorm.DB
}

func NewParentStore(db *gorm.DB) *ParentStore { return &ParentStore{db: db} }

// WithTx returns a store bound to the given transaction.
func (s *ParentStore) WithTx(tx *gorm.DB) *ParentStore { return &ParentStore{db: tx} }

func (s *ParentStore) FindByGameID(gameID string) (*models.GameParent, error) {
	var parent models.GameParent
	err := s.db.Where("game_id = ?", gameID).First(&parent).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &parent, nil
}

func (s *ParentStore) FindAll(activeOnly bool) ([]models.GameParent, error) {
	var parents []models.GameParent
	q := s.db.Order("id desc")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	if err := q.Find(&parents).Error; err != nil {
		return nil, err
	}
	return parents, nil
}

func (s *ParentStore) Create(parent *models.GameParent) error {
	if err := s.db.Create(parent).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.Conflict("Game ID already exists")
		}
		return err
	}
	return nil
}

// Update applies the given column updates and returns the fresh record, or
// nil if no parent matches. GameID itself is never updated.
func (s *ParentStore) Update(gameID string, updates map[string]interface{}) (*models.GameParent, error) {
	existing, err := s.FindByGameID(gameID)
	if err != nil || existing == nil {
		return nil, err
	}
	delete(updates, "game_id")
	if len(updates) > 0 {
		if err := s.db.Model(&models.GameParent{}).Where("game_id = ?", gameID).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return s.FindByGameID(gameID)
}

func (s *ParentStore) Delete(gameID string) (bool, error) {
	res := s.db.Where("game_id = ?", gameID).Delete(&models.GameParent{})
	return res.RowsAffected > 0, res.Error
}

func (s *ParentStore) Exists(gameID string) (bool, error) {
	var count int64
	err := s.db.Model(&models.GameParent{}).Where("game_id = ?", gameID).Count(&count).Error
	return count > 0, err
}
