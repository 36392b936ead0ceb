package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/kosdesign/game-center/internal/apperr"
	"github.com/kosdesign/game-center/internal/models"
)

// VersionFilter narrows FindAll results. A nil IsActive means no filter.
type VersionFilter struct {
	Type     string
	IsActive *bool
}

// VersionStore is the sole persistence access for GameVersion records,
// keyed by the (game_id, game_version) composite.
type VersionStore struct {
	db *gorm.DB
}

func NewVersionStore(db *gorm.DB) *VersionStore { return &VersionStore{db: db} }

func (s *VersionStore) WithTx(tx *gorm.DB) *VersionStore { return &VersionStore{db: tx} }

// FindByID fetches a version by its numeric primary key, the identifier
// external clients present on the public lookup endpoint.
func (s *VersionStore) FindByID(id uint) (*models.GameVersion, error) {
	var version models.GameVersion
	err := s.db.First(&version, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &version, nil
}

func (s *VersionStore) FindByGameID(gameID string) ([]models.GameVersion, error) {
	var versions []models.GameVersion
	if err := s.db.Where("game_id = ?", gameID).Order("id asc").Find(&versions).Error; err != nil {
		return nil, err
	}
	return versions, nil
}

func (s *VersionStore) FindByGameIDAndVersion(gameID, version string) (*models.GameVersion, error) {
	var v models.GameVersion
	err := s.db.Where("game_id = ? AND game_version = ?", gameID, version).First(&v).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *VersionStore) FindAll(filter VersionFilter) ([]models.GameVersion, error) {
	q := s.db.Order("id asc")
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	if filter.IsActive != nil {
		q = q.Where("is_active = ?", *filter.IsActive)
	}
	var versions []models.GameVersion
	if err := q.Find(&versions).Error; err != nil {
		return nil, err
	}
	return versions, nil
}

func (s *VersionStore) Create(version *models.GameVersion) error {
	if err := s.db.Create(version).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.Conflict("Version already exists for this game")
		}
		return err
	}
	return nil
}

// Update applies the given column updates and returns the fresh record, or
// nil if the composite key does not exist.
func (s *VersionStore) Update(gameID, version string, updates map[string]interface{}) (*models.GameVersion, error) {
	existing, err := s.FindByGameIDAndVersion(gameID, version)
	if err != nil || existing == nil {
		return nil, err
	}
	delete(updates, "game_id")
	if len(updates) > 0 {
		err := s.db.Model(&models.GameVersion{}).
			Where("game_id = ? AND game_version = ?", gameID, version).
			Updates(updates).Error
		if err != nil {
			return nil, err
		}
	}
	// the row may have been renamed by the update
	if v, ok := updates["game_version"].(string); ok {
		version = v
	}
	return s.FindByGameIDAndVersion(gameID, version)
}

func (s *VersionStore) Delete(gameID, version string) (bool, error) {
	res := s.db.Where("game_id = ? AND game_version = ?", gameID, version).Delete(&models.GameVersion{})
	return res.RowsAffected > 0, res.Error
}

// DeleteAllByGameID removes every version under a game and reports how many
// rows went away. Used by the parent cascade.
func (s *VersionStore) DeleteAllByGameID(gameID string) (int64, error) {
	res := s.db.Where("game_id = ?", gameID).Delete(&models.GameVersion{})
	return res.RowsAffected, res.Error
}

func (s *VersionStore) Exists(gameID, version string) (bool, error) {
	var count int64
	err := s.db.Model(&models.GameVersion{}).
		Where("game_id = ? AND game_version = ?", gameID, version).
		Count(&count).Error
	return count > 0, err
}
