package store

import (
	"gorm.io/gorm"

	"github.com/kosdesign/game-center/internal/models"
)

// ChangelogStore is the sole persistence access for the append-only version
// changelog. Entries are written once and never updated; deletes happen only
// as part of a game or version cascade.
type ChangelogStore struct {
	db *gorm.DB
}

func NewChangelogStore(db *gorm.DB) *ChangelogStore { return &ChangelogStore{db: db} }

func (s *ChangelogStore) WithTx(tx *gorm.DB) *ChangelogStore { return &ChangelogStore{db: tx} }

func (s *ChangelogStore) Create(entry *models.ChangelogEntry) error {
	return s.db.Create(entry).Error
}

func (s *ChangelogStore) FindByGameIDAndVersion(gameID, version string, limit int) ([]models.ChangelogEntry, error) {
	var entries []models.ChangelogEntry
	err := s.db.Where("game_id = ? AND game_version = ?", gameID, version).
		Order("changed_at desc, id desc").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *ChangelogStore) FindByGameID(gameID string, limit int) ([]models.ChangelogEntry, error) {
	var entries []models.ChangelogEntry
	err := s.db.Where("game_id = ?", gameID).
		Order("changed_at desc, id desc").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *ChangelogStore) DeleteByGameID(gameID string) (int64, error) {
	res := s.db.Where("game_id = ?", gameID).Delete(&models.ChangelogEntry{})
	return res.RowsAffected, res.Error
}

func (s *ChangelogStore) DeleteByGameIDAndVersion(gameID, version string) (int64, error) {
	res := s.db.Where("game_id = ? AND game_version = ?", gameID, version).Delete(&models.ChangelogEntry{})
	return res.RowsAffected, res.Error
}
