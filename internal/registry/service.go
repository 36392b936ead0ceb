// Package registry orchestrates all writes to game parents, versions and
// the changelog. Multi-step operations run inside a single database
// transaction so no partial write is observable on failure.
package registry

import (
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/kosdesign/game-center/internal/apperr"
	"github.com/kosdesign/game-center/internal/models"
	"github.com/kosdesign/game-center/internal/store"
	"github.com/kosdesign/game-center/internal/token"
)

const (
	DefaultVersionChangelogLimit = 50
	DefaultGameChangelogLimit    = 100
)

type Service struct {
	db        *gorm.DB
	parents   *store.ParentStore
	versions  *store.VersionStore
	changelog *store.ChangelogStore
	log       *zap.Logger

	// logCascade also records changelog entries for cascade deletes and
	// combined game updates. The legacy behavior (false) skips them.
	logCascade bool
}

func New(db *gorm.DB, parents *store.ParentStore, versions *store.VersionStore, changelog *store.ChangelogStore, log *zap.Logger, logCascade bool) *Service {
	return &Service{
		db:         db,
		parents:    parents,
		versions:   versions,
		changelog:  changelog,
		log:        log,
		logCascade: logCascade,
	}
}

func actorOrSystem(actor string) string {
	if actor == "" {
		return "system"
	}
	return actor
}

// CreateGame registers the parent on first use, then creates the version.
func (s *Service) CreateGame(in CreateGameInput, actor string) (*models.Game, error) {
	if in.GameID == "" {
		return nil, apperr.Validation("game_id is required")
	}
	if in.GameName == "" {
		return nil, apperr.Validation("game_name is required")
	}
	if err := validateVersionData(in.VersionData); err != nil {
		return nil, err
	}

	var game *models.Game
	err := s.db.Transaction(func(tx *gorm.DB) error {
		parents := s.parents.WithTx(tx)
		versions := s.versions.WithTx(tx)

		parent, err := parents.FindByGameID(in.GameID)
		if err != nil {
			return err
		}
		if parent == nil {
			apiToken, err := token.Generate(in.GameID)
			if err != nil {
				return err
			}
			parent = &models.GameParent{
				GameID:   in.GameID,
				GameName: in.GameName,
				APIToken: apiToken,
				IsActive: true,
			}
			if err := parents.Create(parent); err != nil {
				return err
			}
		}

		exists, err := versions.Exists(in.GameID, in.GameVersion)
		if err != nil {
			return err
		}
		if exists {
			return apperr.Conflict("Game version already exists")
		}

		version := in.VersionData.toModel(in.GameID)
		if err := versions.Create(version); err != nil {
			return err
		}

		entry := &models.ChangelogEntry{
			GameID:            in.GameID,
			GameVersion:       in.GameVersion,
			ChangeType:        models.ChangeTypeCreated,
			NewValues:         in.VersionData.toMap(),
			ChangedBy:         actorOrSystem(actor),
			ChangedAt:         time.Now(),
			ChangeDescription: "Version created",
		}
		if err := s.changelog.WithTx(tx).Create(entry); err != nil {
			return err
		}

		game = models.MergeGame(parent, version)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("game created",
		zap.String("game_id", in.GameID),
		zap.String("game_version", in.GameVersion),
		zap.String("actor", actorOrSystem(actor)))
	return game, nil
}

// GetGame returns the parent merged with its latest version, ordered by
// numeric dot-segment comparison.
func (s *Service) GetGame(gameID string) (*models.Game, error) {
	parent, err := s.parents.FindByGameID(gameID)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, apperr.NotFound("Game not found")
	}
	versions, err := s.versions.FindByGameID(gameID)
	if err != nil {
		return nil, err
	}
	latest := latestVersion(versions)
	if latest == nil {
		return nil, apperr.NotFound("Game not found")
	}
	return models.MergeGame(parent, latest), nil
}

// ListGames returns one merged record per active version whose parent is
// also active, optionally filtered by environment tier.
func (s *Service) ListGames(gameType string) ([]*models.Game, error) {
	if gameType != "" && !models.ValidGameType(gameType) {
		return nil, apperr.Validation("type must be one of PROD, TEST, UAT")
	}
	active := true
	versions, err := s.versions.FindAll(store.VersionFilter{Type: gameType, IsActive: &active})
	if err != nil {
		return nil, err
	}
	games := make([]*models.Game, 0, len(versions))
	for i := range versions {
		parent, err := s.parents.FindByGameID(versions[i].GameID)
		if err != nil {
			return nil, err
		}
		if parent != nil && parent.IsActive {
			games = append(games, models.MergeGame(parent, &versions[i]))
		}
	}
	return games, nil
}

// UpdateGame optionally renames the parent, then applies the partial to the
// version record. A missing parent is not surfaced separately; a missing
// version is NotFound.
func (s *Service) UpdateGame(gameID, version string, in UpdateGameInput, actor string) (*models.Game, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if in.GameName != nil {
			if _, err := s.parents.WithTx(tx).Update(gameID, map[string]interface{}{"game_name": *in.GameName}); err != nil {
				return err
			}
		}
		_, err := s.applyVersionUpdate(tx, gameID, version, in.VersionUpdate, actor, s.logCascade)
		return err
	})
	if err != nil {
		return nil, err
	}
	return s.GetGame(gameID)
}

// DeleteGame cascades: versions and changelog go first, then the parent.
// Reports whether the parent row was actually removed.
func (s *Service) DeleteGame(gameID string) (bool, error) {
	var deleted bool
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		deleted, err = s.cascadeDelete(tx, gameID)
		return err
	})
	if err != nil {
		return false, err
	}
	if deleted {
		s.log.Info("game deleted", zap.String("game_id", gameID))
	}
	return deleted, nil
}

func (s *Service) cascadeDelete(tx *gorm.DB, gameID string) (bool, error) {
	versions := s.versions.WithTx(tx)
	changelog := s.changelog.WithTx(tx)

	var cascaded []models.GameVersion
	if s.logCascade {
		var err error
		cascaded, err = versions.FindByGameID(gameID)
		if err != nil {
			return false, err
		}
	}
	if _, err := changelog.DeleteByGameID(gameID); err != nil {
		return false, err
	}
	if _, err := versions.DeleteAllByGameID(gameID); err != nil {
		return false, err
	}
	deleted, err := s.parents.WithTx(tx).Delete(gameID)
	if err != nil {
		return false, err
	}
	// tombstones survive the changelog cascade above
	for i := range cascaded {
		entry := &models.ChangelogEntry{
			GameID:            gameID,
			GameVersion:       cascaded[i].GameVersion,
			ChangeType:        models.ChangeTypeDeleted,
			OldValues:         versionToMap(&cascaded[i]),
			ChangedBy:         "system",
			ChangedAt:         time.Now(),
			ChangeDescription: "Version deleted (game cascade)",
		}
		if err := changelog.Create(entry); err != nil {
			return false, err
		}
	}
	return deleted, nil
}

// CreateVersion adds a version under an existing parent and records the
// created changelog entry.
func (s *Service) CreateVersion(gameID string, data VersionData, actor string) (*models.GameVersion, error) {
	if err := validateVersionData(data); err != nil {
		return nil, err
	}

	var created *models.GameVersion
	err := s.db.Transaction(func(tx *gorm.DB) error {
		parent, err := s.parents.WithTx(tx).FindByGameID(gameID)
		if err != nil {
			return err
		}
		if parent == nil {
			return apperr.NotFound("Game not found")
		}

		versions := s.versions.WithTx(tx)
		exists, err := versions.Exists(gameID, data.GameVersion)
		if err != nil {
			return err
		}
		if exists {
			return apperr.Conflict("Version already exists for this game")
		}

		created = data.toModel(gameID)
		if err := versions.Create(created); err != nil {
			return err
		}

		entry := &models.ChangelogEntry{
			GameID:            gameID,
			GameVersion:       data.GameVersion,
			ChangeType:        models.ChangeTypeCreated,
			NewValues:         data.toMap(),
			ChangedBy:         actorOrSystem(actor),
			ChangedAt:         time.Now(),
			ChangeDescription: "Version created",
		}
		return s.changelog.WithTx(tx).Create(entry)
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("version created",
		zap.String("game_id", gameID),
		zap.String("game_version", data.GameVersion),
		zap.String("actor", actorOrSystem(actor)))
	return created, nil
}

// UpdateVersion applies a partial update and records an updated changelog
// entry whose old/new values are snapshotted from the pre-update record.
func (s *Service) UpdateVersion(gameID, version string, update VersionUpdate, actor string) (*models.GameVersion, error) {
	var updated *models.GameVersion
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		updated, err = s.applyVersionUpdate(tx, gameID, version, update, actor, true)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Service) applyVersionUpdate(tx *gorm.DB, gameID, version string, update VersionUpdate, actor string, writeLog bool) (*models.GameVersion, error) {
	versions := s.versions.WithTx(tx)

	existing, err := versions.FindByGameIDAndVersion(gameID, version)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperr.NotFound("Version not found")
	}
	if err := validateVersionUpdate(existing, update); err != nil {
		return nil, err
	}

	changedFields := update.fields()
	if len(changedFields) == 0 {
		return existing, nil
	}

	oldValues := map[string]interface{}{}
	newValues := map[string]interface{}{}
	updates := map[string]interface{}{}
	for _, field := range changedFields {
		oldValues[field] = versionFieldValue(existing, field)
		newValues[field] = update.value(field)
		updates[field] = update.value(field)
	}
	// a port_type switch clears the columns of the previous shape
	if update.PortType != nil && *update.PortType != existing.PortType {
		switch *update.PortType {
		case models.PortTypeRange:
			updates["port"] = nil
		case models.PortTypeFixed:
			updates["port_start"] = nil
			updates["port_end"] = nil
		}
	}

	updated, err := versions.Update(gameID, version, updates)
	if err != nil {
		return nil, err
	}

	if writeLog {
		entry := &models.ChangelogEntry{
			GameID:            gameID,
			GameVersion:       version,
			ChangeType:        models.ChangeTypeUpdated,
			OldValues:         oldValues,
			NewValues:         newValues,
			ChangedBy:         actorOrSystem(actor),
			ChangedAt:         time.Now(),
			ChangeDescription: "Updated fields: " + strings.Join(changedFields, ", "),
		}
		entry.SetChangedFields(changedFields)
		if err := s.changelog.WithTx(tx).Create(entry); err != nil {
			return nil, err
		}
	}
	return updated, nil
}

// DeleteVersion removes a single version. The deleted changelog entry is
// written only after the delete succeeded, inside the same transaction.
func (s *Service) DeleteVersion(gameID, version string, actor string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		versions := s.versions.WithTx(tx)

		existing, err := versions.FindByGameIDAndVersion(gameID, version)
		if err != nil {
			return err
		}
		if existing == nil {
			return apperr.NotFound("Version not found")
		}

		deleted, err := versions.Delete(gameID, version)
		if err != nil {
			return err
		}
		if !deleted {
			return apperr.NotFound("Version not found")
		}

		entry := &models.ChangelogEntry{
			GameID:            gameID,
			GameVersion:       version,
			ChangeType:        models.ChangeTypeDeleted,
			OldValues:         versionToMap(existing),
			ChangedBy:         actorOrSystem(actor),
			ChangedAt:         time.Now(),
			ChangeDescription: "Version deleted",
		}
		return s.changelog.WithTx(tx).Create(entry)
	})
}

func (s *Service) GetVersionChangelog(gameID, version string, limit int) ([]models.ChangelogEntry, error) {
	if limit <= 0 {
		limit = DefaultVersionChangelogLimit
	}
	return s.changelog.FindByGameIDAndVersion(gameID, version, limit)
}

func (s *Service) GetGameChangelog(gameID string, limit int) ([]models.ChangelogEntry, error) {
	if limit <= 0 {
		limit = DefaultGameChangelogLimit
	}
	return s.changelog.FindByGameID(gameID, limit)
}
