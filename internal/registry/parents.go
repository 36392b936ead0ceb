package registry

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/kosdesign/game-center/internal/apperr"
	"github.com/kosdesign/game-center/internal/models"
	"github.com/kosdesign/game-center/internal/token"
)

// ParentUpdate is the partial update accepted for a parent record.
type ParentUpdate struct {
	GameName *string `json:"game_name"`
	IsActive *bool   `json:"is_active"`
}

func (s *Service) GetParents() ([]models.GameParent, error) {
	return s.parents.FindAll(true)
}

func (s *Service) GetParent(gameID string) (*models.GameParent, error) {
	parent, err := s.parents.FindByGameID(gameID)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, apperr.NotFound("Game not found")
	}
	return parent, nil
}

// CreateParent registers a game identity without any version, generating
// its API token.
func (s *Service) CreateParent(gameID, gameName string) (*models.GameParent, error) {
	if gameID == "" {
		return nil, apperr.Validation("game_id is required")
	}
	if gameName == "" {
		return nil, apperr.Validation("game_name is required")
	}
	exists, err := s.parents.Exists(gameID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.Conflict("Game ID already exists")
	}

	apiToken, err := token.Generate(gameID)
	if err != nil {
		return nil, err
	}
	parent := &models.GameParent{
		GameID:   gameID,
		GameName: gameName,
		APIToken: apiToken,
		IsActive: true,
	}
	if err := s.parents.Create(parent); err != nil {
		return nil, err
	}
	s.log.Info("parent created", zap.String("game_id", gameID))
	return parent, nil
}

func (s *Service) UpdateParent(gameID string, update ParentUpdate) (*models.GameParent, error) {
	updates := map[string]interface{}{}
	if update.GameName != nil {
		if *update.GameName == "" {
			return nil, apperr.Validation("game_name must not be empty")
		}
		updates["game_name"] = *update.GameName
	}
	if update.IsActive != nil {
		updates["is_active"] = *update.IsActive
	}

	parent, err := s.parents.Update(gameID, updates)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, apperr.NotFound("Game not found")
	}
	return parent, nil
}

// DeleteParent cascades exactly like DeleteGame.
func (s *Service) DeleteParent(gameID string) error {
	var deleted bool
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		deleted, err = s.cascadeDelete(tx, gameID)
		return err
	})
	if err != nil {
		return err
	}
	if !deleted {
		return apperr.NotFound("Game not found")
	}
	s.log.Info("parent deleted", zap.String("game_id", gameID))
	return nil
}

// ListVersions returns every version under a parent, NotFound if the
// parent itself is missing.
func (s *Service) ListVersions(gameID string) ([]models.GameVersion, error) {
	parent, err := s.parents.FindByGameID(gameID)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, apperr.NotFound("Game not found")
	}
	return s.versions.FindByGameID(gameID)
}

func (s *Service) GetVersion(gameID, version string) (*models.GameVersion, error) {
	v, err := s.versions.FindByGameIDAndVersion(gameID, version)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, apperr.NotFound("Version not found")
	}
	return v, nil
}
