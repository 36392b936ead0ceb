package store

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/kosdesign/game-center/internal/apperr"
	"github.com/kosdesign/game-center/internal/models"
)

// AdminStore is the sole persistence access for console administrators.
type AdminStore struct {
	db *gorm.DB
}

func NewAdminStore(db *gorm.DB) *AdminStore { return &AdminStore{db: db} }

func (s *AdminStore) FindByUsername(username string) (*models.Admin, error) {
	return s.findOne("username = ?", username)
}

func (s *AdminStore) FindByEmail(email string) (*models.Admin, error) {
	return s.findOne("email = ?", email)
}

func (s *AdminStore) FindByAdminID(adminID string) (*models.Admin, error) {
	return s.findOne("admin_id = ?", adminID)
}

func (s *AdminStore) findOne(query string, arg string) (*models.Admin, error) {
	var admin models.Admin
	err := s.db.Where(query, arg).First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (s *AdminStore) FindAll() ([]models.Admin, error) {
	var admins []models.Admin
	if err := s.db.Order("created_at desc").Find(&admins).Error; err != nil {
		return nil, err
	}
	return admins, nil
}

func (s *AdminStore) Create(admin *models.Admin) error {
	if err := s.db.Create(admin).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.Conflict("Username or email already exists")
		}
		return err
	}
	return nil
}

func (s *AdminStore) Update(adminID string, updates map[string]interface{}) (*models.Admin, error) {
	existing, err := s.FindByAdminID(adminID)
	if err != nil || existing == nil {
		return nil, err
	}
	if len(updates) > 0 {
		if err := s.db.Model(&models.Admin{}).Where("admin_id = ?", adminID).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return s.FindByAdminID(adminID)
}

func (s *AdminStore) UpdateLastLogin(username string) error {
	now := time.Now()
	return s.db.Model(&models.Admin{}).Where("username = ?", username).
		Update("last_login", &now).Error
}

func (s *AdminStore) Delete(adminID string) (bool, error) {
	res := s.db.Where("admin_id = ?", adminID).Delete(&models.Admin{})
	return res.RowsAffected > 0, res.Error
}
