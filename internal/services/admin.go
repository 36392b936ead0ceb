package services

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kosdesign/game-center/internal/apperr"
	"github.com/kosdesign/game-center/internal/models"
	"github.com/kosdesign/game-center/internal/store"
)

type CreateAdminInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type UpdateAdminInput struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Role     *string `json:"role"`
}

// AdminService manages console administrator accounts.
type AdminService struct {
	admins *store.AdminStore
	log    *zap.Logger
}

func NewAdminService(admins *store.AdminStore, log *zap.Logger) *AdminService {
	return &AdminService{admins: admins, log: log}
}

func (s *AdminService) CreateAdmin(in CreateAdminInput) (*models.Admin, error) {
	if len(in.Username) < 3 {
		return nil, apperr.Validation("username must be at least 3 characters")
	}
	if in.Email == "" {
		return nil, apperr.Validation("email is required")
	}
	if len(in.Password) < 8 {
		return nil, apperr.Validation("password must be at least 8 characters")
	}

	if existing, err := s.admins.FindByUsername(in.Username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, apperr.Conflict("Username already exists")
	}
	if existing, err := s.admins.FindByEmail(in.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, apperr.Conflict("Email already exists")
	}

	role := in.Role
	if role == "" {
		role = models.RoleAdmin
	}
	admin := &models.Admin{
		AdminID:  uuid.NewString(),
		Username: in.Username,
		Email:    in.Email,
		Role:     role,
	}
	if err := admin.SetPassword(in.Password); err != nil {
		return nil, err
	}
	if err := s.admins.Create(admin); err != nil {
		return nil, err
	}
	s.log.Info("admin created", zap.String("username", in.Username), zap.String("role", role))
	return admin, nil
}

func (s *AdminService) GetAdmin(adminID string) (*models.Admin, error) {
	admin, err := s.admins.FindByAdminID(adminID)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, apperr.NotFound("Admin not found")
	}
	return admin, nil
}

func (s *AdminService) ListAdmins() ([]models.Admin, error) {
	return s.admins.FindAll()
}

func (s *AdminService) UpdateAdmin(adminID string, in UpdateAdminInput) (*models.Admin, error) {
	existing, err := s.admins.FindByAdminID(adminID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperr.NotFound("Admin not found")
	}

	updates := map[string]interface{}{}
	if in.Username != nil && *in.Username != existing.Username {
		if len(*in.Username) < 3 {
			return nil, apperr.Validation("username must be at least 3 characters")
		}
		if other, err := s.admins.FindByUsername(*in.Username); err != nil {
			return nil, err
		} else if other != nil {
			return nil, apperr.Conflict("Username already exists")
		}
		updates["username"] = *in.Username
	}
	if in.Email != nil && *in.Email != existing.Email {
		if other, err := s.admins.FindByEmail(*in.Email); err != nil {
			return nil, err
		} else if other != nil {
			return nil, apperr.Conflict("Email already exists")
		}
		updates["email"] = *in.Email
	}
	if in.Role != nil {
		updates["role"] = *in.Role
	}

	return s.admins.Update(adminID, updates)
}

func (s *AdminService) DeleteAdmin(adminID string) error {
	deleted, err := s.admins.Delete(adminID)
	if err != nil {
		return err
	}
	if !deleted {
		return apperr.NotFound("Admin not found")
	}
	s.log.Info("admin deleted", zap.String("admin_id", adminID))
	return nil
}
