package services

import (
	"go.uber.org/zap"

	"github.com/kosdesign/game-center/internal/apperr"
	"github.com/kosdesign/game-center/internal/config"
	"github.com/kosdesign/game-center/internal/store"
)

type AdminInfo struct {
	AdminID  string `json:"admin_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

type LoginResult struct {
	Token string    `json:"token"`
	Admin AdminInfo `json:"admin"`
}

type AuthService struct {
	admins *store.AdminStore
	log    *zap.Logger
}

func NewAuthService(admins *store.AdminStore, log *zap.Logger) *AuthService {
	return &AuthService{admins: admins, log: log}
}

// Login verifies console credentials and issues a signed admin token.
func (s *AuthService) Login(username, password string) (*LoginResult, error) {
	admin, err := s.admins.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if admin == nil || !admin.CheckPassword(password) {
		return nil, apperr.Unauthorized("Invalid credentials")
	}

	if err := s.admins.UpdateLastLogin(username); err != nil {
		return nil, err
	}

	tok, err := GenerateAdminToken(admin.AdminID, admin.Username, admin.Role, config.Current.JWTTTL)
	if err != nil {
		return nil, err
	}
	s.log.Info("admin login", zap.String("username", username))
	return &LoginResult{
		Token: tok,
		Admin: AdminInfo{
			AdminID:  admin.AdminID,
			Username: admin.Username,
			Email:    admin.Email,
			Role:     admin.Role,
		},
	}, nil
}
