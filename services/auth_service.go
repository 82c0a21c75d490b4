package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Nemoeiei/calories-guard/models"
	"github.com/Nemoeiei/calories-guard/utils"
	"gorm.io/gorm"
)

type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

func (s *AuthService) Register(email, password, username string) (*models.User, error) {
	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: hash,
		Username:     username,
	}
	if err := s.db.Create(user).Error; err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Authenticate checks credentials and issues a JWT.
func (s *AuthService) Authenticate(email, password string) (string, *models.User, error) {
	var user models.User
	err := s.db.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrNotFound
		}
		return "", nil, err
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return "", nil, errors.New("incorrect password")
	}

	token, err := utils.GenerateJWT(user.ID, user.Email)
	if err != nil {
		return "", nil, err
	}
	return token, &user, nil
}
