package service

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"interview_hub_backend/internal/config"
	"interview_hub_backend/internal/model"
	"interview_hub_backend/internal/repository"
	"interview_hub_backend/internal/util"
)

type AuthService struct {
	UserRepo *repository.UserRepository
	Config   *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{UserRepo: userRepo, Config: cfg}
}

// Register 注册新用户，邮箱唯一
func (s *AuthService) Register(name, email, password string) (*model.User, error) {
	if existing, err := s.UserRepo.FindByEmail(email); err == nil && existing.ID != 0 {
		return nil, util.ErrEmailRegistered
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &model.User{
		Name:     name,
		Email:    email,
		Password: string(hashed),
	}
	if err := s.UserRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login 校验凭证并签发 JWT
func (s *AuthService) Login(email, password string) (string, *model.User, error) {
	user, err := s.UserRepo.FindByEmail(email)
	if err != nil || user == nil {
		return "", nil, util.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, util.ErrInvalidCredentials
	}
	token, err := util.GenerateJWT(user, s.Config.JWT.Secret, s.Config.JWT.ExpireTime)
	if err != nil {
		return "", nil, err
	}
	_ = s.UserRepo.UpdateLastLogin(user.ID)
	user.LastLogin = time.Now()
	return token, user, nil
}

func (s *AuthService) GetCurrentUser(userID uint) (*model.User, error) {
	return s.UserRepo.FindByID(userID)
}
