package authservice

import (
	"context"
	"errors"
	"time"

	"github.com/battlearena/battlearena/internal/domain"
	"github.com/battlearena/battlearena/pkg/auth"
	"go.uber.org/zap"
)

var (
	ErrPhoneTaken         = errors.New("phone number already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrBanned             = errors.New("account is banned")
)

type Repo interface {
	FindByPhone(ctx context.Context, phone string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

type Service struct {
	userRepo    Repo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
}

func New(repo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		userRepo:    repo,
		hashService: hashService,
		jwtService:  jwtService,
	}
}

// Register creates the account with a zero wallet. Accounts are never hard
// deleted afterwards, only banned.
func (s *Service) Register(ctx context.Context, phone, username, gameName, password string) (*domain.User, error) {
	existingUser, err := s.userRepo.FindByPhone(ctx, phone)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("user already exists", zap.String("phone", phone))
		return nil, ErrPhoneTaken
	}
	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}
	user := &domain.User{
		Phone:        phone,
		Username:     username,
		GameName:     gameName,
		PasswordHash: hashedPassword,
		Role:         auth.RoleUser,
	}
	newUser, err := s.userRepo.Create(ctx, user)
	if err != nil {
		zap.L().Error("can't create user: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.String("phone", phone))
	return newUser, nil
}

func (s *Service) Authenticate(ctx context.Context, phone, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByPhone(ctx, phone)
	if err != nil || user == nil {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		return nil, ErrInvalidCredentials
	}
	if user.IsBanned {
		return nil, ErrBanned
	}
	zap.L().Info("user successfully authenticated", zap.String("phone", phone))
	return user, nil
}

func (s *Service) GenerateToken(userID int, role string) (string, error) {
	expirationTime := time.Now().Add(24 * time.Hour)

	token, err := s.jwtService.GenerateJWT(userID, role, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}
