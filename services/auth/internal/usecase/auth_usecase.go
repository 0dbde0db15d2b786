package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Chopaholic/MotorAdverts/pkg/cache"
	"github.com/Chopaholic/MotorAdverts/pkg/jwt"
	"github.com/Chopaholic/MotorAdverts/pkg/logger"
	"github.com/Chopaholic/MotorAdverts/services/auth/internal/entity"
	"github.com/Chopaholic/MotorAdverts/services/auth/internal/repo/persistent"

	"golang.org/x/crypto/bcrypt"
)

const userRole = "user"

type AuthUseCase interface {
	Register(email, password string) (*entity.User, string, error)
	Login(email, password string) (*entity.User, string, error)
	Logout(ctx context.Context, token string) error
	GetUser(userID string) (*entity.User, error)
}

type authUseCase struct {
	userRepo   persistent.UserRepository
	jwtService *jwt.Service
	denylist   *cache.TokenDenylist
	logger     *logger.Logger
}

func NewAuthUseCase(
	userRepo persistent.UserRepository,
	jwtService *jwt.Service,
	denylist *cache.TokenDenylist,
	logger *logger.Logger,
) AuthUseCase {
	return &authUseCase{
		userRepo:   userRepo,
		jwtService: jwtService,
		denylist:   denylist,
		logger:     logger,
	}
}

func (uc *authUseCase) Register(email, password string) (*entity.User, string, error) {
	_, err := uc.userRepo.GetByEmail(email)
	if err == nil {
		return nil, "", fmt.Errorf("user with this email already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return nil, "", fmt.Errorf("failed to process registration")
	}

	user := &entity.User{
		Email:    email,
		Password: string(hashedPassword),
	}

	if err := uc.userRepo.Create(user); err != nil {
		uc.logger.Error("Failed to create user: %v", err)
		return nil, "", fmt.Errorf("failed to create user")
	}

	token, err := uc.jwtService.GenerateToken(user.ID, userRole)
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", fmt.Errorf("failed to generate token")
	}

	user.Password = ""
	return user, token, nil
}

func (uc *authUseCase) Login(email, password string) (*entity.User, string, error) {
	user, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return nil, "", fmt.Errorf("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", fmt.Errorf("invalid credentials")
	}

	token, err := uc.jwtService.GenerateToken(user.ID, userRole)
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", fmt.Errorf("failed to generate token")
	}

	user.Password = ""
	return user, token, nil
}

// Logout denylists the token until its natural expiry so the subject change
// propagates to every service that validates it.
func (uc *authUseCase) Logout(ctx context.Context, token string) error {
	claims, err := uc.jwtService.ValidateToken(token)
	if err != nil {
		return fmt.Errorf("invalid token")
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if err := uc.denylist.Deny(ctx, token, ttl); err != nil {
		uc.logger.Error("Failed to denylist token: %v", err)
		return fmt.Errorf("failed to sign out")
	}
	return nil
}

func (uc *authUseCase) GetUser(userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	user.Password = ""
	return user, nil
}
