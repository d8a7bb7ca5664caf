package application

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/tahmid-dev/formbuilder-go/internal/api/middleware"
	"github.com/tahmid-dev/formbuilder-go/internal/domain/user"
	"github.com/tahmid-dev/formbuilder-go/internal/repository"
)

type AuthService struct {
	Repos     *repository.Repos
	jwtSecret string
	jwtExpiry time.Duration
}

func NewAuthService(repos *repository.Repos, jwtSecret string, jwtExpiry time.Duration) *AuthService {
	return &AuthService{Repos: repos, jwtSecret: jwtSecret, jwtExpiry: jwtExpiry}
}

// Register creates an account with the default user role and returns
// the user plus a fresh token.
func (s *AuthService) Register(input user.RegisterInput) (user.DTO, string, error) {
	if _, err := s.Repos.User.GetUserByUsername(input.Username); err == nil {
		return user.DTO{}, "", ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return user.DTO{}, "", err
	}
	if _, err := s.Repos.User.GetUserByEmail(input.Email); err == nil {
		return user.DTO{}, "", ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return user.DTO{}, "", err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.DTO{}, "", err
	}

	u := user.User{
		Username: input.Username,
		Email:    input.Email,
		Password: string(hashed),
		FullName: input.FullName,
		Role:     user.RoleUser,
		IsActive: true,
	}
	if err := s.Repos.User.SaveUser(&u); err != nil {
		return user.DTO{}, "", err
	}

	token, err := middleware.GenerateToken(&u, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return user.DTO{}, "", err
	}
	return user.ToDTO(&u), token, nil
}

// Login authenticates by username or email. Missing account, inactive
// account and wrong password all fail identically so the response
// gives no oracle.
func (s *AuthService) Login(identifier, password string) (user.DTO, string, error) {
	u, err := s.Repos.User.GetUserByIdentifier(identifier)
	if err != nil {
		return user.DTO{}, "", ErrInvalidCredentials
	}
	if !u.IsActive {
		return user.DTO{}, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return user.DTO{}, "", ErrInvalidCredentials
	}

	now := time.Now()
	u.LastLogin = &now
	if err := s.Repos.User.SaveUser(&u); err != nil {
		return user.DTO{}, "", err
	}

	token, err := middleware.GenerateToken(&u, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return user.DTO{}, "", err
	}
	return user.ToDTO(&u), token, nil
}

// RefreshToken reissues a token with a fresh expiry. The old token
// stays valid until its own expiry; tokens are stateless.
func (s *AuthService) RefreshToken(tokenStr string) (string, error) {
	claims, err := middleware.ParseToken(tokenStr, s.jwtSecret)
	if err != nil {
		return "", ErrInvalidCredentials
	}
	u, err := s.Repos.User.GetUserByID(claims.UserID)
	if err != nil || !u.IsActive {
		return "", ErrInvalidCredentials
	}
	return middleware.GenerateToken(&u, s.jwtSecret, s.jwtExpiry)
}

// GetProfile returns the caller's own account.
func (s *AuthService) GetProfile(userID uint) (user.DTO, error) {
	u, err := s.Repos.User.GetUserByID(userID)
	if err != nil {
		return user.DTO{}, ErrUserNotFound
	}
	return user.ToDTO(&u), nil
}

// UpdateProfile applies email and name changes to the caller's account.
func (s *AuthService) UpdateProfile(userID uint, input user.UpdateProfileInput) (user.DTO, error) {
	u, err := s.Repos.User.GetUserByID(userID)
	if err != nil {
		return user.DTO{}, ErrUserNotFound
	}

	if input.Email != nil && *input.Email != u.Email {
		if existing, err := s.Repos.User.GetUserByEmail(*input.Email); err == nil && existing.ID != u.ID {
			return user.DTO{}, ErrEmailTaken
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return user.DTO{}, err
		}
		u.Email = *input.Email
	}
	if input.FullName != nil {
		u.FullName = *input.FullName
	}

	if err := s.Repos.User.SaveUser(&u); err != nil {
		return user.DTO{}, err
	}
	return user.ToDTO(&u), nil
}

// ChangePassword verifies the current password before storing the new
// hash.
func (s *AuthService) ChangePassword(userID uint, current, newPassword string) error {
	u, err := s.Repos.User.GetUserByID(userID)
	if err != nil {
		return ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(current)); err != nil {
		return ErrIncorrectPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashed)
	return s.Repos.User.SaveUser(&u)
}
