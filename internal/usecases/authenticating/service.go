package authenticating

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/igdnd/sales-dashboard-api/infrastructure/repository"
	"github.com/igdnd/sales-dashboard-api/internal/config"
	"github.com/igdnd/sales-dashboard-api/internal/domain"
	"github.com/igdnd/sales-dashboard-api/pkg/apiErrors"
	"github.com/igdnd/sales-dashboard-api/pkg/utils"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

const (
	tokenLifetime             = 12 * time.Hour
	provisionalPasswordLength = 10

	defaultRoleID = 2 // operador
)

type Authenticator interface {
	CreateUser(user *domain.User) (*domain.User, error)
	LoginUser(email, password string) (string, error)
	GetUserProfile(userID int) (*domain.User, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
	GenerateProvisionalPassword(targetUserID int) (string, error)
}

type Service struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewService(userRepo repository.UserRepository, cfg *config.Config) Authenticator {
	return &Service{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

func (s *Service) CreateUser(user *domain.User) (*domain.User, error) {
	if user.Email == "" || user.Name == "" || user.PasswordHash == "" {
		return nil, NewAuthError(ErrMissingData, apiErrors.ErrMissingRequiredData)
	}

	user.Email = normalizeEmail(user.Email)

	existing, err := s.userRepo.GetUserByEmail(user.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, NewAuthError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.PasswordHash), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user.PasswordHash = string(hashedPassword)
	user.Active = true
	if user.RoleID == 0 {
		user.RoleID = defaultRoleID
	}

	created, err := s.userRepo.CreateUser(user)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"user_id": created.ID,
		"email":   created.Email,
	}).Info("auth: usuário criado")

	created.PasswordHash = ""
	return created, nil
}

func (s *Service) LoginUser(email, password string) (string, error) {
	user, err := s.userRepo.GetUserByEmail(normalizeEmail(email))
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound)
	}

	if !user.Active {
		return "", NewUserAuthError(ErrUserDisabled, apiErrors.ErrUserDisabled, user.ID)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, user.ID)
	}

	return s.generateToken(user)
}

func (s *Service) GetUserProfile(userID int) (*domain.User, error) {
	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound)
	}

	user.PasswordHash = ""
	return user, nil
}

// GenerateProvisionalPassword gera uma senha provisória para o usuário alvo
// e grava o hash. A senha em claro é retornada uma única vez.
func (s *Service) GenerateProvisionalPassword(targetUserID int) (string, error) {
	user, err := s.userRepo.GetUserByID(targetUserID)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound)
	}

	password, err := utils.GenerateID(provisionalPasswordLength)
	if err != nil {
		return "", err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	user.PasswordHash = string(hashedPassword)
	if err := s.userRepo.UpdateUser(user); err != nil {
		return "", err
	}

	logrus.WithField("user_id", targetUserID).Info("auth: senha provisória gerada")

	return password, nil
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	claims := &domain.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.Auth.Secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

func (s *Service) generateToken(user *domain.User) (string, error) {
	now := time.Now()

	claims := &domain.Claims{
		UserID:     user.ID,
		UserName:   user.Name,
		UserEmail:  user.Email,
		UserActive: user.Active,
		UserRoleID: user.RoleID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenLifetime)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Auth.Secret))
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
