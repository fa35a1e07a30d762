package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shenikar/waste_sorting_system/internal/config"
	"github.com/shenikar/waste_sorting_system/internal/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

// AuthResult - результат регистрации или входа
type AuthResult struct {
	Token   string
	Session Session
	Account *models.UserAccount
}

// sessionClaims - содержимое JWT токена сеанса
type sessionClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

type accountService struct {
	repo       AccountRepository
	sessions   SessionStore
	logger     *logrus.Logger
	cfg        *config.Config
	bcryptCost int
	now        func() time.Time
}

func NewAccountService(repo AccountRepository, sessions SessionStore, logger *logrus.Logger, cfg *config.Config) AccountService {
	return &accountService{
		repo:       repo,
		sessions:   sessions,
		logger:     logger,
		cfg:        cfg,
		bcryptCost: bcrypt.DefaultCost,
		now:        time.Now,
	}
}

// Register регистрирует пользователя и сразу открывает сеанс
func (s *accountService) Register(ctx context.Context, username, password, confirmPassword string) (*AuthResult, error) {
	username = strings.TrimSpace(username)
	log := s.logger.WithFields(logrus.Fields{
		"service":  "account",
		"method":   "Register",
		"username": username,
	})
	log.Info("Attempting to register a new user")

	switch {
	case username == "" || password == "":
		return nil, ErrEmptyCredentials
	case password != confirmPassword:
		return nil, ErrPasswordMismatch
	case len(password) < minPasswordLength:
		return nil, ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		log.WithError(err).Error("Failed to hash password")
		return nil, fmt.Errorf("service: could not hash password: %w", err)
	}

	account := &models.UserAccount{
		Username:     username,
		PasswordHash: string(hash),
		History:      []models.HistoryEntry{},
		CreatedAt:    s.now().UTC(),
	}
	if err := s.repo.Create(ctx, account); err != nil {
		if errors.Is(err, ErrUserExists) {
			log.Warn("Username already taken")
			return nil, err
		}
		log.WithError(err).Error("Failed to create account in repository")
		return nil, fmt.Errorf("service: could not create account: %w", err)
	}

	result, err := s.openSession(account)
	if err != nil {
		log.WithError(err).Error("Failed to issue token")
		return nil, err
	}
	log.Info("User registered successfully")
	return result, nil
}

// Login проверяет учетные данные и открывает сеанс
func (s *accountService) Login(ctx context.Context, username, password string) (*AuthResult, error) {
	username = strings.TrimSpace(username)
	log := s.logger.WithFields(logrus.Fields{
		"service":  "account",
		"method":   "Login",
		"username": username,
	})
	log.Info("Login attempt")

	if username == "" || password == "" {
		return nil, ErrEmptyCredentials
	}

	account, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			log.Warn("Unknown username")
			return nil, ErrInvalidCredentials
		}
		log.WithError(err).Error("Failed to load account")
		return nil, fmt.Errorf("service: could not get account: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		log.Warn("Invalid password")
		return nil, ErrInvalidCredentials
	}

	result, err := s.openSession(account)
	if err != nil {
		log.WithError(err).Error("Failed to issue token")
		return nil, err
	}
	log.Info("User logged in successfully")
	return result, nil
}

// Logout отзывает токен сеанса до истечения его срока
func (s *accountService) Logout(ctx context.Context, session Session) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "account",
		"method":   "Logout",
		"username": session.Username,
	})

	ttl := session.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		log.Info("Token already expired, nothing to revoke")
		return nil
	}
	if err := s.sessions.RevokeToken(ctx, session.TokenID, ttl); err != nil {
		log.WithError(err).Error("Failed to revoke token")
		return fmt.Errorf("service: could not revoke token: %w", err)
	}
	log.Info("User logged out")
	return nil
}

// Authenticate проверяет токен и восстанавливает сеанс
func (s *accountService) Authenticate(ctx context.Context, token string) (Session, error) {
	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return []byte(s.cfg.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil || !parsed.Valid || claims.Username == "" || claims.ID == "" || claims.ExpiresAt == nil {
		return Session{}, ErrInvalidToken
	}

	revoked, err := s.sessions.IsTokenRevoked(ctx, claims.ID)
	if err != nil {
		s.logger.WithError(err).WithField("method", "Authenticate").Error("Failed to check token revocation")
		return Session{}, fmt.Errorf("service: could not check token: %w", err)
	}
	if revoked {
		return Session{}, ErrInvalidToken
	}

	return Session{
		Username:  claims.Username,
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// GetAccount возвращает аккаунт текущего пользователя
func (s *accountService) GetAccount(ctx context.Context, session Session) (*models.UserAccount, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "account",
		"method":   "GetAccount",
		"username": session.Username,
	})

	account, err := s.repo.GetByUsername(ctx, session.Username)
	if err != nil {
		log.WithError(err).Warn("Failed to get account in repository")
		return nil, fmt.Errorf("service: could not get account: %w", err)
	}
	return account, nil
}

func (s *accountService) openSession(account *models.UserAccount) (*AuthResult, error) {
	now := s.now()
	session := Session{
		Username:  account.Username,
		TokenID:   uuid.NewString(),
		ExpiresAt: now.Add(s.cfg.JWTTTL),
	}
	claims := sessionClaims{
		Username: account.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        session.TokenID,
			Subject:   account.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return nil, fmt.Errorf("service: could not sign token: %w", err)
	}
	return &AuthResult{Token: token, Session: session, Account: account}, nil
}
